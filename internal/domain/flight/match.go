package flight

import "math"

// FindBestMatch picks the candidate departing closest to target, within
// maxDiffMinutes. Ties go to a nonstop flight, then to the lower primary
// cost; on a full tie the earlier candidate wins.
func FindBestMatch(candidates []*Flight, target ClockTime, maxDiffMinutes int) (*Flight, bool) {
	var (
		best     *Flight
		bestDiff int
	)
	for _, c := range candidates {
		if c == nil {
			continue
		}
		diff := c.DepartClock().AbsDiff(target)
		if diff > maxDiffMinutes {
			continue
		}
		if best == nil || better(c, diff, best, bestDiff) {
			best, bestDiff = c, diff
		}
	}
	return best, best != nil
}

func better(c *Flight, diff int, best *Flight, bestDiff int) bool {
	if diff != bestDiff {
		return diff < bestDiff
	}
	if c.IsDirect() != best.IsDirect() {
		return c.IsDirect()
	}
	return comparableCost(c) < comparableCost(best)
}

func comparableCost(f *Flight) float64 {
	if v, ok := f.PrimaryCost(); ok {
		return v
	}
	return math.Inf(1)
}
