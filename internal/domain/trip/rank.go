package trip

import (
	"math"
	"sort"
)

type Ranked struct {
	*Candidate
	Rank int
	Best bool
}

// Rank orders candidates by destination then total cost, keeping input order
// for equal costs, and numbers them from 1 within each destination.
// Candidates without a cost sort after every priced one.
func Rank(candidates []*Candidate) []Ranked {
	sorted := make([]*Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Destination() != b.Destination() {
			return a.Destination() < b.Destination()
		}
		return sortCost(a) < sortCost(b)
	})

	ranked := make([]Ranked, 0, len(sorted))
	rank := 0
	for i, c := range sorted {
		if i == 0 || sorted[i-1].Destination() != c.Destination() {
			rank = 0
		}
		rank++
		ranked = append(ranked, Ranked{Candidate: c, Rank: rank, Best: rank == 1})
	}
	return ranked
}

func sortCost(c *Candidate) float64 {
	if cost, ok := c.TotalCost(); ok {
		return cost
	}
	return math.Inf(1)
}

// BestPerDestination returns the rank-1 option of every destination.
func BestPerDestination(ranked []Ranked) []Ranked {
	var best []Ranked
	for _, r := range ranked {
		if r.Best {
			best = append(best, r)
		}
	}
	return best
}

type DestinationSummary struct {
	Destination    string
	Options        int
	MaxGroundHours float64
	MinTotalCost   float64
}

func Summarize(ranked []Ranked) []DestinationSummary {
	var (
		out   []DestinationSummary
		index = map[string]int{}
	)
	for _, r := range ranked {
		i, ok := index[r.Destination()]
		if !ok {
			i = len(out)
			index[r.Destination()] = i
			out = append(out, DestinationSummary{
				Destination:    r.Destination(),
				MaxGroundHours: r.GroundHoursRounded(),
				MinTotalCost:   sortCost(r.Candidate),
			})
		}
		s := &out[i]
		s.Options++
		s.MaxGroundHours = math.Max(s.MaxGroundHours, r.GroundHoursRounded())
		s.MinTotalCost = math.Min(s.MinTotalCost, sortCost(r.Candidate))
	}
	return out
}
