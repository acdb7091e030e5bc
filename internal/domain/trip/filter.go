package trip

import "sameday-trips/internal/domain/flight"

// FilterOutbound keeps flights departing before cutoffHour and no longer
// than maxDurationMinutes. Only the clock hour is compared: 08:59 passes a
// cutoff of 9, 09:00 does not.
func FilterOutbound(flights []*flight.Flight, cutoffHour, maxDurationMinutes int) []*flight.Flight {
	out := make([]*flight.Flight, 0, len(flights))
	for _, f := range flights {
		if f.DepartClock().Hour() < cutoffHour && f.DurationMinutes() <= maxDurationMinutes {
			out = append(out, f)
		}
	}
	return out
}

// FilterReturn keeps flights arriving in [minArriveHour, maxArriveHourExclusive)
// by clock hour and no longer than maxDurationMinutes.
func FilterReturn(flights []*flight.Flight, minArriveHour, maxArriveHourExclusive, maxDurationMinutes int) []*flight.Flight {
	out := make([]*flight.Flight, 0, len(flights))
	for _, f := range flights {
		hour := f.ArriveClock().Hour()
		if hour >= minArriveHour && hour < maxArriveHourExclusive && f.DurationMinutes() <= maxDurationMinutes {
			out = append(out, f)
		}
	}
	return out
}
