//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"sameday-trips/internal/domain/flight"
)

type FlightBuilder struct {
	Origin          string
	Destination     string
	Date            time.Time
	DepartHour      int
	DepartMinute    int
	DurationMinutes int
	// ZoneShiftMinutes is added to the arrival wall clock, e.g. -60 flying west one zone.
	ZoneShiftMinutes int
	Stops            int
	Unit             flight.Unit
	Costs            map[string]float64
	Segments         []string
}

func NewFlightBuilder() *FlightBuilder {
	return &FlightBuilder{
		Origin:          "CLT",
		Destination:     "ATL",
		Date:            time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
		DepartHour:      6,
		DepartMinute:    0,
		DurationMinutes: 75,
		Stops:           0,
		Unit:            flight.UnitUSD,
		Costs:           map[string]float64{flight.CabinMain: 120},
		Segments:        []string{"AA1234"},
	}
}

func (f *FlightBuilder) With(mutate func(*FlightBuilder)) *FlightBuilder {
	mutate(f)
	return f
}

// Build methods
func (f *FlightBuilder) BuildDomain() (*flight.Flight, error) {
	costs, err := flight.NewCosts(f.Unit, f.Costs)
	if err != nil {
		return nil, err
	}
	departAt := time.Date(f.Date.Year(), f.Date.Month(), f.Date.Day(), f.DepartHour, f.DepartMinute, 0, 0, time.UTC)
	arriveAt := departAt.Add(time.Duration(f.DurationMinutes+f.ZoneShiftMinutes) * time.Minute)

	return flight.New(flight.Params{
		Origin:          f.Origin,
		Destination:     f.Destination,
		DepartAt:        departAt,
		ArriveAt:        arriveAt,
		DurationMinutes: f.DurationMinutes,
		Stops:           f.Stops,
		Costs:           costs,
		Segments:        f.Segments,
	})
}

func (f *FlightBuilder) MustBuild() *flight.Flight {
	fl, err := f.BuildDomain()
	if err != nil {
		panic(err)
	}
	return fl
}

func (f *FlightBuilder) BuildFareOffer() flight.RawFareOffer {
	departAt := time.Date(f.Date.Year(), f.Date.Month(), f.Date.Day(), f.DepartHour, f.DepartMinute, 0, 0, time.UTC)
	arriveAt := departAt.Add(time.Duration(f.DurationMinutes+f.ZoneShiftMinutes) * time.Minute)
	segments := make([]flight.RawSegment, 0, len(f.Segments))
	for i, s := range f.Segments {
		seg := flight.RawSegment{CarrierCode: s[:2], Number: s[2:]}
		if i == 0 {
			seg.DepartureAirport = f.Origin
			seg.DepartureAt = departAt.Format("2006-01-02T15:04:05")
		}
		if i == len(f.Segments)-1 {
			seg.ArrivalAirport = f.Destination
			seg.ArrivalAt = arriveAt.Format("2006-01-02T15:04:05")
		}
		segments = append(segments, seg)
	}
	return flight.RawFareOffer{
		Duration:   fmt.Sprintf("PT%dH%dM", f.DurationMinutes/60, f.DurationMinutes%60),
		Segments:   segments,
		TotalPrice: fmt.Sprintf("%.2f", f.Costs[flight.CabinMain]),
		Currency:   "USD",
	}
}

func (f *FlightBuilder) BuildAwardOffer() flight.RawAwardOffer {
	departAt := time.Date(2000, 1, 1, f.DepartHour, f.DepartMinute, 0, 0, time.UTC)
	arriveAt := departAt.Add(time.Duration(f.DurationMinutes+f.ZoneShiftMinutes) * time.Minute)
	miles := make(map[string]string, len(f.Costs))
	for cabin, v := range f.Costs {
		miles[cabin] = fmt.Sprintf("%gK", v/1000)
	}
	stops := "Nonstop"
	if f.Stops == 1 {
		stops = "1 stop"
	} else if f.Stops > 1 {
		stops = fmt.Sprintf("%d stops", f.Stops)
	}
	arrive := arriveAt.Format("3:04 PM")
	if arriveAt.Day() != departAt.Day() {
		arrive += "+1"
	}
	return flight.RawAwardOffer{
		Date:          f.Date,
		Origin:        f.Origin,
		Destination:   f.Destination,
		DepartTime:    departAt.Format("3:04 PM"),
		ArriveTime:    arrive,
		Duration:      fmt.Sprintf("%dh %dm", f.DurationMinutes/60, f.DurationMinutes%60),
		Stops:         stops,
		FlightNumbers: f.Segments,
		Miles:         miles,
	}
}

// Fluent builder methods
func (f *FlightBuilder) WithRoute(origin, destination string) *FlightBuilder {
	f.Origin = origin
	f.Destination = destination
	return f
}

func (f *FlightBuilder) WithDeparture(hour, minute int) *FlightBuilder {
	f.DepartHour = hour
	f.DepartMinute = minute
	return f
}

func (f *FlightBuilder) WithDuration(minutes int) *FlightBuilder {
	f.DurationMinutes = minutes
	return f
}

func (f *FlightBuilder) WithStops(stops int) *FlightBuilder {
	f.Stops = stops
	return f
}

func (f *FlightBuilder) WithPrice(usd float64) *FlightBuilder {
	f.Unit = flight.UnitUSD
	f.Costs = map[string]float64{flight.CabinMain: usd}
	return f
}

func (f *FlightBuilder) WithMiles(costs map[string]float64) *FlightBuilder {
	f.Unit = flight.UnitMiles
	f.Costs = costs
	return f
}

func (f *FlightBuilder) WithSegments(segments ...string) *FlightBuilder {
	f.Segments = segments
	return f
}
