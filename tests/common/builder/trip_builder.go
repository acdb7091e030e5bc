//go:build unit || e2e

package builder

import (
	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/domain/trip"
	reqdto "sameday-trips/internal/handler/dto/request"
	"sameday-trips/internal/usecase"
	"sameday-trips/internal/usecase/shared"
)

type TripSearchBuilder struct {
	Origin       string
	Date         string
	DepartBy     *int
	ReturnBy     *int
	Destinations []string
	City         string
	Outbound     *FlightBuilder
	Return       *FlightBuilder
}

func NewTripSearchBuilder() *TripSearchBuilder {
	return &TripSearchBuilder{
		Origin:       "CLT",
		Date:         "2025-11-15",
		Destinations: []string{"ATL"},
		City:         "Atlanta",
		Outbound:     NewFlightBuilder(),
		Return: NewFlightBuilder().With(func(b *FlightBuilder) {
			b.Origin, b.Destination = "ATL", "CLT"
			b.DepartHour = 16
			b.Costs = map[string]float64{flight.CabinMain: 100}
			b.Segments = []string{"AA5678"}
		}),
	}
}

func (b *TripSearchBuilder) With(mutate func(*TripSearchBuilder)) *TripSearchBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *TripSearchBuilder) BuildRequestDTO() reqdto.SearchTripsRequest {
	return reqdto.SearchTripsRequest{
		Origin:       b.Origin,
		Date:         b.Date,
		DepartBy:     b.DepartBy,
		ReturnBy:     b.ReturnBy,
		Destinations: b.Destinations,
	}
}

// BuildResult pairs the outbound and return flights into a one-trip result.
func (b *TripSearchBuilder) BuildResult() *usecase.DiscoveryResult {
	candidates := trip.FindTrips(
		[]*flight.Flight{b.Outbound.MustBuild()},
		[]*flight.Flight{b.Return.MustBuild()},
		3,
	)
	ranked := trip.Rank(candidates)
	rows := make([]shared.TripRow, 0, len(ranked))
	for _, r := range ranked {
		rows = append(rows, shared.TripRow{City: b.City, Trip: r})
	}
	return &usecase.DiscoveryResult{
		Trips:     rows,
		Summaries: trip.Summarize(ranked),
	}
}
