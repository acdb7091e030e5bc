package response

import (
	"time"

	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/pkg/ptr"
	"sameday-trips/internal/usecase"

	"github.com/jinzhu/copier"
)

// LegResponse takes its plain fields from the flight getters of the same name.
type LegResponse struct {
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	FlightNumbers   string   `json:"flightNumbers"`
	Stops           int      `json:"stops"`
	DurationMinutes int      `json:"durationMinutes"`
	Depart          string   `json:"depart" copier:"-"`
	Arrive          string   `json:"arrive" copier:"-"`
	Duration        string   `json:"duration" copier:"-"`
	Price           *float64 `json:"price,omitempty" copier:"-"`
}

type TripResponse struct {
	Rank          int         `json:"rank"`
	Best          bool        `json:"best"`
	Destination   string      `json:"destination"`
	City          string      `json:"city"`
	Date          string      `json:"date"`
	Outbound      LegResponse `json:"outbound"`
	Return        LegResponse `json:"return"`
	GroundTime    string      `json:"groundTime"`
	GroundHours   float64     `json:"groundHours"`
	TotalCost     *float64    `json:"totalCost,omitempty"`
	TotalTripTime string      `json:"totalTripTime"`
}

type DestinationSummaryResponse struct {
	Destination    string   `json:"destination"`
	Options        int      `json:"options"`
	MaxGroundHours float64  `json:"maxGroundHours"`
	MinTotalCost   *float64 `json:"minTotalCost,omitempty" copier:"-"`
}

type TripSearchResponse struct {
	Trips     []TripResponse               `json:"trips"`
	Summaries []DestinationSummaryResponse `json:"summaries"`
	Failed    []string                     `json:"failed"`
}

func FromDiscoveryResult(res *usecase.DiscoveryResult) (*TripSearchResponse, error) {
	out := &TripSearchResponse{
		Trips:     make([]TripResponse, 0, len(res.Trips)),
		Summaries: make([]DestinationSummaryResponse, 0, len(res.Summaries)),
		Failed:    append([]string{}, res.Failed...),
	}

	for _, row := range res.Trips {
		t := row.Trip
		outbound, err := fromLeg(t.Outbound())
		if err != nil {
			return nil, err
		}
		ret, err := fromLeg(t.Return())
		if err != nil {
			return nil, err
		}
		out.Trips = append(out.Trips, TripResponse{
			Rank:          t.Rank,
			Best:          t.Best,
			Destination:   t.Destination(),
			City:          row.City,
			Date:          t.Date().Format(time.DateOnly),
			Outbound:      outbound,
			Return:        ret,
			GroundTime:    t.GroundTime(),
			GroundHours:   t.GroundHoursRounded(),
			TotalCost:     ptr.IfOK(t.TotalCost()),
			TotalTripTime: t.TotalTripTime(),
		})
	}

	// copier appends to the destination slice
	if err := copier.Copy(&out.Summaries, res.Summaries); err != nil {
		return nil, err
	}
	for i, s := range res.Summaries {
		out.Summaries[i].MinTotalCost = ptr.Finite(s.MinTotalCost)
	}
	return out, nil
}

func fromLeg(f *flight.Flight) (LegResponse, error) {
	var leg LegResponse
	if err := copier.Copy(&leg, f); err != nil {
		return LegResponse{}, err
	}
	leg.Depart = f.DepartClock().String()
	leg.Arrive = f.ArriveClock().String()
	leg.Duration = flight.FormatDuration(f.DurationMinutes())
	leg.Price = ptr.IfOK(f.PrimaryCost())
	return leg, nil
}
