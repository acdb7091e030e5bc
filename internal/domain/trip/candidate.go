package trip

import (
	"math"
	"time"

	"sameday-trips/internal/domain/flight"
)

// Candidate pairs one outbound and one return flight for a single destination.
type Candidate struct {
	outbound      *flight.Flight
	ret           *flight.Flight
	groundMinutes float64
	totalCost     float64
	hasCost       bool
}

// FindTrips pairs every outbound with every return flight and keeps the pairs
// that leave at least minGroundHours on the ground. A negative minimum is
// treated as zero.
func FindTrips(outbound, returns []*flight.Flight, minGroundHours float64) []*Candidate {
	minGroundMinutes := math.Max(minGroundHours, 0) * 60

	var trips []*Candidate
	for _, out := range outbound {
		for _, ret := range returns {
			if out.Destination() != ret.Origin() {
				continue
			}
			ground := ret.DepartAt().Sub(out.ArriveAt()).Minutes()
			if ground < minGroundMinutes {
				continue
			}

			outCost, outOK := out.PrimaryCost()
			retCost, retOK := ret.PrimaryCost()
			trips = append(trips, &Candidate{
				outbound:      out,
				ret:           ret,
				groundMinutes: ground,
				totalCost:     outCost + retCost,
				hasCost:       outOK && retOK,
			})
		}
	}
	return trips
}

func (c *Candidate) Outbound() *flight.Flight { return c.outbound }
func (c *Candidate) Return() *flight.Flight   { return c.ret }
func (c *Candidate) Origin() string           { return c.outbound.Origin() }
func (c *Candidate) Destination() string      { return c.outbound.Destination() }
func (c *Candidate) Date() time.Time          { return c.outbound.DepartDate() }

func (c *Candidate) GroundHours() float64 { return c.groundMinutes / 60 }

// GroundHoursRounded is the ground time in hours rounded to two places.
func (c *Candidate) GroundHoursRounded() float64 {
	return math.Round(c.groundMinutes/60*100) / 100
}

func (c *Candidate) GroundTime() string {
	return flight.FormatDuration(int(c.groundMinutes))
}

// TotalCost is the sum of both legs' primary cabin cost. ok is false when
// either leg has no cost.
func (c *Candidate) TotalCost() (float64, bool) { return c.totalCost, c.hasCost }

func (c *Candidate) TotalTripMinutes() int {
	return c.outbound.DurationMinutes() + int(c.groundMinutes) + c.ret.DurationMinutes()
}

func (c *Candidate) TotalTripTime() string {
	return flight.FormatDuration(c.TotalTripMinutes())
}
