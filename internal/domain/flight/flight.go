package flight

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// maxZoneSkewMinutes bounds the UTC offset difference between the two
// airports of one flight when the source does not report offsets.
const maxZoneSkewMinutes = 12 * 60

var (
	ErrMissingAirport   = errors.New("origin and destination are required")
	ErrMissingTime      = errors.New("departure and arrival times are required")
	ErrMissingSegments  = errors.New("at least one segment is required")
	ErrNegativeStops    = errors.New("stop count must not be negative")
	ErrDurationMismatch = errors.New("duration does not match departure and arrival times")
)

// Flight is an immutable normalized flight offer.
// Departure and arrival are local wall-clock times at their own airports;
// the UTC location only carries them.
type Flight struct {
	origin          string
	destination     string
	departAt        time.Time
	arriveAt        time.Time
	durationMinutes int
	stops           int
	costs           Costs
	segments        []string
}

type Params struct {
	Origin          string
	Destination     string
	DepartAt        time.Time
	ArriveAt        time.Time
	DurationMinutes int
	Stops           int
	Costs           Costs
	Segments        []string
	// ZoneAware marks DepartAt/ArriveAt as carrying real UTC offsets.
	ZoneAware bool
}

func New(p Params) (*Flight, error) {
	origin := strings.ToUpper(strings.TrimSpace(p.Origin))
	destination := strings.ToUpper(strings.TrimSpace(p.Destination))
	if origin == "" || destination == "" {
		return nil, ErrMissingAirport
	}
	if p.DepartAt.IsZero() || p.ArriveAt.IsZero() {
		return nil, ErrMissingTime
	}
	if p.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidDuration, p.DurationMinutes)
	}
	if p.Stops < 0 {
		return nil, ErrNegativeStops
	}

	segments := make([]string, 0, len(p.Segments))
	for _, s := range p.Segments {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return nil, ErrMissingSegments
	}

	if err := crossCheck(p.DepartAt, p.ArriveAt, p.DurationMinutes, p.ZoneAware); err != nil {
		return nil, err
	}

	return &Flight{
		origin:          origin,
		destination:     destination,
		departAt:        wallClock(p.DepartAt),
		arriveAt:        wallClock(p.ArriveAt),
		durationMinutes: p.DurationMinutes,
		stops:           p.Stops,
		costs:           p.Costs,
		segments:        segments,
	}, nil
}

// crossCheck verifies the reported duration against the two timestamps.
// With offsets known the elapsed time must agree to the minute. Without them
// the wall-clock difference may differ from the duration only by a whole
// time-zone step: a multiple of 15 minutes, at most 12 hours.
func crossCheck(departAt, arriveAt time.Time, durationMinutes int, zoneAware bool) error {
	if zoneAware {
		elapsed := int(math.Round(arriveAt.Sub(departAt).Minutes()))
		if elapsed != durationMinutes {
			return fmt.Errorf("%w: elapsed %d, reported %d", ErrDurationMismatch, elapsed, durationMinutes)
		}
		return nil
	}

	wall := int(wallClock(arriveAt).Sub(wallClock(departAt)).Minutes())
	skew := wall - durationMinutes
	if skew%15 != 0 || skew > maxZoneSkewMinutes || skew < -maxZoneSkewMinutes {
		return fmt.Errorf("%w: wall %d, reported %d", ErrDurationMismatch, wall, durationMinutes)
	}
	return nil
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func (f *Flight) Origin() string       { return f.origin }
func (f *Flight) Destination() string  { return f.destination }
func (f *Flight) DepartAt() time.Time  { return f.departAt }
func (f *Flight) ArriveAt() time.Time  { return f.arriveAt }
func (f *Flight) DurationMinutes() int { return f.durationMinutes }
func (f *Flight) Stops() int           { return f.stops }
func (f *Flight) IsDirect() bool       { return f.stops == 0 }
func (f *Flight) Costs() Costs         { return f.costs }

func (f *Flight) DepartClock() ClockTime { return ClockOf(f.departAt) }
func (f *Flight) ArriveClock() ClockTime { return ClockOf(f.arriveAt) }

func (f *Flight) DepartDate() time.Time {
	y, m, d := f.departAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (f *Flight) ArrivesNextDay() bool {
	return !sameDay(f.departAt, f.arriveAt)
}

// PrimaryCost is the main-cabin cost or, failing that, the cheapest cabin.
func (f *Flight) PrimaryCost() (float64, bool) {
	return f.costs.Primary()
}

func (f *Flight) Segments() []string {
	out := make([]string, len(f.segments))
	copy(out, f.segments)
	return out
}

func (f *Flight) FlightNumbers() string {
	return strings.Join(f.segments, ", ")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
