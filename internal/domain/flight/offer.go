package flight

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sameday-trips/internal/pkg/errs"
)

type SourceKind string

const (
	SourceFareAPI   SourceKind = "fare_api"
	SourceAwardPage SourceKind = "award_page"
)

// RawOffer is an unvalidated offer as delivered by one pricing source.
type RawOffer interface {
	Kind() SourceKind
}

// RawSegment is one leg of a structured fare-API itinerary.
// Timestamps are ISO-8601, with or without a UTC offset.
type RawSegment struct {
	CarrierCode      string
	Number           string
	DepartureAirport string
	DepartureAt      string
	ArrivalAirport   string
	ArrivalAt        string
}

type RawFareOffer struct {
	Duration   string
	Segments   []RawSegment
	TotalPrice string
	Currency   string
}

func (RawFareOffer) Kind() SourceKind { return SourceFareAPI }

// RawAwardOffer is a flight card scraped from a rendered award-search page.
type RawAwardOffer struct {
	Date          time.Time
	Origin        string
	Destination   string
	DepartTime    string
	ArriveTime    string
	Duration      string
	Stops         string
	FlightNumbers []string
	// Miles maps the page's cabin label to its displayed mileage, e.g. "Main Cabin" → "20K".
	Miles map[string]string
}

func (RawAwardOffer) Kind() SourceKind { return SourceAwardPage }

// MalformedOfferError reports the field that made an offer unusable.
type MalformedOfferError struct {
	Source SourceKind
	Field  string
	Err    error
}

func (e *MalformedOfferError) Error() string {
	return fmt.Sprintf("malformed %s offer: %s: %v", e.Source, e.Field, e.Err)
}

func (e *MalformedOfferError) Unwrap() error { return e.Err }

func (e *MalformedOfferError) Is(target error) bool {
	return target == errs.ErrMalformedOffer
}

func malformed(source SourceKind, field string, err error) error {
	return &MalformedOfferError{Source: source, Field: field, Err: err}
}

// Normalize converts a raw offer from any source into a Flight.
func Normalize(raw RawOffer) (*Flight, error) {
	switch o := raw.(type) {
	case RawFareOffer:
		return normalizeFare(o)
	case *RawFareOffer:
		return normalizeFare(*o)
	case RawAwardOffer:
		return normalizeAward(o)
	case *RawAwardOffer:
		return normalizeAward(*o)
	default:
		return nil, errs.Mark(errs.Newf("unsupported offer type %T", raw), errs.ErrMalformedOffer)
	}
}

// NormalizeAll keeps every offer that normalizes and reports the rest.
func NormalizeAll(raws []RawOffer) ([]*Flight, []error) {
	flights := make([]*Flight, 0, len(raws))
	var failures []error
	for _, raw := range raws {
		f, err := Normalize(raw)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		flights = append(flights, f)
	}
	return flights, failures
}

func normalizeFare(o RawFareOffer) (*Flight, error) {
	if len(o.Segments) == 0 {
		return nil, malformed(SourceFareAPI, "segments", ErrMissingSegments)
	}
	first, last := o.Segments[0], o.Segments[len(o.Segments)-1]

	departAt, departZoned, err := parseTimestamp(first.DepartureAt)
	if err != nil {
		return nil, malformed(SourceFareAPI, "departure", err)
	}
	arriveAt, arriveZoned, err := parseTimestamp(last.ArrivalAt)
	if err != nil {
		return nil, malformed(SourceFareAPI, "arrival", err)
	}
	zoneAware := departZoned && arriveZoned

	var duration int
	if strings.TrimSpace(o.Duration) != "" {
		if duration, err = ParseDuration(o.Duration); err != nil {
			return nil, malformed(SourceFareAPI, "duration", err)
		}
	} else {
		if !zoneAware {
			departAt, arriveAt = wallClock(departAt), wallClock(arriveAt)
		}
		duration = int(arriveAt.Sub(departAt).Minutes())
	}

	segments := make([]string, 0, len(o.Segments))
	for i, s := range o.Segments {
		carrier, number := strings.TrimSpace(s.CarrierCode), strings.TrimSpace(s.Number)
		if carrier == "" || number == "" {
			return nil, malformed(SourceFareAPI, fmt.Sprintf("segments[%d]", i), ErrMissingSegments)
		}
		segments = append(segments, carrier+number)
	}

	if c := strings.TrimSpace(o.Currency); c != "" && !strings.EqualFold(c, string(UnitUSD)) {
		return nil, malformed(SourceFareAPI, "currency", fmt.Errorf("%w: %q", ErrUnknownUnit, c))
	}
	price, err := ParseCost(UnitUSD, o.TotalPrice)
	if err != nil {
		return nil, malformed(SourceFareAPI, "price", err)
	}
	costs, err := NewCosts(UnitUSD, map[string]float64{CabinMain: price})
	if err != nil {
		return nil, malformed(SourceFareAPI, "price", err)
	}

	f, err := New(Params{
		Origin:          first.DepartureAirport,
		Destination:     last.ArrivalAirport,
		DepartAt:        departAt,
		ArriveAt:        arriveAt,
		DurationMinutes: duration,
		Stops:           len(o.Segments) - 1,
		Costs:           costs,
		Segments:        segments,
		ZoneAware:       zoneAware,
	})
	if err != nil {
		return nil, malformed(SourceFareAPI, "flight", err)
	}
	return f, nil
}

func normalizeAward(o RawAwardOffer) (*Flight, error) {
	if o.Date.IsZero() {
		return nil, malformed(SourceAwardPage, "date", ErrMissingTime)
	}
	depart, departOffset, err := ParseDisplayTime(o.DepartTime)
	if err != nil {
		return nil, malformed(SourceAwardPage, "depart_time", err)
	}
	arrive, arriveOffset, err := ParseDisplayTime(o.ArriveTime)
	if err != nil {
		return nil, malformed(SourceAwardPage, "arrive_time", err)
	}
	duration, err := ParseDuration(o.Duration)
	if err != nil {
		return nil, malformed(SourceAwardPage, "duration", err)
	}
	stops, err := ParseStops(o.Stops)
	if err != nil {
		return nil, malformed(SourceAwardPage, "stops", err)
	}
	costs, err := ParseCosts(UnitMiles, o.Miles)
	if err != nil {
		return nil, malformed(SourceAwardPage, "miles", err)
	}

	params := Params{
		Origin:          o.Origin,
		Destination:     o.Destination,
		DepartAt:        depart.On(o.Date).AddDate(0, 0, departOffset),
		ArriveAt:        arrive.On(o.Date).AddDate(0, 0, arriveOffset),
		DurationMinutes: duration,
		Stops:           stops,
		Costs:           costs,
		Segments:        o.FlightNumbers,
	}
	f, err := New(params)
	if errors.Is(err, ErrDurationMismatch) && arriveOffset == departOffset {
		// pages sometimes drop the "+1" marker on overnight arrivals
		params.ArriveAt = params.ArriveAt.AddDate(0, 0, 1)
		f, err = New(params)
	}
	if err != nil {
		return nil, malformed(SourceAwardPage, "flight", err)
	}
	return f, nil
}

var timestampLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339, true},
	{"2006-01-02T15:04Z07:00", true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
}

func parseTimestamp(s string) (time.Time, bool, error) {
	value := strings.TrimSpace(s)
	if value == "" {
		return time.Time{}, false, ErrMissingTime
	}
	for _, l := range timestampLayouts {
		if t, err := time.Parse(l.layout, value); err == nil {
			return t, l.zoned, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognized timestamp %q", s)
}
