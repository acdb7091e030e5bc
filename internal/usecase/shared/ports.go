package shared

import (
	"context"
	"time"

	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/domain/pricing"
	"sameday-trips/internal/domain/trip"
)

// Collaborator ports. Implementations mark credential failures with
// errs.ErrAuthentication and every other call failure with errs.ErrSourceUnavailable.

type FareQuery struct {
	Origin      string
	Destination string
	Date        time.Time
	Adults      int
	MaxResults  int
}

type FareSearcher interface {
	Search(ctx context.Context, q FareQuery) ([]flight.RawFareOffer, error)
}

// AwardPage is what one render of an award-search result yielded.
// Parsed is false when the page came back but its structure was not recognized.
type AwardPage struct {
	Offers []flight.RawAwardOffer
	Parsed bool
}

type AwardRenderer interface {
	RenderAndExtract(ctx context.Context, origin, destination string, date time.Time) (AwardPage, error)
}

type RentalQuery struct {
	Location  string
	From      time.Time
	Until     time.Time
	DriverAge int
}

type RentalJobs interface {
	SubmitJob(ctx context.Context, q RentalQuery) (string, error)
	PollStatus(ctx context.Context, jobID string) (pricing.JobStatus, error)
	FetchResults(ctx context.Context, jobID string) ([]pricing.Vehicle, error)
}

// Storage ports.

type Destination struct {
	Code string
	City string
}

type DestinationCatalog interface {
	Destinations(ctx context.Context) ([]Destination, error)
}

// WorkItem is one destination to price, carrying the schedule chosen at discovery.
type WorkItem struct {
	Destination       string
	City              string
	DepartOrigin      flight.ClockTime
	ArriveDestination *flight.ClockTime
	DepartDestination flight.ClockTime
}

type WorkListStore interface {
	Load(ctx context.Context) ([]WorkItem, error)
	Save(ctx context.Context, items []WorkItem) error
}

// DatasetStore persists the full pricing dataset. Save replaces the stored
// dataset atomically so a reader never sees a partial write.
type DatasetStore interface {
	Save(ctx context.Context, records []pricing.Record) error
	Load(ctx context.Context) ([]pricing.Record, error)
}

type TripRow struct {
	City string
	Trip trip.Ranked
}

type TripSink interface {
	WriteTrips(ctx context.Context, rows []TripRow) error
}
