package sources

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/domain/pricing"
	"sameday-trips/internal/pkg/errs"
)

// Request asks one source for a price on one route and date.
type Request struct {
	Origin      string
	Destination string
	// City is the destination's display name; rentals search by it.
	City   string
	Date   time.Time
	Target flight.ClockTime
	// Until closes the requested window. Only rentals use it.
	Until flight.ClockTime
}

func (r Request) logArgs(src pricing.Source) []any {
	return []any{
		slog.String("source", string(src)),
		slog.String("origin", r.Origin),
		slog.String("destination", r.Destination),
		slog.String("date", r.Date.Format(time.DateOnly)),
		slog.String("target", r.Target.String()),
	}
}

// Adapter fetches one kind of price. It never returns an error: every
// failure is folded into an Unavailable result.
type Adapter[T any] interface {
	Source() pricing.Source
	FetchPrice(ctx context.Context, req Request) pricing.Result[T]
}

func classify(err error) pricing.Reason {
	switch {
	case errs.Is(err, errs.ErrAuthentication):
		return pricing.ReasonAuth
	case errors.Is(err, context.DeadlineExceeded), errs.Is(err, ErrPollCeiling):
		return pricing.ReasonTimeout
	default:
		return pricing.ReasonFetchFailed
	}
}

func unavailable[T any](logger *slog.Logger, src pricing.Source, req Request, err error) pricing.Result[T] {
	reason := classify(err)
	args := append(req.logArgs(src), slog.String("reason", string(reason)), slog.String("error", err.Error()))
	logger.Warn("price fetch failed", args...)
	return pricing.Unavailable[T](reason, errs.Mark(err, errs.ErrSourceUnavailable))
}

func noAvailability[T any](logger *slog.Logger, src pricing.Source, req Request, msg string) pricing.Result[T] {
	logger.Info(msg, req.logArgs(src)...)
	return pricing.Unavailable[T](pricing.ReasonNoAvailability, nil)
}

func logMalformed(logger *slog.Logger, src pricing.Source, req Request, failures []error) {
	for _, err := range failures {
		args := append(req.logArgs(src), slog.String("error", err.Error()))
		logger.Debug("skipping malformed offer", args...)
	}
}
