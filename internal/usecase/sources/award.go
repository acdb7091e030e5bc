package sources

import (
	"context"
	"log/slog"
	"time"

	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/domain/pricing"
	"sameday-trips/internal/usecase/shared"
)

const AwardMaxDiffMinutes = 30

// AwardAdapter prices a leg in miles from a rendered award-search page.
// Every render goes through the lease.
type AwardAdapter struct {
	renderer   shared.AwardRenderer
	lease      *Lease
	maxRetries int
	backoff    time.Duration
	logger     *slog.Logger
}

func NewAwardAdapter(renderer shared.AwardRenderer, lease *Lease, maxRetries int, backoff time.Duration, logger *slog.Logger) *AwardAdapter {
	return &AwardAdapter{
		renderer:   renderer,
		lease:      lease,
		maxRetries: maxRetries,
		backoff:    backoff,
		logger:     logger,
	}
}

func (a *AwardAdapter) Source() pricing.Source { return pricing.SourceAward }

func (a *AwardAdapter) FetchPrice(ctx context.Context, req Request) pricing.Result[pricing.AwardMiles] {
	release, err := a.lease.Acquire(ctx)
	if err != nil {
		return unavailable[pricing.AwardMiles](a.logger, a.Source(), req, err)
	}
	defer release()

	page, err := shared.RunWithRetry(ctx, a.maxRetries, a.backoff, func(ctx context.Context) (shared.AwardPage, error) {
		return a.renderer.RenderAndExtract(ctx, req.Origin, req.Destination, req.Date)
	})
	if err != nil {
		return unavailable[pricing.AwardMiles](a.logger, a.Source(), req, err)
	}
	if !page.Parsed {
		return noAvailability[pricing.AwardMiles](a.logger, a.Source(), req, "award page not parseable")
	}
	if len(page.Offers) == 0 {
		return noAvailability[pricing.AwardMiles](a.logger, a.Source(), req, "award page lists no flights")
	}

	raws := make([]flight.RawOffer, 0, len(page.Offers))
	for _, o := range page.Offers {
		raws = append(raws, o)
	}
	flights, failures := flight.NormalizeAll(raws)
	logMalformed(a.logger, a.Source(), req, failures)

	best, ok := flight.FindBestMatch(flights, req.Target, AwardMaxDiffMinutes)
	if !ok {
		return noAvailability[pricing.AwardMiles](a.logger, a.Source(), req, "no award flight departs near target time")
	}

	var miles pricing.AwardMiles
	if v, ok := best.Costs().Get(flight.CabinMain); ok {
		miles.Main = &v
	}
	if v, ok := best.Costs().Get(flight.CabinFirst); ok {
		miles.First = &v
	}
	if miles.Main == nil && miles.First == nil {
		return noAvailability[pricing.AwardMiles](a.logger, a.Source(), req, "matched award flight has no main or first cabin")
	}
	return pricing.OK(miles)
}
