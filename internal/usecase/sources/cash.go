package sources

import (
	"context"
	"log/slog"

	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/domain/pricing"
	"sameday-trips/internal/usecase/shared"
)

const CashMaxDiffMinutes = 60

// CashAdapter prices a leg from a fare-search API, matching the offer that
// departs closest to the target time.
type CashAdapter struct {
	fares      shared.FareSearcher
	maxResults int
	logger     *slog.Logger
}

func NewCashAdapter(fares shared.FareSearcher, maxResults int, logger *slog.Logger) *CashAdapter {
	return &CashAdapter{fares: fares, maxResults: maxResults, logger: logger}
}

func (a *CashAdapter) Source() pricing.Source { return pricing.SourceCash }

func (a *CashAdapter) FetchPrice(ctx context.Context, req Request) pricing.Result[float64] {
	offers, err := a.fares.Search(ctx, shared.FareQuery{
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        req.Date,
		Adults:      1,
		MaxResults:  a.maxResults,
	})
	if err != nil {
		return unavailable[float64](a.logger, a.Source(), req, err)
	}

	raws := make([]flight.RawOffer, 0, len(offers))
	for _, o := range offers {
		raws = append(raws, o)
	}
	flights, failures := flight.NormalizeAll(raws)
	logMalformed(a.logger, a.Source(), req, failures)

	best, ok := flight.FindBestMatch(flights, req.Target, CashMaxDiffMinutes)
	if !ok {
		return noAvailability[float64](a.logger, a.Source(), req, "no fare departs near target time")
	}
	price, ok := best.PrimaryCost()
	if !ok {
		return noAvailability[float64](a.logger, a.Source(), req, "matched fare has no price")
	}

	a.logger.Debug("fare matched", append(req.logArgs(a.Source()),
		slog.String("flight", best.FlightNumbers()),
		slog.String("depart", best.DepartClock().String()),
		slog.Float64("price", price))...)
	return pricing.OK(price)
}
