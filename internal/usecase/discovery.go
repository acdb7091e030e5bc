package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/domain/trip"
	"sameday-trips/internal/pkg/config"
	"sameday-trips/internal/pkg/errs"
	"sameday-trips/internal/usecase/shared"
)

var ErrInvalidSearchWindow = errs.New("invalid search window")

type DiscoveryOptions struct {
	Origin             string
	Date               time.Time
	DepartByHour       int
	ReturnAfterHour    int
	ReturnByHour       int
	MinGroundHours     float64
	MaxDurationMinutes int
	Destinations       []string
	Limit              int
}

// DiscoveryOptionsFrom fills options from the configured search window.
func DiscoveryOptionsFrom(cfg config.SearchConfig, date time.Time) DiscoveryOptions {
	return DiscoveryOptions{
		Origin:             cfg.Origin,
		Date:               date,
		DepartByHour:       cfg.DepartByHour,
		ReturnAfterHour:    cfg.ReturnAfterHour,
		ReturnByHour:       cfg.ReturnByHour,
		MinGroundHours:     cfg.MinGroundTimeHours,
		MaxDurationMinutes: cfg.MaxDurationMinutes,
	}
}

func (o DiscoveryOptions) validate() error {
	switch {
	case o.Origin == "":
		return errs.Wrap(ErrInvalidSearchWindow, "origin is required")
	case o.Date.IsZero():
		return errs.Wrap(ErrInvalidSearchWindow, "date is required")
	case o.ReturnAfterHour >= o.ReturnByHour:
		return errs.Wrapf(ErrInvalidSearchWindow, "return window [%d, %d) is empty", o.ReturnAfterHour, o.ReturnByHour)
	case o.MaxDurationMinutes <= 0:
		return errs.Wrap(ErrInvalidSearchWindow, "max duration must be positive")
	}
	return nil
}

type DiscoveryResult struct {
	Trips     []shared.TripRow
	Summaries []trip.DestinationSummary
	// Failed lists destinations whose fare search failed.
	Failed []string
}

type DiscoveryUseCase interface {
	// Search finds and ranks same-day trips without writing anything.
	Search(ctx context.Context, opts DiscoveryOptions) (*DiscoveryResult, error)
	// Discover runs Search, writes every trip and turns the best option of
	// each destination into the pricing work list.
	Discover(ctx context.Context, opts DiscoveryOptions) (*DiscoveryResult, error)
}

type discoveryUseCaseImpl struct {
	fares            shared.FareSearcher
	catalog          shared.DestinationCatalog
	trips            shared.TripSink
	workList         shared.WorkListStore
	maxResults       int
	destinationDelay time.Duration
	logger           *slog.Logger
}

func NewDiscoveryUseCase(
	fares shared.FareSearcher,
	catalog shared.DestinationCatalog,
	trips shared.TripSink,
	workList shared.WorkListStore,
	cfg config.Config,
	logger *slog.Logger,
) DiscoveryUseCase {
	return &discoveryUseCaseImpl{
		fares:            fares,
		catalog:          catalog,
		trips:            trips,
		workList:         workList,
		maxResults:       cfg.Search.MaxResults,
		destinationDelay: cfg.Run.DestinationDelay,
		logger:           logger,
	}
}

func (u *discoveryUseCaseImpl) Search(ctx context.Context, opts DiscoveryOptions) (*DiscoveryResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	origin := strings.ToUpper(opts.Origin)

	destinations, err := u.catalog.Destinations(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load destination catalog")
	}
	destinations = selectDestinations(destinations, origin, opts.Destinations, opts.Limit)

	cities := make(map[string]string, len(destinations))
	result := &DiscoveryResult{}
	var candidates []*trip.Candidate
	for i, dest := range destinations {
		if i > 0 && !sleepCtx(ctx, u.destinationDelay) {
			return nil, ctx.Err()
		}
		cities[dest.Code] = dest.City

		found, err := u.searchDestination(ctx, origin, dest, opts)
		if err != nil {
			if errs.Is(err, errs.ErrAuthentication) || ctx.Err() != nil {
				return nil, err
			}
			u.logger.Warn("trip search failed",
				"origin", origin,
				"destination", dest.Code,
				"date", opts.Date.Format(time.DateOnly),
				"error", err.Error())
			result.Failed = append(result.Failed, dest.Code)
			continue
		}
		candidates = append(candidates, found...)
	}

	ranked := trip.Rank(candidates)
	for _, r := range ranked {
		result.Trips = append(result.Trips, shared.TripRow{City: cities[r.Destination()], Trip: r})
	}
	result.Summaries = trip.Summarize(ranked)
	for _, s := range result.Summaries {
		u.logger.Info("destination summary",
			"destination", s.Destination,
			"city", cities[s.Destination],
			"options", s.Options,
			"max_ground_hours", s.MaxGroundHours,
			"min_total_cost", s.MinTotalCost)
	}
	return result, nil
}

func (u *discoveryUseCaseImpl) searchDestination(ctx context.Context, origin string, dest shared.Destination, opts DiscoveryOptions) ([]*trip.Candidate, error) {
	outbound, err := u.searchFlights(ctx, origin, dest.Code, opts.Date)
	if err != nil {
		return nil, err
	}
	outbound = trip.FilterOutbound(outbound, opts.DepartByHour, opts.MaxDurationMinutes)
	u.logger.Debug("outbound flights", "destination", dest.Code, "early_flights", len(outbound))
	if len(outbound) == 0 {
		return nil, nil
	}

	returns, err := u.searchFlights(ctx, dest.Code, origin, opts.Date)
	if err != nil {
		return nil, err
	}
	returns = trip.FilterReturn(returns, opts.ReturnAfterHour, opts.ReturnByHour, opts.MaxDurationMinutes)
	u.logger.Debug("return flights", "destination", dest.Code, "return_flights", len(returns))
	if len(returns) == 0 {
		return nil, nil
	}

	found := trip.FindTrips(outbound, returns, opts.MinGroundHours)
	u.logger.Info("same-day trips found", "destination", dest.Code, "city", dest.City, "trips", len(found))
	return found, nil
}

func (u *discoveryUseCaseImpl) searchFlights(ctx context.Context, origin, destination string, date time.Time) ([]*flight.Flight, error) {
	offers, err := u.fares.Search(ctx, shared.FareQuery{
		Origin:      origin,
		Destination: destination,
		Date:        date,
		Adults:      1,
		MaxResults:  u.maxResults,
	})
	if err != nil {
		return nil, err
	}
	raws := make([]flight.RawOffer, 0, len(offers))
	for _, o := range offers {
		raws = append(raws, o)
	}
	flights, failures := flight.NormalizeAll(raws)
	for _, ferr := range failures {
		u.logger.Debug("skipping malformed offer", "origin", origin, "destination", destination, "error", ferr.Error())
	}
	return flights, nil
}

func (u *discoveryUseCaseImpl) Discover(ctx context.Context, opts DiscoveryOptions) (*DiscoveryResult, error) {
	result, err := u.Search(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := u.trips.WriteTrips(ctx, result.Trips); err != nil {
		return nil, errs.Wrap(err, "failed to write trips")
	}

	var items []shared.WorkItem
	for _, row := range result.Trips {
		if !row.Trip.Best {
			continue
		}
		arrive := row.Trip.Outbound().ArriveClock()
		items = append(items, shared.WorkItem{
			Destination:       row.Trip.Destination(),
			City:              row.City,
			DepartOrigin:      row.Trip.Outbound().DepartClock(),
			ArriveDestination: &arrive,
			DepartDestination: row.Trip.Return().DepartClock(),
		})
	}
	if err := u.workList.Save(ctx, items); err != nil {
		return nil, errs.Wrap(err, "failed to write work list")
	}
	u.logger.Info("discovery finished", "trips", len(result.Trips), "destinations", len(items), "failed", len(result.Failed))
	return result, nil
}

func selectDestinations(all []shared.Destination, origin string, wanted []string, limit int) []shared.Destination {
	filter := make(map[string]bool, len(wanted))
	for _, w := range wanted {
		filter[strings.ToUpper(strings.TrimSpace(w))] = true
	}
	out := make([]shared.Destination, 0, len(all))
	for _, d := range all {
		if d.Code == origin {
			continue
		}
		if len(filter) > 0 && !filter[d.Code] {
			continue
		}
		out = append(out, d)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
