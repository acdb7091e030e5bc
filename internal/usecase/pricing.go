package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/domain/pricing"
	"sameday-trips/internal/pkg/clock"
	"sameday-trips/internal/pkg/config"
	"sameday-trips/internal/pkg/errs"
	"sameday-trips/internal/usecase/shared"
	"sameday-trips/internal/usecase/sources"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrPricingRecordNotFound = errs.Mark(errs.New("pricing record not found"), errs.ErrNotFound)
	ErrCheckpointFailed      = errs.New("failed to checkpoint pricing dataset")
)

// defaultPickup is used when the work list has no arrival time at the destination.
var defaultPickup = flight.MustClockTime(10, 0)

type PricingOptions struct {
	Date         time.Time
	Destinations []string
	Limit        int
	SkipCash     bool
	SkipAward    bool
	SkipCar      bool
	Resume       bool
}

type RunSummary struct {
	RunID       uuid.UUID
	Processed   int
	Resumed     int
	Statuses    map[string]string
	Chronic     []string
	Disabled    []pricing.Source
	Interrupted bool
}

type PricingUseCase interface {
	Run(ctx context.Context, opts PricingOptions) (*RunSummary, error)
	Records(ctx context.Context, destination string) ([]pricing.Record, error)
	Latest(ctx context.Context, destination string) (*pricing.Record, error)
}

type pricingUseCaseImpl struct {
	cash             sources.Adapter[float64]
	award            sources.Adapter[pricing.AwardMiles]
	car              sources.Adapter[pricing.Vehicle]
	carEnabled       bool
	workList         shared.WorkListStore
	dataset          shared.DatasetStore
	clock            clock.Clock
	origin           string
	adapterTimeout   time.Duration
	destinationDelay time.Duration
	logger           *slog.Logger
}

func NewPricingUseCase(
	cash sources.Adapter[float64],
	award sources.Adapter[pricing.AwardMiles],
	car sources.Adapter[pricing.Vehicle],
	workList shared.WorkListStore,
	dataset shared.DatasetStore,
	clock clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) PricingUseCase {
	return &pricingUseCaseImpl{
		cash:             cash,
		award:            award,
		car:              car,
		carEnabled:       cfg.Rental.Enabled(),
		workList:         workList,
		dataset:          dataset,
		clock:            clock,
		origin:           cfg.Search.Origin,
		adapterTimeout:   cfg.Run.AdapterTimeout,
		destinationDelay: cfg.Run.DestinationDelay,
		logger:           logger,
	}
}

// Run prices every work-list destination in order and checkpoints the full
// dataset after each one. Cancelling ctx stops new destinations from
// starting; the destination in flight still completes and is checkpointed.
func (u *pricingUseCaseImpl) Run(ctx context.Context, opts PricingOptions) (*RunSummary, error) {
	items, err := u.workList.Load(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load work list")
	}
	items = selectWorkItems(items, opts.Destinations, opts.Limit)

	records, err := u.dataset.Load(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load pricing dataset")
	}
	done := map[string]bool{}
	if opts.Resume {
		done = finalizedFor(records, opts.Date)
	}

	summary := &RunSummary{RunID: uuid.New(), Statuses: map[string]string{}}
	disabled := map[pricing.Source]bool{}
	if !u.carEnabled && !opts.SkipCar {
		u.logger.Warn("car rental pricing disabled: no rental token configured")
		opts.SkipCar = true
	}

	// in-flight work must outlive an interrupt so its checkpoint lands
	work := context.WithoutCancel(ctx)
	started := 0
	for i, item := range items {
		if done[item.Destination] {
			summary.Resumed++
			u.logger.Info("skipping destination already priced", "destination", item.Destination, "index", i+1, "total", len(items))
			continue
		}
		if started > 0 && !sleepCtx(ctx, u.destinationDelay) {
			summary.Interrupted = true
			break
		}
		if ctx.Err() != nil {
			summary.Interrupted = true
			break
		}
		started++

		u.logger.Info("pricing destination", "destination", item.Destination, "city", item.City, "index", i+1, "total", len(items))
		rec, err := u.priceDestination(work, summary.RunID, item, opts, disabled)
		if err != nil {
			return summary, err
		}

		records = append(records, *rec)
		if err := u.checkpoint(work, records); err != nil {
			return summary, err
		}
		summary.Processed++
		summary.Statuses[rec.Destination] = rec.Status
		if rec.AllSourcesFailed() {
			summary.Chronic = append(summary.Chronic, rec.Destination)
		}
	}

	for _, src := range pricing.SourceOrder {
		if disabled[src] {
			summary.Disabled = append(summary.Disabled, src)
		}
	}
	u.logger.Info("pricing run finished",
		"run_id", summary.RunID.String(),
		"processed", summary.Processed,
		"resumed", summary.Resumed,
		"chronic_failures", len(summary.Chronic),
		"interrupted", summary.Interrupted)
	return summary, nil
}

// priceDestination runs the three sources concurrently and merges their
// results once all of them have settled.
func (u *pricingUseCaseImpl) priceDestination(
	ctx context.Context,
	runID uuid.UUID,
	item shared.WorkItem,
	opts PricingOptions,
	disabled map[pricing.Source]bool,
) (*pricing.Record, error) {
	outbound := sources.Request{
		Origin:      u.origin,
		Destination: item.Destination,
		City:        item.City,
		Date:        opts.Date,
		Target:      item.DepartOrigin,
	}
	inbound := sources.Request{
		Origin:      item.Destination,
		Destination: u.origin,
		City:        item.City,
		Date:        opts.Date,
		Target:      item.DepartDestination,
	}
	pickup := defaultPickup
	if item.ArriveDestination != nil {
		pickup = *item.ArriveDestination
	}
	rental := sources.Request{
		Origin:      u.origin,
		Destination: item.Destination,
		City:        item.City,
		Date:        opts.Date,
		Target:      pickup,
		Until:       item.DepartDestination,
	}

	runCash := !opts.SkipCash && !disabled[pricing.SourceCash]
	runAward := !opts.SkipAward && !disabled[pricing.SourceAward]
	runCar := !opts.SkipCar && !disabled[pricing.SourceCar]

	var (
		g       errgroup.Group
		cashQ   pricing.CashQuote
		awardQ  pricing.AwardQuote
		carRes  pricing.Result[pricing.Vehicle]
		timeout = u.adapterTimeout
	)

	if runCash {
		g.Go(func() error {
			cashQ.Outbound = callWithTimeout(ctx, timeout, u.cash, outbound)
			cashQ.Return = nextLeg(ctx, timeout, u.cash, inbound, cashQ.Outbound)
			return nil
		})
	}
	if runAward {
		g.Go(func() error {
			awardQ.Outbound = callWithTimeout(ctx, timeout, u.award, outbound)
			awardQ.Return = nextLeg(ctx, timeout, u.award, inbound, awardQ.Outbound)
			return nil
		})
	}
	if runCar {
		g.Go(func() error {
			carRes = callWithTimeout(ctx, timeout, u.car, rental)
			return nil
		})
	}
	_ = g.Wait()

	rec := pricing.NewRecord(runID, item.Destination, item.City, opts.Date)
	steps := []struct {
		src     pricing.Source
		skipped bool
		ran     bool
		apply   func() error
		authErr bool
	}{
		{pricing.SourceCash, opts.SkipCash, runCash, func() error { return rec.ApplyCash(cashQ) },
			cashQ.Outbound.Reason() == pricing.ReasonAuth || cashQ.Return.Reason() == pricing.ReasonAuth},
		{pricing.SourceAward, opts.SkipAward, runAward, func() error { return rec.ApplyAward(awardQ) },
			awardQ.Outbound.Reason() == pricing.ReasonAuth || awardQ.Return.Reason() == pricing.ReasonAuth},
		{pricing.SourceCar, opts.SkipCar, runCar, func() error { return rec.ApplyCar(carRes) },
			carRes.Reason() == pricing.ReasonAuth},
	}
	for _, s := range steps {
		var err error
		switch {
		case s.skipped:
			err = rec.Skip(s.src)
		case !s.ran:
			err = rec.Fail(s.src)
		default:
			err = s.apply()
		}
		if err != nil {
			return nil, errs.Wrapf(err, "failed to record %s result for %s", s.src, item.Destination)
		}
		if s.ran && s.authErr && !disabled[s.src] {
			disabled[s.src] = true
			u.logger.Error("source disabled for the rest of the run",
				"source", string(s.src),
				"destination", item.Destination,
				"error", errs.ErrAuthentication.Error())
		}
	}

	if err := rec.Finalize(u.clock.Now()); err != nil {
		return nil, err
	}
	if rec.AllSourcesFailed() {
		u.logger.Error("all pricing sources failed",
			"destination", item.Destination,
			"date", opts.Date.Format(time.DateOnly),
			"status", rec.Status,
			"error", errs.ErrChronicDestinationFailure.Error())
	} else {
		u.logger.Info("destination priced", "destination", item.Destination, "status", rec.Status)
	}
	return rec, nil
}

func (u *pricingUseCaseImpl) checkpoint(ctx context.Context, records []pricing.Record) error {
	snapshot := make([]pricing.Record, len(records))
	for i := range records {
		snapshot[i] = records[i].Clone()
	}
	if err := u.dataset.Save(ctx, snapshot); err != nil {
		return errs.Mark(err, ErrCheckpointFailed)
	}
	return nil
}

func (u *pricingUseCaseImpl) Records(ctx context.Context, destination string) ([]pricing.Record, error) {
	records, err := u.dataset.Load(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load pricing dataset")
	}
	if destination == "" {
		return records, nil
	}
	code := strings.ToUpper(strings.TrimSpace(destination))
	filtered := make([]pricing.Record, 0, len(records))
	for _, r := range records {
		if r.Destination == code {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (u *pricingUseCaseImpl) Latest(ctx context.Context, destination string) (*pricing.Record, error) {
	records, err := u.Records(ctx, destination)
	if err != nil {
		return nil, err
	}
	var latest *pricing.Record
	for i := range records {
		if latest == nil || !records[i].UpdatedAt.Before(latest.UpdatedAt) {
			latest = &records[i]
		}
	}
	if latest == nil {
		return nil, ErrPricingRecordNotFound
	}
	return latest, nil
}

// callWithTimeout bounds one adapter call. An adapter that ignores its
// context is abandoned once the timeout fires.
func callWithTimeout[T any](ctx context.Context, timeout time.Duration, a sources.Adapter[T], req sources.Request) pricing.Result[T] {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan pricing.Result[T], 1)
	go func() { done <- a.FetchPrice(ctx, req) }()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		return pricing.Unavailable[T](pricing.ReasonTimeout, errs.Mark(ctx.Err(), errs.ErrSourceUnavailable))
	}
}

// nextLeg skips the second leg of a source whose credentials were just rejected.
func nextLeg[T, P any](ctx context.Context, timeout time.Duration, a sources.Adapter[T], req sources.Request, prev pricing.Result[P]) pricing.Result[T] {
	if prev.Reason() == pricing.ReasonAuth {
		return pricing.Unavailable[T](pricing.ReasonAuth, prev.Err())
	}
	return callWithTimeout(ctx, timeout, a, req)
}

func selectWorkItems(items []shared.WorkItem, destinations []string, limit int) []shared.WorkItem {
	if len(destinations) > 0 {
		wanted := make(map[string]bool, len(destinations))
		for _, d := range destinations {
			wanted[strings.ToUpper(strings.TrimSpace(d))] = true
		}
		filtered := make([]shared.WorkItem, 0, len(items))
		for _, it := range items {
			if wanted[it.Destination] {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func finalizedFor(records []pricing.Record, date time.Time) map[string]bool {
	done := make(map[string]bool, len(records))
	for _, r := range records {
		if r.Finalized && r.PricingDate.Equal(date) {
			done[r.Destination] = true
		}
	}
	return done
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
