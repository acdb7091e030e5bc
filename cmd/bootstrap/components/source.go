package components

import (
	"log/slog"

	"sameday-trips/internal/domain/pricing"
	"sameday-trips/internal/infra/award"
	"sameday-trips/internal/infra/fareapi"
	"sameday-trips/internal/infra/rental"
	"sameday-trips/internal/infra/store"
	"sameday-trips/internal/pkg/clock"
	"sameday-trips/internal/pkg/config"
	"sameday-trips/internal/usecase/shared"
	"sameday-trips/internal/usecase/sources"

	"go.uber.org/fx"
)

var SourceModule = fx.Module("source",
	collaboratorModule,
	storeModule,
	adapterModule,
)

var collaboratorModule = fx.Module("source/collaborator",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config, clk clock.Clock, logger *slog.Logger) *fareapi.Client {
				return fareapi.NewClient(cfg.FareAPI, clk, logger)
			},
			fx.As(new(shared.FareSearcher)),
		),
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) *award.Renderer {
				return award.NewRenderer(cfg.Award, logger)
			},
			fx.As(new(shared.AwardRenderer)),
		),
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) *rental.Jobs {
				return rental.NewJobs(cfg.Rental, logger)
			},
			fx.As(new(shared.RentalJobs)),
		),
	),
)

var storeModule = fx.Module("source/store",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) *store.Catalog {
				return store.NewCatalog(cfg.Run.CatalogPath, logger)
			},
			fx.As(new(shared.DestinationCatalog)),
		),
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) *store.WorkList {
				return store.NewWorkList(cfg.Run.WorkListPath, logger)
			},
			fx.As(new(shared.WorkListStore)),
		),
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) *store.Dataset {
				return store.NewDataset(cfg.Run.CheckpointPath, logger)
			},
			fx.As(new(shared.DatasetStore)),
		),
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) *store.TripSheet {
				return store.NewTripSheet(cfg.Run.TripsPath, logger)
			},
			fx.As(new(shared.TripSink)),
		),
	),
)

var adapterModule = fx.Module("source/adapter",
	fx.Provide(
		sources.NewLease,
		fx.Annotate(
			func(fares shared.FareSearcher, cfg config.Config, logger *slog.Logger) *sources.CashAdapter {
				return sources.NewCashAdapter(fares, cfg.Run.PricingResults, logger)
			},
			fx.As(new(sources.Adapter[float64])),
		),
		fx.Annotate(
			func(renderer shared.AwardRenderer, lease *sources.Lease, cfg config.Config, logger *slog.Logger) *sources.AwardAdapter {
				return sources.NewAwardAdapter(renderer, lease, cfg.Award.MaxRetries, cfg.Award.Backoff, logger)
			},
			fx.As(new(sources.Adapter[pricing.AwardMiles])),
		),
		fx.Annotate(
			func(jobs shared.RentalJobs, cfg config.Config, clk clock.Clock, logger *slog.Logger) *sources.RentalAdapter {
				return sources.NewRentalAdapter(jobs, sources.RentalOptions{
					PollInterval: cfg.Rental.PollInterval,
					MaxWait:      cfg.Rental.MaxWait,
					DriverAge:    cfg.Rental.DriverAge,
				}, clk, logger)
			},
			fx.As(new(sources.Adapter[pricing.Vehicle])),
		),
	),
)
