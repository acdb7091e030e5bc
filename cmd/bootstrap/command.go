package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"sameday-trips/internal/pkg/clock"
	"sameday-trips/internal/pkg/config"
	"sameday-trips/internal/usecase"

	"go.uber.org/fx"
)

// Command is a batch job run once per process.
type Command func(ctx context.Context) error

// RunCommand starts cmd when the app starts and shuts the app down when it
// returns. Stopping the app cancels cmd's context and waits for it to return.
func RunCommand(lc fx.Lifecycle, sd fx.Shutdowner, cmd Command, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				code := 0
				if err := cmd(ctx); err != nil {
					logger.Error("command failed", "error", err)
					code = 1
				}
				if err := sd.Shutdown(fx.ExitCode(code)); err != nil {
					logger.Error("failed to request shutdown", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				logger.Warn("command still running at shutdown deadline")
				return stopCtx.Err()
			}
		},
	})
}

func NewDiscoverCommand(uc usecase.DiscoveryUseCase, cfg config.Config, clk clock.Clock, logger *slog.Logger) (Command, error) {
	date, err := cfg.Run.TravelDate(clk.Now())
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) error {
		opts := usecase.DiscoveryOptionsFrom(cfg.Search, date)
		opts.Destinations = cfg.Run.Destinations
		opts.Limit = cfg.Run.Limit

		result, err := uc.Discover(ctx, opts)
		if err != nil {
			return err
		}
		logger.Info("discovery complete",
			"date", date.Format(time.DateOnly),
			"trips", len(result.Trips),
			"destinations", len(result.Summaries),
			"failed", strings.Join(result.Failed, ","),
			"trips_path", cfg.Run.TripsPath,
			"work_list_path", cfg.Run.WorkListPath)
		return nil
	}, nil
}

func NewPriceCommand(uc usecase.PricingUseCase, cfg config.Config, clk clock.Clock, logger *slog.Logger) (Command, error) {
	date, err := cfg.Run.TravelDate(clk.Now())
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) error {
		summary, err := uc.Run(ctx, usecase.PricingOptions{
			Date:         date,
			Destinations: cfg.Run.Destinations,
			Limit:        cfg.Run.Limit,
			SkipCash:     cfg.Run.SkipCash,
			SkipAward:    cfg.Run.SkipAward,
			SkipCar:      cfg.Run.SkipCar,
			Resume:       cfg.Run.Resume,
		})
		if err != nil {
			return err
		}
		if summary.Interrupted {
			logger.Warn("pricing interrupted; rerun with RUN_RESUME=true to continue",
				"processed", summary.Processed,
				"checkpoint_path", cfg.Run.CheckpointPath)
		}
		if len(summary.Chronic) > 0 {
			logger.Warn("destinations where every source failed", "destinations", strings.Join(summary.Chronic, ","))
		}
		return nil
	}, nil
}
