package sources

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sameday-trips/internal/domain/pricing"
	"sameday-trips/internal/pkg/clock"
	"sameday-trips/internal/pkg/errs"
	"sameday-trips/internal/usecase/shared"
)

var ErrPollCeiling = errs.New("rental job did not finish before the poll ceiling")

type RentalOptions struct {
	PollInterval time.Duration
	MaxWait      time.Duration
	DriverAge    int
}

// RentalAdapter submits an asynchronous rental search, polls it to a
// terminal status and reports the cheapest vehicle.
type RentalAdapter struct {
	jobs   shared.RentalJobs
	opts   RentalOptions
	clock  clock.Clock
	logger *slog.Logger
}

func NewRentalAdapter(jobs shared.RentalJobs, opts RentalOptions, clk clock.Clock, logger *slog.Logger) *RentalAdapter {
	return &RentalAdapter{jobs: jobs, opts: opts, clock: clk, logger: logger}
}

func (a *RentalAdapter) Source() pricing.Source { return pricing.SourceCar }

// SearchCity reduces a catalog label to the location the rental search
// expects: "ATL Atlanta" becomes "atlanta", a single token is only lowercased.
func SearchCity(label string) string {
	parts := strings.Fields(label)
	if len(parts) > 1 {
		return strings.ToLower(parts[1])
	}
	return strings.ToLower(strings.TrimSpace(label))
}

func (a *RentalAdapter) FetchPrice(ctx context.Context, req Request) pricing.Result[pricing.Vehicle] {
	jobID, err := a.jobs.SubmitJob(ctx, shared.RentalQuery{
		Location:  SearchCity(req.City),
		From:      req.Target.On(req.Date),
		Until:     req.Until.On(req.Date),
		DriverAge: a.opts.DriverAge,
	})
	if err != nil {
		return unavailable[pricing.Vehicle](a.logger, a.Source(), req, err)
	}
	job, err := pricing.NewJob(jobID, a.clock.Now())
	if err != nil {
		return unavailable[pricing.Vehicle](a.logger, a.Source(), req, err)
	}

	if err := a.awaitTerminal(ctx, job, req); err != nil {
		return unavailable[pricing.Vehicle](a.logger, a.Source(), req, err)
	}
	if job.Status() != pricing.JobSucceeded {
		return unavailable[pricing.Vehicle](a.logger, a.Source(), req, fmt.Errorf("rental job %s ended %s", job.ID(), job.Status()))
	}

	vehicles, err := a.jobs.FetchResults(ctx, job.ID())
	if err != nil {
		return unavailable[pricing.Vehicle](a.logger, a.Source(), req, err)
	}
	if err := job.Complete(vehicles); err != nil {
		return unavailable[pricing.Vehicle](a.logger, a.Source(), req, err)
	}

	cheapest, ok := job.Cheapest()
	if !ok {
		return noAvailability[pricing.Vehicle](a.logger, a.Source(), req, "rental search returned no vehicles")
	}
	return pricing.OK(cheapest)
}

// awaitTerminal polls until the job reaches a terminal status. Status errors
// other than authentication are retried on the next tick.
func (a *RentalAdapter) awaitTerminal(ctx context.Context, job *pricing.Job, req Request) error {
	ticker := time.NewTicker(a.opts.PollInterval)
	defer ticker.Stop()

	for waited := time.Duration(0); waited < a.opts.MaxWait; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		waited += a.opts.PollInterval

		status, err := a.jobs.PollStatus(ctx, job.ID())
		if err != nil {
			if errs.Is(err, errs.ErrAuthentication) {
				return err
			}
			a.logger.Warn("rental status check failed", append(req.logArgs(a.Source()),
				slog.String("job_id", job.ID()),
				slog.Duration("waited", waited),
				slog.String("error", err.Error()))...)
			continue
		}
		if err := job.Transition(status); err != nil {
			return err
		}
		a.logger.Debug("rental job status", append(req.logArgs(a.Source()),
			slog.String("job_id", job.ID()),
			slog.String("status", string(status)),
			slog.Duration("waited", waited))...)
		if status.IsTerminal() {
			return nil
		}
	}
	return errs.Wrapf(ErrPollCeiling, "job %s after %s", job.ID(), job.Elapsed(a.clock.Now()))
}
