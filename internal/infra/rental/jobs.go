package rental

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"sameday-trips/internal/domain/pricing"
	"sameday-trips/internal/infra"
	"sameday-trips/internal/infra/httpclient"
	"sameday-trips/internal/pkg/config"
	"sameday-trips/internal/usecase/shared"
)

const (
	source = "rental"

	sortCheapestFirst = "daily_price_low_to_high"
	dateLayout        = "2006-01-02T15:04"
)

// Jobs runs rental searches as asynchronous actor runs: submit, poll the
// run status, then read the run's dataset.
type Jobs struct {
	http        *httpclient.Client
	token       string
	actorID     string
	maxVehicles int
	logger      *slog.Logger
}

var _ shared.RentalJobs = (*Jobs)(nil)

func NewJobs(cfg config.RentalConfig, logger *slog.Logger) *Jobs {
	return &Jobs{
		http: httpclient.New(httpclient.Config{
			Source:  source,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		}, logger),
		token:       cfg.Token,
		actorID:     cfg.ActorID,
		maxVehicles: cfg.MaxVehicles,
		logger:      logger,
	}
}

type runInput struct {
	Location          string `json:"location"`
	FromDate          string `json:"fromDate"`
	UntilDate         string `json:"untilDate"`
	Age               int    `json:"age"`
	SortBy            string `json:"sortBy"`
	MaxVehiclesReturn int    `json:"maxVehiclesReturn"`
}

type runEnvelope struct {
	Data struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"data"`
}

type vehicleDTO struct {
	AvgDailyPrice *struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"avgDailyPrice"`
	URL        string `json:"url"`
	VehicleURL string `json:"vehicleUrl"`
	Year       any    `json:"year"`
	Make       string `json:"make"`
	Model      string `json:"model"`
}

func (j *Jobs) auth() url.Values {
	return url.Values{"token": {j.token}}
}

func (j *Jobs) SubmitJob(ctx context.Context, q shared.RentalQuery) (string, error) {
	if j.token == "" {
		return "", infra.WrapCollabErr(j.logger, infra.KindAuthFailed, source, "rental token is not configured", nil)
	}
	resp, err := j.http.PostJSON(ctx, "/acts/"+j.actorID+"/runs", j.auth(), runInput{
		Location:          q.Location,
		FromDate:          q.From.Format(dateLayout),
		UntilDate:         q.Until.Format(dateLayout),
		Age:               q.DriverAge,
		SortBy:            sortCheapestFirst,
		MaxVehiclesReturn: j.maxVehicles,
	}, nil)
	if err != nil {
		return "", err
	}

	var run runEnvelope
	if err := j.http.Decode(resp, &run); err != nil {
		return "", err
	}
	if run.Data.ID == "" {
		return "", infra.WrapCollabErr(j.logger, infra.KindBadResponse, source, "run response has no id", nil)
	}
	j.logger.Debug("rental job submitted", "job_id", run.Data.ID, "location", q.Location)
	return run.Data.ID, nil
}

func (j *Jobs) PollStatus(ctx context.Context, jobID string) (pricing.JobStatus, error) {
	resp, err := j.http.Get(ctx, "/actor-runs/"+jobID, j.auth(), nil)
	if err != nil {
		return "", err
	}
	var run runEnvelope
	if err := j.http.Decode(resp, &run); err != nil {
		return "", err
	}
	status, err := mapStatus(run.Data.Status)
	if err != nil {
		return "", infra.WrapCollabErr(j.logger, infra.KindBadResponse, source, "unexpected run status", err)
	}
	return status, nil
}

// mapStatus folds the run lifecycle into job statuses; a run that is queued
// but not started counts as submitted.
func mapStatus(s string) (pricing.JobStatus, error) {
	switch strings.ToUpper(s) {
	case "READY":
		return pricing.JobSubmitted, nil
	case "RUNNING", "TIMING-OUT", "ABORTING":
		return pricing.JobRunning, nil
	}
	status := pricing.JobStatus(strings.ToUpper(s))
	if !status.IsValid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return status, nil
}

func (j *Jobs) FetchResults(ctx context.Context, jobID string) ([]pricing.Vehicle, error) {
	resp, err := j.http.Get(ctx, "/actor-runs/"+jobID+"/dataset/items", j.auth(), nil)
	if err != nil {
		return nil, err
	}
	var items []vehicleDTO
	if err := j.http.Decode(resp, &items); err != nil {
		return nil, err
	}

	vehicles := make([]pricing.Vehicle, 0, len(items))
	for _, it := range items {
		if it.AvgDailyPrice == nil {
			continue
		}
		link := it.URL
		if link == "" {
			link = it.VehicleURL
		}
		vehicles = append(vehicles, pricing.Vehicle{
			Description: describe(it),
			DailyPrice:  it.AvgDailyPrice.Amount,
			Currency:    it.AvgDailyPrice.Currency,
			URL:         link,
		})
	}
	return vehicles, nil
}

func describe(v vehicleDTO) string {
	var parts []string
	if v.Year != nil {
		parts = append(parts, fmt.Sprint(v.Year))
	}
	for _, p := range []string{v.Make, v.Model} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
