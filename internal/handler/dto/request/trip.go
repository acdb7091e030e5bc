package request

import (
	"strings"
	"time"

	"sameday-trips/internal/pkg/config"
	"sameday-trips/internal/pkg/patch"
	"sameday-trips/internal/usecase"
)

// SearchTripsRequest overrides the configured search window field by field;
// omitted fields keep their configured defaults.
type SearchTripsRequest struct {
	Origin        string   `json:"origin" binding:"omitempty,len=3,alpha"`
	Date          string   `json:"date" binding:"required,datetime=2006-01-02"`
	DepartBy      *int     `json:"departBy" binding:"omitempty,min=0,max=23"`
	ReturnAfter   *int     `json:"returnAfter" binding:"omitempty,min=0,max=23"`
	ReturnBy      *int     `json:"returnBy" binding:"omitempty,min=1,max=24"`
	MinGroundTime *float64 `json:"minGroundTime" binding:"omitempty,min=0"`
	MaxDuration   *int     `json:"maxDuration" binding:"omitempty,min=1"`
	Destinations  []string `json:"destinations" binding:"omitempty,dive,len=3"`
	Limit         int      `json:"limit" binding:"omitempty,min=0"`
}

func (r SearchTripsRequest) ToOptions(cfg config.SearchConfig) (usecase.DiscoveryOptions, error) {
	date, err := time.Parse(time.DateOnly, r.Date)
	if err != nil {
		return usecase.DiscoveryOptions{}, err
	}

	opts := usecase.DiscoveryOptionsFrom(cfg, date)
	opts.Origin = patch.Or(strings.ToUpper(strings.TrimSpace(r.Origin)), opts.Origin)
	opts.DepartByHour = patch.Coalesce(r.DepartBy, opts.DepartByHour)
	opts.ReturnAfterHour = patch.Coalesce(r.ReturnAfter, opts.ReturnAfterHour)
	opts.ReturnByHour = patch.Coalesce(r.ReturnBy, opts.ReturnByHour)
	opts.MinGroundHours = patch.Coalesce(r.MinGroundTime, opts.MinGroundHours)
	opts.MaxDurationMinutes = patch.Coalesce(r.MaxDuration, opts.MaxDurationMinutes)
	for _, d := range r.Destinations {
		opts.Destinations = append(opts.Destinations, strings.ToUpper(strings.TrimSpace(d)))
	}
	opts.Limit = r.Limit
	return opts, nil
}
