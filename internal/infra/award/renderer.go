package award

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/infra"
	"sameday-trips/internal/infra/httpclient"
	"sameday-trips/internal/pkg/config"
	"sameday-trips/internal/usecase/shared"
)

const (
	source     = "award_page"
	renderPath = "/render"
)

// Page statuses reported by the render service.
const (
	statusOK        = "ok"
	statusNoFlights = "no_flights"
	statusUnparsed  = "unparsed"
)

// Renderer asks a headless-browser render service to load an award-search
// page and extract its flight cards. The service owns one browser session,
// so callers serialize access through a lease.
type Renderer struct {
	http      *httpclient.Client
	searchURL string
	ceiling   time.Duration
	settle    time.Duration
	logger    *slog.Logger
}

var _ shared.AwardRenderer = (*Renderer)(nil)

func NewRenderer(cfg config.AwardConfig, logger *slog.Logger) *Renderer {
	return &Renderer{
		http: httpclient.New(httpclient.Config{
			Source:   source,
			BaseURL:  cfg.RenderURL,
			Timeout:  cfg.Timeout,
			Courtesy: cfg.Courtesy,
		}, logger),
		searchURL: cfg.SearchURL,
		ceiling:   cfg.Ceiling,
		settle:    cfg.Settle,
		logger:    logger,
	}
}

// SearchURL builds the one-way award search for a single adult.
func SearchURL(base, origin, destination string, date time.Time) string {
	slices := fmt.Sprintf(`[{"orig":"%s","origNearby":false,"dest":"%s","destNearby":false,"date":"%s"}]`,
		origin, destination, date.Format(time.DateOnly))
	q := url.Values{
		"locale":                 {"en_US"},
		"pax":                    {"1"},
		"adult":                  {"1"},
		"child":                  {"0"},
		"type":                   {"OneWay"},
		"searchType":             {"Award"},
		"cabin":                  {""},
		"carriers":               {"ALL"},
		"slices":                 {slices},
		"maxAwardSegmentAllowed": {"2"},
	}
	return base + "?" + q.Encode()
}

type renderRequest struct {
	URL       string `json:"url"`
	CeilingMS int64  `json:"ceilingMs"`
	SettleMS  int64  `json:"settleMs"`
}

type renderResponse struct {
	Status  string      `json:"status"`
	Flights []flightDTO `json:"flights"`
}

type flightDTO struct {
	DepartTime    string            `json:"departTime"`
	ArriveTime    string            `json:"arriveTime"`
	Duration      string            `json:"duration"`
	Stops         string            `json:"stops"`
	FlightNumbers []string          `json:"flightNumbers"`
	Miles         map[string]string `json:"miles"`
}

func (r *Renderer) RenderAndExtract(ctx context.Context, origin, destination string, date time.Time) (shared.AwardPage, error) {
	resp, err := r.http.PostJSON(ctx, renderPath, nil, renderRequest{
		URL:       SearchURL(r.searchURL, origin, destination, date),
		CeilingMS: r.ceiling.Milliseconds(),
		SettleMS:  r.settle.Milliseconds(),
	}, nil)
	if err != nil {
		return shared.AwardPage{}, err
	}

	var body renderResponse
	if err := r.http.Decode(resp, &body); err != nil {
		return shared.AwardPage{}, err
	}

	switch strings.ToLower(body.Status) {
	case statusUnparsed:
		r.logger.Warn("award page structure not recognized", "origin", origin, "destination", destination, "date", date.Format(time.DateOnly))
		return shared.AwardPage{Parsed: false}, nil
	case statusNoFlights:
		return shared.AwardPage{Parsed: true}, nil
	case statusOK:
	default:
		return shared.AwardPage{}, infra.WrapCollabErr(r.logger, infra.KindBadResponse, source, "unknown render status "+body.Status, nil)
	}

	offers := make([]flight.RawAwardOffer, 0, len(body.Flights))
	for _, f := range body.Flights {
		offers = append(offers, flight.RawAwardOffer{
			Date:          date,
			Origin:        origin,
			Destination:   destination,
			DepartTime:    f.DepartTime,
			ArriveTime:    f.ArriveTime,
			Duration:      f.Duration,
			Stops:         f.Stops,
			FlightNumbers: f.FlightNumbers,
			Miles:         f.Miles,
		})
	}
	return shared.AwardPage{Offers: offers, Parsed: true}, nil
}
