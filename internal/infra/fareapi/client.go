package fareapi

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"sync"
	"time"

	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/infra"
	"sameday-trips/internal/infra/httpclient"
	"sameday-trips/internal/pkg/clock"
	"sameday-trips/internal/pkg/config"
	"sameday-trips/internal/usecase/shared"
)

const (
	source    = "fare_api"
	tokenPath = "/v1/security/oauth2/token"
	offerPath = "/v2/shopping/flight-offers"

	// tokens are refreshed this long before the server says they expire
	expirySkew = 30 * time.Second
)

// Client searches flight offers with OAuth2 client credentials. The access
// token is cached until shortly before it expires.
type Client struct {
	http         *httpclient.Client
	clientID     string
	clientSecret string
	clock        clock.Clock
	logger       *slog.Logger

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

var _ shared.FareSearcher = (*Client)(nil)

func NewClient(cfg config.FareAPIConfig, clk clock.Clock, logger *slog.Logger) *Client {
	return &Client{
		http: httpclient.New(httpclient.Config{
			Source:     source,
			BaseURL:    cfg.BaseURL,
			Timeout:    cfg.Timeout,
			Courtesy:   cfg.Courtesy,
			MaxRetries: cfg.MaxRetries,
		}, logger),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		clock:        clk,
		logger:       logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.clock.Now().Before(c.expiresAt) {
		return c.token, nil
	}
	if c.clientID == "" || c.clientSecret == "" {
		return "", infra.WrapCollabErr(c.logger, infra.KindAuthFailed, source, "client credentials are not configured", nil)
	}

	resp, err := c.http.PostForm(ctx, tokenPath, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	})
	if err != nil {
		// the token endpoint answers 400 invalid_client for bad credentials
		if infra.IsKind(err, infra.KindBadResponse) {
			return "", infra.WrapCollabErr(c.logger, infra.KindAuthFailed, source, "token request rejected", err)
		}
		return "", err
	}

	var tok tokenResponse
	if err := c.http.Decode(resp, &tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", infra.WrapCollabErr(c.logger, infra.KindAuthFailed, source, "token response has no access token", nil)
	}
	c.token = tok.AccessToken
	c.expiresAt = c.clock.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - expirySkew)
	return c.token, nil
}

func (c *Client) invalidate() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

type offersResponse struct {
	Data []offerDTO `json:"data"`
}

type offerDTO struct {
	Itineraries []struct {
		Duration string       `json:"duration"`
		Segments []segmentDTO `json:"segments"`
	} `json:"itineraries"`
	Price struct {
		Total    string `json:"total"`
		Currency string `json:"currency"`
	} `json:"price"`
}

type segmentDTO struct {
	Departure   endpointDTO `json:"departure"`
	Arrival     endpointDTO `json:"arrival"`
	CarrierCode string      `json:"carrierCode"`
	Number      string      `json:"number"`
}

type endpointDTO struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

// Search returns the first itinerary of every offer, priced in USD.
// A rejected token is dropped and the search retried once with a fresh one.
func (c *Client) Search(ctx context.Context, q shared.FareQuery) ([]flight.RawFareOffer, error) {
	offers, err := c.search(ctx, q)
	if infra.IsKind(err, infra.KindAuthFailed) && c.hadToken() {
		c.invalidate()
		offers, err = c.search(ctx, q)
	}
	return offers, err
}

func (c *Client) hadToken() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token != ""
}

func (c *Client) search(ctx context.Context, q shared.FareQuery) ([]flight.RawFareOffer, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	adults := q.Adults
	if adults <= 0 {
		adults = 1
	}
	query := url.Values{
		"originLocationCode":      {q.Origin},
		"destinationLocationCode": {q.Destination},
		"departureDate":           {q.Date.Format(time.DateOnly)},
		"adults":                  {strconv.Itoa(adults)},
		"currencyCode":            {"USD"},
	}
	if q.MaxResults > 0 {
		query.Set("max", strconv.Itoa(q.MaxResults))
	}

	resp, err := c.http.Get(ctx, offerPath, query, map[string]string{"Authorization": "Bearer " + token})
	if err != nil {
		return nil, err
	}
	var body offersResponse
	if err := c.http.Decode(resp, &body); err != nil {
		return nil, err
	}

	offers := make([]flight.RawFareOffer, 0, len(body.Data))
	for _, o := range body.Data {
		if len(o.Itineraries) == 0 {
			continue
		}
		it := o.Itineraries[0]
		segments := make([]flight.RawSegment, 0, len(it.Segments))
		for _, s := range it.Segments {
			segments = append(segments, flight.RawSegment{
				CarrierCode:      s.CarrierCode,
				Number:           s.Number,
				DepartureAirport: s.Departure.IataCode,
				DepartureAt:      s.Departure.At,
				ArrivalAirport:   s.Arrival.IataCode,
				ArrivalAt:        s.Arrival.At,
			})
		}
		offers = append(offers, flight.RawFareOffer{
			Duration:   it.Duration,
			Segments:   segments,
			TotalPrice: o.Price.Total,
			Currency:   o.Price.Currency,
		})
	}
	c.logger.Debug("fare search",
		"origin", q.Origin,
		"destination", q.Destination,
		"date", q.Date.Format(time.DateOnly),
		"offers", len(offers))
	return offers, nil
}
