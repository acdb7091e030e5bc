package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sameday-trips/internal/infra"

	"golang.org/x/time/rate"
)

type Config struct {
	// Source names the collaborator in errors and logs.
	Source  string
	BaseURL string
	Timeout time.Duration
	// Courtesy is the minimum spacing between two requests to this collaborator.
	Courtesy   time.Duration
	MaxRetries int
	// Backoff is the first retry wait; it doubles per attempt.
	Backoff   time.Duration
	UserAgent string
	// Transport allows injecting a custom HTTP transport for tests.
	Transport http.RoundTripper
}

// Client is a rate-limited, retry-capable HTTP client for one collaborator.
// Failures come back as infra.CollaboratorError.
type Client struct {
	config      Config
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
}

func New(config Config, logger *slog.Logger) *Client {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.Backoff == 0 {
		config.Backoff = 500 * time.Millisecond
	}
	if config.UserAgent == "" {
		config.UserAgent = "sameday-trips/1.0"
	}
	limit := rate.Inf
	if config.Courtesy > 0 {
		limit = rate.Every(config.Courtesy)
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: config.Transport,
		},
		rateLimiter: rate.NewLimiter(limit, 1),
		logger:      logger,
	}
}

type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    []byte
}

type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *HTTPError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

func (e *HTTPError) IsServerError() bool {
	return e.StatusCode >= 500
}

func (e *HTTPError) IsAuth() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Do executes a request, waiting for the courtesy limiter before every attempt.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var lastErr *HTTPError
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, infra.WrapCollabErr(c.logger, infra.KindTransport, c.config.Source, "rate limiter", err)
		}

		resp, err := c.doOnce(ctx, req)
		if err != nil {
			return nil, infra.WrapCollabErr(c.logger, infra.KindTransport, c.config.Source, req.Method+" "+req.Path, err)
		}
		if resp.StatusCode < 400 {
			return resp, nil
		}

		httpErr := &HTTPError{StatusCode: resp.StatusCode, Message: truncate(string(resp.Body), 200)}
		switch {
		case httpErr.IsAuth():
			return nil, infra.WrapCollabErr(c.logger, infra.KindAuthFailed, c.config.Source, "credentials rejected", httpErr)
		case resp.StatusCode == http.StatusNotFound:
			return nil, infra.WrapCollabErr(c.logger, infra.KindNotFound, c.config.Source, req.Method+" "+req.Path, httpErr)
		case !httpErr.IsRateLimited() && !httpErr.IsServerError():
			return nil, infra.WrapCollabErr(c.logger, infra.KindBadResponse, c.config.Source, req.Method+" "+req.Path, httpErr)
		}

		lastErr = httpErr
		if attempt == c.config.MaxRetries {
			break
		}
		backoff := time.Duration(1<<uint(attempt)) * c.config.Backoff
		c.logger.Warn("retrying request",
			"source", c.config.Source,
			"path", req.Path,
			"status", resp.StatusCode,
			"attempt", attempt+1,
			"wait_time", backoff)
		select {
		case <-ctx.Done():
			return nil, infra.WrapCollabErr(c.logger, infra.KindTransport, c.config.Source, "request cancelled", ctx.Err())
		case <-time.After(backoff):
		}
	}

	return nil, infra.WrapCollabErr(c.logger, infra.KindTransport, c.config.Source, "max retries exceeded", lastErr)
}

func (c *Client) doOnce(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.config.BaseURL
	if req.Path != "" {
		fullURL = strings.TrimSuffix(fullURL, "/") + "/" + strings.TrimPrefix(req.Path, "/")
	}
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.config.UserAgent)
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Headers: resp.Header, Body: data}, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, headers map[string]string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query, Headers: headers})
}

// PostJSON sends body encoded as JSON.
func (c *Client) PostJSON(ctx context.Context, path string, query url.Values, body any, headers map[string]string) (*Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, infra.WrapCollabErr(c.logger, infra.KindBadResponse, c.config.Source, "failed to encode request", err)
	}
	h := map[string]string{"Content-Type": "application/json"}
	for k, v := range headers {
		h[k] = v
	}
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Query: query, Body: data, Headers: h})
}

// PostForm sends form-encoded values.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  http.MethodPost,
		Path:    path,
		Body:    []byte(form.Encode()),
		Headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	})
}

func (c *Client) Source() string { return c.config.Source }

// Decode unmarshals resp into target, reporting a bad response on failure.
func (c *Client) Decode(resp *Response, target any) error {
	if err := json.Unmarshal(resp.Body, target); err != nil {
		return infra.WrapCollabErr(c.logger, infra.KindBadResponse, c.config.Source, "failed to decode response", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
