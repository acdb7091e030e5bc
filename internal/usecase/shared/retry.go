package shared

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sameday-trips/internal/pkg/errs"
)

var ErrMaxRetriesExceeded = errors.New("call failed after max retries")

// RunWithRetry calls fn until it succeeds, fails with a non-retryable error,
// or maxRetries extra attempts have been spent. Waits grow linearly from backoff.
func RunWithRetry[T any](ctx context.Context, maxRetries int, backoff time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}

		if !IsRetryable(err) {
			return zero, err
		}

		if attempt == maxRetries {
			slog.Error("call failed after max retries",
				"attempts", attempt+1,
				"error", err)
			return zero, errs.Mark(err, ErrMaxRetriesExceeded)
		}

		waitTime := time.Duration(attempt+1) * backoff
		slog.Warn("retrying call due to retryable error",
			"attempt", attempt+1,
			"wait_time", waitTime,
			"error", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return zero, ErrMaxRetriesExceeded
}

// IsRetryable treats source outages as transient. Credential failures and
// cancellation are final.
func IsRetryable(err error) bool {
	if errs.Is(err, errs.ErrAuthentication) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errs.Is(err, errs.ErrSourceUnavailable)
}
