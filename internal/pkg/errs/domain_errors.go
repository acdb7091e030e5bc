package errs

import "errors"

// Error taxonomy shared by the normalizer, the pricing adapters and the orchestrator.
var (
	// Offer errors
	ErrMalformedOffer = errors.New("malformed offer")

	// Source errors
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrAuthentication    = errors.New("authentication failed")

	// Destination errors
	ErrChronicDestinationFailure = errors.New("all pricing sources failed for destination")

	// Record / job lifecycle errors
	ErrRecordFinalized      = errors.New("pricing record already finalized")
	ErrInvalidJobTransition = errors.New("invalid job status transition")

	// Lookup errors
	ErrNotFound = errors.New("not found")
)
