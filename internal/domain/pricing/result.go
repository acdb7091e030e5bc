package pricing

// Reason says why a source produced no usable value.
type Reason string

const (
	// ReasonNoAvailability means the source answered but had nothing usable.
	ReasonNoAvailability Reason = "no_availability"
	ReasonFetchFailed    Reason = "fetch_failed"
	ReasonTimeout        Reason = "timeout"
	ReasonAuth           Reason = "auth"
	// ReasonDisabled marks a source switched off for the rest of the run.
	ReasonDisabled Reason = "disabled"
)

// Result is the tagged outcome of one adapter call: a value or Unavailable with a reason.
type Result[T any] struct {
	value  T
	ok     bool
	reason Reason
	err    error
}

func OK[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

func Unavailable[T any](reason Reason, err error) Result[T] {
	return Result[T]{reason: reason, err: err}
}

func (r Result[T]) Value() (T, bool) { return r.value, r.ok }
func (r Result[T]) IsOK() bool       { return r.ok }

// Reason is empty for an OK result.
func (r Result[T]) Reason() Reason { return r.reason }

// Err is the underlying failure, if any, kept for logging.
func (r Result[T]) Err() error { return r.err }
