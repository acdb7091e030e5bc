package infra

import (
	"errors"
	"log/slog"

	"sameday-trips/internal/pkg/errs"
)

type CollaboratorErrorKind string

// CollaboratorError is the failure of one call to an external collaborator
// or local store. Its kind decides which taxonomy sentinel it matches.
type CollaboratorError struct {
	Kind   CollaboratorErrorKind
	Source string
	msg    string
	err    error // wrapped low-level error
}

func (e CollaboratorError) Error() string {
	prefix := string(e.Kind)
	if e.Source != "" {
		prefix = e.Source + " " + prefix
	}
	if e.err != nil {
		return prefix + ": " + e.msg + ": " + e.err.Error()
	}
	return prefix + ": " + e.msg
}

func (e CollaboratorError) Unwrap() error {
	return e.err
}

// Is lets callers test for errs.ErrAuthentication and errs.ErrSourceUnavailable
// without knowing about infra kinds.
func (e CollaboratorError) Is(target error) bool {
	switch target {
	case errs.ErrAuthentication:
		return e.Kind == KindAuthFailed
	case errs.ErrSourceUnavailable:
		return e.Kind == KindTransport || e.Kind == KindBadResponse || e.Kind == KindNotFound
	case errs.ErrNotFound:
		return e.Kind == KindNotFound
	}
	return false
}

func WrapCollabErr(slogger *slog.Logger, kind CollaboratorErrorKind, source, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("source", source),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}
	slogger.Debug("Collaborator error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return CollaboratorError{Kind: kind, Source: source, msg: msg, err: err}
}

func IsKind(err error, kind CollaboratorErrorKind) bool {
	var e CollaboratorError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Collaborator error kinds
const (
	KindAuthFailed  CollaboratorErrorKind = "AUTH_FAILED"
	KindTransport   CollaboratorErrorKind = "TRANSPORT"
	KindBadResponse CollaboratorErrorKind = "BAD_RESPONSE"
	KindNotFound    CollaboratorErrorKind = "NOT_FOUND"
	KindStorage     CollaboratorErrorKind = "STORAGE"
)
