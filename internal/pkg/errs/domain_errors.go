package errs

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

// Kind is the stable, caller-visible classification of a failure.
type Kind string

const (
	KindValidation             Kind = "VALIDATION_ERROR"
	KindNotFound               Kind = "NOT_FOUND"
	KindCapacityExceeded       Kind = "CAPACITY_EXCEEDED"
	KindInvalidStateTransition Kind = "INVALID_STATE_TRANSITION"
	KindPersistence            Kind = "PERSISTENCE_ERROR"
)

// Category sentinels. Component errors are tagged with one of these via Mark.
var (
	ErrValidation             = errors.New("validation failed")
	ErrNotFound               = errors.New("entity not found")
	ErrCapacityExceeded       = errors.New("request quota exhausted")
	ErrInvalidStateTransition = errors.New("status transition not allowed")
	ErrPersistence            = errors.New("persistence failure")
)

// KindOf reports the category of err. Anything unclassified is a persistence failure.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrValidation):
		return KindValidation
	case Is(err, ErrNotFound):
		return KindNotFound
	case Is(err, ErrCapacityExceeded):
		return KindCapacityExceeded
	case Is(err, ErrInvalidStateTransition):
		return KindInvalidStateTransition
	default:
		return KindPersistence
	}
}

// Validation is a shorthand for a fresh validation error with its own message.
func Validation(msg string) error {
	return Mark(New(msg), ErrValidation)
}

// PublicMessage is implemented by errors that carry a message safe to show callers.
type PublicMessage interface {
	PublicMessage() string
}

// MessageOf returns the caller-facing text for err. Persistence failures never expose their cause.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	if KindOf(err) == KindPersistence {
		return "Internal server error"
	}
	var pm PublicMessage
	if errors.As(err, &pm) {
		return pm.PublicMessage()
	}
	return cr.UnwrapAll(err).Error()
}
