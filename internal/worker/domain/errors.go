package domain

import "errors"

var (
	// ErrUnknownEventKind is returned when a message carries a kind the
	// processor has no handler for
	ErrUnknownEventKind = errors.New("unknown event kind")

	// ErrMissingRecruiter is returned when an event has no recruiter to
	// notify
	ErrMissingRecruiter = errors.New("event has no recruiter id")
)

// RetryableError wraps transient errors that should trigger a requeue
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable error: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError creates a new retryable error
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}
