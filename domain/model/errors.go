package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBaseURL is the cause of a Failed job whose seed is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid base url")

	// ErrUnexpectedStatus wraps non-2xx responses inside a FetchError.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// StoreError is returned when a discovered link could not be recorded.
// It is fatal to the whole run.
type StoreError struct {
	Link string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Link, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err has a StoreError in its chain.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
