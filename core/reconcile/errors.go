package reconcile

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks against the typed errors below.
var (
	ErrFetch = errors.New("fetch failed")
	ErrParse = errors.New("parse failed")
	ErrStore = errors.New("store operation failed")
)

// FetchError reports a transport failure, timeout or bad status while reading
// the source feed.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error { return e.Err }

// Is implements errors.Is support
func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// ParseError reports a malformed feed payload.
type ParseError struct {
	Format string
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s feed: %v", e.Format, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// StoreError reports a failed single-record store operation.
type StoreError struct {
	Op  ActionType
	Key string
	Err error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StoreError) Unwrap() error { return e.Err }

// Is implements errors.Is support
func (e *StoreError) Is(target error) bool { return target == ErrStore }

// describe renders a per-record failure message for the run's error list.
func describe(op ActionType, key string, err error) string {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Error()
	}
	return fmt.Sprintf("%s %s: %v", op, key, err)
}
