package easyverein

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrAPIKeyRequired     = errors.New("API key is required")
	ErrBaseURLRequired    = errors.New("base URL is required")
	ErrNoCacheConfigured  = errors.New("no cache configured")
	ErrCacheEntryNotFound = errors.New("cache entry not found")
	ErrCacheEntryExpired  = errors.New("cache entry expired")
	ErrUnsupportedCache   = errors.New("unsupported cache type")
	ErrNATSConfigRequired = errors.New("NATS configuration required for NATS cache")
	ErrIteratorExhausted  = errors.New("no more items")
	ErrFilterNotStruct    = errors.New("filter must be a struct or pointer to struct")
)

// APIError is returned when the API replies with a status code the
// calling operation did not expect. It carries the raw body for
// diagnostics.
type APIError struct {
	StatusCode int
	Expected   int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Expected != 0 {
		return fmt.Sprintf("API returned status code %d (expected %d): %s", e.StatusCode, e.Expected, e.Body)
	}

	return fmt.Sprintf("API returned status code %d: %s", e.StatusCode, e.Body)
}

// NotFoundError is returned on HTTP 404. It is never retried.
type NotFoundError struct {
	URL string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.URL != "" {
		return "requested resource not found: " + e.URL
	}

	return "requested resource not found"
}

// RateLimitError is returned on HTTP 429 when auto-retry is disabled or
// the retry budget is exhausted. RetryAfter carries the server's
// suggested wait in seconds so callers can implement their own backoff.
type RateLimitError struct {
	RetryAfter int
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("too many requests, please wait %d seconds and try again", e.RetryAfter)
}

// PreconditionError is returned before any network call when the
// caller-supplied arguments are unusable or self-contradictory.
type PreconditionError struct {
	Reason string
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	notFound := &NotFoundError{}

	return errors.As(err, &notFound)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	rateLimited := &RateLimitError{}

	return errors.As(err, &rateLimited)
}

// IsPreconditionFailed checks if the error was raised before any network
// call due to invalid arguments.
func IsPreconditionFailed(err error) bool {
	precondition := &PreconditionError{}

	return errors.As(err, &precondition)
}
