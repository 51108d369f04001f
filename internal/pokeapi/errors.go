package pokeapi

import (
	"errors"
	"fmt"
)

// Sentinel errors for upstream lookup failures.
var (
	// ErrNotFound means the named entity does not exist upstream.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited means the API rejected the request with HTTP 429.
	ErrRateLimited = errors.New("rate limited")
)

// APIError reports a non-2xx upstream response that is neither a 404 nor
// a 429.
type APIError struct {
	// Status is the HTTP status code returned by the API.
	Status int

	// Path is the request path relative to the API root.
	Path string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream error: %s returned status %d", e.Path, e.Status)
}
