package entity

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup miss; handlers map it to 404.
var ErrNotFound = errors.New("not found")

// ValidationError marks a bad or missing required identifier; handlers
// map it to 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// UpstreamError carries a non-2xx provider response. Its status code is
// propagated to the caller as-is and the raw body is kept for
// diagnostics. Upstream errors are never written into the cache.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, e.Body)
}
