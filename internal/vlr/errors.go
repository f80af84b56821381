package vlr

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

// FetchKind classifies how a page fetch failed. The set is closed: callers
// switch on it to decide whether an item is reported as a network problem,
// a slow upstream, or a hard status.
type FetchKind string

const (
	FetchNetwork FetchKind = "network"
	FetchTimeout FetchKind = "timeout"
	FetchStatus  FetchKind = "status"
)

// FetchError wraps a failed page fetch. StatusCode is only set for
// FetchStatus.
type FetchError struct {
	Kind       FetchKind
	URL        string
	StatusCode int
	cause      error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchStatus:
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	case FetchTimeout:
		return fmt.Sprintf("fetch %s: timed out: %v", e.URL, e.cause)
	default:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.cause)
	}
}

func (e *FetchError) Unwrap() error { return e.cause }

// IsNotFound reports whether err is a fetch that came back 404.
func IsNotFound(err error) bool {
	var fetchErr *FetchError
	if !crerr.As(err, &fetchErr) {
		return false
	}
	return fetchErr.Kind == FetchStatus && fetchErr.StatusCode == 404
}

// LayoutError means a page was fetched fine but its markup did not contain
// what the extractor expected. These are absorbed per item, never retried.
type LayoutError struct {
	Page   string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("unexpected layout on %s: %s", e.Page, e.Reason)
}

func NewLayoutError(page, format string, args ...any) error {
	return &LayoutError{Page: page, Reason: fmt.Sprintf(format, args...)}
}
