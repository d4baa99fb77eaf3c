package analyses

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrUpstreamTimeout marks an analysis call that hit the client-side
	// deadline; it is a distinct category from other transport failures.
	ErrUpstreamTimeout = errors.New("upstream analysis timed out")

	// ErrUpstreamUnavailable covers every non-timeout transport or HTTP
	// failure from the analysis backend.
	ErrUpstreamUnavailable = errors.New("upstream analysis unavailable")
)
