package icon

import "errors"

// Sentinel errors for the icon pipeline. Callers match them with errors.Is;
// wrapped errors carry the underlying cause.
var (
	// ErrUnknownCollection indicates the requested collection is not present
	// in the registry. Raised before any store or network access.
	ErrUnknownCollection = errors.New("unknown icon collection")

	// ErrFetchFailure indicates a transport-level failure or a non-success
	// HTTP status while fetching an icon. Never retried.
	ErrFetchFailure = errors.New("icon fetch failed")

	// ErrMalformedDocument indicates the fetched bytes could not be parsed
	// as an SVG document.
	ErrMalformedDocument = errors.New("malformed icon document")

	// ErrMissingViewBox indicates the document has no viewBox attribute, or
	// one that does not contain four numeric components.
	ErrMissingViewBox = errors.New("icon document has no usable viewBox")
)
