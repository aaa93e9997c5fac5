package attendance

import "errors"

// Attendance report domain errors
var (
	// ErrInvalidRange rejects a resolved period whose end precedes its start.
	ErrInvalidRange = errors.New("period end date is before start date")

	// ErrAmbiguousDateKey signals two punch records collapsing onto the same
	// calendar date after normalization. The data is inconsistent and must
	// be surfaced, not silently dropped.
	ErrAmbiguousDateKey = errors.New("multiple punch records normalize to the same date")

	ErrUnknownPeriod = errors.New("unknown period selector")
)
