package services

import "errors"

// Error kinds reported by the hunt engine. Controllers map these to HTTP
// statuses; anything else is treated as a storage failure.
var (
	// ErrInvalidLocation is returned for coordinates outside the valid
	// latitude/longitude range, before any write happens.
	ErrInvalidLocation = errors.New("must provide valid latitude and longitude values")

	// ErrInvalidTransition is returned when the requested hunt type has no
	// edge in the transition table.
	ErrInvalidTransition = errors.New("invalid hunt type")

	// ErrConcurrentTransition is returned when the conditional type update
	// lost a race: the stored type no longer matches the required prior
	// state. Never retried automatically.
	ErrConcurrentTransition = errors.New("hunt type was already changed")

	// ErrHuntNotFound is returned when the (playerID, huntID) record is absent.
	ErrHuntNotFound = errors.New("no hunt found")

	// ErrMissingTreasureData is returned when a hunt record lacks the
	// treasure location or trigger distance needed to determine a win.
	ErrMissingTreasureData = errors.New("cannot determine win without both treasure location and trigger distance attributes")

	// ErrMalformedCursor is returned when a pagination cursor cannot be
	// decoded for the requested listing shape.
	ErrMalformedCursor = errors.New("malformed pagination cursor")

	// ErrConditionFailed is the repository-level signal that a conditional
	// write did not apply. The state machine translates it to
	// ErrConcurrentTransition.
	ErrConditionFailed = errors.New("conditional update failed")

	// ErrStorage wraps unclassified failures from the underlying store.
	ErrStorage = errors.New("storage error")
)
