package timetable

import "errors"

var (
	// ErrNoData means there is no network and no cache: the caller must
	// degrade to the explicit "no net" display and skip computation.
	ErrNoData = errors.New("no prayer times available: no network and no cache")

	// ErrIncompleteTimings means the remote payload was missing one of
	// the five prayers.
	ErrIncompleteTimings = errors.New("timings payload missing a prayer entry")
)
