package probe

import "errors"

// Sentinel kinds for probe failures.
var (
	ErrUnreachable      = errors.New("service unreachable")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrNoSelections     = errors.New("service offers no selections")
	ErrChecksFailed     = errors.New("checks failed")
)
