package match

import "errors"

// Sentinel kinds for matcher errors.
var (
	ErrUnknownPolicy = errors.New("unknown match policy")
)
