package bracket

import "errors"

// Sentinel kinds for bracket errors.
var (
	// ErrEmptyField marks a tournament with no eligible entrants: no
	// champion is possible.
	ErrEmptyField = errors.New("no eligible entrants")
)
