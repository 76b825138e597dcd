package roster

import "errors"

// Sentinel kinds for roster loading errors.
var (
	ErrMissingName   = errors.New("fighter name is required")
	ErrNegativeCount = errors.New("bout counts must be non-negative")
)
