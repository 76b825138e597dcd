package rating

import "errors"

// Sentinel kinds for rating errors.
var (
	// ErrMissingRecord marks a fighter whose wins, losses or draws are
	// unknown. It must propagate; coercing a missing count to zero would
	// bias the ratio.
	ErrMissingRecord = errors.New("incomplete historical record")
)
