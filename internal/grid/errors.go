package grid

import "errors"

var (
	// ErrInvalidBucket reports a column or row bucket outside its declared range.
	ErrInvalidBucket = errors.New("invalid bucket")

	// ErrInvalidBreakpointConfig reports thresholds that are not strictly
	// ordered, or an unknown breakpoint name.
	ErrInvalidBreakpointConfig = errors.New("invalid breakpoint config")

	// ErrInvalidTable reports a span table that breaks the resolver invariants.
	ErrInvalidTable = errors.New("invalid span table")
)
