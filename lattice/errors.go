package lattice

import "errors"

var (
	// ErrInvalidRange indicates a table domain outside 0 ≤ min < max with
	// max ≥ 2. The lower bound keeps table values inside [0,1] after
	// normalization; max ≥ 2 keeps the max-1 divisor positive.
	ErrInvalidRange = errors.New("lattice: table range requires 0 <= min < max and max >= 2")
	// ErrInvalidRepeats indicates a negative repeat count.
	ErrInvalidRepeats = errors.New("lattice: repeats must be non-negative")
	// ErrInvalidUnit indicates a unit of zero or less along some axis.
	ErrInvalidUnit = errors.New("lattice: every unit axis must be positive")
)
