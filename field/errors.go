package field

import "errors"

var (
	// ErrShapeMismatch indicates a size or location that does not span
	// exactly three axes (depth, height, width).
	ErrShapeMismatch = errors.New("field: size and location must span exactly 3 axes")
	// ErrInvalidSize indicates a requested size with an axis below 1.
	ErrInvalidSize = errors.New("field: every size axis must be at least 1")
)
