// Package field - shared types for sizes, locations and the Source contract.
package field

// Axis indices into Size and Loc. Volumes are depth-major: a Size of
// {2, 720, 1280} is two 720x1280 frames.
const (
	Z = 0 // depth (frame index)
	Y = 1 // height (row)
	X = 2 // width (column)
)

// Axes is the number of axes every filled volume spans.
const Axes = 3

// Size describes the extent of a volume along each axis, ordered Z, Y, X.
type Size []int

// Loc shifts the sampling window of an unbounded field along each axis,
// ordered Z, Y, X. A nil Loc means the origin.
type Loc []int

// Source is the one capability every generator exposes. Fill produces a
// dense volume of shape size with every value in [0,1]. Implementations
// must be pure with respect to (size, loc) once constructed, except where
// a package documents that its RNG stream advances between calls.
type Source interface {
	Fill(size Size, loc Loc) (*Grid, error)
}

// CheckShape validates a requested size and location against the 3-axis
// contract. A nil loc is accepted and treated as the origin by callers.
// Returns ErrShapeMismatch on a wrong axis count, ErrInvalidSize when any
// size axis is below 1.
//
// Complexity: O(1).
func CheckShape(size Size, loc Loc) error {
	if len(size) != Axes || (loc != nil && len(loc) != Axes) {
		return ErrShapeMismatch
	}
	for _, n := range size {
		if n < 1 {
			return ErrInvalidSize
		}
	}
	return nil
}

// OrOrigin returns loc unchanged, or the origin when loc is nil.
func (l Loc) OrOrigin() Loc {
	if l == nil {
		return Loc{0, 0, 0}
	}
	return l
}
