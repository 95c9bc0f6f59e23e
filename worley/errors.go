package worley

import "errors"

var (
	// ErrNoPoints indicates a non-positive feature point count.
	ErrNoPoints = errors.New("worley: points must be positive")
	// ErrInvalidVolume indicates a bounding volume with an axis below 1.
	ErrInvalidVolume = errors.New("worley: every volume axis must be at least 1")
)
