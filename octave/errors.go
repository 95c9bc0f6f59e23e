package octave

import "errors"

var (
	// ErrOctaves indicates an octave count below 1.
	ErrOctaves = errors.New("octave: octaves must be at least 1")
	// ErrFrequency indicates a non-positive base frequency.
	ErrFrequency = errors.New("octave: frequency must be positive")
	// ErrAmplitude indicates a weight schedule with a non-positive layer
	// weight somewhere in 0..Octaves-1.
	ErrAmplitude = errors.New("octave: every layer weight must be positive")
)
