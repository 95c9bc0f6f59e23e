package unitnoise

import (
	"github.com/tvessen/noisefield/field"
	"github.com/tvessen/noisefield/lattice"
)

// Options configures a value-noise generator.
//
// Fields:
//   - Unit    — pixels per lattice step along each active axis: 3 values
//     (Z, Y, X) for volume noise, 2 values (Z, X) for curtains. Octave
//     layering divides units by the layer frequency, so fractional units
//     are valid; every axis must stay positive.
//   - Min/Max — lattice corner values are drawn from [Min, Max);
//     0 ≤ Min < Max and Max ≥ 2 (Max-1 is the normalization divisor).
//   - Repeats — extra copies of the [Min, Max) range in the table.
//   - Seed    — stream identity; the zero value is the fixed default.
//   - Table   — optional pre-built permutation table. Injecting one lets
//     several generators (octave layers) share a single shuffle instead
//     of rebuilding it per instance.
type Options struct {
	Unit    []float64
	Min     int
	Max     int
	Repeats int
	Seed    field.Seed
	Table   *lattice.Table
}

// DefaultOptions returns the conventional 8-bit table domain: corner
// values in [0x00, 0xff), no repeats.
func DefaultOptions() Options {
	return Options{
		Min: 0x00,
		Max: 0xff,
	}
}
