package octave

import "github.com/tvessen/noisefield/field"

// Mode selects the unit-scaling operator for derived layers.
type Mode int

const (
	// Divide derives layer units as unit/frequency_i. The documented,
	// default behavior: higher octaves get finer lattices.
	Divide Mode = iota
	// Multiply derives layer units as unit·frequency_i, reproducing an
	// early scaling bug kept so old output can be regenerated
	// bit-for-bit. Never the default; select it explicitly.
	Multiply
)

// Layerer is the capability a source needs to be octaved: besides being
// a Source it derives an independently parameterized copy of itself for
// one layer. legacy is true under Mode Multiply; sources without a unit
// lattice ignore it.
type Layerer interface {
	field.Source
	Layer(freq float64, legacy bool) (field.Source, error)
}

// Options configures a compositor.
//
// Fields:
//   - Octaves     — number of layers; at least 1.
//   - Persistence — per-layer weight increment.
//   - Amplitude   — weight of the first layer.
//   - Frequency   — base frequency; doubled per layer; positive.
//   - Mode        — Divide (default) or Multiply (legacy).
//
// Every layer weight Amplitude + Persistence·i must be positive.
type Options struct {
	Octaves     int
	Persistence float64
	Amplitude   float64
	Frequency   float64
	Mode        Mode
}

// DefaultOptions returns the conventional four-layer schedule: weights
// 8, 16, 24, 32 at frequencies 2, 4, 8, 16.
func DefaultOptions() Options {
	return Options{
		Octaves:     4,
		Persistence: 8,
		Amplitude:   8,
		Frequency:   2,
		Mode:        Divide,
	}
}
