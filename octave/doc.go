// Package octave layers multiple frequencies of one noise source into
// self-similar fractal detail.
//
// For octave i in 0..Octaves-1 the compositor derives an independent
// layer from the wrapped source at frequency Frequency·2^i with weight
// Amplitude + Persistence·i, sums the weighted layers, and divides by
// the total weight — so the result stays inside the wrapped source's
// [0,1] output range for any octave count, and a single-octave
// compositor at frequency one is an exact pass-through of its source.
//
// Layer derivation is the source's own affair (the Layerer capability):
// unit lattices divide their units by the layer frequency, cellular
// noise multiplies its point count. Layers share the parent source's
// seed — and, for lattice sources, its permutation table — so stacking
// octaves never rebuilds tables.
//
// Mode selects the unit-scaling operator. Divide is the documented
// behavior; Multiply reproduces an early scaling bug and exists only to
// regenerate output produced by it. Nothing selects Multiply silently.
//
// Errors:
//
//   - ErrOctaves: octave count below 1.
//   - ErrFrequency: non-positive base frequency.
//   - ErrAmplitude: a weight schedule with a non-positive layer weight
//     (which would break the [0,1] bound).
package octave
