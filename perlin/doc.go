// Package perlin generates gradient noise on the same unit lattice as
// package unitnoise, using Ken Perlin's improved-noise construction.
//
// Each lattice corner hashes to a 4-bit gradient code instead of a value;
// a sample's contribution from a corner is the dot product of that
// gradient with the vector from the corner to the sample, and the eight
// contributions interpolate under the quintic fade 6t⁵-15t⁴+10t³. The
// quintic fade has zero first and second derivatives at cell boundaries,
// so the field is C²-continuous across cells — the visible difference
// from cosine-eased value noise.
//
// The gradient directions come from a 16-way branch table rather than
// stored vectors (Riven's optimization,
// http://riven8192.blogspot.com/2010/08/calculate-perlinnoise-twice-as-fast.html).
//
// Output is rescaled from the natural [-1,1] to [0,1]; the full range is
// reachable. Determinism and windowing behave exactly as in unitnoise,
// and Noise implements the octave.Layerer capability with shared tables.
package perlin
