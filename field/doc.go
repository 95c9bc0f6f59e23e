// Package field defines the shared vocabulary of the noise engine.
//
// What:
//
//   - Size and Loc: three-axis (depth, height, width) extents and offsets.
//   - Grid: a dense float64 volume backed by a flat slice.
//   - Source: the single contract every generator honors —
//     Fill(size, loc) returns a fresh Grid with values in [0,1].
//   - Seed and RNG: reproducible pseudorandom streams. Equal seeds yield
//     bit-identical streams on every platform; no seed ever depends on
//     process state.
//
// Why:
//
//   - Every higher package (unitnoise, perlin, worley, octave, static)
//     consumes exactly these types and nothing else, so compositing code
//     can treat all generators interchangeably.
//
// Errors:
//
//   - ErrShapeMismatch: size or location does not span exactly 3 axes.
//   - ErrInvalidSize: a size axis is below 1.
//
// Concurrency:
//
//   - Grid and Seed are plain values. RNG is a mutable stream and must not
//     be shared across goroutines; derive one per generator.
package field
