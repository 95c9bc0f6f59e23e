// Package unitnoise generates value noise on a unit lattice: the volume
// is split into cells of `unit` pixels per axis, every lattice corner
// carries a value hashed from a shuffled permutation table, and samples
// between corners are n-dimensionally interpolated.
//
// What:
//
//   - New: plain value noise; raw fractions interpolate the corners, so
//     facets are visible at cell boundaries.
//   - NewCosine: the same lattice smoothed with a cosine ease
//     (1-cos(f·π))/2 on the interpolation fractions.
//   - NewCurtains / NewCosineCurtains: two-axis (depth, width) noise
//     propagated down every column, producing vertical streaks.
//
// Output is normalized by max-1, so with min=0 the full [0,1] range is
// reachable. A generator is deterministic: equal Options (seed included)
// produce bit-identical fills, and any sub-window of a larger fill equals
// the smaller fill at the same location.
//
// Octaves:
//
//   - Noise implements the octave.Layerer capability; derived layers
//     share the parent's seed and permutation table.
//
// Errors come from the lattice package (table domain, unit axes) and
// from field (shape of a fill request).
package unitnoise
