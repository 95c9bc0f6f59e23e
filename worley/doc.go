// Package worley generates cellular noise: feature points are scattered
// pseudorandomly inside a bounding volume and every sample takes its
// value from the nearest point.
//
// Styles:
//
//   - Distance — the field is the Euclidean distance to the nearest
//     feature point, normalized by the realized maximum, producing
//     pit-like cells with dark centers.
//   - Cells — the field is the nearest point's class value (i+1)/points,
//     producing flat-colored cells with hard edges.
//   - BlendedCells — Cells, but wherever the second-nearest point is
//     less than one pixel farther than the nearest, the two class values
//     blend proportionally to the gap, softening cell edges by about one
//     pixel.
//
// Randomness:
//
//   - Feature points are drawn from the generator's seeded stream at
//     every Fill. The stream deliberately advances across calls — two
//     consecutive Fills of one generator scatter different points, while
//     two freshly constructed generators with equal Options always agree
//     bit-for-bit. Construct a new generator (or reuse one Fill's output)
//     when you need the same cells twice. Point generation is serialized
//     internally, so concurrent Fill calls are safe, merely unordered.
//
// The distance scan is exhaustive: O(points · volume), no spatial index.
// Intentional — the engine targets tens to low hundreds of points, where
// the scan is cheaper than maintaining any acceleration structure.
//
// Errors:
//
//   - ErrNoPoints: non-positive point count.
//   - ErrInvalidVolume: bounding volume with an axis below 1.
package worley
