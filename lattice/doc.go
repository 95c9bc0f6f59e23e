// Package lattice implements the shared substrate of all unit-grid
// noises: shuffled permutation tables and the addressing scheme that maps
// sample coordinates onto lattice cells.
//
// What:
//
//   - Table: (max-min)·(repeats+1) integers drawn from [min, max),
//     shuffled once at construction, immutable afterwards. Lookup wraps
//     its index modulo the table length — lattice coordinates regularly
//     exceed the table and rely on the wrap to stay bounded without
//     branching.
//   - MapAxis / MapAxes: per-axis decomposition of sample coordinates
//     into integer cell indices and fractional offsets in [0,1), shifted
//     by the caller's location so any sub-window of the unbounded field
//     can be addressed. Coordinates wrap at Period lattice steps, so the
//     field tiles with a period of Period·unit pixels.
//   - RadixFactors / Flatten: the mixed-radix accumulation that collapses
//     multi-axis cell coordinates into one table index. Radices are fixed
//     by Period — never by the requested volume, which would hash the
//     same corner differently per window — and the accumulation reduces
//     modulo the table length at every step so large lattices cannot
//     overflow.
//
// Why:
//
//   - Value noise and gradient noise differ only in what they derive from
//     a lattice corner; both consume exactly this addressing.
//
// Errors:
//
//   - ErrInvalidRange: table domain outside 0 ≤ min < max with max ≥ 2.
//   - ErrInvalidRepeats: negative repeat count.
//   - ErrInvalidUnit: non-positive unit along some axis.
//
// Concurrency:
//
//   - Table is immutable after construction and safe to share read-only
//     across generators and goroutines.
package lattice
