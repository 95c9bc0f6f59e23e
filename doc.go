// Package noisefield is a deterministic, seed-reproducible procedural
// noise engine for dense N-dimensional volumes — stacks of 2-D frames
// (depth × height × width) filled with continuously varying scalar
// fields in [0,1].
//
// 🚀 What is noisefield?
//
//	A pure-computation library that brings together:
//		• Value noise on a shuffled permutation lattice (plain & cosine-eased)
//		• Gradient ("Perlin-style") noise with the 16-way corner-gradient trick
//		• Cellular ("Worley-style") distance and cell-coloring fields
//		• An octave compositor layering any of the above into fractal detail
//		• Seeded white noise for raw static
//
// ✨ Why choose noisefield?
//
//   - Reproducible – equal seeds produce bit-identical fields, on every
//     platform, independent of process state
//   - Windowable – any Fill samples a stable infinite field: a sub-window
//     of a larger request is always bit-equal to the smaller request
//   - Pure Go – no cgo, no I/O, no global state; every generator owns its
//     immutable tables and is safe for concurrent Fill calls
//
// Under the hood, everything is organized into small subpackages:
//
//	field/     — Size, Loc, Grid, the Source contract, seeds & the RNG
//	lattice/   — permutation tables and unit-grid addressing
//	unitnoise/ — value noise and curtain variants
//	perlin/    — gradient noise
//	worley/    — cellular noise
//	octave/    — fractal layering over any of the above
//	static/    — seeded uniform noise
//
// Quick example:
//
//	opts := unitnoise.DefaultOptions()
//	opts.Unit = []float64{1, 144, 144}
//	opts.Seed = field.TextSeed("spam")
//
//	src, _ := unitnoise.NewCosine(opts)
//	img, _ := src.Fill(field.Size{1, 720, 1280}, nil)
//
//	go get github.com/tvessen/noisefield
package noisefield
