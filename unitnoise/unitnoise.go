package unitnoise

import (
	"math"

	"github.com/dgravesa/go-parallel/parallel"

	"github.com/tvessen/noisefield/field"
	"github.com/tvessen/noisefield/lattice"
)

// volumeAxes and curtainAxes are the two lattice dimensionalities this
// package supports: full volumes and one-axis-propagated curtains.
const (
	volumeAxes  = 3
	curtainAxes = 2
)

// Noise is a value-noise generator. Immutable after construction; Fill
// is safe to call concurrently.
type Noise struct {
	unit    []float64
	min     int
	max     int
	repeats int
	seed    field.Seed
	table   *lattice.Table
	smooth  bool
	curtain bool
}

// New constructs plain value noise over a 3-axis lattice.
// Returns lattice.ErrInvalidUnit unless Unit holds 3 positive values,
// lattice.ErrInvalidRange / lattice.ErrInvalidRepeats on a bad table
// domain.
func New(opts Options) (*Noise, error) {
	return newNoise(opts, false, false)
}

// NewCosine constructs value noise whose interpolation fractions are
// pre-shaped by a cosine ease, removing the visible facets of New at
// cell boundaries.
func NewCosine(opts Options) (*Noise, error) {
	return newNoise(opts, true, false)
}

// NewCurtains constructs two-axis (depth, width) value noise whose rows
// repeat down every column. Unit must hold 2 positive values (Z, X).
func NewCurtains(opts Options) (*Noise, error) {
	return newNoise(opts, false, true)
}

// NewCosineCurtains constructs cosine-eased curtains.
func NewCosineCurtains(opts Options) (*Noise, error) {
	return newNoise(opts, true, true)
}

func newNoise(opts Options, smooth, curtain bool) (*Noise, error) {
	axes := volumeAxes
	if curtain {
		axes = curtainAxes
	}
	if err := lattice.CheckUnit(opts.Unit, axes); err != nil {
		return nil, err
	}
	if opts.Min < 0 || opts.Max <= opts.Min || opts.Max < 2 {
		return nil, lattice.ErrInvalidRange
	}
	if opts.Repeats < 0 {
		return nil, lattice.ErrInvalidRepeats
	}
	table := opts.Table
	if table == nil {
		var err error
		table, err = lattice.NewTable(opts.Min, opts.Max, opts.Repeats, field.NewRNG(opts.Seed))
		if err != nil {
			return nil, err
		}
	}
	unit := make([]float64, axes)
	copy(unit, opts.Unit)
	return &Noise{
		unit:    unit,
		min:     opts.Min,
		max:     opts.Max,
		repeats: opts.Repeats,
		seed:    opts.Seed,
		table:   table,
		smooth:  smooth,
		curtain: curtain,
	}, nil
}

// Table returns the generator's permutation table for injection into
// sibling generators.
func (n *Noise) Table() *lattice.Table {
	return n.table
}

// Fill produces a volume of shape size anchored at loc, values in [0,1].
//
// Complexity: O(d·h·w·2^axes).
func (n *Noise) Fill(size field.Size, loc field.Loc) (*field.Grid, error) {
	if err := field.CheckShape(size, loc); err != nil {
		return nil, err
	}
	at := loc.OrOrigin()
	if n.curtain {
		return n.fillCurtain(size, at)
	}
	return n.fillVolume(size, at)
}

// Layer derives a rescaled copy for one octave: units divided by freq
// (multiplied in legacy mode), sharing this generator's seed and table.
func (n *Noise) Layer(freq float64, legacy bool) (field.Source, error) {
	unit := make([]float64, len(n.unit))
	for i, u := range n.unit {
		if legacy {
			unit[i] = u * freq
		} else {
			unit[i] = u / freq
		}
	}
	return newNoise(Options{
		Unit:    unit,
		Min:     n.min,
		Max:     n.max,
		Repeats: n.repeats,
		Seed:    n.seed,
		Table:   n.table,
	}, n.smooth, n.curtain)
}

// fillVolume samples the full 3-axis lattice.
func (n *Noise) fillVolume(size field.Size, at field.Loc) (*field.Grid, error) {
	axs, err := lattice.MapAxes([]int(size), []int(at), n.unit)
	if err != nil {
		return nil, err
	}
	if n.smooth {
		easeCosine(axs)
	}
	factors := lattice.RadixFactors(volumeAxes)
	div := float64(n.max - 1)

	out := field.NewGrid(size)
	parallel.For(size[field.Z], func(z, _ int) {
		var (
			corners [1 << volumeAxes]float64
			cells   [volumeAxes]int
			fracs   [volumeAxes]float64
		)
		cells[field.Z] = axs[field.Z].Cells[z]
		fracs[field.Z] = axs[field.Z].Fracs[z]
		for y := 0; y < size[field.Y]; y++ {
			cells[field.Y] = axs[field.Y].Cells[y]
			fracs[field.Y] = axs[field.Y].Fracs[y]
			for x := 0; x < size[field.X]; x++ {
				cells[field.X] = axs[field.X].Cells[x]
				fracs[field.X] = axs[field.X].Fracs[x]
				for c := 0; c < 1<<volumeAxes; c++ {
					corner := [volumeAxes]int{
						cells[field.Z] + c>>2&1,
						cells[field.Y] + c>>1&1,
						cells[field.X] + c&1,
					}
					idx := lattice.Flatten(corner[:], factors, n.table.Len())
					corners[c] = float64(n.table.Lookup(idx))
				}
				out.Set(z, y, x, reduceCorners(corners[:], fracs[:])/div)
			}
		}
	})
	return out, nil
}

// easeCosine reshapes interpolation fractions with (1-cos(f·π))/2. The
// fraction slices are freshly allocated per Fill, never caller-visible.
func easeCosine(axs []lattice.Axis) {
	for _, ax := range axs {
		for i, f := range ax.Fracs {
			ax.Fracs[i] = (1 - math.Cos(f*math.Pi)) / 2
		}
	}
}

// reduceCorners collapses the 2^D corner values of one sample by pairwise
// linear interpolation, last axis first: corners differing only in the
// final axis merge with that axis's fraction, halving the set until a
// single value remains. Corner index bit D-1-a carries axis a, so the
// pairs are always adjacent. The slice is scratch and overwritten.
func reduceCorners(corners []float64, fracs []float64) float64 {
	count := len(corners)
	for a := len(fracs) - 1; a >= 0; a-- {
		t := fracs[a]
		count /= 2
		for k := 0; k < count; k++ {
			corners[k] = lerp(corners[2*k], corners[2*k+1], t)
		}
	}
	return corners[0]
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
