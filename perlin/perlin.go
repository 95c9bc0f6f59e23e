package perlin

import (
	"github.com/dgravesa/go-parallel/parallel"

	"github.com/tvessen/noisefield/field"
	"github.com/tvessen/noisefield/lattice"
)

// Permutation domain of the hashing table. Gradient codes only consume
// the low 4 bits of a table value, so the domain is fixed rather than
// configurable; one repeat keeps the chained corner-hash lookups cycling
// through distinct table regions.
const (
	tableMin     = 0x00
	tableMax     = 0xff
	tableRepeats = 1
)

const axes = 3

// Options configures a gradient-noise generator.
//
// Fields:
//   - Unit  — pixels per lattice step along Z, Y, X; positive, fractional
//     allowed (octave layers divide units by their frequency).
//   - Seed  — stream identity; the zero value is the fixed default.
//   - Table — optional pre-built permutation table shared with sibling
//     generators; built from Seed when nil.
type Options struct {
	Unit  []float64
	Seed  field.Seed
	Table *lattice.Table
}

// Noise is a gradient-noise generator. Immutable after construction;
// Fill is safe to call concurrently.
type Noise struct {
	unit  []float64
	seed  field.Seed
	table *lattice.Table
}

// New constructs gradient noise over a 3-axis lattice. Returns
// lattice.ErrInvalidUnit unless Unit holds 3 positive values.
func New(opts Options) (*Noise, error) {
	if err := lattice.CheckUnit(opts.Unit, axes); err != nil {
		return nil, err
	}
	table := opts.Table
	if table == nil {
		var err error
		table, err = lattice.NewTable(tableMin, tableMax, tableRepeats, field.NewRNG(opts.Seed))
		if err != nil {
			return nil, err
		}
	}
	unit := make([]float64, axes)
	copy(unit, opts.Unit)
	return &Noise{unit: unit, seed: opts.Seed, table: table}, nil
}

// Table returns the generator's permutation table for injection into
// sibling generators.
func (n *Noise) Table() *lattice.Table {
	return n.table
}

// Fill produces a volume of shape size anchored at loc, values in [0,1].
//
// Complexity: O(d·h·w·2^3).
func (n *Noise) Fill(size field.Size, loc field.Loc) (*field.Grid, error) {
	if err := field.CheckShape(size, loc); err != nil {
		return nil, err
	}
	at := loc.OrOrigin()
	axs, err := lattice.MapAxes([]int(size), []int(at), n.unit)
	if err != nil {
		return nil, err
	}

	out := field.NewGrid(size)
	parallel.For(size[field.Z], func(z, _ int) {
		var (
			corners [1 << axes]float64
			fades   [axes]float64
		)
		cz := axs[field.Z].Cells[z]
		fz := axs[field.Z].Fracs[z]
		fades[field.Z] = fade(fz)
		for y := 0; y < size[field.Y]; y++ {
			cy := axs[field.Y].Cells[y]
			fy := axs[field.Y].Fracs[y]
			fades[field.Y] = fade(fy)
			for x := 0; x < size[field.X]; x++ {
				cx := axs[field.X].Cells[x]
				fx := axs[field.X].Fracs[x]
				fades[field.X] = fade(fx)
				for c := 0; c < 1<<axes; c++ {
					bz := c >> 2 & 1
					by := c >> 1 & 1
					bx := c & 1
					code := n.cornerCode(cz+bz, cy+by, cx+bx)
					corners[c] = gradDot(
						code,
						fx-float64(bx),
						fy-float64(by),
						fz-float64(bz),
					)
				}
				v := (reduce(corners[:], fades[:]) + 1) / 2
				// The lattice dot products have no hard ±1 bound; the
				// output range contract does.
				out.Set(z, y, x, clamp01(v))
			}
		}
	})
	return out, nil
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
	return New(Options{Unit: unit, Seed: n.seed, Table: n.table})
}

// cornerCode chains table lookups over the corner's cell coordinates:
// table[table[z]+y]+x, each lookup wrapped modulo the table length. Only
// the low 4 bits select a gradient.
func (n *Noise) cornerCode(cz, cy, cx int) int {
	v := n.table.Lookup(cz)
	v = n.table.Lookup(v + cy)
	return (v + cx) & 0xf
}

// fade is Perlin's quintic 6t⁵-15t⁴+10t³. Both f′ and f″ vanish at 0 and
// 1, which is what makes the assembled field C² across cell boundaries.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// reduce collapses the 8 corner dot products by pairwise interpolation,
// last axis first, under the per-axis fade weights.
func reduce(corners []float64, fades []float64) float64 {
	count := len(corners)
	for a := len(fades) - 1; a >= 0; a-- {
		t := fades[a]
		count /= 2
		for k := 0; k < count; k++ {
			corners[k] = corners[2*k] + (corners[2*k+1]-corners[2*k])*t
		}
	}
	return corners[0]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
