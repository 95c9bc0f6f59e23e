package worley

import (
	"math"
	"sync"

	"github.com/dgravesa/go-parallel/parallel"
	"gonum.org/v1/gonum/floats"

	"github.com/tvessen/noisefield/field"
)

// Style selects what a sample derives from its nearest feature point.
type Style int

const (
	// Distance fields carry the normalized distance to the nearest point.
	Distance Style = iota
	// Cells fields carry the nearest point's class value.
	Cells
	// BlendedCells fields are Cells with a one-pixel antialiased blend
	// against the second-nearest point at cell boundaries.
	BlendedCells
)

// Options configures a cellular-noise generator.
//
// Fields:
//   - Points — number of feature points to scatter; must be positive.
//   - Volume — bounding volume the points land in; nil means the size of
//     each Fill request, spreading points through the sampled space.
//   - Origin — offset of the bounding volume's upper-top-left corner;
//     nil means the origin.
//   - Style  — Distance, Cells or BlendedCells.
//   - Seed   — stream identity; the zero value is the fixed default.
type Options struct {
	Points int
	Volume field.Size
	Origin field.Loc
	Style  Style
	Seed   field.Seed
}

// DefaultOptions returns a ten-point distance field.
func DefaultOptions() Options {
	return Options{Points: 10}
}

// Worley is a cellular-noise generator. The seeded stream it scatters
// points from advances on every Fill; see the package documentation.
type Worley struct {
	points int
	volume field.Size
	origin field.Loc
	style  Style
	seed   field.Seed

	mu  sync.Mutex
	rng *field.RNG
}

// New constructs a cellular-noise generator. Returns ErrNoPoints for a
// non-positive point count, ErrInvalidVolume for a degenerate volume,
// field.ErrShapeMismatch for volumes or origins of the wrong axis count.
func New(opts Options) (*Worley, error) {
	if opts.Points < 1 {
		return nil, ErrNoPoints
	}
	if opts.Volume != nil {
		if err := field.CheckShape(opts.Volume, nil); err != nil {
			if err == field.ErrInvalidSize {
				err = ErrInvalidVolume
			}
			return nil, err
		}
	}
	if opts.Origin != nil && len(opts.Origin) != field.Axes {
		return nil, field.ErrShapeMismatch
	}
	w := &Worley{
		points: opts.Points,
		style:  opts.Style,
		seed:   opts.Seed,
		rng:    field.NewRNG(opts.Seed),
	}
	if opts.Volume != nil {
		w.volume = append(field.Size{}, opts.Volume...)
	}
	if opts.Origin != nil {
		w.origin = append(field.Loc{}, opts.Origin...)
	}
	return w, nil
}

// Fill produces a volume of shape size anchored at loc, values in [0,1].
//
// Complexity: O(points · d·h·w).
func (w *Worley) Fill(size field.Size, loc field.Loc) (*field.Grid, error) {
	if err := field.CheckShape(size, loc); err != nil {
		return nil, err
	}
	at := loc.OrOrigin()
	pts := w.scatter(size)

	out := field.NewGrid(size)
	parallel.For(size[field.Z], func(z, _ int) {
		pz := float64(z + at[field.Z])
		for y := 0; y < size[field.Y]; y++ {
			py := float64(y + at[field.Y])
			for x := 0; x < size[field.X]; x++ {
				px := float64(x + at[field.X])
				out.Set(z, y, x, w.sample(pts, pz, py, px))
			}
		}
	})

	if w.style == Distance {
		// Distances normalize against the realized maximum; an all-zero
		// field (every sample on a point) stays as is. Division, not a
		// reciprocal multiply, so the farthest sample lands on 1 exactly.
		if max := floats.Max(out.Data); max > 0 {
			for i := range out.Data {
				out.Data[i] /= max
			}
		}
	}
	return out, nil
}

// Layer derives a copy for one octave with the point count scaled by
// freq. Each layer re-derives its stream from the shared seed, so layers
// are reproducible independently of call order. The legacy flag only
// affects unit lattices and is ignored here.
func (w *Worley) Layer(freq float64, _ bool) (field.Source, error) {
	return New(Options{
		Points: int(math.Round(float64(w.points) * freq)),
		Volume: w.volume,
		Origin: w.origin,
		Style:  w.style,
		Seed:   w.seed,
	})
}

// scatter draws the per-call feature point set: integer coordinates
// inside the bounding volume (defaulting to the fill size), shifted by
// the configured origin. Serialized so concurrent Fills each get a
// coherent slice of the stream.
func (w *Worley) scatter(size field.Size) [][field.Axes]float64 {
	vol := w.volume
	if vol == nil {
		vol = size
	}
	origin := w.origin.OrOrigin()

	pts := make([][field.Axes]float64, w.points)
	w.mu.Lock()
	for i := range pts {
		for axis := 0; axis < field.Axes; axis++ {
			r := w.rng.Float64() * float64(vol[axis]-1)
			pts[i][axis] = math.Round(r) + float64(origin[axis])
		}
	}
	w.mu.Unlock()
	return pts
}

// sample resolves one sample against every feature point, tracking the
// nearest and second-nearest.
func (w *Worley) sample(pts [][field.Axes]float64, z, y, x float64) float64 {
	d1 := math.Inf(1)
	d2 := math.Inf(1)
	i1, i2 := 0, 0
	for i := range pts {
		dz := pts[i][field.Z] - z
		dy := pts[i][field.Y] - y
		dx := pts[i][field.X] - x
		d := math.Sqrt(dz*dz + dy*dy + dx*dx)
		switch {
		case d < d1:
			d2, i2 = d1, i1
			d1, i1 = d, i
		case d < d2:
			d2, i2 = d, i
		}
	}

	switch w.style {
	case Cells:
		return w.class(i1)
	case BlendedCells:
		gap := d2 - d1
		if gap < 1 {
			t := (1 + gap) / 2
			return t*w.class(i1) + (1-t)*w.class(i2)
		}
		return w.class(i1)
	default:
		return d1
	}
}

// class maps a feature point index to its flat cell value in (0, 1].
func (w *Worley) class(i int) float64 {
	return float64(i+1) / float64(w.points)
}
