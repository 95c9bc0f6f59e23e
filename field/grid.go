package field

// Grid is a dense float64 volume of shape Size, stored depth-major in a
// flat backing slice: Data[(z*Size[Y]+y)*Size[X]+x]. A Grid is always
// freshly allocated by the generator that returns it; no Fill stage ever
// mutates a caller-visible buffer.
type Grid struct {
	Size Size
	Data []float64
}

// NewGrid allocates a zeroed Grid of the given size. The size must have
// been validated by the caller (see CheckShape).
//
// Complexity: O(d·h·w) memory.
func NewGrid(size Size) *Grid {
	s := make(Size, Axes)
	copy(s, size)
	return &Grid{
		Size: s,
		Data: make([]float64, size[Z]*size[Y]*size[X]),
	}
}

// Index converts volume coordinates to a flat offset into Data.
func (g *Grid) Index(z, y, x int) int {
	return (z*g.Size[Y]+y)*g.Size[X] + x
}

// At returns the value at (z, y, x).
func (g *Grid) At(z, y, x int) float64 {
	return g.Data[g.Index(z, y, x)]
}

// Set stores v at (z, y, x).
func (g *Grid) Set(z, y, x int, v float64) {
	g.Data[g.Index(z, y, x)] = v
}

// Frame returns the flat sub-slice holding frame z. The slice aliases
// Data; rows within one frame are contiguous.
func (g *Grid) Frame(z int) []float64 {
	w := g.Size[Y] * g.Size[X]
	return g.Data[z*w : (z+1)*w]
}

// Window copies the sub-volume of shape size anchored at loc into a new
// Grid. Returns ErrShapeMismatch / ErrInvalidSize on malformed input, and
// ErrInvalidSize when the window overruns the source volume.
//
// Complexity: O(d·h·w) of the window.
func (g *Grid) Window(size Size, loc Loc) (*Grid, error) {
	if err := CheckShape(size, loc); err != nil {
		return nil, err
	}
	at := loc.OrOrigin()
	for axis := 0; axis < Axes; axis++ {
		if at[axis] < 0 || at[axis]+size[axis] > g.Size[axis] {
			return nil, ErrInvalidSize
		}
	}
	out := NewGrid(size)
	for z := 0; z < size[Z]; z++ {
		for y := 0; y < size[Y]; y++ {
			src := g.Index(z+at[Z], y+at[Y], at[X])
			dst := out.Index(z, y, 0)
			copy(out.Data[dst:dst+size[X]], g.Data[src:src+size[X]])
		}
	}
	return out, nil
}

// Equal reports whether two grids have identical shape and bit-identical
// values. Useful for reproducibility checks.
func (g *Grid) Equal(other *Grid) bool {
	if len(g.Size) != len(other.Size) || len(g.Data) != len(other.Data) {
		return false
	}
	for i, n := range g.Size {
		if other.Size[i] != n {
			return false
		}
	}
	for i, v := range g.Data {
		if other.Data[i] != v {
			return false
		}
	}
	return true
}
