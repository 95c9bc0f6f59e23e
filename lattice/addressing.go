package lattice

import "math"

// Period is the wrap length of the lattice along every axis, in cells:
// coordinates repeat after Period lattice steps, so the addressable
// field tiles with a period of Period·unit pixels per axis. The wrap is
// load-bearing twice over. It bounds cell coordinates, and it fixes the
// mixed radices of corner hashing, which keeps a corner's hashed value
// independent of the requested window — sampling a sub-window of a
// larger request must reproduce it bit-for-bit.
const Period = 255

// Axis holds the lattice decomposition of every sample position along one
// axis: the integer cell containing the sample and the fractional offset
// within that cell. Cell + frac reconstructs the continuous coordinate,
// modulo Period.
type Axis struct {
	Cells []int
	Fracs []float64
}

// MapAxis decomposes n sample positions along one axis, shifted by loc,
// divided into cells of the given unit and wrapped modulo Period. Adding
// loc before dividing is what lets a caller sample an arbitrary
// sub-window of the unbounded field: the cell derived for an absolute
// coordinate never depends on the requested window. Negative locations
// wrap to the positive period.
//
// Complexity: O(n).
func MapAxis(n, loc int, unit float64) Axis {
	ax := Axis{
		Cells: make([]int, n),
		Fracs: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		c := math.Mod((float64(i)+float64(loc))/unit, Period)
		if c < 0 {
			c += Period
		}
		whole := math.Floor(c)
		ax.Cells[i] = int(whole)
		ax.Fracs[i] = c - whole
	}
	return ax
}

// MapAxes decomposes all sample positions of a volume, one Axis per
// active axis. size, loc and unit must have equal length; unit axes must
// be positive (ErrInvalidUnit).
//
// Complexity: O(Σ size[axis]); note this is per-axis, not per-sample —
// the cell along an axis depends only on that axis's coordinate.
func MapAxes(size, loc []int, unit []float64) ([]Axis, error) {
	if err := CheckUnit(unit, len(size)); err != nil {
		return nil, err
	}
	axes := make([]Axis, len(size))
	for a := range size {
		axes[a] = MapAxis(size[a], loc[a], unit[a])
	}
	return axes, nil
}

// CheckUnit validates a unit vector against an expected axis count.
func CheckUnit(unit []float64, axes int) error {
	if len(unit) != axes {
		return ErrInvalidUnit
	}
	for _, u := range unit {
		if u <= 0 {
			return ErrInvalidUnit
		}
	}
	return nil
}

// RadixFactors precomputes the per-axis strides of corner flattening
// over the Period-sized virtual lattice: factor[a] = Period^(axes-1-a).
// Factors must not derive from the requested volume — window-dependent
// radices would hash the same corner differently per request.
func RadixFactors(axes int) []int {
	factors := make([]int, axes)
	f := 1
	for a := axes - 1; a >= 0; a-- {
		factors[a] = f
		f *= Period
	}
	return factors
}

// Flatten collapses multi-axis cell coordinates into one table index by
// mixed-radix accumulation. The sum is reduced modulo tableLen at every
// accumulation step — not only at the end — so large lattices cannot
// overflow the index arithmetic.
//
// Complexity: O(axes).
func Flatten(cells, factors []int, tableLen int) int {
	idx := 0
	for a := range cells {
		idx = (idx + cells[a]*factors[a]) % tableLen
	}
	return idx
}
