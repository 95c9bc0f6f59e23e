package unitnoise

import (
	"github.com/dgravesa/go-parallel/parallel"

	"github.com/tvessen/noisefield/field"
	"github.com/tvessen/noisefield/lattice"
)

// fillCurtain samples a two-axis (depth, width) lattice and repeats each
// resulting row down every column of the frame. The height axis of size
// and loc only controls replication, never sampling.
func (n *Noise) fillCurtain(size field.Size, at field.Loc) (*field.Grid, error) {
	flat := []int{size[field.Z], size[field.X]}
	shift := []int{at[field.Z], at[field.X]}
	axs, err := lattice.MapAxes(flat, shift, n.unit)
	if err != nil {
		return nil, err
	}
	if n.smooth {
		easeCosine(axs)
	}
	factors := lattice.RadixFactors(curtainAxes)
	div := float64(n.max - 1)

	out := field.NewGrid(size)
	parallel.For(size[field.Z], func(z, _ int) {
		var (
			corners [1 << curtainAxes]float64
			fracs   [curtainAxes]float64
		)
		row := make([]float64, size[field.X])
		cz := axs[0].Cells[z]
		fracs[0] = axs[0].Fracs[z]
		for x := 0; x < size[field.X]; x++ {
			fracs[1] = axs[1].Fracs[x]
			for c := 0; c < 1<<curtainAxes; c++ {
				corner := [curtainAxes]int{
					cz + c>>1&1,
					axs[1].Cells[x] + c&1,
				}
				idx := lattice.Flatten(corner[:], factors, n.table.Len())
				corners[c] = float64(n.table.Lookup(idx))
			}
			row[x] = reduceCorners(corners[:], fracs[:]) / div
		}
		for y := 0; y < size[field.Y]; y++ {
			copy(out.Data[out.Index(z, y, 0):out.Index(z, y, 0)+size[field.X]], row)
		}
	})
	return out, nil
}
