package unitnoise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tvessen/noisefield/field"
	"github.com/tvessen/noisefield/lattice"
	"github.com/tvessen/noisefield/unitnoise"
)

// spamOptions is the canonical test configuration: unit (1,2,2) noise
// seeded with the text "spam".
func spamOptions() unitnoise.Options {
	opts := unitnoise.DefaultOptions()
	opts.Unit = []float64{1, 2, 2}
	opts.Seed = field.TextSeed("spam")
	return opts
}

// TestNew_Errors covers construction validation for every variant.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*unitnoise.Options)
		err  error
	}{
		{"NoUnit", func(o *unitnoise.Options) { o.Unit = nil }, lattice.ErrInvalidUnit},
		{"ShortUnit", func(o *unitnoise.Options) { o.Unit = []float64{1, 2} }, lattice.ErrInvalidUnit},
		{"ZeroUnit", func(o *unitnoise.Options) { o.Unit = []float64{1, 0, 2} }, lattice.ErrInvalidUnit},
		{"NegativeMin", func(o *unitnoise.Options) { o.Min = -1 }, lattice.ErrInvalidRange},
		{"MaxBelowMin", func(o *unitnoise.Options) { o.Max = 0 }, lattice.ErrInvalidRange},
		{"MaxBelowTwo", func(o *unitnoise.Options) { o.Min = 0; o.Max = 1 }, lattice.ErrInvalidRange},
		{"NegativeRepeats", func(o *unitnoise.Options) { o.Repeats = -1 }, lattice.ErrInvalidRepeats},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := spamOptions()
			tc.mut(&opts)
			_, err := unitnoise.New(opts)
			require.ErrorIs(t, err, tc.err)

			_, err = unitnoise.NewCosine(opts)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFill_ShapeErrors covers request validation at the top of Fill.
func TestFill_ShapeErrors(t *testing.T) {
	src, err := unitnoise.New(spamOptions())
	require.NoError(t, err)

	_, err = src.Fill(field.Size{4, 4}, nil)
	require.ErrorIs(t, err, field.ErrShapeMismatch)

	_, err = src.Fill(field.Size{1, 4, 4}, field.Loc{0})
	require.ErrorIs(t, err, field.ErrShapeMismatch)

	_, err = src.Fill(field.Size{1, 0, 4}, nil)
	require.ErrorIs(t, err, field.ErrInvalidSize)
}

// TestFill_Deterministic verifies both halves of the reproducibility
// contract: one generator agrees with itself across calls, and two
// independently constructed generators with equal options agree with
// each other.
func TestFill_Deterministic(t *testing.T) {
	size := field.Size{1, 4, 4}

	a, err := unitnoise.New(spamOptions())
	require.NoError(t, err)
	b, err := unitnoise.New(spamOptions())
	require.NoError(t, err)

	first, err := a.Fill(size, nil)
	require.NoError(t, err)
	again, err := a.Fill(size, nil)
	require.NoError(t, err)
	other, err := b.Fill(size, nil)
	require.NoError(t, err)

	require.True(t, first.Equal(again), "same generator, same output")
	require.True(t, first.Equal(other), "equal options, same output")
}

// TestFill_SeedsMatter verifies distinct seeds produce distinct fields.
func TestFill_SeedsMatter(t *testing.T) {
	size := field.Size{1, 8, 8}

	opts := spamOptions()
	a, err := unitnoise.New(opts)
	require.NoError(t, err)

	opts.Seed = field.TextSeed("eggs")
	b, err := unitnoise.New(opts)
	require.NoError(t, err)

	ga, err := a.Fill(size, nil)
	require.NoError(t, err)
	gb, err := b.Fill(size, nil)
	require.NoError(t, err)
	require.False(t, ga.Equal(gb))
}

// TestFill_WindowingStability verifies that a small request is the exact
// sub-window of a larger request at the same location: the noise is a
// stable field, not recomputed per window.
func TestFill_WindowingStability(t *testing.T) {
	src, err := unitnoise.New(spamOptions())
	require.NoError(t, err)

	small, err := src.Fill(field.Size{1, 4, 4}, nil)
	require.NoError(t, err)
	large, err := src.Fill(field.Size{2, 8, 8}, nil)
	require.NoError(t, err)

	window, err := large.Window(field.Size{1, 4, 4}, nil)
	require.NoError(t, err)
	require.True(t, small.Equal(window))
}

// TestFill_OffsetComposability verifies that shifting the location is
// equivalent to indexing deeper into a field sampled from the origin.
func TestFill_OffsetComposability(t *testing.T) {
	src, err := unitnoise.NewCosine(spamOptions())
	require.NoError(t, err)

	shifted, err := src.Fill(field.Size{1, 4, 4}, field.Loc{0, 2, 3})
	require.NoError(t, err)
	origin, err := src.Fill(field.Size{1, 8, 8}, nil)
	require.NoError(t, err)

	window, err := origin.Window(field.Size{1, 4, 4}, field.Loc{0, 2, 3})
	require.NoError(t, err)
	require.True(t, shifted.Equal(window))
}

// TestFill_RangeBound verifies every output value lies in [0,1], at the
// default table domain and at a minimal one.
func TestFill_RangeBound(t *testing.T) {
	for _, opts := range []unitnoise.Options{
		spamOptions(),
		{Unit: []float64{1, 3, 3}, Min: 1, Max: 3, Repeats: 2, Seed: field.IntSeed(11)},
	} {
		src, err := unitnoise.New(opts)
		require.NoError(t, err)
		g, err := src.Fill(field.Size{2, 16, 16}, nil)
		require.NoError(t, err)
		for i, v := range g.Data {
			require.GreaterOrEqual(t, v, 0.0, "index %d", i)
			require.LessOrEqual(t, v, 1.0, "index %d", i)
		}
	}
}

// TestFill_CosineAgreesOnLattice verifies the cosine ease is a pure
// reshaping of interpolation fractions: at lattice corners (fraction 0)
// the plain and eased variants are identical, between corners they
// diverge.
func TestFill_CosineAgreesOnLattice(t *testing.T) {
	plain, err := unitnoise.New(spamOptions())
	require.NoError(t, err)
	smooth, err := unitnoise.NewCosine(spamOptions())
	require.NoError(t, err)

	size := field.Size{1, 8, 8}
	gp, err := plain.Fill(size, nil)
	require.NoError(t, err)
	gs, err := smooth.Fill(size, nil)
	require.NoError(t, err)

	// Unit (1,2,2): even rows/columns sit on lattice corners.
	for y := 0; y < 8; y += 2 {
		for x := 0; x < 8; x += 2 {
			require.Equal(t, gp.At(0, y, x), gs.At(0, y, x), "corner (%d,%d)", y, x)
		}
	}
	require.False(t, gp.Equal(gs), "between corners the ease must matter")
}

// TestFill_SharedTable verifies explicit table injection: a generator
// built around another generator's table produces that generator's
// output without reshuffling.
func TestFill_SharedTable(t *testing.T) {
	owner, err := unitnoise.New(spamOptions())
	require.NoError(t, err)

	opts := spamOptions()
	opts.Seed = field.TextSeed("completely different")
	opts.Table = owner.Table()
	borrower, err := unitnoise.New(opts)
	require.NoError(t, err)

	size := field.Size{1, 6, 6}
	a, err := owner.Fill(size, nil)
	require.NoError(t, err)
	b, err := borrower.Fill(size, nil)
	require.NoError(t, err)
	require.True(t, a.Equal(b), "an injected table fixes the lattice regardless of seed")
}

// TestFill_DegenerateAxes verifies single-length axes everywhere — the
// single-frame still-image case is exercised constantly.
func TestFill_DegenerateAxes(t *testing.T) {
	src, err := unitnoise.New(spamOptions())
	require.NoError(t, err)

	for _, size := range []field.Size{
		{1, 1, 1},
		{1, 1, 9},
		{1, 9, 1},
		{3, 1, 1},
	} {
		g, err := src.Fill(size, nil)
		require.NoError(t, err)
		require.Len(t, g.Data, size[0]*size[1]*size[2])
	}
}
