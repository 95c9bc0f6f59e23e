package octave

import (
	"gonum.org/v1/gonum/floats"

	"github.com/tvessen/noisefield/field"
)

// Source composites octaves of a wrapped Layerer. Immutable after
// construction; Fill is as concurrency-safe as the wrapped source.
type Source struct {
	src  Layerer
	opts Options
}

// New wraps src in a compositor. Validation is fail-fast: ErrOctaves,
// ErrFrequency and ErrAmplitude cover the whole weight/frequency
// schedule, so Fill cannot hit an invalid layer later.
func New(src Layerer, opts Options) (*Source, error) {
	if opts.Octaves < 1 {
		return nil, ErrOctaves
	}
	if opts.Frequency <= 0 {
		return nil, ErrFrequency
	}
	for i := 0; i < opts.Octaves; i++ {
		if opts.Amplitude+opts.Persistence*float64(i) <= 0 {
			return nil, ErrAmplitude
		}
	}
	return &Source{src: src, opts: opts}, nil
}

// Fill produces a volume of shape size anchored at loc: the weighted sum
// of all layers divided by the total weight, values in [0,1].
//
// Complexity: Octaves creations + Octaves underlying fills.
func (s *Source) Fill(size field.Size, loc field.Loc) (*field.Grid, error) {
	if err := field.CheckShape(size, loc); err != nil {
		return nil, err
	}

	legacy := s.opts.Mode == Multiply
	freq := s.opts.Frequency

	// A single layer normalizes to itself: hand the layer's grid through
	// untouched so the pass-through stays bit-identical.
	if s.opts.Octaves == 1 {
		layer, err := s.src.Layer(freq, legacy)
		if err != nil {
			return nil, err
		}
		return layer.Fill(size, loc)
	}

	out := field.NewGrid(size)
	total := 0.0
	for i := 0; i < s.opts.Octaves; i++ {
		amp := s.opts.Amplitude + s.opts.Persistence*float64(i)
		layer, err := s.src.Layer(freq, legacy)
		if err != nil {
			return nil, err
		}
		g, err := layer.Fill(size, loc)
		if err != nil {
			return nil, err
		}
		floats.AddScaled(out.Data, amp, g.Data)
		total += amp
		freq *= 2
	}
	// Divide rather than scale by 1/total: the accumulated data is
	// bounded by the identically-accumulated total, so division cannot
	// leave [0,1] by a rounding step.
	for i := range out.Data {
		out.Data[i] /= total
	}
	return out, nil
}
