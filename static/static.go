// Package static generates seeded uniform white noise — raw television
// static. It is the simplest Source and the reference for what the seed
// machinery guarantees: equal seeds, equal static.
//
// The stream is linear, so "moving" through space is simulated by
// generating a volume of size+|loc| from the stream's origin and slicing
// the requested window out of it: Fill(size, loc) equals the trailing
// window of Fill(size+|loc|, nil). Negative locations mirror onto
// positive ones. The stream advances across Fill calls — construct a new
// generator when the same static is needed twice.
package static

import (
	"sync"

	"github.com/tvessen/noisefield/field"
)

// Options configures a white-noise generator.
type Options struct {
	Seed field.Seed
}

// Noise is a white-noise generator backed by one seeded stream.
type Noise struct {
	mu  sync.Mutex
	rng *field.RNG
}

// New constructs a white-noise generator. Every configuration is valid.
func New(opts Options) *Noise {
	return &Noise{rng: field.NewRNG(opts.Seed)}
}

// Fill produces a volume of shape size, values in [0,1). Generation is
// serialized internally; concurrent Fills are safe, merely unordered.
//
// Complexity: O((d+|lz|)·(h+|ly|)·(w+|lx|)) draws for location l.
func (n *Noise) Fill(size field.Size, loc field.Loc) (*field.Grid, error) {
	if err := field.CheckShape(size, loc); err != nil {
		return nil, err
	}
	at := loc.OrOrigin()
	burn := make(field.Loc, field.Axes)
	ext := make(field.Size, field.Axes)
	for axis := 0; axis < field.Axes; axis++ {
		burn[axis] = abs(at[axis])
		ext[axis] = size[axis] + burn[axis]
	}

	full := field.NewGrid(ext)
	n.mu.Lock()
	for i := range full.Data {
		full.Data[i] = n.rng.Float64()
	}
	n.mu.Unlock()
	return full.Window(size, burn)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
