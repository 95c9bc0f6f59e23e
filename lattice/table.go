package lattice

import "github.com/tvessen/noisefield/field"

// Table is an immutable shuffled lookup table of lattice corner values:
// repeats+1 concatenated copies of the range [min, max), shuffled once at
// construction. Share one Table across generators (octave layers) by
// injecting it; never rebuild per layer.
type Table struct {
	values []int
}

// NewTable builds a shuffled table from the given domain, consuming the
// provided RNG stream. Returns ErrInvalidRange unless 0 ≤ min < max and
// max ≥ 2, ErrInvalidRepeats for negative repeats.
//
// Complexity: O((max-min)·(repeats+1)) time and memory.
func NewTable(min, max, repeats int, rng *field.RNG) (*Table, error) {
	if min < 0 || max <= min || max < 2 {
		return nil, ErrInvalidRange
	}
	if repeats < 0 {
		return nil, ErrInvalidRepeats
	}
	span := max - min
	values := make([]int, 0, span*(repeats+1))
	for r := 0; r <= repeats; r++ {
		for v := min; v < max; v++ {
			values = append(values, v)
		}
	}
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return &Table{values: values}, nil
}

// Len returns the table length.
func (t *Table) Len() int {
	return len(t.values)
}

// Lookup returns the table value at index modulo the table length. The
// wrap-around is intentional and load-bearing: corner indices are raw
// mixed-radix accumulations of lattice coordinates. Negative indices
// (from negative locations) wrap the same way.
//
// Complexity: O(1).
func (t *Table) Lookup(index int) int {
	i := index % len(t.values)
	if i < 0 {
		i += len(t.values)
	}
	return t.values[i]
}

// Values returns a copy of the table contents, in order. Intended for
// inspection and tests; the table itself stays immutable.
func (t *Table) Values() []int {
	out := make([]int, len(t.values))
	copy(out, t.values)
	return out
}
