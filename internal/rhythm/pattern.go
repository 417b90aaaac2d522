// Package rhythm generates the onset grid that drives the drone synthesizer.
package rhythm

import "math/rand"

// Default grid parameters: 600 steps, one onset in three on average.
const (
	DefaultSteps       = 600
	DefaultProbability = 1.0 / 3.0
)

// Pattern is an immutable sequence of onset flags.
type Pattern struct {
	onsets []bool
}

// Generate draws n independent onset flags, each true with probability p.
// p is clamped to [0, 1] and a negative n yields an empty pattern.
func Generate(rng *rand.Rand, n int, p float64) Pattern {
	if n < 0 {
		n = 0
	}
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	onsets := make([]bool, n)
	for i := range onsets {
		onsets[i] = rng.Float64() < p
	}
	return Pattern{onsets: onsets}
}

// FromFlags builds a pattern from explicit flags. The slice is copied.
func FromFlags(flags []bool) Pattern {
	onsets := make([]bool, len(flags))
	copy(onsets, flags)
	return Pattern{onsets: onsets}
}

// Len returns the number of steps in the pattern.
func (p Pattern) Len() int { return len(p.onsets) }

// At reports whether step i is an onset.
func (p Pattern) At(i int) bool { return p.onsets[i] }

// Onsets returns how many steps are onsets.
func (p Pattern) Onsets() int {
	n := 0
	for _, on := range p.onsets {
		if on {
			n++
		}
	}
	return n
}

// Fraction returns the share of steps that are onsets, or 0 for an empty pattern.
func (p Pattern) Fraction() float64 {
	if len(p.onsets) == 0 {
		return 0
	}
	return float64(p.Onsets()) / float64(len(p.onsets))
}

// Indices returns the step indices that are onsets, in order.
func (p Pattern) Indices() []int {
	idx := make([]int, 0, p.Onsets())
	for i, on := range p.onsets {
		if on {
			idx = append(idx, i)
		}
	}
	return idx
}

// String renders the pattern as a row of 'x' (onset) and '.' (rest).
func (p Pattern) String() string {
	b := make([]byte, len(p.onsets))
	for i, on := range p.onsets {
		if on {
			b[i] = 'x'
		} else {
			b[i] = '.'
		}
	}
	return string(b)
}
