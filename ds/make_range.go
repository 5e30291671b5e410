package ds

import (
	"golang.org/x/exp/constraints"
)

// MakeRange returns start, start+step, ... for every value below end.
func MakeRange[T constraints.Integer](start, end, step T) []T {
	if step <= 0 || end <= start {
		return []T{}
	}
	sequence := make([]T, 0, (end-start+step-1)/step)
	for i := start; i < end; i += step {
		sequence = append(sequence, i)
	}
	return sequence
}
