// Package tensorutils provides utilities for working with tensors
package tensorutils

import (
	"fmt"

	"gorgonia.org/tensor"
)

// Slice implements a struct that can be used for slicing tensors.
//
// Given a tensor T and a Slice S, T.Slice(..., S, ...) is equivalent to
// T[..., S.start:S.end:S.step, ...]
type Slice struct {
	start, end, step int
}

// Start returns the start index for the tensor slice
func (s Slice) Start() int {
	return s.start
}

// End returns the ending index for the tensor slice
func (s Slice) End() int {
	return s.end
}

// Step returns the step for the tensor slice
func (s Slice) Step() int {
	return s.step
}

// NewSlice returns a new Slice that can be used to slice tensors
func NewSlice(start, stop, step int) Slice {
	return Slice{start, stop, step}
}

// NewIndex returns a Slice selecting the single index i along a
// dimension
func NewIndex(i int) Slice {
	return Slice{i, i + 1, 1}
}

// Float64s returns the float64 data backing a tensor view. A view
// holding a single element is returned as a one-element slice.
func Float64s(t tensor.Tensor) []float64 {
	switch data := t.Data().(type) {
	case []float64:
		return data
	case float64:
		return []float64{data}
	default:
		panic(fmt.Sprintf("float64s: tensor does not hold float64 data "+
			"(%T)", t.Data()))
	}
}
