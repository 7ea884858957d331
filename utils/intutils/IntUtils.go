// Package intutils provides utilities for working with ints
package intutils

// Clip clips an integer to within a minimum and maximum value
func Clip(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Equal returns whether two int slices are element-wise equal
func Equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
