package matutils_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goplan/utils/matutils"
)

func TestMaxVec(t *testing.T) {
	tests := []struct {
		values []float64
		want   int
	}{
		{[]float64{0, 1, 2}, 2},
		{[]float64{3, 1, 2}, 0},
		{[]float64{-2, -1, -3}, 1},
		{[]float64{1, 1, 1}, 0},    // Ties resolve to the first index
		{[]float64{0, 2, 2, 1}, 1}, // Even when the tie is later
	}

	for _, test := range tests {
		vec := mat.NewVecDense(len(test.values), test.values)
		if got := matutils.MaxVec(vec); got != test.want {
			t.Errorf("MaxVec(%v) = %d, want %d", test.values, got,
				test.want)
		}
	}
}

func TestMaxAbsDiff(t *testing.T) {
	a := mat.NewVecDense(3, []float64{1, 2, 3})
	b := mat.NewVecDense(3, []float64{1.5, 2, 0})

	if got := matutils.MaxAbsDiff(a, b); got != 3 {
		t.Errorf("got %v, want 3", got)
	}
	if got := matutils.MaxAbsDiff(a, a); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for vectors of different lengths")
		}
	}()

	matutils.MaxAbsDiff(mat.NewVecDense(2, nil), mat.NewVecDense(3, nil))
}
