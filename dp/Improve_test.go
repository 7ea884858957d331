package dp_test

import (
	"math"
	"testing"

	"github.com/samuelfneumann/goplan/dp"
)

func TestImproveGreedy(t *testing.T) {
	m := chain(t, 0.9)

	v, err := dp.Evaluate([]int{0, 0}, m, 1e-10)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	q, pi := dp.Improve(v, m)

	// With a zero value function, action values are the expected
	// immediate rewards
	if math.Abs(q.At(0, 1)-1.0) > 1e-6 {
		t.Errorf("got Q(0, 1) = %v, want 1", q.At(0, 1))
	}
	if pi[0] != 1 {
		t.Errorf("got action %d in state 0, want 1", pi[0])
	}
}

// TestImproveTieBreak checks that equal action values resolve to the
// lowest action index
func TestImproveTieBreak(t *testing.T) {
	m := chain(t, 0.9)

	v, err := dp.Evaluate([]int{0, 0}, m, 1e-10)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	q, pi := dp.Improve(v, m)

	// Both actions in state 1 self-loop with no reward, so their
	// action values tie exactly
	if q.At(1, 0) != q.At(1, 1) {
		t.Fatalf("expected tied action values in state 1, got %v and %v",
			q.At(1, 0), q.At(1, 1))
	}
	if pi[1] != 0 {
		t.Errorf("tie in state 1 resolved to action %d, want 0", pi[1])
	}
}

// TestImproveMonotonic checks the policy improvement theorem: the
// improved policy is at least as good as the evaluated one at every
// state
func TestImproveMonotonic(t *testing.T) {
	m := slippery(t, 0.9)

	pi := []int{0, 0}
	vOld, err := dp.Evaluate(pi, m, 1e-10)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	_, piNew := dp.Improve(vOld, m)
	vNew, err := dp.Evaluate(piNew, m, 1e-10)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	for s := 0; s < m.States(); s++ {
		if vNew.AtVec(s) < vOld.AtVec(s)-1e-6 {
			t.Errorf("state %d: improved policy has value %v, below %v",
				s, vNew.AtVec(s), vOld.AtVec(s))
		}
	}
}
