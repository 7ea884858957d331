package dp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goplan/mdp"
	"github.com/samuelfneumann/goplan/utils/intutils"
)

// Iterate runs policy iteration on the MDP m starting from the policy
// pi, alternating policy evaluation and greedy improvement until the
// policy no longer changes between rounds. It returns the final
// action-value function, the final policy, and the number of
// evaluation-improvement rounds performed, counting from 1.
//
// The initial action values q are overwritten and may be nil. Any
// valid initial policy works; the all-zeros policy is the usual
// choice. Termination is guaranteed: each round's policy is at least
// as good as the last at every state, and there are only finitely many
// deterministic policies.
func Iterate(q *mat.Dense, pi []int, m *mdp.MDP, epsilon float64) (
	*mat.Dense, []int, int, error) {
	if err := validPolicy(pi, m); err != nil {
		return nil, nil, 0, fmt.Errorf("iterate: %v", err)
	}

	steps := 0
	for {
		v, err := Evaluate(pi, m, epsilon)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("iterate: could not evaluate "+
				"policy: %v", err)
		}

		var piNew []int
		q, piNew = Improve(v, m)
		steps++

		if intutils.Equal(pi, piNew) {
			return q, pi, steps, nil
		}
		pi = piNew
	}
}
