// Package dp implements exact dynamic programming algorithms for
// tabular MDPs with known dynamics.
//
// The algorithms in this package are synchronous and deterministic.
// Given the same MDP and the same inputs, they always produce the same
// value functions and policies, so results are exactly reproducible
// across runs.
package dp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goplan/mdp"
	"github.com/samuelfneumann/goplan/utils/matutils"
)

// DefaultEpsilon is the default convergence threshold for policy
// evaluation
const DefaultEpsilon = 1e-8

// Evaluate computes the state-value function of the deterministic
// policy pi on the MDP m. The policy maps each state index to an
// action index.
//
// The value function starts at zero and is updated with synchronous
// Bellman expectation sweeps: every state is updated from the previous
// sweep's values, so the result does not depend on state ordering.
// Sweeps stop once the largest absolute value change across states
// drops below epsilon. Because the MDP's discount is strictly below 1,
// each sweep is a max-norm contraction and the sweeps are guaranteed
// to converge.
func Evaluate(pi []int, m *mdp.MDP, epsilon float64) (*mat.VecDense,
	error) {
	if epsilon <= 0.0 {
		return nil, fmt.Errorf("evaluate: epsilon must be positive, "+
			"got %v", epsilon)
	}
	if err := validPolicy(pi, m); err != nil {
		return nil, fmt.Errorf("evaluate: %v", err)
	}

	states := m.States()
	discount := m.Discount()

	v := mat.NewVecDense(states, nil)
	for {
		vNew := mat.NewVecDense(states, nil)
		for s := 0; s < states; s++ {
			a := pi[s]
			reward := m.ExpectedReward(s, a)

			var value float64
			for next, p := range m.Transitions(s, a) {
				value += p * (reward + discount*v.AtVec(next))
			}
			vNew.SetVec(s, value)
		}

		if matutils.MaxAbsDiff(vNew, v) < epsilon {
			return vNew, nil
		}
		v = vNew
	}
}

// validPolicy returns an error if pi is not a valid deterministic
// policy for the MDP m
func validPolicy(pi []int, m *mdp.MDP) error {
	if len(pi) != m.States() {
		return fmt.Errorf("policy has %d entries but MDP has %d states",
			len(pi), m.States())
	}
	for s, a := range pi {
		if a < 0 || a >= m.Actions() {
			return fmt.Errorf("policy selects action %d in state %d "+
				"but MDP has %d actions", a, s, m.Actions())
		}
	}
	return nil
}
