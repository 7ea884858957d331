package dp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goplan/mdp"
	"github.com/samuelfneumann/goplan/utils/matutils"
)

// Improve performs one step of greedy policy improvement on the MDP m
// given the state-value function v. It returns the action-value
// function computed from v together with the greedy policy.
//
// When several actions attain the maximal action value in a state, the
// lowest action index is selected. Ties therefore always break the
// same way, keeping improvement deterministic.
func Improve(v mat.Vector, m *mdp.MDP) (*mat.Dense, []int) {
	if v.Len() != m.States() {
		panic(fmt.Sprintf("improve: value function has %d entries but "+
			"MDP has %d states", v.Len(), m.States()))
	}

	states := m.States()
	actions := m.Actions()
	discount := m.Discount()

	q := mat.NewDense(states, actions, nil)
	pi := make([]int, states)

	for s := 0; s < states; s++ {
		for a := 0; a < actions; a++ {
			reward := m.ExpectedReward(s, a)

			var value float64
			for next, p := range m.Transitions(s, a) {
				value += p * (reward + discount*v.AtVec(next))
			}
			q.Set(s, a, value)
		}
		pi[s] = matutils.MaxVec(q.RowView(s))
	}

	return q, pi
}
