// Package mdp implements tabular Markov decision processes with fully
// known dynamics.
//
// An MDP packages together the transition tensor, the expected reward
// matrix, and the discount factor of a finite decision process. All
// components are validated eagerly when the MDP is created so that
// planning algorithms never discover malformed dynamics mid-iteration.
package mdp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/goplan/environment"
	"github.com/samuelfneumann/goplan/utils/tensorutils"
)

var (
	// ErrNotStochastic indicates that some transition row does not
	// form a probability distribution over next states
	ErrNotStochastic = errors.New("transition rows must each sum to 1")

	// ErrShape indicates that the transition tensor and reward matrix
	// have incompatible shapes
	ErrShape = errors.New("incompatible transition and reward shapes")

	// ErrInvalidDiscount indicates a discount factor outside [0, 1).
	// Discounts of 1 are rejected since policy evaluation is only
	// guaranteed to converge for discounts strictly below 1.
	ErrInvalidDiscount = errors.New("discount must be in [0, 1)")
)

// probTol is the tolerance used when checking row-stochasticity
const probTol = 1e-9

// MDP describes a finite Markov decision process with known dynamics.
// States and actions are contiguous zero-based indices. An MDP is
// immutable once created.
type MDP struct {
	states  int
	actions int

	// transitions has shape (states, actions, states); entry
	// (s, a, s') is the probability of transitioning to s' when
	// taking action a in state s
	transitions *tensor.Dense

	// rewards has shape (states, actions); entry (s, a) is the
	// expected immediate reward for taking action a in state s
	rewards *mat.Dense

	discount float64
}

// New validates the argument dynamics and returns a new MDP. The
// transition tensor must have shape (states, actions, states) matching
// the (states, actions) reward matrix, every transition row must be a
// probability distribution, and the discount must be in [0, 1).
func New(transitions *tensor.Dense, rewards *mat.Dense,
	discount float64) (*MDP, error) {
	if discount < 0.0 || discount >= 1.0 {
		return nil, fmt.Errorf("mdp: %w: got %v", ErrInvalidDiscount,
			discount)
	}

	states, actions := rewards.Dims()

	shape := transitions.Shape()
	if len(shape) != 3 {
		return nil, fmt.Errorf("mdp: %w: transition tensor must be "+
			"3-dimensional, got shape %v", ErrShape, shape)
	}
	if shape[0] != states || shape[1] != actions || shape[2] != states {
		return nil, fmt.Errorf("mdp: %w: transition tensor has shape %v "+
			"but reward matrix has shape (%d, %d)", ErrShape, shape,
			states, actions)
	}
	if transitions.Dtype() != tensor.Float64 {
		return nil, fmt.Errorf("mdp: %w: transition tensor must hold "+
			"float64 values, got %v", ErrShape, transitions.Dtype())
	}

	m := &MDP{
		states:      states,
		actions:     actions,
		transitions: transitions,
		rewards:     rewards,
		discount:    discount,
	}

	// Ensure each (state, action) transition row is a valid
	// probability distribution before any planning begins
	for s := 0; s < states; s++ {
		for a := 0; a < actions; a++ {
			row := m.Transitions(s, a)
			for next, p := range row {
				if p < 0.0 || p > 1.0 {
					return nil, fmt.Errorf("mdp: %w: probability %v at "+
						"(%d, %d, %d) outside [0, 1]", ErrNotStochastic,
						p, s, a, next)
				}
			}
			if sum := floats.Sum(row); sum < 1.0-probTol ||
				sum > 1.0+probTol {
				return nil, fmt.Errorf("mdp: %w: row (%d, %d) sums to %v",
					ErrNotStochastic, s, a, sum)
			}
		}
	}

	return m, nil
}

// FromEnvironment extracts the MDP description from a tabular
// environment. Wrapper layers are stripped first so that the dynamics
// always come from the base environment.
func FromEnvironment(env environment.Tabular, discount float64) (*MDP,
	error) {
	for env.Base() != env {
		env = env.Base()
	}
	return New(env.TransitionTensor(), env.RewardMatrix(), discount)
}

// States returns the number of states in the MDP
func (m *MDP) States() int {
	return m.states
}

// Actions returns the number of actions in the MDP
func (m *MDP) Actions() int {
	return m.actions
}

// Discount returns the discount factor of the MDP
func (m *MDP) Discount() float64 {
	return m.discount
}

// ExpectedReward returns the expected immediate reward for taking
// action in state
func (m *MDP) ExpectedReward(state, action int) float64 {
	return m.rewards.At(state, action)
}

// Transitions returns the distribution over next states for taking
// action in state. The returned slice has one entry per state.
func (m *MDP) Transitions(state, action int) []float64 {
	view, err := m.transitions.Slice(
		tensorutils.NewIndex(state),
		tensorutils.NewIndex(action),
	)
	if err != nil {
		panic(fmt.Sprintf("transitions: could not slice transition "+
			"tensor at (%d, %d): %v", state, action, err))
	}
	return tensorutils.Float64s(view.Materialize())
}
