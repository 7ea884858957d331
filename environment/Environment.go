// Package environment outlines the interfaces and structs needed to implement
// concrete environments
package environment

import (
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/goplan/timestep"
)

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() mat.Vector
}

// Task implements the reward scheme for taking actions in some environment
type Task interface {
	GetReward(t timestep.TimeStep, a mat.Vector) float64
	AtGoal(state mat.Matrix) bool
}

// Environment implements a simulated environment, which includes a Task to
// complete
type Environment interface {
	Task
	Starter
	Reset() timestep.TimeStep // Resets between episodes
	Step(action mat.Vector) (timestep.TimeStep, bool)
	RewardSpec() Spec
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}

// Tabular is an Environment whose dynamics are known exactly. Such
// environments expose the full MDP description - the number of states
// and actions, the transition tensor, and the expected reward matrix -
// so that planning algorithms can compute policies without sampling.
//
// The transition tensor has shape (states, actions, states), where
// entry (s, a, s') holds the probability of moving to state s' when
// taking action a in state s. The reward matrix has shape
// (states, actions), where entry (s, a) holds the expected immediate
// reward for taking action a in state s.
//
// Base returns the environment below any wrapper layers. Environments
// that are not wrappers return themselves.
type Tabular interface {
	Environment

	States() int
	Actions() int
	TransitionTensor() *tensor.Dense
	RewardMatrix() *mat.Dense
	Base() Tabular
}
