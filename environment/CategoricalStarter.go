package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states sampled from a uniform
// categorical distribution over the states (0, 1, 2, ... N-1).
type CategoricalStarter struct {
	seed uint64
	rand distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter sampling
// starting states from (0, 1, 2, ... states-1)
func NewCategoricalStarter(states int, seed uint64) CategoricalStarter {
	source := rand.NewSource(seed)

	// Create the weights for the uniform categorical distribution
	weights := make([]float64, states)
	for i := range weights {
		weights[i] = 1.0 / float64(states)
	}

	return CategoricalStarter{seed, distuv.NewCategorical(weights, source)}
}

// Start returns a starting state vector
func (c CategoricalStarter) Start() mat.Vector {
	return mat.NewVecDense(1, []float64{c.rand.Rand()})
}

// SingleStart always starts an environment in the same state
type SingleStart struct {
	state int
}

// NewSingleStart returns a Starter that always starts in state
func NewSingleStart(state int) SingleStart {
	return SingleStart{state}
}

// Start returns the starting state vector
func (s SingleStart) Start() mat.Vector {
	return mat.NewVecDense(1, []float64{float64(s.state)})
}
