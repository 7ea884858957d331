// Package marsrover implements the Mars rover environment, a 1-D
// corridor of cells with fully known dynamics.
//
// The rover starts somewhere in the corridor and can drive left or
// right. Driving succeeds with probability 1-slip and moves the rover
// in the opposite direction with probability slip. Driving off either
// end leaves the rover in place. Entering a cell yields that cell's
// reward, and the episode ends when the rover reaches the rightmost
// cell.
//
// Because the dynamics are known exactly, the environment satisfies
// environment.Tabular: it can hand planners its full transition
// tensor and expected reward matrix in addition to supporting
// sample-based interaction through Step.
package marsrover

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/goplan/environment"
	"github.com/samuelfneumann/goplan/timestep"
	"github.com/samuelfneumann/goplan/utils/intutils"
)

const (
	// Actions available to the rover
	Left int = iota
	Right

	// Actions is the total number of actions in the environment
	Actions int = 2
)

// MarsRover represents the Mars rover corridor environment
type MarsRover struct {
	environment.Starter

	cells   int
	slip    float64
	rewards []float64 // reward for entering each cell

	transitions  *tensor.Dense
	rewardMatrix *mat.Dense

	position    int
	discount    float64
	currentStep timestep.TimeStep

	seed uint64
	rng  rand.Source
}

// New creates a new MarsRover with the argument number of cells. The
// rewards slice holds the reward for entering each cell and must have
// one entry per cell. Slip is the probability that the rover moves
// opposite to the chosen direction.
func New(cells int, slip float64, rewards []float64, discount float64,
	s environment.Starter, seed uint64) (*MarsRover, timestep.TimeStep,
	error) {
	if cells < 2 {
		return nil, timestep.TimeStep{}, fmt.Errorf("marsrover: need at "+
			"least 2 cells, got %d", cells)
	}
	if len(rewards) != cells {
		return nil, timestep.TimeStep{}, fmt.Errorf("marsrover: got %d "+
			"rewards for %d cells", len(rewards), cells)
	}
	if slip < 0.0 || slip > 1.0 {
		return nil, timestep.TimeStep{}, fmt.Errorf("marsrover: slip "+
			"probability must be in [0, 1], got %v", slip)
	}

	r := &MarsRover{
		Starter:  s,
		cells:    cells,
		slip:     slip,
		rewards:  rewards,
		discount: discount,
		seed:     seed,
		rng:      rand.NewSource(seed),
	}
	r.transitions = r.makeTransitions()
	r.rewardMatrix = r.makeRewards()

	return r, r.Reset(), nil
}

// NewDefault creates the canonical five-cell rover with a high reward
// at the right end of the corridor, a small consolation reward at the
// left end, and deterministic driving.
func NewDefault(discount float64, seed uint64) (*MarsRover,
	timestep.TimeStep, error) {
	rewards := []float64{1, 0, 0, 0, 10}
	starter := environment.NewSingleStart(2)
	return New(5, 0.0, rewards, discount, starter, seed)
}

// makeTransitions constructs the transition tensor of the corridor.
// Rows are (cell, action) pairs; driving moves one cell in the chosen
// direction with probability 1-slip and one cell the other way with
// probability slip, clamped at the corridor ends.
func (r *MarsRover) makeTransitions() *tensor.Dense {
	backing := make([]float64, r.cells*Actions*r.cells)

	index := func(s, a, next int) int {
		return s*Actions*r.cells + a*r.cells + next
	}

	for s := 0; s < r.cells; s++ {
		left := intutils.Clip(s-1, 0, r.cells-1)
		right := intutils.Clip(s+1, 0, r.cells-1)

		backing[index(s, Left, left)] += 1.0 - r.slip
		backing[index(s, Left, right)] += r.slip
		backing[index(s, Right, right)] += 1.0 - r.slip
		backing[index(s, Right, left)] += r.slip
	}

	return tensor.New(
		tensor.WithShape(r.cells, Actions, r.cells),
		tensor.WithBacking(backing),
	)
}

// makeRewards constructs the expected reward matrix from the cell
// entry rewards and the transition tensor
func (r *MarsRover) makeRewards() *mat.Dense {
	rewards := mat.NewDense(r.cells, Actions, nil)
	for s := 0; s < r.cells; s++ {
		for a := 0; a < Actions; a++ {
			var expected float64
			for next, p := range r.transitionRow(s, a) {
				expected += p * r.rewards[next]
			}
			rewards.Set(s, a, expected)
		}
	}
	return rewards
}

// transitionRow returns the next-state distribution for taking action
// a in cell s
func (r *MarsRover) transitionRow(s, a int) []float64 {
	row := make([]float64, r.cells)
	for next := range row {
		row[next] = r.transitions.Get(s*Actions*r.cells + a*r.cells +
			next).(float64)
	}
	return row
}

// States returns the number of states in the environment
func (r *MarsRover) States() int {
	return r.cells
}

// Actions returns the number of actions in the environment
func (r *MarsRover) Actions() int {
	return Actions
}

// TransitionTensor returns the transition tensor of the environment,
// with shape (cells, actions, cells)
func (r *MarsRover) TransitionTensor() *tensor.Dense {
	return r.transitions
}

// RewardMatrix returns the expected reward matrix of the environment,
// with shape (cells, actions)
func (r *MarsRover) RewardMatrix() *mat.Dense {
	return r.rewardMatrix
}

// Base returns the environment below any wrapper layers. A MarsRover
// is never a wrapper, so it returns itself.
func (r *MarsRover) Base() environment.Tabular {
	return r
}

// Reset resets the environment to a starting state between episodes
func (r *MarsRover) Reset() timestep.TimeStep {
	start := r.Start()
	r.position = intutils.Clip(int(start.AtVec(0)), 0, r.cells-1)

	obs := mat.NewVecDense(1, []float64{float64(r.position)})
	startStep := timestep.New(timestep.First, 0, r.discount, obs, 0)
	r.currentStep = startStep
	return startStep
}

// Step takes one environmental step given the argument action,
// sampling the next cell from the transition distribution. It returns
// the next timestep and whether the episode has ended.
func (r *MarsRover) Step(action mat.Vector) (timestep.TimeStep, bool) {
	a := int(action.AtVec(0))
	if a < 0 || a >= Actions {
		panic(fmt.Sprintf("step: invalid action %d", a))
	}

	dist := distuv.NewCategorical(r.transitionRow(r.position, a), r.rng)
	next := int(dist.Rand())

	reward := r.rewards[next]
	r.position = next

	obs := mat.NewVecDense(1, []float64{float64(next)})
	number := r.currentStep.Number + 1

	stepType := timestep.Mid
	if r.AtGoal(obs) {
		stepType = timestep.Last
	}

	step := timestep.New(stepType, reward, r.discount, obs, number)
	r.currentStep = step
	return step, stepType == timestep.Last
}

// GetReward returns the expected reward for taking action a on
// timestep t
func (r *MarsRover) GetReward(t timestep.TimeStep, a mat.Vector) float64 {
	return r.rewardMatrix.At(t.State(), int(a.AtVec(0)))
}

// AtGoal returns whether state is the goal cell at the right end of
// the corridor
func (r *MarsRover) AtGoal(state mat.Matrix) bool {
	return int(state.At(0, 0)) == r.cells-1
}

// DiscountSpec returns the discounting specification of the
// environment
func (r *MarsRover) DiscountSpec() environment.Spec {
	bounds := mat.NewVecDense(1, []float64{r.discount})

	return environment.Spec{
		Shape:       mat.NewVecDense(1, nil),
		Type:        environment.Discount,
		LowerBound:  bounds,
		UpperBound:  bounds,
		Cardinality: environment.Continuous,
	}
}

// ObservationSpec returns the observation specification of the
// environment
func (r *MarsRover) ObservationSpec() environment.Spec {
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{float64(r.cells - 1)})

	return environment.Spec{
		Shape:       mat.NewVecDense(1, nil),
		Type:        environment.Observation,
		LowerBound:  lowerBound,
		UpperBound:  upperBound,
		Cardinality: environment.Discrete,
	}
}

// ActionSpec returns the action specification of the environment
func (r *MarsRover) ActionSpec() environment.Spec {
	lowerBound := mat.NewVecDense(1, []float64{float64(Left)})
	upperBound := mat.NewVecDense(1, []float64{float64(Right)})

	return environment.Spec{
		Shape:       mat.NewVecDense(1, nil),
		Type:        environment.Action,
		LowerBound:  lowerBound,
		UpperBound:  upperBound,
		Cardinality: environment.Discrete,
	}
}

// RewardSpec returns the reward specification of the environment
func (r *MarsRover) RewardSpec() environment.Spec {
	lowerBound := mat.NewVecDense(1, []float64{floats.Min(r.rewards)})
	upperBound := mat.NewVecDense(1, []float64{floats.Max(r.rewards)})

	return environment.Spec{
		Shape:       mat.NewVecDense(1, nil),
		Type:        environment.Reward,
		LowerBound:  lowerBound,
		UpperBound:  upperBound,
		Cardinality: environment.Continuous,
	}
}

func (r *MarsRover) String() string {
	return fmt.Sprintf("MarsRover | cells: %d  |  slip: %v  |  "+
		"position: %d", r.cells, r.slip, r.position)
}
