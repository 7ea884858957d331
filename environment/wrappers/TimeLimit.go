// Package wrappers implements environment decorators that alter how
// episodes unfold without changing the underlying dynamics
package wrappers

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goplan/environment"
	"github.com/samuelfneumann/goplan/timestep"
)

// TimeLimit wraps a tabular environment and truncates episodes after
// a fixed number of steps. The wrapped environment's dynamics are
// untouched: planners that need the true MDP should unwrap the
// decorator through Base.
type TimeLimit struct {
	environment.Tabular
	limit int
	steps int
}

// NewTimeLimit wraps env so that episodes are truncated after limit
// steps
func NewTimeLimit(env environment.Tabular, limit int) (*TimeLimit,
	error) {
	if limit <= 0 {
		return nil, fmt.Errorf("timelimit: limit must be positive, "+
			"got %d", limit)
	}
	return &TimeLimit{Tabular: env, limit: limit}, nil
}

// Base returns the wrapped environment
func (t *TimeLimit) Base() environment.Tabular {
	return t.Tabular
}

// Reset resets the wrapped environment and the step counter
func (t *TimeLimit) Reset() timestep.TimeStep {
	t.steps = 0
	return t.Tabular.Reset()
}

// Step takes one step in the wrapped environment. Once the step limit
// is reached the returned timestep is forced to be the last in the
// episode.
func (t *TimeLimit) Step(action mat.Vector) (timestep.TimeStep, bool) {
	step, last := t.Tabular.Step(action)
	t.steps++

	if t.steps >= t.limit && !last {
		step = timestep.New(timestep.Last, step.Reward, step.Discount,
			step.Observation, step.Number)
		last = true
	}
	return step, last
}
