// Package agent defines interfaces for agents that act in environments
package agent

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goplan/timestep"
)

// ErrNotFitted indicates that an agent's policy was queried before the
// policy was computed or loaded
var ErrNotFitted = errors.New("policy not fitted")

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. SelectAction returns
// ErrNotFitted if the policy has not been computed or loaded yet.
type Policy interface {
	SelectAction(t timestep.TimeStep) (mat.Vector, error)
}

// Fitter computes a policy for an environment. For planners, fitting
// is a single offline computation: calling Fit again after a
// successful fit is a no-op.
type Fitter interface {
	Fit() error
	Fitted() bool
}

// Saver persists a fitted policy to durable storage and restores it
type Saver interface {
	Save(path string) error
	Load(path string) error
}

// Planner is an agent that computes its policy offline from a known
// model of its environment's dynamics rather than learning from
// sampled experience. Once fitted, a Planner selects actions greedily
// according to its computed policy.
type Planner interface {
	Policy
	Fitter
	Saver
}
