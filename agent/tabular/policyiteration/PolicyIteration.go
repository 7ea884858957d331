// Package policyiteration implements the policy iteration algorithm
// as an agent.
//
// Unlike sample-based agents, a PolicyIteration agent never learns
// from environment interaction. It extracts the full MDP description
// from a tabular environment once, plans an optimal deterministic
// policy offline with dynamic programming, and afterwards acts
// greedily according to the cached policy.
package policyiteration

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goplan/agent"
	"github.com/samuelfneumann/goplan/dp"
	"github.com/samuelfneumann/goplan/environment"
	"github.com/samuelfneumann/goplan/mdp"
	"github.com/samuelfneumann/goplan/timestep"
)

// ErrBadShape indicates that a stored policy file is incompatible
// with the environment the agent acts in
var ErrBadShape = errors.New("stored policy has incompatible shape")

// PolicyIteration wraps the dynamic programming routines of the dp
// package as an agent.Planner. A single PolicyIteration instance owns
// its policy, action values, and fitted flag and is not safe for
// concurrent use.
type PolicyIteration struct {
	env    environment.Tabular
	config Config

	model  *mdp.MDP
	pi     []int
	q      *mat.Dense
	steps  int
	fitted bool
}

// New creates a new PolicyIteration agent acting in env
func New(env environment.Tabular, config Config) (*PolicyIteration,
	error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("policyiteration: invalid config: %v", err)
	}

	// Planning requires discrete, 1-dimensional actions
	if env.ActionSpec().Cardinality != environment.Discrete {
		return nil, fmt.Errorf("policyiteration: cannot use " +
			"non-discrete actions")
	}
	if env.ActionSpec().Shape.Len() != 1 {
		return nil, fmt.Errorf("policyiteration: actions must be " +
			"1-dimensional")
	}

	return &PolicyIteration{env: env, config: config}, nil
}

// Fit extracts the MDP description from the environment and runs
// policy iteration to convergence, caching the optimal policy and
// action values. Fit is idempotent: once the agent is fitted,
// subsequent calls are no-ops and leave the policy untouched.
func (p *PolicyIteration) Fit() error {
	if p.fitted {
		return nil
	}

	model, err := mdp.FromEnvironment(p.env, p.config.Gamma)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	pi := make([]int, model.States())
	q := mat.NewDense(model.States(), model.Actions(), nil)

	q, pi, steps, err := dp.Iterate(q, pi, model, p.config.epsilon())
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	p.model = model
	p.pi = pi
	p.q = q
	p.steps = steps
	p.fitted = true

	return nil
}

// Fitted returns whether the agent's policy has been computed or
// loaded
func (p *PolicyIteration) Fitted() bool {
	return p.fitted
}

// SelectAction returns the fitted policy's action for the state
// observed in t. It returns agent.ErrNotFitted if called before Fit
// or Load.
func (p *PolicyIteration) SelectAction(t timestep.TimeStep) (mat.Vector,
	error) {
	if !p.fitted {
		return nil, fmt.Errorf("selectaction: %w", agent.ErrNotFitted)
	}

	state := t.State()
	if state < 0 || state >= len(p.pi) {
		return nil, fmt.Errorf("selectaction: observation %d is not a "+
			"state index in [0, %d)", state, len(p.pi))
	}

	return mat.NewVecDense(1, []float64{float64(p.pi[state])}), nil
}

// Policy returns a copy of the fitted deterministic policy, one
// action index per state
func (p *PolicyIteration) Policy() []int {
	pi := make([]int, len(p.pi))
	copy(pi, p.pi)
	return pi
}

// ActionValues returns the action-value table computed by the last
// fit, or nil if the policy was loaded rather than fitted
func (p *PolicyIteration) ActionValues() *mat.Dense {
	return p.q
}

// Steps returns the number of policy improvement rounds the last fit
// performed
func (p *PolicyIteration) Steps() int {
	return p.steps
}

// Save persists the fitted policy to path. If the agent is not yet
// fitted, Save warns and writes nothing.
func (p *PolicyIteration) Save(path string) error {
	if !p.fitted {
		fmt.Fprintln(os.Stderr, "warning: tried to save policy but "+
			"policy is not fitted yet")
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save: could not create policy file: %w", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err := en.Encode(p.pi); err != nil {
		return fmt.Errorf("save: could not encode policy: %v", err)
	}
	return nil
}

// Load reads a previously saved policy from path and marks the agent
// fitted. A missing file surfaces as an error wrapping fs.ErrNotExist;
// a policy whose shape does not match the environment surfaces as an
// error wrapping ErrBadShape.
func (p *PolicyIteration) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load: could not open policy file: %w", err)
	}
	defer file.Close()

	var pi []int
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&pi); err != nil {
		return fmt.Errorf("load: could not decode policy: %v", err)
	}

	if len(pi) != p.env.States() {
		return fmt.Errorf("load: %w: policy has %d entries but "+
			"environment has %d states", ErrBadShape, len(pi),
			p.env.States())
	}
	for s, a := range pi {
		if a < 0 || a >= p.env.Actions() {
			return fmt.Errorf("load: %w: policy selects action %d in "+
				"state %d but environment has %d actions", ErrBadShape,
				a, s, p.env.Actions())
		}
	}

	p.pi = pi
	p.q = nil
	p.steps = 0
	p.fitted = true

	return nil
}
