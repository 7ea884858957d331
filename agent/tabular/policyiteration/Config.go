package policyiteration

import (
	"fmt"
	"reflect"

	"github.com/samuelfneumann/goplan/agent"
	"github.com/samuelfneumann/goplan/dp"
	"github.com/samuelfneumann/goplan/environment"
)

func init() {
	// Register ConfigList type so that it can be typed using
	// agent.TypedConfigList to help with serialization/deserialization.
	agent.Register(agent.PolicyIterationTabular, ConfigList{})
}

// ConfigList implements functionality for storing a number of Configs
// in a simple manner. Instead of storing a slice of Configs, the
// ConfigList stores each field's values and constructs the list by
// every combination of field values.
type ConfigList struct {
	Gamma   []float64
	Epsilon []float64
}

// NewConfigList returns a new ConfigList as an agent.TypedConfigList
// so that it can easily be JSON serialized/deserialized without
// knowing the underlying concrete type.
func NewConfigList(gamma, epsilon []float64) agent.TypedConfigList {
	config := ConfigList{Gamma: gamma, Epsilon: epsilon}
	return agent.NewTypedConfigList(config)
}

// Config returns an empty Config that is of the type stored by
// ConfigList
func (c ConfigList) Config() agent.Config {
	return Config{}
}

// Type returns the type of agent that can be constructed by Configs
// stored by the list
func (c ConfigList) Type() agent.Type {
	return c.Config().Type()
}

// NumFields returns the number of settable fields for the ConfigList
func (c ConfigList) NumFields() int {
	rValue := reflect.ValueOf(c)
	return rValue.NumField()
}

// Len returns the number of Configs stored by the list
func (c ConfigList) Len() int {
	return len(c.Gamma) * len(c.Epsilon)
}

// Config represents a configuration for the PolicyIteration agent
type Config struct {
	Gamma   float64 // discount factor
	Epsilon float64 // convergence threshold for policy evaluation
}

// CreateAgent creates the agent from the Config. The seed is unused
// since policy iteration is fully deterministic.
func (c Config) CreateAgent(env environment.Tabular,
	seed uint64) (agent.Planner, error) {
	return New(env, c)
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Planner) bool {
	_, ok := a.(*PolicyIteration)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Gamma < 0.0 || c.Gamma >= 1.0 {
		return fmt.Errorf("gamma must be in [0, 1), got %v", c.Gamma)
	}
	if c.Epsilon < 0.0 {
		return fmt.Errorf("epsilon cannot be lower than 0")
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.PolicyIterationTabular
}

// epsilon returns the configured convergence threshold, falling back
// on the package default when left unset
func (c Config) epsilon() float64 {
	if c.Epsilon == 0.0 {
		return dp.DefaultEpsilon
	}
	return c.Epsilon
}
