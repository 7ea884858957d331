package experiment

import (
	"fmt"

	"github.com/samuelfneumann/goplan/agent"
	env "github.com/samuelfneumann/goplan/environment"
	"github.com/samuelfneumann/goplan/experiment/checkpointer"
	"github.com/samuelfneumann/goplan/experiment/tracker"
	ts "github.com/samuelfneumann/goplan/timestep"
)

// Online is an Experiment that rolls a planner's policy out in an
// environment online. The planner is fitted once before the first
// episode; since fitting is idempotent, an already-fitted planner is
// used as-is.
type Online struct {
	env.Environment
	agent         agent.Planner
	maxSteps      uint
	currentSteps  uint
	trackers      []tracker.Tracker
	checkpointers []checkpointer.Checkpointer
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given planner. The steps parameter determines
// how many timesteps the experiment is run for, and the t parameter
// is a slice of tracker.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Planner, steps uint,
	t []tracker.Tracker, c []checkpointer.Checkpointer) *Online {
	return &Online{e, a, steps, 0, t, c}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment, returning
// whether the experiment's step limit has been reached
func (o *Online) RunEpisode() (bool, error) {
	step := o.Environment.Reset()
	o.track(step)
	if err := o.checkpoint(step); err != nil {
		return false, fmt.Errorf("runepisode: %v", err)
	}

	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++

		// Select action, step in environment
		action, err := o.agent.SelectAction(step)
		if err != nil {
			return false, fmt.Errorf("runepisode: could not select "+
				"action: %w", err)
		}
		step, _ = o.Environment.Step(action)

		// Cache the environment step in each Tracker
		o.track(step)
		if err := o.checkpoint(step); err != nil {
			return false, fmt.Errorf("runepisode: %v", err)
		}
	}

	// Return whether or not the max timestep limit has been reached
	return o.currentSteps >= o.maxSteps, nil
}

// Run fits the planner if needed, then runs the entire experiment for
// all timesteps
func (o *Online) Run() error {
	if err := o.agent.Fit(); err != nil {
		return fmt.Errorf("run: could not fit agent: %w", err)
	}

	ended := false
	for !ended {
		var err error
		ended, err = o.RunEpisode()
		if err != nil {
			return fmt.Errorf("run: %v", err)
		}
	}
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, t := range o.trackers {
		t.Save()
	}
}

// track tracks the current timestep by caching its data in each
// Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tr := range o.trackers {
		tr.Track(t)
	}
}

// checkpoint saves the agent's current policy with each Checkpointer
func (o *Online) checkpoint(t ts.TimeStep) error {
	for _, c := range o.checkpointers {
		if err := c.Checkpoint(t); err != nil {
			return fmt.Errorf("checkpoint: %v", err)
		}
	}
	return nil
}
