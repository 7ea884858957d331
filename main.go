package main

import (
	"fmt"
	"log"

	"github.com/samuelfneumann/goplan/agent/tabular/policyiteration"
	"github.com/samuelfneumann/goplan/environment"
	"github.com/samuelfneumann/goplan/environment/marsrover"
	"github.com/samuelfneumann/goplan/environment/wrappers"
	"github.com/samuelfneumann/goplan/experiment"
	"github.com/samuelfneumann/goplan/experiment/checkpointer"
	"github.com/samuelfneumann/goplan/experiment/tracker"
	"github.com/samuelfneumann/goplan/render"
	"github.com/samuelfneumann/goplan/utils/matutils"
)

func main() {
	var seed uint64 = 192382

	// Create the environment
	starter := environment.NewCategoricalStarter(5, seed)
	rewards := []float64{1, 0, 0, 0, 10}
	rover, _, err := marsrover.New(5, 0.1, rewards, 0.9, starter, seed)
	if err != nil {
		log.Fatalf("could not create environment: %v", err)
	}
	env, err := wrappers.NewTimeLimit(rover, 10)
	if err != nil {
		log.Fatalf("could not wrap environment: %v", err)
	}

	// Create the planning agent
	config := policyiteration.Config{Gamma: 0.9, Epsilon: 1e-8}
	planner, err := policyiteration.New(env, config)
	if err != nil {
		log.Fatalf("could not create agent: %v", err)
	}

	// Plan the optimal policy from the known dynamics
	if err := planner.Fit(); err != nil {
		log.Fatalf("could not fit agent: %v", err)
	}
	fmt.Println("Policy:", planner.Policy())
	fmt.Println("Improvement rounds:", planner.Steps())
	fmt.Println("Action values:")
	fmt.Println(matutils.Format(planner.ActionValues()))

	if err := planner.Save("./policy.bin"); err != nil {
		log.Fatalf("could not save policy: %v", err)
	}

	// Roll the fitted policy out
	track := []tracker.Tracker{tracker.NewReturn("./data.bin")}
	check := []checkpointer.Checkpointer{checkpointer.NewNStep(
		50,
		planner,
		checkpointer.FilenameEnumerator(0, "./checkpoint", ".bin"),
	)}
	e := experiment.NewOnline(env, planner, 100, track, check)
	if err := e.Run(); err != nil {
		log.Fatalf("could not run experiment: %v", err)
	}
	e.Save()

	data := tracker.LoadData("./data.bin")
	fmt.Println("Episodic returns:", data)

	// Plot a single episode under the fitted policy
	states := make([]int, 0, 11)
	step := env.Reset()
	states = append(states, step.State())
	for !step.Last() {
		action, err := planner.SelectAction(step)
		if err != nil {
			log.Fatalf("could not select action: %v", err)
		}
		step, _ = env.Step(action)
		states = append(states, step.State())
	}
	if err := render.Trajectory(states, env.States()-1,
		"./trajectory.png"); err != nil {
		log.Fatalf("could not render trajectory: %v", err)
	}
}
