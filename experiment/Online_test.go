package experiment_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/goplan/agent"
	"github.com/samuelfneumann/goplan/agent/tabular/policyiteration"
	"github.com/samuelfneumann/goplan/environment/marsrover"
	"github.com/samuelfneumann/goplan/environment/wrappers"
	"github.com/samuelfneumann/goplan/experiment"
	"github.com/samuelfneumann/goplan/experiment/checkpointer"
	"github.com/samuelfneumann/goplan/experiment/tracker"
)

func TestOnlineRun(t *testing.T) {
	rover, _, err := marsrover.NewDefault(0.9, 42)
	if err != nil {
		t.Fatalf("could not create environment: %v", err)
	}
	env, err := wrappers.NewTimeLimit(rover, 10)
	if err != nil {
		t.Fatalf("could not wrap environment: %v", err)
	}

	planner, err := policyiteration.New(env,
		policyiteration.Config{Gamma: 0.9, Epsilon: 1e-8})
	if err != nil {
		t.Fatalf("could not create agent: %v", err)
	}

	dir := t.TempDir()
	dataFile := filepath.Join(dir, "returns.bin")
	trackers := []tracker.Tracker{tracker.NewReturn(dataFile)}
	checkpointers := []checkpointer.Checkpointer{
		checkpointer.NewNStep(5, planner,
			checkpointer.FilenameEnumerator(0, filepath.Join(dir,
				"policy"), ".bin")),
	}

	exp := experiment.NewOnline(env, planner, 30, trackers, checkpointers)
	if err := exp.Run(); err != nil {
		t.Fatalf("experiment failed: %v", err)
	}
	exp.Save()

	// The default rover starts two cells left of the goal, so the
	// fitted policy collects exactly the goal reward each episode
	returns := tracker.LoadData(dataFile)
	if len(returns) == 0 {
		t.Fatal("experiment saved no episodic returns")
	}
	for i, g := range returns {
		if g != 10 {
			t.Errorf("episode %d: got return %v, want 10", i, g)
		}
	}

	// Every episode reset hits the checkpoint interval
	if _, err := os.Stat(filepath.Join(dir, "policy1.bin")); err != nil {
		t.Errorf("expected a checkpointed policy file: %v", err)
	}
}

// TestOnlineRunEpisodeUnfitted checks that rollout errors from the
// planner surface instead of being swallowed
func TestOnlineRunEpisodeUnfitted(t *testing.T) {
	rover, _, err := marsrover.NewDefault(0.9, 42)
	if err != nil {
		t.Fatalf("could not create environment: %v", err)
	}
	planner, err := policyiteration.New(rover,
		policyiteration.Config{Gamma: 0.9})
	if err != nil {
		t.Fatalf("could not create agent: %v", err)
	}

	exp := experiment.NewOnline(rover, planner, 30, nil, nil)
	_, err = exp.RunEpisode()
	if !errors.Is(err, agent.ErrNotFitted) {
		t.Errorf("got error %v, want ErrNotFitted", err)
	}
}
