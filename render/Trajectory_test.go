package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/goplan/render"
)

func TestTrajectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trajectory.png")

	err := render.Trajectory([]int{2, 3, 4, 3, 4}, 4, path)
	if err != nil {
		t.Fatalf("could not plot trajectory: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot file was not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestTrajectorySingleState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trajectory.png")

	if err := render.Trajectory([]int{0}, 0, path); err != nil {
		t.Fatalf("could not plot single-state trajectory: %v", err)
	}
}

func TestTrajectoryInvalidInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trajectory.png")

	if err := render.Trajectory(nil, 4, path); err == nil {
		t.Error("expected error for empty trajectory")
	}
	if err := render.Trajectory([]int{0, 5}, 4, path); err == nil {
		t.Error("expected error for state above the plot range")
	}
	if err := render.Trajectory([]int{-1}, 4, path); err == nil {
		t.Error("expected error for negative state")
	}
}
