package checkpointer_test

import (
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goplan/experiment/checkpointer"
	ts "github.com/samuelfneumann/goplan/timestep"
)

// recorder records the paths its policy was saved to
type recorder struct {
	paths []string
}

func (r *recorder) Save(path string) error {
	r.paths = append(r.paths, path)
	return nil
}

func (r *recorder) Load(path string) error { return nil }

func step(number int) ts.TimeStep {
	obs := mat.NewVecDense(1, []float64{0})
	return ts.New(ts.Mid, 0, 0.9, obs, number)
}

func TestNStepInterval(t *testing.T) {
	saver := &recorder{}
	c := checkpointer.NewNStep(3, saver,
		checkpointer.FilenameEnumerator(0, "policy", ".bin"))

	for n := 0; n < 7; n++ {
		if err := c.Checkpoint(step(n)); err != nil {
			t.Fatalf("checkpoint failed at step %d: %v", n, err)
		}
	}

	// Steps 0, 3, and 6 hit the interval
	want := []string{"policy1.bin", "policy2.bin", "policy3.bin"}
	if len(saver.paths) != len(want) {
		t.Fatalf("got %d checkpoints, want %d", len(saver.paths),
			len(want))
	}
	for i, path := range saver.paths {
		if path != want[i] {
			t.Errorf("checkpoint %d saved to %v, want %v", i, path,
				want[i])
		}
	}
}

func TestFileTimer(t *testing.T) {
	saver := &recorder{}
	prefix := filepath.Join(t.TempDir(), "policy")
	c := checkpointer.NewNStep(1, saver,
		checkpointer.FileTimer(prefix, ".bin"))

	for n := 0; n < 2; n++ {
		if err := c.Checkpoint(step(n)); err != nil {
			t.Fatalf("checkpoint failed at step %d: %v", n, err)
		}
	}

	if len(saver.paths) != 2 {
		t.Fatalf("got %d checkpoints, want 2", len(saver.paths))
	}
	for _, path := range saver.paths {
		if !strings.HasPrefix(path, prefix) ||
			!strings.HasSuffix(path, ".bin") {
			t.Errorf("timestamped path %v missing prefix or extension",
				path)
		}
	}
}
