package mdp_test

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/goplan/environment"
	"github.com/samuelfneumann/goplan/environment/marsrover"
	"github.com/samuelfneumann/goplan/environment/wrappers"
	"github.com/samuelfneumann/goplan/mdp"
)

func newTensor(states, actions int, backing []float64) *tensor.Dense {
	return tensor.New(
		tensor.WithShape(states, actions, states),
		tensor.WithBacking(backing),
	)
}

func TestNew(t *testing.T) {
	transitions := newTensor(2, 2, []float64{
		1, 0,
		0, 1,
		0, 1,
		0.5, 0.5,
	})
	rewards := mat.NewDense(2, 2, []float64{0, 1, 0, 0})

	m, err := mdp.New(transitions, rewards, 0.9)
	if err != nil {
		t.Fatalf("could not create MDP: %v", err)
	}

	if m.States() != 2 || m.Actions() != 2 {
		t.Errorf("got %d states and %d actions, want 2 and 2",
			m.States(), m.Actions())
	}
	if m.Discount() != 0.9 {
		t.Errorf("got discount %v, want 0.9", m.Discount())
	}
	if m.ExpectedReward(0, 1) != 1.0 {
		t.Errorf("got reward %v at (0, 1), want 1", m.ExpectedReward(0, 1))
	}

	row := m.Transitions(1, 1)
	if len(row) != 2 || row[0] != 0.5 || row[1] != 0.5 {
		t.Errorf("got transition row %v at (1, 1), want [0.5 0.5]", row)
	}
}

func TestNewNotStochastic(t *testing.T) {
	transitions := newTensor(2, 2, []float64{
		0.9, 0, // Sums to 0.9
		0, 1,
		0, 1,
		0, 1,
	})
	rewards := mat.NewDense(2, 2, nil)

	_, err := mdp.New(transitions, rewards, 0.9)
	if !errors.Is(err, mdp.ErrNotStochastic) {
		t.Errorf("got error %v, want ErrNotStochastic", err)
	}
}

func TestNewNegativeProbability(t *testing.T) {
	transitions := newTensor(2, 2, []float64{
		2, -1, // Sums to 1 but is not a distribution
		0, 1,
		0, 1,
		0, 1,
	})
	rewards := mat.NewDense(2, 2, nil)

	_, err := mdp.New(transitions, rewards, 0.9)
	if !errors.Is(err, mdp.ErrNotStochastic) {
		t.Errorf("got error %v, want ErrNotStochastic", err)
	}
}

func TestNewInvalidDiscount(t *testing.T) {
	transitions := newTensor(2, 2, []float64{
		1, 0,
		0, 1,
		0, 1,
		0, 1,
	})
	rewards := mat.NewDense(2, 2, nil)

	for _, discount := range []float64{1.0, 1.5, -0.1} {
		_, err := mdp.New(transitions, rewards, discount)
		if !errors.Is(err, mdp.ErrInvalidDiscount) {
			t.Errorf("discount %v: got error %v, want ErrInvalidDiscount",
				discount, err)
		}
	}
}

func TestNewShapeMismatch(t *testing.T) {
	// Transition tensor for 3 states, rewards for 2
	transitions := tensor.New(
		tensor.WithShape(3, 2, 3),
		tensor.WithBacking(make([]float64, 18)),
	)
	rewards := mat.NewDense(2, 2, nil)

	_, err := mdp.New(transitions, rewards, 0.9)
	if !errors.Is(err, mdp.ErrShape) {
		t.Errorf("got error %v, want ErrShape", err)
	}

	// 2-dimensional transition tensor
	flat := tensor.New(
		tensor.WithShape(2, 2),
		tensor.WithBacking(make([]float64, 4)),
	)
	_, err = mdp.New(flat, rewards, 0.9)
	if !errors.Is(err, mdp.ErrShape) {
		t.Errorf("got error %v, want ErrShape", err)
	}
}

// TestFromEnvironment checks that MDP extraction strips wrapper layers
// to reach the base environment's dynamics
func TestFromEnvironment(t *testing.T) {
	rover, _, err := marsrover.NewDefault(0.9, 14)
	if err != nil {
		t.Fatalf("could not create environment: %v", err)
	}
	wrapped, err := wrappers.NewTimeLimit(rover, 10)
	if err != nil {
		t.Fatalf("could not wrap environment: %v", err)
	}

	m, err := mdp.FromEnvironment(wrapped, 0.9)
	if err != nil {
		t.Fatalf("could not extract MDP: %v", err)
	}

	if m.States() != rover.States() || m.Actions() != rover.Actions() {
		t.Errorf("got %d states and %d actions, want %d and %d",
			m.States(), m.Actions(), rover.States(), rover.Actions())
	}

	var _ environment.Tabular = wrapped // Wrapper remains Tabular
}
