// Package checkpointer implements periodic saving of agent policies
// during an experiment
package checkpointer

import (
	"github.com/samuelfneumann/goplan/agent"
	ts "github.com/samuelfneumann/goplan/timestep"
)

// Checkpointer checkpoints/saves agent policies based on
// timestep.TimeSteps
type Checkpointer interface {
	Checkpoint(ts.TimeStep) error
}

// nStep implements checkpointing every N steps
type nStep struct {
	interval int
	agent    agent.Saver // Agent whose policy is saved

	// filename returns the string filename of the file to save the
	// policy in.
	//
	// If each checkpoint should be saved in a separate file with
	// each file having an incremented number as a suffix (e.g.
	// file1.bin, file2.bin, ..., fileK.bin), then simply use the
	// static function FilenameEnumerator, which will return a function
	// that will enumerate filenames.
	//
	// Otherwise, if each checkpoint should be saved in a separate
	// file, but the filename does not matter, use the static function
	// FileTimer to generate the required naming function. For example:
	//
	// n := NewNStep(10, agent, FileTimer("filename", ".bin"))
	filename func() string
}

// NewNStep returns a checkpointer that checkpoints every n steps.
func NewNStep(n int, a agent.Saver, filename func() string) Checkpointer {
	return &nStep{
		interval: n,
		agent:    a,
		filename: filename,
	}
}

// Checkpoint checkpoints the Checkpointer's tracked agent by calling
// its Save() method
func (n *nStep) Checkpoint(t ts.TimeStep) error {
	if t.Number%n.interval == 0 {
		return n.agent.Save(n.filename())
	}
	return nil
}
