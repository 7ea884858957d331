package checkpointer

import (
	"fmt"
	"time"
)

// FileTimer returns a naming function that stamps each filename with
// the wall-clock time of the call, so successive checkpoints land in
// distinct files without a shared counter.
func FileTimer(filename, extension string) func() string {
	return func() string {
		stamp := time.Now().Format("20060102-150405.000000000")
		return fmt.Sprintf("%v-%v%v", filename, stamp, extension)
	}
}
