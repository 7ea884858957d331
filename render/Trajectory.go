// Package render draws rollout data to image files
package render

import (
	"fmt"

	"github.com/fogleman/gg"
)

const (
	width  = 640
	height = 480
	margin = 48.0
)

// Trajectory plots a sequence of visited states against the step
// number and saves the figure as a PNG at path. The maxState
// parameter sets the top of the state axis and must be at least as
// large as every visited state.
func Trajectory(states []int, maxState int, path string) error {
	if len(states) == 0 {
		return fmt.Errorf("trajectory: no states to plot")
	}
	for _, s := range states {
		if s < 0 || s > maxState {
			return fmt.Errorf("trajectory: state %d outside plot range "+
				"[0, %d]", s, maxState)
		}
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Axes
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2.0)
	dc.DrawLine(margin, height-margin, width-margin, height-margin)
	dc.DrawLine(margin, height-margin, margin, margin)
	dc.Stroke()

	toX := func(i int) float64 {
		if len(states) == 1 {
			return margin
		}
		return margin + float64(i)*(width-2*margin)/float64(len(states)-1)
	}
	toY := func(s int) float64 {
		if maxState == 0 {
			return height - margin
		}
		return height - margin -
			float64(s)*(height-2*margin)/float64(maxState)
	}

	// Trajectory line
	dc.ClearPath()
	dc.SetRGB(0.0, 0.5, 0.0)
	dc.SetLineWidth(2.0)
	dc.MoveTo(toX(0), toY(states[0]))
	for i := 1; i < len(states); i++ {
		dc.LineTo(toX(i), toY(states[i]))
	}
	dc.Stroke()

	// Visited states
	for i, s := range states {
		dc.DrawCircle(toX(i), toY(s), 4.0)
	}
	dc.Fill()

	return dc.SavePNG(path)
}
