// SPDX-License-Identifier: EPL-2.0

package preview

import "github.com/ik5/wtgen/waveform"

// DefaultStep plots every fourth sample.
const DefaultStep = 4

// Point is a plot position in a unit frame. X grows to the right and Y
// grows downwards, so a full-scale positive sample sits near the top.
type Point struct {
	X, Y float32
}

// Plot returns one point for every step-th sample of slot index.
// The cycle spans x in [0.05, 0.95] and a sample s lands on y = (1-0.9s)/2.
// A step below one means DefaultStep.
func (s *Snapshot) Plot(index uint8, step int) []Point {
	if step < 1 {
		step = DefaultStep
	}

	slot := &s.Slots[index]
	points := make([]Point, 0, (waveform.Size+step-1)/step)

	for i := 0; i < waveform.Size; i += step {
		points = append(points, Point{
			X: 0.05 + float32(i)/waveform.Size*0.9,
			Y: (1 - slot.Samples[i]*0.9) / 2,
		})
	}

	return points
}
