// Package render draws the simulation. The physics core knows nothing about
// drawing; each frame a backend receives the current positions, radii and
// colors and projects them to the screen.
package render

import (
	"newtonian/internal/physics"
	"newtonian/internal/vmath"
)

// depthScale folds the Z coordinate into both screen axes, giving the flat
// projection its slight diagonal parallax.
const depthScale = 0.3

// Frame is the per-tick snapshot a backend draws: one entry per live body,
// in world order.
type Frame struct {
	Positions []vmath.Vec3
	Radii     []float32
	Colors    []physics.RGB
}

// FrameOf builds a Frame from a body snapshot.
func FrameOf(bodies []physics.Body) Frame {
	f := Frame{
		Positions: make([]vmath.Vec3, len(bodies)),
		Radii:     make([]float32, len(bodies)),
		Colors:    make([]physics.RGB, len(bodies)),
	}
	for i := range bodies {
		f.Positions[i] = bodies[i].Pos
		f.Radii[i] = bodies[i].Radius
		f.Colors[i] = bodies[i].Color
	}
	return f
}

// Renderer owns the frame loop. Run calls step once per frame, draws the
// returned Frame, and returns when the user closes the backend (window
// close, ESC, q). step is expected to advance the simulation as a side
// effect.
type Renderer interface {
	Run(step func() Frame) error
}

// project maps a world position to screen space around the given origin.
func project(p vmath.Vec3, originX, originY float32) (x, y float32) {
	return p.X + p.Z*depthScale + originX, p.Y + p.Z*depthScale + originY
}

// clampChannel converts a float color channel to the 0-255 byte range.
// Merged colors stay in range by construction, but scenario files may not.
func clampChannel(c float32) uint8 {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return uint8(c)
}
