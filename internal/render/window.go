package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"newtonian/internal/debug"
	"newtonian/internal/physics"
)

// Window draws each frame into a raylib window, one filled circle per body,
// origin at the screen center. ESC or the window close button ends the run.
type Window struct {
	width   int32
	height  int32
	fps     int32
	overlay *debug.Overlay
}

// NewWindow returns a window backend with the given size and frame-rate
// cap. overlay may be nil to disable the debug overlay.
func NewWindow(width, height, fps int32, overlay *debug.Overlay) *Window {
	return &Window{width: width, height: height, fps: fps, overlay: overlay}
}

// Run opens the window and drives the frame loop until the user quits.
func (w *Window) Run(step func() Frame) error {
	rl.InitWindow(w.width, w.height, "newtonian gravity")
	defer rl.CloseWindow()
	rl.SetTargetFPS(w.fps)

	originX := float32(w.width) / 2
	originY := float32(w.height) / 2

	for !rl.WindowShouldClose() {
		f := step()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		for i := range f.Positions {
			sx, sy := project(f.Positions[i], originX, originY)
			rl.DrawCircle(int32(sx), int32(sy), f.Radii[i], toRaylib(f.Colors[i]))
		}
		if w.overlay != nil {
			w.overlay.Draw(len(f.Positions))
		}
		rl.EndDrawing()
	}
	return nil
}

func toRaylib(c physics.RGB) rl.Color {
	return rl.NewColor(clampChannel(c.R), clampChannel(c.G), clampChannel(c.B), 255)
}
