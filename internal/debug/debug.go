package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the overlay text every N frames to
	// reduce allocations.
	updateInterval = 30
)

// Overlay holds the runtime overlays of the window renderer (FPS, live body
// count). All overlays are off by default.
type Overlay struct {
	ShowFPS    bool
	ShowBodies bool

	frameCount    uint32
	lastFpsText   string
	lastBodyText  string
	lastBodyCount int
}

// New returns an Overlay with everything hidden.
func New() *Overlay {
	return &Overlay{}
}

// Draw renders any enabled overlays at the top-right. Call after the bodies
// in the draw loop. bodies is the live body count for this frame; it
// refreshes immediately when it changes (merges are worth seeing the frame
// they happen), FPS only every updateInterval frames.
func (o *Overlay) Draw(bodies int) {
	o.frameCount++
	update := (o.frameCount % updateInterval) == 0

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if o.ShowFPS {
		if update || o.lastFpsText == "" {
			o.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		w := rl.MeasureText(o.lastFpsText, fontSize)
		rl.DrawText(o.lastFpsText, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}

	if o.ShowBodies {
		if o.lastBodyText == "" || bodies != o.lastBodyCount {
			o.lastBodyCount = bodies
			o.lastBodyText = fmt.Sprintf("bodies: %d", bodies)
		}
		w := rl.MeasureText(o.lastBodyText, fontSize)
		rl.DrawText(o.lastBodyText, screenW-w-padding, y, fontSize, rl.Green)
	}
}
