package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"newtonian/internal/physics"
)

const (
	// termTickInterval paces the terminal loop at roughly the same speed
	// as the window backend's frame cap.
	termTickInterval = 25 * time.Millisecond

	// termScale shrinks world units to cell columns; rows are halved again
	// because terminal cells are about twice as tall as they are wide.
	termScale = 8
)

// Terminal draws each frame into the terminal with tcell, rasterizing every
// body as a block of colored cells. q, ESC or Ctrl-C ends the run.
type Terminal struct{}

// NewTerminal returns a terminal backend.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Run takes over the terminal and drives the frame loop until the user
// quits.
func (t *Terminal) Run(step func() Frame) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	ticker := time.NewTicker(termTickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			t.draw(screen, step())
		}
	}
}

func (t *Terminal) draw(screen tcell.Screen, f Frame) {
	screen.Clear()
	width, height := screen.Size()
	for i := range f.Positions {
		sx, sy := project(f.Positions[i], 0, 0)
		cx := int(sx/termScale) + width/2
		cy := int(sy/(termScale*2)) + height/2
		r := int(f.Radii[i]/termScale) + 1
		style := tcell.StyleDefault.Background(toTcell(f.Colors[i]))
		fillCells(screen, cx, cy, r, width, height, style)
	}
	screen.Show()
}

// fillCells paints a filled circle of cell radius r around (cx, cy),
// clipped to the screen. The vertical extent is halved to compensate for
// the cell aspect ratio.
func fillCells(screen tcell.Screen, cx, cy, r, width, height int, style tcell.Style) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+4*dy*dy > r*r {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func toTcell(c physics.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(clampChannel(c.R)), int32(clampChannel(c.G)), int32(clampChannel(c.B)))
}
