package physics

import (
	"fmt"

	"github.com/chewxy/math32"

	"newtonian/internal/vmath"
)

// RGB is a color triple carried on a body for rendering only; it has no
// effect on the physics. Components are float32 so merged colors average
// without rounding until draw time.
type RGB struct {
	R, G, B float32
}

// DefaultColor is used for bodies that do not specify a color.
var DefaultColor = RGB{255, 255, 255}

// Body is a point mass. Radius is derived from mass (floor of the cube
// root) and is used only for collision thresholds and drawing, never for
// the force computation. Callers must not construct bodies with mass <= 0;
// that precondition is not guarded here.
type Body struct {
	Pos       vmath.Vec3
	Vel       vmath.Vec3
	Mass      float32
	Radius    float32
	Immovable bool
	Color     RGB
}

// NewBody returns a body with its radius derived from mass. An immovable
// body is never moved by the integrator regardless of applied force.
func NewBody(pos vmath.Vec3, mass float32, vel vmath.Vec3, immovable bool, color RGB) Body {
	return Body{
		Pos:       pos,
		Vel:       vel,
		Mass:      mass,
		Radius:    radiusFor(mass),
		Immovable: immovable,
		Color:     color,
	}
}

func radiusFor(mass float32) float32 {
	return math32.Floor(math32.Cbrt(mass))
}

// Merge combines two overlapping bodies into one: mass is summed, velocity
// is the momentum-weighted average, color is averaged component-wise, and
// the radius is recomputed from the new mass. Position is the midpoint of
// the two, unless one operand is immovable, in which case the immovable
// operand's position wins; if both are immovable, a keeps its position.
// The merged body is immovable when either operand is.
func Merge(a, b Body) Body {
	mass := a.Mass + b.Mass
	vel := a.Vel.Scale(a.Mass).Add(b.Vel.Scale(b.Mass)).Scale(1 / mass)
	pos := a.Pos.Add(b.Pos).Scale(0.5)
	if a.Immovable {
		pos = a.Pos
	} else if b.Immovable {
		pos = b.Pos
	}
	return Body{
		Pos:       pos,
		Vel:       vel,
		Mass:      mass,
		Radius:    radiusFor(mass),
		Immovable: a.Immovable || b.Immovable,
		Color: RGB{
			R: (a.Color.R + b.Color.R) / 2,
			G: (a.Color.G + b.Color.G) / 2,
			B: (a.Color.B + b.Color.B) / 2,
		},
	}
}

// NearlyEqual reports whether a and b agree on mass, position and velocity
// within eps per component. Color and immovability are not compared; they
// do not participate in the motion.
func NearlyEqual(a, b Body, eps float32) bool {
	if math32.Abs(a.Mass-b.Mass) > eps {
		return false
	}
	da := a.Pos.Sub(b.Pos)
	dv := a.Vel.Sub(b.Vel)
	for _, c := range [6]float32{da.X, da.Y, da.Z, dv.X, dv.Y, dv.Z} {
		if math32.Abs(c) > eps {
			return false
		}
	}
	return true
}

// String formats the body's motion state for tick tracing.
func (b Body) String() string {
	return fmt.Sprintf("pos:%v mass:%v vel:%v", b.Pos, b.Mass, b.Vel)
}
