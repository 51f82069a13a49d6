package physics

import (
	"github.com/chewxy/math32"

	"newtonian/internal/vmath"
)

// G is the gravitational constant used by the force computation. It is
// scaled up from the SI value so the stock scenarios move at watchable
// speeds; the units are not physical.
const G = 6.67e-11 * 1000

const (
	// massScale multiplies both masses inside the force product. Together
	// with the unscaled mass in the velocity update this makes the
	// acceleration proportional to the other body's scaled mass only; not
	// a consistent unit system, but every scenario is tuned against it.
	massScale = 1000

	// softeningDistance is the separation at or below which the raw
	// inverse-square magnitude is replaced by its natural log, damping the
	// short-range blow-up.
	softeningDistance = 5

	// minLogMagnitude floors the magnitude entering the log. With positive
	// masses the magnitude is always positive, so the floor is unreachable
	// in legal use; it keeps the operation total if that precondition is
	// ever violated.
	minLogMagnitude = 1e-30
)

// Forces returns the net attraction force on each body from all others,
// indexed like bodies. It is a pure function of the current state: the
// bodies are not modified, and the result does not depend on the merge or
// integration steps of the same tick.
func Forces(bodies []Body) []vmath.Vec3 {
	forces := make([]vmath.Vec3, len(bodies))
	for i := range bodies {
		var net vmath.Vec3
		for j := range bodies {
			if j == i {
				continue
			}
			net = net.Add(pairForce(&bodies[i], &bodies[j]))
		}
		forces[i] = net
	}
	return forces
}

// pairForce returns the force exerted on body `on` by body `from`.
// Exactly coincident bodies exert no force on each other this tick, which
// avoids the division by zero.
func pairForce(on, from *Body) vmath.Vec3 {
	d := vmath.Distance(on.Pos, from.Pos)
	if d == 0 {
		return vmath.Vec3{}
	}
	mag := G * (on.Mass * massScale) * (from.Mass * massScale) / (d * d)
	if d <= softeningDistance {
		if mag < minLogMagnitude {
			mag = minLogMagnitude
		}
		mag = math32.Log(mag)
	}
	dir := vmath.Normalize(from.Pos.Sub(on.Pos))
	return dir.Scale(mag)
}
