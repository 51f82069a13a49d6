package physics

import (
	"github.com/jinzhu/copier"
)

// World owns the mutable body collection and advances it one discrete step
// at a time. The order of the slice has no physical meaning but fixes merge
// tie-breaking and the iteration order of the force sums, so it is
// preserved across ticks.
type World struct {
	Bodies []Body
}

// NewWorld returns a world over the given initial bodies. The slice is
// owned by the world afterwards.
func NewWorld(bodies []Body) *World {
	return &World{Bodies: bodies}
}

// Tick advances the simulation by one step: merge overlapping bodies,
// compute the net force on every survivor, then integrate. The integrator
// runs as two separate passes: every velocity is finalized before any
// position moves (semi-implicit Euler). Immovable bodies are skipped by
// both passes.
func (w *World) Tick() {
	w.Bodies = MergeCollisions(w.Bodies)
	forces := Forces(w.Bodies)

	for i := range w.Bodies {
		b := &w.Bodies[i]
		if b.Immovable {
			continue
		}
		b.Vel = b.Vel.Add(forces[i].Scale(1 / b.Mass))
	}
	for i := range w.Bodies {
		b := &w.Bodies[i]
		if b.Immovable {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel)
	}
}

// Snapshot returns a deep copy of the live bodies, detached from the
// world's slice so a renderer can hold it across the next Tick.
func (w *World) Snapshot() []Body {
	out := make([]Body, 0, len(w.Bodies))
	if err := copier.Copy(&out, &w.Bodies); err != nil {
		// Body is a plain value type; copier cannot fail on it short of a
		// programming error in this package.
		panic(err)
	}
	return out
}
