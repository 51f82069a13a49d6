package physics

import (
	"newtonian/internal/vmath"
)

// MergeCollisions collapses every group of overlapping bodies into a single
// merged body and returns the resulting slice. Two bodies collide when the
// distance between their positions is less than the sum of their radii.
//
// All colliding pairs are collected from the input as it stands on entry,
// then unioned into transitive groups (if A overlaps B and B overlaps C,
// all three merge even if A and C never touch). Each group is folded
// pairwise in ascending index order and the output is built fresh, so the
// scan never indexes into a slice it is mutating. Survivors keep their
// relative order; a merged group sits in the slot of its lowest member.
func MergeCollisions(bodies []Body) []Body {
	n := len(bodies)
	if n < 2 {
		return bodies
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			combined := bodies[i].Radius + bodies[j].Radius
			if vmath.Distance(bodies[i].Pos, bodies[j].Pos) < combined {
				parent[find(j)] = find(i)
			}
		}
	}

	merged := make(map[int]Body, n)
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		root := find(i)
		if b, ok := merged[root]; ok {
			merged[root] = Merge(b, bodies[i])
		} else {
			merged[root] = bodies[i]
			order = append(order, root)
		}
	}

	out := make([]Body, 0, len(order))
	for _, root := range order {
		out = append(out, merged[root])
	}
	return out
}
