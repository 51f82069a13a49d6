package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newtonian/internal/physics"
	"newtonian/internal/vmath"
)

func TestFrameOf(t *testing.T) {
	bodies := []physics.Body{
		physics.NewBody(vmath.Vec3{X: 1, Y: 2, Z: 3}, 100, vmath.Vec3{}, false, physics.RGB{R: 10, G: 20, B: 30}),
		physics.NewBody(vmath.Vec3{X: -4}, 200, vmath.Vec3{}, true, physics.DefaultColor),
	}
	f := FrameOf(bodies)
	require.Len(t, f.Positions, 2)
	require.Len(t, f.Radii, 2)
	require.Len(t, f.Colors, 2)

	assert.Equal(t, bodies[0].Pos, f.Positions[0])
	assert.Equal(t, float32(4), f.Radii[0])
	assert.Equal(t, physics.RGB{R: 10, G: 20, B: 30}, f.Colors[0])
	assert.Equal(t, float32(5), f.Radii[1])
}

func TestProjectFoldsDepthIntoBothAxes(t *testing.T) {
	x, y := project(vmath.Vec3{X: 10, Y: -20, Z: 100}, 320, 320)
	assert.InDelta(t, 10+30+320, x, 1e-5)
	assert.InDelta(t, -20+30+320, y, 1e-5)

	// Z = 0 leaves the point at its world position about the origin.
	x, y = project(vmath.Vec3{X: 5, Y: 7}, 0, 0)
	assert.Equal(t, float32(5), x)
	assert.Equal(t, float32(7), y)
}

func TestClampChannel(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-10, 0},
		{0, 0},
		{127.9, 127},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampChannel(tt.in), "in %v", tt.in)
	}
}
