package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceToSelfIsZero(t *testing.T) {
	points := []Vec3{
		{},
		{X: 1, Y: 2, Z: 3},
		{X: -50, Y: 0.5, Z: 1e6},
	}
	for _, p := range points {
		assert.Equal(t, float32(0), Distance(p, p))
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float32
	}{
		{"Unit X", Vec3{}, Vec3{X: 1}, 1},
		{"Pythagorean", Vec3{}, Vec3{X: 3, Y: 4}, 5},
		{"Symmetric about origin", Vec3{X: -50}, Vec3{X: 50}, 100},
		{"All components", Vec3{X: 1, Y: 1, Z: 1}, Vec3{X: 2, Y: 2, Z: 2}, 1.7320508},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), 1e-5)
			assert.InDelta(t, tt.want, Distance(tt.b, tt.a), 1e-5)
		})
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"Axis aligned", Vec3{X: 10}},
		{"Negative components", Vec3{X: -3, Y: 4}},
		{"Tiny", Vec3{X: 0.001, Y: 0.002, Z: 0.003}},
		{"Large", Vec3{X: 1e5, Y: -2e5, Z: 3e5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize(tt.v)
			assert.InDelta(t, 1.0, float64(Distance(n, Vec3{})), 1e-5)
		})
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	assert.Equal(t, Vec3{}, Normalize(Vec3{}))
}

func TestNormalizeDoesNotMutate(t *testing.T) {
	v := Vec3{X: 3, Y: 4}
	_ = Normalize(v)
	assert.Equal(t, Vec3{X: 3, Y: 4}, v)
}

func TestArithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 0.5, Z: 2}
	assert.Equal(t, Vec3{X: 0, Y: 2.5, Z: 5}, a.Add(b))
	assert.Equal(t, Vec3{X: 2, Y: 1.5, Z: 1}, a.Sub(b))
	assert.Equal(t, Vec3{X: 2, Y: 4, Z: 6}, a.Scale(2))
}
