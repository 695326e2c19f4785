package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotationFromAngleRoundTrip(t *testing.T) {
	tests := []float64{0, math.Pi / 6, math.Pi / 2, math.Pi, -math.Pi / 3, 2 * math.Pi / 3}
	for _, a := range tests {
		r := RotationFromAngle(a)
		got := Angle(r)
		diff := math.Atan2(math.Sin(got-a), math.Cos(got-a))
		assert.InDeltaf(t, 0, diff, 1e-9, "angle %v round-tripped to %v", a, got)
	}
}

func TestRotationInverseIsTranspose(t *testing.T) {
	r := RotationFromAngle(0.73)
	inv := RotationInverse(r)
	identity := RotationMul(r, inv)
	assert.InDelta(t, 1, identity[0], 1e-9)
	assert.InDelta(t, 0, identity[1], 1e-9)
	assert.InDelta(t, 0, identity[2], 1e-9)
	assert.InDelta(t, 1, identity[3], 1e-9)
}

func TestRotateMatchesSinCos(t *testing.T) {
	r := RotationFromAngle(math.Pi / 2)
	got := Rotate(r, Vector{1, 0})
	assert.InDelta(t, 0, got[0], 1e-9)
	assert.InDelta(t, 1, got[1], 1e-9)
}

func TestLeftNormalIsPerpendicular(t *testing.T) {
	v := Vector{3, 4}
	n := leftNormal(v)
	assert.InDelta(t, 0, v.Dot(n), 1e-9)
	assert.InDelta(t, v.Len(), n.Len(), 1e-9)
}

func TestCross2Antisymmetric(t *testing.T) {
	a, b := Vector{1, 2}, Vector{3, -1}
	assert.InDelta(t, -cross2(b, a), cross2(a, b), 1e-12)
}

func TestCrossScalarVecMatchesRotate90(t *testing.T) {
	v := Vector{2, 0}
	got := crossScalarVec(1, v)
	assert.InDelta(t, 0, got[0], 1e-9)
	assert.InDelta(t, 2, got[1], 1e-9)
}

func TestSafeNormalizeDefaultsOnZero(t *testing.T) {
	n := safeNormalize(Vector{0, 0})
	assert.Equal(t, Vector{0, 1}, n)
}

func TestSafeNormalizeUnitLength(t *testing.T) {
	n := safeNormalize(Vector{3, 4})
	assert.InDelta(t, 1, n.Len(), 1e-9)
	assert.InDelta(t, 0.6, n[0], 1e-9)
	assert.InDelta(t, 0.8, n[1], 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-5, 0, 10))
	assert.Equal(t, 10.0, clamp(15, 0, 10))
	assert.Equal(t, 5.0, clamp(5, 0, 10))
}

func TestApproxZero(t *testing.T) {
	assert.True(t, approxZero(1e-15))
	assert.False(t, approxZero(1e-6))
}
