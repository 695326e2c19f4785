package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfiniteMassHasZeroInverses(t *testing.T) {
	m := InfiniteMass()
	assert.Equal(t, 0.0, m.InvMass())
	assert.Equal(t, 0.0, m.InvInertia())
	assert.False(t, m.SeesForces())
}

func TestFiniteMassInverses(t *testing.T) {
	m := FiniteMass(2, 8)
	assert.InDelta(t, 0.5, m.InvMass(), 1e-9)
	assert.InDelta(t, 0.125, m.InvInertia(), 1e-9)
	assert.True(t, m.SeesForces())
}

func TestFiniteMassZeroMomentIsTreatedAsInfiniteInertia(t *testing.T) {
	m := FiniteMass(2, 0)
	assert.Equal(t, 0.0, m.InvInertia())
}

func TestNewStaticBodyIsInfiniteMass(t *testing.T) {
	b := NewStaticBody(PoseIdentity())
	assert.True(t, b.Mass.Infinite)
	assert.False(t, b.Mass.SeesForces())
}

func TestNewDynamicBodyStartsAtRest(t *testing.T) {
	b := NewDynamicBody(PoseAt(Vector{1, 2}, 0), 3, 4)
	assert.Equal(t, Vector{0, 0}, b.LinearVelocity)
	assert.Equal(t, 0.0, b.AngularVelocity)
	assert.True(t, b.Mass.SeesForces())
}

func TestSpeedSquared(t *testing.T) {
	b := Body{LinearVelocity: Vector{3, 4}}
	assert.InDelta(t, 25, b.speedSquared(), 1e-9)
}
