package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraintLimitEqAlwaysSatisfied(t *testing.T) {
	c := NewDistanceConstraint(Handle{}, Handle{}, Vector{}, Vector{}, 1, 0)
	assert.True(t, c.satisfiesLimit(5))
	assert.True(t, c.satisfiesLimit(-5))
}

func TestConstraintLimitLtOnlyEnforcedWhenStretched(t *testing.T) {
	c := NewDistanceConstraint(Handle{}, Handle{}, Vector{}, Vector{}, 1, 0)
	c.Limit = LimitLt
	assert.True(t, c.satisfiesLimit(-0.1), "separation exceeds max: pull in")
	assert.False(t, c.satisfiesLimit(0.1), "separation under max: tether is slack")
}

func TestConstraintLimitGtOnlyEnforcedWhenCompressed(t *testing.T) {
	c := NewDistanceConstraint(Handle{}, Handle{}, Vector{}, Vector{}, 1, 0)
	c.Limit = LimitGt
	assert.True(t, c.satisfiesLimit(0.1), "separation under min: push out")
	assert.False(t, c.satisfiesLimit(-0.1), "separation over min: strut is fine")
}

func TestNewAnchorConstraintHasZeroTargetHandle(t *testing.T) {
	c := NewAnchorConstraint(Handle{slot: 1, generation: 1}, Vector{}, Vector{5, 5}, 1, 0)
	assert.False(t, c.Target.Valid())
	assert.Equal(t, Vector{5, 5}, c.TargetOffset)
	assert.True(t, c.CanSleep)
}
