package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeContainsPointRect(t *testing.T) {
	s := NewRectShape(1, 1, 0)
	assert.True(t, shapeContainsPoint(s, PoseIdentity(), Vector{0.5, 0.5}))
	assert.False(t, shapeContainsPoint(s, PoseIdentity(), Vector{5, 5}))
}

func TestShapeContainsPointCircle(t *testing.T) {
	s := NewPointShape(1)
	assert.True(t, shapeContainsPoint(s, PoseAt(Vector{2, 2}, 0), Vector{2.5, 2}))
	assert.False(t, shapeContainsPoint(s, PoseAt(Vector{2, 2}, 0), Vector{10, 10}))
}

func TestQueryShapeFindsOverlap(t *testing.T) {
	w := newTestWorld(t)
	a := w.InsertBody(NewStaticBody(PoseAt(Vector{0, 0}, 0)))
	w.AttachCollider(a, NewSolidCollider(NewRectShape(1, 1, 0), DefaultMaterial(), 0))
	w.Tick(1.0/60.0, 1, gravityField())

	probe := NewRectShape(0.5, 0.5, 0)
	hits := w.QueryShape(PoseAt(Vector{0.5, 0.5}, 0), probe, 0)
	require.Len(t, hits, 1)
}

func TestQueryShapeRespectsLayerMask(t *testing.T) {
	w := newTestWorld(t)
	a := w.InsertBody(NewStaticBody(PoseAt(Vector{0, 0}, 0)))
	w.AttachCollider(a, NewSolidCollider(NewRectShape(1, 1, 0), DefaultMaterial(), 3))
	w.Tick(1.0/60.0, 1, gravityField())

	probe := NewRectShape(0.5, 0.5, 0)
	hits := w.QueryShape(PoseAt(Vector{0, 0}, 0), probe, 1<<4)
	assert.Empty(t, hits, "layer 3 should not match a mask restricted to layer 4")
}

func TestSpherecastHitsSameAsRaycastWithZeroRadius(t *testing.T) {
	w := newTestWorld(t)
	target := w.InsertBody(NewStaticBody(PoseAt(Vector{5, 0}, 0)))
	w.AttachCollider(target, NewSolidCollider(NewPointShape(1), DefaultMaterial(), 0))
	w.Tick(1.0/60.0, 1, gravityField())

	hit, ok := w.Raycast(Vector{-5, 0}, Vector{1, 0}, 100, 0)
	require.True(t, ok)

	shit, ok := w.Spherecast(Vector{-5, 0}, Vector{1, 0}, 100, 0, 0)
	require.True(t, ok)
	assert.Equal(t, hit.Collider, shit.Collider)
	assert.InDelta(t, hit.Distance, shit.Distance, 1e-9)
}

func TestSpherecastWithRadiusHitsEarlierThanRaycast(t *testing.T) {
	w := newTestWorld(t)
	target := w.InsertBody(NewStaticBody(PoseAt(Vector{5, 1}, 0)))
	w.AttachCollider(target, NewSolidCollider(NewPointShape(1), DefaultMaterial(), 0))
	w.Tick(1.0/60.0, 1, gravityField())

	hit, ok := w.Raycast(Vector{-5, 0}, Vector{1, 0}, 100, 0)
	require.True(t, ok)

	shit, ok := w.Spherecast(Vector{-5, 0}, Vector{1, 0}, 100, 1, 0)
	require.True(t, ok)
	assert.Less(t, shit.Distance, hit.Distance, "a fatter sphere should clip the target sooner")
}
