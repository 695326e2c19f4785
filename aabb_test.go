package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAABBOverlaps(t *testing.T) {
	a := AABB{Min: Vector{0, 0}, Max: Vector{2, 2}}
	b := AABB{Min: Vector{1, 1}, Max: Vector{3, 3}}
	c := AABB{Min: Vector{5, 5}, Max: Vector{6, 6}}
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
}

func TestAABBTouchingCountsAsOverlap(t *testing.T) {
	a := AABB{Min: Vector{0, 0}, Max: Vector{1, 1}}
	b := AABB{Min: Vector{1, 0}, Max: Vector{2, 1}}
	assert.True(t, a.Overlaps(b))
}

func TestAABBUnionContainsBoth(t *testing.T) {
	a := AABB{Min: Vector{0, 0}, Max: Vector{1, 1}}
	b := AABB{Min: Vector{-1, 2}, Max: Vector{0.5, 3}}
	u := a.Union(b)
	assert.Equal(t, Vector{-1, 0}, u.Min)
	assert.Equal(t, Vector{1, 3}, u.Max)
}

func TestAABBContainsPoint(t *testing.T) {
	a := AABB{Min: Vector{0, 0}, Max: Vector{2, 2}}
	assert.True(t, a.ContainsPoint(Vector{1, 1}))
	assert.True(t, a.ContainsPoint(Vector{0, 0}), "boundary counts as contained")
	assert.False(t, a.ContainsPoint(Vector{3, 1}))
}

func TestAABBExpand(t *testing.T) {
	a := AABB{Min: Vector{0, 0}, Max: Vector{1, 1}}
	e := a.Expand(0.5)
	assert.Equal(t, Vector{-0.5, -0.5}, e.Min)
	assert.Equal(t, Vector{1.5, 1.5}, e.Max)
}

func TestAABBExpandDirOnlyGrowsTowardMotion(t *testing.T) {
	a := AABB{Min: Vector{0, 0}, Max: Vector{1, 1}}
	e := a.ExpandDir(Vector{2, -3})
	assert.Equal(t, 0.0, e.Min[0], "positive x motion should not grow the min side")
	assert.Equal(t, 3.0, e.Max[0])
	assert.Equal(t, -3.0, e.Min[1], "negative y motion should not grow the max side")
	assert.Equal(t, 1.0, e.Max[1])
}

func TestAABBCenterAndHalfExtents(t *testing.T) {
	a := AABB{Min: Vector{-2, -4}, Max: Vector{2, 0}}
	assert.Equal(t, Vector{0, -2}, a.Center())
	assert.Equal(t, Vector{2, 2}, a.HalfExtents())
}

func TestRayAABBHitsThroughCenter(t *testing.T) {
	box := AABB{Min: Vector{-1, -1}, Max: Vector{1, 1}}
	tEntry, hit := rayAABB(Vector{-5, 0}, Vector{1, 0}, 100, box)
	assert.True(t, hit)
	assert.InDelta(t, 4, tEntry, 1e-9)
}

func TestRayAABBMissesParallel(t *testing.T) {
	box := AABB{Min: Vector{-1, -1}, Max: Vector{1, 1}}
	_, hit := rayAABB(Vector{-5, 5}, Vector{1, 0}, 100, box)
	assert.False(t, hit)
}

func TestRayAABBRespectsMaxDistance(t *testing.T) {
	box := AABB{Min: Vector{9, -1}, Max: Vector{11, 1}}
	_, hit := rayAABB(Vector{0, 0}, Vector{1, 0}, 5, box)
	assert.False(t, hit, "box is beyond maxT")
}

func TestRayAABBOriginInsideBox(t *testing.T) {
	box := AABB{Min: Vector{-1, -1}, Max: Vector{1, 1}}
	tEntry, hit := rayAABB(Vector{0, 0}, Vector{1, 0}, 100, box)
	assert.True(t, hit)
	assert.Equal(t, 0.0, tEntry)
}
