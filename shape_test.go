package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreaPointShape(t *testing.T) {
	s := NewPointShape(2)
	assert.InDelta(t, math.Pi*4, Area(s), 1e-9)
}

func TestAreaRectShape(t *testing.T) {
	s := NewRectShape(1, 2, 0)
	assert.InDelta(t, 8, Area(s), 1e-9)
}

func TestAreaRoundedRectIncludesPerimeterStripAndCaps(t *testing.T) {
	sharp := NewRectShape(1, 1, 0)
	rounded := NewRectShape(1, 1, 0.25)
	assert.Greater(t, Area(rounded), Area(sharp))
}

func TestRegularShapeBottomEdgeIsHorizontal(t *testing.T) {
	s := NewRegularShape(6, 1, 0)
	// The two lowest vertices (by y) should share (almost) the same y, i.e.
	// the bottom edge is parallel to the x-axis.
	verts := s.Polygon.Vertices
	lowestY := math.Inf(1)
	for _, v := range verts {
		if v[1] < lowestY {
			lowestY = v[1]
		}
	}
	count := 0
	for _, v := range verts {
		if math.Abs(v[1]-lowestY) < 1e-9 {
			count++
		}
	}
	assert.Equal(t, 2, count, "expected exactly two vertices forming the bottom edge")
}

func TestRegularShapeEvenSidedIsSymmetric(t *testing.T) {
	assert.True(t, NewRegularShape(4, 1, 0).Polygon.Symmetric)
	assert.False(t, NewRegularShape(5, 1, 0).Polygon.Symmetric)
}

func TestAABBOfRectIsExactAtIdentity(t *testing.T) {
	s := NewRectShape(1, 2, 0)
	box := s.AABB(PoseIdentity())
	assert.Equal(t, Vector{-1, -2}, box.Min)
	assert.Equal(t, Vector{1, 2}, box.Max)
}

func TestAABBOfRoundedRectPadsByRadius(t *testing.T) {
	s := NewRectShape(1, 2, 0.5)
	box := s.AABB(PoseIdentity())
	assert.Equal(t, Vector{-1.5, -2.5}, box.Min)
	assert.Equal(t, Vector{1.5, 2.5}, box.Max)
}

func TestAABBOfPointShapeIsCenteredSquare(t *testing.T) {
	s := NewPointShape(1)
	box := s.AABB(PoseAt(Vector{3, 4}, 0))
	assert.Equal(t, Vector{2, 3}, box.Min)
	assert.Equal(t, Vector{4, 5}, box.Max)
}

func TestProjectedExtentOfSymmetricRect(t *testing.T) {
	s := NewRectShape(2, 1, 0)
	assert.InDelta(t, 2, ProjectedExtent(s, Vector{1, 0}), 1e-9)
	assert.InDelta(t, 2, ProjectedExtent(s, Vector{-1, 0}), 1e-9, "symmetric polygon mirrors the extent")
}

func TestProjectedExtentIncludesCircleRadius(t *testing.T) {
	s := NewRectShape(2, 1, 0.5)
	assert.InDelta(t, 2.5, ProjectedExtent(s, Vector{1, 0}), 1e-9)
}

func TestSupportingEdgePicksMaximalNormal(t *testing.T) {
	s := NewRectShape(1, 1, 0)
	edge := SupportingEdge(s, Vector{1, 0})
	assert.InDelta(t, 1, edge.Normal[0], 1e-9)
	assert.InDelta(t, 0, edge.Normal[1], 1e-9)
}

func TestClosestBoundaryPointOutsideRect(t *testing.T) {
	s := NewRectShape(1, 1, 0)
	res := ClosestBoundaryPoint(s.Polygon, Vector{5, 0})
	assert.False(t, res.IsInterior)
	assert.InDelta(t, 1, res.Point[0], 1e-9)
	assert.InDelta(t, 0, res.Point[1], 1e-9)
}

func TestClosestBoundaryPointInsideRect(t *testing.T) {
	s := NewRectShape(2, 1, 0)
	res := ClosestBoundaryPoint(s.Polygon, Vector{0, 0.1})
	assert.True(t, res.IsInterior)
}

func TestClosestBoundaryPointOnPointShapeOrigin(t *testing.T) {
	s := NewPointShape(1)
	res := ClosestBoundaryPoint(s.Polygon, Vector{0, 0})
	assert.True(t, res.IsInterior)
}

func TestRoundedInwardPreservesOuterSilhouette(t *testing.T) {
	s := NewRectShape(2, 2, 0)
	r := RoundedInward(s, 0.5)
	assert.InDelta(t, 0.5, r.CircleRadius, 1e-9)
	assert.InDelta(t, 1.5, r.Polygon.HalfWidth, 1e-9)
	assert.InDelta(t, 1.5, r.Polygon.HalfHeight, 1e-9)
}

func TestRoundedInwardNoOpOnNonPositiveAmount(t *testing.T) {
	s := NewRectShape(2, 2, 0)
	r := RoundedInward(s, 0)
	assert.Equal(t, s, r)
}

func TestSecondMomentOfAreaPositive(t *testing.T) {
	shapes := []Shape{
		NewPointShape(1),
		NewLineSegmentShape(1, 0.2),
		NewRectShape(1, 2, 0),
		NewRectShape(1, 2, 0.3),
		NewRegularShape(6, 1, 0),
	}
	for _, s := range shapes {
		assert.Greater(t, SecondMomentOfArea(s), 0.0)
	}
}
