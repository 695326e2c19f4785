package physics

import "math"

// Contact is a single resolved intersection point: a world-space unit
// normal pointing away from the first shape passed to Collide, and the
// contact point expressed in each body's own local space, so the solver
// can re-derive its world position from whatever pose the body has
// reached by the current substep.
type Contact struct {
	Normal  Vector
	OffsetA Vector
	OffsetB Vector
}

// ContactResult is the 0, 1 or 2 contact points produced by Collide.
type ContactResult struct {
	Contacts []Contact
}

func (r ContactResult) Count() int { return len(r.Contacts) }

// Collide runs the narrow phase between shapeA (posed at poseA) and
// shapeB (posed at poseB), dispatching to the specialized circle/circle
// and circle/any routines when either side is a Point, and to the general
// SAT+clipping routine otherwise.
func Collide(shapeA Shape, poseA Pose, shapeB Shape, poseB Pose) ContactResult {
	aIsPoint := shapeA.Polygon.Kind == KindPoint
	bIsPoint := shapeB.Polygon.Kind == KindPoint

	switch {
	case aIsPoint && bIsPoint:
		return circleCircle(poseA.Translation, shapeA.CircleRadius, poseA, poseB.Translation, shapeB.CircleRadius, poseB)
	case aIsPoint:
		res := circleAny(shapeB, poseB, poseA.Translation, shapeA.CircleRadius, poseA)
		return flipContactResult(res)
	case bIsPoint:
		return circleAny(shapeA, poseA, poseB.Translation, shapeB.CircleRadius, poseB)
	default:
		return polygonPolygon(shapeA, poseA, shapeB, poseB)
	}
}

func flipContactResult(r ContactResult) ContactResult {
	out := ContactResult{Contacts: make([]Contact, len(r.Contacts))}
	for i, c := range r.Contacts {
		out.Contacts[i] = Contact{
			Normal:  c.Normal.Mul(-1),
			OffsetA: c.OffsetB,
			OffsetB: c.OffsetA,
		}
	}
	return out
}

// circleCircle is the analytic circle/circle test: normal is the direction
// between centers, defaulting to +x when the centers coincide.
func circleCircle(centerA Vector, rA float64, poseA Pose, centerB Vector, rB float64, poseB Pose) ContactResult {
	d := centerB.Sub(centerA)
	dist := d.Len()
	if dist >= rA+rB {
		return ContactResult{}
	}
	var normal Vector
	if dist < 1e-9 {
		normal = Vector{1, 0}
	} else {
		normal = d.Mul(1 / dist)
	}
	surfA := centerA.Add(normal.Mul(rA))
	surfB := centerB.Sub(normal.Mul(rB))
	world := surfA.Add(surfB).Mul(0.5)
	return ContactResult{Contacts: []Contact{{
		Normal:  normal,
		OffsetA: poseA.ToLocal(world),
		OffsetB: poseB.ToLocal(world),
	}}}
}

// circleAny tests `other` (posed at otherPose) against a circle of radius
// circleR centered at circleCenterWorld (posed at circlePose, used only to
// express the circle side's local offset). The returned normal points away
// from `other`, toward the circle.
func circleAny(other Shape, otherPose Pose, circleCenterWorld Vector, circleR float64, circlePose Pose) ContactResult {
	localCenter := otherPose.ToLocal(circleCenterWorld)
	closest := ClosestBoundaryPoint(other.Polygon, localCenter)

	var normalLocal Vector
	if closest.IsInterior {
		// Circle's center is embedded in other's solid interior: push out
		// along the direction from the center through the nearest boundary
		// point.
		normalLocal = safeNormalize(closest.Point.Sub(localCenter))
	} else {
		sep := localCenter.Sub(closest.Point)
		gap := sep.Len() - circleR - other.CircleRadius
		if gap > 0 {
			return ContactResult{}
		}
		normalLocal = safeNormalize(sep)
	}

	surfaceLocal := closest.Point.Add(normalLocal.Mul(other.CircleRadius))
	worldSurfaceOther := otherPose.ToWorld(surfaceLocal)
	worldSurfaceCircle := circleCenterWorld.Sub(otherPose.RotateDir(normalLocal).Mul(circleR))
	world := worldSurfaceOther.Add(worldSurfaceCircle).Mul(0.5)

	normalWorld := otherPose.RotateDir(normalLocal)
	return ContactResult{Contacts: []Contact{{
		Normal:  normalWorld,
		OffsetA: otherPose.ToLocal(world),
		OffsetB: circlePose.ToLocal(world),
	}}}
}

// polygonPolygon is the general SAT + edge-clipping routine for two
// non-Point shapes.
func polygonPolygon(shapeA Shape, poseA Pose, shapeB Shape, poseB Pose) ContactResult {
	relRot := RotationMul(RotationInverse(poseA.Rotation), poseB.Rotation)
	relTrans := poseA.ToLocal(poseB.Translation)

	bestDepth := math.Inf(1)
	bestAxis := Vector{}
	bestFromA := true

	nA := shapeA.Polygon.edgeCount()
	for i := 0; i < nA; i++ {
		axis := shapeA.Polygon.Normals[i]
		edgeExtent := shapeA.Polygon.Vertices[i].Dot(axis)
		axisInB := RotationInverse(relRot).Mul2x1(axis.Mul(-1))
		depth := edgeExtent + shapeA.CircleRadius + ProjectedExtent(shapeB, axisInB) - relTrans.Dot(axis)
		if depth <= 0 {
			return ContactResult{}
		}
		if depth < bestDepth {
			bestDepth = depth
			bestAxis = axis
			bestFromA = true
		}
	}

	nB := shapeB.Polygon.edgeCount()
	for i := 0; i < nB; i++ {
		axisLocalB := shapeB.Polygon.Normals[i]
		axis := relRot.Mul2x1(axisLocalB)
		edgeExtent := relTrans.Dot(axis) + relRot.Mul2x1(shapeB.Polygon.Vertices[i]).Dot(axis)
		depth := edgeExtent + shapeB.CircleRadius + ProjectedExtent(shapeA, axis.Mul(-1))
		if depth <= 0 {
			return ContactResult{}
		}
		if depth < bestDepth {
			bestDepth = depth
			bestAxis = axis
			bestFromA = false
		}
	}

	if bestFromA {
		return clipManifold(shapeA, shapeB, relRot, relTrans, bestAxis, poseA, poseB)
	}
	// bestAxis was derived as B's edge normal expressed in A-local frame;
	// clipManifold always treats its first shape argument as the reference,
	// so swap roles and flip the result back afterward.
	axisInB := RotationInverse(relRot).Mul2x1(bestAxis)
	relRotBA := RotationInverse(relRot)
	relTransBA := relRotBA.Mul2x1(relTrans.Mul(-1))
	res := clipManifold(shapeB, shapeA, relRotBA, relTransBA, axisInB, poseB, poseA)
	return flipContactResult(res)
}

// clipManifold builds the (up to) two-point manifold given the chosen
// separating axis expressed in ref's local frame, where ref is shapeA-like
// (its normal set contributed the axis) and inc is shapeB-like. The caller
// is responsible for flipping the result back when it swapped pose roles
// to get here; clipManifold itself never flips.
func clipManifold(ref, inc Shape, relRot Rotation, relTrans Vector, axis Vector, refPose, incPose Pose) ContactResult {
	refEdge := supportingEdgeForAxis(ref.Polygon, axis)
	// refEdge offset outward along its own normal by ref's rounding radius.
	refStart := refEdge.Start.Add(refEdge.Normal.Mul(ref.CircleRadius))
	refEnd := refStart.Add(refEdge.Dir.Mul(refEdge.Length))

	axisInInc := RotationInverse(relRot).Mul2x1(axis.Mul(-1))
	incEdgeLocal := supportingEdgeForAxis(inc.Polygon, axisInInc)
	incStartLocal := incEdgeLocal.Start.Add(incEdgeLocal.Normal.Mul(inc.CircleRadius))
	incEndLocal := incStartLocal.Add(incEdgeLocal.Dir.Mul(incEdgeLocal.Length))

	toRefFrame := func(p Vector) Vector { return relRot.Mul2x1(p).Add(relTrans) }
	incStart := toRefFrame(incStartLocal)
	incEnd := toRefFrame(incEndLocal)

	if refEdge.Length < 1e-9 || incEdgeLocal.Length < 1e-9 {
		return vertexFallback(ref, inc, refPose, incPose, axis, refStart, refEnd, incStart, incEnd)
	}

	p0, p1, n := clipSegmentToLine([2]Vector{incStart, incEnd}, refEdge.Dir.Mul(-1), refEdge.Dir.Mul(-1).Dot(refStart))
	if n == 2 {
		p0, p1, n = clipSegmentToLine([2]Vector{p0, p1}, refEdge.Dir, refEdge.Dir.Dot(refEnd))
	}
	if n < 2 {
		return vertexFallback(ref, inc, refPose, incPose, axis, refStart, refEnd, incStart, incEnd)
	}

	var contacts []Contact
	for _, p := range [2]Vector{p0, p1} {
		depth := refStart.Sub(p).Dot(refEdge.Normal)
		if depth <= 0 {
			continue
		}
		worldP := refPose.ToWorld(p)
		c := Contact{
			Normal:  refPose.RotateDir(refEdge.Normal),
			OffsetA: refPose.ToLocal(worldP),
			OffsetB: incPose.ToLocal(worldP),
		}
		contacts = append(contacts, c)
	}
	if len(contacts) == 0 {
		return vertexFallback(ref, inc, refPose, incPose, axis, refStart, refEnd, incStart, incEnd)
	}
	return ContactResult{Contacts: contacts}
}

// vertexFallback handles the degenerate cases: project the incident
// shape's closest vertex onto the reference edge
// (clamped); if that lands outside the edge's extent, fall back further to
// a vertex/vertex circular-corner test using the disc radii.
func vertexFallback(ref, inc Shape, refPose, incPose Pose, axis, refStart, refEnd, incStart, incEnd Vector) ContactResult {
	closestVertex := incStart
	if incEnd.Sub(refStart).Dot(axis.Mul(-1)) < incStart.Sub(refStart).Dot(axis.Mul(-1)) {
		closestVertex = incEnd
	}

	edgeDir := refEnd.Sub(refStart)
	edgeLen := edgeDir.Len()
	if edgeLen < 1e-9 {
		return ContactResult{}
	}
	edgeDir = edgeDir.Mul(1 / edgeLen)
	t := closestVertex.Sub(refStart).Dot(edgeDir)
	tc := clamp(t, 0, edgeLen)

	if t == tc {
		proj := refStart.Add(edgeDir.Mul(tc))
		depth := proj.Sub(closestVertex).Dot(axis)
		if depth <= 0 {
			return ContactResult{}
		}
		worldP := refPose.ToWorld(closestVertex.Add(axis.Mul(depth / 2)))
		return ContactResult{Contacts: []Contact{{
			Normal:  refPose.RotateDir(axis),
			OffsetA: refPose.ToLocal(worldP),
			OffsetB: incPose.ToLocal(worldP),
		}}}
	}

	// Vertex lies beyond the edge's extent: corner/corner circle test.
	refCorner := refStart
	if tc > edgeLen/2 {
		refCorner = refEnd
	}
	d := closestVertex.Sub(refCorner)
	dist := d.Len()
	if dist > 1e-9 {
		n := d.Mul(1 / dist)
		rSum := ref.CircleRadius + inc.CircleRadius
		if dist-rSum > 0 {
			return ContactResult{}
		}
		worldP := refPose.ToWorld(refCorner.Add(n.Mul(ref.CircleRadius)))
		return ContactResult{Contacts: []Contact{{
			Normal:  refPose.RotateDir(n),
			OffsetA: refPose.ToLocal(worldP),
			OffsetB: incPose.ToLocal(worldP),
		}}}
	}
	return ContactResult{}
}

// supportingEdgeForAxis wraps SupportingEdge, normalizing zero-length
// polygons (shouldn't occur for non-Point shapes) defensively.
func supportingEdgeForAxis(p Polygon, axis Vector) Edge {
	return SupportingEdge(Shape{Polygon: p}, axis)
}

// clipSegmentToLine keeps the portion of segment v on the `normal.Dot(p) <=
// offset` side, inserting an interpolated point at the crossing. This is
// the standard two-plane Sutherland-Hodgman clip used by every
// polygon-contact generator in the genre (Box2D's b2ClipSegmentToLine and
// its many ports).
func clipSegmentToLine(v [2]Vector, normal Vector, offset float64) (Vector, Vector, int) {
	var out [2]Vector
	count := 0
	d0 := normal.Dot(v[0]) - offset
	d1 := normal.Dot(v[1]) - offset
	if d0 <= 0 {
		out[count] = v[0]
		count++
	}
	if d1 <= 0 {
		out[count] = v[1]
		count++
	}
	if d0*d1 < 0 {
		t := d0 / (d0 - d1)
		out[count] = v[0].Add(v[1].Sub(v[0]).Mul(t))
		count++
	}
	if count < 2 {
		return out[0], out[0], count
	}
	return out[0], out[1], count
}
