package physics

// shapeContainsPoint reports whether shape, posed at pose, contains point.
func shapeContainsPoint(shape Shape, pose Pose, point Vector) bool {
	local := pose.ToLocal(point)
	if shape.Polygon.Kind == KindPoint {
		return local.Len() <= shape.CircleRadius
	}
	closest := ClosestBoundaryPoint(shape.Polygon, local)
	if closest.IsInterior {
		return true
	}
	return local.Sub(closest.Point).Len() <= shape.CircleRadius
}

// QueryPointBody yields every live, owned body whose collider contains
// point, via a BVH point query followed by the exact shape test.
// Unattached (static) colliders have no body to report and are skipped.
func (w *World) QueryPointBody(point Vector) []Handle {
	seen := make(map[Handle]bool)
	var out []Handle
	w.bvh.QueryPoint(point, func(ch Handle) {
		c := w.colliders.getPtr(ch)
		if c == nil || !c.Body.Valid() {
			return
		}
		body := w.bodies.getPtr(c.Body)
		if body == nil || seen[c.Body] {
			return
		}
		if shapeContainsPoint(c.Shape, c.WorldPose(body), point) {
			seen[c.Body] = true
			out = append(out, c.Body)
		}
	})
	return out
}

// QueryShape yields every live solid collider overlapping shape posed at
// pose, restricted to layers set in layerMask (a bit per layer index), via
// a BVH AABB overlap followed by the exact narrow-phase test.
func (w *World) QueryShape(pose Pose, shape Shape, layerMask uint64) []Handle {
	box := shape.AABB(pose)
	var out []Handle
	w.bvh.QueryAABB(box, func(ch Handle) {
		c := w.colliders.getPtr(ch)
		if c == nil || c.Kind != ColliderSolid {
			return
		}
		if layerMask != 0 && c.Layer >= 0 && c.Layer < 64 && (layerMask&(1<<uint(c.Layer))) == 0 {
			return
		}
		var owner *Body
		if c.Body.Valid() {
			owner = w.bodies.getPtr(c.Body)
		}
		world := c.WorldPose(owner)
		if Collide(shape, pose, c.Shape, world).Count() > 0 {
			out = append(out, ch)
		}
	})
	return out
}

// RayHit is one exact hit reported by Raycast/Spherecast.
type RayHit struct {
	Collider Handle
	Distance float64
	Normal   Vector
}

// castSwept is the shared implementation behind Raycast and Spherecast: a
// BVH swept-AABB walk in ascending entry-t, exact ray/shape test per
// candidate, short-circuited once the heap's minimum t exceeds the best hit
// found so far.
func (w *World) castSwept(origin, dir Vector, maxDistance, radius float64, layerMask uint64) (RayHit, bool) {
	bestT := maxDistance
	var best RayHit
	found := false
	w.bvh.QuerySwept(origin, dir, maxDistance, radius, &bestT, func(ch Handle, _ float64) bool {
		c := w.colliders.getPtr(ch)
		if c == nil || c.Kind != ColliderSolid {
			return false
		}
		if layerMask != 0 && c.Layer >= 0 && c.Layer < 64 && (layerMask&(1<<uint(c.Layer))) == 0 {
			return false
		}
		var owner *Body
		if c.Body.Valid() {
			owner = w.bodies.getPtr(c.Body)
		}
		world := c.WorldPose(owner)
		if rayInsidePaddedPolygonPose(c.Shape, world, origin, radius) {
			return false // a ray starting inside a collider misses it
		}
		t, normal, ok := rayShape(origin, dir, bestT, radius, c.Shape, world)
		if !ok {
			return false
		}
		if !found || t < bestT {
			bestT = t
			best = RayHit{Collider: ch, Distance: t, Normal: normal}
			found = true
		}
		return found
	})
	return best, found
}

// rayInsidePaddedPolygonPose is rayInsidePaddedPolygon lifted into world
// space, for the "ray origin already inside" short-circuit in castSwept.
func rayInsidePaddedPolygonPose(shape Shape, pose Pose, origin Vector, radius float64) bool {
	local := pose.ToLocal(origin)
	rTotal := radius + shape.CircleRadius
	if shape.Polygon.Kind == KindPoint {
		return local.Len() <= rTotal
	}
	return rayInsidePaddedPolygon(shape.Polygon, local, rTotal)
}

// Raycast casts an infinitely thin ray (spherecast with radius 0) from
// origin along dir (a unit direction; maxDistance bounds the search)
// restricted to layerMask.
func (w *World) Raycast(origin, dir Vector, maxDistance float64, layerMask uint64) (RayHit, bool) {
	return w.Spherecast(origin, dir, maxDistance, 0, layerMask)
}

// Spherecast sweeps a disc of the given radius from origin along dir over
// maxDistance, restricted to layerMask, returning the nearest exact hit.
func (w *World) Spherecast(origin, dir Vector, maxDistance, radius float64, layerMask uint64) (RayHit, bool) {
	if maxDistance <= 0 || dir.Len() < 1e-12 {
		return RayHit{}, false
	}
	return w.castSwept(origin, safeNormalize(dir), maxDistance, radius, layerMask)
}

// ContactsForCollider visits every contact touching c recorded in the
// world's published contact history, flipping orientation when c is the
// second party.
func (w *World) ContactsForCollider(c Handle, visit func(ContactInfo)) {
	w.history.forCollider(c, visit)
}
