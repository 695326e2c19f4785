package physics

import "math"

// AABB is an axis-aligned bounding box expressed by its min/max corners.
type AABB struct {
	Min, Max Vector
}

// AABBFromCenterHalfExtents builds an AABB from a center point and
// half-extents along each axis.
func AABBFromCenterHalfExtents(center Vector, halfExtents Vector) AABB {
	return AABB{Min: center.Sub(halfExtents), Max: center.Add(halfExtents)}
}

// Union returns the smallest AABB containing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: Vector{math.Min(a.Min[0], b.Min[0]), math.Min(a.Min[1], b.Min[1])},
		Max: Vector{math.Max(a.Max[0], b.Max[0]), math.Max(a.Max[1], b.Max[1])},
	}
}

// Area is the AABB's perimeter, used as the BVH insertion cost metric
// (cheaper than the 2D "area" term, which would just be width*height, but
// perimeter is what the BVH literature actually minimizes, since it
// estimates surface-area-heuristic cost without the multiplicative blowup
// of true area for thin boxes).
func (a AABB) Area() float64 {
	d := a.Max.Sub(a.Min)
	return 2 * (d[0] + d[1])
}

// Overlaps reports whether a and b intersect (touching counts as overlap).
func (a AABB) Overlaps(b AABB) bool {
	return a.Min[0] <= b.Max[0] && b.Min[0] <= a.Max[0] &&
		a.Min[1] <= b.Max[1] && b.Min[1] <= a.Max[1]
}

// ContainsPoint reports whether p lies within a, inclusive of the
// boundary.
func (a AABB) ContainsPoint(p Vector) bool {
	return p[0] >= a.Min[0] && p[0] <= a.Max[0] && p[1] >= a.Min[1] && p[1] <= a.Max[1]
}

// Expand pads a uniformly by amt in every direction.
func (a AABB) Expand(amt float64) AABB {
	pad := Vector{amt, amt}
	return AABB{Min: a.Min.Sub(pad), Max: a.Max.Add(pad)}
}

// ExpandDir grows a in the direction of a motion vector delta (used to
// inflate a collider's AABB for the frame's expected travel), extending
// only on the side the motion points toward.
func (a AABB) ExpandDir(delta Vector) AABB {
	out := a
	if delta[0] > 0 {
		out.Max[0] += delta[0]
	} else {
		out.Min[0] += delta[0]
	}
	if delta[1] > 0 {
		out.Max[1] += delta[1]
	} else {
		out.Min[1] += delta[1]
	}
	return out
}

func (a AABB) Center() Vector {
	return a.Min.Add(a.Max).Mul(0.5)
}

func (a AABB) HalfExtents() Vector {
	return a.Max.Sub(a.Min).Mul(0.5)
}

// rayAABB returns (tEntry, hit) for the ray origin + t*dir against box,
// with t clipped to [0, maxT] and measured in multiples of dir (a world
// distance when dir is unit length). Used by BVH.QuerySwept through
// paddedRayEntry.
func rayAABB(origin, dir Vector, maxT float64, box AABB) (float64, bool) {
	tmin, tmax := 0.0, maxT
	for axis := 0; axis < 2; axis++ {
		if math.Abs(dir[axis]) < 1e-12 {
			if origin[axis] < box.Min[axis] || origin[axis] > box.Max[axis] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[axis]
		t1 := (box.Min[axis] - origin[axis]) * inv
		t2 := (box.Max[axis] - origin[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
