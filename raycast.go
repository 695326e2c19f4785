package physics

import "math"

// rayCircle is the standard ray/circle quadratic, returning the smaller
// non-negative root in [0, maxT] if the ray enters the circle there.
func rayCircle(origin, dir Vector, maxT float64, center Vector, radius float64) (float64, bool) {
	m := origin.Sub(center)
	b := m.Dot(dir)
	c := m.Dot(m) - radius*radius
	if c > 0 && b > 0 {
		return 0, false
	}
	a := dir.Dot(dir)
	if a < 1e-18 {
		return 0, false
	}
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	t := (-b - math.Sqrt(disc)) / a
	if t < 0 {
		t = 0
	}
	if t > maxT {
		return 0, false
	}
	return t, true
}

// rayInsidePaddedPolygon reports whether pt lies within every edge's
// outward half-plane padded by rTotal — a conservative (slightly generous
// near corners) "is the ray origin already inside this shape" test, used so
// a ray starting inside a collider misses that collider rather than
// reporting a zero-distance hit.
func rayInsidePaddedPolygon(p Polygon, pt Vector, rTotal float64) bool {
	for i, n := range p.Normals {
		if pt.Sub(p.Vertices[i]).Dot(n) > rTotal {
			return false
		}
	}
	return true
}

// rayShape casts the ray origin + t*dir, t in [0, maxDistance], against
// shape posed at pose, padded by an additional `radius` (so radius==0 is an
// exact raycast and radius>0 is a spherecast). Returns the entry t, measured
// in multiples of dir (a world-space distance when dir is unit length, as
// castSwept passes it), and the world-space outward normal at the hit.
func rayShape(origin, dir Vector, maxDistance float64, radius float64, shape Shape, pose Pose) (t float64, normal Vector, hit bool) {
	rTotal := radius + shape.CircleRadius

	localOrigin := pose.ToLocal(origin)
	localDir := RotationInverse(pose.Rotation).Mul2x1(dir)

	if shape.Polygon.Kind == KindPoint {
		ct, ok := rayCircle(localOrigin, localDir, maxDistance, VectorZero(), rTotal)
		if !ok {
			return 0, Vector{}, false
		}
		hitLocal := localOrigin.Add(localDir.Mul(ct))
		return ct, pose.RotateDir(safeNormalize(hitLocal)), true
	}

	p := shape.Polygon
	if rayInsidePaddedPolygon(p, localOrigin, rTotal) {
		return 0, Vector{}, false
	}

	bestT := maxDistance
	bestNormal := Vector{}
	found := false

	// Flat-edge candidates: slab-clip the ray against each edge's outward
	// half-plane offset by rTotal, then reject hits whose tangential
	// position falls outside that edge's own (unpadded) extent — those
	// belong to a rounded corner instead (handled below).
	tmin, tmax := 0.0, maxDistance
	limitingEdge := -1
	n := len(p.Normals)
	for i := 0; i < n; i++ {
		normalI := p.Normals[i]
		offset := p.Vertices[i].Dot(normalI) + rTotal
		denom := normalI.Dot(localDir)
		dist := normalI.Dot(localOrigin) - offset
		switch {
		case denom > 1e-12:
			if t := -dist / denom; t < tmax {
				tmax = t
			}
		case denom < -1e-12:
			if t := -dist / denom; t > tmin {
				tmin = t
				limitingEdge = i
			}
		default:
			if dist > 0 {
				tmin, tmax = 1, 0 // parallel and already outside: no hit
			}
		}
	}
	if tmin <= tmax && limitingEdge >= 0 {
		a := p.Vertices[limitingEdge]
		b := p.Vertices[(limitingEdge+1)%n]
		edge := b.Sub(a)
		edgeLen := edge.Len()
		if edgeLen > 1e-12 {
			edgeDir := edge.Mul(1 / edgeLen)
			hitPoint := localOrigin.Add(localDir.Mul(tmin))
			along := hitPoint.Sub(a).Dot(edgeDir)
			if along >= 0 && along <= edgeLen {
				bestT = tmin
				bestNormal = p.Normals[limitingEdge]
				found = true
			}
		}
	}

	// Rounded-corner candidates: every vertex is the center of a radius-
	// rTotal circle; only relevant when rTotal > 0 or the flat-edge pass
	// found nothing (a zero-radius polygon has no rounding, but a ray can
	// still clip a sharp vertex exactly).
	for _, v := range p.Vertices {
		ct, ok := rayCircle(localOrigin, localDir, bestT, v, rTotal)
		if !ok {
			continue
		}
		hitPoint := localOrigin.Add(localDir.Mul(ct))
		if ct < bestT || !found {
			bestT = ct
			bestNormal = safeNormalize(hitPoint.Sub(v))
			found = true
		}
	}

	if !found {
		return 0, Vector{}, false
	}
	return bestT, pose.RotateDir(bestNormal), true
}
