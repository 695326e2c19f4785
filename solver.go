package physics

import "math"

// contactParty names one side of a positional correction: either a
// dynamic body referenced by its dense index with a local-frame offset, or
// a fixed world point carrying no inverse mass (a static collider, or a
// constraint's world-fixed anchor). Every rope, constraint and contact
// projection in this file reduces to a pair of these.
type contactParty struct {
	bodyIdx int
	local   Vector
	world   Vector
}

func dynamicParty(bodyIdx int, localOffset Vector) contactParty {
	return contactParty{bodyIdx: bodyIdx, local: localOffset}
}

func staticParty(worldPoint Vector) contactParty {
	return contactParty{bodyIdx: -1, world: worldPoint}
}

func (p contactParty) worldPoint(bodies []*Body) Vector {
	if p.bodyIdx < 0 {
		return p.world
	}
	return bodies[p.bodyIdx].Pose.ToWorld(p.local)
}

func (p contactParty) leverArm(bodies []*Body) Vector {
	if p.bodyIdx < 0 {
		return VectorZero()
	}
	return Rotate(bodies[p.bodyIdx].Pose.Rotation, p.local)
}

func (p contactParty) invMass(bodies []*Body) float64 {
	if p.bodyIdx < 0 {
		return 0
	}
	return bodies[p.bodyIdx].Mass.InvMass()
}

func (p contactParty) invInertia(bodies []*Body) float64 {
	if p.bodyIdx < 0 {
		return 0
	}
	return bodies[p.bodyIdx].Mass.InvInertia()
}

// effectiveInvMass is w_i^eff = w_i + I_i^-1 * (r_rot_i x n)^2, the
// angular-augmented inverse mass every positional projection in this
// package uses.
func effectiveInvMass(bodies []*Body, p contactParty, n Vector) float64 {
	lever := p.leverArm(bodies)
	cr := cross2(lever, n)
	return p.invMass(bodies) + p.invInertia(bodies)*cr*cr
}

// applyPositionalImpulse moves p's body by sign*invMass*lambda*n and spins
// it by sign*invInertia*lambda*(leverArm x n) — the shared "translate and
// rotate each body" step constraints use, reused (with a zero lever arm)
// for rope particles.
func applyPositionalImpulse(bodies []*Body, p contactParty, n Vector, lambda, sign float64) {
	if p.bodyIdx < 0 {
		return
	}
	b := bodies[p.bodyIdx]
	lever := p.leverArm(bodies)
	b.Pose.Translation = b.Pose.Translation.Add(n.Mul(sign * b.Mass.InvMass() * lambda))
	dAngle := sign * b.Mass.InvInertia() * lambda * cross2(lever, n)
	b.Pose.Rotation = RotationMul(b.Pose.Rotation, RotationFromAngle(dAngle))
}

// applyVelocityImpulse is the velocity-domain analogue: adds
// sign*invMass*impulse*n to linear velocity and sign*invInertia*(leverArm x
// n)*impulse to angular velocity.
func applyVelocityImpulse(bodies []*Body, p contactParty, n Vector, impulse, sign float64) {
	if p.bodyIdx < 0 {
		return
	}
	b := bodies[p.bodyIdx]
	lever := p.leverArm(bodies)
	b.LinearVelocity = b.LinearVelocity.Add(n.Mul(sign * b.Mass.InvMass() * impulse))
	b.AngularVelocity += sign * b.Mass.InvInertia() * impulse * cross2(lever, n)
}

// velocityAt returns the material point velocity of p's body at its
// current lever arm: v + omega x r.
func velocityAt(bodies []*Body, p contactParty) Vector {
	if p.bodyIdx < 0 {
		return VectorZero()
	}
	b := bodies[p.bodyIdx]
	return b.LinearVelocity.Add(crossScalarVec(b.AngularVelocity, p.leverArm(bodies)))
}

// ropeNeighbor records a rope particle's adjacent dense body indices (-1
// if absent), used to re-orient a contact normal to the rope's local
// tangent.
type ropeNeighbor struct{ prev, next int }

func buildRopeNeighbors(ropes []tickRope) map[int]ropeNeighbor {
	m := make(map[int]ropeNeighbor)
	for _, r := range ropes {
		for i, idx := range r.ParticleIdx {
			n := ropeNeighbor{prev: -1, next: -1}
			if i > 0 {
				n.prev = r.ParticleIdx[i-1]
			}
			if i+1 < len(r.ParticleIdx) {
				n.next = r.ParticleIdx[i+1]
			}
			m[idx] = n
		}
	}
	return m
}

// reorientRopeNormal re-derives a contact normal perpendicular to the rope
// at bodyIdx, picking whichever of the previous/next segment gives the
// larger alignment with the narrow phase's raw normal. A contact between a
// rope particle and another collider has its normal re-oriented this way
// before it is projected.
func reorientRopeNormal(nb ropeNeighbor, bodyIdx int, bodies []*Body, raw Vector) (Vector, bool) {
	self := bodies[bodyIdx].Pose.Translation
	var candidates []Vector
	if nb.prev >= 0 {
		if d := self.Sub(bodies[nb.prev].Pose.Translation); d.Len() > 1e-9 {
			candidates = append(candidates, perp(safeNormalize(d)))
		}
	}
	if nb.next >= 0 {
		if d := bodies[nb.next].Pose.Translation.Sub(self); d.Len() > 1e-9 {
			candidates = append(candidates, perp(safeNormalize(d)))
		}
	}
	if len(candidates) == 0 {
		return raw, false
	}
	best := candidates[0]
	bestAlign := math.Abs(best.Dot(raw))
	for _, c := range candidates[1:] {
		if a := math.Abs(c.Dot(raw)); a > bestAlign {
			best, bestAlign = c, a
		}
	}
	if best.Dot(raw) < 0 {
		best = best.Mul(-1)
	}
	return best, true
}

// contactPointCache is one contact point's resolved geometry, refreshed
// every substep and left holding the last substep's values once the
// substep loop ends — exactly the state the velocity-domain pass needs to
// apply restitution from the cached normal impulse.
type contactPointCache struct {
	PartyA, PartyB                 contactParty
	Normal                         Vector
	LambdaN                        float64
	HasFriction                    bool
	StaticFriction, DynamicFriction float64
	Restitution                    float64
	VNOld                          float64
	AExtSum                        float64 // ||a_ext_0 + a_ext_1|| captured alongside VNOld
	VNOldCaptured                  bool
}

type pairContactCache struct {
	Count  int
	Points [2]contactPointCache
}

// islandBodyState is per-substep scratch retained across the substep loop:
// the pre-substep pose used to derive end-of-substep velocity, and the
// externally-applied acceleration recorded once (at the first substep) for
// the restitution speed bound.
type islandBodyState struct {
	PoseSaved     Pose
	AExt          Vector
	AExtRecorded  bool
}

// solveIsland runs the full substepped XPBD pass over one island: bodies
// are dense indices into buf.Bodies/bodyPtrs; isl.Bodies/
// Ropes/Constraints/Pairs are this island's subset of indices into buf.
func solveIsland(isl Island, buf *tickBuffers, bodyPtrs []*Body, cfg TuningConstants, accel AccelField, dtFrame, timeScale float64) []ContactInfo {
	substeps := int(math.Ceil(timeScale * float64(cfg.Substeps)))
	if substeps < 1 {
		substeps = 1
	}
	dt := timeScale * dtFrame / float64(substeps)
	if dt <= 0 {
		return nil
	}
	dtSq := dt * dt

	state := make([]islandBodyState, len(isl.Bodies))
	localOf := make(map[int]int, len(isl.Bodies)) // dense body idx -> position in isl.Bodies
	for i, idx := range isl.Bodies {
		localOf[idx] = i
	}

	ropeNeighbors := buildRopeNeighbors(buf.Ropes)

	// bendCorrection[ropeLocalIdx][particleLocalIdx] accumulates the
	// angular bending correction applied this substep, consumed by rope
	// damping's lateral-velocity clamp.
	bendCorrection := make([][]float64, len(isl.Ropes))
	for i, ri := range isl.Ropes {
		bendCorrection[i] = make([]float64, len(buf.Ropes[ri].ParticleIdx))
	}

	caches := make([]pairContactCache, len(isl.Pairs))

	for step := 0; step < substeps; step++ {
		first := step == 0

		// Integrate.
		for i, idx := range isl.Bodies {
			b := bodyPtrs[idx]
			state[i].PoseSaved = b.Pose
			if !b.Mass.SeesForces() {
				continue
			}
			a := accel(b.Pose.Translation)
			if !state[i].AExtRecorded {
				state[i].AExt = a
				state[i].AExtRecorded = true
			}
			b.LinearVelocity = b.LinearVelocity.Add(a.Mul(dt))
			b.Pose = b.Pose.Integrate(dt, b.LinearVelocity, b.AngularVelocity)
		}

		// Project ropes.
		for bi, ri := range isl.Ropes {
			tr := buf.Ropes[ri]
			solveRopeDistance(bodyPtrs, &tr.Data, tr.ParticleIdx, dtSq)
			solveRopeBending(bodyPtrs, &tr.Data, tr.ParticleIdx, dtSq, bendCorrection[bi])
		}

		// Project constraints.
		for _, ci := range isl.Constraints {
			tc := buf.Constraints[ci]
			solveConstraint(bodyPtrs, &tc.Data, tc.OwnerIdx, tc.TargetIdx, dtSq)
		}

		// Project contacts.
		for pi, idx := range isl.Pairs {
			pair := &buf.Pairs[idx]
			cache := &caches[pi]
			solveContactPair(bodyPtrs, pair, ropeNeighbors, dtSq, cache, first)
			if first {
				for i := 0; i < cache.Count; i++ {
					pt := &cache.Points[i]
					aSum := aExtOf(pt.PartyA.bodyIdx, state, localOf).Add(aExtOf(pt.PartyB.bodyIdx, state, localOf))
					pt.AExtSum = aSum.Len()
				}
			}
		}

		// Derive velocities from the position delta this substep produced.
		for i, idx := range isl.Bodies {
			b := bodyPtrs[idx]
			if !b.Mass.SeesForces() {
				continue
			}
			b.LinearVelocity = b.Pose.Translation.Sub(state[i].PoseSaved.Translation).Mul(1 / dt)
			b.AngularVelocity = relativeAngle(b.Pose.Rotation, state[i].PoseSaved.Rotation) / dt
		}
	}

	// Velocity-domain pass: restitution, dynamic friction, constraint and
	// rope damping.
	for pi := range isl.Pairs {
		applyContactVelocityPass(bodyPtrs, &caches[pi], dt)
	}
	for _, ci := range isl.Constraints {
		tc := buf.Constraints[ci]
		dampConstraint(bodyPtrs, &tc.Data, tc.OwnerIdx, tc.TargetIdx, dt)
	}
	for bi, ri := range isl.Ropes {
		tr := buf.Ropes[ri]
		dampRope(bodyPtrs, &tr.Data, tr.ParticleIdx, dt, bendCorrection[bi])
	}

	return publishContacts(isl, buf, caches)
}

// solveRopeDistance is the per-segment Gauss-Seidel distance correction.
func solveRopeDistance(bodies []*Body, rp *Rope, particleIdx []int, dtSq float64) {
	alphaHat := rp.Compliance / dtSq
	for i := 0; i+1 < len(particleIdx); i++ {
		a, b := particleIdx[i], particleIdx[i+1]
		pa, pb := dynamicParty(a, VectorZero()), dynamicParty(b, VectorZero())
		d := bodies[b].Pose.Translation.Sub(bodies[a].Pose.Translation)
		dist := d.Len()
		n := safeNormalize(d)
		C := rp.Spacing - dist
		wA, wB := pa.invMass(bodies), pb.invMass(bodies)
		denom := wA + wB + alphaHat
		if denom < 1e-12 {
			continue
		}
		lambda := -C / denom
		applyPositionalImpulse(bodies, pa, n, lambda, 1)
		applyPositionalImpulse(bodies, pb, n, lambda, -1)
	}
}

// solveRopeBending enforces the rope's kink-angle limit by rotating the
// triple's far particle about the middle one.
func solveRopeBending(bodies []*Body, rp *Rope, particleIdx []int, dtSq float64, bendCorrection []float64) {
	if rp.BendingMaxAngle <= 0 {
		return
	}
	alphaHat := rp.BendingCompliance / dtSq
	for i := 0; i+2 < len(particleIdx); i++ {
		i0, i1, i2 := particleIdx[i], particleIdx[i+1], particleIdx[i+2]
		p0 := bodies[i0].Pose.Translation
		p1 := bodies[i1].Pose.Translation
		p2 := bodies[i2].Pose.Translation
		d1 := p1.Sub(p0)
		d2 := p2.Sub(p1)
		l1, l2 := d1.Len(), d2.Len()
		if l1 < 1e-9 || l2 < 1e-9 {
			continue
		}
		cosAngle := clamp(d1.Dot(d2)/(l1*l2), -1, 1)
		angle := math.Acos(cosAngle)
		if angle <= rp.BendingMaxAngle {
			continue
		}
		C := angle - rp.BendingMaxAngle
		wB := bodies[i2].Mass.InvMass()
		denom := wB + alphaHat
		if denom < 1e-12 {
			continue
		}
		lambdaBend := -C / denom
		turnSign := 1.0
		if cross2(d1, d2) < 0 {
			turnSign = -1
		}
		rotAngle := turnSign * lambdaBend * wB
		newRel := Rotate(RotationFromAngle(rotAngle), p2.Sub(p1))
		bodies[i2].Pose.Translation = p1.Add(newRel)
		bendCorrection[i+2] += rotAngle
	}
}

// solveConstraint is the Distance constraint positional projection.
func solveConstraint(bodies []*Body, c *Constraint, ownerIdx, targetIdx int, dtSq float64) {
	owner := dynamicParty(ownerIdx, c.OwnerOffset)
	var target contactParty
	if targetIdx < 0 {
		target = staticParty(c.TargetOffset)
	} else {
		target = dynamicParty(targetIdx, c.TargetOffset)
	}
	p0 := owner.worldPoint(bodies)
	p1 := target.worldPoint(bodies)
	d := p1.Sub(p0)
	dist := d.Len()
	C := c.Distance - dist
	if !c.satisfiesLimit(C) {
		return
	}
	n := safeNormalize(d)
	alphaHat := c.Compliance / dtSq
	w0 := effectiveInvMass(bodies, owner, n)
	w1 := effectiveInvMass(bodies, target, n)
	denom := w0 + w1 + alphaHat
	if denom < 1e-12 {
		return
	}
	lambda := -C / denom
	applyPositionalImpulse(bodies, owner, n, lambda, 1)
	applyPositionalImpulse(bodies, target, n, lambda, -1)
}

// dampConstraint is the post-substep constraint damping pass: it damps the
// relative point velocity by a factor clamp(linear_damping * dt, 0, 1),
// and angular velocity similarly.
func dampConstraint(bodies []*Body, c *Constraint, ownerIdx, targetIdx int, dt float64) {
	owner := dynamicParty(ownerIdx, c.OwnerOffset)
	var target contactParty
	if targetIdx < 0 {
		target = staticParty(c.TargetOffset)
	} else {
		target = dynamicParty(targetIdx, c.TargetOffset)
	}
	d := target.worldPoint(bodies).Sub(owner.worldPoint(bodies))
	n := safeNormalize(d)

	linFactor := clamp(c.LinearDamping*dt, 0, 1)
	if linFactor > 0 {
		relVel := velocityAt(bodies, target).Sub(velocityAt(bodies, owner))
		vAlong := relVel.Dot(n)
		dv := -vAlong * linFactor
		w0 := effectiveInvMass(bodies, owner, n)
		w1 := effectiveInvMass(bodies, target, n)
		denom := w0 + w1
		if denom > 1e-12 {
			impulse := dv / denom
			applyVelocityImpulse(bodies, owner, n, impulse, -1)
			applyVelocityImpulse(bodies, target, n, impulse, 1)
		}
	}

	angFactor := clamp(c.AngularDamping*dt, 0, 1)
	if angFactor <= 0 {
		return
	}
	if ownerIdx >= 0 {
		bodies[ownerIdx].AngularVelocity *= 1 - angFactor
	}
	if targetIdx >= 0 {
		bodies[targetIdx].AngularVelocity *= 1 - angFactor
	}
}

// dampRope is the rope's post-substep linear + bending velocity damping
// pass.
func dampRope(bodies []*Body, rp *Rope, particleIdx []int, dt float64, bendCorrection []float64) {
	dampFactor := clamp(rp.Damping*dt, 0, 1)
	if dampFactor > 0 {
		for i := 0; i+1 < len(particleIdx); i++ {
			a, b := particleIdx[i], particleIdx[i+1]
			ba, bb := bodies[a], bodies[b]
			d := bb.Pose.Translation.Sub(ba.Pose.Translation)
			n := safeNormalize(d)
			relVel := bb.LinearVelocity.Sub(ba.LinearVelocity)
			vAlong := relVel.Dot(n)
			dv := -vAlong * dampFactor
			wA, wB := ba.Mass.InvMass(), bb.Mass.InvMass()
			sum := wA + wB
			if sum < 1e-12 {
				continue
			}
			impulse := dv / sum
			ba.LinearVelocity = ba.LinearVelocity.Sub(n.Mul(impulse * wA))
			bb.LinearVelocity = bb.LinearVelocity.Add(n.Mul(impulse * wB))
		}
	}
	if rp.BendingMaxAngle <= 0 {
		return
	}
	for i, idx := range particleIdx {
		if bendCorrection[i] == 0 {
			continue
		}
		maxLateral := math.Abs(bendCorrection[i]) / dt
		b := bodies[idx]
		b.AngularVelocity = clamp(b.AngularVelocity, -maxLateral, maxLateral)
	}
}

// contactPartyFor maps a narrow-phase Contact.Offset (expressed relative
// to the collider's composed world pose) into a contactParty usable by the
// shared positional-correction helpers: for a dynamic side this is the
// offset re-expressed in the owning body's local frame (LocalPose.ToWorld
// converts collider-local to body-local); for a static/unattached side
// LocalPose already *is* the world pose, so the same call yields the fixed
// world point directly.
func contactPartyFor(bodyIdx int, localPose Pose, offset Vector) contactParty {
	if bodyIdx < 0 {
		return staticParty(localPose.ToWorld(offset))
	}
	return dynamicParty(bodyIdx, localPose.ToWorld(offset))
}

// solveContactPair runs the narrow phase fresh against the pair's current
// (substep-advanced) poses and projects every resulting contact point,
// caching the final geometry into cache for the velocity-domain pass.
func solveContactPair(bodies []*Body, pair *tickPair, ropeNeighbors map[int]ropeNeighbor, dtSq float64, cache *pairContactCache, firstSubstep bool) {
	if pair.BodyIdxA < 0 && pair.BodyIdxB < 0 {
		cache.Count = 0
		return
	}
	worldPoseA := pairWorldPose(bodies, pair.BodyIdxA, pair.LocalPoseA)
	worldPoseB := pairWorldPose(bodies, pair.BodyIdxB, pair.LocalPoseB)
	result := Collide(pair.ShapeA, worldPoseA, pair.ShapeB, worldPoseB)

	staticFriction, dynamicFriction, hasFriction := pairFriction(pair.MaterialA, pair.MaterialB)
	restitution := pairRestitution(pair.MaterialA, pair.MaterialB)

	n := len(result.Contacts)
	if n > 2 {
		n = 2
	}
	cache.Count = n
	for i := 0; i < n; i++ {
		c := result.Contacts[i]
		if nb, ok := ropeNeighbors[pair.BodyIdxA]; ok && pair.BodyIdxA >= 0 {
			if newN, applied := reorientRopeNormal(nb, pair.BodyIdxA, bodies, c.Normal); applied {
				c.Normal = newN
			}
		} else if nb, ok := ropeNeighbors[pair.BodyIdxB]; ok && pair.BodyIdxB >= 0 {
			if newN, applied := reorientRopeNormal(nb, pair.BodyIdxB, bodies, c.Normal); applied {
				c.Normal = newN
			}
		}

		partyA := contactPartyFor(pair.BodyIdxA, pair.LocalPoseA, c.OffsetA)
		partyB := contactPartyFor(pair.BodyIdxB, pair.LocalPoseB, c.OffsetB)

		r0 := partyA.worldPoint(bodies)
		r1 := partyB.worldPoint(bodies)
		depth := r0.Sub(r1).Dot(c.Normal)

		pt := &cache.Points[i]
		pt.PartyA, pt.PartyB = partyA, partyB
		pt.Normal = c.Normal
		pt.HasFriction, pt.StaticFriction, pt.DynamicFriction = hasFriction, staticFriction, dynamicFriction
		pt.Restitution = restitution

		if firstSubstep {
			vRel := velocityAt(bodies, partyA).Sub(velocityAt(bodies, partyB))
			pt.VNOld = vRel.Dot(c.Normal)
			pt.AExtSum = 0 // recorded by the caller once a_ext is known; see solveIsland
			pt.VNOldCaptured = true
		}

		if depth <= 0 {
			pt.LambdaN = 0
			continue
		}

		w0 := effectiveInvMass(bodies, partyA, c.Normal)
		w1 := effectiveInvMass(bodies, partyB, c.Normal)
		denom := w0 + w1
		if denom < 1e-12 {
			pt.LambdaN = 0
			continue
		}
		lambdaN := -depth / denom
		applyPositionalImpulse(bodies, partyA, c.Normal, lambdaN, 1)
		applyPositionalImpulse(bodies, partyB, c.Normal, lambdaN, -1)
		pt.LambdaN = lambdaN

		if !hasFriction {
			continue
		}
		t := perp(c.Normal)
		dsT := r0.Sub(r1).Dot(t)
		wt0 := effectiveInvMass(bodies, partyA, t)
		wt1 := effectiveInvMass(bodies, partyB, t)
		denomT := wt0 + wt1
		if denomT < 1e-12 {
			continue
		}
		lambdaT := -dsT / denomT
		if math.Abs(lambdaT) < staticFriction*math.Abs(lambdaN) {
			applyPositionalImpulse(bodies, partyA, t, lambdaT, 1)
			applyPositionalImpulse(bodies, partyB, t, lambdaT, -1)
		}
	}
}

func aExtOf(bodyIdx int, state []islandBodyState, localOf map[int]int) Vector {
	if bodyIdx < 0 {
		return VectorZero()
	}
	if li, ok := localOf[bodyIdx]; ok {
		return state[li].AExt
	}
	return VectorZero()
}

func pairWorldPose(bodies []*Body, bodyIdx int, localPose Pose) Pose {
	if bodyIdx < 0 {
		return localPose
	}
	b := bodies[bodyIdx]
	return Pose{
		Translation: b.Pose.ToWorld(localPose.Translation),
		Rotation:    RotationMul(b.Pose.Rotation, localPose.Rotation),
	}
}

// applyContactVelocityPass is the post-substep restitution + dynamic
// friction impulse for every cached contact point of one pair.
func applyContactVelocityPass(bodies []*Body, cache *pairContactCache, dt float64) {
	for i := 0; i < cache.Count; i++ {
		pt := &cache.Points[i]
		vRel := velocityAt(bodies, pt.PartyA).Sub(velocityAt(bodies, pt.PartyB))
		vN := vRel.Dot(pt.Normal)

		e := pt.Restitution
		if pt.VNOldCaptured && pt.VNOld*pt.VNOld < dt*dt*pt.AExtSum*pt.AExtSum {
			e = 0
		}
		vNOldPositive := math.Max(pt.VNOld, 0)
		dvN := -vN - e*vNOldPositive

		w0 := effectiveInvMass(bodies, pt.PartyA, pt.Normal)
		w1 := effectiveInvMass(bodies, pt.PartyB, pt.Normal)
		denom := w0 + w1
		if denom > 1e-12 {
			impulseN := dvN / denom
			applyVelocityImpulse(bodies, pt.PartyA, pt.Normal, impulseN, 1)
			applyVelocityImpulse(bodies, pt.PartyB, pt.Normal, impulseN, -1)
		}

		if !pt.HasFriction || dt <= 0 {
			continue
		}
		t := perp(pt.Normal)
		vRelT := velocityAt(bodies, pt.PartyA).Sub(velocityAt(bodies, pt.PartyB)).Dot(t)
		bound := math.Abs(pt.DynamicFriction * pt.LambdaN / dt)
		dvT := clamp(-vRelT, -bound, bound)
		wt0 := effectiveInvMass(bodies, pt.PartyA, t)
		wt1 := effectiveInvMass(bodies, pt.PartyB, t)
		denomT := wt0 + wt1
		if denomT < 1e-12 {
			continue
		}
		impulseT := dvT / denomT
		applyVelocityImpulse(bodies, pt.PartyA, t, impulseT, 1)
		applyVelocityImpulse(bodies, pt.PartyB, t, impulseT, -1)
	}
}

// AccelField is a caller-supplied external-acceleration field sampled at a
// body's world position every substep — typically gravity, but pluggable
// for wind, buoyancy, or any other spatially-varying force.
type AccelField func(pos Vector) Vector

// ConstantAccelField is the common case: a uniform field such as gravity.
func ConstantAccelField(a Vector) AccelField {
	return func(Vector) Vector { return a }
}

// publishContacts records one ContactInfo per pair that carried a non-zero
// normal impulse in the island's final substep (the values left in the
// cache); a pair that was only pushed apart in earlier substeps is not
// recorded.
func publishContacts(isl Island, buf *tickBuffers, caches []pairContactCache) []ContactInfo {
	id := IslandID{FirstBodySlot: isl.FirstBodySlot, EdgeSum: isl.EdgeSum}
	var out []ContactInfo
	for pi, idx := range isl.Pairs {
		cache := caches[pi]
		active := false
		for i := 0; i < cache.Count; i++ {
			if cache.Points[i].LambdaN != 0 {
				active = true
				break
			}
		}
		if !active {
			continue
		}
		pair := buf.Pairs[idx]
		out = append(out, ContactInfo{
			ColliderA: pair.ColliderA,
			ColliderB: pair.ColliderB,
			Normal:    cache.Points[0].Normal,
			Island:    id,
		})
	}
	return out
}
