package physics

// World owns every arena (bodies, colliders, constraints, ropes), the
// broad-phase tree, the sleep manager and the published contact history —
// the single entry point callers drive a simulation through.
type World struct {
	bodies      *arena[Body]
	colliders   *arena[Collider]
	constraints *arena[Constraint]
	ropes       *arena[Rope]

	bvh     *BVH
	history *contactHistory
	sleep   *sleepManager
	tuning  TuningConstants
	logger  Logger

	lastIslands      []Island
	lastBodyHandles  []Handle // dense index -> handle, as of the most recent Tick
}

// NewWorld builds an empty world under the given tuning. Returns an error if
// tuning is invalid (Substeps == 0 is rejected at construction).
func NewWorld(tuning TuningConstants) (*World, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	return &World{
		bodies:      newArena[Body](),
		colliders:   newArena[Collider](),
		constraints: newArena[Constraint](),
		ropes:       newArena[Rope](),
		bvh:         NewBVH(),
		history:     newContactHistory(),
		sleep:       newSleepManager(),
		tuning:      tuning,
		logger:      noopLogger{},
	}, nil
}

// SetLogger installs l as the world's diagnostic logger (nil restores the
// silent default).
func (w *World) SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	w.logger = l
}

// Tuning returns the world's current tuning constants.
func (w *World) Tuning() TuningConstants { return w.tuning }

// InsertBody adds b to the world and returns its handle.
func (w *World) InsertBody(b Body) Handle { return w.bodies.insert(b) }

// GetBody returns a copy of the body at h.
func (w *World) GetBody(h Handle) (Body, bool) { return w.bodies.get(h) }

// SetBody overwrites the body at h; used by callers to move kinematic
// bodies between ticks.
func (w *World) SetBody(h Handle, b Body) bool { return w.bodies.set(h, b) }

// RemoveBody destroys the body at h, along with every collider and
// constraint that referenced it.
func (w *World) RemoveBody(h Handle) bool {
	if !w.bodies.remove(h) {
		return false
	}
	var deadColliders []Handle
	w.colliders.each(func(ch Handle, c *Collider) {
		if c.Body == h {
			deadColliders = append(deadColliders, ch)
		}
	})
	for _, ch := range deadColliders {
		w.colliders.remove(ch)
	}
	var deadConstraints []Handle
	w.constraints.each(func(ch Handle, c *Constraint) {
		if c.Owner == h || c.Target == h {
			deadConstraints = append(deadConstraints, ch)
		}
	})
	for _, ch := range deadConstraints {
		w.constraints.remove(ch)
	}
	var deadRopes []Handle
	w.ropes.each(func(rh Handle, r *Rope) {
		for _, ph := range r.Particles {
			if ph == h {
				deadRopes = append(deadRopes, rh)
				return
			}
		}
	})
	for _, rh := range deadRopes {
		w.ropes.remove(rh)
	}
	return true
}

// AttachCollider attaches c to body and returns its handle.
func (w *World) AttachCollider(body Handle, c Collider) Handle {
	c.Body = body
	return w.colliders.insert(c)
}

// AttachStaticCollider inserts c unattached, fixed in world space at its
// LocalPose (a collider with no owning body is static).
func (w *World) AttachStaticCollider(c Collider) Handle {
	c.Body = Handle{}
	return w.colliders.insert(c)
}

// GetCollider returns a copy of the collider at h.
func (w *World) GetCollider(h Handle) (Collider, bool) { return w.colliders.get(h) }

// RemoveCollider destroys the collider at h.
func (w *World) RemoveCollider(h Handle) bool { return w.colliders.remove(h) }

// AddConstraint adds c and returns its handle.
func (w *World) AddConstraint(c Constraint) Handle { return w.constraints.insert(c) }

// GetConstraint returns a copy of the constraint at h.
func (w *World) GetConstraint(h Handle) (Constraint, bool) { return w.constraints.get(h) }

// RemoveConstraint destroys the constraint at h.
func (w *World) RemoveConstraint(h Handle) bool { return w.constraints.remove(h) }

// AddRope adds r and returns its handle.
func (w *World) AddRope(r Rope) Handle { return w.ropes.insert(r) }

// GetRope returns a copy of the rope at h.
func (w *World) GetRope(h Handle) (Rope, bool) { return w.ropes.get(h) }

// RemoveRope destroys the rope at h (its particle bodies are left intact —
// a rope's identity is only the connective layer).
func (w *World) RemoveRope(h Handle) bool { return w.ropes.remove(h) }

// Clear empties every arena and resets all derived state (the BVH, the
// sleep manager, and the contact history). All previously issued handles
// become invalid.
func (w *World) Clear() {
	w.bodies.clear()
	w.colliders.clear()
	w.constraints.clear()
	w.ropes.clear()
	w.bvh.Clear()
	w.history = newContactHistory()
	w.sleep = newSleepManager()
	w.lastIslands = nil
	w.lastBodyHandles = nil
}

// Islands returns the islands computed by the most recent Tick, for
// debugging/visualization.
func (w *World) Islands() []Island { return w.lastIslands }

// WakeBody forces h's island back to awake immediately, resetting its
// fall-asleep counter, without waiting for a new contact/constraint to
// change the island's topology. An external force or impulse applied
// between ticks should wake a sleeping island right away, rather than
// waiting for the next topology change to do it implicitly. Reports false
// if h wasn't part of any island as of the most recent Tick.
func (w *World) WakeBody(h Handle) bool {
	idx := -1
	for i, bh := range w.lastBodyHandles {
		if bh == h {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	for _, isl := range w.lastIslands {
		for _, bi := range isl.Bodies {
			if bi == idx {
				w.sleep.wake(isl.FirstBodySlot, isl.EdgeSum)
				return true
			}
		}
	}
	return false
}

// Tick advances the simulation by one frame of duration dtFrame, scaled by
// timeScale (timeScale lets a caller run in slow motion without changing
// the substep count's granularity). accel supplies the
// external acceleration field; a nil accel defaults to standard gravity.
func (w *World) Tick(dtFrame, timeScale float64, accel AccelField) {
	if accel == nil {
		accel = ConstantAccelField(Vector{0, -9.81})
	}

	buf := w.buildTickBuffers(dtFrame)
	islands := buildIslands(buf)

	bodyPtrs := make([]*Body, len(buf.Bodies))
	for i, h := range buf.Bodies {
		bodyPtrs[i] = w.bodies.getPtr(h)
		assert(bodyPtrs[i] != nil, "buildTickBuffers produced a handle that is no longer live")
	}

	asleep := w.sleep.update(islands, bodyPtrs, w.tuning)

	awake := make([]Island, 0, len(islands))
	for i, isl := range islands {
		if asleep[i] {
			continue
		}
		awake = append(awake, isl)
	}

	groups := bucketIslands(awake, w.tuning.WorkerCount, w.tuning.MinBodiesPerThread)
	published := make([][]ContactInfo, len(awake))
	runIslandGroups(groups, func(idx int) {
		published[idx] = solveIsland(awake[idx], &buf, bodyPtrs, w.tuning, accel, dtFrame, timeScale)
	})

	live := make(map[IslandID]bool, len(islands))
	for _, isl := range islands {
		live[IslandID{isl.FirstBodySlot, isl.EdgeSum}] = true
	}
	for i, isl := range awake {
		id := IslandID{isl.FirstBodySlot, isl.EdgeSum}
		w.history.replace(id, published[i])
	}
	w.history.prune(live)

	w.lastIslands = islands
	w.lastBodyHandles = buf.Bodies
}

// colliderInfo is buildTickBuffers' scratch record for one live collider:
// its resolved owner (if any finite-mass body owns it), and the world/local
// poses the broad and narrow phases need for this tick.
type colliderInfo struct {
	handle      Handle
	shape       Shape
	material    Material
	layer       int
	kind        ColliderKind
	bodyIdx     int // -1 if static for this tick (unattached, or owned by an infinite-mass body)
	worldPose   Pose
	localPose   Pose // relative to bodyIdx's body if dynamic, else == worldPose
	inflatedBox AABB
}

// buildTickBuffers resolves the arenas into one frame's working buffers:
// dense body indices, rope/constraint/pair snapshots, and a freshly rebuilt
// BVH over motion-inflated AABBs.
func (w *World) buildTickBuffers(dtFrame float64) tickBuffers {
	var buf tickBuffers

	denseIdx := make(map[Handle]int)
	w.bodies.each(func(h Handle, b *Body) {
		if !b.Mass.SeesForces() {
			return
		}
		denseIdx[h] = len(buf.Bodies)
		buf.Bodies = append(buf.Bodies, h)
	})

	w.bvh.Clear()
	var infos []colliderInfo
	w.colliders.each(func(ch Handle, c *Collider) {
		var owner *Body
		bodyIdx := -1
		if c.Body.Valid() {
			if b := w.bodies.getPtr(c.Body); b != nil {
				if idx, ok := denseIdx[c.Body]; ok {
					owner = b
					bodyIdx = idx
				} else {
					// Owned by a live but infinite-mass (static/kinematic)
					// body: this tick, that collider behaves as static —
					// its current world pose is frozen for the duration of
					// the tick. StaticContact/StaticConstraint edges never
					// merge islands through a non-dynamic body.
					owner = b
				}
			}
		}
		world := c.WorldPose(owner)
		info := colliderInfo{
			handle: ch, shape: c.Shape, material: c.Material, layer: c.Layer,
			kind: c.Kind, bodyIdx: bodyIdx, worldPose: world,
		}
		if bodyIdx >= 0 {
			info.localPose = c.LocalPose
		} else {
			info.localPose = world
		}

		var vel Vector
		if bodyIdx >= 0 {
			vel = owner.LinearVelocity
		}
		box := c.Shape.AABB(world)
		pad := vel.Mul(dtFrame).Len() + w.tuning.MaxExpectedAcceleration*dtFrame
		info.inflatedBox = box.Expand(pad)
		infos = append(infos, info)
		w.bvh.Insert(ch, info.inflatedBox)
	})

	byHandle := make(map[Handle]int, len(infos))
	for i, inf := range infos {
		byHandle[inf.handle] = i
	}

	for i := range infos {
		a := &infos[i]
		if a.kind != ColliderSolid {
			continue
		}
		w.bvh.QueryAABB(a.inflatedBox, func(h Handle) {
			j, ok := byHandle[h]
			if !ok || j <= i {
				return
			}
			b := &infos[j]
			if b.kind != ColliderSolid {
				return
			}
			if a.bodyIdx >= 0 && a.bodyIdx == b.bodyIdx {
				return // compound colliders on the same body never collide
			}
			if a.bodyIdx < 0 && b.bodyIdx < 0 {
				return // static/static: nothing for the solver to do
			}
			if !w.tuning.layersCollide(a.layer, b.layer) {
				return
			}
			buf.Pairs = append(buf.Pairs, tickPair{
				ColliderA: a.handle, ColliderB: b.handle,
				BodyIdxA: a.bodyIdx, BodyIdxB: b.bodyIdx,
				ShapeA: a.shape, ShapeB: b.shape,
				MaterialA: a.material, MaterialB: b.material,
				LocalPoseA: a.localPose, LocalPoseB: b.localPose,
			})
		})
	}

	w.ropes.each(func(rh Handle, r *Rope) {
		particleIdx := make([]int, 0, len(r.Particles))
		for _, ph := range r.Particles {
			idx, ok := denseIdx[ph]
			if !ok {
				w.logger.Warnf("phys2d: rope %v references a non-dynamic or stale particle, skipping", rh)
				return
			}
			particleIdx = append(particleIdx, idx)
		}
		if len(particleIdx) < 2 {
			return
		}
		buf.Ropes = append(buf.Ropes, tickRope{Handle: rh, Data: *r, ParticleIdx: particleIdx})
	})

	w.constraints.each(func(ch Handle, c *Constraint) {
		ownerIdx, ok := denseIdx[c.Owner]
		if !ok {
			w.logger.Warnf("phys2d: constraint %v has no live dynamic owner, skipping", ch)
			return
		}
		data := *c
		targetIdx := -1
		if c.Target.Valid() {
			if idx, found := denseIdx[c.Target]; found {
				targetIdx = idx
			} else if tb, found := w.bodies.get(c.Target); found {
				data.TargetOffset = tb.Pose.ToWorld(c.TargetOffset)
			} else {
				w.logger.Warnf("phys2d: constraint %v target handle is stale, holding last offset as a world anchor", ch)
			}
		}
		buf.Constraints = append(buf.Constraints, tickConstraint{Handle: ch, Data: data, OwnerIdx: ownerIdx, TargetIdx: targetIdx})
	})

	return buf
}
