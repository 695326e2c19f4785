package physics

// tickRope is a rope's per-tick working entry: ParticleIdx is the rope's
// particles resolved to dense indices into tickBuffers.Bodies. Data is a
// by-value snapshot of the arena's Rope so the solver's substep loop never
// re-touches the arena.
type tickRope struct {
	Handle      Handle
	Data        Rope
	ParticleIdx []int
}

// tickConstraint is a constraint's per-tick working entry. TargetIdx is -1
// when the constraint targets a world-fixed anchor rather than a second
// dynamic body.
type tickConstraint struct {
	Handle    Handle
	Data      Constraint
	OwnerIdx  int
	TargetIdx int
}

// tickPair is one broad-phase candidate collider pair, resolved to owning
// dense body indices (either side is -1 when that collider's owner is a
// static or ownerless body) and snapshotted shape/material/local-pose data
// so the narrow phase never re-touches the collider arena mid-substep.
type tickPair struct {
	ColliderA, ColliderB Handle
	BodyIdxA, BodyIdxB   int
	ShapeA, ShapeB       Shape
	MaterialA, MaterialB Material
	LocalPoseA, LocalPoseB Pose
}

// tickBuffers holds the four per-frame working buffers the island builder
// partitions: bodies, ropes, constraints and the broad-phase pair list.
// All cross-references inside the other three buffers are dense indices
// into Bodies.
type tickBuffers struct {
	Bodies      []Handle
	Ropes       []tickRope
	Constraints []tickConstraint
	Pairs       []tickPair
}
