package physics

// MassKind is a body's mass descriptor: either Infinite (static/kinematic —
// never moved by the solver) or Finite, carrying a mass and moment of
// inertia.
type MassKind struct {
	Infinite        bool
	Mass            float64
	MomentOfInertia float64
}

// InfiniteMass is the mass descriptor for static and kinematic bodies.
func InfiniteMass() MassKind {
	return MassKind{Infinite: true}
}

// FiniteMass is the mass descriptor for ordinary dynamic bodies.
func FiniteMass(mass, momentOfInertia float64) MassKind {
	return MassKind{Mass: mass, MomentOfInertia: momentOfInertia}
}

// InvMass returns 1/Mass, or 0 for an infinite-mass body.
func (m MassKind) InvMass() float64 {
	if m.Infinite || m.Mass <= 0 {
		return 0
	}
	return 1 / m.Mass
}

// InvInertia returns 1/MomentOfInertia, or 0 for an infinite-mass body.
func (m MassKind) InvInertia() float64 {
	if m.Infinite || m.MomentOfInertia <= 0 {
		return 0
	}
	return 1 / m.MomentOfInertia
}

// SeesForces reports whether the solver should integrate this body against
// external accelerations: only finite-mass bodies do.
func (m MassKind) SeesForces() bool {
	return !m.Infinite
}

// Body is a rigid body: a pose, a velocity, and a mass descriptor. It
// carries no reference to its colliders or constraints — those
// relationships live in the owning Collider/Constraint's own Handle field,
// keeping each arena's entries self-contained.
type Body struct {
	Pose            Pose
	LinearVelocity  Vector
	AngularVelocity float64
	Mass            MassKind
}

// NewStaticBody is a body with infinite mass fixed at pose.
func NewStaticBody(pose Pose) Body {
	return Body{Pose: pose, Mass: InfiniteMass()}
}

// NewDynamicBody is a body with finite mass, initially at rest at pose.
func NewDynamicBody(pose Pose, mass, momentOfInertia float64) Body {
	return Body{Pose: pose, Mass: FiniteMass(mass, momentOfInertia)}
}

// speedSquared is the ‖v‖² the sleep heuristic compares against its
// velocity threshold squared.
func (b Body) speedSquared() float64 {
	return b.LinearVelocity.Dot(b.LinearVelocity)
}
