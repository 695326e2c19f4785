package physics

// Rope is a sequence of particle bodies held at a fixed inter-particle
// spacing, with an optional bending limit. A rope's identity is a layer
// node in the interaction graph; the particles themselves are ordinary
// bodies referenced by handle.
type Rope struct {
	Particles []Handle

	Spacing    float64
	Compliance float64

	BendingMaxAngle   float64
	BendingCompliance float64

	Damping float64
}

// NewRope builds a rope over an ordered sequence of particle body handles.
// A rope with fewer than two particles is a caller logic bug; phys2d does
// not validate this at construction (doing so would
// require NewRope to return an error purely for caller misuse, which the
// rest of this package's construction APIs don't do either) — the solver
// simply has nothing to project for a singleton rope, which is memory-safe
// and undefined only in the sense that nothing visibly happens.
func NewRope(particles []Handle, spacing, compliance float64) Rope {
	return Rope{Particles: particles, Spacing: spacing, Compliance: compliance}
}
