package physics

// Pose is a rigid 2D transform: a translation and a rotation. Bodies and
// static colliders both carry one; shapes are always expressed relative to
// a Pose when tested or rendered.
type Pose struct {
	Translation Vector
	Rotation    Rotation
}

// PoseIdentity returns the identity pose (origin, no rotation).
func PoseIdentity() Pose {
	return Pose{Translation: VectorZero(), Rotation: RotationIdentity()}
}

// PoseAt builds a pose from a translation and an angle in radians.
func PoseAt(pos Vector, angleRadians float64) Pose {
	return Pose{Translation: pos, Rotation: RotationFromAngle(angleRadians)}
}

// ToWorld maps a local-space offset to world space: p.Rotation*offset +
// p.Translation. This is the "pose_i · offset_i" operation used throughout
// the constraint and contact projection.
func (p Pose) ToWorld(localOffset Vector) Vector {
	return Rotate(p.Rotation, localOffset).Add(p.Translation)
}

// ToLocal is the inverse of ToWorld.
func (p Pose) ToLocal(worldPoint Vector) Vector {
	return RotationInverse(p.Rotation).Mul2x1(worldPoint.Sub(p.Translation))
}

// RotateDir rotates a direction (no translation) into world space.
func (p Pose) RotateDir(localDir Vector) Vector {
	return Rotate(p.Rotation, localDir)
}

// Angle returns the pose's orientation in radians.
func (p Pose) Angle() float64 {
	return Angle(p.Rotation)
}

// Integrate advances the pose by an explicit Euler step: translation by
// linear velocity * dt, rotation by angular velocity * dt.
func (p Pose) Integrate(dt float64, linVel Vector, angVel float64) Pose {
	return Pose{
		Translation: p.Translation.Add(linVel.Mul(dt)),
		Rotation:    RotationMul(p.Rotation, RotationFromAngle(angVel*dt)),
	}
}

// relativeAngle returns the signed angle of (a * b^-1), used to derive
// post-substep angular velocity from a pose delta.
func relativeAngle(a, b Rotation) float64 {
	return Angle(RotationMul(RotationInverse(b), a))
}
