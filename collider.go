package physics

// ColliderKind distinguishes solid colliders (which generate resolved
// contacts) from triggers (which are reported but never resolved).
type ColliderKind uint8

const (
	ColliderSolid ColliderKind = iota
	ColliderTrigger
)

// Collider is a geometric surface: a Shape, a kind, a collision layer, and
// an optional owning Body. An unattached Collider (Body is the zero
// Handle) is static, fixed in world space at LocalPose.
type Collider struct {
	Shape     Shape
	Kind      ColliderKind
	Material  Material
	Layer     int
	Body      Handle // zero Handle: unattached (static)
	LocalPose Pose   // offset from the owning body's pose, or world pose if unattached
}

// NewSolidCollider is a Solid(material) collider on the given layer.
func NewSolidCollider(shape Shape, material Material, layer int) Collider {
	return Collider{Shape: shape, Kind: ColliderSolid, Material: material, Layer: layer, LocalPose: PoseIdentity()}
}

// NewTriggerCollider is a Trigger collider on the given layer.
func NewTriggerCollider(shape Shape, layer int) Collider {
	return Collider{Shape: shape, Kind: ColliderTrigger, Layer: layer, LocalPose: PoseIdentity()}
}

// WorldPose composes the collider's LocalPose with its owning body's pose
// (or returns LocalPose unchanged if the collider is unattached/static).
func (c Collider) WorldPose(owner *Body) Pose {
	if owner == nil {
		return c.LocalPose
	}
	return Pose{
		Translation: owner.Pose.ToWorld(c.LocalPose.Translation),
		Rotation:    RotationMul(owner.Pose.Rotation, c.LocalPose.Rotation),
	}
}

// IsStatic reports whether the collider has no owning body.
func (c Collider) IsStatic() bool {
	return !c.Body.Valid()
}
