package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is a 2D point or direction. All physics math in this package uses
// float64 so that a single-threaded tick is bitwise reproducible frame to
// frame, per the determinism requirements of the solver.
type Vector = mgl64.Vec2

// VectorZero returns the zero vector.
func VectorZero() Vector {
	return Vector{0, 0}
}

// Rotation is a unit rotation, represented as a 2x2 orthogonal matrix built
// from Rotate2D. Composing two rotations is matrix multiplication; inverting
// one is a transpose, cheaper than re-deriving sin/cos from an angle.
type Rotation = mgl64.Mat2

// RotationIdentity is the zero-angle rotation.
func RotationIdentity() Rotation {
	return mgl64.Ident2()
}

// RotationFromAngle builds a Rotation from an angle in radians.
func RotationFromAngle(radians float64) Rotation {
	return mgl64.Rotate2D(radians)
}

// Angle extracts the angle, in radians, encoded by r.
func Angle(r Rotation) float64 {
	return math.Atan2(r[1], r[0])
}

// RotationInverse returns the inverse (= transpose) of an orthogonal
// rotation matrix.
func RotationInverse(r Rotation) Rotation {
	return r.Transpose()
}

// Rotate applies rotation r to vector v.
func Rotate(r Rotation, v Vector) Vector {
	return r.Mul2x1(v)
}

// RotationMul composes two rotations (a then b, i.e. b*a applied to the
// right).
func RotationMul(a, b Rotation) Rotation {
	return b.Mul2(a)
}

// leftNormal returns the vector v rotated 90 degrees counter-clockwise —
// the tangent direction used throughout the solver for friction and rope
// bending corrections.
func leftNormal(v Vector) Vector {
	return Vector{-v[1], v[0]}
}

// perp is an alias kept for readability at call sites that think of it as
// "perpendicular" rather than "left normal".
func perp(v Vector) Vector {
	return leftNormal(v)
}

// cross2 is the 2D scalar cross product (z-component of the 3D cross of
// (x,y,0) vectors), used throughout the solver for r × n torque arms.
func cross2(a, b Vector) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// crossScalarVec rotates v by 90 degrees and scales it by s; this is the 2D
// analogue of the cross product of a scalar (angular velocity) with a
// vector (lever arm), i.e. s × v in the z-axis-only sense.
func crossScalarVec(s float64, v Vector) Vector {
	return Vector{-s * v[1], s * v[0]}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func approxZero(v float64) bool {
	return math.Abs(v) < 1e-12
}

// safeNormalize normalizes v, defaulting to the +y axis when v is too small
// to normalize safely (a zero-length constraint direction has to default to
// something rather than divide by zero).
func safeNormalize(v Vector) Vector {
	l := v.Len()
	if l < 1e-9 {
		return Vector{0, 1}
	}
	return v.Mul(1 / l)
}
