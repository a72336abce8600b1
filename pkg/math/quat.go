package math

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Quat represents a quaternion for 3D rotations.
// Storage is real-first (mgl32.Quat: W, then the vector part) while every
// constructor and accessor uses imaginary-first order (x, y, z, w).
type Quat struct {
	q mgl32.Quat
}

// NewQuat creates a quaternion from imaginary-first components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{mgl32.Quat{W: w, V: mgl32.Vec3{x, y, z}}}
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{mgl32.QuatIdent()}
}

// X returns the first imaginary component.
func (q Quat) X() float32 { return q.q.V[0] }

// Y returns the second imaginary component.
func (q Quat) Y() float32 { return q.q.V[1] }

// Z returns the third imaginary component.
func (q Quat) Z() float32 { return q.q.V[2] }

// W returns the scalar component.
func (q Quat) W() float32 { return q.q.W }

// QuatFromEulerAnglesRad builds a rotation from Euler angles in radians.
// The rotation applies X first, then Y, then Z (R = Rz * Ry * Rx).
func QuatFromEulerAnglesRad(x, y, z float32) Quat {
	return Quat{mgl32.AnglesToQuat(z, y, x, mgl32.ZYX)}
}

// QuatFromEulerRad is QuatFromEulerAnglesRad taking a Vec3.
func QuatFromEulerRad(angles Vec3) Quat {
	return QuatFromEulerAnglesRad(angles.X, angles.Y, angles.Z)
}

// QuatFromEulerAnglesDeg builds a rotation from Euler angles in degrees.
func QuatFromEulerAnglesDeg(x, y, z float32) Quat {
	return QuatFromEulerAnglesRad(x*DegToRad, y*DegToRad, z*DegToRad)
}

// QuatFromEulerDeg is QuatFromEulerAnglesDeg taking a Vec3.
func QuatFromEulerDeg(angles Vec3) Quat {
	return QuatFromEulerRad(angles.Scale(DegToRad))
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// The axis is normalized here; angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	return Quat{mgl32.QuatRotate(angle, axis.Normalize().MGL())}
}

// ToEulerAnglesRad extracts (pitch, yaw, roll) in radians, inverting
// QuatFromEulerAnglesRad. Near gimbal lock (yaw = ±pi/2) the split between
// pitch and roll is not unique.
func (q Quat) ToEulerAnglesRad() Vec3 {
	w, x, y, z := q.W(), q.X(), q.Y(), q.Z()

	py := 2 * (y*z + w*x)
	px := w*w - x*x - y*y + z*z
	var pitch float32
	if abs32(px) < Epsilon && abs32(py) < Epsilon {
		pitch = 2 * atan2(x, w)
	} else {
		pitch = atan2(py, px)
	}

	yaw := float32(gomath.Asin(float64(clamp32(-2*(x*z-w*y), -1, 1))))
	roll := atan2(2*(x*y+w*z), w*w+x*x-y*y-z*z)

	return Vec3{pitch, yaw, roll}
}

// ToEulerAnglesDeg is ToEulerAnglesRad in degrees.
func (q Quat) ToEulerAnglesDeg() Vec3 {
	return q.ToEulerAnglesRad().Scale(RadToDeg)
}

// ToMatrix converts the quaternion to a 4x4 rotation matrix.
func (q Quat) ToMatrix() Mat4 {
	return Mat4(q.q.Mat4())
}

// Normalize returns a normalized quaternion. A zero quaternion becomes
// the identity.
func (q Quat) Normalize() Quat {
	return Quat{q.q.Normalize()}
}

// Len returns the quaternion's length.
func (q Quat) Len() float32 {
	return q.q.Len()
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.q.Dot(other.q)
}

// Mul multiplies two quaternions (q applied after other).
func (q Quat) Mul(other Quat) Quat {
	return Quat{q.q.Mul(other.q)}
}

// Conjugate returns the inverse rotation of a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{q.q.Conjugate()}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	return Vec3FromMGL(q.q.Rotate(v.MGL()))
}

// Slerp performs spherical linear interpolation between two quaternions
// along the shorter arc. t should be in range [0, 1].
func (q Quat) Slerp(other Quat, t float32) Quat {
	return Quat{mgl32.QuatSlerp(q.q, other.q, t)}
}

// Lerp blends linearly and renormalizes. Use Slerp for constant angular
// velocity.
func (q Quat) Lerp(other Quat, t float32) Quat {
	return Quat{mgl32.QuatNlerp(q.q, other.q, t)}
}

// ApproxEqual reports whether every component differs by at most eps.
func (q Quat) ApproxEqual(other Quat, eps float32) bool {
	return abs32(q.q.W-other.q.W) <= eps &&
		abs32(q.q.V[0]-other.q.V[0]) <= eps &&
		abs32(q.q.V[1]-other.q.V[1]) <= eps &&
		abs32(q.q.V[2]-other.q.V[2]) <= eps
}

func (q Quat) String() string {
	return formatComponents(q.X(), q.Y(), q.Z(), q.W())
}

func atan2(y, x float32) float32 {
	return float32(gomath.Atan2(float64(y), float64(x)))
}
