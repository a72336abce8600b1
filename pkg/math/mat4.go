package math

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Mat4 is a 4x4 matrix in column-major order (same layout as mgl32.Mat4).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// Columns 0-2 hold the X/Y/Z basis vectors and column 3 the translation.
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4(mgl32.Ident4())
}

// ZeroMat4 returns the matrix with every element zero.
func ZeroMat4() Mat4 {
	return Mat4{}
}

// NegIdentity returns -1 on the diagonal.
func NegIdentity() Mat4 {
	return Diagonal(-1)
}

// Diagonal returns d placed along the diagonal (a scaled identity).
func Diagonal(d float32) Mat4 {
	return Mat4{
		d, 0, 0, 0,
		0, d, 0, 0,
		0, 0, d, 0,
		0, 0, 0, d,
	}
}

// Mat4FromCols builds a matrix from four columns.
func Mat4FromCols(c0, c1, c2, c3 Vec4) Mat4 {
	return Mat4(mgl32.Mat4FromCols(c0.MGL(), c1.MGL(), c2.MGL(), c3.MGL()))
}

// At returns the element at row, col.
func (m Mat4) At(row, col int) float32 {
	return m[col*4+row]
}

// FromPosition returns a translation matrix built directly from p.
func FromPosition(p Vec3) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = p.X, p.Y, p.Z
	return m
}

// FromScale returns a scale matrix built directly from s.
func FromScale(s Vec3) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = s.X, s.Y, s.Z
	return m
}

// FromRotation returns the rotation for Euler angles in radians, built
// through QuatFromEulerRad so both paths share one composition order.
func FromRotation(euler Vec3) Mat4 {
	return QuatFromEulerRad(euler).ToMatrix()
}

// FromRotationDeg is FromRotation with angles in degrees.
func FromRotationDeg(eulerDeg Vec3) Mat4 {
	return FromRotation(eulerDeg.Scale(DegToRad))
}

// ClipCorrection flips Y and Z, taking a right-handed Y-up view space into
// the Y-down, +Z-forward space the projection builders expect.
func ClipCorrection() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, -1, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, 1,
	}
}

// FromPerspective returns a right-handed perspective projection into a
// Y-down clip space with depth in [0, 1]. fovYDeg is the vertical field of
// view in degrees, aspect is width/height.
func FromPerspective(fovYDeg, aspect, near, far float32) Mat4 {
	focal := float32(1 / gomath.Tan(float64(fovYDeg*DegToRad)/2))
	a := far / (far - near)
	b := -near * a

	p := Mat4{
		focal / aspect, 0, 0, 0,
		0, focal, 0, 0,
		0, 0, a, 1,
		0, 0, b, 0,
	}
	return p.Mul(ClipCorrection())
}

// FromOrthographic maps the box [left,right]x[bottom,top]x[-near,-far] of
// a right-handed view space onto the same clip space as FromPerspective.
func FromOrthographic(left, right, bottom, top, near, far float32) Mat4 {
	scale := Vec3{
		X: 2 / (right - left),
		Y: 2 / (top - bottom),
		Z: 1 / (far - near),
	}
	// Offsets are expressed in the flipped space (y and z negated).
	offset := Vec3{
		X: -(right + left) / 2,
		Y: (top + bottom) / 2,
		Z: -near,
	}
	return FromScale(scale).WithTranslation(offset).Mul(ClipCorrection())
}

// FromOrthographicSize is FromOrthographic for a volume centred on the
// view axis.
func FromOrthographicSize(width, height, near, far float32) Mat4 {
	return FromOrthographic(-width/2, width/2, -height/2, height/2, near, far)
}

// LookAt returns a view matrix looking from eye to center with up direction.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	return Mat4(mgl32.Mat4(m).Mul4(mgl32.Mat4(other)))
}

// MulAssign replaces m with m * other.
func (m *Mat4) MulAssign(other Mat4) *Mat4 {
	*m = m.Mul(other)
	return m
}

// MulVec4 multiplies the matrix by a Vec4. Points need w = 1 for the
// translation to apply; directions (w = 0) ignore it.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4FromMGL(mgl32.Mat4(m).Mul4x1(v.MGL()))
}

// TransformPoint transforms a 3D point (w = 1) and divides by the
// resulting w.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.MulVec4(CreatePointVec(p)).ToPoint().XYZ()
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return m.MulVec4(CreateVectorVec(d)).XYZ()
}

// Hadamard returns the element-wise product of all 16 entries.
func (m Mat4) Hadamard(other Mat4) Mat4 {
	var r Mat4
	for i := range r {
		r[i] = m[i] * other[i]
	}
	return r
}

// WithTranslation returns m * T(d).
func (m Mat4) WithTranslation(d Vec3) Mat4 {
	return m.Mul(Mat4(mgl32.Translate3D(d.X, d.Y, d.Z)))
}

// WithScale returns m * S(s).
func (m Mat4) WithScale(s Vec3) Mat4 {
	return m.Mul(Mat4(mgl32.Scale3D(s.X, s.Y, s.Z)))
}

// WithRotation returns m * R, R rotating angle radians about axis.
func (m Mat4) WithRotation(angle float32, axis Vec3) Mat4 {
	return m.Mul(Mat4(mgl32.HomogRotate3D(angle, axis.Normalize().MGL())))
}

// WithRotationDeg is WithRotation with the angle in degrees.
func (m Mat4) WithRotationDeg(angleDeg float32, axis Vec3) Mat4 {
	return m.WithRotation(angleDeg*DegToRad, axis)
}

// WithRotationEuler returns m * FromRotation(euler).
func (m Mat4) WithRotationEuler(euler Vec3) Mat4 {
	return m.Mul(FromRotation(euler))
}

// WithRotationEulerDeg returns m * FromRotationDeg(eulerDeg).
func (m Mat4) WithRotationEulerDeg(eulerDeg Vec3) Mat4 {
	return m.Mul(FromRotationDeg(eulerDeg))
}

// WithRotationQuat returns m * q.ToMatrix().
func (m Mat4) WithRotationQuat(q Quat) Mat4 {
	return m.Mul(q.ToMatrix())
}

// WithInverse returns the inverse of m. A singular m yields the zero
// matrix; use InverseChecked to get an error instead.
func (m Mat4) WithInverse() Mat4 {
	return Mat4(mgl32.Mat4(m).Inv())
}

// InverseChecked returns the inverse of m or ErrSingularMatrix.
func (m Mat4) InverseChecked() (Mat4, error) {
	if det := m.Det(); mgl32.FloatEqual(det, 0) {
		return Mat4{}, fmt.Errorf("inverting matrix with determinant %g: %w", det, ErrSingularMatrix)
	}
	return m.WithInverse(), nil
}

// WithTranspose returns the transpose of m.
func (m Mat4) WithTranspose() Mat4 {
	return Mat4(mgl32.Mat4(m).Transpose())
}

// Det returns the determinant.
func (m Mat4) Det() float32 {
	return mgl32.Mat4(m).Det()
}

// Translate replaces m with m.WithTranslation(d).
func (m *Mat4) Translate(d Vec3) *Mat4 {
	*m = m.WithTranslation(d)
	return m
}

// Scale replaces m with m.WithScale(s).
func (m *Mat4) Scale(s Vec3) *Mat4 {
	*m = m.WithScale(s)
	return m
}

// Rotate replaces m with m.WithRotation(angle, axis).
func (m *Mat4) Rotate(angle float32, axis Vec3) *Mat4 {
	*m = m.WithRotation(angle, axis)
	return m
}

// RotateDeg replaces m with m.WithRotationDeg(angleDeg, axis).
func (m *Mat4) RotateDeg(angleDeg float32, axis Vec3) *Mat4 {
	*m = m.WithRotationDeg(angleDeg, axis)
	return m
}

// RotateEuler replaces m with m.WithRotationEuler(euler).
func (m *Mat4) RotateEuler(euler Vec3) *Mat4 {
	*m = m.WithRotationEuler(euler)
	return m
}

// RotateEulerDeg replaces m with m.WithRotationEulerDeg(eulerDeg).
func (m *Mat4) RotateEulerDeg(eulerDeg Vec3) *Mat4 {
	*m = m.WithRotationEulerDeg(eulerDeg)
	return m
}

// RotateQuat replaces m with m.WithRotationQuat(q).
func (m *Mat4) RotateQuat(q Quat) *Mat4 {
	*m = m.WithRotationQuat(q)
	return m
}

// Inverse replaces m with its inverse.
func (m *Mat4) Inverse() *Mat4 {
	*m = m.WithInverse()
	return m
}

// Transpose replaces m with its transpose.
func (m *Mat4) Transpose() *Mat4 {
	*m = m.WithTranspose()
	return m
}

// XBasis returns column 0.
func (m Mat4) XBasis() Vec4 { return Vec4{m[0], m[1], m[2], m[3]} }

// YBasis returns column 1.
func (m Mat4) YBasis() Vec4 { return Vec4{m[4], m[5], m[6], m[7]} }

// ZBasis returns column 2.
func (m Mat4) ZBasis() Vec4 { return Vec4{m[8], m[9], m[10], m[11]} }

// Translation returns column 3, w included.
func (m Mat4) Translation() Vec4 { return Vec4{m[12], m[13], m[14], m[15]} }

// Position is an alias of Translation.
func (m Mat4) Position() Vec4 { return m.Translation() }

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat4) ApproxEqual(other Mat4, eps float32) bool {
	for i := range m {
		if abs32(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// Ptr returns a pointer to the first element (for graphics API uploads).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// String renders one row per line; the store is column-major.
func (m Mat4) String() string {
	var b strings.Builder
	for row := 0; row < 4; row++ {
		b.WriteString("| ")
		for col := 0; col < 4; col++ {
			fmt.Fprintf(&b, "%10.4g ", m.At(row, col))
		}
		b.WriteString("|\n")
	}
	return b.String()
}
