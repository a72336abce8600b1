package math

import (
	"fmt"
	"sync"
)

// Vec4 is a homogeneous vector. By convention W == 1 marks a point and
// W == 0 a direction; any other W is a valid intermediate value, for
// example a clip-space position before the perspective divide.
type Vec4 struct {
	X, Y, Z, W float32
}

// Vec4Zero returns (0, 0, 0, 0).
func Vec4Zero() Vec4 { return Vec4{} }

// Vec4Origin returns the origin point (0, 0, 0, 1).
func Vec4Origin() Vec4 { return Vec4{0, 0, 0, 1} }

// Vec4One returns (1, 1, 1, 1).
func Vec4One() Vec4 { return Vec4{1, 1, 1, 1} }

// Vec4NegOne returns (-1, -1, -1, -1).
func Vec4NegOne() Vec4 { return Vec4{-1, -1, -1, -1} }

// Vec4Right returns the direction (1, 0, 0, 0).
func Vec4Right() Vec4 { return Vec4{1, 0, 0, 0} }

// Vec4Left returns the direction (-1, 0, 0, 0).
func Vec4Left() Vec4 { return Vec4{-1, 0, 0, 0} }

// Vec4Up returns the direction (0, 1, 0, 0).
func Vec4Up() Vec4 { return Vec4{0, 1, 0, 0} }

// Vec4Down returns the direction (0, -1, 0, 0).
func Vec4Down() Vec4 { return Vec4{0, -1, 0, 0} }

// Vec4Forward returns the direction (0, 0, -1, 0).
func Vec4Forward() Vec4 { return Vec4{0, 0, -1, 0} }

// Vec4Backward returns the direction (0, 0, 1, 0).
func Vec4Backward() Vec4 { return Vec4{0, 0, 1, 0} }

// Vec4PosInfinity returns a vector with every component +Inf.
func Vec4PosInfinity() Vec4 {
	return Vec4{FloatPosInfinity, FloatPosInfinity, FloatPosInfinity, FloatPosInfinity}
}

// Vec4NegInfinity returns a vector with every component -Inf.
func Vec4NegInfinity() Vec4 {
	return Vec4{FloatNegInfinity, FloatNegInfinity, FloatNegInfinity, FloatNegInfinity}
}

// Vec4I returns the unit X axis.
func Vec4I() Vec4 { return Vec4{1, 0, 0, 0} }

// Vec4J returns the unit Y axis.
func Vec4J() Vec4 { return Vec4{0, 1, 0, 0} }

// Vec4K returns the unit Z axis.
func Vec4K() Vec4 { return Vec4{0, 0, 1, 0} }

// Vec4W returns the unit W axis.
func Vec4W() Vec4 { return Vec4{0, 0, 0, 1} }

var vec4Unit = sync.OnceValue(func() Vec4 { return Vec4One().Normalize() })

// Vec4Unit returns Vec4One normalized over all four components.
func Vec4Unit() Vec4 { return vec4Unit() }

// CreatePoint returns (x, y, z, 1).
func CreatePoint(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 1}
}

// CreatePointVec returns v as a point (w = 1).
func CreatePointVec(v Vec3) Vec4 {
	return Vec4{v.X, v.Y, v.Z, 1}
}

// CreateVector returns the direction (x, y, z, 0).
func CreateVector(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 0}
}

// CreateVectorVec returns v as a direction (w = 0).
func CreateVectorVec(v Vec3) Vec4 {
	return Vec4{v.X, v.Y, v.Z, 0}
}

// Vec4FromVec3 widens v with an explicit w.
func Vec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// ToVec3 performs the homogeneous divide (x/w, y/w, z/w). A direction
// (w == 0) has no Cartesian position and yields ErrDivideByZero.
func (v Vec4) ToVec3() (Vec3, error) {
	if v.W == 0 {
		return Vec3{}, fmt.Errorf("Vec4.ToVec3 with w=0: %w", ErrDivideByZero)
	}
	inv := 1 / v.W
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}, nil
}

// XYZ drops w without dividing.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// ToPoint normalizes w to 1. When |w| < Epsilon the vector is treated as a
// direction and reinterpreted as the point at that offset from the origin;
// otherwise xyz is divided by w.
func (v Vec4) ToPoint() Vec4 {
	if abs32(v.W) < Epsilon {
		return Vec4{v.X, v.Y, v.Z, 1}
	}
	inv := 1 / v.W
	return Vec4{v.X * inv, v.Y * inv, v.Z * inv, 1}
}

// ToDirection returns the unit spatial direction with w = 0, or the zero
// vector if the spatial part is shorter than Epsilon.
func (v Vec4) ToDirection() Vec4 {
	mag := v.L2NormSpatial()
	if mag < Epsilon {
		return Vec4{}
	}
	inv := 1 / mag
	return Vec4{v.X * inv, v.Y * inv, v.Z * inv, 0}
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v * scalar, including w.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns v / s, including w.
func (v Vec4) Div(s float32) (Vec4, error) {
	if s == 0 {
		return Vec4{}, fmt.Errorf("Vec4.Div: %w", ErrDivideByZero)
	}
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}, nil
}

// Neg returns -v.
func (v Vec4) Neg() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// AddAssign adds other to v in place.
func (v *Vec4) AddAssign(other Vec4) *Vec4 {
	*v = v.Add(other)
	return v
}

// SubAssign subtracts other from v in place.
func (v *Vec4) SubAssign(other Vec4) *Vec4 {
	*v = v.Sub(other)
	return v
}

// ScaleAssign multiplies v by s in place.
func (v *Vec4) ScaleAssign(s float32) *Vec4 {
	*v = v.Scale(s)
	return v
}

// DivAssign divides v by s in place. v is left untouched on error.
func (v *Vec4) DivAssign(s float32) error {
	r, err := v.Div(s)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

// At returns the component at index i.
func (v Vec4) At(i int) (float32, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	}
	return 0, fmt.Errorf("Vec4 index %d: %w", i, ErrIndexOutOfRange)
}

// Set assigns the component at index i.
func (v *Vec4) Set(i int, f float32) error {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	case 3:
		v.W = f
	default:
		return fmt.Errorf("Vec4 index %d: %w", i, ErrIndexOutOfRange)
	}
	return nil
}

// L0Norm counts the non-zero components, w included.
func (v Vec4) L0Norm() int {
	n := v.L0NormSpatial()
	if v.W != 0 {
		n++
	}
	return n
}

// L0NormSpatial counts the non-zero xyz components.
func (v Vec4) L0NormSpatial() int {
	return v.XYZ().L0Norm()
}

// L1Norm returns the sum of absolute components, w included.
func (v Vec4) L1Norm() float32 {
	return v.L1NormSpatial() + abs32(v.W)
}

// L1NormSpatial returns |x| + |y| + |z|.
func (v Vec4) L1NormSpatial() float32 {
	return abs32(v.X) + abs32(v.Y) + abs32(v.Z)
}

// L2Norm returns the 4D Euclidean length.
func (v Vec4) L2Norm() float32 {
	return sqrt32(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// L2NormSpatial returns the length of the xyz part.
func (v Vec4) L2NormSpatial() float32 {
	return sqrt32(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LInfNorm returns the largest absolute component, w included.
func (v Vec4) LInfNorm() float32 {
	return max(v.LInfNormSpatial(), abs32(v.W))
}

// LInfNormSpatial returns the largest absolute xyz component.
func (v Vec4) LInfNormSpatial() float32 {
	return max(abs32(v.X), abs32(v.Y), abs32(v.Z))
}

// Norm is an alias of L2Norm.
func (v Vec4) Norm() float32 { return v.L2Norm() }

// Magnitude is an alias of L2Norm.
func (v Vec4) Magnitude() float32 { return v.L2Norm() }

// Normalize scales all four components to unit length, or returns the
// zero vector if v has no length. Use ToDirection to normalize xyz only.
func (v Vec4) Normalize() Vec4 {
	l := v.L2Norm()
	if l == 0 {
		return Vec4{}
	}
	inv := 1 / l
	return v.Scale(inv)
}

// ProjOntoI keeps only X.
func (v Vec4) ProjOntoI() Vec4 { return Vec4{X: v.X} }

// ProjOntoJ keeps only Y.
func (v Vec4) ProjOntoJ() Vec4 { return Vec4{Y: v.Y} }

// ProjOntoK keeps only Z.
func (v Vec4) ProjOntoK() Vec4 { return Vec4{Z: v.Z} }

// ProjOntoW keeps only W.
func (v Vec4) ProjOntoW() Vec4 { return Vec4{W: v.W} }

// Dot returns the dot product of the spatial parts; w does not take part.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the 3D cross product of the spatial parts. The result is
// always a direction (w = 0).
func (v Vec4) Cross(other Vec4) Vec4 {
	return Vec4{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
		0,
	}
}

// Hadamard returns the component-wise product.
func (v Vec4) Hadamard(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// ElementwiseMultiply is an alias of Hadamard.
func (v Vec4) ElementwiseMultiply(other Vec4) Vec4 { return v.Hadamard(other) }

// Clamp limits each component to [lo, hi].
func (v Vec4) Clamp(lo, hi Vec4) Vec4 {
	return Vec4{
		clamp32(v.X, lo.X, hi.X),
		clamp32(v.Y, lo.Y, hi.Y),
		clamp32(v.Z, lo.Z, hi.Z),
		clamp32(v.W, lo.W, hi.W),
	}
}

// Lerp interpolates every component, w included.
func (v Vec4) Lerp(other Vec4, t float32) Vec4 {
	return Vec4{
		v.X + t*(other.X-v.X),
		v.Y + t*(other.Y-v.Y),
		v.Z + t*(other.Z-v.Z),
		v.W + t*(other.W-v.W),
	}
}

// LerpPoints interpolates between two points. Both inputs must have w ≈ 1
// (checked only in velecsdebug builds); the result always has w = 1.
func LerpPoints(a, b Vec4, t float32) Vec4 {
	if debugAsserts {
		if abs32(a.W-1) >= Epsilon || abs32(b.W-1) >= Epsilon {
			panic(fmt.Sprintf("LerpPoints: inputs must be points (w=1), got w=%g and w=%g", a.W, b.W))
		}
	}
	return Vec4{
		a.X + t*(b.X-a.X),
		a.Y + t*(b.Y-a.Y),
		a.Z + t*(b.Z-a.Z),
		1,
	}
}

// SpatialAngle returns the angle between the xyz parts in radians, in
// [0, pi]. Returns 0 when either spatial part is near zero.
func (v Vec4) SpatialAngle(other Vec4) float32 {
	mags := v.L2NormSpatial() * other.L2NormSpatial()
	if mags < Epsilon {
		return 0
	}
	return acosClamped(v.Dot(other) / mags)
}

// SpatialAngleDeg returns SpatialAngle in degrees.
func (v Vec4) SpatialAngleDeg(other Vec4) float32 {
	return v.SpatialAngle(other) * RadToDeg
}

func (v Vec4) String() string {
	return formatComponents(v.X, v.Y, v.Z, v.W)
}
