package math

import (
	"fmt"
	"sync"
)

// Vec3 is a 3D vector in a right-handed, Y-up space.
type Vec3 struct {
	X, Y, Z float32
}

// Vec3Zero returns (0, 0, 0).
func Vec3Zero() Vec3 { return Vec3{} }

// Vec3One returns (1, 1, 1).
func Vec3One() Vec3 { return Vec3{1, 1, 1} }

// Vec3NegOne returns (-1, -1, -1).
func Vec3NegOne() Vec3 { return Vec3{-1, -1, -1} }

// Vec3Right returns (1, 0, 0).
func Vec3Right() Vec3 { return Vec3{1, 0, 0} }

// Vec3Left returns (-1, 0, 0).
func Vec3Left() Vec3 { return Vec3{-1, 0, 0} }

// Vec3Up returns (0, 1, 0).
func Vec3Up() Vec3 { return Vec3{0, 1, 0} }

// Vec3Down returns (0, -1, 0).
func Vec3Down() Vec3 { return Vec3{0, -1, 0} }

// Vec3Forward returns (0, 0, -1).
func Vec3Forward() Vec3 { return Vec3{0, 0, -1} }

// Vec3Backward returns (0, 0, 1).
func Vec3Backward() Vec3 { return Vec3{0, 0, 1} }

// Vec3PosInfinity returns a vector with every component +Inf.
func Vec3PosInfinity() Vec3 {
	return Vec3{FloatPosInfinity, FloatPosInfinity, FloatPosInfinity}
}

// Vec3NegInfinity returns a vector with every component -Inf.
func Vec3NegInfinity() Vec3 {
	return Vec3{FloatNegInfinity, FloatNegInfinity, FloatNegInfinity}
}

// Vec3I returns the unit X axis.
func Vec3I() Vec3 { return Vec3{1, 0, 0} }

// Vec3J returns the unit Y axis.
func Vec3J() Vec3 { return Vec3{0, 1, 0} }

// Vec3K returns the unit Z axis.
func Vec3K() Vec3 { return Vec3{0, 0, 1} }

var vec3Unit = sync.OnceValue(func() Vec3 { return Vec3One().Normalize() })

// Vec3Unit returns Vec3One normalized.
func Vec3Unit() Vec3 { return vec3Unit() }

// Vec3FromVec2 widens v with the given z.
func Vec3FromVec2(v Vec2, z float32) Vec3 {
	return Vec3{v.X, v.Y, z}
}

// Vec4 widens v with the given w. Prefer CreatePointVec / CreateVectorVec
// when w is 1 or 0.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// XY truncates to the X and Y components.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// XZ returns the XZ components as Vec2.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v / s.
func (v Vec3) Div(s float32) (Vec3, error) {
	if s == 0 {
		return Vec3{}, fmt.Errorf("Vec3.Div: %w", ErrDivideByZero)
	}
	return Vec3{v.X / s, v.Y / s, v.Z / s}, nil
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// AddAssign adds other to v in place.
func (v *Vec3) AddAssign(other Vec3) *Vec3 {
	*v = v.Add(other)
	return v
}

// SubAssign subtracts other from v in place.
func (v *Vec3) SubAssign(other Vec3) *Vec3 {
	*v = v.Sub(other)
	return v
}

// ScaleAssign multiplies v by s in place.
func (v *Vec3) ScaleAssign(s float32) *Vec3 {
	*v = v.Scale(s)
	return v
}

// DivAssign divides v by s in place. v is left untouched on error.
func (v *Vec3) DivAssign(s float32) error {
	r, err := v.Div(s)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

// At returns the component at index i.
func (v Vec3) At(i int) (float32, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, fmt.Errorf("Vec3 index %d: %w", i, ErrIndexOutOfRange)
}

// Set assigns the component at index i.
func (v *Vec3) Set(i int, f float32) error {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	default:
		return fmt.Errorf("Vec3 index %d: %w", i, ErrIndexOutOfRange)
	}
	return nil
}

// L0Norm counts the non-zero components.
func (v Vec3) L0Norm() int {
	n := 0
	for _, c := range [3]float32{v.X, v.Y, v.Z} {
		if c != 0 {
			n++
		}
	}
	return n
}

// L1Norm returns the sum of absolute components.
func (v Vec3) L1Norm() float32 {
	return abs32(v.X) + abs32(v.Y) + abs32(v.Z)
}

// L2Norm returns the Euclidean length.
func (v Vec3) L2Norm() float32 {
	return sqrt32(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LInfNorm returns the largest absolute component.
func (v Vec3) LInfNorm() float32 {
	return max(abs32(v.X), abs32(v.Y), abs32(v.Z))
}

// Norm is an alias of L2Norm.
func (v Vec3) Norm() float32 { return v.L2Norm() }

// Magnitude is an alias of L2Norm.
func (v Vec3) Magnitude() float32 { return v.L2Norm() }

// Normalize returns a unit vector, or the zero vector if v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.L2Norm()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// ProjOntoI keeps only the X component.
func (v Vec3) ProjOntoI() Vec3 { return Vec3{X: v.X} }

// ProjOntoJ keeps only the Y component.
func (v Vec3) ProjOntoJ() Vec3 { return Vec3{Y: v.Y} }

// ProjOntoK keeps only the Z component.
func (v Vec3) ProjOntoK() Vec3 { return Vec3{Z: v.Z} }

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Hadamard returns the component-wise product.
func (v Vec3) Hadamard(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// ElementwiseMultiply is an alias of Hadamard.
func (v Vec3) ElementwiseMultiply(other Vec3) Vec3 { return v.Hadamard(other) }

// Clamp limits each component to [lo, hi].
func (v Vec3) Clamp(lo, hi Vec3) Vec3 {
	return Vec3{
		clamp32(v.X, lo.X, hi.X),
		clamp32(v.Y, lo.Y, hi.Y),
		clamp32(v.Z, lo.Z, hi.Z),
	}
}

// Lerp interpolates from v to other by t.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{
		v.X + t*(other.X-v.X),
		v.Y + t*(other.Y-v.Y),
		v.Z + t*(other.Z-v.Z),
	}
}

// Angle returns the angle between v and other in radians, in [0, pi].
// Returns 0 if either vector has no length.
func (v Vec3) Angle(other Vec3) float32 {
	mags := v.L2Norm() * other.L2Norm()
	if mags == 0 {
		return 0
	}
	return acosClamped(v.Dot(other) / mags)
}

// AngleDeg returns Angle in degrees.
func (v Vec3) AngleDeg(other Vec3) float32 {
	return v.Angle(other) * RadToDeg
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).L2Norm()
}

func (v Vec3) String() string {
	return formatComponents(v.X, v.Y, v.Z)
}
