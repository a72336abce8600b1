// Package math provides vector, quaternion and matrix value types for
// real-time 3D applications. Matrices are column-major and the projection
// builders target a Y-down clip space with depth in [0, 1].
package math

import (
	"fmt"
	"sync"
)

// Vec2 is a 2D vector. Screen convention: +Y points down.
type Vec2 struct {
	X, Y float32
}

// Vec2Zero returns (0, 0).
func Vec2Zero() Vec2 { return Vec2{} }

// Vec2One returns (1, 1).
func Vec2One() Vec2 { return Vec2{1, 1} }

// Vec2NegOne returns (-1, -1).
func Vec2NegOne() Vec2 { return Vec2{-1, -1} }

// Vec2Up returns (0, -1). Up is toward the top of the screen.
func Vec2Up() Vec2 { return Vec2{0, -1} }

// Vec2Down returns (0, 1).
func Vec2Down() Vec2 { return Vec2{0, 1} }

// Vec2Right returns (1, 0).
func Vec2Right() Vec2 { return Vec2{1, 0} }

// Vec2Left returns (-1, 0).
func Vec2Left() Vec2 { return Vec2{-1, 0} }

// Vec2PosInfinity returns a vector with both components +Inf.
func Vec2PosInfinity() Vec2 { return Vec2{FloatPosInfinity, FloatPosInfinity} }

// Vec2NegInfinity returns a vector with both components -Inf.
func Vec2NegInfinity() Vec2 { return Vec2{FloatNegInfinity, FloatNegInfinity} }

// Vec2I returns the unit X axis.
func Vec2I() Vec2 { return Vec2{1, 0} }

// Vec2J returns the unit Y axis.
func Vec2J() Vec2 { return Vec2{0, 1} }

var vec2Unit = sync.OnceValue(func() Vec2 { return Vec2One().Normalize() })

// Vec2Unit returns Vec2One normalized.
func Vec2Unit() Vec2 { return vec2Unit() }

// Vec3 widens v to a Vec3 with the given z.
func (v Vec2) Vec3(z float32) Vec3 {
	return Vec3{v.X, v.Y, z}
}

// Vec4 widens v to a Vec4 with the given z and w.
func (v Vec2) Vec4(z, w float32) Vec4 {
	return Vec4{v.X, v.Y, z, w}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns v / s.
func (v Vec2) Div(s float32) (Vec2, error) {
	if s == 0 {
		return Vec2{}, fmt.Errorf("Vec2.Div: %w", ErrDivideByZero)
	}
	return Vec2{v.X / s, v.Y / s}, nil
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// AddAssign adds other to v in place.
func (v *Vec2) AddAssign(other Vec2) *Vec2 {
	*v = v.Add(other)
	return v
}

// SubAssign subtracts other from v in place.
func (v *Vec2) SubAssign(other Vec2) *Vec2 {
	*v = v.Sub(other)
	return v
}

// ScaleAssign multiplies v by s in place.
func (v *Vec2) ScaleAssign(s float32) *Vec2 {
	*v = v.Scale(s)
	return v
}

// DivAssign divides v by s in place. v is left untouched on error.
func (v *Vec2) DivAssign(s float32) error {
	r, err := v.Div(s)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

// At returns the component at index i (0 = X, 1 = Y).
func (v Vec2) At(i int) (float32, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, fmt.Errorf("Vec2 index %d: %w", i, ErrIndexOutOfRange)
}

// Set assigns the component at index i.
func (v *Vec2) Set(i int, f float32) error {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	default:
		return fmt.Errorf("Vec2 index %d: %w", i, ErrIndexOutOfRange)
	}
	return nil
}

// L0Norm counts the non-zero components.
func (v Vec2) L0Norm() int {
	n := 0
	if v.X != 0 {
		n++
	}
	if v.Y != 0 {
		n++
	}
	return n
}

// L1Norm returns |x| + |y|.
func (v Vec2) L1Norm() float32 {
	return abs32(v.X) + abs32(v.Y)
}

// L2Norm returns the Euclidean length.
func (v Vec2) L2Norm() float32 {
	return sqrt32(v.X*v.X + v.Y*v.Y)
}

// LInfNorm returns the largest absolute component.
func (v Vec2) LInfNorm() float32 {
	return max(abs32(v.X), abs32(v.Y))
}

// Norm is an alias of L2Norm.
func (v Vec2) Norm() float32 { return v.L2Norm() }

// Magnitude is an alias of L2Norm.
func (v Vec2) Magnitude() float32 { return v.L2Norm() }

// Normalize returns a unit vector, or the zero vector if v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.L2Norm()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ProjOntoI keeps only the X component.
func (v Vec2) ProjOntoI() Vec2 { return Vec2{X: v.X} }

// ProjOntoJ keeps only the Y component.
func (v Vec2) ProjOntoJ() Vec2 { return Vec2{Y: v.Y} }

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other.
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// Hadamard returns the component-wise product.
func (v Vec2) Hadamard(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// ElementwiseMultiply is an alias of Hadamard.
func (v Vec2) ElementwiseMultiply(other Vec2) Vec2 { return v.Hadamard(other) }

// Clamp limits each component to [lo, hi].
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{clamp32(v.X, lo.X, hi.X), clamp32(v.Y, lo.Y, hi.Y)}
}

// Lerp interpolates from v to other by t.
func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return Vec2{v.X + t*(other.X-v.X), v.Y + t*(other.Y-v.Y)}
}

// Angle returns the angle between v and other in radians, or 0 if either
// vector has no length.
func (v Vec2) Angle(other Vec2) float32 {
	mags := v.L2Norm() * other.L2Norm()
	if mags == 0 {
		return 0
	}
	return acosClamped(v.Dot(other) / mags)
}

// AngleDeg returns Angle in degrees.
func (v Vec2) AngleDeg(other Vec2) float32 {
	return v.Angle(other) * RadToDeg
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).L2Norm()
}

func (v Vec2) String() string {
	return formatComponents(v.X, v.Y)
}
