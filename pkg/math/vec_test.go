package math

import (
	"errors"
	"math"
	"testing"
)

const tol = 1e-5

func approx(a, b, eps float32) bool {
	return abs32(a-b) <= eps
}

func vec3Approx(a, b Vec3, eps float32) bool {
	return approx(a.X, b.X, eps) && approx(a.Y, b.Y, eps) && approx(a.Z, b.Z, eps)
}

func vec4Approx(a, b Vec4, eps float32) bool {
	return vec3Approx(a.XYZ(), b.XYZ(), eps) && approx(a.W, b.W, eps)
}

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.L2Norm(); got != 5 {
		t.Errorf("Vec2.L2Norm() = %v, want 5", got)
	}
	if v.Norm() != v.L2Norm() || v.Magnitude() != v.L2Norm() {
		t.Error("Norm and Magnitude should alias L2Norm")
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	if l := n.L2Norm(); !approx(l, 1, tol) {
		t.Errorf("Vec2.Normalize().L2Norm() = %v, want ~1", l)
	}
	if z := Vec2Zero().Normalize(); z != Vec2Zero() {
		t.Errorf("zero Normalize = %v, want zero vector", z)
	}
}

func TestVec2ScreenDirections(t *testing.T) {
	if Vec2Up() != (Vec2{0, -1}) {
		t.Errorf("Vec2Up() = %v, want (0, -1)", Vec2Up())
	}
	if Vec2Down() != (Vec2{0, 1}) {
		t.Errorf("Vec2Down() = %v, want (0, 1)", Vec2Down())
	}
	if Vec2Up().Add(Vec2Down()) != Vec2Zero() {
		t.Error("Up + Down should cancel")
	}
}

func TestVec2CrossAndAngle(t *testing.T) {
	if c := Vec2I().Cross(Vec2J()); c != 1 {
		t.Errorf("I x J = %v, want 1", c)
	}
	if c := Vec2J().Cross(Vec2I()); c != -1 {
		t.Errorf("J x I = %v, want -1", c)
	}
	if a := Vec2I().AngleDeg(Vec2J()); !approx(a, 90, 1e-3) {
		t.Errorf("AngleDeg(I, J) = %v, want 90", a)
	}
	if a := Vec2Zero().Angle(Vec2I()); a != 0 {
		t.Errorf("angle with zero vector = %v, want 0", a)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3CrossAntisymmetric(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-4, 0.5, 2}
	if got, want := a.Cross(b), b.Cross(a).Neg(); !vec3Approx(got, want, tol) {
		t.Errorf("a x b = %v, want -(b x a) = %v", got, want)
	}
	if d := a.Cross(b).Dot(a); !approx(d, 0, 1e-4) {
		t.Errorf("(a x b) . a = %v, want 0", d)
	}
}

func TestVec3DotSymmetric(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	if a.Dot(b) != b.Dot(a) {
		t.Errorf("a.b = %v, b.a = %v", a.Dot(b), b.Dot(a))
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []Vec3{
		{1, 0, 0},
		{3, 4, 12},
		{-0.001, 0.002, 0.003},
		{1e3, -2e3, 5e2},
	}
	for _, v := range tests {
		if l := v.Normalize().L2Norm(); !approx(l, 1, tol) {
			t.Errorf("%v.Normalize() length = %v, want 1", v, l)
		}
	}
	if z := Vec3Zero().Normalize(); z != Vec3Zero() {
		t.Errorf("zero Normalize = %v, want zero vector", z)
	}
	if l := Vec3Unit().L2Norm(); !approx(l, 1, tol) {
		t.Errorf("Vec3Unit length = %v, want 1", l)
	}
}

func TestVec3Angle(t *testing.T) {
	a := Vec3{1, 2, 3}
	if got := a.Angle(a); !approx(got, 0, 1e-3) {
		t.Errorf("Angle(a, a) = %v, want ~0", got)
	}
	if got := Vec3Right().Angle(Vec3Left()); !approx(got, Pi, 1e-5) {
		t.Errorf("Angle(right, left) = %v, want pi", got)
	}
	if got := Vec3Up().AngleDeg(Vec3Forward()); !approx(got, 90, 1e-3) {
		t.Errorf("AngleDeg(up, forward) = %v, want 90", got)
	}
}

func TestVec3Norms(t *testing.T) {
	v := Vec3{0, 2, -3}
	if n := v.L0Norm(); n != 2 {
		t.Errorf("L0Norm = %d, want 2", n)
	}
	if n := v.L1Norm(); n != 5 {
		t.Errorf("L1Norm = %v, want 5", n)
	}
	if n := v.LInfNorm(); n != 3 {
		t.Errorf("LInfNorm = %v, want 3", n)
	}
	if n := v.L2Norm(); !approx(n, float32(math.Sqrt(13)), tol) {
		t.Errorf("L2Norm = %v, want sqrt(13)", n)
	}
}

func TestVec3Div(t *testing.T) {
	v := Vec3{2, 4, 6}
	got, err := v.Div(2)
	if err != nil {
		t.Fatalf("Div(2): %v", err)
	}
	if got != (Vec3{1, 2, 3}) {
		t.Errorf("Div(2) = %v, want (1, 2, 3)", got)
	}

	if _, err := v.Div(0); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Div(0) error = %v, want ErrDivideByZero", err)
	}
	if err := v.DivAssign(0); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("DivAssign(0) error = %v, want ErrDivideByZero", err)
	}
	if v != (Vec3{2, 4, 6}) {
		t.Errorf("failed DivAssign modified v: %v", v)
	}
}

func TestVec3AssignChain(t *testing.T) {
	v := Vec3{1, 1, 1}
	v.AddAssign(Vec3{1, 2, 3}).ScaleAssign(2).SubAssign(Vec3One())
	if want := (Vec3{3, 5, 7}); v != want {
		t.Errorf("chained assign = %v, want %v", v, want)
	}
}

func TestVecIndex(t *testing.T) {
	v := Vec3{7, 8, 9}
	for i, want := range []float32{7, 8, 9} {
		got, err := v.At(i)
		if err != nil || got != want {
			t.Errorf("At(%d) = %v, %v; want %v", i, got, err, want)
		}
	}
	if _, err := v.At(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Vec3.At(3) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := v.Set(-1, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Vec3.Set(-1) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := v.Set(1, 42); err != nil || v.Y != 42 {
		t.Errorf("Set(1, 42) = %v, v = %v", err, v)
	}

	var v2 Vec2
	if _, err := v2.At(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Vec2.At(2) error = %v, want ErrIndexOutOfRange", err)
	}
	var v4 Vec4
	if err := v4.Set(4, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Vec4.Set(4) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := v4.Set(3, 1); err != nil || v4.W != 1 {
		t.Errorf("Vec4.Set(3, 1) = %v, v = %v", err, v4)
	}
}

func TestVec3ClampLerp(t *testing.T) {
	v := Vec3{-5, 0.5, 5}
	got := v.Clamp(Vec3Zero(), Vec3One())
	if want := (Vec3{0, 0.5, 1}); got != want {
		t.Errorf("Clamp = %v, want %v", got, want)
	}

	l := Vec3Zero().Lerp(Vec3{10, 20, 30}, 0.5)
	if want := (Vec3{5, 10, 15}); l != want {
		t.Errorf("Lerp = %v, want %v", l, want)
	}
}

func TestVec3Hadamard(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	if got := a.Hadamard(b); got != (Vec3{4, 10, 18}) {
		t.Errorf("Hadamard = %v", got)
	}
	if a.ElementwiseMultiply(b) != a.Hadamard(b) {
		t.Error("ElementwiseMultiply should alias Hadamard")
	}
}

func TestVecWidenNarrow(t *testing.T) {
	v := Vec2{1, 2}
	if got := v.Vec3(3); got != (Vec3{1, 2, 3}) {
		t.Errorf("Vec2.Vec3 = %v", got)
	}
	if got := v.Vec4(3, 4); got != (Vec4{1, 2, 3, 4}) {
		t.Errorf("Vec2.Vec4 = %v", got)
	}
	if got := Vec3FromVec2(v, 5).XY(); got != v {
		t.Errorf("round trip through Vec3 = %v", got)
	}
	if got := (Vec3{1, 2, 3}).XZ(); got != (Vec2{1, 3}) {
		t.Errorf("XZ = %v", got)
	}
}

func TestVecString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"vec2", Vec2{1, -2}.String(), "(1, -2)"},
		{"vec3", Vec3{1, 2.5, -3}.String(), "(1, 2.5, -3)"},
		{"vec4", Vec4{0.1, 0, 0, 1}.String(), "(0.1, 0, 0, 1)"},
		{"large", Vec2{1234567, 0}.String(), "(1.23457e+06, 0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestInfinityConstants(t *testing.T) {
	if !math.IsInf(float64(Vec3PosInfinity().X), 1) {
		t.Error("Vec3PosInfinity should be +Inf")
	}
	if !math.IsInf(float64(Vec4NegInfinity().W), -1) {
		t.Error("Vec4NegInfinity should be -Inf")
	}
	if FloatMinValue <= 0 || FloatMinValue >= Epsilon {
		t.Errorf("FloatMinValue = %v, want tiny positive", FloatMinValue)
	}
	if !approx(ToDegrees(ToRadians(90)), 90, 1e-4) {
		t.Error("degree/radian round trip")
	}
}
