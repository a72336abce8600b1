package math

import gomath "math"

// Scalar constants shared by the vector, quaternion and matrix types.
const (
	Pi       float32 = gomath.Pi
	DegToRad float32 = Pi / 180
	RadToDeg float32 = 180 / Pi

	FloatMaxValue float32 = gomath.MaxFloat32
	// FloatMinValue is the smallest positive normal float32.
	FloatMinValue float32 = 0x1p-126

	// Epsilon is the near-zero threshold used by ToPoint, ToDirection,
	// SpatialAngle and the LerpPoints precondition.
	Epsilon float32 = 1e-6
)

// Infinity sentinels. Not constants because Go has no infinite constant.
var (
	FloatPosInfinity = float32(gomath.Inf(1))
	FloatNegInfinity = float32(gomath.Inf(-1))
)

// ToRadians converts degrees to radians.
func ToRadians(deg float32) float32 {
	return deg * DegToRad
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float32) float32 {
	return rad * RadToDeg
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func sqrt32(x float32) float32 {
	return float32(gomath.Sqrt(float64(x)))
}

func clamp32(x, lo, hi float32) float32 {
	return max(lo, min(hi, x))
}

// acosClamped absorbs floating-point drift outside [-1, 1].
func acosClamped(cos float32) float32 {
	return float32(gomath.Acos(float64(clamp32(cos, -1, 1))))
}
