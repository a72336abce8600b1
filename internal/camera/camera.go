// Package camera provides an orbit camera, projection setup from config
// and screen-space picking for the Y-down, [0, 1]-depth clip space.
package camera

import (
	gomath "math"

	"github.com/greenmatthew/velecs-math/internal/config"
	"github.com/greenmatthew/velecs-math/pkg/math"
)

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	Target math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // radians above the target's horizon
	Yaw      float32 // radians about +Y, 0 looks down -Z

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        10,
		Pitch:           0.5,
		MinDistance:     1,
		MaxDistance:     500,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// FromConfig builds a camera from the camera section of the config.
func FromConfig(cfg config.CameraConfig) *OrbitCamera {
	c := NewOrbitCamera()
	c.Target = math.Vec3{X: cfg.Target[0], Y: cfg.Target[1], Z: cfg.Target[2]}
	c.Distance = cfg.Distance
	c.Pitch = math.ToRadians(cfg.PitchDeg)
	c.Yaw = math.ToRadians(cfg.YawDeg)
	c.MinDistance = cfg.MinDistance
	c.MaxDistance = cfg.MaxDistance
	return c
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sp, cp := gomath.Sincos(float64(c.Pitch))
	sy, cy := gomath.Sincos(float64(c.Yaw))
	offset := math.Vec3{
		X: float32(cp * sy),
		Y: float32(sp),
		Z: float32(cp * cy),
	}
	return c.Target.Add(offset.Scale(c.Distance))
}

// Orientation returns the camera rotation: pitch about X first, then yaw
// about Y.
func (c *OrbitCamera) Orientation() math.Quat {
	return math.QuatFromEulerAnglesRad(-c.Pitch, c.Yaw, 0)
}

// Forward returns the unit view direction.
func (c *OrbitCamera) Forward() math.Vec3 {
	return c.Orientation().Rotate(math.Vec3Forward())
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.Vec3Up())
}

// WorldMatrix returns the camera-to-world transform; its inverse equals
// ViewMatrix.
func (c *OrbitCamera) WorldMatrix() math.Mat4 {
	return math.FromPosition(c.Position()).WithRotationQuat(c.Orientation())
}

// ViewProjection returns proj * view for the given projection settings.
func (c *OrbitCamera) ViewProjection(p config.ProjectionConfig) math.Mat4 {
	return ProjectionMatrix(p).Mul(c.ViewMatrix())
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.Pitch = min(max(c.Pitch, c.MinPitch), c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = min(max(c.Distance, c.MinDistance), c.MaxDistance)
}

// HandleMovement pans the target on the XZ plane relative to the current
// yaw. Speed scales with distance.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	speed := c.Distance * 0.01
	yaw := math.QuatFromAxisAngle(math.Vec3Up(), c.Yaw)

	move := yaw.Rotate(math.Vec3Forward()).Scale(forward).
		Add(yaw.Rotate(math.Vec3Right()).Scale(right)).
		Add(math.Vec3Up().Scale(up))
	c.Target.AddAssign(move.Scale(speed))
}

// FitToBounds centres the camera on box and backs off far enough to see it.
func (c *OrbitCamera) FitToBounds(box AABB) {
	c.Target = box.Center()
	c.Distance = min(max(box.Radius()*2, c.MinDistance), c.MaxDistance)
	c.Pitch = 0.6
	c.Yaw = 0
}

// ProjectionMatrix builds the projection described by p.
func ProjectionMatrix(p config.ProjectionConfig) math.Mat4 {
	if p.Mode == config.ModeOrthographic {
		return math.FromOrthographicSize(p.Width, p.Height, p.Near, p.Far)
	}
	return math.FromPerspective(p.FOVDeg, p.Aspect, p.Near, p.Far)
}
