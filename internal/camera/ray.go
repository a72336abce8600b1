package camera

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/greenmatthew/velecs-math/internal/config"
	"github.com/greenmatthew/velecs-math/internal/logger"
	"github.com/greenmatthew/velecs-math/pkg/math"
)

// ErrEmptyViewport is returned for a viewport with no area.
var ErrEmptyViewport = errors.New("viewport has zero size")

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // unit length
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Unproject maps a clip-space position (after the divide) back through
// the inverse of viewProj.
func Unproject(invViewProj math.Mat4, ndc math.Vec3) (math.Vec3, error) {
	return invViewProj.MulVec4(math.CreatePointVec(ndc)).ToVec3()
}

// ScreenToRay converts pixel coordinates to a world-space ray starting on
// the near plane. Pixel (0, 0) is the top-left corner and +Y runs down,
// matching the clip space, so no flip is needed.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, viewProj math.Mat4) (Ray, error) {
	if viewportW <= 0 || viewportH <= 0 {
		return Ray{}, fmt.Errorf("%gx%g: %w", viewportW, viewportH, ErrEmptyViewport)
	}
	inv, err := viewProj.InverseChecked()
	if err != nil {
		return Ray{}, fmt.Errorf("unprojecting: %w", err)
	}

	ndc := math.Vec2{
		X: 2*screenX/viewportW - 1,
		Y: 2*screenY/viewportH - 1,
	}
	near, err := Unproject(inv, ndc.Vec3(0))
	if err != nil {
		return Ray{}, fmt.Errorf("near point: %w", err)
	}
	far, err := Unproject(inv, ndc.Vec3(1))
	if err != nil {
		return Ray{}, fmt.Errorf("far point: %w", err)
	}

	r := Ray{Origin: near, Direction: far.Sub(near).Normalize()}
	logger.Debug("screen ray",
		zap.Float32("sx", screenX),
		zap.Float32("sy", screenY),
		zap.Stringer("origin", r.Origin),
		zap.Stringer("dir", r.Direction),
	)
	return r, nil
}

// ScreenToRay casts a ray through a pixel using this camera and the given
// projection.
func (c *OrbitCamera) ScreenToRay(screenX, screenY, viewportW, viewportH float32, p config.ProjectionConfig) (Ray, error) {
	return ScreenToRay(screenX, screenY, viewportW, viewportH, c.ViewProjection(p))
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
// Returns the hit point and false when the ray is parallel or points away.
func (r Ray) IntersectPlaneY(planeY float32) (math.Vec3, bool) {
	if abs32(r.Direction.Y) < 1e-3 {
		return math.Vec3{}, false
	}
	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return math.Vec3{}, false
	}
	hit := r.At(t)
	hit.Y = planeY
	return hit, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to the entry point, or to the exit point when the
// ray starts inside the box.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := -math.FloatMaxValue
	tmax := math.FloatMaxValue

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
