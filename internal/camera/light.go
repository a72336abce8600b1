package camera

import (
	gomath "math"

	"github.com/greenmatthew/velecs-math/pkg/math"
)

// SunDirection converts a sun position to a unit vector pointing toward
// the sun. Longitude turns about +Y (0 faces +Z), latitude is elevation
// above the horizon. Both are in degrees.
func SunDirection(longitudeDeg, latitudeDeg float32) math.Vec3 {
	sinLon, cosLon := gomath.Sincos(float64(math.ToRadians(longitudeDeg)))
	sinLat, cosLat := gomath.Sincos(float64(math.ToRadians(latitudeDeg)))

	return math.Vec3{
		X: float32(cosLat * sinLon),
		Y: float32(sinLat),
		Z: float32(cosLat * cosLon),
	}
}

// DirectionalLightMatrix returns an orthographic view-projection that
// covers bounds as seen from a light shining along -lightDir. lightDir
// points toward the light.
func DirectionalLightMatrix(lightDir math.Vec3, bounds AABB) math.Mat4 {
	center := bounds.Center()
	radius := bounds.Radius()
	dir := lightDir.Normalize()

	lightDistance := radius * 2
	lightPos := center.Add(dir.Scale(lightDistance))

	// Avoid an up vector parallel to the light.
	up := math.Vec3Up()
	if abs32(dir.Y) > 0.99 {
		up = math.Vec3Backward()
	}
	view := math.LookAt(lightPos, center, up)

	padding := radius * 0.1
	half := radius + padding
	proj := math.FromOrthographic(-half, half, -half, half, 0.1, lightDistance+radius+padding)
	return proj.Mul(view)
}
