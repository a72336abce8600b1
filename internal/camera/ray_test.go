package camera

import (
	"testing"

	"github.com/greenmatthew/velecs-math/pkg/math"
)

func unitBox() AABB {
	return NewAABB(math.Vec3NegOne(), math.Vec3One())
}

func TestIntersectAABB(t *testing.T) {
	tests := []struct {
		name  string
		ray   Ray
		wantT float32
		hit   bool
	}{
		{"front", Ray{Origin: math.Vec3{Z: 10}, Direction: math.Vec3Forward()}, 9, true},
		{"inside", Ray{Origin: math.Vec3Zero(), Direction: math.Vec3Right()}, 1, true},
		{"behind", Ray{Origin: math.Vec3{Z: 10}, Direction: math.Vec3Backward()}, 0, false},
		{"miss", Ray{Origin: math.Vec3{X: 5, Z: 10}, Direction: math.Vec3Forward()}, 0, false},
		{"diagonal", Ray{Origin: math.Vec3{X: -3, Y: -3, Z: -3}, Direction: math.Vec3One().Normalize()}, 2 * float32(1.7320508), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectAABB(unitBox())
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && !approx(got, tt.wantT, 1e-4) {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestIntersectPlaneY(t *testing.T) {
	r := Ray{Origin: math.Vec3{X: 1, Y: 10, Z: 1}, Direction: math.Vec3{X: 1, Y: -1}.Normalize()}
	hit, ok := r.IntersectPlaneY(0)
	if !ok {
		t.Fatal("expected hit")
	}
	if !vec3Approx(hit, math.Vec3{X: 11, Z: 1}, 1e-4) {
		t.Errorf("hit = %v, want (11, 0, 1)", hit)
	}

	if _, ok := (Ray{Direction: math.Vec3Right()}).IntersectPlaneY(0); ok {
		t.Error("parallel ray should miss")
	}
	if _, ok := r.IntersectPlaneY(20); ok {
		t.Error("plane behind the ray should miss")
	}
}

func TestNewAABBOrdersCorners(t *testing.T) {
	b := NewAABB(math.Vec3{X: 1, Y: -1, Z: 3}, math.Vec3{X: -1, Y: 1, Z: -3})
	if b.Min != (math.Vec3{X: -1, Y: -1, Z: -3}) || b.Max != (math.Vec3{X: 1, Y: 1, Z: 3}) {
		t.Errorf("NewAABB = %+v", b)
	}
	if b.Center() != math.Vec3Zero() {
		t.Errorf("Center = %v", b.Center())
	}
}

func TestAABBTransform(t *testing.T) {
	m := math.FromPosition(math.Vec3{X: 10}).WithScale(math.Vec3{X: 2, Y: 1, Z: 1})
	got := unitBox().Transform(m)
	if !vec3Approx(got.Min, math.Vec3{X: 8, Y: -1, Z: -1}, 1e-5) || !vec3Approx(got.Max, math.Vec3{X: 12, Y: 1, Z: 1}, 1e-5) {
		t.Errorf("Transform = %+v", got)
	}

	rot := unitBox().Transform(math.Identity().WithRotationDeg(45, math.Vec3Up()))
	if !approx(rot.Max.X, float32(1.4142135), 1e-4) {
		t.Errorf("rotated box max x = %v, want sqrt(2)", rot.Max.X)
	}
}

func TestBoundsOf(t *testing.T) {
	if got := BoundsOf(); got != (AABB{}) {
		t.Errorf("BoundsOf() = %+v, want zero box", got)
	}
	got := BoundsOf(math.Vec3{X: 1, Y: -2, Z: 3}, math.Vec3{X: -1, Y: 5}, math.Vec3{Z: -4})
	want := AABB{Min: math.Vec3{X: -1, Y: -2, Z: -4}, Max: math.Vec3{X: 1, Y: 5, Z: 3}}
	if got != want {
		t.Errorf("BoundsOf = %+v, want %+v", got, want)
	}
}
