package math

import "github.com/go-gl/mathgl/mgl32"

// Conversions to and from mathgl. Matrices share the column-major layout,
// so Mat4 converts without reordering. Quat storage already matches
// mgl32.Quat; only the constructor argument order differs.

// MGL returns v as an mgl32.Vec2.
func (v Vec2) MGL() mgl32.Vec2 { return mgl32.Vec2{v.X, v.Y} }

// Vec2FromMGL converts an mgl32.Vec2.
func Vec2FromMGL(v mgl32.Vec2) Vec2 { return Vec2{v[0], v[1]} }

// MGL returns v as an mgl32.Vec3.
func (v Vec3) MGL() mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

// Vec3FromMGL converts an mgl32.Vec3.
func Vec3FromMGL(v mgl32.Vec3) Vec3 { return Vec3{v[0], v[1], v[2]} }

// MGL returns v as an mgl32.Vec4.
func (v Vec4) MGL() mgl32.Vec4 { return mgl32.Vec4{v.X, v.Y, v.Z, v.W} }

// Vec4FromMGL converts an mgl32.Vec4.
func Vec4FromMGL(v mgl32.Vec4) Vec4 { return Vec4{v[0], v[1], v[2], v[3]} }

// MGL returns m as an mgl32.Mat4.
func (m Mat4) MGL() mgl32.Mat4 { return mgl32.Mat4(m) }

// Mat4FromMGL converts an mgl32.Mat4.
func Mat4FromMGL(m mgl32.Mat4) Mat4 { return Mat4(m) }

// MGL returns q as an mgl32.Quat.
func (q Quat) MGL() mgl32.Quat { return q.q }

// QuatFromMGL wraps an mgl32.Quat.
func QuatFromMGL(q mgl32.Quat) Quat { return Quat{q} }
