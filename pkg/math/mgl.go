package math

import "github.com/go-gl/mathgl/mgl64"

// FromMgl converts an mgl64 vector
func FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Mgl converts the vector to its mgl64 form
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// TransformPoint applies m to v treated as a point (w = 1)
func (v Vec3) TransformPoint(m mgl64.Mat4) Vec3 {
	return FromMgl(mgl64.TransformCoordinate(v.Mgl(), m))
}

// TransformDirection applies m to v treated as a direction (w = 0),
// so translations leave it unchanged
func (v Vec3) TransformDirection(m mgl64.Mat4) Vec3 {
	return FromMgl(mgl64.TransformNormal(v.Mgl(), m))
}

// Transform applies m to both the origin and direction of r
func (r Ray) Transform(m mgl64.Mat4) Ray {
	return Ray{
		Origin:    r.Origin.TransformPoint(m),
		Direction: r.Direction.TransformDirection(m),
	}
}
