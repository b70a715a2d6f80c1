package geometry

import (
	"math"

	mathpkg "github.com/zsybh1/EasyX-Based-Renderer/pkg/math"
)

// Sphere represents a sphere shape. Radius is assumed positive.
type Sphere struct {
	Center  mathpkg.Vec3
	Radius  float64
	Epsilon float64 // Degenerate-case guard, zero disables it
}

// NewSphere creates a new sphere
func NewSphere(center mathpkg.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// WithEpsilon returns a copy that reports a miss when the ray direction is
// shorter than epsilon or the hit distance is not finite
func (s Sphere) WithEpsilon(epsilon float64) Sphere {
	s.Epsilon = epsilon
	return s
}

// Intersect solves |e + t*d - c|^2 = r^2 and returns the nearer root.
// The far root is never used, so a ray starting inside the sphere misses.
func (s Sphere) Intersect(ray mathpkg.Ray) (float64, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2 * a)
	if t < 0 || guard(s.Epsilon, a, t) {
		return 0, false
	}
	return t, true
}

// Normal returns the outward radial direction at p, even for points inside
func (s Sphere) Normal(p mathpkg.Vec3) mathpkg.Vec3 {
	return p.Subtract(s.Center).Normalize()
}
