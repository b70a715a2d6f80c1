package geometry

import (
	"github.com/zsybh1/EasyX-Based-Renderer/pkg/math"
)

// Triangle represents a single triangle defined by three vertices.
// The vertices are assumed not to be collinear.
type Triangle struct {
	A, B, C math.Vec3
	Epsilon float64 // Degenerate-case guard, zero disables it
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(a, b, c math.Vec3) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// WithEpsilon returns a copy that reports a miss when the system determinant
// is smaller than epsilon (parallel ray or degenerate triangle)
func (tr Triangle) WithEpsilon(epsilon float64) Triangle {
	tr.Epsilon = epsilon
	return tr
}

// Intersect tests the ray against the triangle and returns the hit distance
func (tr Triangle) Intersect(ray math.Ray) (float64, bool) {
	hit, ok := tr.IntersectBarycentric(ray)
	return hit.T, ok
}

// IntersectBarycentric solves A + beta*(B-A) + gamma*(C-A) = e + t*d with
// Cramer's rule. Without an epsilon a zero determinant is not checked, so a
// ray in the triangle's plane can come back as a hit with NaN coordinates.
func (tr Triangle) IntersectBarycentric(ray math.Ray) (Hit, bool) {
	a := tr.A.X - tr.B.X
	b := tr.A.Y - tr.B.Y
	c := tr.A.Z - tr.B.Z
	d := tr.A.X - tr.C.X
	e := tr.A.Y - tr.C.Y
	f := tr.A.Z - tr.C.Z
	g := ray.Direction.X
	h := ray.Direction.Y
	i := ray.Direction.Z
	j := tr.A.X - ray.Origin.X
	k := tr.A.Y - ray.Origin.Y
	l := tr.A.Z - ray.Origin.Z

	t1 := e*i - h*f
	t2 := g*f - d*i
	t3 := d*h - e*g
	t4 := a*k - j*b
	t5 := j*c - a*l
	t6 := b*l - k*c

	m := a*t1 + b*t2 + c*t3

	t := -(f*t4 + e*t5 + d*t6) / m
	if t < 0 || guard(tr.Epsilon, m, t) {
		return Hit{}, false
	}

	gamma := (i*t4 + h*t5 + g*t6) / m
	if gamma < 0 || gamma > 1 {
		return Hit{}, false
	}

	beta := (j*t1 + k*t2 + l*t3) / m
	if beta < 0 || beta > 1-gamma {
		return Hit{}, false
	}

	return Hit{T: t, Beta: beta, Gamma: gamma}, true
}

// Normal returns the unit plane normal facing the side p lies on.
// Points on the plane get the normal opposite to the winding order.
func (tr Triangle) Normal(p math.Vec3) math.Vec3 {
	n := tr.B.Subtract(tr.A).Cross(tr.C.Subtract(tr.A)).Normalize()
	if n.Dot(p.Subtract(tr.A)) > 0 {
		return n
	}
	return n.Negate()
}
