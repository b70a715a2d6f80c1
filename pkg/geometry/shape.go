package geometry

import "math"

// Hit holds the result of a barycentric ray/triangle test
type Hit struct {
	T     float64 // Parameter t along the ray
	Beta  float64 // Barycentric weight on B
	Gamma float64 // Barycentric weight on C
}

// guard reports whether a denominator is too close to zero, or a result is
// not finite, for a test configured with epsilon. A zero epsilon disables
// the guard and lets NaN and Inf flow through to the caller.
func guard(epsilon, denominator, t float64) bool {
	if epsilon <= 0 {
		return false
	}
	return math.Abs(denominator) < epsilon || math.IsNaN(t) || math.IsInf(t, 0)
}
