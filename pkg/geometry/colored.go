package geometry

import (
	"github.com/zsybh1/EasyX-Based-Renderer/pkg/color"
	"github.com/zsybh1/EasyX-Based-Renderer/pkg/math"
)

// ColoredSphere is a sphere carrying a shading color.
// Intersect and Normal come from the embedded Sphere.
type ColoredSphere struct {
	Sphere
	Color color.Color
}

// NewColoredSphere creates a colored sphere
func NewColoredSphere(center math.Vec3, radius float64, c color.Color) ColoredSphere {
	return ColoredSphere{Sphere: NewSphere(center, radius), Color: c}
}

// NewWhiteSphere creates a colored sphere with the default white color
func NewWhiteSphere(center math.Vec3, radius float64) ColoredSphere {
	return NewColoredSphere(center, radius, color.White)
}

// SurfaceColor returns the sphere's color
func (s ColoredSphere) SurfaceColor() color.Color {
	return s.Color
}

// ColoredTriangle is a triangle carrying a shading color
type ColoredTriangle struct {
	Triangle
	Color color.Color
}

// NewColoredTriangle creates a colored triangle
func NewColoredTriangle(a, b, c math.Vec3, col color.Color) ColoredTriangle {
	return ColoredTriangle{Triangle: NewTriangle(a, b, c), Color: col}
}

// NewWhiteTriangle creates a colored triangle with the default white color
func NewWhiteTriangle(a, b, c math.Vec3) ColoredTriangle {
	return NewColoredTriangle(a, b, c, color.White)
}

// SurfaceColor returns the triangle's color
func (t ColoredTriangle) SurfaceColor() color.Color {
	return t.Color
}

var (
	_ Surface = Sphere{}
	_ Surface = Triangle{}
	_ Colored = ColoredSphere{}
	_ Colored = ColoredTriangle{}
)
