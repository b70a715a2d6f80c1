package geometry

import (
	"github.com/zsybh1/EasyX-Based-Renderer/pkg/color"
	"github.com/zsybh1/EasyX-Based-Renderer/pkg/math"
)

// Surface is anything a ray can be tested against
type Surface interface {
	// Intersect returns the hit distance t along the ray and whether the ray hits
	Intersect(ray math.Ray) (float64, bool)
	// Normal returns the unit surface normal at a point on the surface
	Normal(p math.Vec3) math.Vec3
}

// Colored is a Surface that carries a color for shading
type Colored interface {
	Surface
	SurfaceColor() color.Color
}
