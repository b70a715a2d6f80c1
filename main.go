package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zsybh1/EasyX-Based-Renderer/pkg/color"
	"github.com/zsybh1/EasyX-Based-Renderer/pkg/geometry"
	"github.com/zsybh1/EasyX-Based-Renderer/pkg/math"
)

// vecFlag parses "x,y,z" into a math.Vec3
type vecFlag struct {
	v math.Vec3
}

func (f *vecFlag) String() string {
	return fmt.Sprintf("%g,%g,%g", f.v.X, f.v.Y, f.v.Z)
}

func (f *vecFlag) Set(s string) error {
	v, err := parseVec3(s)
	if err != nil {
		return err
	}
	f.v = v
	return nil
}

func parseVec3(s string) (math.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math.Vec3{}, fmt.Errorf("invalid vector %q: want x,y,z", s)
	}
	var xyz [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("invalid vector %q: %w", s, err)
		}
		xyz[i] = v
	}
	return math.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}

// surfaceConfig describes the single surface the probe casts against
type surfaceConfig struct {
	Shape     string
	Center    math.Vec3
	Radius    float64
	A, B, C   math.Vec3
	Color     string
	Translate math.Vec3
	Epsilon   float64
}

// createSurface builds the colored surface described by cfg, placed with an
// mgl64 translation
func createSurface(cfg surfaceConfig) (geometry.Colored, error) {
	c, err := color.Parse(cfg.Color)
	if err != nil {
		return nil, err
	}

	m := mgl64.Translate3D(cfg.Translate.X, cfg.Translate.Y, cfg.Translate.Z)

	switch cfg.Shape {
	case "sphere":
		s := geometry.NewColoredSphere(cfg.Center.TransformPoint(m), cfg.Radius, c)
		s.Sphere = s.Sphere.WithEpsilon(cfg.Epsilon)
		return s, nil
	case "triangle":
		t := geometry.NewColoredTriangle(
			cfg.A.TransformPoint(m),
			cfg.B.TransformPoint(m),
			cfg.C.TransformPoint(m),
			c,
		)
		t.Triangle = t.Triangle.WithEpsilon(cfg.Epsilon)
		return t, nil
	case "":
		return nil, errors.New("no shape given")
	default:
		return nil, fmt.Errorf("unknown shape: %s", cfg.Shape)
	}
}

// castResult is what a single probe reports
type castResult struct {
	Hit    bool
	T      float64
	Point  math.Vec3
	Normal math.Vec3
	Color  color.Color
}

func cast(surface geometry.Colored, ray math.Ray) castResult {
	t, ok := surface.Intersect(ray)
	if !ok {
		return castResult{}
	}
	p := ray.At(t)
	return castResult{
		Hit:    true,
		T:      t,
		Point:  p,
		Normal: surface.Normal(p),
		Color:  surface.SurfaceColor(),
	}
}

func main() {
	cfg := surfaceConfig{
		Center: math.NewVec3(0, 0, 0),
		A:      math.NewVec3(0, 0, 0),
		B:      math.NewVec3(1, 0, 0),
		C:      math.NewVec3(0, 1, 0),
	}
	center := &vecFlag{cfg.Center}
	a, b, c := &vecFlag{cfg.A}, &vecFlag{cfg.B}, &vecFlag{cfg.C}
	translate := &vecFlag{}
	origin := &vecFlag{math.NewVec3(0, 0, 5)}
	dir := &vecFlag{math.NewVec3(0, 0, -1)}

	flag.StringVar(&cfg.Shape, "shape", "sphere", "Shape type: 'sphere' or 'triangle'")
	flag.Var(center, "center", "Sphere center x,y,z")
	flag.Float64Var(&cfg.Radius, "radius", 1.0, "Sphere radius")
	flag.Var(a, "a", "Triangle vertex A x,y,z")
	flag.Var(b, "b", "Triangle vertex B x,y,z")
	flag.Var(c, "c", "Triangle vertex C x,y,z")
	flag.StringVar(&cfg.Color, "color", "white", "Surface color: SVG name or #rrggbb")
	flag.Var(translate, "translate", "Translation applied to the shape x,y,z")
	flag.Float64Var(&cfg.Epsilon, "epsilon", 0, "Degenerate-case guard, 0 disables it")
	flag.Var(origin, "origin", "Ray origin x,y,z")
	flag.Var(dir, "dir", "Ray direction x,y,z")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Ray cast probe")
		fmt.Println("Usage: raycast [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	cfg.Center, cfg.A, cfg.B, cfg.C, cfg.Translate = center.v, a.v, b.v, c.v, translate.v

	surface, err := createSurface(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating surface: %v\n", err)
		os.Exit(1)
	}

	ray := math.NewRay(origin.v, dir.v)
	result := cast(surface, ray)
	if !result.Hit {
		fmt.Println("Miss")
		return
	}

	fmt.Printf("Hit at t=%g\n", result.T)
	fmt.Printf("Point:  %g,%g,%g\n", result.Point.X, result.Point.Y, result.Point.Z)
	fmt.Printf("Normal: %g,%g,%g\n", result.Normal.X, result.Normal.Y, result.Normal.Z)
	fmt.Printf("Color:  %s (RGB %#06x, BGR %#06x)\n", result.Color, result.Color.PackedRGB(), result.Color.PackedBGR())
}
