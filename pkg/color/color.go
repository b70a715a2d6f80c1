// Package color provides the packed 8-bit RGB color used to shade hit points.
package color

import (
	"fmt"
	imgcolor "image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/zsybh1/EasyX-Based-Renderer/pkg/math"
)

// MaxChannel is the saturation bound of every channel
const MaxChannel = 0xFF

// Color is an RGB triple with integer channels nominally in [0, 255].
// Channels are assumed non-negative; arithmetic saturates at 255 but never
// clamps from below.
type Color struct {
	R, G, B int
}

var (
	Black = Color{}
	White = Color{MaxChannel, MaxChannel, MaxChannel}
)

// New creates a color from integer channels
func New(r, g, b int) Color {
	return Color{R: r, G: g, B: b}
}

// FromFloat creates a color from float channels, truncating toward zero
func FromFloat(r, g, b float64) Color {
	return Color{R: int(r), G: int(g), B: int(b)}
}

// FromPacked decodes a 24-bit big-endian RGB value (R in the high byte).
// Bits above the low 24 are ignored.
func FromPacked(rgb uint32) Color {
	return Color{
		R: int(rgb >> 16 & 0xFF),
		G: int(rgb >> 8 & 0xFF),
		B: int(rgb & 0xFF),
	}
}

// PackedRGB returns R*65536 + G*256 + B
func (c Color) PackedRGB() uint32 {
	return uint32(c.R*0x10000 + c.G*0x100 + c.B)
}

// PackedBGR returns B*65536 + G*256 + R, the byte order GDI-style surfaces expect
func (c Color) PackedBGR() uint32 {
	return uint32(c.B*0x10000 + c.G*0x100 + c.R)
}

// ScaleVec multiplies each channel by the matching component of v
// (R by X, G by Y, B by Z) and truncates
func (c Color) ScaleVec(v math.Vec3) Color {
	return FromFloat(float64(c.R)*v.X, float64(c.G)*v.Y, float64(c.B)*v.Z)
}

// Scale multiplies every channel by k and truncates
func (c Color) Scale(k float64) Color {
	return FromFloat(float64(c.R)*k, float64(c.G)*k, float64(c.B)*k)
}

// Add returns the per-channel sum saturated at 255
func (c Color) Add(other Color) Color {
	return Color{
		R: min(c.R+other.R, MaxChannel),
		G: min(c.G+other.G, MaxChannel),
		B: min(c.B+other.B, MaxChannel),
	}
}

// Accumulate adds other into c in place, saturating at 255
func (c *Color) Accumulate(other Color) {
	*c = c.Add(other)
}

// RGBA implements image/color.Color. Channels are clamped to [0, 255] for the
// conversion only.
func (c Color) RGBA() (r, g, b, a uint32) {
	return imgcolor.RGBA{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
		A: 0xFF,
	}.RGBA()
}

// FromImageColor converts any image/color.Color, dropping alpha
func FromImageColor(c imgcolor.Color) Color {
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	return Color{R: int(n.R), G: int(n.G), B: int(n.B)}
}

// Named looks up an SVG 1.1 color name such as "cornflowerblue"
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, false
	}
	return Color{R: int(c.R), G: int(c.G), B: int(c.B)}, true
}

// ParseHex parses "#rrggbb" or "rrggbb"
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return FromPacked(uint32(v)), nil
}

// Parse accepts either a color name or a hex value
func Parse(s string) (Color, error) {
	if c, ok := Named(s); ok {
		return c, nil
	}
	return ParseHex(s)
}

// String renders the color as #rrggbb
func (c Color) String() string {
	return fmt.Sprintf("#%06x", c.PackedRGB())
}

func clampChannel(v int) uint8 {
	return uint8(max(0, min(v, MaxChannel)))
}
