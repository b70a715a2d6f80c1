package color

import (
	imgcolor "image/color"
	"testing"

	"github.com/zsybh1/EasyX-Based-Renderer/pkg/math"
)

func TestColor_PackedRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 51 {
				c := New(r, g, b)
				if got := FromPacked(c.PackedRGB()); got != c {
					t.Fatalf("Round trip of %v gave %v", c, got)
				}
			}
		}
	}
}

func TestColor_Packing(t *testing.T) {
	c := FromPacked(0x123456)
	if c != New(0x12, 0x34, 0x56) {
		t.Errorf("Expected (0x12, 0x34, 0x56), got %+v", c)
	}
	if c.PackedRGB() != 0x123456 {
		t.Errorf("Expected RGB 0x123456, got %#x", c.PackedRGB())
	}
	if c.PackedBGR() != 0x563412 {
		t.Errorf("Expected BGR 0x563412, got %#x", c.PackedBGR())
	}
	if FromPacked(0xFF123456) != c {
		t.Error("Bits above 24 should be ignored")
	}
	if FromPacked(0) != Black {
		t.Error("Packed zero should decode to black")
	}
}

func TestColor_FromFloatTruncates(t *testing.T) {
	c := FromFloat(1.9, 2.5, 254.99)
	if c != New(1, 2, 254) {
		t.Errorf("Expected (1, 2, 254), got %+v", c)
	}
}

func TestColor_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		result   Color
		expected Color
	}{
		{"add saturates", New(200, 200, 200).Add(New(100, 100, 100)), New(255, 255, 255)},
		{"add below bound", New(10, 20, 30).Add(New(1, 2, 3)), New(11, 22, 33)},
		{"scale by vector truncates", New(200, 200, 200).ScaleVec(math.NewVec3(1, 0, 0.5)), New(200, 0, 100)},
		{"scale by scalar truncates", New(101, 3, 255).Scale(0.5), New(50, 1, 127)},
		{"scale by zero", White.Scale(0), Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, tt.result)
			}
		})
	}
}

func TestColor_Accumulate(t *testing.T) {
	c := New(100, 0, 250)
	c.Accumulate(New(100, 10, 10))
	c.Accumulate(New(100, 10, 10))
	if c != New(255, 20, 255) {
		t.Errorf("Expected (255, 20, 255), got %+v", c)
	}
}

func TestColor_ImageColor(t *testing.T) {
	r, g, b, a := New(255, 0, 300).RGBA()
	if r != 0xFFFF || g != 0 || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("Unexpected RGBA (%#x, %#x, %#x, %#x)", r, g, b, a)
	}

	c := FromImageColor(imgcolor.RGBA{R: 1, G: 2, B: 3, A: 255})
	if c != New(1, 2, 3) {
		t.Errorf("Expected (1, 2, 3), got %+v", c)
	}
}

func TestColor_Parse(t *testing.T) {
	tests := []struct {
		input       string
		expected    Color
		expectError bool
	}{
		{"red", New(255, 0, 0), false},
		{"CornflowerBlue", New(100, 149, 237), false},
		{"#00ff80", New(0, 255, 128), false},
		{"123456", New(0x12, 0x34, 0x56), false},
		{"#12345", Color{}, true},
		{"nocolor", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := Parse(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.input, c)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if c != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, c)
			}
		})
	}
}

func TestColor_String(t *testing.T) {
	if s := New(0, 128, 255).String(); s != "#0080ff" {
		t.Errorf("Expected #0080ff, got %s", s)
	}
}
