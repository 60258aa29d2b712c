package tonemap

import (
	"image/color"
	"math"
	"testing"

	"github.com/taigrr/pathcore/pkg/math3d"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"below", -5, 0},
		{"above", 5, 1},
		{"inside", 0.5, 0.5},
		{"lower bound", 0, 0},
		{"upper bound", 1, 1},
		{"negative infinity", math.Inf(-1), 0},
		{"positive infinity", math.Inf(1), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.x); got != tc.expected {
				t.Errorf("Clamp(%v) = %v, want %v", tc.x, got, tc.expected)
			}
		})
	}

	if got := Clamp(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Clamp(NaN) = %v, want NaN", got)
	}
}

func TestToDisplayByte(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected int
	}{
		{"black", 0, 0},
		{"white", 1, 255},
		{"negative clamps", -1, 0},
		{"overexposed clamps", 12, 255},
		{"mid grey", 0.5, 186},
		{"dark", 0.2, 123},
		{"near black", 0.001, 11},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToDisplayByte(tc.x); got != tc.expected {
				t.Errorf("ToDisplayByte(%v) = %d, want %d", tc.x, got, tc.expected)
			}
		})
	}
}

func TestToDisplayByteUpperBoundary(t *testing.T) {
	// Values just below the clamp boundary must not round past 255.
	x := 1.0
	for i := 0; i < 64; i++ {
		x = math.Nextafter(x, 0)
		if got := ToDisplayByte(x); got != 255 {
			t.Fatalf("ToDisplayByte(%v) = %d, want 255", x, got)
		}
	}
}

func TestToDisplayByteMonotonic(t *testing.T) {
	prev := ToDisplayByte(0)
	for i := 1; i <= 10000; i++ {
		got := ToDisplayByte(float64(i) / 10000)
		if got < prev {
			t.Fatalf("ToDisplayByte decreased at %v: %d < %d", float64(i)/10000, got, prev)
		}
		if got < 0 || got > 255 {
			t.Fatalf("ToDisplayByte(%v) = %d outside [0, 255]", float64(i)/10000, got)
		}
		prev = got
	}
}

func TestToRGB(t *testing.T) {
	got := ToRGB(math3d.V3(1, 0.5, -3))
	want := color.RGBA{255, 186, 0, 255}
	if got != want {
		t.Errorf("ToRGB = %v, want %v", got, want)
	}
}
