// Package tonemap converts linear radiance into display values.
package tonemap

import (
	"image/color"
	"math"

	"github.com/taigrr/pathcore/pkg/math3d"
)

// Gamma is the display encoding exponent.
const Gamma = 2.2

// Clamp limits x to [0, 1]. NaN is returned unchanged.
func Clamp(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ToDisplayByte gamma-encodes a linear value and scales it to [0, 255].
// The input is clamped first, so the result never leaves that range.
func ToDisplayByte(x float64) int {
	return int(math.Pow(Clamp(x), 1/Gamma)*255 + 0.5)
}

// ToRGB encodes a linear RGB color as an opaque 8-bit color.
func ToRGB(c math3d.Vec3) color.RGBA {
	return color.RGBA{
		R: uint8(ToDisplayByte(c.X)),
		G: uint8(ToDisplayByte(c.Y)),
		B: uint8(ToDisplayByte(c.Z)),
		A: 255,
	}
}
