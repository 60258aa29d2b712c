package sampling

import "math"

// TentJitter maps one draw from src to an offset in [-1, 1) with a
// triangular density peaked at 0.
func TentJitter(src Source) float64 {
	r := 2 * float64(src.Next())
	if r < 1 {
		return math.Sqrt(r) - 1
	}
	return 1 - math.Sqrt(2-r)
}

// SubpixelOffset returns a tent-jittered position inside a pixel split into
// 2x2 subpixels. sub selects the subpixel along one axis (0 or 1). The
// result is in pixel units relative to the pixel corner and lies in
// [-0.25, 1.25): the tent tails reach into the neighbouring pixels.
func SubpixelOffset(src Source, sub int) float64 {
	return (float64(sub) + 0.5 + TentJitter(src)) / 2
}
