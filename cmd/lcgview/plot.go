package main

import (
	"github.com/taigrr/pathcore/pkg/math3d"
	"github.com/taigrr/pathcore/pkg/render"
	"github.com/taigrr/pathcore/pkg/sampling"
)

// rampRows is the height of the gamma ramp strip at the bottom of the plot.
const rampRows = 4

var (
	background = math3d.V3(0.012, 0.012, 0.02)
	axisColor  = math3d.V3(0.05, 0.05, 0.08)
)

// Plot draws n tent-jittered 2D samples from a stream seeded with seed as a
// density map, with a linear gray ramp underneath. Plot is deterministic for
// a given seed, sample count and framebuffer size.
//
// It returns the largest number of samples that landed in one pixel.
func Plot(fb *render.Framebuffer, seed uint32, n int) int {
	fb.Clear(background)

	plotH := fb.Height - rampRows
	if plotH < 1 || fb.Width < 1 {
		return 0
	}

	// Crosshair through the tent peak
	fb.DrawLine(fb.Width/2, 0, fb.Width/2, plotH-1, axisColor)
	fb.DrawLine(0, plotH/2, fb.Width-1, plotH/2, axisColor)

	hits := make([]int, fb.Width*plotH)
	rng := sampling.NewRandomLCG(seed)
	maxHits := 0
	for range n {
		// Both axes draw from the same stream, x first.
		jx := sampling.TentJitter(rng)
		jy := sampling.TentJitter(rng)
		x := int((jx + 1) / 2 * float64(fb.Width))
		y := int((jy + 1) / 2 * float64(plotH))
		i := y*fb.Width + x
		hits[i]++
		maxHits = max(maxHits, hits[i])
	}

	for i, h := range hits {
		if h == 0 {
			continue
		}
		fb.SetPixel(i%fb.Width, i/fb.Width, heat(float64(h)/float64(maxHits)))
	}

	drawRamp(fb, plotH)
	return maxHits
}

// heat maps a density in [0, 1] to a linear radiance, black through orange
// to white.
func heat(t float64) math3d.Vec3 {
	return math3d.V3(t, t*t, t*t*t*t).Scale(1.5)
}

// drawRamp fills the rows below plotH with linear values from 0 to 1, so the
// gamma encoding can be checked by eye.
func drawRamp(fb *render.Framebuffer, plotH int) {
	for x := 0; x < fb.Width; x++ {
		v := 0.0
		if fb.Width > 1 {
			v = float64(x) / float64(fb.Width-1)
		}
		fb.DrawRect(x, plotH, 1, rampRows, math3d.V3(v, v, v))
	}
}
