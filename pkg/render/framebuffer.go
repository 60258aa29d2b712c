// Package render accumulates linear radiance samples into an image that can
// be shown in a terminal or written to disk.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/taigrr/pathcore/pkg/math3d"
	"github.com/taigrr/pathcore/pkg/tonemap"
)

// Framebuffer is a 2D grid of radiance accumulators.
// Each pixel stores the running sum of its samples and a sample count; the
// displayed color is the tone-mapped mean.
//
// A Framebuffer is not safe for concurrent use.
type Framebuffer struct {
	Width  int           // Width in pixels
	Height int           // Height in pixels
	Sum    []math3d.Vec3 // Row-major radiance sums
	Count  []int         // Samples accumulated per pixel
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// For terminal display the height should be 2x the desired terminal rows.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Sum:    make([]math3d.Vec3, width*height),
		Count:  make([]int, width*height),
	}
}

// Clear fills the framebuffer with a constant radiance carrying a weight of
// one sample per pixel.
func (fb *Framebuffer) Clear(c math3d.Vec3) {
	for i := range fb.Sum {
		fb.Sum[i] = c
		fb.Count[i] = 1
	}
}

// Reset discards all samples.
func (fb *Framebuffer) Reset() {
	clear(fb.Sum)
	clear(fb.Count)
}

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// AddSample accumulates one radiance sample at (x, y).
// Out-of-bounds samples are dropped.
func (fb *Framebuffer) AddSample(x, y int, c math3d.Vec3) {
	if !fb.inBounds(x, y) {
		return
	}
	i := y*fb.Width + x
	fb.Sum[i] = fb.Sum[i].Add(c)
	fb.Count[i]++
}

// SetPixel replaces the pixel at (x, y) with a single radiance value.
func (fb *Framebuffer) SetPixel(x, y int, c math3d.Vec3) {
	if !fb.inBounds(x, y) {
		return
	}
	i := y*fb.Width + x
	fb.Sum[i] = c
	fb.Count[i] = 1
}

// Radiance returns the mean radiance at (x, y).
// Pixels without samples and out-of-bounds positions are black.
func (fb *Framebuffer) Radiance(x, y int) math3d.Vec3 {
	if !fb.inBounds(x, y) {
		return math3d.Vec3{}
	}
	i := y*fb.Width + x
	if fb.Count[i] == 0 {
		return math3d.Vec3{}
	}
	return fb.Sum[i].Scale(1 / float64(fb.Count[i]))
}

// GetPixel returns the display color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if !fb.inBounds(x, y) {
		return color.RGBA{}
	}
	return tonemap.ToRGB(fb.Radiance(x, y))
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c math3d.Vec3) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect fills a rectangle with a constant radiance.
func (fb *Framebuffer) DrawRect(x, y, w, h int, c math3d.Vec3) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.SetPixel(px, py, c)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.GetPixel(x, y))
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, fb.ToImage()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
