// lcgview - Sample Stream Viewer
// Shows the tent-filter jitter distribution of a seeded LCG stream and a
// gamma ramp, either live in the terminal or written to a PNG file.
//
// Controls:
//
//	Space       - Next seed
//	+/-         - Double/halve the sample count
//	R           - Restart from the initial seed
//	Esc/Q       - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/pathcore/pkg/render"
)

var (
	streamSeed = flag.Uint("seed", 1, "LCG seed of the visualized stream")
	samples    = flag.Int("samples", 20000, "Target number of jitter samples")
	targetFPS  = flag.Int("fps", 30, "Target FPS")
	pngPath    = flag.String("png", "", "Write a PNG to this path instead of opening the viewer")
	pngSize    = flag.Int("size", 256, "PNG edge length in pixels")
)

const (
	minSamples = 16
	maxSamples = 1 << 22
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lcgview - Sample Stream Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lcgview [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Space       - Next seed\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Double/halve sample count\n")
		fmt.Fprintf(os.Stderr, "  R           - Restart from initial seed\n")
		fmt.Fprintf(os.Stderr, "  Esc/Q       - Quit\n")
	}
	flag.Parse()

	if err := validateFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	var err error
	if *pngPath != "" {
		err = writePNG(*pngPath, *pngSize, uint32(*streamSeed), *samples)
	} else {
		err = run(uint32(*streamSeed), *samples, *targetFPS)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func validateFlags() error {
	if *streamSeed > 0xFFFFFFFF {
		return fmt.Errorf("seed %d does not fit in 32 bits", *streamSeed)
	}
	if *samples < minSamples || *samples > maxSamples {
		return fmt.Errorf("samples must be in [%d, %d], got %d", minSamples, maxSamples, *samples)
	}
	if *targetFPS < 1 {
		return fmt.Errorf("fps must be positive, got %d", *targetFPS)
	}
	if *pngSize <= rampRows {
		return fmt.Errorf("size must be greater than %d, got %d", rampRows, *pngSize)
	}
	return nil
}

func writePNG(path string, size int, seed uint32, n int) error {
	fb := render.NewFramebuffer(size, size)
	peak := Plot(fb, seed, n)
	if err := fb.SavePNG(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s (%dx%d, seed %d, %d samples, peak %d per pixel)\n", path, size, size, seed, n, peak)
	return nil
}

// SampleCounter eases the displayed sample count toward its target with a
// critically damped spring so changes animate instead of jumping.
type SampleCounter struct {
	Target   int
	shown    float64
	velocity float64
	spring   harmonica.Spring
}

// NewSampleCounter creates a counter that starts from zero.
func NewSampleCounter(fps, target int) *SampleCounter {
	return &SampleCounter{
		Target: target,
		// Frequency 6.0 = quick, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Update advances the spring one frame and returns the count to draw.
func (c *SampleCounter) Update() int {
	c.shown, c.velocity = c.spring.Update(c.shown, c.velocity, float64(c.Target))
	return c.Shown()
}

// Shown returns the current count, never negative.
func (c *SampleCounter) Shown() int {
	return max(int(c.shown+0.5), 0)
}

// Settled reports whether the counter has reached its target.
func (c *SampleCounter) Settled() bool {
	return c.Shown() == c.Target
}

// viewer holds the interactive state.
type viewer struct {
	initialSeed uint32
	seed        uint32
	counter     *SampleCounter
	fb          *render.Framebuffer
	width       int
	height      int
	peak        int
	dirty       bool
}

func (v *viewer) resize(width, height int) {
	v.width, v.height = width, height
	// One status row; each remaining terminal row holds two framebuffer rows.
	v.fb = render.NewFramebuffer(width, max(height-1, 1)*2)
	v.dirty = true
}

// handleKey applies a key press and reports whether the viewer should quit.
func (v *viewer) handleKey(ev uv.KeyPressEvent) bool {
	switch {
	case ev.MatchString("escape", "ctrl+c", "q"):
		return true
	case ev.MatchString("space"):
		v.seed++
		v.counter.shown = 0
		v.dirty = true
	case ev.MatchString("r"):
		v.seed = v.initialSeed
		v.counter.shown = 0
		v.dirty = true
	case ev.Text == "+", ev.MatchString("="):
		v.counter.Target = min(v.counter.Target*2, maxSamples)
	case ev.MatchString("-", "_"):
		v.counter.Target = max(v.counter.Target/2, minSamples)
	}
	return false
}

// frame advances the animation and redraws the framebuffer when needed.
func (v *viewer) frame() {
	before := v.counter.Shown()
	n := v.counter.Update()
	if n != before || v.dirty {
		v.peak = Plot(v.fb, v.seed, n)
		v.dirty = false
	}
}

func (v *viewer) status() string {
	return fmt.Sprintf(" seed %d  samples %d/%d  peak %d  [space] next seed  [+/-] samples  [esc] quit",
		v.seed, v.counter.Shown(), v.counter.Target, v.peak)
}

// Draw implements uv.Drawable.
func (v *viewer) Draw(scr uv.Screen, area uv.Rectangle) {
	plotArea := area
	plotArea.Max.Y = max(area.Max.Y-1, area.Min.Y)
	v.fb.Draw(scr, plotArea)
	drawText(scr, area.Min.X, area.Max.Y-1, area.Max.X, v.status())
}

// drawText writes s on row y starting at column x, clipped at maxX.
func drawText(scr uv.Screen, x, y, maxX int, s string) {
	for _, r := range s {
		if x >= maxX {
			return
		}
		scr.SetCell(x, y, &uv.Cell{Content: string(r), Width: 1})
		x++
	}
}

func run(seed uint32, target, fps int) error {
	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(width, height); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	v := &viewer{
		initialSeed: seed,
		seed:        seed,
		counter:     NewSampleCounter(fps, target),
	}
	v.resize(width, height)

	// Context for clean shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-term.Events():
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				term.Erase()
				if err := term.Resize(ev.Width, ev.Height); err != nil {
					return fmt.Errorf("resize terminal: %w", err)
				}
				v.resize(ev.Width, ev.Height)
			case uv.KeyPressEvent:
				if v.handleKey(ev) {
					return nil
				}
			}

		case <-ticker.C:
			if v.counter.Settled() && !v.dirty {
				continue
			}
			v.frame()
			term.Draw(v)
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}
