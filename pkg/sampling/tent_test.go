package sampling

import (
	"math"
	"testing"
)

// fixedSource replays a fixed list of draws and counts calls.
type fixedSource struct {
	values []float32
	calls  int
}

func (s *fixedSource) Next() float32 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

func TestTentJitterValues(t *testing.T) {
	tests := []struct {
		name     string
		draw     float32
		expected float64
	}{
		{"zero draw", 0, -1},
		{"quarter", 0.125, math.Sqrt(0.25) - 1},
		{"center", 0.5, 0},
		{"upper half", 0.875, 1 - math.Sqrt(0.25)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := &fixedSource{values: []float32{tc.draw}}
			got := TentJitter(src)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("TentJitter(%v) = %v, want %v", tc.draw, got, tc.expected)
			}
		})
	}
}

func TestTentJitterConsumesOneDraw(t *testing.T) {
	g := NewRandomLCG(5)
	ref := NewRandomLCG(5)

	for i := 0; i < 100; i++ {
		TentJitter(g)
		ref.Next()
		if g.Seed() != ref.Seed() {
			t.Fatalf("call %d: state %d, want %d", i, g.Seed(), ref.Seed())
		}
	}

	src := &fixedSource{values: []float32{0.3, 0.7}}
	for i := 0; i < 10; i++ {
		TentJitter(src)
	}
	if src.calls != 10 {
		t.Errorf("10 calls drew %d values", src.calls)
	}
}

func TestTentJitterDistribution(t *testing.T) {
	const n = 200_000
	g := NewRandomLCG(1)

	var center, edges int
	var sum float64
	for i := 0; i < n; i++ {
		v := TentJitter(g)
		if v < -1 || v >= 1 {
			t.Fatalf("sample %d = %v outside [-1, 1)", i, v)
		}
		sum += v
		switch a := math.Abs(v); {
		case a < 0.25:
			center++
		case a >= 0.75:
			edges++
		}
	}

	// Tent density: P(|v|<0.25) = 0.4375, P(|v|>=0.75) = 0.0625
	if got := float64(center) / n; math.Abs(got-0.4375) > 0.01 {
		t.Errorf("fraction near 0 = %v, want ~0.4375", got)
	}
	if got := float64(edges) / n; math.Abs(got-0.0625) > 0.01 {
		t.Errorf("fraction near ±1 = %v, want ~0.0625", got)
	}
	if center <= edges {
		t.Errorf("center count %d should exceed edge count %d", center, edges)
	}
	if mean := sum / n; math.Abs(mean) > 0.01 {
		t.Errorf("mean = %v, want ~0", mean)
	}
}

func TestSubpixelOffset(t *testing.T) {
	tests := []struct {
		sub      int
		draw     float32
		expected float64
	}{
		{0, 0.5, 0.25},
		{1, 0.5, 0.75},
		{0, 0, -0.25},
		{1, 0.875, 1},
	}

	for _, tc := range tests {
		src := &fixedSource{values: []float32{tc.draw}}
		got := SubpixelOffset(src, tc.sub)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("SubpixelOffset(sub=%d, draw=%v) = %v, want %v", tc.sub, tc.draw, got, tc.expected)
		}
	}

	g := NewRandomLCG(3)
	for i := 0; i < 10000; i++ {
		for sub := 0; sub < 2; sub++ {
			v := SubpixelOffset(g, sub)
			if v < -0.25 || v >= 1.25 {
				t.Fatalf("offset %v outside [-0.25, 1.25)", v)
			}
		}
	}
}

func BenchmarkTentJitter(b *testing.B) {
	g := NewRandomLCG(1)

	for b.Loop() {
		_ = TentJitter(g)
	}
}
