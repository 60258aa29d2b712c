// Package sampling provides the reproducible random streams and pixel
// jitter used to place camera samples.
package sampling

import "math"

// LCG constants. These must not change: rendered reference images depend on
// the exact stream.
const (
	lcgMultiplier uint32 = 214013
	lcgIncrement  uint32 = 2531011

	// invModulus is 2^-32, exact in single precision.
	invModulus float32 = 1.0 / 4294967296
)

// maxBelowOne is the largest float32 strictly less than 1.
var maxBelowOne = math.Nextafter32(1, 0)

// Source is a stream of uniform values in [0, 1).
type Source interface {
	Next() float32
}

// RandomLCG is a 32-bit linear congruential generator.
// The zero value is a generator seeded with 0.
//
// A RandomLCG must not be shared between goroutines; give each worker its
// own, see Streams.
type RandomLCG struct {
	state uint32
}

var _ Source = (*RandomLCG)(nil)

// NewRandomLCG creates a generator starting from seed.
func NewRandomLCG(seed uint32) *RandomLCG {
	return &RandomLCG{state: seed}
}

// Next advances the generator and returns a value in [0, 1).
func (g *RandomLCG) Next() float32 {
	// uint32 arithmetic wraps, which is the mod 2^32 of the generator.
	g.state = lcgMultiplier*g.state + lcgIncrement

	f := float32(g.state) * invModulus
	// States >= 0xFFFFFF80 round up to 2^32 in single precision.
	if f >= 1 {
		return maxBelowOne
	}
	return f
}

// Seed returns the current state. A generator created with
// NewRandomLCG(g.Seed()) continues the same stream.
func (g *RandomLCG) Seed() uint32 {
	return g.state
}

// Reseed restarts the stream from seed.
func (g *RandomLCG) Reseed(seed uint32) {
	g.state = seed
}

// Streams returns n independent generators, the i-th seeded with base+i.
// Intended for handing one generator to each render worker.
func Streams(n int, base uint32) []*RandomLCG {
	streams := make([]*RandomLCG, n)
	for i := range streams {
		streams[i] = NewRandomLCG(base + uint32(i))
	}
	return streams
}
