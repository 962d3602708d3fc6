package testutil

import (
	"image/color"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// RandomRGBA returns n pixels with uniformly random channel values,
// alpha included. Locks only once per call.
func (r *RNG) RandomRGBA(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := make([]byte, n*4)
	for i := range buf {
		buf[i] = byte(r.rand.Intn(256))
	}
	return buf
}

// RandomRGBAFromColors returns n pixels drawn uniformly from the given
// colors, so the buffer has a known small set of distinct values.
func (r *RNG) RandomRGBAFromColors(n int, colors []color.RGBA) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := make([]byte, 0, n*4)
	for range n {
		c := colors[r.rand.Intn(len(colors))]
		buf = append(buf, c.R, c.G, c.B, c.A)
	}
	return buf
}

// SolidRGBA returns n copies of the same pixel.
func SolidRGBA(n int, c color.RGBA) []byte {
	buf := make([]byte, 0, n*4)
	for range n {
		buf = append(buf, c.R, c.G, c.B, c.A)
	}
	return buf
}

// FromColors returns one pixel per color, in order.
func FromColors(colors ...color.RGBA) []byte {
	buf := make([]byte, 0, len(colors)*4)
	for _, c := range colors {
		buf = append(buf, c.R, c.G, c.B, c.A)
	}
	return buf
}

// WellSeparated16 returns 16 mutually distant colors with pure black
// first. The set covers the RGB cube corners plus half-intensity
// mixes, so every pair is at least 127 apart in one channel.
func WellSeparated16() []color.RGBA {
	return []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
		{R: 255, G: 255, B: 0, A: 255},
		{R: 0, G: 255, B: 255, A: 255},
		{R: 255, G: 0, B: 255, A: 255},
		{R: 255, G: 128, B: 0, A: 255},
		{R: 128, G: 0, B: 255, A: 255},
		{R: 0, G: 128, B: 128, A: 255},
		{R: 128, G: 128, B: 0, A: 255},
		{R: 128, G: 0, B: 0, A: 255},
		{R: 0, G: 0, B: 128, A: 255},
		{R: 128, G: 128, B: 128, A: 255},
		{R: 255, G: 128, B: 128, A: 255},
	}
}
