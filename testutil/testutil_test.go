package testutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomRGBA(t *testing.T) {
	rng := NewRNG(4711)

	buf := rng.RandomRGBA(32)
	assert.Equal(t, 32*4, len(buf))
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	b1 := rng.RandomRGBA(16)

	rng.Reset()
	b2 := rng.RandomRGBA(16)

	assert.Equal(t, b1, b2)
}

func TestSolidRGBA(t *testing.T) {
	buf := SolidRGBA(3, color.RGBA{R: 1, G: 2, B: 3, A: 4})
	assert.Equal(t, []byte{1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4}, buf)
}

func TestFromColors(t *testing.T) {
	buf := FromColors(
		color.RGBA{R: 10, A: 255},
		color.RGBA{G: 20, A: 255},
	)
	assert.Equal(t, []byte{10, 0, 0, 255, 0, 20, 0, 255}, buf)
}

func TestRandomRGBAFromColors(t *testing.T) {
	rng := NewRNG(42)
	colors := WellSeparated16()

	buf := rng.RandomRGBAFromColors(100, colors)
	assert.Equal(t, 100*4, len(buf))

	// Every pixel must be one of the source colors.
	for i := 0; i < 100; i++ {
		c := color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
		assert.Contains(t, colors, c, "pixel %d", i)
	}
}

func TestWellSeparated16(t *testing.T) {
	colors := WellSeparated16()
	assert.Equal(t, 16, len(colors))
	assert.Equal(t, color.RGBA{A: 255}, colors[0])

	// All colors are distinct.
	seen := make(map[color.RGBA]bool)
	for _, c := range colors {
		assert.False(t, seen[c], "duplicate color %v", c)
		seen[c] = true
	}
}
