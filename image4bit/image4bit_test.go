package image4bit

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/posterize/palette"
)

func TestPackedLen(t *testing.T) {
	assert.Equal(t, 0, PackedLen(0))
	assert.Equal(t, 1, PackedLen(1))
	assert.Equal(t, 1, PackedLen(2))
	assert.Equal(t, 2, PackedLen(3))
	assert.Equal(t, 5, PackedLen(10))
}

func TestPack(t *testing.T) {
	dst := make([]byte, PackedLen(4))
	Pack(dst, []uint8{1, 2, 3, 4})
	assert.Equal(t, []byte{0x12, 0x34}, dst)
}

func TestPack_OddCount(t *testing.T) {
	dst := make([]byte, PackedLen(3))
	Pack(dst, []uint8{0xa, 0xb, 0xc})
	assert.Equal(t, []byte{0xab, 0xc0}, dst)
}

func TestPack_MasksHighBits(t *testing.T) {
	dst := make([]byte, PackedLen(2))
	Pack(dst, []uint8{0x1f, 0xf1})
	assert.Equal(t, []byte{0xf1}, dst)
}

func TestIndex(t *testing.T) {
	indices := []uint8{5, 0, 15, 7, 1}
	dst := make([]byte, PackedLen(len(indices)))
	Pack(dst, indices)

	for i, want := range indices {
		assert.Equal(t, want, Index(dst, i), "pixel %d", i)
	}
}

func TestSwapLUT(t *testing.T) {
	lut := SwapLUT(0, 5)

	assert.Equal(t, uint8(0x55), lut[0x00])
	assert.Equal(t, uint8(0x50), lut[0x05])
	assert.Equal(t, uint8(0x05), lut[0x50])
	assert.Equal(t, uint8(0x00), lut[0x55])

	// Bytes mixing a swapped nibble with any other index stay put.
	assert.Equal(t, uint8(0x12), lut[0x12])
	assert.Equal(t, uint8(0x35), lut[0x35])
	assert.Equal(t, uint8(0xf0), lut[0xf0])
}

func TestSwapLUT_PermutationInvolution(t *testing.T) {
	for d := 1; d < 16; d++ {
		lut := SwapLUT(0, uint8(d))

		var seen [256]bool
		for b := 0; b < 256; b++ {
			v := lut[b]
			require.False(t, seen[v], "d=%d: value %#02x emitted twice", d, v)
			seen[v] = true

			// Applying the table twice restores the byte.
			require.Equal(t, uint8(b), lut[v], "d=%d byte %#02x", d, b)
		}
	}
}

func TestRemap(t *testing.T) {
	packed := []byte{0x00, 0x05, 0x50, 0x55, 0x12}
	Remap(packed, SwapLUT(0, 5))
	assert.Equal(t, []byte{0x55, 0x50, 0x05, 0x00, 0x12}, packed)
}

func TestNew(t *testing.T) {
	img := New(image.Rect(0, 0, 5, 3), palette.Palette{})
	assert.Equal(t, PackedLen(15), len(img.Pix))
	assert.Equal(t, image.Rect(0, 0, 5, 3), img.Bounds())
}

func TestImage_LinearAddressing(t *testing.T) {
	// Odd width: pixel (4,0) and pixel (0,1) share a byte, there is
	// no per-row padding.
	img := New(image.Rect(0, 0, 5, 3), palette.Palette{})
	img.SetIndex(4, 0, 7)
	img.SetIndex(0, 1, 3)

	assert.Equal(t, uint8(0x73), img.Pix[2])
	assert.Equal(t, uint8(7), img.IndexAt(4, 0))
	assert.Equal(t, uint8(3), img.IndexAt(0, 1))
}

func TestImage_SetIndexOutOfBounds(t *testing.T) {
	img := New(image.Rect(0, 0, 2, 2), palette.Palette{})
	img.SetIndex(5, 5, 9)
	img.SetIndex(-1, 0, 9)

	assert.Equal(t, []uint8{0, 0}, img.Pix)
	assert.Equal(t, uint8(0), img.IndexAt(5, 5))
}

func TestImage_At(t *testing.T) {
	var pal palette.Palette
	pal[7] = palette.Color{R: 10, G: 20, B: 30}

	img := New(image.Rect(0, 0, 2, 2), pal)
	img.SetIndex(1, 1, 7)

	assert.Equal(t, pal[7], img.At(1, 1))
	assert.Equal(t, pal[0], img.At(0, 0))
	assert.Equal(t, pal[0], img.At(-1, -1))
}

func TestImage_ToPaletted(t *testing.T) {
	var pal palette.Palette
	pal[2] = palette.Color{R: 200, G: 100, B: 50}

	img := New(image.Rect(0, 0, 3, 2), pal)
	img.SetIndex(2, 0, 2)
	img.SetIndex(1, 1, 15)

	out := img.ToPaletted()
	require.Equal(t, img.Bounds(), out.Bounds())
	assert.Len(t, out.Palette, palette.Size)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, img.IndexAt(x, y), out.ColorIndexAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
	assert.Equal(t, color.RGBA{R: 200, G: 100, B: 50, A: 0xff}, out.Palette[2])
}

func TestImage_RGBA(t *testing.T) {
	var pal palette.Palette
	pal[4] = palette.Color{R: 1, G: 2, B: 3}

	img := New(image.Rect(0, 0, 2, 1), pal)
	img.SetIndex(1, 0, 4)

	out := img.RGBA()
	assert.Equal(t, color.RGBA{A: 0xff}, out.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 0xff}, out.RGBAAt(1, 0))
}

func BenchmarkPack(b *testing.B) {
	indices := make([]uint8, 640*400)
	for i := range indices {
		indices[i] = uint8(i % 16)
	}
	dst := make([]byte, PackedLen(len(indices)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Pack(dst, indices)
	}
}

func BenchmarkRemap(b *testing.B) {
	packed := make([]byte, PackedLen(640*400))
	for i := range packed {
		packed[i] = byte(i)
	}
	lut := SwapLUT(0, 9)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Remap(packed, lut)
	}
}
