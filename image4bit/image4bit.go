package image4bit

import (
	"image"
	"image/color"

	"github.com/hupe1980/posterize/palette"
)

// PackedLen returns the number of bytes needed to hold n packed
// pixels: two per byte, rounded up.
func PackedLen(n int) int {
	return (n + 1) / 2
}

// Pack writes pixel indices into dst, two per byte with the
// even-indexed pixel in the high nibble. Indices are masked to 4 bits.
// dst must hold at least PackedLen(len(indices)) bytes. For an odd
// pixel count the trailing low nibble is written as zero.
func Pack(dst []byte, indices []uint8) {
	n := len(indices)
	for i := 0; i+1 < n; i += 2 {
		dst[i/2] = (indices[i]&0x0f)<<4 | indices[i+1]&0x0f
	}
	if n%2 != 0 {
		dst[n/2] = (indices[n-1] & 0x0f) << 4
	}
}

// Index returns the palette index of pixel i: the high nibble of byte
// i/2 for even i, the low nibble for odd i.
func Index(packed []byte, i int) uint8 {
	shift := uint(4 * (1 - i&1))
	return (packed[i/2] >> shift) & 0x0f
}

// SwapLUT builds a 256-entry remap table that exchanges palette
// indices a and b in a packed byte. Only the four byte values whose
// two nibbles are both drawn from {a, b} are rewritten; every other
// byte maps to itself. The table is a permutation of [0, 255] and its
// own inverse, so applying it twice restores the original bytes.
func SwapLUT(a, b uint8) *[256]uint8 {
	a &= 0x0f
	b &= 0x0f

	var lut [256]uint8
	for i := range lut {
		lut[i] = uint8(i)
	}
	lut[a<<4|a] = b<<4 | b
	lut[a<<4|b] = b<<4 | a
	lut[b<<4|a] = a<<4 | b
	lut[b<<4|b] = a<<4 | a
	return &lut
}

// Remap rewrites every byte of packed through lut, including the
// final partial byte of an odd-length image.
func Remap(packed []byte, lut *[256]uint8) {
	for i, b := range packed {
		packed[i] = lut[b]
	}
}

// Image is an in-memory 4-bit indexed image backed by the packed
// pixel layout.
type Image struct {
	// Pix holds the packed indices, PackedLen(w*h) bytes.
	Pix []uint8
	// Rect is the image's bounds.
	Rect image.Rectangle
	// Palette maps pixel indices to colors.
	Palette palette.Palette
}

var _ image.Image = (*Image)(nil)

// New returns an image with the given bounds and palette, with every
// pixel set to index 0.
func New(r image.Rectangle, p palette.Palette) *Image {
	return &Image{
		Pix:     make([]uint8, PackedLen(r.Dx()*r.Dy())),
		Rect:    r,
		Palette: p,
	}
}

// ColorModel implements image.Image.
func (p *Image) ColorModel() color.Model { return p.Palette }

// Bounds implements image.Image.
func (p *Image) Bounds() image.Rectangle { return p.Rect }

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.Palette[p.IndexAt(x, y)]
}

// PixOffset returns the linear pixel offset of (x, y). The pixel is
// stored in Pix[offset/2]; even offsets occupy the high nibble.
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Rect.Dx() + (x - p.Rect.Min.X)
}

// IndexAt returns the palette index of the pixel at (x, y), or 0 for
// points outside the bounds.
func (p *Image) IndexAt(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	return Index(p.Pix, p.PixOffset(x, y))
}

// SetIndex sets the pixel at (x, y) to palette index idx. Points
// outside the bounds are ignored.
func (p *Image) SetIndex(x, y int, idx uint8) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	shift := uint(4 * (1 - i&1))
	p.Pix[i/2] = (p.Pix[i/2] &^ (0x0f << shift)) | (idx&0x0f)<<shift
}

// Opaque reports whether the image is fully opaque. It always is:
// palette entries carry no alpha.
func (p *Image) Opaque() bool { return true }

// ToPaletted converts the image to a stdlib *image.Paletted, which
// the png and gif encoders store in indexed form.
func (p *Image) ToPaletted() *image.Paletted {
	cp := make(color.Palette, palette.Size)
	for i, c := range p.Palette {
		cp[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}

	out := image.NewPaletted(p.Rect, cp)
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			out.SetColorIndex(x, y, p.IndexAt(x, y))
		}
	}
	return out
}

// RGBA renders the image into a stdlib *image.RGBA with every pixel
// fully opaque.
func (p *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(p.Rect)
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			c := p.Palette[p.IndexAt(x, y)]
			o := out.PixOffset(x, y)
			out.Pix[o+0] = c.R
			out.Pix[o+1] = c.G
			out.Pix[o+2] = c.B
			out.Pix[o+3] = 0xff
		}
	}
	return out
}
