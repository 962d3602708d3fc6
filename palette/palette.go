package palette

import (
	"errors"
	"image/color"
)

const (
	// Size is the number of entries in a palette. Indices fit in a
	// 4-bit nibble, which is what the packed image format stores.
	Size = 16

	// EncodedLen is the wire size of a palette: Size entries of
	// 3 bytes each.
	EncodedLen = Size * 3
)

// ErrShortBuffer is returned when an encode or decode buffer is
// smaller than EncodedLen.
var ErrShortBuffer = errors.New("palette: short buffer")

var (
	_ color.Color = Color{}
	_ color.Model = Palette{}
)

// Color is a single 24-bit palette entry.
type Color struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface. Palette entries are
// always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Luma returns the BT.601 luma of the entry with channels scaled to
// [0, 1]: 0.299 R + 0.587 G + 0.114 B. It is zero only for pure black.
func (c Color) Luma() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// DistanceSquared returns the squared Euclidean RGB distance between
// two entries. Channel deltas are widened to signed ints before
// squaring; the result is at most 3 * 255 * 255.
func (c Color) DistanceSquared(o Color) int {
	dr := int(c.R) - int(o.R)
	dg := int(c.G) - int(o.G)
	db := int(c.B) - int(o.B)
	return dr*dr + dg*dg + db*db
}

// Palette is a full 16-entry palette. The zero value is all black,
// which is also the degenerate palette for an empty input.
type Palette [Size]Color

// FromBytes decodes a palette from its 48-byte wire layout. Extra
// bytes beyond EncodedLen are ignored.
func FromBytes(b []byte) (Palette, error) {
	var p Palette
	if len(b) < EncodedLen {
		return p, ErrShortBuffer
	}
	for i := range p {
		p[i] = Color{R: b[i*3], G: b[i*3+1], B: b[i*3+2]}
	}
	return p, nil
}

// Encode writes the 48-byte wire layout into dst.
func (p Palette) Encode(dst []byte) error {
	if len(dst) < EncodedLen {
		return ErrShortBuffer
	}
	for i, c := range p {
		dst[i*3+0] = c.R
		dst[i*3+1] = c.G
		dst[i*3+2] = c.B
	}
	return nil
}

// Bytes returns a freshly allocated copy of the wire layout.
func (p Palette) Bytes() []byte {
	b := make([]byte, EncodedLen)
	_ = p.Encode(b)
	return b
}

// DarkestIndex returns the index of the entry with the lowest BT.601
// luma. The scan uses strict less-than, so the lowest index wins ties.
func (p Palette) DarkestIndex() int {
	darkest := 0
	minLuma := p[0].Luma()
	for i := 1; i < Size; i++ {
		if l := p[i].Luma(); l < minLuma {
			minLuma = l
			darkest = i
		}
	}
	return darkest
}

// NormalizeBlack forces the darkest entry to pure black and swaps it
// into entry 0. It returns the index the darkest entry previously
// occupied; a non-zero return means packed pixel indices 0 and d must
// be exchanged to keep the image consistent (see image4bit.SwapLUT).
//
// Calling NormalizeBlack on an already normalized palette returns 0
// and changes nothing.
func (p *Palette) NormalizeBlack() int {
	d := p.DarkestIndex()
	p[d] = Color{}
	if d != 0 {
		p[0], p[d] = p[d], p[0]
	}
	return d
}

// Index returns the palette index of the entry closest to c in squared
// RGB distance. Ties resolve to the lowest index.
func (p Palette) Index(c color.Color) int {
	r, g, b, _ := c.RGBA()
	want := Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	best := 0
	minDist := p[0].DistanceSquared(want)
	for i := 1; i < Size; i++ {
		if d := p[i].DistanceSquared(want); d < minDist {
			minDist = d
			best = i
		}
	}
	return best
}

// Convert implements the color.Model interface.
func (p Palette) Convert(c color.Color) color.Color {
	return p[p.Index(c)]
}
