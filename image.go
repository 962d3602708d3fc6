package posterize

import (
	"context"
	"image"
	"image/draw"
	"time"

	"github.com/hupe1980/posterize/image4bit"
	"github.com/hupe1980/posterize/palette"
)

// FromImage flattens img into the linear RGBA layout Posterize consumes
// and returns the buffer together with the pixel count. Any image.Image
// works; color conversion follows the stdlib draw rules.
func FromImage(img image.Image) ([]byte, int) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, 0
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return rgba.Pix, w * h
}

// Image posterizes img and returns the packed 4-bit result carrying its
// normalized palette.
func (p *Posterizer) Image(ctx context.Context, img image.Image) (*image4bit.Image, error) {
	start := time.Now()
	out, err := p.image(ctx, img)
	duration := time.Since(start)
	p.opts.Metrics.RecordImage(duration, err)
	bounds := img.Bounds()
	p.opts.Logger.LogImage(ctx, bounds.Dx(), bounds.Dy(), err)
	return out, err
}

func (p *Posterizer) image(ctx context.Context, img image.Image) (*image4bit.Image, error) {
	bounds := img.Bounds()
	src, numPixels := FromImage(img)

	dst := make([]byte, image4bit.PackedLen(numPixels))
	var pal [palette.EncodedLen]byte

	if _, err := p.posterize(ctx, dst, pal[:], src, numPixels); err != nil {
		return nil, err
	}

	pl, err := palette.FromBytes(pal[:])
	if err != nil {
		return nil, err
	}

	return &image4bit.Image{
		Pix:     dst,
		Rect:    image.Rect(0, 0, bounds.Dx(), bounds.Dy()),
		Palette: pl,
	}, nil
}

// Palette posterizes img and returns only the normalized palette.
func (p *Posterizer) Palette(ctx context.Context, img image.Image) (palette.Palette, error) {
	out, err := p.Image(ctx, img)
	if err != nil {
		return palette.Palette{}, err
	}
	return out.Palette, nil
}
