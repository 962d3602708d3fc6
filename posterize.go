package posterize

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/hupe1980/posterize/image4bit"
	"github.com/hupe1980/posterize/internal/kmeans"
	"github.com/hupe1980/posterize/palette"
)

// Stats describes a completed posterize run.
type Stats struct {
	// Pixels is the number of pixels processed.
	Pixels int

	// Iterations is the number of refinement rounds executed.
	Iterations int

	// Converged reports whether assignments stabilized before the
	// iteration cap.
	Converged bool
}

// Posterizer reduces RGBA pixel buffers to 16 colors. It is safe for
// concurrent use; every run carries its own scratch state.
type Posterizer struct {
	opts Options
}

// New creates a new Posterizer.
func New(optFns ...func(o *Options)) *Posterizer {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = NoopMetricsCollector{}
	}

	return &Posterizer{opts: opts}
}

// Posterize quantizes numPixels RGBA quads from src into dst and pal.
// dst receives the packed 4-bit image (image4bit.PackedLen(numPixels)
// bytes, even pixel in the high nibble), pal the 48-byte palette with
// pure black at index 0. Alpha bytes in src are ignored and src is never
// written. numPixels == 0 writes an all-black palette and nothing else.
func (p *Posterizer) Posterize(ctx context.Context, dst, pal, src []byte, numPixels int) (Stats, error) {
	start := time.Now()
	stats, err := p.posterize(ctx, dst, pal, src, numPixels)
	duration := time.Since(start)
	p.opts.Metrics.RecordPosterize(stats.Pixels, stats.Iterations, duration, err)
	p.opts.Logger.LogPosterize(ctx, stats.Pixels, stats.Iterations, stats.Converged, err)
	return stats, err
}

func (p *Posterizer) posterize(ctx context.Context, dst, pal, src []byte, numPixels int) (Stats, error) {
	if numPixels < 0 {
		return Stats{}, fmt.Errorf("%w: %d", ErrInvalidPixelCount, numPixels)
	}
	if len(pal) < palette.EncodedLen {
		return Stats{}, &ErrBufferTooSmall{Buffer: "palette", Required: palette.EncodedLen, Actual: len(pal), cause: palette.ErrShortBuffer}
	}
	if numPixels == 0 {
		// No pixels to cluster, the palette stays all black.
		return Stats{}, palette.Palette{}.Encode(pal)
	}
	if need := numPixels * 4; len(src) < need {
		return Stats{}, &ErrBufferTooSmall{Buffer: "source", Required: need, Actual: len(src)}
	}
	packedLen := image4bit.PackedLen(numPixels)
	if len(dst) < packedLen {
		return Stats{}, &ErrBufferTooSmall{Buffer: "image", Required: packedLen, Actual: len(dst)}
	}

	var seed int64
	if p.opts.RandomSeed != nil {
		seed = *p.opts.RandomSeed
	} else {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) // nolint gosec

	assignments := make([]uint8, numPixels)
	kmeans.Seed(assignments, palette.Size, rng)

	res, err := kmeans.Refine(ctx, src[:numPixels*4], assignments, palette.Size, p.opts.MaxIterations, p.opts.Parallelism)
	if err != nil {
		return Stats{}, err
	}

	image4bit.Pack(dst[:packedLen], assignments)

	pl, err := palette.FromBytes(res.Centroids)
	if err != nil {
		return Stats{}, err
	}
	if d := pl.NormalizeBlack(); d != 0 {
		image4bit.Remap(dst[:packedLen], image4bit.SwapLUT(0, uint8(d)))
	}
	if err := pl.Encode(pal); err != nil {
		return Stats{}, err
	}

	return Stats{Pixels: numPixels, Iterations: res.Iterations, Converged: res.Converged}, nil
}

// ApplyPalette renders a packed 4-bit image back into RGBA pixels. For
// each of the numPixels nibbles in packed it writes the matching 3-byte
// palette entry from pal plus an opaque alpha byte to dst. numPixels ==
// 0 writes nothing.
func ApplyPalette(dst, packed, pal []byte, numPixels int) error {
	if numPixels < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPixelCount, numPixels)
	}
	if numPixels == 0 {
		return nil
	}
	if len(pal) < palette.EncodedLen {
		return &ErrBufferTooSmall{Buffer: "palette", Required: palette.EncodedLen, Actual: len(pal), cause: palette.ErrShortBuffer}
	}
	if need := image4bit.PackedLen(numPixels); len(packed) < need {
		return &ErrBufferTooSmall{Buffer: "image", Required: need, Actual: len(packed)}
	}
	if need := numPixels * 4; len(dst) < need {
		return &ErrBufferTooSmall{Buffer: "destination", Required: need, Actual: len(dst)}
	}

	for i := 0; i < numPixels; i++ {
		idx := int(image4bit.Index(packed, i))
		dst[i*4+0] = pal[idx*3+0]
		dst[i*4+1] = pal[idx*3+1]
		dst[i*4+2] = pal[idx*3+2]
		dst[i*4+3] = 0xff
	}

	return nil
}
