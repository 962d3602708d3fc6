// Package posterize reduces RGBA pixel buffers to packed 16-color images.
//
// Posterize clusters the pixels of a frame into 16 colors with k-means,
// packs the per-pixel cluster indices two to a byte, and emits a 48-byte
// RGB palette normalized so that index 0 is pure black. The output pair is
// exactly the payload a 4-bit indexed display protocol consumes: ceil(n/2)
// image bytes plus 16 palette entries.
//
// # Quick Start
//
// Buffer mode (the wire-level API):
//
//	ctx := context.Background()
//	p := posterize.New()
//
//	dst := make([]byte, image4bit.PackedLen(numPixels))
//	pal := make([]byte, palette.EncodedLen)
//	stats, _ := p.Posterize(ctx, dst, pal, rgba, numPixels)
//
// Image mode (any image.Image source):
//
//	img4, _ := p.Image(ctx, img)      // *image4bit.Image carrying its palette
//	png.Encode(w, img4.ToPaletted())  // indexed PNG preview
//
// # Determinism
//
// A fixed seed pins the initial cluster assignment; every later step is
// deterministic, so identical input produces identical output regardless
// of parallelism:
//
//	seed := int64(42)
//	p := posterize.New(func(o *posterize.Options) {
//	    o.RandomSeed = &seed
//	})
//
// With a nil seed every run draws a fresh time-based seed.
//
// # Black At Zero
//
// After clustering, the darkest palette entry (by BT.601 luma) is forced
// to pure black and swapped to index 0, and the packed image is rewritten
// through a 256-entry byte table so pixels keep their colors. Consumers
// can rely on index 0 being (0,0,0).
//
// # Key Features
//
//   - Fixed 16-color quantization for 4-bit indexed displays
//   - Two pixels per byte, even pixel in the high nibble
//   - Black-at-zero palette normalization
//   - Deterministic output for a fixed seed, parallel refinement
//   - image.Image interop via image4bit and stdlib color.Model
package posterize
