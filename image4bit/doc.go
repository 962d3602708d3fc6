// Package image4bit implements the packed 4-bit indexed image format
// the posterizer emits: two pixels per byte, with the even-indexed
// pixel in the high nibble and the odd-indexed pixel in the low
// nibble. A buffer for n pixels is ceil(n/2) bytes long; for odd n the
// final low nibble carries no meaning.
//
// The package offers two views of the format. The buffer-level
// functions (Pack, Index, SwapLUT, Remap) operate on raw packed bytes
// and are what the posterize pipeline uses. The Image type wraps a
// packed buffer together with its palette and bounds and implements
// image.Image, so posterized frames plug into the stdlib image
// ecosystem:
//
//	img := image4bit.New(image.Rect(0, 0, 640, 400), pal)
//	img.SetIndex(10, 20, 7)
//	png.Encode(w, img.ToPaletted()) // indexed PNG
//
// Image addresses pixels linearly over the bounds rectangle rather
// than per row, so odd widths carry no row padding and Pix stays
// byte-identical to the pipeline's packed output for the same pixels.
package image4bit
