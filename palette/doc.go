// Package palette defines the 16-entry RGB palette produced by the
// posterizer and the black-at-zero normalization applied to it.
//
// A palette is a fixed array of 16 Color values with a 48-byte wire
// layout (R0,G0,B0 ... R15,G15,B15). Entry 0 is reserved for pure
// black; the display firmware treats index 0 as transparent.
//
// # Normalization
//
// NormalizeBlack locates the entry with the lowest BT.601 luma, forces
// it to (0,0,0) and swaps it into entry 0:
//
//	d := pal.NormalizeBlack()
//	if d != 0 {
//	    // packed pixel indices 0 and d must be exchanged as well,
//	    // see image4bit.SwapLUT.
//	}
//
// # Interop
//
// Color implements image/color.Color and Palette implements
// image/color.Model (nearest entry by squared RGB distance), so a
// Palette can be used directly with the image and image/draw packages.
package palette
