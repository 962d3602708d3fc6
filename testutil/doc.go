// Package testutil provides testing utilities for the posterizer.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic random source and generators for
// synthetic pixel buffers in the pipeline's linear RGBA layout
// (4 bytes per pixel: R, G, B, A).
//
// # Random Pixel Generation
//
//	rng := testutil.NewRNG(4711)
//	buf := rng.RandomRGBA(10_000) // 40_000 bytes
//
// # Synthetic Buffers
//
//	solid := testutil.SolidRGBA(64, color.RGBA{R: 128, G: 128, B: 128, A: 255})
//	pair := testutil.FromColors(
//	    color.RGBA{A: 255},
//	    color.RGBA{R: 255, G: 255, B: 255, A: 255},
//	)
//
// FromColors emits one pixel per color, which keeps hand-written
// clustering scenarios readable. WellSeparated16 returns a fixed set
// of 16 mutually distant colors with pure black first.
package testutil
