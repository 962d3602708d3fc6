// Command posterize converts images into packed 4-bit indexed payloads.
//
// Usage:
//
//	posterize conv [options] <input>   image → 16-color preview and raw payloads (use "-" for stdin)
//	posterize info [options] <input>   posterize and print stats and the palette
//
// Supported input formats: PNG, JPEG, GIF, WebP, BMP and TIFF.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/hupe1980/posterize"
	"github.com/hupe1980/posterize/image4bit"
	"github.com/hupe1980/posterize/palette"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "conv":
		err = runConv(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "posterize: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "posterize: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  posterize conv [options] <input>   Reduce an image to 16 colors
  posterize info [options] <input>   Posterize and print stats and the palette

Use "-" as input to read from stdin, "-o -" to write to stdout.

Run "posterize <command> -h" for command-specific options.
`)
}

// openInput returns an io.ReadCloser for the given path.
// If path is "-", stdin is returned (caller should not close).
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// newPosterizer builds a Posterizer from the shared CLI flags.
func newPosterizer(seed int64, iters, workers int, verbose bool) *posterize.Posterizer {
	return posterize.New(func(o *posterize.Options) {
		if seed >= 0 {
			s := seed
			o.RandomSeed = &s
		}
		o.MaxIterations = iters
		o.Parallelism = workers
		if verbose {
			o.Logger = posterize.NewTextLogger(slog.LevelDebug)
		}
	})
}

// --- conv ---

func runConv(args []string) error {
	fs := flag.NewFlagSet("conv", flag.ContinueOnError)
	output := fs.String("o", "", `preview path (default: <input>_poster.png, "-" for stdout)`)
	raw := fs.String("raw", "", "write raw payloads to <prefix>.4bp and <prefix>.pal")
	resize := fs.String("resize", "", "scale input to WxH before posterizing")
	seed := fs.Int64("seed", -1, "random seed (-1 = time-based)")
	iters := fs.Int("iters", posterize.DefaultMaxIterations, "maximum refinement iterations")
	workers := fs.Int("workers", 0, "assignment workers (0 = all cores)")
	quality := fs.Int("q", 90, "JPEG quality 1-100")
	verbose := fs.Bool("v", false, "verbose debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("conv: missing input file\nUsage: posterize conv [options] <input>")
	}
	inputPath := fs.Arg(0)

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("conv: decoding input: %w", err)
	}

	if *resize != "" {
		w, h, err := parseSize(*resize)
		if err != nil {
			return err
		}
		img = scaleImage(img, w, h)
	}

	p := newPosterizer(*seed, *iters, *workers, *verbose)
	out4, err := p.Image(context.Background(), img)
	if err != nil {
		return fmt.Errorf("conv: %w", err)
	}

	if *raw != "" {
		if err := writeRaw(*raw, out4); err != nil {
			return err
		}
		if *output == "" {
			return nil // raw-only mode
		}
	}

	return writePreview(inputPath, *output, out4, *quality)
}

// parseSize parses a "WxH" dimension string.
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("conv: invalid size %q (use WxH)", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("conv: invalid width %q", ws)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("conv: invalid height %q", hs)
	}
	return w, h, nil
}

// scaleImage resamples img to w x h with Catmull-Rom interpolation.
func scaleImage(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// writeRaw emits the two device payloads: the packed nibble buffer and
// the 48-byte palette.
func writeRaw(prefix string, img *image4bit.Image) error {
	imgPath := prefix + ".4bp"
	if err := os.WriteFile(imgPath, img.Pix, 0o644); err != nil {
		return err
	}

	palPath := prefix + ".pal"
	if err := os.WriteFile(palPath, img.Palette.Bytes(), 0o644); err != nil {
		os.Remove(imgPath)
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes) and %s (%d bytes)\n", imgPath, len(img.Pix), palPath, palette.EncodedLen)
	return nil
}

func writePreview(inputPath, outputPath string, img *image4bit.Image, quality int) error {
	if outputPath == "-" {
		return encodePreview(os.Stdout, img, "png", quality)
	}

	if outputPath == "" {
		base := "output"
		if inputPath != "-" {
			base = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		}
		outputPath = base + "_poster.png"
	}

	format := "png"
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".jpg", ".jpeg":
		format = "jpeg"
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	if err := encodePreview(out, img, format, quality); err != nil {
		out.Close()
		os.Remove(outputPath)
		return fmt.Errorf("conv: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(outputPath)
		return err
	}

	b := img.Bounds()
	fmt.Fprintf(os.Stderr, "Posterized %s → %s (%dx%d, 16 colors)\n", inputPath, outputPath, b.Dx(), b.Dy())
	return nil
}

// encodePreview writes img in the specified format to w. PNG output
// stays indexed; JPEG renders through RGBA.
func encodePreview(w io.Writer, img *image4bit.Image, format string, quality int) error {
	switch format {
	case "jpeg", "jpg":
		return jpeg.Encode(w, img.RGBA(), &jpeg.Options{Quality: quality})
	default:
		return png.Encode(w, img.ToPaletted())
	}
}

// --- info ---

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	seed := fs.Int64("seed", -1, "random seed (-1 = time-based)")
	iters := fs.Int("iters", posterize.DefaultMaxIterations, "maximum refinement iterations")
	workers := fs.Int("workers", 0, "assignment workers (0 = all cores)")
	verbose := fs.Bool("v", false, "verbose debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("info: missing input file\nUsage: posterize info [options] <input>")
	}
	inputPath := fs.Arg(0)

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	img, format, err := image.Decode(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("info: decoding input: %w", err)
	}

	p := newPosterizer(*seed, *iters, *workers, *verbose)

	src, numPixels := posterize.FromImage(img)
	dst := make([]byte, image4bit.PackedLen(numPixels))
	pal := make([]byte, palette.EncodedLen)

	stats, err := p.Posterize(context.Background(), dst, pal, src, numPixels)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	pl, err := palette.FromBytes(pal)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	name := inputPath
	if inputPath == "-" {
		name = "<stdin>"
	}

	bounds := img.Bounds()
	fmt.Printf("File:        %s\n", name)
	fmt.Printf("Format:      %s\n", format)
	fmt.Printf("Dimensions:  %d x %d\n", bounds.Dx(), bounds.Dy())
	fmt.Printf("Pixels:      %d\n", stats.Pixels)
	fmt.Printf("Packed size: %d bytes\n", len(dst))
	fmt.Printf("Iterations:  %d\n", stats.Iterations)
	fmt.Printf("Converged:   %v\n", stats.Converged)
	fmt.Println("Palette:")
	for i, c := range pl {
		fmt.Printf("  %2d: #%02X%02X%02X  luma %.3f\n", i, c.R, c.G, c.B, c.Luma())
	}

	if inputPath != "-" {
		fi, err := os.Stat(inputPath)
		if err == nil {
			fmt.Printf("File size:   %d bytes\n", fi.Size())
		}
	}

	return nil
}
