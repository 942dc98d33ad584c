// Command squircledemo renders a smooth-corner rounded rectangle to a
// PNG file, as a visual check of the path construction.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/squircle"
	"golang.org/x/image/vector"
)

func main() {
	var (
		width      = flag.Int("width", 640, "image width")
		height     = flag.Int("height", 400, "image height")
		smoothness = flag.Float64("smoothness", 0.6, "corner smoothing in (0, 1]")
		radius     = flag.Float64("radius", 40, "corner radius")
		output     = flag.String("output", "squircle.png", "output file")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		squircle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// The library does not validate that the rounding fits; that is
	// the caller's job, so do it here before building the path.
	const margin = 40.0
	w := float64(*width) - 2*margin
	h := float64(*height) - 2*margin
	if *smoothness <= 0 || *smoothness > 1 {
		log.Fatalf("smoothness %v outside (0, 1]", *smoothness)
	}
	if need := 2 * (1 + *smoothness) * (*radius); *radius <= 0 || need > w || need > h {
		log.Fatalf("radius %v with smoothness %v does not fit a %vx%v rectangle",
			*radius, *smoothness, w, h)
	}

	path := squircle.SmoothRoundRect(margin, margin, w, h, *smoothness, *radius)

	r := vector.NewRasterizer(*width, *height)
	squircle.ToVector(path, r)

	dst := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	fill := image.NewUniform(color.RGBA{R: 0x2b, G: 0x6c, B: 0xb0, A: 0xff})
	r.Draw(dst, dst.Bounds(), fill, image.Point{})

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, dst); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}

	log.Printf("Wrote %s (%dx%d, smoothness %v, radius %v)\n",
		*output, *width, *height, *smoothness, *radius)
}
