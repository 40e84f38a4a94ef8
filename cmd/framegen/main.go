package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/milk9111/scrubber/config"
	"github.com/milk9111/scrubber/frames"
	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func main() {
	configPath := flag.String("config", "", "path to a scrubber.yaml (default: config/scrubber.yaml, then embedded)")
	total := flag.Int("total", -1, "number of frames to write (default: frames.total from config)")
	width := flag.Int("w", 360, "frame width in pixels")
	height := flag.Int("h", 640, "frame height in pixels")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	n := cfg.Frames.Total
	if *total >= 0 {
		n = *total
	}

	pattern := cfg.Frames.Pattern()
	if err := writeSequence(pattern, n, *width, *height); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d frames: %s ... %s", n, pattern.Path(1), pattern.Path(n))
}

func writeSequence(pattern frames.Pattern, total, w, h int) error {
	if pattern.Directory != "" {
		if err := os.MkdirAll(filepath.FromSlash(pattern.Directory), 0o755); err != nil {
			return fmt.Errorf("framegen: mkdir %s: %w", pattern.Directory, err)
		}
	}
	for i := 1; i <= total; i++ {
		if err := writeFrame(pattern.Path(i), renderFrame(i, total, w, h)); err != nil {
			return err
		}
	}
	return nil
}

func writeFrame(path string, img image.Image) (err error) {
	f, err := os.Create(filepath.FromSlash(path))
	if err != nil {
		return fmt.Errorf("framegen: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("framegen: close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("framegen: encode %s: %w", path, err)
	}
	return nil
}

// renderFrame draws a background that shifts hue with the index, a progress
// bar, and the frame number scaled up from the 7x13 bitmap font.
func renderFrame(index, total, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	t := 0.0
	if total > 1 {
		t = float64(index-1) / float64(total-1)
	}
	bg := color.RGBA{R: uint8(40 + 180*t), G: 60, B: uint8(220 - 180*t), A: 0xff}
	xdraw.Draw(dst, dst.Bounds(), &image.Uniform{bg}, image.Point{}, xdraw.Src)

	bar := image.Rect(0, h-h/20, int(float64(w)*t), h)
	xdraw.Draw(dst, bar, &image.Uniform{colornames.White}, image.Point{}, xdraw.Src)

	label := labelImage(strconv.Itoa(index))
	scale := w / 2 / label.Bounds().Dx()
	if scale < 1 {
		scale = 1
	}
	lw, lh := label.Bounds().Dx()*scale, label.Bounds().Dy()*scale
	target := image.Rect((w-lw)/2, (h-lh)/2, (w+lw)/2, (h+lh)/2)
	xdraw.NearestNeighbor.Scale(dst, target, label, label.Bounds(), xdraw.Over, nil)

	return dst
}

func labelImage(s string) *image.RGBA {
	face := basicfont.Face7x13
	d := &font.Drawer{Face: face, Src: image.NewUniform(colornames.White)}
	width := d.MeasureString(s).Ceil()
	img := image.NewRGBA(image.Rect(0, 0, width, face.Height))
	d.Dst = img
	d.Dot = fixed.P(0, face.Ascent)
	d.DrawString(s)
	return img
}
