//go:build !tinygo

// Command lcdsnap renders one pass of the demo scene and writes it as a PNG or
// as the raw page-packed framebuffer bytes.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"monolcd/app"
	"monolcd/hal"
	"monolcd/internal/buildinfo"
	"monolcd/mono"
	"monolcd/mono/fb"
)

type options struct {
	out       string
	raw       bool
	scale     int
	width     int
	height    int
	rowHeight int
	imagePath string
	state     app.State
}

func main() {
	var o options
	o.state = app.DefaultState
	flag.StringVar(&o.out, "o", "lcd.png", "Output file (- for stdout).")
	flag.BoolVar(&o.raw, "raw", false, "Write raw framebuffer bytes instead of PNG.")
	flag.IntVar(&o.scale, "scale", hal.DefaultScale, "PNG pixel scale.")
	flag.IntVar(&o.width, "width", hal.DefaultWidth, "Panel width.")
	flag.IntVar(&o.height, "height", hal.DefaultHeight, "Panel height.")
	flag.IntVar(&o.rowHeight, "row-height", fb.DefaultRowHeight, "Pixels per framebuffer byte (1..8).")
	flag.IntVar(&o.state.Progress, "progress", o.state.Progress, "Progress bar percent.")
	flag.IntVar(&o.state.Radius, "radius", o.state.Radius, "Circle radius.")
	flag.IntVar(&o.state.Thickness, "thickness", o.state.Thickness, "Circle ring thickness.")
	flag.IntVar(&o.state.Scroll, "scroll", o.state.Scroll, "Scroller position percent.")
	flag.StringVar(&o.imagePath, "image", "", "Optional picture to dither into the scene.")
	version := flag.Bool("version", false, "Print version and exit.")
	flag.Parse()

	if *version {
		fmt.Println("lcdsnap", buildinfo.String())
		return
	}
	if err := run(o); err != nil {
		fatalf("lcdsnap: %v", err)
	}
}

func run(o options) error {
	var pic image.Image
	if o.imagePath != "" {
		img, err := loadImage(o.imagePath)
		if err != nil {
			return err
		}
		pic = img
	}

	f, err := render(o, pic)
	if err != nil {
		return err
	}

	w := io.Writer(os.Stdout)
	if o.out != "-" {
		file, err := os.Create(o.out)
		if err != nil {
			return fmt.Errorf("create %s: %w", o.out, err)
		}
		defer file.Close()
		w = file
	}
	if o.raw {
		_, err = w.Write(f.Bytes())
		return err
	}
	return writePNG(w, f, o.scale)
}

func render(o options, pic image.Image) (*fb.Framebuffer, error) {
	cfg := fb.Config{Width: o.width, Height: o.height, RowHeight: o.rowHeight}
	buf := make([]byte, fb.BufferLen(cfg.Width, cfg.Height, max(cfg.RowHeight, 1)))
	f, err := fb.NewWithConfig(buf, cfg)
	if err != nil {
		return nil, err
	}
	f.Clear(mono.White)
	app.Scene{State: o.state, Picture: pic}.Draw(f)
	return f, nil
}

func writePNG(w io.Writer, f *fb.Framebuffer, scale int) error {
	if scale < 1 {
		scale = 1
	}
	r := image.Rect(0, 0, f.Width()*scale, f.Height()*scale)
	// Scale through RGBA; NearestNeighbor cannot target a Paletted image.
	scaled := image.NewRGBA(r)
	draw.NearestNeighbor.Scale(scaled, r, f, f.Bounds(), draw.Src, nil)
	dst := image.NewPaletted(r, fb.Palette)
	draw.Draw(dst, r, scaled, image.Point{}, draw.Src)
	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
