package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"

	"golang.org/x/image/bmp"

	"github.com/ajroetker/go-orient/orient"
)

// decoded wraps a loaded image in the representation the engine works
// on: grayscale input becomes a single 8-bit plane, everything else a
// single 32-bit RGBA plane.
type decoded struct {
	gray *image.Gray
	rgba *image.NRGBA
}

func loadImage(path string) (*decoded, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if g, ok := img.(*image.Gray); ok {
		return &decoded{gray: g}, nil
	}

	b := img.Bounds()
	rgba := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return &decoded{rgba: rgba}, nil
}

// frame builds a frame sharing the decoded image's pixel storage.
func (d *decoded) frame() *orient.Frame {
	var (
		pixel      orient.PixelFormat
		pix        []byte
		stride     int
		pixelBytes int
		bounds     image.Rectangle
	)
	if d.gray != nil {
		pixel, pix, stride, pixelBytes, bounds = orient.PixelGrey, d.gray.Pix, d.gray.Stride, 1, d.gray.Bounds()
	} else {
		pixel, pix, stride, pixelBytes, bounds = orient.PixelRGBA, d.rgba.Pix, d.rgba.Stride, 4, d.rgba.Bounds()
	}

	w, h := bounds.Dx(), bounds.Dy()
	frame := &orient.Frame{
		Format: orient.Format{
			Pixel:         pixel,
			Width:         w,
			Height:        h,
			VisibleWidth:  w,
			VisibleHeight: h,
			Orientation:   orient.OrientNormal,
		},
		PlaneCount: 1,
	}
	frame.Planes[0] = orient.Plane{
		Pix:        pix,
		Stride:     stride,
		Width:      w,
		Height:     h,
		PixelBytes: pixelBytes,
	}
	return frame
}

// toImage rebuilds a standard library image over the frame's storage.
func toImage(f *orient.Frame) (image.Image, error) {
	p := f.Planes[0]
	r := image.Rect(0, 0, p.Width, p.Height)
	switch f.Format.Pixel {
	case orient.PixelGrey:
		return &image.Gray{Pix: p.Pix, Stride: p.Stride, Rect: r}, nil
	case orient.PixelRGBA:
		return &image.NRGBA{Pix: p.Pix, Stride: p.Stride, Rect: r}, nil
	default:
		return nil, fmt.Errorf("no image mapping for %v", f.Format.Pixel)
	}
}

func saveImage(path string, f *orient.Frame) error {
	img, err := toImage(f)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(out, img)
	default:
		err = png.Encode(out, img)
	}
	if err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}
