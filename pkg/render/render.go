package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/blueputty01/swiftnotes/pkg/ink"
)

const (
	// US-Letter (8.5 x 11 in) at 96 DPI
	DefaultWidth  = 816
	DefaultHeight = 1056

	DefaultDPI = 96

	DefaultStrokeWidth = 2.0

	// canvas limits; larger canvases are rejected rather than allocated
	MaxDimension = 16384
	MaxPixels    = 16 << 20
)

var ErrInvalidBounds = errors.New("invalid canvas bounds")

type Renderer struct {
	Width  int
	Height int

	// Scale converts stroke coordinates into canvas pixels.
	Scale float64
}

func New() *Renderer {
	return &Renderer{
		Width:  DefaultWidth,
		Height: DefaultHeight,

		Scale: 1,
	}
}

func (r *Renderer) Bounds() (image.Rectangle, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return image.Rectangle{}, ErrInvalidBounds
	}

	if r.Width > MaxDimension || r.Height > MaxDimension || r.Width*r.Height > MaxPixels {
		return image.Rectangle{}, ErrInvalidBounds
	}

	return image.Rect(0, 0, r.Width, r.Height), nil
}

// Render rasterizes every stroke of the page onto an opaque white canvas.
func (r *Renderer) Render(page ink.Page) (*image.RGBA, error) {
	bounds, err := r.Bounds()

	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.White, image.Point{}, draw.Src)

	r.paint(dst, page.Strokes)

	return dst, nil
}

// RenderSubset rasterizes the given strokes onto a transparent canvas of the
// same size as a full page.
func (r *Renderer) RenderSubset(strokes []ink.Stroke) (*image.RGBA, error) {
	bounds, err := r.Bounds()

	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(bounds)

	r.paint(dst, strokes)

	return dst, nil
}

// Flatten composes img over an opaque background.
func Flatten(img image.Image, background color.Color) *image.RGBA {
	bounds := img.Bounds()

	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Over)

	return dst
}

// Visible reports whether img has at least one pixel that is not fully
// transparent.
func Visible(img image.Image) bool {
	if img == nil {
		return false
	}

	if rgba, ok := img.(*image.RGBA); ok {
		for i := 3; i < len(rgba.Pix); i += 4 {
			if rgba.Pix[i] != 0 {
				return true
			}
		}

		return false
	}

	b := img.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				return true
			}
		}
	}

	return false
}
