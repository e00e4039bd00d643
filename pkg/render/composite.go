package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultFontSize = 12.0

	// inset of the annotation frame from the page edges, in pixels
	FrameMargin = 48
)

var ErrMissingBase = errors.New("missing base image")

var regularFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Overlay is recognized text placed at a fixed rectangle of a page.
type Overlay struct {
	Text string

	Page int
	Rect image.Rectangle

	Color color.Color
}

// Frame returns the annotation rectangle shared by all overlays of a page.
func Frame(bounds image.Rectangle) image.Rectangle {
	frame := bounds.Inset(FrameMargin)

	if frame.Empty() {
		return bounds
	}

	return frame
}

// Composite draws the overlays onto a copy of base in the given order;
// later overlays paint over earlier ones.
func Composite(base image.Image, overlays []Overlay) (*image.RGBA, error) {
	if base == nil {
		return nil, ErrMissingBase
	}

	bounds := base.Bounds()

	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, base, bounds.Min, draw.Src)

	if len(overlays) == 0 {
		return dst, nil
	}

	f, err := regularFont()

	if err != nil {
		return nil, err
	}

	// faces keep per-glyph buffers and must not be shared across goroutines
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    DefaultFontSize,
		DPI:     DefaultDPI,
		Hinting: font.HintingFull,
	})

	if err != nil {
		return nil, err
	}

	defer face.Close()

	for _, o := range overlays {
		drawText(dst, face, o)
	}

	return dst, nil
}

func drawText(dst *image.RGBA, face font.Face, o Overlay) {
	rect := o.Rect.Intersect(dst.Bounds())

	if rect.Empty() || strings.TrimSpace(o.Text) == "" {
		return
	}

	c := o.Color

	if c == nil {
		c = color.Black
	}

	target, ok := dst.SubImage(rect).(*image.RGBA)

	if !ok {
		return
	}

	metrics := face.Metrics()

	d := &font.Drawer{
		Dst:  target,
		Src:  image.NewUniform(c),
		Face: face,
	}

	y := fixed.I(rect.Min.Y) + metrics.Ascent

	for _, line := range wrap(d, o.Text, fixed.I(rect.Dx())) {
		if y-metrics.Ascent >= fixed.I(rect.Max.Y) {
			break
		}

		d.Dot = fixed.Point26_6{X: fixed.I(rect.Min.X), Y: y}
		d.DrawString(line)

		y += metrics.Height
	}
}

// wrap breaks text into lines that fit into width, keeping explicit line
// breaks. Words wider than the frame are placed on their own line.
func wrap(d *font.Drawer, text string, width fixed.Int26_6) []string {
	var lines []string

	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)

		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]

		for _, w := range words[1:] {
			candidate := line + " " + w

			if d.MeasureString(candidate) > width {
				lines = append(lines, line)
				line = w

				continue
			}

			line = candidate
		}

		lines = append(lines, line)
	}

	return lines
}
