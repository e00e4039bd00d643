package render_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/blueputty01/swiftnotes/pkg/ink"
	"github.com/blueputty01/swiftnotes/pkg/render"

	"github.com/stretchr/testify/require"
)

func count(img *image.RGBA, match func(color.RGBA) bool) int {
	var n int

	b := img.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if match(img.RGBAAt(x, y)) {
				n++
			}
		}
	}

	return n
}

func isRed(c color.RGBA) bool  { return c.R > 250 && c.G < 5 && c.B < 5 }
func isBlue(c color.RGBA) bool { return c.B > 250 && c.R < 5 && c.G < 5 }

func TestCompositeWithoutOverlays(t *testing.T) {
	base, err := render.New().Render(ink.Page{})
	require.NoError(t, err)

	img, err := render.Composite(base, nil)
	require.NoError(t, err)
	require.Equal(t, base.Pix, img.Pix)

	img, err = render.Composite(base, []render.Overlay{{Text: "  ", Rect: render.Frame(base.Bounds())}})
	require.NoError(t, err)
	require.Equal(t, base.Pix, img.Pix)
}

func TestCompositeDoesNotModifyBase(t *testing.T) {
	base, err := render.New().Render(ink.Page{})
	require.NoError(t, err)

	before := append([]byte(nil), base.Pix...)

	img, err := render.Composite(base, []render.Overlay{{Text: "hello world", Rect: render.Frame(base.Bounds())}})
	require.NoError(t, err)

	require.Equal(t, before, base.Pix)
	require.NotEqual(t, base.Pix, img.Pix)
}

func TestCompositeOrder(t *testing.T) {
	base, err := render.New().Render(ink.Page{})
	require.NoError(t, err)

	rect := render.Frame(base.Bounds())

	red := render.Overlay{Text: "MMMM HHHH", Rect: rect, Color: color.RGBA{255, 0, 0, 255}}
	blue := render.Overlay{Text: "MMMM HHHH", Rect: rect, Color: color.RGBA{0, 0, 255, 255}}

	img, err := render.Composite(base, []render.Overlay{red, blue})
	require.NoError(t, err)
	require.Zero(t, count(img, isRed))
	require.NotZero(t, count(img, isBlue))

	img, err = render.Composite(base, []render.Overlay{blue, red})
	require.NoError(t, err)
	require.Zero(t, count(img, isBlue))
	require.NotZero(t, count(img, isRed))
}

func TestCompositeClipsToRect(t *testing.T) {
	base, err := render.New().Render(ink.Page{})
	require.NoError(t, err)

	rect := image.Rect(100, 100, 300, 140)

	img, err := render.Composite(base, []render.Overlay{{
		Text:  "the quick brown fox jumps over the lazy dog again and again and again",
		Rect:  rect,
		Color: color.RGBA{255, 0, 0, 255},
	}})

	require.NoError(t, err)

	outside := count(img, func(c color.RGBA) bool { return c != color.RGBA{255, 255, 255, 255} }) -
		count(img.SubImage(rect).(*image.RGBA), func(c color.RGBA) bool { return c != color.RGBA{255, 255, 255, 255} })

	require.Zero(t, outside)
}

func TestCompositeMissingBase(t *testing.T) {
	_, err := render.Composite(nil, nil)
	require.ErrorIs(t, err, render.ErrMissingBase)
}
