package document_test

import (
	"bytes"
	"image"
	"testing"
	"time"

	"github.com/blueputty01/swiftnotes/pkg/document"
	"github.com/blueputty01/swiftnotes/pkg/ink"
	"github.com/blueputty01/swiftnotes/pkg/render"

	"github.com/stretchr/testify/require"
)

func page(t *testing.T) *image.RGBA {
	t.Helper()

	img, err := render.New().Render(ink.Page{
		Strokes: []ink.Stroke{
			{
				Tool: ink.Tool{Type: ink.ToolPen, Color: ink.Black},
				Points: []ink.Point{
					{X: 100, Y: 100},
					{X: 300, Y: 140},
				},
			},
		},
	})

	require.NoError(t, err)
	return img
}

func TestWrite(t *testing.T) {
	w := document.New()
	w.Metadata.Author = "Jane Doe"
	w.Metadata.Created = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	img := page(t)
	frame := render.Frame(img.Bounds())

	var buf bytes.Buffer

	err := w.Write(&buf, []document.Page{
		{
			Image: img,

			Overlays: []render.Overlay{
				{Text: "hello world", Rect: frame},
				{Text: `\(x^2\)`, Rect: frame},
			},
		},
		{
			Image: img,
		},
	})

	require.NoError(t, err)

	data := buf.Bytes()

	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	require.Contains(t, string(data), "Notes App")
	require.Contains(t, string(data), "Jane Doe")
	require.Equal(t, 1, bytes.Count(data, []byte("/Creator")))
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer

	err := document.New().Write(&buf, nil)
	require.ErrorIs(t, err, document.ErrEmptyDocument)
	require.Zero(t, buf.Len())
}

func TestWriteMissingImage(t *testing.T) {
	var buf bytes.Buffer

	err := document.New().Write(&buf, []document.Page{{}})
	require.ErrorIs(t, err, render.ErrMissingBase)
}

func TestWriteUnicodeText(t *testing.T) {
	img := page(t)
	frame := render.Frame(img.Bounds())

	var buf bytes.Buffer

	err := document.New().Write(&buf, []document.Page{
		{
			Image: img,

			Overlays: []render.Overlay{
				{Text: "x ≤ y → z, Größe", Rect: frame},
			},
		},
	})

	require.NoError(t, err)

	data := buf.String()

	require.Contains(t, data, "/FontFile2")
	require.Contains(t, data, "/Identity-H")
}

func TestWriteWithoutTextEmbedsNoFont(t *testing.T) {
	var buf bytes.Buffer

	err := document.New().Write(&buf, []document.Page{{Image: page(t)}})
	require.NoError(t, err)

	require.NotContains(t, buf.String(), "/FontFile2")
}
