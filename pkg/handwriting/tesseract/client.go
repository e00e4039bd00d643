package tesseract

import (
	"context"
	"errors"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/blueputty01/swiftnotes/pkg/handwriting"
	"github.com/blueputty01/swiftnotes/pkg/ink"
	"github.com/blueputty01/swiftnotes/pkg/render"
)

var _ handwriting.Provider = &Client{}

var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// margin around the ink bounding box when no writing area is given
const inkPadding = 16

type Client struct {
	client *http.Client

	modelURL string
	modelDir string

	models *ModelManager
}

func New(options ...Option) (*Client, error) {
	c := &Client{
		client: http.DefaultClient,

		modelURL: DefaultModelURL,
		modelDir: filepath.Join(os.TempDir(), "swiftnotes", "tessdata"),
	}

	for _, option := range options {
		option(c)
	}

	c.models = NewModelManager(c.modelDir, c.modelURL, c.client)

	return c, nil
}

func (c *Client) Prepare(ctx context.Context, language string) error {
	if _, err := c.models.Ensure(ctx, language); err != nil {
		return errors.Join(handwriting.ErrModelUnavailable, err)
	}

	return nil
}

func (c *Client) Recognize(ctx context.Context, input handwriting.Ink, options *handwriting.RecognizeOptions) (*handwriting.Recognition, error) {
	if options == nil {
		options = new(handwriting.RecognizeOptions)
	}

	if len(input.Strokes) == 0 {
		return nil, handwriting.ErrNoCandidates
	}

	language := options.Language

	if language == "" {
		language = handwriting.DefaultLanguage
	}

	code, err := c.models.Ensure(ctx, language)

	if err != nil {
		return nil, errors.Join(handwriting.ErrModelUnavailable, err)
	}

	data, err := rasterize(input, options)

	if err != nil {
		return nil, err
	}

	return c.recognize(ctx, code, data)
}

// rasterize paints the ink black on white, the input tesseract expects.
func rasterize(input handwriting.Ink, options *handwriting.RecognizeOptions) ([]byte, error) {
	strokes := make([]ink.Stroke, 0, len(input.Strokes))

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, s := range input.Strokes {
		stroke := ink.Stroke{
			Tool: ink.Tool{Type: ink.ToolPen, Color: ink.Black, Width: render.DefaultStrokeWidth},
		}

		for _, p := range s.Points {
			x, y := float64(p.X), float64(p.Y)

			minX, minY = math.Min(minX, x), math.Min(minY, y)
			maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)

			stroke.Points = append(stroke.Points, ink.Point{X: x, Y: y, T: time.Duration(p.T) * time.Millisecond})
		}

		strokes = append(strokes, stroke)
	}

	if math.IsInf(minX, 1) {
		return nil, handwriting.ErrNoCandidates
	}

	r := &render.Renderer{
		Width:  int(options.Width),
		Height: int(options.Height),

		Scale: 1,
	}

	if r.Width <= 0 || r.Height <= 0 {
		// crop to the ink so tesseract sees the writing at its natural size
		width := math.Ceil(maxX-minX) + 2*inkPadding
		height := math.Ceil(maxY-minY) + 2*inkPadding

		if width > render.MaxDimension || height > render.MaxDimension {
			return nil, render.ErrInvalidBounds
		}

		for i := range strokes {
			for j := range strokes[i].Points {
				strokes[i].Points[j].X += inkPadding - minX
				strokes[i].Points[j].Y += inkPadding - minY
			}
		}

		r.Width = int(width)
		r.Height = int(height)
	}

	img, err := r.Render(ink.Page{Strokes: strokes})

	if err != nil {
		return nil, err
	}

	return render.EncodePNG(img)
}
