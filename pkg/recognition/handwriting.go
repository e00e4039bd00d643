package recognition

import (
	"context"
	"log/slog"
	"time"

	"github.com/blueputty01/swiftnotes/pkg/handwriting"
	"github.com/blueputty01/swiftnotes/pkg/ink"
	"github.com/blueputty01/swiftnotes/pkg/render"
	"github.com/blueputty01/swiftnotes/pkg/text"
)

type HandwritingClient struct {
	name     string
	provider handwriting.Provider

	language string

	// writing area the strokes were captured on
	width  int
	height int

	logger *slog.Logger
}

type HandwritingOption func(*HandwritingClient)

func WithLanguage(language string) HandwritingOption {
	return func(c *HandwritingClient) {
		c.language = language
	}
}

// WithCanvas sets the writing area passed to the provider. Ink outside of it
// is not recognized.
func WithCanvas(width, height int) HandwritingOption {
	return func(c *HandwritingClient) {
		c.width = width
		c.height = height
	}
}

func WithHandwritingName(name string) HandwritingOption {
	return func(c *HandwritingClient) {
		c.name = name
	}
}

func WithHandwritingLogger(logger *slog.Logger) HandwritingOption {
	return func(c *HandwritingClient) {
		c.logger = logger
	}
}

func NewHandwriting(provider handwriting.Provider, options ...HandwritingOption) *HandwritingClient {
	c := &HandwritingClient{
		name:     "handwriting",
		provider: provider,

		language: handwriting.DefaultLanguage,

		width:  render.DefaultWidth,
		height: render.DefaultHeight,

		logger: slog.Default(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Recognize converts prose strokes into text using the provider's top-ranked
// candidate. Every failure, including model provisioning, resolves Absent.
func (c *HandwritingClient) Recognize(ctx context.Context, strokes []ink.Stroke) Result {
	if len(strokes) == 0 {
		return Absent
	}

	if err := c.provider.Prepare(ctx, c.language); err != nil {
		c.logger.WarnContext(ctx, "handwriting model unavailable", "provider", c.name, "language", c.language, "error", err)
		return Absent
	}

	options := &handwriting.RecognizeOptions{
		Language: c.language,

		Width:  float32(c.width),
		Height: float32(c.height),
	}

	recognition, err := c.provider.Recognize(ctx, convertInk(strokes), options)

	if err != nil {
		c.logger.WarnContext(ctx, "handwriting recognition failed", "provider", c.name, "error", err)
		return Absent
	}

	if recognition == nil || len(recognition.Candidates) == 0 {
		c.logger.DebugContext(ctx, "handwriting recognition returned no candidates", "provider", c.name)
		return Absent
	}

	result := text.Normalize(recognition.Candidates[0].Text)

	if result == "" {
		return Absent
	}

	return Text(result)
}

func convertInk(strokes []ink.Stroke) handwriting.Ink {
	result := handwriting.Ink{
		Strokes: make([]handwriting.Stroke, 0, len(strokes)),
	}

	for _, s := range strokes {
		stroke := handwriting.Stroke{
			Points: make([]handwriting.Point, 0, len(s.Points)),
		}

		for _, p := range s.Points {
			stroke.Points = append(stroke.Points, handwriting.Point{
				X: float32(p.X),
				Y: float32(p.Y),

				T: int64(p.T / time.Millisecond),
			})
		}

		result.Strokes = append(result.Strokes, stroke)
	}

	return result
}
