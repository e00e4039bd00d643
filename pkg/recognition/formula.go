package recognition

import (
	"context"
	"image"
	"image/color"
	"log/slog"

	"github.com/blueputty01/swiftnotes/pkg/formula"
	"github.com/blueputty01/swiftnotes/pkg/render"
)

const DefaultQuality = 80

type FormulaClient struct {
	name     string
	provider formula.Provider

	quality int

	logger *slog.Logger
}

type FormulaOption func(*FormulaClient)

func WithQuality(quality int) FormulaOption {
	return func(c *FormulaClient) {
		c.quality = quality
	}
}

func WithFormulaName(name string) FormulaOption {
	return func(c *FormulaClient) {
		c.name = name
	}
}

func WithFormulaLogger(logger *slog.Logger) FormulaOption {
	return func(c *FormulaClient) {
		c.logger = logger
	}
}

func NewFormula(provider formula.Provider, options ...FormulaOption) *FormulaClient {
	c := &FormulaClient{
		name:     "formula",
		provider: provider,

		quality: DefaultQuality,

		logger: slog.Default(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Recognize sends the math image to the provider once and wraps the returned
// LaTeX as inline math. An image without any ink resolves Absent without a call.
func (c *FormulaClient) Recognize(ctx context.Context, img image.Image) Result {
	if !render.Visible(img) {
		return Absent
	}

	data, err := render.EncodeJPEG(render.Flatten(img, color.White), c.quality)

	if err != nil {
		c.logger.WarnContext(ctx, "formula image encoding failed", "provider", c.name, "error", err)
		return Absent
	}

	file := formula.File{
		Name: "image.jpg",

		Content:     data,
		ContentType: "image/jpeg",
	}

	recognition, err := c.provider.Recognize(ctx, file, nil)

	if err != nil {
		c.logger.WarnContext(ctx, "formula recognition failed", "provider", c.name, "error", err)
		return Absent
	}

	if recognition == nil || recognition.LaTeX == "" {
		return Absent
	}

	return Text(InlineMath(recognition.LaTeX))
}

// InlineMath wraps LaTeX in inline math delimiters.
func InlineMath(latex string) string {
	return `\(` + latex + `\)`
}
