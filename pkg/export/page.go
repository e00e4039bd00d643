package export

import (
	"context"
	"fmt"
	"image"

	"github.com/blueputty01/swiftnotes/pkg/ink"
	"github.com/blueputty01/swiftnotes/pkg/recognition"
	"github.com/blueputty01/swiftnotes/pkg/render"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// pageResult is owned by exactly one page goroutine until the barrier opens.
type pageResult struct {
	image    *image.RGBA
	overlays []render.Overlay

	err error
}

func (c *Coordinator) processPage(ctx context.Context, index int, page ink.Page) pageResult {
	ctx, span := tracer.Start(ctx, "export page", trace.WithAttributes(
		attribute.Int("page", index),
		attribute.Int("page.strokes", len(page.Strokes)),
	))

	defer span.End()

	classes := c.classifier.Classify(page.Strokes)

	base, err := c.renderer.Render(page)

	if err != nil {
		return pageResult{err: fmt.Errorf("page %d: render: %w", index, err)}
	}

	var prose, math recognition.Result

	recognizeProse := func() error {
		prose = c.handwriting.Recognize(ctx, classes.Prose)
		return ctx.Err()
	}

	recognizeMath := func() error {
		if len(classes.Math) == 0 {
			math = recognition.Absent
			return nil
		}

		img, err := c.renderer.RenderSubset(classes.Math)

		if err != nil {
			return fmt.Errorf("page %d: render math: %w", index, err)
		}

		math = c.formula.Recognize(ctx, img)
		return ctx.Err()
	}

	if c.sequential {
		if err := recognizeProse(); err != nil {
			return pageResult{err: err}
		}

		if err := recognizeMath(); err != nil {
			return pageResult{err: err}
		}
	} else {
		var g errgroup.Group

		g.Go(recognizeProse)
		g.Go(recognizeMath)

		if err := g.Wait(); err != nil {
			return pageResult{err: err}
		}
	}

	c.logger.DebugContext(ctx, "page recognized", "page", index, "prose", !prose.IsAbsent(), "math", !math.IsAbsent())

	overlays := c.overlays(index, base.Bounds(), prose, math)

	img, err := render.Composite(base, overlays)

	if err != nil {
		return pageResult{err: fmt.Errorf("page %d: composite: %w", index, err)}
	}

	return pageResult{
		image:    img,
		overlays: overlays,
	}
}

// overlays anchors the recognized texts, prose first, at the page frame.
func (c *Coordinator) overlays(index int, bounds image.Rectangle, results ...recognition.Result) []render.Overlay {
	frame := render.Frame(bounds)

	var overlays []render.Overlay

	for _, r := range results {
		text, ok := r.Value()

		if !ok || text == "" {
			continue
		}

		overlays = append(overlays, render.Overlay{
			Text: text,

			Page: index,
			Rect: frame,

			Color: c.overlayColor,
		})
	}

	return overlays
}
