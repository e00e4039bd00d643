package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/blueputty01/swiftnotes/pkg/document"
	"github.com/blueputty01/swiftnotes/pkg/ink"
	"github.com/blueputty01/swiftnotes/pkg/recognition"
	"github.com/blueputty01/swiftnotes/pkg/render"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"
)

var ErrEmptyDocument = document.ErrEmptyDocument

var tracer = otel.Tracer("github.com/blueputty01/swiftnotes/pkg/export")

type Coordinator struct {
	handwriting *recognition.HandwritingClient
	formula     *recognition.FormulaClient

	renderer   *render.Renderer
	writer     *document.Writer
	classifier *ink.Classifier

	timeout     time.Duration
	concurrency int64
	sequential  bool

	overlayColor color.Color

	logger *slog.Logger
}

func New(handwriting *recognition.HandwritingClient, formula *recognition.FormulaClient, options ...Option) *Coordinator {
	c := &Coordinator{
		handwriting: handwriting,
		formula:     formula,

		renderer:   render.New(),
		writer:     document.New(),
		classifier: ink.NewClassifier(),

		overlayColor: color.Black,

		logger: slog.Default(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Export runs an export to completion.
func (c *Coordinator) Export(ctx context.Context, doc ink.Document) (*Artifact, error) {
	return c.Start(ctx, doc).Wait(ctx)
}

// Start begins exporting a snapshot of doc and returns without waiting.
// Pages are processed concurrently; the document is assembled once every
// page has completed.
func (c *Coordinator) Start(ctx context.Context, doc ink.Document) *Job {
	doc = doc.Clone()

	job := newJob()

	if len(doc.Pages) == 0 {
		job.resolve(nil, ErrEmptyDocument)
		return job
	}

	var cancel context.CancelFunc

	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	job.cancel = cancel

	ctx, span := tracer.Start(ctx, "export", trace.WithAttributes(
		attribute.String("export.id", job.ID),
		attribute.Int("export.pages", len(doc.Pages)),
	))

	results := make([]pageResult, len(doc.Pages))

	job.barrier = newBarrier(len(doc.Pages), func() {
		artifact, err := c.finalize(ctx, job.ID, results)

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			c.logger.ErrorContext(ctx, "export failed", "id", job.ID, "error", err)
		} else {
			c.logger.InfoContext(ctx, "export finished", "id", job.ID, "pages", len(results), "bytes", len(artifact.PDF))
		}

		span.End()
		job.resolve(artifact, err)
	})

	var sem *semaphore.Weighted

	if c.concurrency > 0 {
		sem = semaphore.NewWeighted(c.concurrency)
	}

	for i, page := range doc.Pages {
		go func() {
			defer job.barrier.done(i)

			if sem != nil {
				if err := sem.Acquire(ctx, 1); err != nil {
					results[i].err = err
					return
				}

				defer sem.Release(1)
			}

			results[i] = c.processPage(ctx, i, page)
		}()
	}

	return job
}

func (c *Coordinator) finalize(ctx context.Context, id string, results []pageResult) (*Artifact, error) {
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artifact := &Artifact{
		ID: id,

		Pages:    make([]*image.RGBA, len(results)),
		Overlays: make([][]render.Overlay, len(results)),
	}

	pages := make([]document.Page, len(results))

	for i, r := range results {
		artifact.Pages[i] = r.image
		artifact.Overlays[i] = r.overlays

		pages[i] = document.Page{
			Image:    r.image,
			Overlays: r.overlays,
		}
	}

	var buf bytes.Buffer

	if err := c.writer.Write(&buf, pages); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}

	artifact.PDF = buf.Bytes()

	return artifact, nil
}
