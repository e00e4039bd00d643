package export

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/blueputty01/swiftnotes/pkg/document"
	"github.com/blueputty01/swiftnotes/pkg/ink"
	"github.com/blueputty01/swiftnotes/pkg/render"
)

type Option func(*Coordinator)

func WithRenderer(renderer *render.Renderer) Option {
	return func(c *Coordinator) {
		c.renderer = renderer
	}
}

func WithWriter(writer *document.Writer) Option {
	return func(c *Coordinator) {
		c.writer = writer
	}
}

func WithClassifier(classifier *ink.Classifier) Option {
	return func(c *Coordinator) {
		c.classifier = classifier
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// WithTimeout bounds the whole export. Zero disables the limit.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Coordinator) {
		c.timeout = timeout
	}
}

// WithConcurrency limits how many pages are processed at once. Zero means
// no limit.
func WithConcurrency(pages int) Option {
	return func(c *Coordinator) {
		c.concurrency = int64(pages)
	}
}

// WithSequential dispatches a page's math recognition only after its prose
// recognition has resolved.
func WithSequential(sequential bool) Option {
	return func(c *Coordinator) {
		c.sequential = sequential
	}
}

func WithOverlayColor(value color.Color) Option {
	return func(c *Coordinator) {
		c.overlayColor = value
	}
}
