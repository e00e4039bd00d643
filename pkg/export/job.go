package export

import (
	"context"
	"image"

	"github.com/blueputty01/swiftnotes/pkg/render"

	"github.com/google/uuid"
)

type Artifact struct {
	ID string

	// composited page images in document order
	Pages    []*image.RGBA
	Overlays [][]render.Overlay

	PDF []byte
}

// Job is a running export. It resolves exactly once, after every page has
// finished or the export has failed as a whole.
type Job struct {
	ID string

	done    chan struct{}
	barrier *barrier
	cancel  context.CancelFunc

	artifact *Artifact
	err      error
}

func newJob() *Job {
	return &Job{
		ID: uuid.NewString(),

		done:   make(chan struct{}),
		cancel: func() {},
	}
}

func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the job resolves or ctx is done.
func (j *Job) Wait(ctx context.Context) (*Artifact, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()

	case <-j.done:
		return j.artifact, j.err
	}
}

// Pending returns the number of pages still being processed.
func (j *Job) Pending() int {
	if j.barrier == nil {
		return 0
	}

	return j.barrier.pending()
}

// Cancel aborts the export. Recognition calls already in flight still
// resolve, but the job fails with context.Canceled.
func (j *Job) Cancel() {
	j.cancel()
}

func (j *Job) resolve(artifact *Artifact, err error) {
	j.artifact = artifact
	j.err = err

	close(j.done)
	j.cancel()
}
