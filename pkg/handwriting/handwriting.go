package handwriting

import (
	"context"
	"errors"
)

type Provider interface {
	// Prepare makes the recognition model for language available, fetching
	// it if needed.
	Prepare(ctx context.Context, language string) error

	Recognize(ctx context.Context, ink Ink, options *RecognizeOptions) (*Recognition, error)
}

const DefaultLanguage = "en-US"

var (
	ErrNoCandidates     = errors.New("no candidates")
	ErrModelUnavailable = errors.New("model unavailable")
)

type RecognizeOptions struct {
	Language string

	// size of the writing area the ink was captured on
	Width  float32
	Height float32
}

type Ink struct {
	Strokes []Stroke
}

type Stroke struct {
	Points []Point
}

type Point struct {
	X float32
	Y float32

	// milliseconds since the first point of the stroke
	T int64
}

type Recognition struct {
	// ranked best first
	Candidates []Candidate
}

type Candidate struct {
	Text  string
	Score float64
}
