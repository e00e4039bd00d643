package formula

import (
	"context"
	"errors"
)

type Provider interface {
	Recognize(ctx context.Context, input File, options *RecognizeOptions) (*Recognition, error)
}

var (
	ErrMalformedResponse = errors.New("malformed response")
)

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type RecognizeOptions struct {
}

type Recognition struct {
	LaTeX string
}
