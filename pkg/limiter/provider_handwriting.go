package limiter

import (
	"context"

	"github.com/blueputty01/swiftnotes/pkg/handwriting"

	"golang.org/x/time/rate"
)

type Handwriting interface {
	Limiter
	handwriting.Provider
}

type limitedHandwriting struct {
	limiter  *rate.Limiter
	provider handwriting.Provider
}

func NewHandwriting(l *rate.Limiter, p handwriting.Provider) Handwriting {
	return &limitedHandwriting{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedHandwriting) limiterSetup() {
}

func (p *limitedHandwriting) Prepare(ctx context.Context, language string) error {
	return p.provider.Prepare(ctx, language)
}

func (p *limitedHandwriting) Recognize(ctx context.Context, ink handwriting.Ink, options *handwriting.RecognizeOptions) (*handwriting.Recognition, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return p.provider.Recognize(ctx, ink, options)
}
