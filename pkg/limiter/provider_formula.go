package limiter

import (
	"context"

	"github.com/blueputty01/swiftnotes/pkg/formula"

	"golang.org/x/time/rate"
)

type Formula interface {
	Limiter
	formula.Provider
}

type limitedFormula struct {
	limiter  *rate.Limiter
	provider formula.Provider
}

func NewFormula(l *rate.Limiter, p formula.Provider) Formula {
	return &limitedFormula{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedFormula) limiterSetup() {
}

func (p *limitedFormula) Recognize(ctx context.Context, input formula.File, options *formula.RecognizeOptions) (*formula.Recognition, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return p.provider.Recognize(ctx, input, options)
}
