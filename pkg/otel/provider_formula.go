package otel

import (
	"context"
	"time"

	"github.com/blueputty01/swiftnotes/pkg/formula"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

type Formula interface {
	Observable
	formula.Provider
}

type observableFormula struct {
	provider string

	formula formula.Provider

	durationMetric metric.Float64Histogram
	resultMetric   metric.Int64Counter
}

func NewFormula(provider string, p formula.Provider) Formula {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("recognition.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of recognition requests"),
	)

	resultMetric, _ := meter.Int64Counter("recognition.results",
		metric.WithDescription("Recognition requests by outcome"),
	)

	return &observableFormula{
		formula: p,

		provider: provider,

		durationMetric: durationMetric,
		resultMetric:   resultMetric,
	}
}

func (p *observableFormula) otelSetup() {
}

func (p *observableFormula) Recognize(ctx context.Context, input formula.File, options *formula.RecognizeOptions) (*formula.Recognition, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "recognize "+p.provider)
	defer span.End()

	span.SetAttributes(EndUserAttrs(ctx)...)
	span.SetAttributes(Int("recognition.input.bytes", len(input.Content)))

	timestamp := time.Now()

	result, err := p.formula.Recognize(ctx, input, options)

	outcome := "success"

	if err != nil {
		outcome = "error"

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else if result == nil || result.LaTeX == "" {
		outcome = "empty"
	}

	attrs := metric.WithAttributes(
		String("recognition.kind", "formula"),
		String("recognition.provider", p.provider),
		String("recognition.outcome", outcome),
	)

	p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), attrs)
	p.resultMetric.Add(ctx, 1, attrs)

	return result, err
}
