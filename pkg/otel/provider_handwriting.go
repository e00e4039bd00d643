package otel

import (
	"context"
	"time"

	"github.com/blueputty01/swiftnotes/pkg/handwriting"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

type Handwriting interface {
	Observable
	handwriting.Provider
}

type observableHandwriting struct {
	provider string

	handwriting handwriting.Provider

	durationMetric metric.Float64Histogram
	resultMetric   metric.Int64Counter
}

func NewHandwriting(provider string, p handwriting.Provider) Handwriting {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("recognition.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of recognition requests"),
	)

	resultMetric, _ := meter.Int64Counter("recognition.results",
		metric.WithDescription("Recognition requests by outcome"),
	)

	return &observableHandwriting{
		handwriting: p,

		provider: provider,

		durationMetric: durationMetric,
		resultMetric:   resultMetric,
	}
}

func (p *observableHandwriting) otelSetup() {
}

func (p *observableHandwriting) Prepare(ctx context.Context, language string) error {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "prepare "+p.provider)
	defer span.End()

	span.SetAttributes(String("recognition.language", language))

	err := p.handwriting.Prepare(ctx, language)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}

func (p *observableHandwriting) Recognize(ctx context.Context, ink handwriting.Ink, options *handwriting.RecognizeOptions) (*handwriting.Recognition, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "recognize "+p.provider)
	defer span.End()

	span.SetAttributes(EndUserAttrs(ctx)...)
	span.SetAttributes(Int("recognition.input.strokes", len(ink.Strokes)))

	timestamp := time.Now()

	result, err := p.handwriting.Recognize(ctx, ink, options)

	outcome := "success"

	if err != nil {
		outcome = "error"

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else if result == nil || len(result.Candidates) == 0 {
		outcome = "empty"
	}

	attrs := metric.WithAttributes(
		String("recognition.kind", "handwriting"),
		String("recognition.provider", p.provider),
		String("recognition.outcome", outcome),
	)

	p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), attrs)
	p.resultMetric.Add(ctx, 1, attrs)

	return result, err
}
