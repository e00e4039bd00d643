package otel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/blueputty01/swiftnotes/pkg/formula"
	"github.com/blueputty01/swiftnotes/pkg/otel"

	"github.com/stretchr/testify/require"

	otelapi "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type fakeFormula struct {
	err error
}

func (f *fakeFormula) Recognize(ctx context.Context, input formula.File, options *formula.RecognizeOptions) (*formula.Recognition, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &formula.Recognition{LaTeX: "x^2"}, nil
}

func TestFormulaSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()

	otelapi.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	p := otel.NewFormula("simpletex", &fakeFormula{})

	result, err := p.Recognize(context.Background(), formula.File{Content: []byte("jpeg")}, nil)
	require.NoError(t, err)
	require.Equal(t, "x^2", result.LaTeX)

	failing := otel.NewFormula("simpletex", &fakeFormula{err: errors.New("unavailable")})

	_, err = failing.Recognize(context.Background(), formula.File{}, nil)
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	require.Equal(t, "recognize simpletex", spans[0].Name())
	require.Contains(t, spans[0].Attributes(), otel.Int("recognition.input.bytes", 4))
	require.Equal(t, codes.Unset, spans[0].Status().Code)
	require.Equal(t, codes.Error, spans[1].Status().Code)
}
