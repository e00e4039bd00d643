package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blueputty01/swiftnotes/config"
	"github.com/blueputty01/swiftnotes/pkg/export"
	"github.com/blueputty01/swiftnotes/pkg/formula"
	"github.com/blueputty01/swiftnotes/pkg/handwriting"
	"github.com/blueputty01/swiftnotes/pkg/recognition"
	"github.com/blueputty01/swiftnotes/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeHandwriting struct{}

func (fakeHandwriting) Prepare(ctx context.Context, language string) error {
	return nil
}

func (fakeHandwriting) Recognize(ctx context.Context, ink handwriting.Ink, options *handwriting.RecognizeOptions) (*handwriting.Recognition, error) {
	return &handwriting.Recognition{
		Candidates: []handwriting.Candidate{{Text: "hello"}},
	}, nil
}

type fakeFormula struct{}

func (fakeFormula) Recognize(ctx context.Context, input formula.File, options *formula.RecognizeOptions) (*formula.Recognition, error) {
	return &formula.Recognition{LaTeX: "x^2"}, nil
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.RegisterExporter(export.New(
		recognition.NewHandwriting(fakeHandwriting{}),
		recognition.NewFormula(fakeFormula{}),
	))

	h, err := api.New(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	h.Attach(r)

	return r
}

const document = `{
	"pages": [
		{
			"strokes": [
				{"tool": {"type": "pen"}, "points": [{"x": 100, "y": 100, "t": 0}, {"x": 300, "y": 120, "t": 40}]},
				{"tool": {"type": "pen", "color": "#00ff00", "width": 3}, "points": [{"x": 100, "y": 400, "t": 0}, {"x": 200, "y": 430, "t": 20}]}
			]
		},
		{"strokes": []}
	]
}`

func TestExportPDF(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest("POST", "/export", strings.NewReader(document))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.NotEmpty(t, rec.Header().Get("X-Export-Id"))
	require.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestExportJSON(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest("POST", "/export?format=json", strings.NewReader(document))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result api.Export
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	require.Len(t, result.Pages, 2)
	require.Len(t, result.Pages[0].Overlays, 2)
	require.Equal(t, "hello", result.Pages[0].Overlays[0].Text)
	require.Equal(t, `\(x^2\)`, result.Pages[0].Overlays[1].Text)
	require.Empty(t, result.Pages[1].Overlays)
}

func TestExportBadRequest(t *testing.T) {
	r := newRouter(t)

	tests := []string{
		`not json`,
		`{"pages": []}`,
		`{"pages": [{"strokes": [{"tool": {"type": "brush"}, "points": []}]}]}`,
		`{"pages": [{"strokes": [{"tool": {"color": "green"}, "points": []}]}]}`,
		`{"pages": [{"strokes": [{"points": [{"x": 0, "y": 0, "t": 10}, {"x": 1, "y": 1, "t": 5}]}]}]}`,
		`{"pages": [], "title": "unknown"}`,
	}

	for _, body := range tests {
		req := httptest.NewRequest("POST", "/export", strings.NewReader(body))
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}
