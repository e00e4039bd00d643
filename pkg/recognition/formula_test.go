package recognition_test

import (
	"context"
	"errors"
	"image"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/blueputty01/swiftnotes/pkg/formula"
	"github.com/blueputty01/swiftnotes/pkg/formula/simpletex"
	"github.com/blueputty01/swiftnotes/pkg/ink"
	"github.com/blueputty01/swiftnotes/pkg/recognition"
	"github.com/blueputty01/swiftnotes/pkg/render"

	"github.com/stretchr/testify/require"
)

type fakeFormula struct {
	calls atomic.Int32

	recognition *formula.Recognition
	err         error

	file formula.File
}

func (f *fakeFormula) Recognize(ctx context.Context, input formula.File, options *formula.RecognizeOptions) (*formula.Recognition, error) {
	f.calls.Add(1)
	f.file = input

	return f.recognition, f.err
}

func mathImage(t *testing.T) image.Image {
	t.Helper()

	img, err := render.New().RenderSubset([]ink.Stroke{
		{
			Tool: ink.Tool{Type: ink.ToolPen, Color: ink.Green, Width: 3},
			Points: []ink.Point{
				{X: 100, Y: 100},
				{X: 200, Y: 120},
			},
		},
	})

	require.NoError(t, err)
	return img
}

func TestFormulaBlankImage(t *testing.T) {
	p := &fakeFormula{}
	c := recognition.NewFormula(p)

	blank, err := render.New().RenderSubset(nil)
	require.NoError(t, err)

	require.True(t, c.Recognize(context.Background(), nil).IsAbsent())
	require.True(t, c.Recognize(context.Background(), blank).IsAbsent())
	require.Zero(t, p.calls.Load())
}

func TestFormulaWrapsLaTeX(t *testing.T) {
	p := &fakeFormula{
		recognition: &formula.Recognition{LaTeX: "x^2"},
	}

	c := recognition.NewFormula(p)

	value, ok := c.Recognize(context.Background(), mathImage(t)).Value()
	require.True(t, ok)
	require.Equal(t, `\(x^2\)`, value)

	require.Equal(t, int32(1), p.calls.Load())
	require.Equal(t, "image/jpeg", p.file.ContentType)
	require.Equal(t, []byte{0xff, 0xd8}, p.file.Content[:2])
}

func TestFormulaAbsent(t *testing.T) {
	tests := map[string]*fakeFormula{
		"error": {
			err: errors.New("connection refused"),
		},

		"empty": {
			recognition: &formula.Recognition{},
		},
	}

	for name, p := range tests {
		c := recognition.NewFormula(p)

		require.True(t, c.Recognize(context.Background(), mathImage(t)).IsAbsent(), name)
		require.Equal(t, int32(1), p.calls.Load(), name)
	}
}

func TestFormulaRemote(t *testing.T) {
	tests := []struct {
		status int
		body   string

		value string
		ok    bool
	}{
		{http.StatusOK, `{"status":true,"res":{"latex":"x^2","conf":0.98}}`, `\(x^2\)`, true},
		{http.StatusOK, `{"res":"x^2"}`, "", false},
		{http.StatusOK, `<html>`, "", false},
		{http.StatusInternalServerError, `busy`, "", false},
	}

	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.Copy(io.Discard, r.Body)

			w.WriteHeader(tt.status)
			io.WriteString(w, tt.body)
		}))

		p, err := simpletex.New(server.URL, simpletex.WithClient(server.Client()))
		require.NoError(t, err)

		c := recognition.NewFormula(p)

		value, ok := c.Recognize(context.Background(), mathImage(t)).Value()
		require.Equal(t, tt.ok, ok, tt.body)
		require.Equal(t, tt.value, value, tt.body)

		server.Close()
	}
}
