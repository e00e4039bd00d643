package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/blueputty01/swiftnotes/server/api"
)

type Document = api.Document
type Page = api.Page
type Stroke = api.Stroke
type Tool = api.Tool
type Point = api.Point

type Export = api.Export

type ExportService struct {
	Options []RequestOption
}

func NewExportService(opts ...RequestOption) ExportService {
	return ExportService{
		Options: opts,
	}
}

// New exports the document and returns the rendered PDF.
func (r *ExportService) New(ctx context.Context, input Document, opts ...RequestOption) ([]byte, error) {
	resp, err := r.post(ctx, "pdf", input, opts...)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

// Overlays exports the document and returns only the recognized overlays.
func (r *ExportService) Overlays(ctx context.Context, input Document, opts ...RequestOption) (*Export, error) {
	resp, err := r.post(ctx, "json", input, opts...)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var result Export

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *ExportService) post(ctx context.Context, format string, input Document, opts ...RequestOption) (*http.Response, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	body, _ := json.Marshal(input)

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/v1/export?format="+format, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()

		data, _ := io.ReadAll(resp.Body)

		if text := strings.TrimSpace(string(data)); text != "" {
			return nil, errors.New(text)
		}

		return nil, errors.New(resp.Status)
	}

	return resp, nil
}
