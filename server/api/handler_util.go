package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/blueputty01/swiftnotes/pkg/ink"
)

const maxBodySize = 32 << 20

var ErrInvalidTool = errors.New("invalid tool")

func valueFormat(r *http.Request) string {
	if val := r.FormValue("format"); val != "" {
		return strings.ToLower(val)
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return "json"
	}

	return "pdf"
}

func readDocument(w http.ResponseWriter, r *http.Request) (ink.Document, error) {
	var doc Document

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&doc); err != nil {
		return ink.Document{}, err
	}

	return toDocument(doc)
}

func toDocument(doc Document) (ink.Document, error) {
	result := ink.Document{
		Pages: make([]ink.Page, 0, len(doc.Pages)),
	}

	for i, p := range doc.Pages {
		page := ink.Page{
			Strokes: make([]ink.Stroke, 0, len(p.Strokes)),
		}

		for j, s := range p.Strokes {
			stroke, err := toStroke(s)

			if err != nil {
				return ink.Document{}, fmt.Errorf("page %d stroke %d: %w", i, j, err)
			}

			page.Strokes = append(page.Strokes, stroke)
		}

		result.Pages = append(result.Pages, page)
	}

	return result, nil
}

func toStroke(s Stroke) (ink.Stroke, error) {
	tool := ink.Tool{
		Type:  ink.ToolPen,
		Color: ink.Black,
		Width: s.Tool.Width,
	}

	if s.Tool.Type != "" {
		t, err := toToolType(s.Tool.Type)

		if err != nil {
			return ink.Stroke{}, err
		}

		tool.Type = t
	}

	if s.Tool.Color != "" {
		c, err := ink.ParseColor(s.Tool.Color)

		if err != nil {
			return ink.Stroke{}, err
		}

		tool.Color = c
	}

	stroke := ink.Stroke{
		Tool:   tool,
		Points: make([]ink.Point, 0, len(s.Points)),
	}

	for _, p := range s.Points {
		stroke.Points = append(stroke.Points, ink.Point{
			X: p.X,
			Y: p.Y,

			T: time.Duration(p.T) * time.Millisecond,
		})
	}

	if err := stroke.Validate(); err != nil {
		return ink.Stroke{}, err
	}

	return stroke, nil
}

func toToolType(val string) (ink.ToolType, error) {
	t := ink.ToolType(strings.ToLower(val))

	switch t {
	case ink.ToolPen, ink.ToolPencil, ink.ToolMarker, ink.ToolMonoline, ink.ToolFountain, ink.ToolWatercolor, ink.ToolCrayon, ink.ToolEraser, ink.ToolLasso:
		return t, nil
	}

	return "", fmt.Errorf("%w: %s", ErrInvalidTool, val)
}
