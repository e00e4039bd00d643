package ink

import (
	"encoding/hex"
	"errors"
	"image/color"
	"strings"
	"time"
)

var (
	ErrUnorderedPoints = errors.New("stroke points are not ordered by time")
	ErrInvalidColor    = errors.New("invalid color")
)

type Document struct {
	Pages []Page
}

// Clone returns a deep copy that shares no slices with d.
func (d Document) Clone() Document {
	pages := make([]Page, len(d.Pages))

	for i, p := range d.Pages {
		pages[i] = p.Clone()
	}

	return Document{
		Pages: pages,
	}
}

type Page struct {
	Strokes []Stroke
}

func (p Page) Clone() Page {
	strokes := make([]Stroke, len(p.Strokes))

	for i, s := range p.Strokes {
		strokes[i] = s.Clone()
	}

	return Page{
		Strokes: strokes,
	}
}

func (p Page) IsEmpty() bool {
	return len(p.Strokes) == 0
}

type Stroke struct {
	Tool Tool

	Points []Point
}

func (s Stroke) Clone() Stroke {
	return Stroke{
		Tool:   s.Tool,
		Points: append([]Point(nil), s.Points...),
	}
}

// Validate checks that point timestamps never decrease within the stroke.
func (s Stroke) Validate() error {
	for i := 1; i < len(s.Points); i++ {
		if s.Points[i].T < s.Points[i-1].T {
			return ErrUnorderedPoints
		}
	}

	return nil
}

type Point struct {
	X float64
	Y float64

	T time.Duration
}

type ToolType string

const (
	ToolPen        ToolType = "pen"
	ToolPencil     ToolType = "pencil"
	ToolMarker     ToolType = "marker"
	ToolMonoline   ToolType = "monoline"
	ToolFountain   ToolType = "fountain"
	ToolWatercolor ToolType = "watercolor"
	ToolCrayon     ToolType = "crayon"

	ToolEraser ToolType = "eraser"
	ToolLasso  ToolType = "lasso"
)

type Tool struct {
	Type ToolType

	Color Color
	Width float64
}

// Inks reports whether the tool lays down colored ink.
func (t Tool) Inks() bool {
	switch t.Type {
	case ToolEraser, ToolLasso:
		return false
	}

	return true
}

type Color struct {
	R, G, B, A uint8
}

var (
	Black = Color{A: 0xff}
	Green = Color{G: 0xff, A: 0xff}
)

func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func (c Color) String() string {
	if c.A == 0xff {
		return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B})
	}

	return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B, c.A})
}

func ParseColor(val string) (Color, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(val), "#"))

	if err != nil {
		return Color{}, ErrInvalidColor
	}

	switch len(data) {
	case 3:
		return Color{R: data[0], G: data[1], B: data[2], A: 0xff}, nil

	case 4:
		return Color{R: data[0], G: data[1], B: data[2], A: data[3]}, nil
	}

	return Color{}, ErrInvalidColor
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(data []byte) error {
	val, err := ParseColor(string(data))

	if err != nil {
		return err
	}

	*c = val
	return nil
}
