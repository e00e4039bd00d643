package api

type Document struct {
	Pages []Page `json:"pages"`
}

type Page struct {
	Strokes []Stroke `json:"strokes"`
}

type Stroke struct {
	Tool Tool `json:"tool"`

	Points []Point `json:"points"`
}

type Tool struct {
	Type string `json:"type,omitempty"`

	// #rrggbb or #rrggbbaa, black when empty
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// milliseconds since the start of the stroke
	T int64 `json:"t"`
}

type Export struct {
	ID string `json:"id"`

	Pages []ExportPage `json:"pages"`
}

type ExportPage struct {
	Overlays []Overlay `json:"overlays,omitempty"`
}

type Overlay struct {
	Text string `json:"text"`

	Rect Rect `json:"rect"`
}

type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`

	Width  int `json:"width"`
	Height int `json:"height"`
}
