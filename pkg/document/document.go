package document

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"time"
	"unicode/utf8"

	"github.com/blueputty01/swiftnotes/pkg/render"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	DefaultCreator = "Notes App"

	// US-Letter in points
	LetterWidth  = 612.0
	LetterHeight = 792.0

	textSize = 12.0
	textFont = "goregular"
)

var ErrEmptyDocument = errors.New("document has no pages")

type Metadata struct {
	Title   string
	Creator string
	Author  string

	// zero means now
	Created time.Time
}

type PageSize struct {
	Width  float64
	Height float64
}

type Page struct {
	Image image.Image

	Overlays []render.Overlay
}

type Writer struct {
	Metadata Metadata
	PageSize PageSize
}

func New() *Writer {
	return &Writer{
		Metadata: Metadata{
			Creator: DefaultCreator,
		},

		PageSize: PageSize{
			Width:  LetterWidth,
			Height: LetterHeight,
		},
	}
}

// Write emits one PDF page per image, in order. Overlay text is placed as an
// invisible layer over the image so it can be selected and searched.
func (w *Writer) Write(out io.Writer, pages []Page) error {
	if len(pages) == 0 {
		return ErrEmptyDocument
	}

	size := w.PageSize

	if size.Width <= 0 || size.Height <= 0 {
		size = PageSize{Width: LetterWidth, Height: LetterHeight}
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",

		Size: fpdf.SizeType{
			Wd: size.Width,
			Ht: size.Height,
		},
	})

	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	if w.Metadata.Title != "" {
		pdf.SetTitle(w.Metadata.Title, !isASCII(w.Metadata.Title))
	}

	if w.Metadata.Creator != "" {
		pdf.SetCreator(w.Metadata.Creator, !isASCII(w.Metadata.Creator))
	}

	if w.Metadata.Author != "" {
		pdf.SetAuthor(w.Metadata.Author, !isASCII(w.Metadata.Author))
	}

	if !w.Metadata.Created.IsZero() {
		pdf.SetCreationDate(w.Metadata.Created)
		pdf.SetModificationDate(w.Metadata.Created)
	}

	fontReady := false

	for i, page := range pages {
		if page.Image == nil {
			return fmt.Errorf("page %d: %w", i, render.ErrMissingBase)
		}

		data, err := render.EncodePNG(page.Image)

		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}

		name := fmt.Sprintf("page-%d", i)
		options := fpdf.ImageOptions{
			ImageType: "PNG",
		}

		pdf.AddPage()

		pdf.RegisterImageOptionsReader(name, options, bytes.NewReader(data))
		pdf.ImageOptions(name, 0, 0, size.Width, size.Height, false, options, 0, "")

		bounds := page.Image.Bounds()

		sx := size.Width / float64(bounds.Dx())
		sy := size.Height / float64(bounds.Dy())

		for _, o := range page.Overlays {
			if o.Text == "" || o.Rect.Empty() {
				continue
			}

			// embedded utf-8 font, subset to the runes used
			if !fontReady {
				pdf.AddUTF8FontFromBytes(textFont, "", goregular.TTF)
				pdf.SetFont(textFont, "", textSize)

				fontReady = true
			}

			r := o.Rect.Sub(bounds.Min)

			pdf.SetAlpha(0, "Normal")
			pdf.SetXY(float64(r.Min.X)*sx, float64(r.Min.Y)*sy)
			pdf.MultiCell(float64(r.Dx())*sx, textSize*1.2, o.Text, "", "L", false)
			pdf.SetAlpha(1, "Normal")
		}

		if err := pdf.Error(); err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
	}

	return pdf.Output(out)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}
