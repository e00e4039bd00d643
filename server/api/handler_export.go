package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/blueputty01/swiftnotes/pkg/export"
)

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(w, r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if len(doc.Pages) == 0 {
		writeError(w, http.StatusBadRequest, export.ErrEmptyDocument)
		return
	}

	artifact, err := h.Exporter().Export(r.Context(), doc)

	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			writeError(w, http.StatusGatewayTimeout, err)

		default:
			writeError(w, http.StatusInternalServerError, err)
		}

		return
	}

	w.Header().Set("X-Export-Id", artifact.ID)

	if valueFormat(r) == "json" {
		result := Export{
			ID: artifact.ID,
		}

		for _, overlays := range artifact.Overlays {
			var page ExportPage

			for _, o := range overlays {
				page.Overlays = append(page.Overlays, Overlay{
					Text: o.Text,

					Rect: Rect{
						X: o.Rect.Min.X,
						Y: o.Rect.Min.Y,

						Width:  o.Rect.Dx(),
						Height: o.Rect.Dy(),
					},
				})
			}

			result.Pages = append(result.Pages, page)
		}

		writeJson(w, result)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="notes.pdf"`)

	w.Write(artifact.PDF)
}
