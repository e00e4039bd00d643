package ink

import (
	"errors"
	"sync"
)

var ErrPageNotFound = errors.New("page not found")

// Notebook is the live, growing page collection fed by the capture surface.
// It always ends with a blank page: once the last page receives its first
// stroke a new blank page is appended.
type Notebook struct {
	mu    sync.RWMutex
	pages []Page
}

func NewNotebook() *Notebook {
	return &Notebook{
		pages: []Page{{}},
	}
}

func (n *Notebook) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.pages)
}

func (n *Notebook) AddStroke(page int, s Stroke) error {
	if err := s.Validate(); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if page < 0 || page >= len(n.pages) {
		return ErrPageNotFound
	}

	first := n.pages[page].IsEmpty()

	n.pages[page].Strokes = append(n.pages[page].Strokes, s.Clone())

	if first && page == len(n.pages)-1 {
		n.pages = append(n.pages, Page{})
	}

	return nil
}

// Snapshot returns an immutable copy of the current pages. Later edits to
// the notebook are not visible through the returned document.
func (n *Notebook) Snapshot() Document {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return Document{Pages: n.pages}.Clone()
}
