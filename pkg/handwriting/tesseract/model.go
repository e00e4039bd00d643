package tesseract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const DefaultModelURL = "https://github.com/tesseract-ocr/tessdata_fast/raw/main"

var languageCodes = map[string]string{
	"en": "eng",
	"de": "deu",
	"fr": "fra",
	"es": "spa",
	"it": "ita",
	"pt": "por",
	"nl": "nld",
}

// LanguageCode maps a BCP-47 tag such as "en-US" to the tesseract model name.
// Three letter codes are passed through.
func LanguageCode(language string) (string, error) {
	tag := strings.ToLower(strings.TrimSpace(language))

	if len(tag) == 3 && !strings.ContainsAny(tag, "-_") {
		return tag, nil
	}

	base, _, _ := strings.Cut(strings.ReplaceAll(tag, "_", "-"), "-")

	if code, ok := languageCodes[base]; ok {
		return code, nil
	}

	return "", fmt.Errorf("unsupported language: %q", language)
}

// ModelManager provisions traineddata files into a local directory. Each
// language is downloaded at most once at a time; a failed download is
// retried by the next caller.
type ModelManager struct {
	client *http.Client

	url string
	dir string

	mu      sync.Mutex
	pending map[string]*download
}

type download struct {
	done chan struct{}
	err  error
}

func NewModelManager(dir, url string, client *http.Client) *ModelManager {
	if client == nil {
		client = http.DefaultClient
	}

	if url == "" {
		url = DefaultModelURL
	}

	return &ModelManager{
		client: client,

		url: url,
		dir: dir,

		pending: make(map[string]*download),
	}
}

func (m *ModelManager) Dir() string {
	return m.dir
}

// Ensure blocks until the model for language is on disk or ctx is done.
// The download itself keeps running in the background when ctx is
// cancelled so that a later call can pick up the result.
func (m *ModelManager) Ensure(ctx context.Context, language string) (string, error) {
	code, err := LanguageCode(language)

	if err != nil {
		return "", err
	}

	path := filepath.Join(m.dir, code+".traineddata")

	if _, err := os.Stat(path); err == nil {
		return code, nil
	}

	m.mu.Lock()

	d, ok := m.pending[code]

	if !ok {
		d = &download{
			done: make(chan struct{}),
		}

		m.pending[code] = d

		go func() {
			d.err = m.fetch(context.WithoutCancel(ctx), code, path)

			m.mu.Lock()
			delete(m.pending, code)
			m.mu.Unlock()

			close(d.done)
		}()
	}

	m.mu.Unlock()

	select {
	case <-ctx.Done():
		return "", ctx.Err()

	case <-d.done:
		if d.err != nil {
			return "", d.err
		}

		return code, nil
	}
}

func (m *ModelManager) fetch(ctx context.Context, code, path string) error {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return err
	}

	req, _ := http.NewRequestWithContext(ctx, "GET", strings.TrimRight(m.url, "/")+"/"+code+".traineddata", nil)

	resp, err := m.client.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New("model download failed: " + resp.Status)
	}

	f, err := os.CreateTemp(m.dir, code+".*.part")

	if err != nil {
		return err
	}

	defer os.Remove(f.Name())

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), path)
}
