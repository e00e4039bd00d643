//go:build !ocr

package tesseract

import (
	"context"

	"github.com/blueputty01/swiftnotes/pkg/handwriting"
)

func (c *Client) recognize(ctx context.Context, language string, image []byte) (*handwriting.Recognition, error) {
	return nil, ErrOCRNotEnabled
}
