//go:build ocr

package tesseract

import (
	"context"
	"strings"

	"github.com/blueputty01/swiftnotes/pkg/handwriting"

	"github.com/otiai10/gosseract/v2"
)

func (c *Client) recognize(ctx context.Context, language string, image []byte) (*handwriting.Recognition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetTessdataPrefix(c.models.Dir()); err != nil {
		return nil, err
	}

	if err := client.SetLanguage(language); err != nil {
		return nil, err
	}

	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return nil, err
	}

	if err := client.SetImageFromBytes(image); err != nil {
		return nil, err
	}

	text, err := client.Text()

	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)

	if text == "" {
		return nil, handwriting.ErrNoCandidates
	}

	return &handwriting.Recognition{
		Candidates: []handwriting.Candidate{
			{
				Text:  text,
				Score: confidence(client),
			},
		},
	}, nil
}

func confidence(client *gosseract.Client) float64 {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)

	if err != nil || len(boxes) == 0 {
		return 0
	}

	var sum float64

	for _, b := range boxes {
		sum += b.Confidence / 100
	}

	return sum / float64(len(boxes))
}
