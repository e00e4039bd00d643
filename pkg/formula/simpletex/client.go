package simpletex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/blueputty01/swiftnotes/pkg/formula"

	"github.com/google/uuid"
)

var _ formula.Provider = &Client{}

const DefaultURL = "https://server.simpletex.net/api/latex_ocr"

type Client struct {
	client *http.Client

	url   string
	token string
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		url = DefaultURL
	}

	c := &Client{
		client: http.DefaultClient,

		url: url,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Recognize(ctx context.Context, file formula.File, options *formula.RecognizeOptions) (*formula.Recognition, error) {
	if options == nil {
		options = new(formula.RecognizeOptions)
	}

	var body bytes.Buffer

	w := multipart.NewWriter(&body)

	if file.ContentType == "" {
		file.ContentType = "image/jpeg"
	}

	if file.Name == "" {
		ext := ".jpg"

		if file.ContentType != "image/jpeg" {
			if val, _ := mime.ExtensionsByType(file.ContentType); len(val) > 0 {
				ext = val[0]
			}
		}

		file.Name = uuid.New().String() + ext
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", multipart.FileContentDisposition("file", file.Name))
	h.Set("Content-Type", file.ContentType)

	f, err := w.CreatePart(h)

	if err != nil {
		return nil, err
	}

	if _, err := f.Write(file.Content); err != nil {
		return nil, err
	}

	w.Close()

	req, _ := http.NewRequestWithContext(ctx, "POST", c.url, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	if c.token != "" {
		req.Header.Set("token", c.token)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var response Response

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Join(formula.ErrMalformedResponse, err)
	}

	if response.Result == nil {
		return nil, formula.ErrMalformedResponse
	}

	return &formula.Recognition{
		LaTeX: response.Result.LaTeX,
	}, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
