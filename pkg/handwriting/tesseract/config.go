package tesseract

import (
	"net/http"
)

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithModelURL(url string) Option {
	return func(c *Client) {
		c.modelURL = url
	}
}

func WithModelDir(dir string) Option {
	return func(c *Client) {
		c.modelDir = dir
	}
}
