package client

import (
	"net/http"
	"strings"
)

type Client struct {
	Exports ExportService
}

func New(url string, opts ...RequestOption) *Client {
	opts = append(opts, WithURL(url))

	return &Client{
		Exports: NewExportService(opts...),
	}
}

type RequestConfig struct {
	URL   string
	Token string

	Client *http.Client
}

type RequestOption func(*RequestConfig)

func WithURL(url string) RequestOption {
	return func(c *RequestConfig) {
		c.URL = strings.TrimRight(url, "/")
	}
}

func WithToken(token string) RequestOption {
	return func(c *RequestConfig) {
		c.Token = token
	}
}

func WithClient(client *http.Client) RequestOption {
	return func(c *RequestConfig) {
		c.Client = client
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}
