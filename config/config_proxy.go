package config

import (
	"net/http"
	"net/url"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type proxyConfig struct {
	URL string `yaml:"url"`
}

func (cfg *proxyConfig) proxyTransport() (http.RoundTripper, error) {
	if cfg == nil || cfg.URL == "" {
		return http.DefaultTransport, nil
	}

	proxyURL, err := url.Parse(cfg.URL)

	if err != nil {
		return nil, err
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.Proxy = http.ProxyURL(proxyURL)

	return tr, nil
}

// proxyClient returns an instrumented client that routes through the
// configured proxy, if any.
func (cfg *proxyConfig) proxyClient() (*http.Client, error) {
	transport, err := cfg.proxyTransport()

	if err != nil {
		return nil, err
	}

	return &http.Client{
		Transport: otelhttp.NewTransport(transport),
	}, nil
}
