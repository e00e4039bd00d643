package config

import (
	"errors"
	"strings"

	"github.com/blueputty01/swiftnotes/pkg/handwriting"
	"github.com/blueputty01/swiftnotes/pkg/handwriting/tesseract"
	"github.com/blueputty01/swiftnotes/pkg/limiter"
	"github.com/blueputty01/swiftnotes/pkg/otel"
	"github.com/blueputty01/swiftnotes/pkg/recognition"
)

type handwritingConfig struct {
	Type string `yaml:"type"`

	URL    string `yaml:"url"`
	Models string `yaml:"models"`

	Language string `yaml:"language"`

	Limit *int `yaml:"limit"`

	Proxy *proxyConfig `yaml:"proxy"`
}

func (cfg *Config) registerHandwriting(f *configFile) error {
	config := f.Handwriting

	if config.Type == "" {
		config.Type = "tesseract"
	}

	p, err := createHandwriting(config)

	if err != nil {
		return err
	}

	if l := createLimiter(config.Limit); l != nil {
		p = limiter.NewHandwriting(l, p)
	}

	p = otel.NewHandwriting(config.Type, p)

	var options []recognition.HandwritingOption

	if config.Language != "" {
		options = append(options, recognition.WithLanguage(config.Language))
	}

	options = append(options,
		recognition.WithHandwritingName(config.Type),
		recognition.WithHandwritingLogger(logger("handwriting")),
	)

	cfg.handwriting = recognition.NewHandwriting(p, options...)

	return nil
}

func createHandwriting(cfg handwritingConfig) (handwriting.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "tesseract":
		return tesseractHandwriting(cfg)

	default:
		return nil, errors.New("invalid handwriting type: " + cfg.Type)
	}
}

func tesseractHandwriting(cfg handwritingConfig) (handwriting.Provider, error) {
	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, err
	}

	options := []tesseract.Option{
		tesseract.WithClient(client),
	}

	if cfg.URL != "" {
		options = append(options, tesseract.WithModelURL(cfg.URL))
	}

	if cfg.Models != "" {
		options = append(options, tesseract.WithModelDir(cfg.Models))
	}

	return tesseract.New(options...)
}
