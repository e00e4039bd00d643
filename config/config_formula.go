package config

import (
	"errors"
	"strings"

	"github.com/blueputty01/swiftnotes/pkg/formula"
	"github.com/blueputty01/swiftnotes/pkg/formula/simpletex"
	"github.com/blueputty01/swiftnotes/pkg/limiter"
	"github.com/blueputty01/swiftnotes/pkg/otel"
	"github.com/blueputty01/swiftnotes/pkg/recognition"
)

type formulaConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Quality int `yaml:"quality"`

	Limit *int `yaml:"limit"`

	Proxy *proxyConfig `yaml:"proxy"`
}

func (cfg *Config) registerFormula(f *configFile) error {
	config := f.Formula

	if config.Type == "" {
		config.Type = "simpletex"
	}

	p, err := createFormula(config)

	if err != nil {
		return err
	}

	if l := createLimiter(config.Limit); l != nil {
		p = limiter.NewFormula(l, p)
	}

	p = otel.NewFormula(config.Type, p)

	var options []recognition.FormulaOption

	if config.Quality > 0 {
		options = append(options, recognition.WithQuality(config.Quality))
	}

	options = append(options,
		recognition.WithFormulaName(config.Type),
		recognition.WithFormulaLogger(logger("formula")),
	)

	cfg.formula = recognition.NewFormula(p, options...)

	return nil
}

func createFormula(cfg formulaConfig) (formula.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "simpletex":
		return simpletexFormula(cfg)

	default:
		return nil, errors.New("invalid formula type: " + cfg.Type)
	}
}

func simpletexFormula(cfg formulaConfig) (formula.Provider, error) {
	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, err
	}

	options := []simpletex.Option{
		simpletex.WithClient(client),
	}

	if cfg.Token != "" {
		options = append(options, simpletex.WithToken(cfg.Token))
	}

	return simpletex.New(cfg.URL, options...)
}
