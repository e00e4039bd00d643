package config

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/blueputty01/swiftnotes/pkg/auth"
	"github.com/blueputty01/swiftnotes/pkg/export"
	"github.com/blueputty01/swiftnotes/pkg/recognition"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Authorizers []auth.Provider

	handwriting *recognition.HandwritingClient
	formula     *recognition.FormulaClient

	exporter *export.Coordinator
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	return create(file)
}

func create(file *configFile) (*Config, error) {
	c := &Config{
		Address: ":8080",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerAuthorizer(file); err != nil {
		return nil, err
	}

	if err := c.registerHandwriting(file); err != nil {
		return nil, err
	}

	if err := c.registerFormula(file); err != nil {
		return nil, err
	}

	if err := c.registerExporter(file); err != nil {
		return nil, err
	}

	return c, nil
}

func (cfg *Config) RegisterExporter(e *export.Coordinator) {
	cfg.exporter = e
}

func (cfg *Config) Exporter() *export.Coordinator {
	return cfg.exporter
}

type configFile struct {
	Address string `yaml:"address"`

	Authorizers []authorizerConfig `yaml:"authorizers"`

	Handwriting handwritingConfig `yaml:"handwriting"`
	Formula     formulaConfig     `yaml:"formula"`

	Document documentConfig `yaml:"document"`
	Export   exportConfig   `yaml:"export"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return parseData(data)
}

func parseData(data []byte) (*configFile, error) {
	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}

func logger(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
