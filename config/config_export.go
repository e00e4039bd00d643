package config

import (
	"time"

	"github.com/blueputty01/swiftnotes/pkg/document"
	"github.com/blueputty01/swiftnotes/pkg/export"
	"github.com/blueputty01/swiftnotes/pkg/ink"
)

type documentConfig struct {
	Title   string `yaml:"title"`
	Creator string `yaml:"creator"`
	Author  string `yaml:"author"`
}

type exportConfig struct {
	Timeout     time.Duration `yaml:"timeout"`
	Concurrency int           `yaml:"concurrency"`

	Sequential bool `yaml:"sequential"`

	MathColor string `yaml:"math_color"`
}

func (cfg *Config) registerExporter(f *configFile) error {
	writer := document.New()

	if f.Document.Title != "" {
		writer.Metadata.Title = f.Document.Title
	}

	if f.Document.Creator != "" {
		writer.Metadata.Creator = f.Document.Creator
	}

	writer.Metadata.Author = f.Document.Author

	classifier := ink.NewClassifier()

	if f.Export.MathColor != "" {
		color, err := ink.ParseColor(f.Export.MathColor)

		if err != nil {
			return err
		}

		classifier.MathColor = color
	}

	exporter := export.New(cfg.handwriting, cfg.formula,
		export.WithWriter(writer),
		export.WithClassifier(classifier),
		export.WithTimeout(f.Export.Timeout),
		export.WithConcurrency(f.Export.Concurrency),
		export.WithSequential(f.Export.Sequential),
		export.WithLogger(logger("export")),
	)

	cfg.RegisterExporter(exporter)

	return nil
}
