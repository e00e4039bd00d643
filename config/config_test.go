package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Setenv("SIMPLETEX_API_KEY", "secret-key")

	file, err := parseData([]byte(`
address: ":9090"

authorizers:
  - type: static
    name: tablet
    token: abc

handwriting:
  type: tesseract
  language: de-DE
  models: /tmp/tessdata

formula:
  type: simpletex
  token: ${SIMPLETEX_API_KEY}
  limit: 2

document:
  author: Jane Doe

export:
  timeout: 90s
  concurrency: 4
  math_color: "#00ff00"
`))

	require.NoError(t, err)

	require.Equal(t, "secret-key", file.Formula.Token)
	require.Equal(t, 2, *file.Formula.Limit)
	require.Equal(t, "de-DE", file.Handwriting.Language)
	require.Equal(t, 90*time.Second, file.Export.Timeout)
	require.Equal(t, 4, file.Export.Concurrency)

	cfg, err := create(file)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Address)
	require.Len(t, cfg.Authorizers, 1)
	require.NotNil(t, cfg.Exporter())
}

func TestParseDefaults(t *testing.T) {
	file, err := parseData([]byte(`{}`))
	require.NoError(t, err)

	cfg, err := create(file)
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Address)
	require.Empty(t, cfg.Authorizers)
	require.NotNil(t, cfg.Exporter())
}

func TestParseUnknownField(t *testing.T) {
	_, err := parseData([]byte(`
formula:
  type: simpletex
  secret: nope
`))

	require.Error(t, err)
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"authorizers:\n  - type: oidc\n",
		"formula:\n  type: mathpix\n",
		"handwriting:\n  type: cloud\n",
		"export:\n  math_color: green\n",
	}

	for _, data := range tests {
		file, err := parseData([]byte(data))
		require.NoError(t, err, data)

		_, err = create(file)
		require.Error(t, err, data)
	}
}
