package config

import (
	"bytes"

	"github.com/arthur-debert/assetunion/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names accepted by Generate and Encode
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Starter returns the configuration written by `assetunion init`.
func Starter() *Config {
	return &Config{
		SourceDir:      "assets",
		MissingSources: MissingFail,
		FileMode:       FileMode(0644),
		Logging:        LoggingConfig{File: true},
		Bundles: map[string]BundleConfig{
			"site": {
				Files:  []string{"reset.css", "layout.css", "theme.css"},
				Output: "public/site.css",
			},
		},
	}
}

// Generate renders the starter configuration in the given format.
func Generate(format string) ([]byte, error) {
	return Encode(Starter(), format)
}

// Encode renders cfg as TOML or YAML.
func Encode(cfg *Config, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML, "":
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode TOML")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q (want %s or %s)", format, FormatTOML, FormatYAML)
	}
	return buf.Bytes(), nil
}

// ProjectFileName returns the file name `init` writes for a format.
func ProjectFileName(format string) string {
	if format == FormatYAML {
		return "assetunion.yaml"
	}
	return "assetunion.toml"
}
