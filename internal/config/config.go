// Package config provides configuration loading for the OpenAPI table generator.
package config

import (
	"maps"

	configloader "github.com/GabrielNunesIT/go-libs/config-loader"
	"github.com/GabrielNunesIT/openapi-table/internal/extract"
)

// Default values.
const (
	DefaultInputDir        = "."
	DefaultFormat          = "transposed"
	DefaultDelimiter       = "|"
	DefaultPreferredServer = "api.tripgen.com"
	DefaultOutputBase      = "API설계서"
)

// Config holds the application configuration.
type Config struct {
	InputDir        string            `koanf:"input_dir"`
	OutputFile      string            `koanf:"output_file"` // empty: DefaultOutputBase + format extension
	Format          string            `koanf:"format"`
	Delimiter       string            `koanf:"delimiter"`
	PreferredServer string            `koanf:"preferred_server"`
	ServiceNames    map[string]string `koanf:"service_names"`
	PDFFont         string            `koanf:"pdf_font"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		InputDir:        DefaultInputDir,
		Format:          DefaultFormat,
		Delimiter:       DefaultDelimiter,
		PreferredServer: DefaultPreferredServer,
		ServiceNames:    maps.Clone(extract.DefaultServiceNames),
	}
}

// Load returns the application configuration using go-libs config-loader.
// When file is non-empty its values override the defaults.
func Load(file string) (*Config, error) {
	defaults := Defaults()

	load := func() (Config, error) {
		return configloader.NewConfigLoader(
			configloader.WithDefaults(defaults),
		).Load()
	}

	if file != "" {
		load = func() (Config, error) {
			return configloader.NewConfigLoader(
				configloader.WithDefaults(defaults),
				configloader.WithFile[Config](file),
			).Load()
		}
	}

	cfg, err := load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
