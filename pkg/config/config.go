// Package config loads the CLI configuration: built-in defaults, an
// optional TOML file under the XDG config home, then STATICIZE_
// environment overrides, merged in that order.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/staticize/pkg/errors"
)

// Config holds the CLI settings
type Config struct {
	// Export controls the export command
	Export ExportConfig `koanf:"export"`
	// NoColor disables colored table output
	NoColor bool `koanf:"no_color"`
}

// ExportConfig holds export command settings
type ExportConfig struct {
	// Format is the default serialization format: toml, yaml or json
	Format string `koanf:"format"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"export.format": "toml",
		"no_color":      false,
	}
}

// Path returns the location of the config file
func Path() string {
	return filepath.Join(xdg.ConfigHome, "staticize", "config.toml")
}

// Load reads and merges the configuration
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if path := Path(); fileExists(path) {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
		}
	}

	if err := k.Load(env.Provider("STATICIZE_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "STATICIZE_")), "__", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	switch cfg.Export.Format {
	case "toml", "yaml", "json":
	default:
		return nil, errors.Newf(errors.ErrConfigParse,
			"unsupported export format %q, expected toml, yaml or json", cfg.Export.Format)
	}

	return &cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
