// SPDX-License-Identifier: MIT

// Package config loads almanac CLI settings from defaults, an optional YAML
// file, ALMANAC_* environment variables and explicitly set flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Defaults.
const (
	DefaultFile      = "almanac.yaml"
	DefaultWorkers   = 1
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultOutput    = "text"
	DefaultPart      = 0
	EnvPrefix        = "ALMANAC_"
)

// ErrInvalid indicates a setting outside its allowed values.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the resolved settings.
type Config struct {
	Workers   int    `koanf:"workers"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
	Output    string `koanf:"output"`
	// Part selects which answer to print: 1 points, 2 ranges, 0 both.
	Part int `koanf:"part"`

	// File is the config file that was read, empty when none.
	File string `koanf:"-"`
}

// Load resolves the configuration. cfgFile may be empty, in which case
// DefaultFile is read when it exists. flags may be nil; only flags with
// Changed set override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"workers":    DefaultWorkers,
		"log_level":  DefaultLogLevel,
		"log_format": DefaultLogFormat,
		"output":     DefaultOutput,
		"part":       DefaultPart,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", used, err)
		}
	}

	// ALMANAC_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.File = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// findConfigFile returns explicit when set, else DefaultFile if present.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}

	return ""
}

// Validate checks every setting against its allowed values.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers=%d, want >= 1", ErrInvalid, c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format=%q, want text|json", ErrInvalid, c.LogFormat)
	}
	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: output=%q, want text|json|yaml", ErrInvalid, c.Output)
	}
	if c.Part < 0 || c.Part > 2 {
		return fmt.Errorf("%w: part=%d, want 0|1|2", ErrInvalid, c.Part)
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level=%q", ErrInvalid, c.LogLevel)
	}

	return lvl, nil
}
