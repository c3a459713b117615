// SPDX-License-Identifier: MIT

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("workers", DefaultWorkers, "")
	fs.String("log-level", DefaultLogLevel, "")
	fs.String("output", DefaultOutput, "")
	fs.Int("part", DefaultPart, "")
	return fs
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "almanac.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Workers:   DefaultWorkers,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Output:    DefaultOutput,
		Part:      DefaultPart,
	}, cfg)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, "workers: 3\nlog_level: info\noutput: yaml\npart: 1\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, path, cfg.File)

	t.Setenv("ALMANAC_WORKERS", "6")
	t.Setenv("ALMANAC_LOG_LEVEL", "debug")
	cfg, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Workers, "env beats file")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "yaml", cfg.Output, "untouched keys keep the file value")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--workers", "9", "--part", "2"}))
	cfg, err = Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Workers, "flags beat env")
	assert.Equal(t, 2, cfg.Part)
	assert.Equal(t, "debug", cfg.LogLevel, "unchanged flags do not override env")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)

	_, err = Load(writeFile(t, "workers: [1, 2"), nil)
	require.Error(t, err)

	_, err = Load(writeFile(t, "output: xml\n"), nil)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	base := Config{Workers: 1, LogLevel: "warn", LogFormat: "text", Output: "text"}
	require.NoError(t, base.Validate())

	cases := map[string]func(c *Config){
		"workers":    func(c *Config) { c.Workers = 0 },
		"log_level":  func(c *Config) { c.LogLevel = "loud" },
		"log_format": func(c *Config) { c.LogFormat = "xml" },
		"output":     func(c *Config) { c.Output = "csv" },
		"part":       func(c *Config) { c.Part = 3 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			err := c.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestLevel(t *testing.T) {
	c := Config{LogLevel: "DEBUG"}
	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}
