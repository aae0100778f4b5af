package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "lua", cfg.Dialect)
	assert.Equal(t, "reanchor", cfg.Unmapped)
	assert.Equal(t, ".try-reports", cfg.Reports)
	assert.GreaterOrEqual(t, cfg.Threads, 1)
	assert.Equal(t, 256, cfg.Engine.CallStackSize)
	assert.NoError(t, cfg.Validate())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg := Default()

	err := Parse([]byte(`
dialect = "csharp"
timeout = "250ms"
threads = 3

[engine]
libraries = ["base", "os"]
`), &cfg)
	require.NoError(t, err)

	assert.Equal(t, "csharp", cfg.Dialect)
	assert.Equal(t, 3, cfg.Threads)
	assert.Equal(t, []string{"base", "os"}, cfg.Engine.Libraries)
	assert.Equal(t, 256, cfg.Engine.CallStackSize, "unset keys keep their defaults")
	assert.Equal(t, "reanchor", cfg.Unmapped)

	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		line int
	}{
		{"unknown key", "dialect = \"lua\"\ncolour = \"red\"\n", 2},
		{"wrong type", "threads = \"many\"\n", 0},
		{"syntax", "dialect = \n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()

			err := Parse([]byte(tt.data), &cfg)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			if tt.line > 0 {
				assert.Equal(t, tt.line, perr.Line)
			}

			assert.Contains(t, perr.Error(), "<config>:")
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "try.toml")
	require.NoError(t, os.WriteFile(path, []byte("unmapped = \"drop\"\n"), 0o600))

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "drop", cfg.Unmapped)

	require.NoError(t, os.WriteFile(path, []byte("bogus = 1\n"), 0o600))

	_, err = Load(path)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, path, perr.Path)

	_, err = Load(dir)
	assert.Error(t, err, "a directory is not a config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad timeout", func(c *Config) { c.Timeout = "soon" }},
		{"negative timeout", func(c *Config) { c.Timeout = "-1s" }},
		{"no threads", func(c *Config) { c.Threads = 0 }},
		{"no call stack", func(c *Config) { c.Engine.CallStackSize = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			assert.Error(t, cfg.Validate())
		})
	}
}

func TestTimeoutDurationEmpty(t *testing.T) {
	d, err := Config{}.TimeoutDuration()
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want tracing.TraceLevel
	}{
		{"debug", tracing.LevelDebug},
		{" INFO ", tracing.LevelInfo},
		{"error", tracing.LevelError},
		{"", tracing.LevelError},
	}

	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLogLevel("verbose")
	assert.Error(t, err)
}
