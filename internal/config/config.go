// Package config loads try settings from a TOML file.
//
// Values are layered: built-in defaults, then the config file, then command
// line flags applied by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is read when no --config flag is given.
const DefaultFile = ".try.toml"

// Config holds every setting the CLI understands.
type Config struct {
	Dialect  string `toml:"dialect"`
	Unmapped string `toml:"unmapped"`
	Timeout  string `toml:"timeout"`
	Threads  int    `toml:"threads"`
	Reports  string `toml:"reports"`
	LogLevel string `toml:"log_level"`
	Engine   Engine `toml:"engine"`
}

// Engine configures the Lua engine.
type Engine struct {
	Libraries     []string `toml:"libraries"`
	CallStackSize int      `toml:"call_stack_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dialect:  "lua",
		Unmapped: "reanchor",
		Timeout:  "5s",
		Threads:  runtime.NumCPU(),
		Reports:  ".try-reports",
		LogLevel: "error",
		Engine: Engine{
			Libraries:     []string{"base", "table", "string", "math"},
			CallStackSize: 256,
		},
	}
}

// ParseError reports a malformed config file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	}

	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := Parse(data, &cfg); err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}

		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes TOML data into cfg, keeping values the data does not set.
func Parse(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(cfg); err != nil {
		perr := &ParseError{Path: "<config>", Message: err.Error(), Err: err}

		var (
			derr *toml.DecodeError
			serr *toml.StrictMissingError
		)

		switch {
		case errors.As(err, &derr):
			perr.Line, perr.Column = derr.Position()
		case errors.As(err, &serr) && len(serr.Errors) > 0:
			perr.Line, perr.Column = serr.Errors[0].Position()
			perr.Message = "unknown key " + strings.Join(serr.Errors[0].Key(), ".")
		}

		return perr
	}

	return nil
}

// Validate checks value ranges. Dialect and policy names are checked by the
// packages that own them.
func (c Config) Validate() error {
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	if c.Threads < 1 {
		return fmt.Errorf("threads must be at least 1, got %d", c.Threads)
	}

	if c.Engine.CallStackSize < 1 {
		return fmt.Errorf("engine.call_stack_size must be at least 1, got %d", c.Engine.CallStackSize)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// TimeoutDuration parses Timeout. Zero disables the timeout.
func (c Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}

	if d < 0 {
		return 0, fmt.Errorf("negative timeout %q", c.Timeout)
	}

	return d, nil
}

// ParseLogLevel maps a level name to a tracing level.
func ParseLogLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error", "":
		return tracing.LevelError, nil
	default:
		return tracing.LevelError, fmt.Errorf("unknown log level %q", s)
	}
}
