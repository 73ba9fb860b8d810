// Package config loads runtime settings for the pipeloop command from the
// environment, optionally seeded from a .env file, and builds its logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvLogLevel  = "PIPELOOP_LOG_LEVEL"
	EnvLogFormat = "PIPELOOP_LOG_FORMAT"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrInvalidLogLevel indicates a level other than debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("config: invalid log level: must be 'debug', 'info', 'warn' or 'error'")
	// ErrInvalidLogFormat indicates a format other than text or json.
	ErrInvalidLogFormat = errors.New("config: invalid log format: must be 'text' or 'json'")
)

// Config holds the command's settings.
type Config struct {
	LogLevel  slog.Level // Minimum level written to the log
	LogFormat string     // FormatText or FormatJSON
}

// Default returns warn-level text logging.
func Default() Config {
	return Config{
		LogLevel:  slog.LevelWarn,
		LogFormat: FormatText,
	}
}

// Load reads the given env files (".env" when none are named) without
// overriding variables already set, then builds a Config from the
// environment. Missing env files are not an error; empty variables keep
// their defaults.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}
	return Default().Override(os.Getenv(EnvLogLevel), os.Getenv(EnvLogFormat))
}

// Override returns c with the non-empty arguments applied.
func (c Config) Override(level, format string) (Config, error) {
	if level != "" {
		l, err := ParseLevel(level)
		if err != nil {
			return Config{}, err
		}
		c.LogLevel = l
	}
	if format != "" {
		f, err := ParseFormat(format)
		if err != nil {
			return Config{}, err
		}
		c.LogFormat = f
	}
	return c, nil
}

// ParseLevel maps a case-insensitive level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
}

// ParseFormat validates a case-insensitive log format name.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLogFormat, s)
}

// NewLogger builds a slog.Logger writing to w according to c.
func NewLogger(w io.Writer, c Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
