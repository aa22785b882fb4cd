package commandinit

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel      = "EXPRCALC_LOG_LEVEL"
	EnvOpenTelemetry = "EXPRCALC_OTEL"

	FlagLogLevel      = "log-level"
	FlagOpenTelemetry = "otel"
)

var DefaultLogLevel = zerolog.WarnLevel

type Flagger interface {
	Bool(name string) bool
	IsSet(name string) bool
	String(name string) string
}

// Config holds the settings shared by every command.
type Config struct {
	LogLevel      zerolog.Level
	OpenTelemetry bool
	Version       string
}

// ReadConfig reads the global flags. A flag that was not set falls back to
// its environment variable.
func ReadConfig(flags Flagger, getEnv func(string) string, version string) (*Config, error) {
	rawLevel := getEnv(EnvLogLevel)
	if flags.IsSet(FlagLogLevel) {
		rawLevel = flags.String(FlagLogLevel)
	}

	logLevel := DefaultLogLevel
	if rawLevel != "" {
		level, err := zerolog.ParseLevel(rawLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", rawLevel, err)
		}

		logLevel = level
	}

	openTelemetry := flags.Bool(FlagOpenTelemetry)
	if !flags.IsSet(FlagOpenTelemetry) {
		if raw := getEnv(EnvOpenTelemetry); raw != "" {
			enabled, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("env var %s must be a boolean: %w", EnvOpenTelemetry, err)
			}

			openTelemetry = enabled
		}
	}

	cfg := Config{
		LogLevel:      logLevel,
		OpenTelemetry: openTelemetry,
		Version:       version,
	}

	return &cfg, nil
}
