package commandinit

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

type Environment struct {
	Config         *Config
	Logger         zerolog.Logger
	TracerProvider trace.TracerProvider
	Shutdown       ShutdownFunc
}

// Init reads the global config and builds the logger and tracer provider of a
// command. The returned context carries the logger.
func Init(
	ctx context.Context,
	flags Flagger,
	getEnv func(string) string,
	logOutput io.Writer,
	command string,
	version string,
) (context.Context, *Environment, error) {
	cfg, err := ReadConfig(flags, getEnv, version)
	if err != nil {
		return ctx, nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := NewLogger(logOutput, cfg, command)

	tracerProvider, shutdown, err := NewOpenTelemetry(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("init OTEL provider")
		return ctx, nil, err
	}

	env := Environment{
		Config:         cfg,
		Logger:         logger,
		TracerProvider: tracerProvider,
		Shutdown:       shutdown,
	}

	return logger.WithContext(ctx), &env, nil
}
