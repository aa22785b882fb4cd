package repl

import (
	"fmt"
	"os"

	"github.com/artuross/exprcalc/internal/commandinit"
	"github.com/artuross/exprcalc/internal/interpreter"
	"github.com/artuross/exprcalc/internal/settings"
	"github.com/peterh/liner"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Starts an interactive session.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-file",
				Usage: "Path of the settings file. Defaults to the user config directory.",
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "Do not read or write the history file.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	settingsPath := cliCtx.String("config-file")
	if settingsPath == "" {
		path, err := settings.DefaultPath()
		if err != nil {
			return err
		}

		settingsPath = path
	}

	cfg, err := settings.ReadOrDefault(settingsPath)
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	// the settings file provides the log level when neither flag nor env does
	getEnv := func(key string) string {
		if value := os.Getenv(key); value != "" || key != commandinit.EnvLogLevel {
			return value
		}

		return cfg.LogLevel
	}

	ctx, env, err := commandinit.Init(
		cliCtx.Context,
		cliCtx,
		getEnv,
		cliCtx.App.ErrWriter,
		"repl",
		cliCtx.App.Version,
	)
	if err != nil {
		return err
	}
	defer env.Shutdown(ctx)

	logger := env.Logger

	lines := liner.NewLiner()
	defer lines.Close()

	lines.SetCtrlCAborts(true)

	if !cliCtx.Bool("no-history") {
		historyPath, err := cfg.HistoryPath()
		if err != nil {
			return err
		}

		if f, err := os.Open(historyPath); err == nil {
			if _, err := lines.ReadHistory(f); err != nil {
				logger.Warn().Err(err).Str("path", historyPath).Msg("read history")
			}
			_ = f.Close()
		}

		defer func() {
			f, err := os.Create(historyPath)
			if err != nil {
				logger.Warn().Err(err).Str("path", historyPath).Msg("create history file")
				return
			}
			defer f.Close()

			if _, err := lines.WriteHistory(f); err != nil {
				logger.Warn().Err(err).Str("path", historyPath).Msg("write history")
			}
		}()
	}

	fmt.Fprintf(cliCtx.App.Writer, "exprcalc %s. Type :help for help, :quit to exit.\n", cliCtx.App.Version)

	interp := interpreter.New(interpreter.WithTracerProvider(env.TracerProvider))

	if err := New(interp, cliCtx.App.Writer, cfg).Run(ctx, lines); err != nil {
		logger.Error().Err(err).Msg("run repl")
		return err
	}

	return nil
}
