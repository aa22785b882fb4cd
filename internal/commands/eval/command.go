package eval

import (
	"errors"
	"fmt"
	"os"

	"github.com/artuross/exprcalc/internal/commandinit"
	"github.com/artuross/exprcalc/internal/commands/eval/config"
	"github.com/artuross/exprcalc/internal/commands/input"
	"github.com/artuross/exprcalc/internal/defaults"
	"github.com/artuross/exprcalc/internal/interpreter"
	"github.com/artuross/exprcalc/internal/log/semconv"
	cli "github.com/urfave/cli/v2"
)

var ErrCommandFailed = errors.New("command failed")

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "Evaluates programs and prints one value per program.",
		ArgsUsage: "[FILE...]",
		Description: "Sources are read from --expr flags and FILE arguments. " +
			"Without either, the whole of stdin is evaluated. A FILE of '-' reads stdin.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "expr",
				Aliases: []string{"e"},
				Usage:   "Program to evaluate. May be repeated.",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Maximum number of programs evaluated at the same time.",
				Value: defaults.Concurrency,
			},
			&cli.BoolFlag{
				Name:  "print-names",
				Usage: "Prefix every value with the name of its source.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	ctx, env, err := commandinit.Init(
		cliCtx.Context,
		cliCtx,
		os.Getenv,
		cliCtx.App.ErrWriter,
		"eval",
		cliCtx.App.Version,
	)
	if err != nil {
		return err
	}
	defer env.Shutdown(ctx)

	logger := env.Logger

	cfg, err := config.Read(cliCtx, cliCtx.Args().Slice())
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	sources, err := input.Read(cfg.Expressions, cfg.Files, cliCtx.App.Reader)
	if err != nil {
		logger.Error().Err(err).Msg("read sources")
		return ErrCommandFailed
	}

	logger.Debug().Int(semconv.SourceCount, len(sources)).Msg("read sources")

	interp := interpreter.New(
		interpreter.WithConcurrency(cfg.Concurrency),
		interpreter.WithTracerProvider(env.TracerProvider),
	)

	results, err := interp.RunAll(ctx, sources)
	if err != nil {
		logger.Error().Err(err).Msg("evaluate sources")
		return ErrCommandFailed
	}

	for _, result := range results {
		if cfg.PrintNames {
			fmt.Fprintf(cliCtx.App.Writer, "%s: %s\n", result.Name, result.Value)
			continue
		}

		fmt.Fprintln(cliCtx.App.Writer, result.Value)
	}

	return nil
}
