package root

import (
	"github.com/artuross/exprcalc/internal/commandinit"
	"github.com/artuross/exprcalc/internal/commands/ast"
	"github.com/artuross/exprcalc/internal/commands/configure"
	"github.com/artuross/exprcalc/internal/commands/eval"
	"github.com/artuross/exprcalc/internal/commands/repl"
	"github.com/artuross/exprcalc/internal/commands/tokens"
	"github.com/artuross/exprcalc/internal/meta/version"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.App {
	return &cli.App{
		Name:    "exprcalc",
		Usage:   "Evaluates programs written in a small prefix addition language.",
		Version: version.Version,
		// programs may contain any character, so --expr values are never split
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  commandinit.FlagLogLevel,
				Usage: "Log level: trace, debug, info, warn or error. Env: " + commandinit.EnvLogLevel + ".",
			},
			&cli.BoolFlag{
				Name:  commandinit.FlagOpenTelemetry,
				Usage: "Export traces over OTLP/gRPC. Env: " + commandinit.EnvOpenTelemetry + ".",
			},
		},
		Commands: []*cli.Command{
			ast.NewCommand(),
			configure.NewCommand(),
			eval.NewCommand(),
			repl.NewCommand(),
			tokens.NewCommand(),
		},
	}
}
