package ast

import (
	"fmt"

	"github.com/artuross/exprcalc/internal/commands/input"
	"github.com/artuross/exprcalc/internal/lang/parser"
	"github.com/kr/pretty"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "ast",
		Usage:     "Prints the syntax tree of a program.",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "expr",
				Aliases: []string{"e"},
				Usage:   "Program to parse instead of FILE or stdin.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	source, err := input.ReadOne(cliCtx.StringSlice("expr"), cliCtx.Args().Slice(), cliCtx.App.Reader)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	program, err := parser.New(source.Text).ParseProgram()
	if err != nil {
		return fmt.Errorf("parse %s: %w", source.Name, err)
	}

	fmt.Fprintln(cliCtx.App.Writer, pretty.Sprint(program))
	fmt.Fprintln(cliCtx.App.Writer, program)

	return nil
}
