package tokens

import (
	"errors"
	"fmt"

	"github.com/artuross/exprcalc/internal/commands/input"
	"github.com/artuross/exprcalc/internal/lang/lexer"
	"github.com/artuross/exprcalc/internal/lang/token"
	cli "github.com/urfave/cli/v2"
)

var ErrUndefinedToken = errors.New("source contains undefined tokens")

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Prints the tokens of a program, one per line.",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "expr",
				Aliases: []string{"e"},
				Usage:   "Program to tokenize instead of FILE or stdin.",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail when the program contains characters that are not part of any token.",
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

	undefined := 0
	for _, tok := range lexer.New(source.Text).Tokens() {
		if tok.Type == token.TypeUndefined {
			undefined++
		}

		fmt.Fprintln(cliCtx.App.Writer, tok)
	}

	if cliCtx.Bool("strict") && undefined > 0 {
		return fmt.Errorf("%w: %d", ErrUndefinedToken, undefined)
	}

	return nil
}
