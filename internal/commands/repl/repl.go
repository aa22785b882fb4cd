package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/artuross/exprcalc/internal/interpreter"
	"github.com/artuross/exprcalc/internal/lang/lexer"
	"github.com/artuross/exprcalc/internal/lang/parser"
	"github.com/artuross/exprcalc/internal/settings"
	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/peterh/liner"
	"github.com/rs/zerolog"
)

const (
	sourceName = "<repl>"

	commandAST    = ":ast"
	commandHelp   = ":help"
	commandQuit   = ":quit"
	commandTokens = ":tokens"
)

const helpText = `REPL commands:
  :ast PROGRAM     Print the syntax tree of PROGRAM
  :tokens PROGRAM  Print the tokens of PROGRAM
  :help            Show this help
  :quit            Exit the REPL

Programs spanning several lines are continued until every '(' is closed.
Ctrl+C discards the current input, Ctrl+D exits.`

// Lines is the part of liner.State used by the REPL.
type Lines interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type REPL struct {
	interpreter        *interpreter.Interpreter
	out                io.Writer
	prompt             string
	continuationPrompt string
	errorText          func(a ...any) string
}

func New(interp *interpreter.Interpreter, out io.Writer, cfg *settings.Settings) *REPL {
	return &REPL{
		interpreter:        interp,
		out:                out,
		prompt:             cfg.Prompt,
		continuationPrompt: cfg.ContinuationPrompt,
		errorText:          color.New(color.FgRed).SprintFunc(),
	}
}

// Run reads programs until the input ends or :quit is entered. Failures of a
// single program are printed and do not stop the loop.
func (r *REPL) Run(ctx context.Context, lines Lines) error {
	logger := zerolog.Ctx(ctx)

	var pending strings.Builder

	for {
		prompt := r.prompt
		if pending.Len() > 0 {
			prompt = r.continuationPrompt
		}

		line, err := lines.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			pending.Reset()
			continue
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		if pending.Len() == 0 {
			quit, handled := r.handleCommand(line)
			if quit {
				return nil
			}
			if handled {
				lines.AppendHistory(line)
				continue
			}
		}

		if pending.Len() > 0 {
			pending.WriteByte('\n')
		}
		pending.WriteString(line)

		text := pending.String()
		if strings.TrimSpace(text) == "" {
			pending.Reset()
			continue
		}

		result, err := r.interpreter.Run(ctx, interpreter.Source{Name: sourceName, Text: text})
		if parser.IsIncomplete(err) {
			logger.Debug().Err(err).Msg("incomplete input, reading continuation")
			continue
		}

		pending.Reset()
		lines.AppendHistory(text)

		if err != nil {
			fmt.Fprintln(r.out, r.errorText(err.Error()))
			continue
		}

		fmt.Fprintln(r.out, result.Value)
	}
}

// handleCommand runs a REPL command. It reports whether the REPL must stop and
// whether line was a command at all.
func (r *REPL) handleCommand(line string) (bool, bool) {
	name, argument, _ := strings.Cut(strings.TrimSpace(line), " ")

	switch name {
	case commandQuit:
		return true, true

	case commandHelp:
		fmt.Fprintln(r.out, helpText)
		return false, true

	case commandTokens:
		for _, tok := range lexer.New(argument).Tokens() {
			fmt.Fprintln(r.out, tok)
		}
		return false, true

	case commandAST:
		program, err := parser.New(argument).ParseProgram()
		if err != nil {
			fmt.Fprintln(r.out, r.errorText(err.Error()))
			return false, true
		}

		fmt.Fprintln(r.out, pretty.Sprint(program))
		return false, true

	default:
		return false, false
	}
}
