package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/artuross/exprcalc/internal/interpreter"
)

const (
	StdinArg  = "-"
	StdinName = "<stdin>"
)

var ErrTooManySources = errors.New("expected a single source")

func ExprName(index int) string {
	return fmt.Sprintf("<expr:%d>", index)
}

// Read collects sources from inline expressions and files, in that order.
// Without either the whole of stdin is a single source. The file "-" also
// reads stdin.
func Read(exprs []string, files []string, stdin io.Reader) ([]interpreter.Source, error) {
	if len(exprs) == 0 && len(files) == 0 {
		files = []string{StdinArg}
	}

	sources := make([]interpreter.Source, 0, len(exprs)+len(files))

	for index, expr := range exprs {
		sources = append(sources, interpreter.Source{
			Name: ExprName(index),
			Text: expr,
		})
	}

	for _, file := range files {
		source, err := readFile(file, stdin)
		if err != nil {
			return nil, err
		}

		sources = append(sources, source)
	}

	return sources, nil
}

// ReadOne is Read for commands that work on exactly one source.
func ReadOne(exprs []string, files []string, stdin io.Reader) (interpreter.Source, error) {
	if len(exprs)+len(files) > 1 {
		return interpreter.Source{}, ErrTooManySources
	}

	sources, err := Read(exprs, files, stdin)
	if err != nil {
		return interpreter.Source{}, err
	}

	return sources[0], nil
}

func readFile(path string, stdin io.Reader) (interpreter.Source, error) {
	if path == StdinArg {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return interpreter.Source{}, fmt.Errorf("read stdin: %w", err)
		}

		return interpreter.Source{Name: StdinName, Text: string(data)}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return interpreter.Source{}, fmt.Errorf("read source file: %w", err)
	}

	return interpreter.Source{Name: path, Text: string(data)}, nil
}
