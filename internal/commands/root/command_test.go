package root_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/artuross/exprcalc/internal/commandinit"
	"github.com/artuross/exprcalc/internal/commands/root"
	"github.com/artuross/exprcalc/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type output struct {
	stdout string
	stderr string
}

func runApp(t *testing.T, stdin string, args ...string) (output, error) {
	t.Helper()

	t.Setenv(commandinit.EnvLogLevel, "")
	t.Setenv(commandinit.EnvOpenTelemetry, "")

	var stdout, stderr bytes.Buffer

	app := root.NewCommand()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{"exprcalc"}, args...))

	return output{stdout: stdout.String(), stderr: stderr.String()}, err
}

func TestEval(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		out, err := runApp(t, "+(50 40 20)\n", "eval")
		require.NoError(t, err)

		assert.Equal(t, "110\n", out.stdout)
	})

	t.Run("empty stdin", func(t *testing.T) {
		out, err := runApp(t, "", "eval")
		require.NoError(t, err)

		assert.Equal(t, "0\n", out.stdout)
	})

	t.Run("expressions", func(t *testing.T) {
		out, err := runApp(t, "", "eval", "-e", "+( 10 20 30.5)", "--expr", "50.1")
		require.NoError(t, err)

		assert.Equal(t, "60.5\n50.1\n", out.stdout)
	})

	t.Run("files with names", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "sum.calc")
		require.NoError(t, os.WriteFile(file, []byte("1\n+(2 3)\n"), 0o644))

		out, err := runApp(t, "", "eval", "--print-names", file)
		require.NoError(t, err)

		assert.Equal(t, file+": 5\n", out.stdout)
	})

	t.Run("parse failure", func(t *testing.T) {
		out, err := runApp(t, "", "eval", "-e", "+(50 40")
		require.Error(t, err)

		assert.Empty(t, out.stdout)
		assert.Contains(t, out.stderr, "unterminated argument list")
	})

	t.Run("log level flag", func(t *testing.T) {
		out, err := runApp(t, "", "--log-level", "debug", "eval", "-e", "1")
		require.NoError(t, err)

		assert.Equal(t, "1\n", out.stdout)
		assert.Contains(t, out.stderr, "evaluated program")
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, err := runApp(t, "", "--log-level", "loud", "eval", "-e", "1")
		assert.ErrorContains(t, err, "invalid log level")
	})
}

func TestTokens(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		out, err := runApp(t, "", "tokens", "-e", "let x == 1")
		require.NoError(t, err)

		expected := "Token<LET, 'let'>\n" +
			"Token<IDENTIFIER, 'x'>\n" +
			"Token<EQ, '=='>\n" +
			"Token<NUMBER, '1'>\n" +
			"Token<EOF, ''>\n"
		assert.Equal(t, expected, out.stdout)
	})

	t.Run("strict", func(t *testing.T) {
		_, err := runApp(t, "1 ?", "tokens", "--strict")
		assert.ErrorContains(t, err, "undefined tokens")
	})

	t.Run("too many sources", func(t *testing.T) {
		_, err := runApp(t, "", "tokens", "-e", "1", "-e", "2")
		assert.ErrorContains(t, err, "single source")
	})
}

func TestAST(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		out, err := runApp(t, "+(1 2.5)", "ast")
		require.NoError(t, err)

		assert.Contains(t, out.stdout, "ast.Program")
		assert.Contains(t, out.stdout, "2.5")
		assert.True(t, strings.HasSuffix(out.stdout, "\n3.5\n"), out.stdout)
	})

	t.Run("display text joins values", func(t *testing.T) {
		out, err := runApp(t, "", "ast", "-e", "+(1 2) 3")
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(out.stdout, "\n33\n"), out.stdout)
	})

	t.Run("parse failure", func(t *testing.T) {
		_, err := runApp(t, "", "ast", "-e", "+ 1")
		assert.ErrorContains(t, err, "unexpected token: expected LPAREN")
	})
}

func TestConfigure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	out, err := runApp(t, "", "configure", "--config-file", path, "--prompt", "> ", "--repl-log-level", "info")
	require.NoError(t, err)

	assert.Contains(t, out.stdout, "Writing settings:")

	saved, err := settings.Read(path)
	require.NoError(t, err)

	assert.Equal(t, "> ", saved.Prompt)
	assert.Equal(t, settings.DefaultContinuationPrompt, saved.ContinuationPrompt)
	assert.Equal(t, "info", saved.LogLevel)
}
