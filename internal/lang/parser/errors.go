package parser

import (
	"errors"
	"fmt"

	"github.com/artuross/exprcalc/internal/lang/token"
)

var (
	ErrInvalidNumberLiteral     = errors.New("invalid number literal")
	ErrUnexpectedToken          = errors.New("unexpected token")
	ErrUnsupportedToken         = errors.New("unsupported token")
	ErrUnterminatedArgumentList = errors.New("unterminated argument list")
)

// SyntaxError describes the token that stopped the parser. Kind is one of the
// sentinel errors above, so callers can use errors.Is on it.
type SyntaxError struct {
	Kind     error
	Token    token.Token
	Expected token.Type
	Err      error
}

func (e *SyntaxError) Error() string {
	message := fmt.Sprintf("%s: ", e.Kind)

	if e.Expected != "" {
		message += fmt.Sprintf("expected %s, got %s", e.Expected, e.Token)
	} else {
		message += e.Token.String()
	}

	if e.Err != nil {
		message += ": " + e.Err.Error()
	}

	return message
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// IsIncomplete reports whether err was caused by the input ending before the
// current construct was closed. More input may make such a source valid.
func IsIncomplete(err error) bool {
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		return false
	}

	return syntaxErr.Token.Type == token.TypeEOF
}
