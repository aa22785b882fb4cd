package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/artuross/exprcalc/internal/lang/token"
)

// eof marks the absence of a character in current or peek.
const eof rune = -1

type Lexer struct {
	input    []byte
	position int // byte offset of the first rune not yet decoded into current/peek
	current  rune
	peek     rune
}

func New(input string) *Lexer {
	lexer := Lexer{
		input:    []byte(input),
		position: 0,
	}

	lexer.current = lexer.decode()
	lexer.peek = lexer.decode()

	return &lexer
}

// NextToken returns the next token of the input. Once the input is exhausted
// every call returns EOF.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	if tok, ok := l.readLookaheadOperator(); ok {
		l.advance()
		return tok
	}

	if tok, ok := l.readSingleCharacter(); ok {
		l.advance()
		return tok
	}

	if isLetter(l.current) {
		return l.readIdentifier()
	}

	if isDigit(l.current) {
		return l.readNumber()
	}

	// unknown characters are reported but still consumed
	l.advance()

	return token.New(token.TypeUndefined)
}

// Tokens drains the lexer. The returned slice always ends with EOF.
func (l *Lexer) Tokens() []token.Token {
	tokens := make([]token.Token, 0)

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == token.TypeEOF {
			return tokens
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.current {
		case ' ', '\n', '\t':
			l.advance()

		default:
			return
		}
	}
}

// readLookaheadOperator handles the operators that may take a second '='.
// The second character is consumed here, the first one by the caller.
func (l *Lexer) readLookaheadOperator() (token.Token, bool) {
	var single, double token.Type

	switch l.current {
	case '<':
		single, double = token.TypeSmallerThan, token.TypeSmallerOrEqual

	case '>':
		single, double = token.TypeGreaterThan, token.TypeGreaterOrEqual

	case '=':
		single, double = token.TypeAssign, token.TypeEqual

	case '!':
		single, double = token.TypeNot, token.TypeNotEqual

	default:
		return token.Token{}, false
	}

	if l.peek == '=' {
		l.advance()
		return token.New(double), true
	}

	return token.New(single), true
}

func (l *Lexer) readSingleCharacter() (token.Token, bool) {
	switch l.current {
	case '+':
		return token.New(token.TypePlus), true

	case '-':
		return token.New(token.TypeMinus), true

	case '/':
		return token.New(token.TypeDivide), true

	case '*':
		return token.New(token.TypeAsterisk), true

	case ';':
		return token.New(token.TypeSemicolon), true

	case '(':
		return token.New(token.TypeLParen), true

	case ')':
		return token.New(token.TypeRParen), true

	case eof:
		return token.New(token.TypeEOF), true

	default:
		return token.Token{}, false
	}
}

func (l *Lexer) readIdentifier() token.Token {
	value := l.readWhile(isLetter)

	if keyword, ok := token.LookupKeyword(value); ok {
		return token.New(keyword)
	}

	return token.NewIdentifier(value)
}

// readNumber reads digits, optionally followed by a single '.' and more
// digits. The fraction may be empty, so "30." is a number.
func (l *Lexer) readNumber() token.Token {
	var value strings.Builder

	value.WriteString(l.readWhile(isDigit))

	if l.current == '.' {
		value.WriteRune('.')
		l.advance()

		value.WriteString(l.readWhile(isDigit))
	}

	return token.NewNumber(value.String())
}

func (l *Lexer) readWhile(accept func(rune) bool) string {
	var value strings.Builder

	for accept(l.current) {
		value.WriteRune(l.current)
		l.advance()
	}

	return value.String()
}

func (l *Lexer) advance() {
	l.current = l.peek
	l.peek = l.decode()
}

// decode returns the next rune of the input, or eof. Invalid UTF-8 decodes to
// utf8.RuneError, which no rule accepts.
func (l *Lexer) decode() rune {
	if l.position >= len(l.input) {
		return eof
	}

	r, size := utf8.DecodeRune(l.input[l.position:])
	l.position += size

	return r
}

func isDigit(r rune) bool {
	return unicode.IsNumber(r)
}

// isLetter accepts alphabetic runes: letters, letter numbers and the marks
// of Other_Alphabetic such as vowel signs.
func isLetter(r rune) bool {
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_Alphabetic)
}
