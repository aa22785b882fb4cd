package token

import "fmt"

type Type string

const (
	TypePlus      Type = "PLUS"
	TypeMinus     Type = "MINUS"
	TypeAsterisk  Type = "ASTERISK"
	TypeDivide    Type = "DIVIDE"
	TypeAssign    Type = "ASSIGN"
	TypeSemicolon Type = "SEMICOLON"
	TypeLParen    Type = "LPAREN"
	TypeRParen    Type = "RPAREN"
	TypeNot       Type = "NOT"

	TypeEqual          Type = "EQ"
	TypeNotEqual       Type = "NEQ"
	TypeSmallerThan    Type = "ST"
	TypeSmallerOrEqual Type = "SE"
	TypeGreaterThan    Type = "GT"
	TypeGreaterOrEqual Type = "GE"

	TypeIdentifier Type = "IDENTIFIER"
	TypeNumber     Type = "NUMBER"

	TypeLet Type = "LET"

	TypeEOF       Type = "EOF"
	TypeUndefined Type = "UNDEFINED"
)

// canonical text of every type without a payload
var fixedValues = map[Type]string{
	TypePlus:      "+",
	TypeMinus:     "-",
	TypeAsterisk:  "*",
	TypeDivide:    "/",
	TypeAssign:    "=",
	TypeSemicolon: ";",
	TypeLParen:    "(",
	TypeRParen:    ")",
	TypeNot:       "!",

	TypeEqual:          "==",
	TypeNotEqual:       "!=",
	TypeSmallerThan:    "<",
	TypeSmallerOrEqual: "<=",
	TypeGreaterThan:    ">",
	TypeGreaterOrEqual: ">=",

	TypeLet: "let",

	TypeEOF:       "",
	TypeUndefined: "",
}

var keywords = map[string]Type{
	"let": TypeLet,
}

// Token is a single lexical unit. RawValue is only set for IDENTIFIER and NUMBER.
type Token struct {
	Type     Type
	RawValue string
}

func New(t Type) Token {
	return Token{Type: t}
}

func NewIdentifier(raw string) Token {
	return Token{Type: TypeIdentifier, RawValue: raw}
}

func NewNumber(raw string) Token {
	return Token{Type: TypeNumber, RawValue: raw}
}

// Value returns the canonical text of the token. Payload tokens render the
// text they were created from.
func (t Token) Value() string {
	if t.Type.HasPayload() {
		return t.RawValue
	}

	return fixedValues[t.Type]
}

func (t Token) String() string {
	return fmt.Sprintf("Token<%s, '%s'>", t.Type, t.Value())
}

func (t Type) String() string {
	return string(t)
}

func (t Type) HasPayload() bool {
	return t == TypeIdentifier || t == TypeNumber
}

// LookupKeyword reports whether raw is a reserved word.
func LookupKeyword(raw string) (Type, bool) {
	t, ok := keywords[raw]
	return t, ok
}
