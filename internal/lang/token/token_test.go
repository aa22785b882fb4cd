package token_test

import (
	"testing"

	"github.com/artuross/exprcalc/internal/lang/token"
	"github.com/stretchr/testify/assert"
)

func TestToken_Value(t *testing.T) {
	type testCase struct {
		token token.Token
		value string
	}

	testCases := []testCase{
		{token.New(token.TypePlus), "+"},
		{token.New(token.TypeMinus), "-"},
		{token.New(token.TypeAsterisk), "*"},
		{token.New(token.TypeDivide), "/"},
		{token.New(token.TypeAssign), "="},
		{token.New(token.TypeSemicolon), ";"},
		{token.New(token.TypeLParen), "("},
		{token.New(token.TypeRParen), ")"},
		{token.New(token.TypeNot), "!"},
		{token.New(token.TypeEqual), "=="},
		{token.New(token.TypeNotEqual), "!="},
		{token.New(token.TypeSmallerThan), "<"},
		{token.New(token.TypeSmallerOrEqual), "<="},
		{token.New(token.TypeGreaterThan), ">"},
		{token.New(token.TypeGreaterOrEqual), ">="},
		{token.New(token.TypeLet), "let"},
		{token.New(token.TypeEOF), ""},
		{token.New(token.TypeUndefined), ""},
		{token.NewIdentifier("hallo"), "hallo"},
		{token.NewNumber("30.5"), "30.5"},
		{token.NewNumber("30."), "30."},
	}

	for _, tc := range testCases {
		t.Run(tc.token.Type.String(), func(t *testing.T) {
			assert.Equal(t, tc.value, tc.token.Value())
		})
	}
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "Token<GE, '>='>", token.New(token.TypeGreaterOrEqual).String())
	assert.Equal(t, "Token<NUMBER, '15'>", token.NewNumber("15").String())
	assert.Equal(t, "Token<EOF, ''>", token.New(token.TypeEOF).String())
}

func TestToken_Equality(t *testing.T) {
	assert.Equal(t, token.NewNumber("1"), token.NewNumber("1"))
	assert.NotEqual(t, token.NewNumber("1"), token.NewIdentifier("1"))
	assert.NotEqual(t, token.NewNumber("1"), token.NewNumber("1.0"))
}

func TestLookupKeyword(t *testing.T) {
	tokenType, ok := token.LookupKeyword("let")
	assert.True(t, ok)
	assert.Equal(t, token.TypeLet, tokenType)

	_, ok = token.LookupKeyword("lets")
	assert.False(t, ok)

	_, ok = token.LookupKeyword("Let")
	assert.False(t, ok)
}
