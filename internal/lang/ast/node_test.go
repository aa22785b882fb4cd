package ast_test

import (
	"math"
	"testing"

	"github.com/artuross/exprcalc/internal/lang/ast"
	"github.com/stretchr/testify/assert"
)

func TestNumber_String(t *testing.T) {
	type testCase struct {
		value    float64
		expected string
	}

	testCases := []testCase{
		{0, "0"},
		{110, "110"},
		{60.5, "60.5"},
		{50.1, "50.1"},
		{0.000001, "0.000001"},
		{1e21, "1000000000000000000000"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, ast.NewNumber(tc.value).String())
		})
	}
}

func TestOperator_String(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "0", ast.NewAddition().String())
	})

	t.Run("nested", func(t *testing.T) {
		node := ast.NewAddition(
			ast.NewNumber(1),
			ast.NewAddition(ast.NewNumber(2), ast.NewNumber(3.5)),
		)

		assert.Equal(t, "6.5", node.String())
	})

	t.Run("overflow", func(t *testing.T) {
		node := ast.NewAddition(ast.NewNumber(math.MaxFloat64), ast.NewNumber(math.MaxFloat64))

		assert.Equal(t, "inf", node.String())
		assert.Equal(t, "inf", ast.NewAddition(node, ast.NewNumber(1)).String())
	})

	t.Run("unknown kind", func(t *testing.T) {
		node := &ast.Operator{
			Kind:     ast.OperatorKind("modulo"),
			Operands: []ast.Node{ast.NewNumber(1)},
		}

		assert.Equal(t, "(1)", node.String())
	})
}

func TestOperator_Source(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "+()", ast.NewAddition().Source())
	})

	t.Run("nested", func(t *testing.T) {
		node := ast.NewAddition(
			ast.NewNumber(1),
			ast.NewAddition(ast.NewNumber(2), ast.NewNumber(3.5)),
		)

		assert.Equal(t, "+(1 +(2 3.5))", node.Source())
	})
}

func TestProgram_String(t *testing.T) {
	t.Run("values joined", func(t *testing.T) {
		program := ast.NewProgram(
			ast.NewAddition(ast.NewNumber(1), ast.NewNumber(2)),
			ast.NewNumber(3),
		)

		assert.Equal(t, "33", program.String())
	})

	t.Run("mixed", func(t *testing.T) {
		program := ast.NewProgram(
			ast.NewNumber(1),
			ast.NewAddition(ast.NewNumber(2)),
		)

		assert.Equal(t, "12", program.String())
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", ast.NewProgram().String())
	})
}

func TestNewAddition_CopiesOperands(t *testing.T) {
	operands := []ast.Node{ast.NewNumber(1)}

	node := ast.NewAddition(operands...)
	operands[0] = ast.NewNumber(2)

	assert.Equal(t, ast.OperatorAddition, node.Kind)
	assert.Equal(t, "+(1)", node.Source())
}

func TestOperatorKind(t *testing.T) {
	assert.Equal(t, "+", ast.OperatorAddition.Symbol())
	assert.Equal(t, "addition", ast.OperatorAddition.String())
}
