package evaluate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/artuross/exprcalc/internal/lang/ast"
)

var (
	ErrInvalidOperand      = errors.New("invalid operand")
	ErrUnsupportedNode     = errors.New("unsupported node")
	ErrUnsupportedOperator = errors.New("unsupported operator")
)

// EmptyProgramValue is the value of a program without nodes.
const EmptyProgramValue = "0"

type Evaluator struct {
	Node ast.Node
}

func New(node ast.Node) *Evaluator {
	return &Evaluator{
		Node: node,
	}
}

func (e *Evaluator) Evaluate() (string, error) {
	return Value(e.Node)
}

// Value computes the textual value of node. Values of children are resolved
// first, nothing in the tree is modified.
func Value(node ast.Node) (string, error) {
	switch node := node.(type) {
	case *ast.Number:
		return node.String(), nil

	case *ast.Operator:
		return evaluateOperator(node)

	case *ast.Program:
		return evaluateProgram(node)

	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedNode, node)
	}
}

func evaluateOperator(node *ast.Operator) (string, error) {
	switch node.Kind {
	case ast.OperatorAddition:
		sum := 0.0

		for index, operand := range node.Operands {
			value, err := operandValue(operand)
			if err != nil {
				return "", fmt.Errorf("evaluate operand %d of %s: %w", index, node.Kind, err)
			}

			sum += value
		}

		return ast.FormatNumber(sum), nil

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedOperator, node.Kind)
	}
}

// evaluateProgram returns the value of the last node. Earlier values are
// computed, so their errors are reported, and then discarded.
func evaluateProgram(node *ast.Program) (string, error) {
	value := EmptyProgramValue

	for index, child := range node.Nodes {
		childValue, err := Value(child)
		if err != nil {
			return "", fmt.Errorf("evaluate node %d: %w", index, err)
		}

		value = childValue
	}

	return value, nil
}

func operandValue(node ast.Node) (float64, error) {
	raw, err := Value(node)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperand, raw)
	}

	return value, nil
}
