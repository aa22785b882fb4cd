package ast

import (
	"math"
	"strconv"
	"strings"
)

var (
	_ Node = (*Number)(nil)
	_ Node = (*Operator)(nil)
	_ Node = (*Program)(nil)
)

// Node is implemented by the node types of this package only.
type Node interface {
	String() string
	isNode()
}

type (
	Number struct {
		Value float64
	}

	Operator struct {
		Kind     OperatorKind
		Operands []Node
	}

	// Program is the root of a parsed source. Nodes keep the source order.
	Program struct {
		Nodes []Node
	}
)

func NewNumber(value float64) *Number {
	return &Number{
		Value: value,
	}
}

func NewAddition(operands ...Node) *Operator {
	return &Operator{
		Kind:     OperatorAddition,
		Operands: append(make([]Node, 0, len(operands)), operands...),
	}
}

func NewProgram(nodes ...Node) *Program {
	return &Program{
		Nodes: append(make([]Node, 0, len(nodes)), nodes...),
	}
}

func (n Number) isNode()   {}
func (n Operator) isNode() {}
func (n Program) isNode()  {}

// String renders the shortest decimal text of the value, never in exponent
// form: 110, 60.5, 0.000001.
func (n Number) String() string {
	return FormatNumber(n.Value)
}

// String renders the value of the operator. An operator of unknown kind, or
// one whose operands are not numeric, renders as Source.
func (n Operator) String() string {
	value, ok := n.value()
	if !ok {
		return n.Source()
	}

	return value
}

// Source renders the operator call as it would be written in source.
func (n Operator) Source() string {
	operands := make([]string, 0, len(n.Operands))
	for _, operand := range n.Operands {
		if operator, ok := operand.(*Operator); ok {
			operands = append(operands, operator.Source())
			continue
		}

		operands = append(operands, operand.String())
	}

	return n.Kind.Symbol() + "(" + strings.Join(operands, " ") + ")"
}

func (n Operator) value() (string, bool) {
	switch n.Kind {
	case OperatorAddition:
		sum := 0.0

		for _, operand := range n.Operands {
			value, err := strconv.ParseFloat(operand.String(), 64)
			if err != nil {
				return "", false
			}

			sum += value
		}

		return FormatNumber(sum), true

	default:
		return "", false
	}
}

// String concatenates the display text of every top-level node.
func (n Program) String() string {
	var value strings.Builder

	for _, node := range n.Nodes {
		value.WriteString(node.String())
	}

	return value.String()
}

// FormatNumber renders infinities as inf and -inf.
func FormatNumber(value float64) string {
	switch {
	case math.IsInf(value, 1):
		return "inf"

	case math.IsInf(value, -1):
		return "-inf"
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}
