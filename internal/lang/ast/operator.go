package ast

type OperatorKind string

const (
	OperatorAddition OperatorKind = "addition"
)

var operatorSymbols = map[OperatorKind]string{
	OperatorAddition: "+",
}

func (k OperatorKind) Symbol() string {
	return operatorSymbols[k]
}

func (k OperatorKind) String() string {
	return string(k)
}
