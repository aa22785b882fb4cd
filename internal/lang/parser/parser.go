package parser

import (
	"strconv"

	"github.com/artuross/exprcalc/internal/lang/ast"
	"github.com/artuross/exprcalc/internal/lang/lexer"
	"github.com/artuross/exprcalc/internal/lang/token"
)

type Lexer interface {
	NextToken() token.Token
}

// Parser is a recursive descent parser with a single token of lookahead.
// It is not safe for concurrent use.
type Parser struct {
	lexer   Lexer
	current token.Token
}

func New(source string) *Parser {
	return NewParser(lexer.New(source))
}

func NewParser(lexer Lexer) *Parser {
	parser := Parser{
		lexer: lexer,
	}

	parser.nextToken()

	return &parser
}

// ParseProgram parses top-level nodes until EOF. On error no program is
// returned.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	nodes := make([]ast.Node, 0)

	for p.current.Type != token.TypeEOF {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
	}

	program := ast.Program{
		Nodes: nodes,
	}

	return &program, nil
}

func (p *Parser) parseNode() (ast.Node, error) {
	switch p.current.Type {
	case token.TypeNumber:
		return p.parseNumber()

	case token.TypePlus:
		return p.parseOperator(ast.OperatorAddition)

	default:
		return nil, &SyntaxError{
			Kind:  ErrUnsupportedToken,
			Token: p.current,
		}
	}
}

func (p *Parser) parseNumber() (ast.Node, error) {
	value, err := strconv.ParseFloat(p.current.Value(), 64)
	if err != nil {
		return nil, &SyntaxError{
			Kind:  ErrInvalidNumberLiteral,
			Token: p.current,
			Err:   err,
		}
	}

	p.nextToken()

	return ast.NewNumber(value), nil
}

// parseOperator parses a call of the form: symbol '(' node* ')'.
func (p *Parser) parseOperator(kind ast.OperatorKind) (ast.Node, error) {
	// operator symbol
	p.nextToken()

	if err := p.expect(token.TypeLParen, ErrUnexpectedToken); err != nil {
		return nil, err
	}

	operands := make([]ast.Node, 0)
	for p.current.Type != token.TypeRParen {
		if p.current.Type == token.TypeEOF {
			return nil, &SyntaxError{
				Kind:     ErrUnterminatedArgumentList,
				Token:    p.current,
				Expected: token.TypeRParen,
			}
		}

		operand, err := p.parseNode()
		if err != nil {
			return nil, err
		}

		operands = append(operands, operand)
	}

	// closing
	p.nextToken()

	expr := ast.Operator{
		Kind:     kind,
		Operands: operands,
	}

	return &expr, nil
}

// expect consumes the current token if it has the given type.
func (p *Parser) expect(tokenType token.Type, kind error) error {
	if p.current.Type != tokenType {
		return &SyntaxError{
			Kind:     kind,
			Token:    p.current,
			Expected: tokenType,
		}
	}

	p.nextToken()

	return nil
}

func (p *Parser) nextToken() {
	p.current = p.lexer.NextToken()
}
