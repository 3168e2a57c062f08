package ast

import (
	"testing"

	"github.com/petomalina/IFJ15/internal/lexer"
	"github.com/petomalina/IFJ15/internal/types"
	"github.com/stretchr/testify/assert"
)

func ident(name string) *Identifier {
	return &Identifier{Token: lexer.Token{Type: lexer.IDENT, Literal: name}, Value: name}
}

func TestExpressionStrings(t *testing.T) {
	expr := &BinaryExpression{
		Left: &BinaryExpression{
			Left:     &IntegerLiteral{Token: lexer.Token{Literal: "1"}, Value: 1},
			Operator: "+",
			Right:    &IntegerLiteral{Token: lexer.Token{Literal: "2"}, Value: 2},
		},
		Operator: "*",
		Right:    ident("x"),
	}
	assert.Equal(t, "((1 + 2) * x)", expr.String())

	call := &CallExpression{
		Function: "substr",
		Arguments: []Expression{
			&StringLiteral{Value: "hello"},
			&IntegerLiteral{Token: lexer.Token{Literal: "1"}, Value: 1},
			&IntegerLiteral{Token: lexer.Token{Literal: "3"}, Value: 3},
		},
	}
	assert.Equal(t, `substr("hello", 1, 3)`, call.String())

	assert.Equal(t, "null", (&NullLiteral{}).String())
	assert.Equal(t, "true", (&BooleanLiteral{Token: lexer.Token{Literal: "true"}, Value: true}).String())
}

func TestStatementStrings(t *testing.T) {
	decl := &VarDecl{Name: ident("x"), Type: types.Int}
	assert.Equal(t, "int x;", decl.String())

	assign := &AssignStatement{
		Name:  ident("y"),
		Decl:  &VarDecl{Name: ident("y"), Type: types.Auto},
		Value: &IntegerLiteral{Token: lexer.Token{Literal: "1"}, Value: 1},
	}
	assert.Equal(t, "auto y = 1;", assign.String())

	cout := &CoutStatement{Values: []Expression{ident("x"), &StringLiteral{Value: "s"}}}
	assert.Equal(t, `cout << x << "s";`, cout.String())

	cin := &CinStatement{Targets: []*Identifier{ident("a"), ident("b")}}
	assert.Equal(t, "cin >> a >> b;", cin.String())

	ret := &ReturnStatement{Value: ident("x")}
	assert.Equal(t, "return x;", ret.String())
	assert.Equal(t, "return;", (&ReturnStatement{}).String())
}

func TestProgramString(t *testing.T) {
	program := &Program{
		Functions: []*FunctionDecl{
			{
				Name:       "main",
				ReturnType: types.Int,
				Body: &BlockStatement{Statements: []Statement{
					&ReturnStatement{Value: &IntegerLiteral{Token: lexer.Token{Literal: "0"}, Value: 0}},
				}},
			},
		},
	}
	assert.Equal(t, "int main() { return 0; }", program.String())
}
