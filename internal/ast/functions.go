package ast

import (
	"bytes"
	"strings"

	"github.com/petomalina/IFJ15/internal/lexer"
	"github.com/petomalina/IFJ15/internal/types"
)

// Parameter is a typed function parameter.
type Parameter struct {
	Name *Identifier
	Type types.Type
}

func (p *Parameter) String() string {
	return p.Type.String() + " " + p.Name.Value
}

// FunctionDecl represents a user-defined function.
type FunctionDecl struct {
	Token      lexer.Token // the return type keyword token
	Name       string
	ReturnType types.Type
	Parameters []*Parameter
	Body       *BlockStatement
}

func (fd *FunctionDecl) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDecl) Pos() lexer.Position  { return fd.Token.Pos }
func (fd *FunctionDecl) String() string {
	params := make([]string, 0, len(fd.Parameters))
	for _, p := range fd.Parameters {
		params = append(params, p.String())
	}

	var out bytes.Buffer
	out.WriteString(fd.ReturnType.String())
	out.WriteString(" ")
	out.WriteString(fd.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(fd.Body.String())
	return out.String()
}

// Program is the root node of the AST: an ordered list of function
// definitions.
type Program struct {
	Functions []*FunctionDecl
}

func (p *Program) TokenLiteral() string {
	if len(p.Functions) > 0 {
		return p.Functions[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() lexer.Position {
	if len(p.Functions) > 0 {
		return p.Functions[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for i, f := range p.Functions {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(f.String())
	}
	return out.String()
}
