package ast

import (
	"bytes"
	"strings"

	"github.com/petomalina/IFJ15/internal/lexer"
	"github.com/petomalina/IFJ15/internal/types"
)

// VarDecl represents a variable declaration without an initializer:
// `int x;`. It also appears as the target of a declaring assignment
// (`int x = 1;`) inside an AssignStatement.
type VarDecl struct {
	Token lexer.Token // the type keyword token
	Name  *Identifier
	Type  types.Type // declared type; may be Auto
}

func (vd *VarDecl) statementNode()       {}
func (vd *VarDecl) TokenLiteral() string { return vd.Token.Literal }
func (vd *VarDecl) Pos() lexer.Position  { return vd.Token.Pos }
func (vd *VarDecl) String() string {
	return vd.Type.String() + " " + vd.Name.Value + ";"
}

// AssignStatement represents an assignment. For a declaring assignment
// (`int x = 1;`) Decl holds the declaration and Name aliases Decl.Name;
// for a plain assignment Decl is nil.
type AssignStatement struct {
	Token lexer.Token // the '=' token
	Name  *Identifier // assigned variable
	Decl  *VarDecl    // non-nil for declaring assignments
	Value Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignStatement) Pos() lexer.Position  { return as.Token.Pos }
func (as *AssignStatement) String() string {
	var out bytes.Buffer
	if as.Decl != nil {
		out.WriteString(as.Decl.Type.String() + " ")
	}
	out.WriteString(as.Name.Value)
	out.WriteString(" = ")
	out.WriteString(as.Value.String())
	out.WriteString(";")
	return out.String()
}

// ExpressionStatement wraps an expression used in statement position.
type ExpressionStatement struct {
	Token      lexer.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() lexer.Position  { return es.Token.Pos }
func (es *ExpressionStatement) String() string {
	if es.Expression == nil {
		return ";"
	}
	return es.Expression.String() + ";"
}

// BlockStatement represents a braced statement list.
type BlockStatement struct {
	Token      lexer.Token // the '{' token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) Pos() lexer.Position  { return bs.Token.Pos }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range bs.Statements {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// IfStatement represents an if/else statement. Alternative may be nil.
type IfStatement struct {
	Token       lexer.Token // the 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() lexer.Position  { return is.Token.Pos }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(is.Condition.String())
	out.WriteString(") ")
	out.WriteString(is.Consequence.String())
	if is.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(is.Alternative.String())
	}
	return out.String()
}

// ForStatement represents the three-clause for loop. Init and Post are
// statements (declaring assignment, assignment or expression); Condition
// must evaluate to bool on every iteration.
type ForStatement struct {
	Token     lexer.Token // the 'for' token
	Init      Statement
	Condition Expression
	Post      Statement
	Body      *BlockStatement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) Pos() lexer.Position  { return fs.Token.Pos }
func (fs *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	out.WriteString(fs.Init.String())
	out.WriteString(" ")
	out.WriteString(fs.Condition.String())
	out.WriteString("; ")
	out.WriteString(strings.TrimSuffix(fs.Post.String(), ";"))
	out.WriteString(") ")
	out.WriteString(fs.Body.String())
	return out.String()
}

// CoutStatement represents `cout << e1 << e2 ...;`.
type CoutStatement struct {
	Token  lexer.Token // the 'cout' token
	Values []Expression
}

func (cs *CoutStatement) statementNode()       {}
func (cs *CoutStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *CoutStatement) Pos() lexer.Position  { return cs.Token.Pos }
func (cs *CoutStatement) String() string {
	var out bytes.Buffer
	out.WriteString("cout")
	for _, v := range cs.Values {
		out.WriteString(" << ")
		out.WriteString(v.String())
	}
	out.WriteString(";")
	return out.String()
}

// CinStatement represents `cin >> x >> y ...;`.
type CinStatement struct {
	Token   lexer.Token // the 'cin' token
	Targets []*Identifier
}

func (cs *CinStatement) statementNode()       {}
func (cs *CinStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *CinStatement) Pos() lexer.Position  { return cs.Token.Pos }
func (cs *CinStatement) String() string {
	var out bytes.Buffer
	out.WriteString("cin")
	for _, t := range cs.Targets {
		out.WriteString(" >> ")
		out.WriteString(t.Value)
	}
	out.WriteString(";")
	return out.String()
}

// ReturnStatement represents `return expr;`.
type ReturnStatement struct {
	Token lexer.Token // the 'return' token
	Value Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() lexer.Position  { return rs.Token.Pos }
func (rs *ReturnStatement) String() string {
	if rs.Value == nil {
		return "return;"
	}
	return "return " + rs.Value.String() + ";"
}

// EmptyStatement represents a stray semicolon.
type EmptyStatement struct {
	Token lexer.Token // the ';' token
}

func (es *EmptyStatement) statementNode()       {}
func (es *EmptyStatement) TokenLiteral() string { return es.Token.Literal }
func (es *EmptyStatement) Pos() lexer.Position  { return es.Token.Pos }
func (es *EmptyStatement) String() string       { return ";" }
