// Package parser implements the IFJ15 parser: recursive descent for
// declarations and statements, Pratt parsing for expressions.
package parser

import (
	"strconv"

	"github.com/petomalina/IFJ15/internal/ast"
	"github.com/petomalina/IFJ15/internal/errors"
	"github.com/petomalina/IFJ15/internal/lexer"
)

// Precedence levels for operators (lowest to highest).
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * /
	CALL        // function(args)
)

// precedences maps token types to their precedence levels.
var precedences = map[lexer.TokenType]int{
	lexer.EQ:         EQUALS,
	lexer.NOT_EQ:     EQUALS,
	lexer.LESS:       LESSGREATER,
	lexer.GREATER:    LESSGREATER,
	lexer.LESS_EQ:    LESSGREATER,
	lexer.GREATER_EQ: LESSGREATER,
	lexer.PLUS:       SUM,
	lexer.MINUS:      SUM,
	lexer.ASTERISK:   PRODUCT,
	lexer.SLASH:      PRODUCT,
	lexer.LPAREN:     CALL,
}

// prefixParseFn parses prefix expressions (literals, identifiers, grouping).
type prefixParseFn func() ast.Expression

// infixParseFn parses infix expressions (binary ops, calls).
type infixParseFn func(ast.Expression) ast.Expression

// Parser parses a token stream into an ast.Program.
type Parser struct {
	l              *lexer.Lexer
	curToken       lexer.Token
	peekToken      lexer.Token
	errs           []*errors.Error
	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a new Parser reading from the given lexer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:  p.parseIdentifier,
		lexer.INT:    p.parseIntegerLiteral,
		lexer.FLOAT:  p.parseFloatLiteral,
		lexer.STRING: p.parseStringLiteral,
		lexer.TRUE:   p.parseBooleanLiteral,
		lexer.FALSE:  p.parseBooleanLiteral,
		lexer.NULL:   p.parseNullLiteral,
		lexer.LPAREN: p.parseGroupedExpression,
	}
	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:       p.parseBinaryExpression,
		lexer.MINUS:      p.parseBinaryExpression,
		lexer.ASTERISK:   p.parseBinaryExpression,
		lexer.SLASH:      p.parseBinaryExpression,
		lexer.LESS:       p.parseBinaryExpression,
		lexer.GREATER:    p.parseBinaryExpression,
		lexer.LESS_EQ:    p.parseBinaryExpression,
		lexer.GREATER_EQ: p.parseBinaryExpression,
		lexer.EQ:         p.parseBinaryExpression,
		lexer.NOT_EQ:     p.parseBinaryExpression,
	}

	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the errors accumulated while parsing.
func (p *Parser) Errors() []*errors.Error {
	return p.errs
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
	if p.peekToken.Type == lexer.ILLEGAL {
		p.addError(errors.CodeLex, "illegal token %q", p.peekToken.Literal)
	}
}

func (p *Parser) addError(code errors.Code, format string, args ...any) {
	err := errors.Newf(code, format, args...)
	err.Message += " at " + strconv.Itoa(p.curToken.Pos.Line) + ":" + strconv.Itoa(p.curToken.Pos.Column)
	p.errs = append(p.errs, err)
}

func (p *Parser) syntaxError(format string, args ...any) {
	p.addError(errors.CodeSyntax, format, args...)
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances when the next token has the wanted type and
// records a syntax error otherwise.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.syntaxError("expected %q, got %q", t, p.peekToken.Type)
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// parseExpression parses an expression with the Pratt algorithm.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.syntaxError("unexpected token %q in expression", p.curToken.Type)
		return nil
	}
	left := prefix()

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	if p.peekTokenIs(lexer.LPAREN) {
		return p.parseCallExpression()
	}
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseCallExpression() ast.Expression {
	call := &ast.CallExpression{Token: p.curToken, Function: p.curToken.Literal}
	p.nextToken() // move onto '('

	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return call
	}

	p.nextToken()
	call.Arguments = append(call.Arguments, p.parseExpression(LOWEST))
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		call.Arguments = append(call.Arguments, p.parseExpression(LOWEST))
	}

	p.expectPeek(lexer.RPAREN)
	return call
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.syntaxError("could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.syntaxError("could not parse %q as float", p.curToken.Literal)
		return nil
	}
	return &ast.FloatLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(lexer.TRUE)}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.curToken}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	p.expectPeek(lexer.RPAREN)
	return expr
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}
	precedence := precedences[p.curToken.Type]
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}
