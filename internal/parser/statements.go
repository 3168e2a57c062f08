package parser

import (
	"github.com/petomalina/IFJ15/internal/ast"
	"github.com/petomalina/IFJ15/internal/lexer"
	"github.com/petomalina/IFJ15/internal/types"
)

// typeFromToken maps a type keyword token to its types.Type.
func typeFromToken(tok lexer.Token) (types.Type, bool) {
	switch tok.Type {
	case lexer.KW_INT:
		return types.Int, true
	case lexer.KW_DOUBLE:
		return types.Double, true
	case lexer.KW_STRING:
		return types.String, true
	case lexer.KW_BOOL:
		return types.Bool, true
	case lexer.KW_AUTO:
		return types.Auto, true
	}
	return types.Null, false
}

// ParseProgram parses a whole source file: a sequence of function
// definitions.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(lexer.EOF) {
		if !p.curToken.IsKeywordType() {
			p.syntaxError("expected function definition, got %q", p.curToken.Type)
			return program
		}
		fn := p.parseFunctionDecl()
		if fn == nil {
			return program
		}
		program.Functions = append(program.Functions, fn)
		p.nextToken()
	}

	return program
}

// parseFunctionDecl parses `type name(params) { ... }`. The current
// token is the return type keyword; on success the current token is the
// closing brace of the body.
func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	fn := &ast.FunctionDecl{Token: p.curToken}
	fn.ReturnType, _ = typeFromToken(p.curToken)

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	fn.Name = p.curToken.Literal

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	fn.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	fn.Body = p.parseBlockStatement()
	return fn
}

// parseFunctionParameters parses `(type name, ...)`. The current token
// is the opening parenthesis; on success it is the closing one.
func (p *Parser) parseFunctionParameters() []*ast.Parameter {
	var params []*ast.Parameter

	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}

	for {
		p.nextToken()
		typ, ok := typeFromToken(p.curToken)
		if !ok || typ == types.Auto {
			p.syntaxError("expected parameter type, got %q", p.curToken.Type)
			return params
		}
		if !p.expectPeek(lexer.IDENT) {
			return params
		}
		params = append(params, &ast.Parameter{
			Name: &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal},
			Type: typ,
		})

		if !p.peekTokenIs(lexer.COMMA) {
			break
		}
		p.nextToken()
	}

	p.expectPeek(lexer.RPAREN)
	return params
}

// parseBlockStatement parses `{ ... }`. The current token is the opening
// brace; on return it is the closing one.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}

	p.nextToken()
	for !p.curTokenIs(lexer.RBRACE) {
		if p.curTokenIs(lexer.EOF) {
			p.syntaxError("unterminated block")
			return block
		}
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}

// parseStatement dispatches on the current token. Every statement parser
// leaves the current token on the final token of the statement.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.KW_INT, lexer.KW_DOUBLE, lexer.KW_STRING, lexer.KW_BOOL, lexer.KW_AUTO:
		return p.parseDeclStatement()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.COUT:
		return p.parseCoutStatement()
	case lexer.CIN:
		return p.parseCinStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.LBRACE:
		return p.parseBlockStatement()
	case lexer.SEMICOLON:
		return &ast.EmptyStatement{Token: p.curToken}
	default:
		if p.curTokenIs(lexer.IDENT) && p.peekTokenIs(lexer.ASSIGN) {
			return p.parseAssignStatement()
		}
		return p.parseExpressionStatement()
	}
}

// parseDeclStatement parses `type name;` or the declaring assignment
// `type name = expr;`.
func (p *Parser) parseDeclStatement() ast.Statement {
	declToken := p.curToken
	typ, _ := typeFromToken(p.curToken)

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	decl := &ast.VarDecl{
		Token: declToken,
		Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal},
		Type:  typ,
	}

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
		return decl
	}

	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	assign := &ast.AssignStatement{Token: p.curToken, Name: decl.Name, Decl: decl}

	p.nextToken()
	assign.Value = p.parseExpression(LOWEST)
	p.expectPeek(lexer.SEMICOLON)
	return assign
}

// parseAssignStatement parses `name = expr;`.
func (p *Parser) parseAssignStatement() ast.Statement {
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	p.nextToken() // onto '='
	assign := &ast.AssignStatement{Token: p.curToken, Name: name}

	p.nextToken()
	assign.Value = p.parseExpression(LOWEST)
	p.expectPeek(lexer.SEMICOLON)
	return assign
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	p.expectPeek(lexer.SEMICOLON)
	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	stmt.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(lexer.ELSE) {
		p.nextToken()
		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}
		stmt.Alternative = p.parseBlockStatement()
	}

	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}

	p.nextToken()
	stmt.Init = p.parseForInit()

	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}

	p.nextToken()
	stmt.Post = p.parseForPost()

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()

	return stmt
}

// parseForInit parses the first for-clause, which is a full statement
// ending in a semicolon: a declaring assignment, a plain assignment, an
// expression statement, or nothing at all.
func (p *Parser) parseForInit() ast.Statement {
	switch {
	case p.curTokenIs(lexer.SEMICOLON):
		return &ast.EmptyStatement{Token: p.curToken}
	case p.curToken.IsKeywordType():
		return p.parseDeclStatement()
	case p.curTokenIs(lexer.IDENT) && p.peekTokenIs(lexer.ASSIGN):
		return p.parseAssignStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseForPost parses the third for-clause, which has no trailing
// semicolon: a plain assignment or an expression.
func (p *Parser) parseForPost() ast.Statement {
	if p.curTokenIs(lexer.IDENT) && p.peekTokenIs(lexer.ASSIGN) {
		name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		p.nextToken() // onto '='
		assign := &ast.AssignStatement{Token: p.curToken, Name: name}
		p.nextToken()
		assign.Value = p.parseExpression(LOWEST)
		return assign
	}

	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	return stmt
}

func (p *Parser) parseCoutStatement() ast.Statement {
	stmt := &ast.CoutStatement{Token: p.curToken}

	if !p.peekTokenIs(lexer.SHIFT_LEFT) {
		p.syntaxError("expected %q after cout, got %q", lexer.SHIFT_LEFT, p.peekToken.Type)
		return nil
	}
	for p.peekTokenIs(lexer.SHIFT_LEFT) {
		p.nextToken() // onto '<<'
		p.nextToken()
		stmt.Values = append(stmt.Values, p.parseExpression(LOWEST))
	}

	p.expectPeek(lexer.SEMICOLON)
	return stmt
}

func (p *Parser) parseCinStatement() ast.Statement {
	stmt := &ast.CinStatement{Token: p.curToken}

	if !p.peekTokenIs(lexer.SHIFT_RIGHT) {
		p.syntaxError("expected %q after cin, got %q", lexer.SHIFT_RIGHT, p.peekToken.Type)
		return nil
	}
	for p.peekTokenIs(lexer.SHIFT_RIGHT) {
		p.nextToken() // onto '>>'
		if !p.expectPeek(lexer.IDENT) {
			return nil
		}
		stmt.Targets = append(stmt.Targets, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	p.expectPeek(lexer.SEMICOLON)
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	p.expectPeek(lexer.SEMICOLON)
	return stmt
}
