package parser

import (
	"fmt"

	"github.com/cloudcmds/tsfront/ast"
	"github.com/cloudcmds/tsfront/errors"
	"github.com/cloudcmds/tsfront/internal/token"
)

// parseStatement parses one statement starting at curToken. At the top
// level an expression statement may end at a line break instead of ";".
func (p *Parser) parseStatement(topLevel bool) (ast.Stmt, bool) {
	if p.err != nil {
		return nil, false
	}
	if !p.enter() {
		return nil, false
	}
	defer p.leave()

	switch p.curToken.Type {
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.AT:
		return p.parseClass()
	case token.IDENT:
		switch p.curToken.Literal {
		case "if":
			return p.parseIf()
		case "for":
			return p.parseFor()
		case "while":
			return p.parseWhile()
		case "do":
			return p.parseDoWhile()
		case "import":
			return p.parseImport()
		case "return":
			return p.parseReturn()
		case "var", "let", "const":
			return p.parseVariableStatement()
		case "function":
			// Without a name this is a function expression.
			if p.peekTokenIs(token.IDENT) {
				return p.parseFunction()
			}
		case "async":
			if p.peekToken.Is("function") {
				return p.parseFunction()
			}
		case "class":
			return p.parseClass()
		case "interface":
			return p.parseInterface()
		case "export":
			if p.peekToken.Is("interface") {
				return p.parseInterface()
			}
		}
	}
	return p.parseExpressionStatement(topLevel)
}

func (p *Parser) parseExpressionStatement(topLevel bool) (*ast.ExpressionStatement, bool) {
	expr, ok := p.parseExpression(LOWEST)
	if !ok {
		return nil, false
	}
	stmt := &ast.ExpressionStatement{X: expr}
	switch {
	case p.peekTokenIs(token.SEMICOLON):
		if !p.advance() {
			return nil, false
		}
		stmt.Semicolon = p.curToken.StartPosition
	case topLevel && (p.peekTokenIs(token.EOF) || p.peekToken.StartPosition.Line > p.curToken.EndPosition.Line):
	default:
		p.unexpected("expression statement", p.peekToken, `";"`)
		return nil, false
	}
	return stmt, true
}

// parseBlock parses "{ statements }", starting at "{" and ending at "}".
func (p *Parser) parseBlock() (*ast.Block, bool) {
	block := &ast.Block{Lbrace: p.curToken.StartPosition}
	if !p.advance() {
		return nil, false
	}
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.unexpected("block", p.curToken, `"}"`)
			return nil, false
		}
		stmt, ok := p.parseStatement(false)
		if !ok {
			return nil, false
		}
		block.Stmts = append(block.Stmts, stmt)
		if !p.advance() {
			return nil, false
		}
	}
	block.Rbrace = p.curToken.StartPosition
	return block, true
}

func (p *Parser) parseBlockStatement() (*ast.Block, bool) {
	block, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	block.Semicolon = p.optionalSemicolon()
	return block, p.err == nil
}

// parseCondition parses "(expr)" following a keyword at curToken.
func (p *Parser) parseCondition(context string) (lparen token.Position, cond ast.Expr, rparen token.Position, ok bool) {
	if !p.expectPeek(context, token.LPAREN) {
		return
	}
	lparen = p.curToken.StartPosition
	if !p.advance() {
		return
	}
	if cond, ok = p.parseExpression(LOWEST); !ok {
		return
	}
	if !p.expectPeek(context, token.RPAREN) {
		return lparen, nil, rparen, false
	}
	return lparen, cond, p.curToken.StartPosition, true
}

// parseBody parses the statement following a loop or if header.
func (p *Parser) parseBody() (ast.Stmt, bool) {
	if !p.advance() {
		return nil, false
	}
	return p.parseStatement(false)
}

func (p *Parser) parseIf() (*ast.If, bool) {
	stmt := &ast.If{If: p.curToken.StartPosition}
	var ok bool
	if stmt.Lparen, stmt.Cond, stmt.Rparen, ok = p.parseCondition("if statement"); !ok {
		return nil, false
	}
	if stmt.Consequence, ok = p.parseBody(); !ok {
		return nil, false
	}
	if p.peekToken.Is("else") {
		if !p.advance() {
			return nil, false
		}
		stmt.Else = p.curToken.StartPosition
		if stmt.Alternative, ok = p.parseBody(); !ok {
			return nil, false
		}
	}
	return stmt, true
}

func (p *Parser) parseWhile() (*ast.While, bool) {
	stmt := &ast.While{While: p.curToken.StartPosition}
	var ok bool
	if stmt.Lparen, stmt.Cond, stmt.Rparen, ok = p.parseCondition("while loop"); !ok {
		return nil, false
	}
	if stmt.Body, ok = p.parseBody(); !ok {
		return nil, false
	}
	return stmt, true
}

func (p *Parser) parseDoWhile() (*ast.DoWhile, bool) {
	stmt := &ast.DoWhile{Do: p.curToken.StartPosition}
	var ok bool
	if stmt.Body, ok = p.parseBody(); !ok {
		return nil, false
	}
	if !p.expectKeyword("do-while loop", "while") {
		return nil, false
	}
	stmt.While = p.curToken.StartPosition
	if stmt.Lparen, stmt.Cond, stmt.Rparen, ok = p.parseCondition("do-while loop"); !ok {
		return nil, false
	}
	stmt.Semicolon = p.optionalSemicolon()
	return stmt, p.err == nil
}

// parseFor parses both loop forms. A header of the form
// "(let|const name in|of ...)" is a for-in loop, as is any "for await".
func (p *Parser) parseFor() (ast.Stmt, bool) {
	forPos := p.curToken.StartPosition
	var awaitPos token.Position
	if p.peekToken.Is("await") {
		if !p.advance() {
			return nil, false
		}
		awaitPos = p.curToken.StartPosition
	}
	if !p.expectPeek("for loop", token.LPAREN) {
		return nil, false
	}
	if awaitPos.IsValid() || p.forInAhead() {
		return p.parseForIn(forPos, awaitPos)
	}
	stmt := &ast.For{For: forPos, Lparen: p.curToken.StartPosition}
	if !p.advance() {
		return nil, false
	}

	// Initializer, including its ";"
	if p.curToken.Is("var") || p.curToken.Is("let") || p.curToken.Is("const") {
		decl, ok := p.parseVariableDeclaration()
		if !ok {
			return nil, false
		}
		if decl.Semicolon, ok = p.expectSemicolon("for loop initializer"); !ok {
			return nil, false
		}
		stmt.Init = decl
	} else {
		init, ok := p.parseRequiredExpressionStatement("for loop initializer")
		if !ok {
			return nil, false
		}
		stmt.Init = init
	}

	// Condition, including its ";"
	if !p.advance() {
		return nil, false
	}
	cond, ok := p.parseRequiredExpressionStatement("for loop condition")
	if !ok {
		return nil, false
	}
	stmt.Cond = cond

	// Optional increment
	if !p.peekTokenIs(token.RPAREN) {
		if !p.advance() {
			return nil, false
		}
		if stmt.Increment, ok = p.parseExpression(LOWEST); !ok {
			return nil, false
		}
	}
	if !p.expectPeek("for loop", token.RPAREN) {
		return nil, false
	}
	stmt.Rparen = p.curToken.StartPosition
	if stmt.Body, ok = p.parseBody(); !ok {
		return nil, false
	}
	return stmt, true
}

// forInAhead reports whether the "(" at curToken opens a for-in header.
func (p *Parser) forInAhead() bool {
	if !p.peekToken.Is("let") && !p.peekToken.Is("const") {
		return false
	}
	next := p.lookahead(2)
	return len(next) == 2 && next[0].Type == token.IDENT && (next[1].Is("in") || next[1].Is("of"))
}

func (p *Parser) parseRequiredExpressionStatement(context string) (*ast.ExpressionStatement, bool) {
	expr, ok := p.parseExpression(LOWEST)
	if !ok {
		return nil, false
	}
	semi, ok := p.expectSemicolon(context)
	if !ok {
		return nil, false
	}
	return &ast.ExpressionStatement{X: expr, Semicolon: semi}, true
}

// parseForIn parses the rest of a for-in loop with curToken on "(".
func (p *Parser) parseForIn(forPos, awaitPos token.Position) (*ast.ForIn, bool) {
	stmt := &ast.ForIn{For: forPos, Await: awaitPos, Lparen: p.curToken.StartPosition}
	if !p.peekToken.Is("let") && !p.peekToken.Is("const") {
		p.unexpected("for-in loop", p.peekToken, quoteKeyword("let"), quoteKeyword("const"))
		return nil, false
	}
	if !p.advance() {
		return nil, false
	}
	stmt.KindPos = p.curToken.StartPosition
	stmt.Kind = p.curToken.Literal
	name, ok := p.expectIdent("for-in loop")
	if !ok {
		return nil, false
	}
	stmt.Name = name
	if !p.peekToken.Is("in") && !p.peekToken.Is("of") {
		p.unexpected("for-in loop", p.peekToken, quoteKeyword("in"), quoteKeyword("of"))
		return nil, false
	}
	if !p.advance() {
		return nil, false
	}
	stmt.OpPos = p.curToken.StartPosition
	stmt.Operator = p.curToken.Literal
	if !p.advance() {
		return nil, false
	}
	if stmt.Source, ok = p.parseExpression(LOWEST); !ok {
		return nil, false
	}
	if !p.expectPeek("for-in loop", token.RPAREN) {
		return nil, false
	}
	stmt.Rparen = p.curToken.StartPosition
	if stmt.Body, ok = p.parseBody(); !ok {
		return nil, false
	}
	return stmt, true
}

func (p *Parser) parseImport() (*ast.Import, bool) {
	stmt := &ast.Import{Import: p.curToken.StartPosition}
	if !p.expectPeek("import", token.LBRACE) {
		return nil, false
	}
	stmt.Lbrace = p.curToken.StartPosition
	if p.peekTokenIs(token.RBRACE) {
		if !p.advance() {
			return nil, false
		}
	} else {
		names, ok := p.parseIdentList("import", token.RBRACE)
		if !ok {
			return nil, false
		}
		stmt.Names = names
	}
	stmt.Rbrace = p.curToken.StartPosition
	if !p.expectKeyword("import", "from") {
		return nil, false
	}
	stmt.From = p.curToken.StartPosition
	if !p.advance() {
		return nil, false
	}
	switch p.curToken.Type {
	case token.IDENT:
		stmt.Source = p.newIdent(p.curToken)
	case token.STRING:
		stmt.Source = p.newString(p.curToken)
	default:
		p.unexpected("import", p.curToken, "identifier", "string")
		return nil, false
	}
	stmt.Semicolon = p.optionalSemicolon()
	return stmt, p.err == nil
}

// parseIdentList parses "a, b, c" up to and including the closing token.
func (p *Parser) parseIdentList(context string, end token.Type) ([]*ast.Identifier, bool) {
	var names []*ast.Identifier
	for {
		name, ok := p.expectIdent(context)
		if !ok {
			return nil, false
		}
		names = append(names, name)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		if !p.advance() {
			return nil, false
		}
	}
	if !p.expectPeek(context, end) {
		return nil, false
	}
	return names, true
}

func (p *Parser) parseReturn() (*ast.Return, bool) {
	stmt := &ast.Return{Return: p.curToken.StartPosition}
	if !p.peekTokenIs(token.SEMICOLON) {
		if !p.advance() {
			return nil, false
		}
		value, ok := p.parseExpression(LOWEST)
		if !ok {
			return nil, false
		}
		stmt.Value = value
	}
	semi, ok := p.expectSemicolon("return statement")
	if !ok {
		return nil, false
	}
	stmt.Semicolon = semi
	return stmt, true
}

func (p *Parser) parseVariableStatement() (*ast.VariableDeclaration, bool) {
	decl, ok := p.parseVariableDeclaration()
	if !ok {
		return nil, false
	}
	decl.Semicolon = p.optionalSemicolon()
	return decl, p.err == nil
}

// parseVariableDeclaration parses "kind a = 1, b: T" without the ";".
func (p *Parser) parseVariableDeclaration() (*ast.VariableDeclaration, bool) {
	decl := &ast.VariableDeclaration{KindPos: p.curToken.StartPosition, Kind: p.curToken.Literal}
	context := fmt.Sprintf("%s declaration", decl.Kind)
	for {
		if !p.expectPeek(context, token.IDENT) {
			return nil, false
		}
		declarator, ok := p.parseDeclarator(context)
		if !ok {
			return nil, false
		}
		decl.Declarators = append(decl.Declarators, declarator)
		if !p.peekTokenIs(token.COMMA) {
			return decl, true
		}
		if !p.advance() {
			return nil, false
		}
	}
}

// parseDeclarator parses "name[: T][= value]" with curToken on the name.
func (p *Parser) parseDeclarator(context string) (*ast.SingleDeclarator, bool) {
	d := &ast.SingleDeclarator{Name: p.newIdent(p.curToken)}
	if p.peekTokenIs(token.COLON) {
		if !p.advance() {
			return nil, false
		}
		typ, ok := p.expectTypeName(context)
		if !ok {
			return nil, false
		}
		d.Type = typ
		if p.arraySuffixAhead() {
			p.setStructuralSpan(p.peekToken.StartPosition, p.peekToken.StartPosition.Advance(2), errors.E1003,
				"array types are only allowed in parameter annotations")
			return nil, false
		}
	}
	if p.peekTokenIs(token.ASSIGN) {
		if !p.advance() {
			return nil, false
		}
		d.Assign = p.curToken.StartPosition
		if !p.advance() {
			return nil, false
		}
		value, ok := p.parseExpression(LOWEST)
		if !ok {
			return nil, false
		}
		d.Value = value
	}
	return d, true
}

// arraySuffixAhead reports whether "[]" directly follows curToken on the
// same line, as in a declaration written "let a: number[]".
func (p *Parser) arraySuffixAhead() bool {
	if !p.peekTokenIs(token.LBRACKET) || p.peekToken.StartPosition.Line != p.curToken.EndPosition.Line {
		return false
	}
	next := p.lookahead(1)
	return len(next) == 1 && next[0].Type == token.RBRACKET
}
