package parser

import (
	"github.com/cloudcmds/tsfront/ast"
	"github.com/cloudcmds/tsfront/errors"
	"github.com/cloudcmds/tsfront/internal/token"
)

// Expression parsing methods for the Parser.
// Every method starts with curToken on the first token of the construct
// and returns with curToken on its last token.

// parseExpression is the precedence-climbing loop. It parses a prefix
// expression and then keeps folding in infix operators that bind tighter
// than the given precedence.
func (p *Parser) parseExpression(precedence int) (ast.Expr, bool) {
	if p.err != nil {
		return nil, false
	}
	if !p.enter() {
		return nil, false
	}
	defer p.leave()

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.unexpected("expression", p.curToken, "expression")
		return nil, false
	}
	left, ok := prefix()
	if !ok {
		return nil, false
	}
	for precedence < p.peekPrecedence() {
		infix := p.infixFor(p.peekToken)
		if infix == nil {
			return left, true
		}
		if !p.advance() {
			return nil, false
		}
		if left, ok = infix(left); !ok {
			return nil, false
		}
	}
	return left, true
}

func (p *Parser) infixFor(tok token.Token) infixParseFn {
	if tok.Type == token.IDENT {
		if _, ok := keywordPrecedences[tok.Literal]; ok {
			return p.parseBinary
		}
		return nil
	}
	return p.infixParseFns[tok.Type]
}

// wordPrefixOperators are unary operators spelled as words.
var wordPrefixOperators = map[string]bool{
	"typeof": true,
	"void":   true,
	"delete": true,
}

// startsExpression reports whether tok can begin an operand. A word
// operator is only treated as one when its operand follows.
func startsExpression(tok token.Token) bool {
	switch tok.Type {
	case token.IDENT, token.INT, token.STRING, token.TEMPLATE, token.LPAREN,
		token.LBRACKET, token.LBRACE, token.BANG, token.TILDE, token.MINUS,
		token.PLUS:
		return true
	}
	return false
}

func (p *Parser) parseIdent() (ast.Expr, bool) {
	tok := p.curToken
	switch {
	case tok.Is("function"):
		return p.parseFunctionExpression()
	case wordPrefixOperators[tok.Literal] && startsExpression(p.peekToken):
		return p.parseUnary()
	}
	ident := p.newIdent(tok)

	// Single untyped parameter arrow function: x => expr
	if p.peekTokenIs(token.ARROW) {
		if !p.advance() {
			return nil, false
		}
		return p.parseArrowBody(&ast.ArrowFunction{Param: ident, Arrow: p.curToken.StartPosition})
	}
	return ident, true
}

func (p *Parser) parseUnary() (ast.Expr, bool) {
	opPos := p.curToken.StartPosition
	op := p.curToken.Literal
	if !p.advance() {
		return nil, false
	}
	operand, ok := p.parseExpression(PREFIX)
	if !ok {
		return nil, false
	}
	return &ast.Unary{OpPos: opPos, Op: op, X: operand}, true
}

func (p *Parser) parseBinary(left ast.Expr) (ast.Expr, bool) {
	opPos := p.curToken.StartPosition
	op := p.curToken.Literal
	precedence := p.currentPrecedence()
	if rightAssociative(precedence) {
		precedence--
	}
	if !p.advance() {
		return nil, false
	}
	right, ok := p.parseExpression(precedence)
	if !ok {
		return nil, false
	}
	return &ast.Binary{X: left, OpPos: opPos, Op: op, Y: right}, true
}

func (p *Parser) parseAssign(target ast.Expr) (ast.Expr, bool) {
	switch target.(type) {
	case *ast.Identifier, *ast.Member, *ast.Subscript:
	default:
		p.setStructuralError(target, errors.E1005,
			"invalid assignment target: cannot assign to %s", describe(target))
		return nil, false
	}
	opPos := p.curToken.StartPosition
	op := p.curToken.Literal
	if !p.advance() {
		return nil, false
	}
	value, ok := p.parseExpression(ASSIGN - 1)
	if !ok {
		return nil, false
	}
	if op == "=" {
		return &ast.Assignment{Target: target, Assign: opPos, Value: value}, true
	}
	return &ast.AugmentedAssignment{Target: target, OpPos: opPos, Op: op, Value: value}, true
}

// parseMember parses one ".name" or ".name(args)" link of a chain.
func (p *Parser) parseMember(left ast.Expr) (ast.Expr, bool) {
	switch left.(type) {
	case *ast.Identifier, *ast.Call, *ast.Member:
	default:
		p.setStructuralError(left, errors.E1014,
			"invalid member access: %s cannot be followed by '.'", describe(left))
		return nil, false
	}
	dot := p.curToken.StartPosition
	name, ok := p.expectIdent("member expression")
	if !ok {
		return nil, false
	}
	var property ast.Expr = name
	if p.peekTokenIs(token.LPAREN) {
		if !p.advance() {
			return nil, false
		}
		if property, ok = p.parseCallArgs(name); !ok {
			return nil, false
		}
	}
	return &ast.Member{X: left, Dot: dot, Property: property}, true
}

func (p *Parser) parseCall(left ast.Expr) (ast.Expr, bool) {
	fun, isIdent := left.(*ast.Identifier)
	if !isIdent {
		p.setStructuralError(left, errors.E1014,
			"invalid call target: only a name can be called, not %s", describe(left))
		return nil, false
	}
	return p.parseCallArgs(fun)
}

// parseCallArgs parses the argument list of a call to fun, starting at "(".
func (p *Parser) parseCallArgs(fun *ast.Identifier) (*ast.Call, bool) {
	lparen := p.curToken.StartPosition
	args, ok := p.parseExprList(token.RPAREN, "call arguments")
	if !ok {
		return nil, false
	}
	return &ast.Call{Fun: fun, Lparen: lparen, Args: args, Rparen: p.curToken.StartPosition}, true
}

func (p *Parser) parseSubscript(left ast.Expr) (ast.Expr, bool) {
	name, isIdent := left.(*ast.Identifier)
	if !isIdent {
		p.setStructuralError(left, errors.E1014,
			"invalid subscript: only a name can be indexed, not %s", describe(left))
		return nil, false
	}
	lbrack := p.curToken.StartPosition
	if !p.advance() {
		return nil, false
	}
	index, ok := p.parseExpression(LOWEST)
	if !ok {
		return nil, false
	}
	if !p.expectPeek("subscript", token.RBRACKET) {
		return nil, false
	}
	return &ast.Subscript{X: name, Lbrack: lbrack, Index: index, Rbrack: p.curToken.StartPosition}, true
}

// parseGroupedOrArrow decides between "(params) => body" and "(expr)" by
// scanning ahead to the matching ")" and checking for "=>".
func (p *Parser) parseGroupedOrArrow() (ast.Expr, bool) {
	if p.arrowAhead() {
		sig, ok := p.parseCallSignature()
		if !ok {
			return nil, false
		}
		if !p.expectPeek("arrow function", token.ARROW) {
			return nil, false
		}
		return p.parseArrowBody(&ast.ArrowFunction{Signature: sig, Arrow: p.curToken.StartPosition})
	}
	lparen := p.curToken.StartPosition
	if !p.advance() {
		return nil, false
	}
	inner, ok := p.parseExpression(LOWEST)
	if !ok {
		return nil, false
	}
	if !p.expectPeek("parenthesized expression", token.RPAREN) {
		return nil, false
	}
	return &ast.Parenthesized{Lparen: lparen, X: inner, Rparen: p.curToken.StartPosition}, true
}

// parseArrowBody completes fn, starting at "=>". A "{" opens a block body;
// anything else is an expression body.
func (p *Parser) parseArrowBody(fn *ast.ArrowFunction) (ast.Expr, bool) {
	if !p.advance() {
		return nil, false
	}
	if p.curTokenIs(token.LBRACE) {
		block, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		fn.Body = block
		return fn, true
	}
	body, ok := p.parseExpression(LOWEST)
	if !ok {
		return nil, false
	}
	fn.Body = body
	return fn, true
}

func (p *Parser) parseFunctionExpression() (ast.Expr, bool) {
	funcPos := p.curToken.StartPosition
	if !p.expectPeek("function expression", token.LPAREN) {
		return nil, false
	}
	sig, ok := p.parseCallSignature()
	if !ok {
		return nil, false
	}
	if !p.expectPeek("function expression", token.LBRACE) {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.FunctionExpression{Func: funcPos, Signature: sig, Body: body}, true
}

// parseExprList parses a comma-separated expression list, starting at the
// opening delimiter and ending at end.
func (p *Parser) parseExprList(end token.Type, context string) ([]ast.Expr, bool) {
	var list []ast.Expr
	if p.peekTokenIs(end) {
		return list, p.advance()
	}
	for {
		if !p.advance() {
			return nil, false
		}
		expr, ok := p.parseExpression(LOWEST)
		if !ok {
			return nil, false
		}
		list = append(list, expr)
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
	return list, true
}

// describe names the kind of expression for error messages.
func describe(expr ast.Expr) string {
	switch expr.(type) {
	case *ast.Identifier:
		return "a name"
	case *ast.IntegerLiteral:
		return "an integer literal"
	case *ast.StringLiteral, *ast.TemplateString:
		return "a string literal"
	case *ast.ArrayLiteral:
		return "an array literal"
	case *ast.ObjectLiteral:
		return "an object literal"
	case *ast.Call:
		return "a call"
	case *ast.Member:
		return "a member expression"
	case *ast.Subscript:
		return "a subscript"
	case *ast.Parenthesized:
		return "a parenthesized expression"
	case *ast.Unary:
		return "a unary expression"
	case *ast.Binary:
		return "a binary expression"
	case *ast.Assignment, *ast.AugmentedAssignment:
		return "an assignment"
	case *ast.ArrowFunction, *ast.FunctionExpression:
		return "a function"
	}
	return "this expression"
}
