package parser

import (
	"strconv"
	"strings"

	"github.com/cloudcmds/tsfront/ast"
	"github.com/cloudcmds/tsfront/errors"
	"github.com/cloudcmds/tsfront/internal/token"
)

func (p *Parser) parseInt() (ast.Expr, bool) {
	tok := p.curToken
	lit := &ast.IntegerLiteral{ValuePos: tok.StartPosition, Literal: tok.Literal}
	value, err := strconv.ParseInt(strings.ReplaceAll(tok.Literal, "_", ""), 10, 64)
	if err != nil {
		p.setStructuralError(lit, errors.E1008, "integer literal %s is out of range", tok.Literal)
		return nil, false
	}
	lit.Value = value
	return lit, true
}

// The lexer keeps the delimiters in string and template literals; the
// nodes store the raw content between them.

func (p *Parser) parseString() (ast.Expr, bool) {
	return p.newString(p.curToken), true
}

func (p *Parser) newString(tok token.Token) *ast.StringLiteral {
	return &ast.StringLiteral{
		ValuePos: tok.StartPosition,
		EndPos:   tok.EndPosition,
		Quote:    tok.Literal[0],
		Value:    tok.Literal[1 : len(tok.Literal)-1],
	}
}

func (p *Parser) parseTemplate() (ast.Expr, bool) {
	tok := p.curToken
	return &ast.TemplateString{
		ValuePos: tok.StartPosition,
		EndPos:   tok.EndPosition,
		Value:    tok.Literal[1 : len(tok.Literal)-1],
	}, true
}

func (p *Parser) parseArray() (ast.Expr, bool) {
	lbrack := p.curToken.StartPosition
	elems, ok := p.parseExprList(token.RBRACKET, "array literal")
	if !ok {
		return nil, false
	}
	return &ast.ArrayLiteral{Lbrack: lbrack, Elems: elems, Rbrack: p.curToken.StartPosition}, true
}

// parseObject parses an object literal. It is only reached where an
// expression is expected; a "{" at the start of a statement is a block.
func (p *Parser) parseObject() (ast.Expr, bool) {
	obj := &ast.ObjectLiteral{Lbrace: p.curToken.StartPosition}
	if p.peekTokenIs(token.RBRACE) {
		if !p.advance() {
			return nil, false
		}
		obj.Rbrace = p.curToken.StartPosition
		return obj, true
	}
	for {
		key, ok := p.expectIdent("object literal")
		if !ok {
			return nil, false
		}
		if !p.expectPeek("object literal", token.COLON) {
			return nil, false
		}
		colon := p.curToken.StartPosition
		if !p.advance() {
			return nil, false
		}
		value, ok := p.parseExpression(LOWEST)
		if !ok {
			return nil, false
		}
		obj.Props = append(obj.Props, &ast.Property{Key: key, Colon: colon, Value: value})
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		if !p.advance() {
			return nil, false
		}
	}
	if !p.expectPeek("object literal", token.RBRACE) {
		return nil, false
	}
	obj.Rbrace = p.curToken.StartPosition
	return obj, true
}
