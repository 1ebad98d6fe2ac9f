package parser

import (
	"github.com/cloudcmds/tsfront/ast"
	"github.com/cloudcmds/tsfront/errors"
	"github.com/cloudcmds/tsfront/internal/token"
)

// Parameter lists and type annotations.

// parameterModifiers may precede a parameter name.
var parameterModifiers = map[string]bool{
	"const":   true,
	"public":  true,
	"private": true,
}

// parseCallSignature parses "(params)", starting at "(" and ending at ")".
// A single trailing comma is accepted, including after a rest parameter.
func (p *Parser) parseCallSignature() (*ast.CallSignature, bool) {
	sig := &ast.CallSignature{Lparen: p.curToken.StartPosition}
	for {
		if p.peekTokenIs(token.RPAREN) {
			if !p.advance() {
				return nil, false
			}
			break
		}
		if !p.advance() {
			return nil, false
		}
		if p.curTokenIs(token.SPREAD) {
			rest, ok := p.parseRestParam()
			if !ok {
				return nil, false
			}
			sig.Rest = rest
			if p.peekTokenIs(token.COMMA) {
				if !p.advance() {
					return nil, false
				}
				sig.TrailingComma = p.curToken.StartPosition
			}
			if !p.peekTokenIs(token.RPAREN) {
				p.setStructuralError(rest, errors.E1003, "rest parameter must be the last parameter")
				return nil, false
			}
			if !p.advance() {
				return nil, false
			}
			break
		}
		param, ok := p.parseParam()
		if !ok {
			return nil, false
		}
		sig.Params = append(sig.Params, param)
		if !p.peekTokenIs(token.COMMA) {
			if !p.expectPeek("parameter list", token.RPAREN) {
				return nil, false
			}
			break
		}
		if !p.advance() {
			return nil, false
		}
		if p.peekTokenIs(token.RPAREN) {
			sig.TrailingComma = p.curToken.StartPosition
		}
	}
	sig.Rparen = p.curToken.StartPosition
	return sig, true
}

// parseParam parses "[modifier] name: type [= default]".
func (p *Parser) parseParam() (*ast.Param, bool) {
	param := &ast.Param{}
	if parameterModifiers[p.curToken.Literal] && p.curTokenIs(token.IDENT) && p.peekTokenIs(token.IDENT) {
		param.ModifierPos = p.curToken.StartPosition
		param.Modifier = p.curToken.Literal
		if !p.advance() {
			return nil, false
		}
	}
	if !p.curTokenIs(token.IDENT) {
		p.unexpected("parameter", p.curToken, "identifier")
		return nil, false
	}
	param.Name = p.newIdent(p.curToken)
	if !p.expectPeek("parameter", token.COLON) {
		return nil, false
	}
	if !p.advance() {
		return nil, false
	}
	typ, ok := p.parseParamType()
	if !ok {
		return nil, false
	}
	param.Type = typ
	if p.peekTokenIs(token.ASSIGN) {
		if !p.advance() || !p.advance() {
			return nil, false
		}
		if param.Default, ok = p.parseExpression(LOWEST); !ok {
			return nil, false
		}
	}
	return param, true
}

// parseRestParam parses the only accepted rest parameter, "...args: any[]".
func (p *Parser) parseRestParam() (*ast.RestParam, bool) {
	rest := &ast.RestParam{Ellipsis: p.curToken.StartPosition}
	name, ok := p.expectIdent("rest parameter")
	if !ok {
		return nil, false
	}
	rest.Name = name
	if name.Name != "args" {
		p.setStructuralError(name, errors.E1003, "rest parameter must be written as ...args: any[]")
		return nil, false
	}
	if !p.expectPeek("rest parameter", token.COLON) {
		return nil, false
	}
	typeName, ok := p.expectIdent("rest parameter")
	if !ok {
		return nil, false
	}
	if typeName.Name != "any" || !p.peekTokenIs(token.LBRACKET) {
		p.setStructuralError(typeName, errors.E1003, "rest parameter must be written as ...args: any[]")
		return nil, false
	}
	if !p.advance() {
		return nil, false
	}
	rest.Type = &ast.TypeRef{Name: typeName, Lbrack: p.curToken.StartPosition}
	if !p.expectPeek("rest parameter", token.RBRACKET) {
		return nil, false
	}
	return rest, true
}

// parseParamType parses a parameter type: "T", "T[]" or "(params) => T".
func (p *Parser) parseParamType() (ast.TypeExpr, bool) {
	if !p.enter() {
		return nil, false
	}
	defer p.leave()

	switch p.curToken.Type {
	case token.IDENT:
		ref := &ast.TypeRef{Name: p.newIdent(p.curToken)}
		if p.peekTokenIs(token.LBRACKET) {
			if !p.advance() {
				return nil, false
			}
			ref.Lbrack = p.curToken.StartPosition
			if !p.expectPeek("array type", token.RBRACKET) {
				return nil, false
			}
		}
		return ref, true
	case token.LPAREN:
		sig, ok := p.parseCallSignature()
		if !ok {
			return nil, false
		}
		if !p.expectPeek("function type", token.ARROW) {
			return nil, false
		}
		fn := &ast.FunctionType{Signature: sig, Arrow: p.curToken.StartPosition}
		if !p.advance() {
			return nil, false
		}
		if fn.Return, ok = p.parseParamType(); !ok {
			return nil, false
		}
		return fn, true
	}
	p.unexpected("type annotation", p.curToken, "type")
	return nil, false
}

// expectTypeName advances to a plain type name, as used for return types
// and declarator annotations.
func (p *Parser) expectTypeName(context string) (*ast.TypeRef, bool) {
	name, ok := p.expectIdent(context)
	if !ok {
		return nil, false
	}
	return &ast.TypeRef{Name: name}, true
}
