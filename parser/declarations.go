package parser

import (
	"github.com/cloudcmds/tsfront/ast"
	"github.com/cloudcmds/tsfront/errors"
	"github.com/cloudcmds/tsfront/internal/token"
)

// Function, class and interface declarations.

// parseFunction parses a function declaration or, when the parameter list
// is followed by a return type and ";", a bodiless function signature.
func (p *Parser) parseFunction() (ast.Stmt, bool) {
	fn := &ast.FunctionDeclaration{}
	if p.curToken.Is("async") {
		fn.Async = true
		fn.AsyncPos = p.curToken.StartPosition
		if !p.advance() {
			return nil, false
		}
	}
	fn.Func = p.curToken.StartPosition
	name, ok := p.expectIdent("function declaration")
	if !ok {
		return nil, false
	}
	fn.Name = name
	if p.peekTokenIs(token.LT) {
		if !p.advance() {
			return nil, false
		}
		if fn.TypeParams, ok = p.parseGenericNames(); !ok {
			return nil, false
		}
	}
	if !p.expectPeek("function declaration", token.LPAREN) {
		return nil, false
	}
	if fn.Signature, ok = p.parseCallSignature(); !ok {
		return nil, false
	}
	if p.peekTokenIs(token.COLON) {
		if !p.advance() {
			return nil, false
		}
		if fn.ReturnType, ok = p.expectTypeName("return type"); !ok {
			return nil, false
		}
	}
	if p.peekTokenIs(token.SEMICOLON) && !fn.Async && fn.TypeParams == nil {
		if fn.ReturnType == nil {
			p.unexpected("function signature", p.peekToken, `":"`)
			return nil, false
		}
		if !p.advance() {
			return nil, false
		}
		return &ast.FunctionSignature{
			Func:       fn.Func,
			Name:       fn.Name,
			Signature:  fn.Signature,
			ReturnType: fn.ReturnType,
			Semicolon:  p.curToken.StartPosition,
		}, true
	}
	if !p.expectPeek("function declaration", token.LBRACE) {
		return nil, false
	}
	if fn.Body, ok = p.parseBlock(); !ok {
		return nil, false
	}
	fn.Semicolon = p.optionalSemicolon()
	return fn, p.err == nil
}

// parseGenericNames parses "<A, B>" with curToken on "<".
func (p *Parser) parseGenericNames() ([]*ast.Identifier, bool) {
	lt := p.curToken
	var names []*ast.Identifier
	for {
		name, ok := p.expectIdent("generic parameters")
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
	if !p.peekTokenIs(token.GT) {
		p.setStructuralSpan(lt.StartPosition, p.curToken.EndPosition, errors.E1013,
			"unmatched '<' in generic parameter list")
		return nil, false
	}
	return names, p.advance()
}

// parseTypeParameter parses "<T extends U>" with curToken on "<".
func (p *Parser) parseTypeParameter() (*ast.TypeParameter, bool) {
	tp := &ast.TypeParameter{Lt: p.curToken.StartPosition}
	var ok bool
	if tp.Name, ok = p.expectIdent("generic parameter"); !ok {
		return nil, false
	}
	if !p.expectKeyword("generic parameter", "extends") {
		return nil, false
	}
	if tp.Constraint, ok = p.expectIdent("generic parameter"); !ok {
		return nil, false
	}
	if !p.peekTokenIs(token.GT) {
		p.setStructuralSpan(tp.Lt, p.curToken.EndPosition, errors.E1013,
			"unmatched '<' in generic parameter")
		return nil, false
	}
	if !p.advance() {
		return nil, false
	}
	tp.Gt = p.curToken.StartPosition
	return tp, true
}

// parseHeritage parses an extends or implements clause with curToken on
// the keyword. A "<T>" directly after the name is taken as a type argument
// when allowed; otherwise it is left for a following type parameter.
func (p *Parser) parseHeritage(allowTypeArg bool) (*ast.Heritage, bool) {
	h := &ast.Heritage{KeywordPos: p.curToken.StartPosition, Keyword: p.curToken.Literal}
	var ok bool
	if h.Name, ok = p.expectIdent(h.Keyword + " clause"); !ok {
		return nil, false
	}
	if !allowTypeArg || !p.peekTokenIs(token.LT) {
		return h, true
	}
	next := p.lookahead(2)
	if len(next) < 2 || next[0].Type != token.IDENT || next[1].Type != token.GT {
		return h, true
	}
	if !p.advance() || !p.advance() {
		return nil, false
	}
	h.TypeArg = p.newIdent(p.curToken)
	if !p.advance() {
		return nil, false
	}
	h.Gt = p.curToken.StartPosition
	return h, true
}

// parseDecorator parses "@name", "@a.b" or "@name(args)" and an optional
// trailing comma, with curToken on "@".
func (p *Parser) parseDecorator() (*ast.Decorator, bool) {
	dec := &ast.Decorator{At: p.curToken.StartPosition}
	name, ok := p.expectIdent("decorator")
	if !ok {
		return nil, false
	}
	dec.Expr = name
	for p.peekTokenIs(token.PERIOD) {
		if !p.advance() {
			return nil, false
		}
		dot := p.curToken.StartPosition
		prop, ok := p.expectIdent("decorator")
		if !ok {
			return nil, false
		}
		dec.Expr = &ast.Member{X: dec.Expr, Dot: dot, Property: prop}
	}
	if !p.peekTokenIs(token.LPAREN) {
		return dec, true
	}
	if !p.advance() {
		return nil, false
	}
	dec.Lparen = p.curToken.StartPosition
	if dec.Args, ok = p.parseExprList(token.RPAREN, "decorator arguments"); !ok {
		return nil, false
	}
	dec.Rparen = p.curToken.StartPosition
	if p.peekTokenIs(token.COMMA) {
		if !p.advance() {
			return nil, false
		}
		dec.TrailingComma = p.curToken.StartPosition
	}
	return dec, true
}

func (p *Parser) parseClass() (*ast.ClassDeclaration, bool) {
	class := &ast.ClassDeclaration{}
	for p.curTokenIs(token.AT) {
		dec, ok := p.parseDecorator()
		if !ok {
			return nil, false
		}
		class.Decorators = append(class.Decorators, dec)
		if !p.advance() {
			return nil, false
		}
	}
	if !p.curToken.Is("class") {
		p.unexpected("class declaration", p.curToken, quoteKeyword("class"), `"@"`)
		return nil, false
	}
	class.Class = p.curToken.StartPosition
	var ok bool
	if class.Name, ok = p.expectIdent("class declaration"); !ok {
		return nil, false
	}
	if p.peekTokenIs(token.LT) {
		if !p.advance() {
			return nil, false
		}
		if class.TypeParam, ok = p.parseTypeParameter(); !ok {
			return nil, false
		}
	}
	if p.peekToken.Is("extends") {
		if !p.advance() {
			return nil, false
		}
		if class.Extends, ok = p.parseHeritage(true); !ok {
			return nil, false
		}
	}
	if p.peekToken.Is("implements") {
		if !p.advance() {
			return nil, false
		}
		if class.Implements, ok = p.parseHeritage(true); !ok {
			return nil, false
		}
	}
	if p.peekTokenIs(token.LT) {
		if class.TypeParam != nil {
			p.unexpected("class declaration", p.peekToken, `"{"`)
			return nil, false
		}
		if !p.advance() {
			return nil, false
		}
		if class.TypeParam, ok = p.parseTypeParameter(); !ok {
			return nil, false
		}
	}
	if !p.expectPeek("class declaration", token.LBRACE) {
		return nil, false
	}
	class.Lbrace = p.curToken.StartPosition
	if !p.advance() {
		return nil, false
	}
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.unexpected("class body", p.curToken, `"}"`)
			return nil, false
		}
		member, ok := p.parseClassMember()
		if !ok {
			return nil, false
		}
		class.Members = append(class.Members, member)
		if !p.advance() {
			return nil, false
		}
	}
	class.Rbrace = p.curToken.StartPosition
	class.Semicolon = p.optionalSemicolon()
	return class, p.err == nil
}

// parseClassMember parses a method, optionally decorated, or a field.
func (p *Parser) parseClassMember() (ast.ClassMember, bool) {
	if !p.enter() {
		return nil, false
	}
	defer p.leave()

	var dec *ast.Decorator
	if p.curTokenIs(token.AT) {
		var ok bool
		if dec, ok = p.parseDecorator(); !ok {
			return nil, false
		}
		if !p.advance() {
			return nil, false
		}
	}
	if !p.curTokenIs(token.IDENT) {
		p.unexpected("class body", p.curToken, "identifier")
		return nil, false
	}
	if p.peekTokenIs(token.LPAREN) {
		return p.parseMethod(dec)
	}
	if dec != nil {
		p.unexpected("decorated method", p.peekToken, `"("`)
		return nil, false
	}
	decl, ok := p.parseDeclarator("class field")
	if !ok {
		return nil, false
	}
	semi, ok := p.expectSemicolon("class field")
	if !ok {
		return nil, false
	}
	return &ast.FieldDeclaration{Declarator: decl, Semicolon: semi}, true
}

func (p *Parser) parseMethod(dec *ast.Decorator) (*ast.MethodDefinition, bool) {
	m := &ast.MethodDefinition{Decorator: dec, Name: p.newIdent(p.curToken)}
	if !p.advance() {
		return nil, false
	}
	var ok bool
	if m.Signature, ok = p.parseCallSignature(); !ok {
		return nil, false
	}
	if p.peekTokenIs(token.COLON) {
		if !p.advance() {
			return nil, false
		}
		if m.ReturnType, ok = p.expectTypeName("method return type"); !ok {
			return nil, false
		}
	}
	if !p.expectPeek("method", token.LBRACE) {
		return nil, false
	}
	if m.Body, ok = p.parseBlock(); !ok {
		return nil, false
	}
	m.Semicolon = p.optionalSemicolon()
	return m, p.err == nil
}

func (p *Parser) parseInterface() (*ast.InterfaceDeclaration, bool) {
	iface := &ast.InterfaceDeclaration{}
	if p.curToken.Is("export") {
		iface.Exported = true
		iface.Export = p.curToken.StartPosition
		if !p.advance() {
			return nil, false
		}
	}
	iface.Interface = p.curToken.StartPosition
	var ok bool
	if iface.Name, ok = p.expectIdent("interface declaration"); !ok {
		return nil, false
	}
	if p.peekToken.Is("extends") {
		if !p.advance() {
			return nil, false
		}
		if iface.Extends, ok = p.parseHeritage(false); !ok {
			return nil, false
		}
	}
	if p.peekTokenIs(token.LT) {
		if !p.advance() {
			return nil, false
		}
		if iface.TypeParam, ok = p.parseTypeParameter(); !ok {
			return nil, false
		}
	}
	if !p.expectPeek("interface declaration", token.LBRACE) {
		return nil, false
	}
	iface.Lbrace = p.curToken.StartPosition
	if !p.advance() {
		return nil, false
	}
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.unexpected("interface body", p.curToken, `"}"`)
			return nil, false
		}
		member, ok := p.parseInterfaceMember()
		if !ok {
			return nil, false
		}
		iface.Members = append(iface.Members, member)
		if !p.advance() {
			return nil, false
		}
	}
	iface.Rbrace = p.curToken.StartPosition
	return iface, true
}

func (p *Parser) parseInterfaceMember() (ast.InterfaceMember, bool) {
	switch p.curToken.Type {
	case token.LBRACKET:
		return p.parseIndexSignature()
	case token.IDENT:
	default:
		p.unexpected("interface body", p.curToken, "identifier", `"["`, `"}"`)
		return nil, false
	}
	name := p.newIdent(p.curToken)
	if p.peekTokenIs(token.LPAREN) {
		return p.parseMethodSignature(name)
	}
	prop := &ast.PropertySignature{Name: name}
	if p.peekTokenIs(token.COLON) {
		if !p.advance() || !p.advance() {
			return nil, false
		}
		switch p.curToken.Type {
		case token.IDENT:
			prop.Type = &ast.TypeRef{Name: p.newIdent(p.curToken)}
		case token.LPAREN:
			sig, ok := p.parseCallSignature()
			if !ok {
				return nil, false
			}
			if !p.expectPeek("property signature", token.ARROW) {
				return nil, false
			}
			fn := &ast.FunctionType{Signature: sig, Arrow: p.curToken.StartPosition}
			if fn.Return, ok = p.expectTypeName("property signature"); !ok {
				return nil, false
			}
			prop.Type = fn
		default:
			p.unexpected("property signature", p.curToken, "type")
			return nil, false
		}
	}
	if p.peekTokenIs(token.ASSIGN) {
		if !p.advance() {
			return nil, false
		}
		prop.Assign = p.curToken.StartPosition
		if !p.advance() {
			return nil, false
		}
		value, ok := p.parseExpression(LOWEST)
		if !ok {
			return nil, false
		}
		prop.Value = value
	}
	prop.Semicolon = p.optionalSemicolon()
	return prop, p.err == nil
}

func (p *Parser) parseMethodSignature(name *ast.Identifier) (*ast.MethodSignature, bool) {
	m := &ast.MethodSignature{Name: name}
	if !p.advance() {
		return nil, false
	}
	var ok bool
	if m.Signature, ok = p.parseCallSignature(); !ok {
		return nil, false
	}
	if !p.expectPeek("method signature", token.COLON) {
		return nil, false
	}
	if m.ReturnType, ok = p.expectTypeName("method signature"); !ok {
		return nil, false
	}
	m.Semicolon = p.optionalSemicolon()
	return m, p.err == nil
}

// parseIndexSignature parses "[key: K]: V" with curToken on "[".
func (p *Parser) parseIndexSignature() (*ast.IndexSignature, bool) {
	sig := &ast.IndexSignature{Lbrack: p.curToken.StartPosition}
	if p.peekTokenIs(token.RBRACKET) {
		if !p.advance() {
			return nil, false
		}
	} else {
		for {
			name, ok := p.expectIdent("index signature")
			if !ok {
				return nil, false
			}
			if !p.expectPeek("index signature", token.COLON) {
				return nil, false
			}
			typ, ok := p.expectTypeName("index signature")
			if !ok {
				return nil, false
			}
			sig.Params = append(sig.Params, &ast.IndexParam{Name: name, Type: typ})
			if !p.peekTokenIs(token.COMMA) {
				break
			}
			if !p.advance() {
				return nil, false
			}
		}
		if !p.expectPeek("index signature", token.RBRACKET) {
			return nil, false
		}
	}
	sig.Rbrack = p.curToken.StartPosition
	if !p.expectPeek("index signature", token.COLON) {
		return nil, false
	}
	var ok bool
	if sig.Type, ok = p.expectTypeName("index signature"); !ok {
		return nil, false
	}
	sig.Semicolon = p.optionalSemicolon()
	return sig, p.err == nil
}
