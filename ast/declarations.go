package ast

import (
	"bytes"

	"github.com/cloudcmds/tsfront/internal/token"
)

// VariableDeclaration declares one or more names with var, let or const.
type VariableDeclaration struct {
	KindPos     token.Position      // position of the keyword
	Kind        string              // "var", "let" or "const"
	Declarators []*SingleDeclarator // declared names, in order
	Semicolon   token.Position      // position of ";", if present
}

func (x *VariableDeclaration) stmtNode() {}
func (x *VariableDeclaration) declNode() {}

func (x *VariableDeclaration) Pos() token.Position { return x.KindPos }
func (x *VariableDeclaration) End() token.Position {
	if present(x.Semicolon) {
		return x.Semicolon.Advance(1)
	}
	return x.Declarators[len(x.Declarators)-1].End()
}

func (x *VariableDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString(x.Kind + " ")
	for i, d := range x.Declarators {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	out.WriteString(semi(x.Semicolon))
	return out.String()
}

// SingleDeclarator is one "name[: type][= value]" unit. Declarator names
// are not checked for uniqueness.
type SingleDeclarator struct {
	Name   *Identifier    // declared name
	Type   *TypeRef       // type annotation; nil if absent
	Assign token.Position // position of "="
	Value  Expr           // initializer; nil if absent
}

func (x *SingleDeclarator) Pos() token.Position { return x.Name.Pos() }
func (x *SingleDeclarator) End() token.Position {
	switch {
	case x.Value != nil:
		return x.Value.End()
	case x.Type != nil:
		return x.Type.End()
	}
	return x.Name.End()
}

func (x *SingleDeclarator) String() string {
	s := x.Name.String()
	if x.Type != nil {
		s += ": " + x.Type.String()
	}
	if x.Value != nil {
		s += " = " + x.Value.String()
	}
	return s
}

// FunctionDeclaration is a named function with a body.
type FunctionDeclaration struct {
	Async      bool           // declared with "async"
	AsyncPos   token.Position // position of "async"
	Func       token.Position // position of "function" keyword
	Name       *Identifier    // function name
	TypeParams []*Identifier  // generic parameters; nil if absent
	Signature  *CallSignature // parameters
	ReturnType *TypeRef       // return annotation; nil if absent
	Body       *Block         // function body
	Semicolon  token.Position // position of an optional ";"
}

func (x *FunctionDeclaration) stmtNode() {}
func (x *FunctionDeclaration) declNode() {}

func (x *FunctionDeclaration) Pos() token.Position {
	if x.Async {
		return x.AsyncPos
	}
	return x.Func
}

func (x *FunctionDeclaration) End() token.Position {
	if present(x.Semicolon) {
		return x.Semicolon.Advance(1)
	}
	return x.Body.End()
}

func (x *FunctionDeclaration) String() string {
	var out bytes.Buffer
	if x.Async {
		out.WriteString("async ")
	}
	out.WriteString("function ")
	out.WriteString(x.Name.String())
	if len(x.TypeParams) > 0 {
		out.WriteString("<" + joinIdents(x.TypeParams) + ">")
	}
	out.WriteString(x.Signature.String())
	if x.ReturnType != nil {
		out.WriteString(": " + x.ReturnType.String())
	}
	out.WriteString(" ")
	out.WriteString(x.Body.String())
	out.WriteString(semi(x.Semicolon))
	return out.String()
}

// FunctionSignature declares a function without a body. The return type
// is mandatory.
type FunctionSignature struct {
	Func       token.Position // position of "function" keyword
	Name       *Identifier    // function name
	Signature  *CallSignature // parameters
	ReturnType *TypeRef       // return annotation
	Semicolon  token.Position // position of ";"
}

func (x *FunctionSignature) stmtNode() {}
func (x *FunctionSignature) declNode() {}

func (x *FunctionSignature) Pos() token.Position { return x.Func }
func (x *FunctionSignature) End() token.Position { return x.Semicolon.Advance(1) }

func (x *FunctionSignature) String() string {
	return "function " + x.Name.String() + x.Signature.String() + ": " + x.ReturnType.String() + ";"
}

// Heritage is an "extends" or "implements" clause with at most one
// generic argument.
type Heritage struct {
	KeywordPos token.Position // position of the keyword
	Keyword    string         // "extends" or "implements"
	Name       *Identifier    // target type
	TypeArg    *Identifier    // generic argument; nil if absent
	Gt         token.Position // position of ">" closing TypeArg
}

func (x *Heritage) Pos() token.Position { return x.KeywordPos }
func (x *Heritage) End() token.Position {
	if x.TypeArg != nil {
		return x.Gt.Advance(1)
	}
	return x.Name.End()
}

func (x *Heritage) String() string {
	s := x.Keyword + " " + x.Name.String()
	if x.TypeArg != nil {
		s += "<" + x.TypeArg.String() + ">"
	}
	return s
}

// TypeParameter is a bounded generic parameter, "<T extends Base>".
type TypeParameter struct {
	Lt         token.Position // position of "<"
	Name       *Identifier    // parameter name
	Constraint *Identifier    // bound
	Gt         token.Position // position of ">"
}

func (x *TypeParameter) Pos() token.Position { return x.Lt }
func (x *TypeParameter) End() token.Position { return x.Gt.Advance(1) }

func (x *TypeParameter) String() string {
	return "<" + x.Name.String() + " extends " + x.Constraint.String() + ">"
}

// Decorator is "@name" or "@a.b", optionally with an argument list.
type Decorator struct {
	At            token.Position // position of "@"
	Expr          Expr           // *Identifier or *Member
	Lparen        token.Position // position of "("; unset if no arguments
	Args          []Expr         // arguments
	Rparen        token.Position // position of ")"
	TrailingComma token.Position // position of a "," after ")"; unset if absent
}

func (x *Decorator) Pos() token.Position { return x.At }
func (x *Decorator) End() token.Position {
	switch {
	case present(x.TrailingComma):
		return x.TrailingComma.Advance(1)
	case present(x.Lparen):
		return x.Rparen.Advance(1)
	}
	return x.Expr.End()
}

func (x *Decorator) String() string {
	s := "@" + x.Expr.String()
	if present(x.Lparen) {
		s += "(" + joinExprs(x.Args) + ")"
	}
	if present(x.TrailingComma) {
		s += ","
	}
	return s
}

// ClassDeclaration is a class with optional heritage clauses and a single
// bounded generic parameter.
type ClassDeclaration struct {
	Decorators []*Decorator   // leading decorators
	Class      token.Position // position of "class" keyword
	Name       *Identifier    // class name
	Extends    *Heritage      // extends clause; nil if absent
	Implements *Heritage      // implements clause; nil if absent
	TypeParam  *TypeParameter // generic parameter; nil if absent
	Lbrace     token.Position // position of "{"
	Members    []ClassMember  // fields and methods
	Rbrace     token.Position // position of "}"
	Semicolon  token.Position // position of an optional ";"
}

func (x *ClassDeclaration) stmtNode() {}
func (x *ClassDeclaration) declNode() {}

func (x *ClassDeclaration) Pos() token.Position {
	if len(x.Decorators) > 0 {
		return x.Decorators[0].Pos()
	}
	return x.Class
}

func (x *ClassDeclaration) End() token.Position {
	if present(x.Semicolon) {
		return x.Semicolon.Advance(1)
	}
	return x.Rbrace.Advance(1)
}

func (x *ClassDeclaration) String() string {
	var out bytes.Buffer
	for _, d := range x.Decorators {
		out.WriteString(d.String() + "\n")
	}
	out.WriteString("class " + x.Name.String())
	leading := x.TypeParam != nil && x.typeParamLeads()
	if leading {
		out.WriteString(x.TypeParam.String())
	}
	for _, h := range []*Heritage{x.Extends, x.Implements} {
		if h != nil {
			out.WriteString(" " + h.String())
		}
	}
	if x.TypeParam != nil && !leading {
		out.WriteString(" " + x.TypeParam.String())
	}
	out.WriteString(" {")
	for _, m := range x.Members {
		out.WriteString("\n" + m.String())
	}
	if len(x.Members) > 0 {
		out.WriteString("\n")
	}
	out.WriteString("}")
	out.WriteString(semi(x.Semicolon))
	return out.String()
}

// typeParamLeads reports whether the generic parameter was written before
// the heritage clauses.
func (x *ClassDeclaration) typeParamLeads() bool {
	for _, h := range []*Heritage{x.Extends, x.Implements} {
		if h != nil {
			return x.TypeParam.Pos().Char < h.Pos().Char
		}
	}
	return true
}

// FieldDeclaration is a class field. The terminating ";" is required.
type FieldDeclaration struct {
	Declarator *SingleDeclarator // field name, type and initializer
	Semicolon  token.Position    // position of ";"
}

func (x *FieldDeclaration) classMember() {}

func (x *FieldDeclaration) Pos() token.Position { return x.Declarator.Pos() }
func (x *FieldDeclaration) End() token.Position { return x.Semicolon.Advance(1) }

func (x *FieldDeclaration) String() string { return x.Declarator.String() + ";" }

// MethodDefinition is a class method with a body.
type MethodDefinition struct {
	Decorator  *Decorator     // optional decorator
	Name       *Identifier    // method name
	Signature  *CallSignature // parameters
	ReturnType *TypeRef       // return annotation; nil if absent
	Body       *Block         // method body
	Semicolon  token.Position // position of an optional ";"
}

func (x *MethodDefinition) classMember() {}

func (x *MethodDefinition) Pos() token.Position {
	if x.Decorator != nil {
		return x.Decorator.Pos()
	}
	return x.Name.Pos()
}

func (x *MethodDefinition) End() token.Position {
	if present(x.Semicolon) {
		return x.Semicolon.Advance(1)
	}
	return x.Body.End()
}

func (x *MethodDefinition) String() string {
	var out bytes.Buffer
	if x.Decorator != nil {
		out.WriteString(x.Decorator.String() + "\n")
	}
	out.WriteString(x.Name.String())
	out.WriteString(x.Signature.String())
	if x.ReturnType != nil {
		out.WriteString(": " + x.ReturnType.String())
	}
	out.WriteString(" ")
	out.WriteString(x.Body.String())
	out.WriteString(semi(x.Semicolon))
	return out.String()
}

// InterfaceDeclaration is an interface whose body holds only signatures.
type InterfaceDeclaration struct {
	Exported  bool              // prefixed with "export"
	Export    token.Position    // position of "export"
	Interface token.Position    // position of "interface" keyword
	Name      *Identifier       // interface name
	Extends   *Heritage         // extends clause; nil if absent
	TypeParam *TypeParameter    // generic parameter; nil if absent
	Lbrace    token.Position    // position of "{"
	Members   []InterfaceMember // member signatures
	Rbrace    token.Position    // position of "}"
}

func (x *InterfaceDeclaration) stmtNode() {}
func (x *InterfaceDeclaration) declNode() {}

func (x *InterfaceDeclaration) Pos() token.Position {
	if x.Exported {
		return x.Export
	}
	return x.Interface
}

func (x *InterfaceDeclaration) End() token.Position { return x.Rbrace.Advance(1) }

func (x *InterfaceDeclaration) String() string {
	var out bytes.Buffer
	if x.Exported {
		out.WriteString("export ")
	}
	out.WriteString("interface " + x.Name.String())
	if x.Extends != nil {
		out.WriteString(" " + x.Extends.String())
	}
	if x.TypeParam != nil {
		out.WriteString(" " + x.TypeParam.String())
	}
	out.WriteString(" {")
	for _, m := range x.Members {
		out.WriteString("\n" + m.String())
	}
	if len(x.Members) > 0 {
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// MethodSignature is an interface method, "name(params): Type".
type MethodSignature struct {
	Name       *Identifier    // method name
	Signature  *CallSignature // parameters
	ReturnType *TypeRef       // return annotation
	Semicolon  token.Position // position of an optional ";"
}

func (x *MethodSignature) interfaceMember() {}

func (x *MethodSignature) Pos() token.Position { return x.Name.Pos() }
func (x *MethodSignature) End() token.Position {
	if present(x.Semicolon) {
		return x.Semicolon.Advance(1)
	}
	return x.ReturnType.End()
}

func (x *MethodSignature) String() string {
	return x.Name.String() + x.Signature.String() + ": " + x.ReturnType.String() + semi(x.Semicolon)
}

// PropertySignature is an interface property. Type is a *TypeRef, a
// *FunctionType, or nil when the property has no annotation.
type PropertySignature struct {
	Name      *Identifier    // property name
	Type      TypeExpr       // annotation; nil if absent
	Assign    token.Position // position of "="
	Value     Expr           // default value; nil if absent
	Semicolon token.Position // position of an optional ";"
}

func (x *PropertySignature) interfaceMember() {}

func (x *PropertySignature) Pos() token.Position { return x.Name.Pos() }
func (x *PropertySignature) End() token.Position {
	switch {
	case present(x.Semicolon):
		return x.Semicolon.Advance(1)
	case x.Value != nil:
		return x.Value.End()
	case x.Type != nil:
		return x.Type.End()
	}
	return x.Name.End()
}

func (x *PropertySignature) String() string {
	s := x.Name.String()
	if x.Type != nil {
		s += ": " + x.Type.String()
	}
	if x.Value != nil {
		s += " = " + x.Value.String()
	}
	return s + semi(x.Semicolon)
}

// IndexSignature is "[key: string]: Type".
type IndexSignature struct {
	Lbrack    token.Position // position of "["
	Params    []*IndexParam  // key parameters
	Rbrack    token.Position // position of "]"
	Type      *TypeRef       // value type
	Semicolon token.Position // position of an optional ";"
}

func (x *IndexSignature) interfaceMember() {}

func (x *IndexSignature) Pos() token.Position { return x.Lbrack }
func (x *IndexSignature) End() token.Position {
	if present(x.Semicolon) {
		return x.Semicolon.Advance(1)
	}
	return x.Type.End()
}

func (x *IndexSignature) String() string {
	var out bytes.Buffer
	out.WriteString("[")
	for i, p := range x.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	out.WriteString("]: ")
	out.WriteString(x.Type.String())
	out.WriteString(semi(x.Semicolon))
	return out.String()
}

// IndexParam is one "name: Type" pair of an index signature.
type IndexParam struct {
	Name *Identifier // key name
	Type *TypeRef    // key type
}

func (x *IndexParam) Pos() token.Position { return x.Name.Pos() }
func (x *IndexParam) End() token.Position { return x.Type.End() }

func (x *IndexParam) String() string { return x.Name.String() + ": " + x.Type.String() }
