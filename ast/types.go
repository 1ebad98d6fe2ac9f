package ast

import (
	"bytes"

	"github.com/cloudcmds/tsfront/internal/token"
)

// TypeRef is a named type, optionally followed by "[]".
type TypeRef struct {
	Name   *Identifier    // type name
	Lbrack token.Position // position of "[" in "[]"; unset if not an array
}

func (x *TypeRef) typeNode() {}

func (x *TypeRef) Pos() token.Position { return x.Name.Pos() }
func (x *TypeRef) End() token.Position {
	if x.IsArray() {
		return x.Lbrack.Advance(2)
	}
	return x.Name.End()
}

// IsArray reports whether the type was written with a "[]" suffix.
func (x *TypeRef) IsArray() bool { return present(x.Lbrack) }

func (x *TypeRef) String() string {
	if x.IsArray() {
		return x.Name.String() + "[]"
	}
	return x.Name.String()
}

// FunctionType is an arrow-style function type, "(x: number) => string".
type FunctionType struct {
	Signature *CallSignature // parameters
	Arrow     token.Position // position of "=>"
	Return    TypeExpr       // result type
}

func (x *FunctionType) typeNode() {}

func (x *FunctionType) Pos() token.Position { return x.Signature.Pos() }
func (x *FunctionType) End() token.Position { return x.Return.End() }

func (x *FunctionType) String() string {
	return x.Signature.String() + " => " + x.Return.String()
}

// CallSignature is the parenthesized parameter list shared by functions,
// methods, arrow functions and function types.
type CallSignature struct {
	Lparen        token.Position // position of "("
	Params        []*Param       // declared parameters
	Rest          *RestParam     // trailing rest parameter; nil if absent
	TrailingComma token.Position // position of a comma before ")"; unset if absent
	Rparen        token.Position // position of ")"
}

func (x *CallSignature) Pos() token.Position { return x.Lparen }
func (x *CallSignature) End() token.Position { return x.Rparen.Advance(1) }

func (x *CallSignature) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	for i, p := range x.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	if x.Rest != nil {
		if len(x.Params) > 0 {
			out.WriteString(", ")
		}
		out.WriteString(x.Rest.String())
	}
	if present(x.TrailingComma) {
		out.WriteString(",")
	}
	out.WriteString(")")
	return out.String()
}

// Param is one parameter of a call signature. Type is nil only for the
// implicit parameter of a bare "x => ..." arrow function.
type Param struct {
	ModifierPos token.Position // position of the modifier
	Modifier    string         // "const", "public", "private" or ""
	Name        *Identifier    // parameter name
	Type        TypeExpr       // *TypeRef or *FunctionType
	Default     Expr           // default value; nil if absent
}

func (x *Param) Pos() token.Position {
	if x.Modifier != "" {
		return x.ModifierPos
	}
	return x.Name.Pos()
}

func (x *Param) End() token.Position {
	switch {
	case x.Default != nil:
		return x.Default.End()
	case x.Type != nil:
		return x.Type.End()
	}
	return x.Name.End()
}

func (x *Param) String() string {
	var out bytes.Buffer
	if x.Modifier != "" {
		out.WriteString(x.Modifier + " ")
	}
	out.WriteString(x.Name.String())
	if x.Type != nil {
		out.WriteString(": " + x.Type.String())
	}
	if x.Default != nil {
		out.WriteString(" = " + x.Default.String())
	}
	return out.String()
}

// RestParam is the "...args: any[]" parameter.
type RestParam struct {
	Ellipsis token.Position // position of "..."
	Name     *Identifier    // always "args"
	Type     *TypeRef       // always "any[]"
}

func (x *RestParam) Pos() token.Position { return x.Ellipsis }
func (x *RestParam) End() token.Position { return x.Type.End() }

func (x *RestParam) String() string {
	return "..." + x.Name.String() + ": " + x.Type.String()
}
