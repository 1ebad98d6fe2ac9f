package ast

import (
	"bytes"

	"github.com/cloudcmds/tsfront/internal/token"
)

// StringLiteral is a single- or double-quoted string. Value holds the raw
// text between the quotes; escape sequences are not interpreted.
type StringLiteral struct {
	ValuePos token.Position // position of the opening quote
	EndPos   token.Position // position just after the closing quote
	Quote    byte           // '"' or '\''
	Value    string         // raw content
}

func (x *StringLiteral) exprNode() {}

func (x *StringLiteral) Pos() token.Position { return x.ValuePos }
func (x *StringLiteral) End() token.Position { return x.EndPos }

func (x *StringLiteral) String() string {
	q := string(x.Quote)
	return q + x.Value + q
}

// TemplateString is a back-tick delimited string. Value holds the raw text
// between the back-ticks; "${...}" sequences are not parsed.
type TemplateString struct {
	ValuePos token.Position // position of the opening back-tick
	EndPos   token.Position // position just after the closing back-tick
	Value    string         // raw content
}

func (x *TemplateString) exprNode() {}

func (x *TemplateString) Pos() token.Position { return x.ValuePos }
func (x *TemplateString) End() token.Position { return x.EndPos }

func (x *TemplateString) String() string { return "`" + x.Value + "`" }

// IntegerLiteral is a decimal integer. Literal preserves any underscore
// separators used in the source.
type IntegerLiteral struct {
	ValuePos token.Position // position of the literal
	Literal  string         // source text, e.g. "1_000"
	Value    int64          // numeric value
}

func (x *IntegerLiteral) exprNode() {}

func (x *IntegerLiteral) Pos() token.Position { return x.ValuePos }
func (x *IntegerLiteral) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *IntegerLiteral) String() string { return x.Literal }

// ArrayLiteral is a bracketed, comma-separated list of expressions.
type ArrayLiteral struct {
	Lbrack token.Position // position of "["
	Elems  []Expr         // array elements
	Rbrack token.Position // position of "]"
}

func (x *ArrayLiteral) exprNode() {}

func (x *ArrayLiteral) Pos() token.Position { return x.Lbrack }
func (x *ArrayLiteral) End() token.Position { return x.Rbrack.Advance(1) }

func (x *ArrayLiteral) String() string {
	return "[" + joinExprs(x.Elems) + "]"
}

// ObjectLiteral is a brace-enclosed list of "key: value" pairs. It only
// occurs where an expression is expected; a "{" that starts a statement
// opens a Block instead.
type ObjectLiteral struct {
	Lbrace token.Position // position of "{"
	Props  []*Property    // properties in source order
	Rbrace token.Position // position of "}"
}

func (x *ObjectLiteral) exprNode() {}

func (x *ObjectLiteral) Pos() token.Position { return x.Lbrace }
func (x *ObjectLiteral) End() token.Position { return x.Rbrace.Advance(1) }

func (x *ObjectLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i, p := range x.Props {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	out.WriteString("}")
	return out.String()
}

// Property is one "key: value" pair of an object literal.
type Property struct {
	Key   *Identifier    // property name
	Colon token.Position // position of ":"
	Value Expr           // property value
}

func (x *Property) Pos() token.Position { return x.Key.Pos() }
func (x *Property) End() token.Position { return x.Value.End() }

func (x *Property) String() string {
	return x.Key.String() + ": " + x.Value.String()
}
