package ast

import (
	"bytes"

	"github.com/cloudcmds/tsfront/internal/token"
)

// Identifier is an expression node that refers to a name.
type Identifier struct {
	NamePos token.Position // position of identifier
	Name    string         // identifier name
}

func (x *Identifier) exprNode() {}

func (x *Identifier) Pos() token.Position { return x.NamePos }
func (x *Identifier) End() token.Position { return x.NamePos.Advance(len(x.Name)) }

func (x *Identifier) String() string { return x.Name }

// Unary is an operator expression where the operator precedes the operand,
// such as "!done", "-x" or "typeof value".
type Unary struct {
	OpPos token.Position // position of operator
	Op    string         // operator: "!", "~", "-", "+", "typeof", "void", "delete"
	X     Expr           // operand
}

func (x *Unary) exprNode() {}

func (x *Unary) Pos() token.Position { return x.OpPos }
func (x *Unary) End() token.Position { return x.X.End() }

func (x *Unary) String() string {
	if isWordOperator(x.Op) {
		return x.Op + " " + x.X.String()
	}
	return x.Op + x.X.String()
}

// Binary is an operator expression where the operator is between the
// operands, such as "a + b" or "key in obj".
type Binary struct {
	X     Expr           // left operand
	OpPos token.Position // position of operator
	Op    string         // operator
	Y     Expr           // right operand
}

func (x *Binary) exprNode() {}

func (x *Binary) Pos() token.Position { return x.X.Pos() }
func (x *Binary) End() token.Position { return x.Y.End() }

func (x *Binary) String() string {
	return x.X.String() + " " + x.Op + " " + x.Y.String()
}

// Assignment is a plain assignment, "target = value". The target is an
// *Identifier, *Member or *Subscript.
type Assignment struct {
	Target Expr           // assignment target
	Assign token.Position // position of "="
	Value  Expr           // assigned value
}

func (x *Assignment) exprNode() {}

func (x *Assignment) Pos() token.Position { return x.Target.Pos() }
func (x *Assignment) End() token.Position { return x.Value.End() }

func (x *Assignment) String() string {
	return x.Target.String() + " = " + x.Value.String()
}

// AugmentedAssignment is a compound assignment such as "x += 1" or
// "a ??= b". The target is an *Identifier, *Member or *Subscript.
type AugmentedAssignment struct {
	Target Expr           // assignment target
	OpPos  token.Position // position of operator
	Op     string         // operator: "+=", "||=", ">>>=", etc.
	Value  Expr           // right operand
}

func (x *AugmentedAssignment) exprNode() {}

func (x *AugmentedAssignment) Pos() token.Position { return x.Target.Pos() }
func (x *AugmentedAssignment) End() token.Position { return x.Value.End() }

func (x *AugmentedAssignment) String() string {
	return x.Target.String() + " " + x.Op + " " + x.Value.String()
}

// Call is a function call. The callee is always a bare identifier.
type Call struct {
	Fun    *Identifier    // function name
	Lparen token.Position // position of "("
	Args   []Expr         // function arguments
	Rparen token.Position // position of ")"
}

func (x *Call) exprNode() {}

func (x *Call) Pos() token.Position { return x.Fun.Pos() }
func (x *Call) End() token.Position { return x.Rparen.Advance(1) }

func (x *Call) String() string {
	return x.Fun.String() + "(" + joinExprs(x.Args) + ")"
}

// Member is one link of a dotted chain such as "a.b().c". Chains are
// left-associative, so "a.b.c" is Member{X: Member{a, b}, Property: c}.
type Member struct {
	X        Expr           // *Identifier, *Call or *Member
	Dot      token.Position // position of "."
	Property Expr           // *Identifier or *Call
}

func (x *Member) exprNode() {}

func (x *Member) Pos() token.Position { return x.X.Pos() }
func (x *Member) End() token.Position { return x.Property.End() }

func (x *Member) String() string {
	return x.X.String() + "." + x.Property.String()
}

// Subscript is an index expression. Only a bare identifier may be indexed.
type Subscript struct {
	X      *Identifier    // indexed name
	Lbrack token.Position // position of "["
	Index  Expr           // index expression
	Rbrack token.Position // position of "]"
}

func (x *Subscript) exprNode() {}

func (x *Subscript) Pos() token.Position { return x.X.Pos() }
func (x *Subscript) End() token.Position { return x.Rbrack.Advance(1) }

func (x *Subscript) String() string {
	return x.X.String() + "[" + x.Index.String() + "]"
}

// Parenthesized is an expression wrapped in parentheses.
type Parenthesized struct {
	Lparen token.Position // position of "("
	X      Expr           // inner expression
	Rparen token.Position // position of ")"
}

func (x *Parenthesized) exprNode() {}

func (x *Parenthesized) Pos() token.Position { return x.Lparen }
func (x *Parenthesized) End() token.Position { return x.Rparen.Advance(1) }

func (x *Parenthesized) String() string {
	return "(" + x.X.String() + ")"
}

// ArrowFunction is either "name => body" or "(params) => body". Exactly one
// of Param and Signature is set.
type ArrowFunction struct {
	Param     *Identifier    // untyped single parameter
	Signature *CallSignature // parenthesized parameter list
	Arrow     token.Position // position of "=>"
	Body      Node           // an Expr, or a *Block
}

func (x *ArrowFunction) exprNode() {}

func (x *ArrowFunction) Pos() token.Position {
	if x.Param != nil {
		return x.Param.Pos()
	}
	return x.Signature.Pos()
}

func (x *ArrowFunction) End() token.Position { return x.Body.End() }

// Params returns the declared parameters. The bare form yields a single
// parameter without a type.
func (x *ArrowFunction) Params() []*Param {
	if x.Param != nil {
		return []*Param{{Name: x.Param}}
	}
	return x.Signature.Params
}

func (x *ArrowFunction) String() string {
	var out bytes.Buffer
	if x.Param != nil {
		out.WriteString(x.Param.String())
	} else {
		out.WriteString(x.Signature.String())
	}
	out.WriteString(" => ")
	out.WriteString(x.Body.String())
	return out.String()
}

// FunctionExpression is an anonymous "function (params) { ... }".
type FunctionExpression struct {
	Func      token.Position // position of "function" keyword
	Signature *CallSignature // parameters
	Body      *Block         // function body
}

func (x *FunctionExpression) exprNode() {}

func (x *FunctionExpression) Pos() token.Position { return x.Func }
func (x *FunctionExpression) End() token.Position { return x.Body.End() }

func (x *FunctionExpression) String() string {
	return "function " + x.Signature.String() + " " + x.Body.String()
}

func isWordOperator(op string) bool {
	switch op {
	case "typeof", "void", "delete", "in", "instanceof":
		return true
	}
	return false
}
