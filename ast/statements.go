package ast

import (
	"bytes"

	"github.com/cloudcmds/tsfront/internal/token"
)

// Block is a brace-enclosed statement list.
type Block struct {
	Lbrace    token.Position // position of "{"
	Stmts     []Stmt         // statements in the block
	Rbrace    token.Position // position of "}"
	Semicolon token.Position // position of an optional trailing ";"
}

func (x *Block) stmtNode() {}

func (x *Block) Pos() token.Position { return x.Lbrace }
func (x *Block) End() token.Position {
	if present(x.Semicolon) {
		return x.Semicolon.Advance(1)
	}
	return x.Rbrace.Advance(1)
}

func (x *Block) String() string {
	if len(x.Stmts) == 0 {
		return "{}" + semi(x.Semicolon)
	}
	return "{\n" + joinStmts(x.Stmts) + "\n}" + semi(x.Semicolon)
}

// ExpressionStatement is an expression evaluated for its effect. The
// terminating ";" may only be omitted at the top level of a program.
type ExpressionStatement struct {
	X         Expr           // expression
	Semicolon token.Position // position of ";", if present
}

func (x *ExpressionStatement) stmtNode() {}

func (x *ExpressionStatement) Pos() token.Position { return x.X.Pos() }
func (x *ExpressionStatement) End() token.Position {
	if present(x.Semicolon) {
		return x.Semicolon.Advance(1)
	}
	return x.X.End()
}

func (x *ExpressionStatement) String() string {
	return x.X.String() + semi(x.Semicolon)
}

// Return is a return statement with an optional value.
type Return struct {
	Return    token.Position // position of "return" keyword
	Value     Expr           // returned value; nil if absent
	Semicolon token.Position // position of ";"
}

func (x *Return) stmtNode() {}

func (x *Return) Pos() token.Position { return x.Return }
func (x *Return) End() token.Position { return x.Semicolon.Advance(1) }

func (x *Return) String() string {
	if x.Value == nil {
		return "return;"
	}
	return "return " + x.Value.String() + ";"
}

// If is a conditional statement. An "else if" chain nests an *If as the
// Alternative.
type If struct {
	If          token.Position // position of "if" keyword
	Lparen      token.Position // position of "("
	Cond        Expr           // condition
	Rparen      token.Position // position of ")"
	Consequence Stmt           // then branch
	Else        token.Position // position of "else"; unset if no else
	Alternative Stmt           // else branch; nil if no else
}

func (x *If) stmtNode() {}

func (x *If) Pos() token.Position { return x.If }
func (x *If) End() token.Position {
	if x.Alternative != nil {
		return x.Alternative.End()
	}
	return x.Consequence.End()
}

func (x *If) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(x.Cond.String())
	out.WriteString(") ")
	out.WriteString(x.Consequence.String())
	if x.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(x.Alternative.String())
	}
	return out.String()
}

// For is a three-clause loop. Init is a *VariableDeclaration or an
// *ExpressionStatement and always carries its ";".
type For struct {
	For       token.Position       // position of "for" keyword
	Lparen    token.Position       // position of "("
	Init      Stmt                 // initializer
	Cond      *ExpressionStatement // loop condition, including its ";"
	Increment Expr                 // post-iteration expression; nil if absent
	Rparen    token.Position       // position of ")"
	Body      Stmt                 // loop body
}

func (x *For) stmtNode() {}

func (x *For) Pos() token.Position { return x.For }
func (x *For) End() token.Position { return x.Body.End() }

func (x *For) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	out.WriteString(x.Init.String())
	out.WriteString(" ")
	out.WriteString(x.Cond.String())
	if x.Increment != nil {
		out.WriteString(" ")
		out.WriteString(x.Increment.String())
	}
	out.WriteString(") ")
	out.WriteString(x.Body.String())
	return out.String()
}

// ForIn is a "for (let k in obj)" or "for (const v of items)" loop,
// optionally written "for await".
type ForIn struct {
	For      token.Position // position of "for" keyword
	Await    token.Position // position of "await"; unset if absent
	Lparen   token.Position // position of "("
	KindPos  token.Position // position of the binding keyword
	Kind     string         // "let" or "const"
	Name     *Identifier    // loop variable
	OpPos    token.Position // position of the operator
	Operator string         // "in" or "of"
	Source   Expr           // iterated expression
	Rparen   token.Position // position of ")"
	Body     Stmt           // loop body
}

func (x *ForIn) stmtNode() {}

func (x *ForIn) Pos() token.Position { return x.For }
func (x *ForIn) End() token.Position { return x.Body.End() }

// IsAwait reports whether the loop was written "for await".
func (x *ForIn) IsAwait() bool { return present(x.Await) }

func (x *ForIn) String() string {
	var out bytes.Buffer
	out.WriteString("for ")
	if x.IsAwait() {
		out.WriteString("await ")
	}
	out.WriteString("(")
	out.WriteString(x.Kind + " " + x.Name.String() + " " + x.Operator + " ")
	out.WriteString(x.Source.String())
	out.WriteString(") ")
	out.WriteString(x.Body.String())
	return out.String()
}

// While is a pre-tested loop.
type While struct {
	While  token.Position // position of "while" keyword
	Lparen token.Position // position of "("
	Cond   Expr           // loop condition
	Rparen token.Position // position of ")"
	Body   Stmt           // loop body
}

func (x *While) stmtNode() {}

func (x *While) Pos() token.Position { return x.While }
func (x *While) End() token.Position { return x.Body.End() }

func (x *While) String() string {
	return "while (" + x.Cond.String() + ") " + x.Body.String()
}

// DoWhile is a post-tested loop.
type DoWhile struct {
	Do        token.Position // position of "do" keyword
	Body      Stmt           // loop body
	While     token.Position // position of "while" keyword
	Lparen    token.Position // position of "("
	Cond      Expr           // loop condition
	Rparen    token.Position // position of ")"
	Semicolon token.Position // position of an optional ";"
}

func (x *DoWhile) stmtNode() {}

func (x *DoWhile) Pos() token.Position { return x.Do }
func (x *DoWhile) End() token.Position {
	if present(x.Semicolon) {
		return x.Semicolon.Advance(1)
	}
	return x.Rparen.Advance(1)
}

func (x *DoWhile) String() string {
	return "do " + x.Body.String() + " while (" + x.Cond.String() + ")" + semi(x.Semicolon)
}

// Import is "import { a, b } from source". Source is an *Identifier or a
// *StringLiteral.
type Import struct {
	Import    token.Position // position of "import" keyword
	Lbrace    token.Position // position of "{"
	Names     []*Identifier  // imported names
	Rbrace    token.Position // position of "}"
	From      token.Position // position of "from" keyword
	Source    Expr           // module specifier
	Semicolon token.Position // position of an optional ";"
}

func (x *Import) stmtNode() {}

func (x *Import) Pos() token.Position { return x.Import }
func (x *Import) End() token.Position {
	if present(x.Semicolon) {
		return x.Semicolon.Advance(1)
	}
	return x.Source.End()
}

func (x *Import) String() string {
	return "import {" + joinIdents(x.Names) + "} from " + x.Source.String() + semi(x.Semicolon)
}
