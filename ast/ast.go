// Package ast defines the syntax tree produced by the parser.
//
// The node set is closed: every statement, declaration, expression and type
// annotation is one of the struct types in this package. Nodes are built
// once by the parser and are not modified afterwards.
package ast

import (
	"strings"

	"github.com/cloudcmds/tsfront/internal/token"
)

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns source text for the node. Parsing the result yields
	// the same token sequence as the original input, minus comments and
	// whitespace.
	String() string
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl represents a declaration. Declarations may appear anywhere a
// statement may.
type Decl interface {
	Stmt
	declNode()
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// TypeExpr represents a type annotation.
type TypeExpr interface {
	Node
	typeNode()
}

// ClassMember is a field or method inside a class body.
type ClassMember interface {
	Node
	classMember()
}

// InterfaceMember is a signature inside an interface body.
type InterfaceMember interface {
	Node
	interfaceMember()
}

// Program is the root node. It owns every other node in the tree.
type Program struct {
	Stmts []Stmt // top-level statements, declarations and expressions
}

func (p *Program) Pos() token.Position {
	if len(p.Stmts) > 0 {
		return p.Stmts[0].Pos()
	}
	return token.NoPos
}

func (p *Program) End() token.Position {
	if len(p.Stmts) > 0 {
		return p.Stmts[len(p.Stmts)-1].End()
	}
	return token.NoPos
}

// First returns the first statement in the program, or nil if empty.
func (p *Program) First() Stmt {
	if len(p.Stmts) > 0 {
		return p.Stmts[0]
	}
	return nil
}

func (p *Program) String() string {
	return joinStmts(p.Stmts)
}

// present reports whether an optional token was present in the source.
// Only used for tokens that cannot begin the input, such as ";".
func present(p token.Position) bool {
	return p.IsValid()
}

func semi(p token.Position) string {
	if present(p) {
		return ";"
	}
	return ""
}

func joinStmts(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}
	return strings.Join(parts, "\n")
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

func joinIdents(idents []*Identifier) string {
	parts := make([]string, len(idents))
	for i, id := range idents {
		parts[i] = id.Name
	}
	return strings.Join(parts, ", ")
}
