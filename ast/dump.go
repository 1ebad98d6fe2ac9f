package ast

import (
	"strings"
)

// Dump renders a node as a compact S-expression, for example
// "Binary(+, 1, Binary(*, 2, 3))". Unlike String, the output makes the
// tree structure explicit, which is useful in tests and debugging output.
func Dump(node Node) string {
	var b strings.Builder
	dump(&b, node)
	return b.String()
}

func dump(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		b.WriteString("nil")
	case *Identifier, *IntegerLiteral, *StringLiteral, *TemplateString, *TypeRef:
		b.WriteString(n.String())
	case *Program:
		call(b, "Program", stmts(n.Stmts)...)
	case *Block:
		call(b, "Block", stmts(n.Stmts)...)
	case *ExpressionStatement:
		call(b, "ExprStmt", n.X)
	case *Return:
		if n.Value == nil {
			b.WriteString("Return()")
			return
		}
		call(b, "Return", n.Value)
	case *If:
		args := []any{n.Cond, n.Consequence}
		if n.Alternative != nil {
			args = append(args, n.Alternative)
		}
		call(b, "If", args...)
	case *For:
		args := []any{n.Init, n.Cond.X}
		if n.Increment != nil {
			args = append(args, n.Increment)
		}
		call(b, "For", append(args, n.Body)...)
	case *ForIn:
		name := "ForIn"
		if n.IsAwait() {
			name = "ForAwaitIn"
		}
		call(b, name, n.Kind, n.Name, n.Operator, n.Source, n.Body)
	case *While:
		call(b, "While", n.Cond, n.Body)
	case *DoWhile:
		call(b, "DoWhile", n.Body, n.Cond)
	case *Import:
		args := idents(n.Names)
		call(b, "Import", append(args, n.Source)...)
	case *VariableDeclaration:
		args := []any{n.Kind}
		for _, d := range n.Declarators {
			args = append(args, d)
		}
		call(b, "VarDecl", args...)
	case *SingleDeclarator:
		call(b, "Declarator", n.Name, optType(n.Type), optExpr(n.Value))
	case *FunctionDeclaration:
		name := "FuncDecl"
		if n.Async {
			name = "AsyncFuncDecl"
		}
		call(b, name, n.Name, n.Signature, optType(n.ReturnType), n.Body)
	case *FunctionSignature:
		call(b, "FuncSig", n.Name, n.Signature, n.ReturnType)
	case *ClassDeclaration:
		args := []any{n.Name}
		for _, m := range n.Members {
			args = append(args, m)
		}
		call(b, "Class", args...)
	case *FieldDeclaration:
		call(b, "Field", n.Declarator.Name, optType(n.Declarator.Type), optExpr(n.Declarator.Value))
	case *MethodDefinition:
		call(b, "Method", n.Name, n.Signature, optType(n.ReturnType), n.Body)
	case *InterfaceDeclaration:
		args := []any{n.Name}
		for _, m := range n.Members {
			args = append(args, m)
		}
		call(b, "Interface", args...)
	case *MethodSignature:
		call(b, "MethodSig", n.Name, n.Signature, n.ReturnType)
	case *PropertySignature:
		call(b, "PropSig", n.Name, optNode(n.Type), optExpr(n.Value))
	case *IndexSignature:
		args := make([]any, 0, len(n.Params)+1)
		for _, p := range n.Params {
			args = append(args, p)
		}
		call(b, "IndexSig", append(args, n.Type)...)
	case *CallSignature:
		args := make([]any, 0, len(n.Params)+1)
		for _, p := range n.Params {
			args = append(args, p)
		}
		if n.Rest != nil {
			args = append(args, n.Rest)
		}
		call(b, "Params", args...)
	case *Unary:
		call(b, "Unary", n.Op, n.X)
	case *Binary:
		call(b, "Binary", n.Op, n.X, n.Y)
	case *Assignment:
		call(b, "Assign", n.Target, n.Value)
	case *AugmentedAssignment:
		call(b, "AugAssign", n.Op, n.Target, n.Value)
	case *Call:
		args := []any{n.Fun}
		for _, a := range n.Args {
			args = append(args, a)
		}
		call(b, "Call", args...)
	case *Member:
		call(b, "Member", n.X, n.Property)
	case *Subscript:
		call(b, "Subscript", n.X, n.Index)
	case *Parenthesized:
		call(b, "Paren", n.X)
	case *ArrowFunction:
		if n.Param != nil {
			call(b, "Arrow", n.Param, n.Body)
			return
		}
		call(b, "Arrow", n.Signature, n.Body)
	case *FunctionExpression:
		call(b, "Function", n.Signature, n.Body)
	case *ArrayLiteral:
		args := make([]any, len(n.Elems))
		for i, e := range n.Elems {
			args[i] = e
		}
		call(b, "Array", args...)
	case *Property:
		b.WriteString(n.Key.Name + ": ")
		dump(b, n.Value)
	case *ObjectLiteral:
		args := make([]any, len(n.Props))
		for i, p := range n.Props {
			args[i] = p
		}
		call(b, "Object", args...)
	default:
		// Params, properties, heritage clauses and the like read fine as
		// source text.
		b.WriteString(n.String())
	}
}

// call writes name(args...). Strings are written verbatim and nodes are
// dumped recursively.
func call(b *strings.Builder, name string, args ...any) {
	b.WriteString(name)
	b.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		switch a := arg.(type) {
		case string:
			b.WriteString(a)
		case Node:
			dump(b, a)
		default:
			b.WriteString("nil")
		}
	}
	b.WriteString(")")
}

func stmts(list []Stmt) []any {
	args := make([]any, len(list))
	for i, s := range list {
		args[i] = s
	}
	return args
}

func idents(list []*Identifier) []any {
	args := make([]any, len(list))
	for i, id := range list {
		args[i] = id
	}
	return args
}

// The opt helpers turn typed nil pointers into untyped nils so they dump
// as "nil" rather than panicking.

func optType(t *TypeRef) any {
	if t == nil {
		return nil
	}
	return t
}

func optExpr(e Expr) any {
	if e == nil {
		return nil
	}
	return e
}

func optNode(n Node) any {
	if n == nil {
		return nil
	}
	return n
}
