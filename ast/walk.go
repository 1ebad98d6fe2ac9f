package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range Children(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}

// Children returns the direct children of node in source order. Absent
// optional children are omitted.
func Children(node Node) []Node {
	var c children
	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			c.add(s)
		}

	// Statements
	case *Block:
		for _, s := range n.Stmts {
			c.add(s)
		}
	case *ExpressionStatement:
		c.add(n.X)
	case *Return:
		c.addExpr(n.Value)
	case *If:
		c.add(n.Cond)
		c.add(n.Consequence)
		if n.Alternative != nil {
			c.add(n.Alternative)
		}
	case *For:
		c.add(n.Init)
		c.add(n.Cond)
		c.addExpr(n.Increment)
		c.add(n.Body)
	case *ForIn:
		c.add(n.Name)
		c.add(n.Source)
		c.add(n.Body)
	case *While:
		c.add(n.Cond)
		c.add(n.Body)
	case *DoWhile:
		c.add(n.Body)
		c.add(n.Cond)
	case *Import:
		for _, id := range n.Names {
			c.add(id)
		}
		c.add(n.Source)

	// Declarations
	case *VariableDeclaration:
		for _, d := range n.Declarators {
			c.add(d)
		}
	case *SingleDeclarator:
		c.add(n.Name)
		if n.Type != nil {
			c.add(n.Type)
		}
		c.addExpr(n.Value)
	case *FunctionDeclaration:
		c.add(n.Name)
		for _, id := range n.TypeParams {
			c.add(id)
		}
		c.add(n.Signature)
		if n.ReturnType != nil {
			c.add(n.ReturnType)
		}
		c.add(n.Body)
	case *FunctionSignature:
		c.add(n.Name)
		c.add(n.Signature)
		c.add(n.ReturnType)
	case *ClassDeclaration:
		for _, d := range n.Decorators {
			c.add(d)
		}
		c.add(n.Name)
		if n.Extends != nil {
			c.add(n.Extends)
		}
		if n.Implements != nil {
			c.add(n.Implements)
		}
		if n.TypeParam != nil {
			c.add(n.TypeParam)
		}
		for _, m := range n.Members {
			c.add(m)
		}
	case *Heritage:
		c.add(n.Name)
		if n.TypeArg != nil {
			c.add(n.TypeArg)
		}
	case *TypeParameter:
		c.add(n.Name)
		c.add(n.Constraint)
	case *Decorator:
		c.add(n.Expr)
		for _, a := range n.Args {
			c.add(a)
		}
	case *FieldDeclaration:
		c.add(n.Declarator)
	case *MethodDefinition:
		if n.Decorator != nil {
			c.add(n.Decorator)
		}
		c.add(n.Name)
		c.add(n.Signature)
		if n.ReturnType != nil {
			c.add(n.ReturnType)
		}
		c.add(n.Body)
	case *InterfaceDeclaration:
		c.add(n.Name)
		if n.Extends != nil {
			c.add(n.Extends)
		}
		if n.TypeParam != nil {
			c.add(n.TypeParam)
		}
		for _, m := range n.Members {
			c.add(m)
		}
	case *MethodSignature:
		c.add(n.Name)
		c.add(n.Signature)
		c.add(n.ReturnType)
	case *PropertySignature:
		c.add(n.Name)
		if n.Type != nil {
			c.add(n.Type)
		}
		c.addExpr(n.Value)
	case *IndexSignature:
		for _, p := range n.Params {
			c.add(p)
		}
		c.add(n.Type)
	case *IndexParam:
		c.add(n.Name)
		c.add(n.Type)

	// Signatures and types
	case *CallSignature:
		for _, p := range n.Params {
			c.add(p)
		}
		if n.Rest != nil {
			c.add(n.Rest)
		}
	case *Param:
		c.add(n.Name)
		if n.Type != nil {
			c.add(n.Type)
		}
		c.addExpr(n.Default)
	case *RestParam:
		c.add(n.Name)
		c.add(n.Type)
	case *TypeRef:
		c.add(n.Name)
	case *FunctionType:
		c.add(n.Signature)
		c.add(n.Return)

	// Expressions
	case *Unary:
		c.add(n.X)
	case *Binary:
		c.add(n.X)
		c.add(n.Y)
	case *Assignment:
		c.add(n.Target)
		c.add(n.Value)
	case *AugmentedAssignment:
		c.add(n.Target)
		c.add(n.Value)
	case *Call:
		c.add(n.Fun)
		for _, a := range n.Args {
			c.add(a)
		}
	case *Member:
		c.add(n.X)
		c.add(n.Property)
	case *Subscript:
		c.add(n.X)
		c.add(n.Index)
	case *Parenthesized:
		c.add(n.X)
	case *ArrowFunction:
		if n.Param != nil {
			c.add(n.Param)
		} else {
			c.add(n.Signature)
		}
		c.add(n.Body)
	case *FunctionExpression:
		c.add(n.Signature)
		c.add(n.Body)
	case *ArrayLiteral:
		for _, e := range n.Elems {
			c.add(e)
		}
	case *ObjectLiteral:
		for _, p := range n.Props {
			c.add(p)
		}
	case *Property:
		c.add(n.Key)
		c.add(n.Value)
	}
	return c
}

type children []Node

func (c *children) add(n Node) {
	*c = append(*c, n)
}

// addExpr appends an optional expression. A nil Expr must not reach add,
// where it would become a non-nil Node holding a nil value.
func (c *children) addExpr(e Expr) {
	if e != nil {
		*c = append(*c, e)
	}
}
