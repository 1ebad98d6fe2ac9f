package ast

import (
	"testing"

	"github.com/cloudcmds/tsfront/internal/token"
	"github.com/stretchr/testify/require"
)

func pos(line, col int) token.Position {
	return token.Position{Line: line, Column: col, Char: col}
}

func ident(name string, col int) *Identifier {
	return &Identifier{NamePos: pos(0, col), Name: name}
}

func intLit(lit string, value int64, col int) *IntegerLiteral {
	return &IntegerLiteral{ValuePos: pos(0, col), Literal: lit, Value: value}
}

func TestBinaryString(t *testing.T) {
	// 1 + 2 * 3
	expr := &Binary{
		X:  intLit("1", 1, 0),
		Op: "+",
		Y: &Binary{
			X:  intLit("2", 2, 4),
			Op: "*",
			Y:  intLit("3", 3, 8),
		},
	}
	require.Equal(t, "1 + 2 * 3", expr.String())
	require.Equal(t, "Binary(+, 1, Binary(*, 2, 3))", Dump(expr))
	require.Equal(t, 0, expr.Pos().Column)
	require.Equal(t, 9, expr.End().Column)
}

func TestUnaryString(t *testing.T) {
	require.Equal(t, "typeof x", (&Unary{Op: "typeof", X: ident("x", 7)}).String())
	require.Equal(t, "-x", (&Unary{Op: "-", X: ident("x", 1)}).String())
	require.Equal(t, "!!ok", (&Unary{Op: "!", X: &Unary{Op: "!", X: ident("ok", 2)}}).String())
}

func TestLiteralStrings(t *testing.T) {
	str := &StringLiteral{Quote: '\'', Value: `a\n`}
	require.Equal(t, `'a\n'`, str.String())

	tmpl := &TemplateString{Value: "x ${y}"}
	require.Equal(t, "`x ${y}`", tmpl.String())

	num := intLit("1_000", 1000, 4)
	require.Equal(t, "1_000", num.String())
	require.Equal(t, 9, num.End().Column)

	obj := &ObjectLiteral{Props: []*Property{
		{Key: ident("a", 1), Value: intLit("1", 1, 4)},
		{Key: ident("b", 7), Value: &ArrayLiteral{Elems: []Expr{ident("c", 11)}}},
	}}
	require.Equal(t, "{a: 1, b: [c]}", obj.String())
	require.Equal(t, "Object(a: 1, b: Array(c))", Dump(obj))
	require.Equal(t, "{}", (&ObjectLiteral{}).String())
}

func TestChainStrings(t *testing.T) {
	// a.b(1).c
	chain := &Member{
		X: &Member{
			X:        ident("a", 0),
			Property: &Call{Fun: ident("b", 2), Args: []Expr{intLit("1", 1, 4)}, Rparen: pos(0, 5)},
		},
		Property: ident("c", 7),
	}
	require.Equal(t, "a.b(1).c", chain.String())
	require.Equal(t, "Member(Member(a, Call(b, 1)), c)", Dump(chain))
	require.Equal(t, 8, chain.End().Column)

	sub := &Subscript{X: ident("a", 0), Index: intLit("0", 0, 2), Rbrack: pos(0, 3)}
	require.Equal(t, "a[0]", sub.String())
	require.Equal(t, 4, sub.End().Column)
}

func TestArrowStrings(t *testing.T) {
	bare := &ArrowFunction{Param: ident("x", 0), Body: ident("x", 5)}
	require.Equal(t, "x => x", bare.String())
	require.Len(t, bare.Params(), 1)
	require.Nil(t, bare.Params()[0].Type)

	typed := &ArrowFunction{
		Signature: &CallSignature{
			Lparen: pos(0, 0),
			Params: []*Param{{Name: ident("x", 1), Type: &TypeRef{Name: ident("number", 4)}}},
			Rparen: pos(0, 10),
		},
		Body: &Block{Lbrace: pos(0, 15), Rbrace: pos(0, 16)},
	}
	require.Equal(t, "(x: number) => {}", typed.String())
	require.Equal(t, 0, typed.Pos().Column)
	require.Equal(t, "Arrow(Params(x: number), Block())", Dump(typed))
}

func TestCallSignatureString(t *testing.T) {
	sig := &CallSignature{
		Params: []*Param{
			{Modifier: "private", Name: ident("a", 0), Type: &TypeRef{Name: ident("string", 0), Lbrack: pos(0, 20)}},
			{Name: ident("cb", 0), Type: &FunctionType{
				Signature: &CallSignature{},
				Return:    &TypeRef{Name: ident("void", 0)},
			}, Default: ident("noop", 0)},
		},
		Rest:          &RestParam{Name: ident("args", 0), Type: &TypeRef{Name: ident("any", 0), Lbrack: pos(0, 40)}},
		TrailingComma: pos(0, 50),
	}
	require.Equal(t, "(private a: string[], cb: () => void = noop, ...args: any[],)", sig.String())
}

func TestStatementStrings(t *testing.T) {
	tests := []struct {
		node     Stmt
		expected string
	}{
		{&ExpressionStatement{X: ident("a", 0)}, "a"},
		{&ExpressionStatement{X: ident("a", 0), Semicolon: pos(0, 1)}, "a;"},
		{&Return{Semicolon: pos(0, 6)}, "return;"},
		{&Return{Value: ident("x", 7), Semicolon: pos(0, 8)}, "return x;"},
		{&Block{}, "{}"},
		{&Block{Stmts: []Stmt{&Return{}}, Semicolon: pos(0, 12)}, "{\nreturn;\n};"},
		{&While{Cond: ident("ok", 7), Body: &Block{}}, "while (ok) {}"},
		{&DoWhile{Body: &Block{}, Cond: ident("ok", 7)}, "do {} while (ok)"},
		{&If{
			Cond:        ident("a", 4),
			Consequence: &Block{},
			Alternative: &If{Cond: ident("b", 20), Consequence: &Block{}},
		}, "if (a) {} else if (b) {}"},
		{&ForIn{
			Kind: "const", Name: ident("v", 0), Operator: "of", Source: ident("xs", 0),
			Await: pos(0, 4), Body: &Block{},
		}, "for await (const v of xs) {}"},
		{&Import{
			Names:  []*Identifier{ident("a", 0), ident("b", 0)},
			Source: &StringLiteral{Quote: '"', Value: "./m"},
		}, `import {a, b} from "./m"`},
		{&VariableDeclaration{
			Kind: "let",
			Declarators: []*SingleDeclarator{
				{Name: ident("x", 4), Type: &TypeRef{Name: ident("number", 7)}, Value: intLit("1", 1, 16)},
				{Name: ident("y", 19)},
			},
			Semicolon: pos(0, 20),
		}, "let x: number = 1, y;"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.node.String())
		})
	}
}

func TestForString(t *testing.T) {
	loop := &For{
		Init: &VariableDeclaration{
			Kind:        "let",
			Declarators: []*SingleDeclarator{{Name: ident("i", 9), Value: intLit("0", 0, 13)}},
			Semicolon:   pos(0, 14),
		},
		Cond: &ExpressionStatement{
			X:         &Binary{X: ident("i", 16), Op: "<", Y: ident("n", 20)},
			Semicolon: pos(0, 21),
		},
		Increment: &AugmentedAssignment{Target: ident("i", 23), Op: "+=", Value: intLit("1", 1, 28)},
		Body:      &Block{},
	}
	require.Equal(t, "for (let i = 0; i < n; i += 1) {}", loop.String())
	require.Equal(t, "For(VarDecl(let, Declarator(i, nil, 0)), Binary(<, i, n), AugAssign(+=, i, 1), Block())", Dump(loop))
}

func TestClassString(t *testing.T) {
	class := &ClassDeclaration{
		Decorators: []*Decorator{{At: pos(0, 0), Expr: ident("sealed", 1)}},
		Class:      pos(1, 0),
		Name:       ident("Box", 6),
		Extends:    &Heritage{KeywordPos: pos(1, 10), Keyword: "extends", Name: ident("Base", 18), TypeArg: ident("T", 23)},
		TypeParam:  &TypeParameter{Lt: pos(1, 26), Name: ident("T", 27), Constraint: ident("Item", 37)},
		Members: []ClassMember{
			&FieldDeclaration{Declarator: &SingleDeclarator{Name: ident("size", 0), Type: &TypeRef{Name: ident("number", 0)}}},
			&MethodDefinition{
				Decorator:  &Decorator{At: pos(3, 0), Expr: ident("log", 1), Lparen: pos(3, 4), Rparen: pos(3, 5)},
				Name:       ident("get", 0),
				Signature:  &CallSignature{},
				ReturnType: &TypeRef{Name: ident("T", 0)},
				Body:       &Block{},
			},
		},
	}
	expected := "@sealed\nclass Box extends Base<T> <T extends Item> {\nsize: number;\n@log()\nget(): T {}\n}"
	require.Equal(t, expected, class.String())
	require.Equal(t, "Class(Box, Field(size, number, nil), Method(get, Params(), T, Block()))", Dump(class))

	// A generic parameter written before the heritage clauses stays there.
	class.TypeParam.Lt = pos(1, 9)
	require.Equal(t, "@sealed\nclass Box<T extends Item> extends Base<T> {\nsize: number;\n@log()\nget(): T {}\n}", class.String())
}

func TestInterfaceString(t *testing.T) {
	iface := &InterfaceDeclaration{
		Exported:  true,
		Export:    pos(0, 0),
		Interface: pos(0, 7),
		Name:      ident("Shape", 17),
		Members: []InterfaceMember{
			&MethodSignature{Name: ident("area", 0), Signature: &CallSignature{}, ReturnType: &TypeRef{Name: ident("number", 0)}, Semicolon: pos(1, 14)},
			&PropertySignature{Name: ident("onChange", 0), Type: &FunctionType{
				Signature: &CallSignature{Params: []*Param{{Name: ident("v", 0), Type: &TypeRef{Name: ident("number", 0)}}}},
				Return:    &TypeRef{Name: ident("void", 0)},
			}},
			&IndexSignature{
				Params: []*IndexParam{{Name: ident("k", 0), Type: &TypeRef{Name: ident("string", 0)}}},
				Type:   &TypeRef{Name: ident("number", 0)},
			},
		},
	}
	expected := "export interface Shape {\narea(): number;\nonChange: (v: number) => void\n[k: string]: number\n}"
	require.Equal(t, expected, iface.String())
	require.True(t, iface.Exported)
	require.Equal(t, 0, iface.Pos().Column)
}

func TestFunctionStrings(t *testing.T) {
	fn := &FunctionDeclaration{
		Async:      true,
		AsyncPos:   pos(0, 0),
		Func:       pos(0, 6),
		Name:       ident("load", 15),
		TypeParams: []*Identifier{ident("A", 20), ident("B", 23)},
		Signature:  &CallSignature{},
		ReturnType: &TypeRef{Name: ident("A", 0)},
		Body:       &Block{Stmts: []Stmt{&Return{Value: ident("a", 0)}}},
	}
	require.Equal(t, "async function load<A, B>(): A {\nreturn a;\n}", fn.String())
	require.Equal(t, 0, fn.Pos().Column)

	sig := &FunctionSignature{Name: ident("f", 9), Signature: &CallSignature{}, ReturnType: &TypeRef{Name: ident("void", 0)}}
	require.Equal(t, "function f(): void;", sig.String())

	expr := &FunctionExpression{Signature: &CallSignature{}, Body: &Block{}}
	require.Equal(t, "function () {}", expr.String())
}

func TestProgram(t *testing.T) {
	empty := &Program{}
	require.Nil(t, empty.First())
	require.False(t, empty.Pos().IsValid())
	require.Equal(t, "", empty.String())

	prog := &Program{Stmts: []Stmt{
		&ExpressionStatement{X: ident("a", 0)},
		&ExpressionStatement{X: &Identifier{NamePos: pos(1, 0), Name: "b"}, Semicolon: pos(1, 1)},
	}}
	require.Equal(t, "a\nb;", prog.String())
	require.Equal(t, 1, prog.End().Line)
	require.Equal(t, "Program(ExprStmt(a), ExprStmt(b))", Dump(prog))
}
