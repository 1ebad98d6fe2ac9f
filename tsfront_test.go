package tsfront

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/cloudcmds/tsfront/ast"
	"github.com/cloudcmds/tsfront/parser"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	program, err := Parse("let x = 1;\nx += 2", WithFilename("a.ts"))
	require.Nil(t, err)
	require.Len(t, program.Stmts, 2)
	require.Equal(t, "a.ts", program.Pos().File)
	require.Equal(t, "Program(VarDecl(let, Declarator(x, nil, 1)), ExprStmt(AugAssign(+=, x, 2)))", ast.Dump(program))
}

func TestParseMaxDepth(t *testing.T) {
	src := "x = [[[[[[1]]]]]]"
	_, err := Parse(src, WithMaxDepth(4))
	require.NotNil(t, err)
	require.Equal(t, "E1009", Diagnose(err).Code)

	_, err = Parse(src, WithMaxDepth(0))
	require.Nil(t, err)
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("let a =\n  'x';")
	require.Nil(t, err)
	require.Len(t, tokens, 6)
	require.Equal(t, Token{Type: "IDENT", Literal: "let", Offset: 0, Line: 1, Column: 1}, tokens[0])
	require.Equal(t, Token{Type: "STRING", Literal: "'x'", Offset: 10, Line: 2, Column: 3}, tokens[3])
	require.Equal(t, "EOF", tokens[5].Type)
	require.Equal(t, "1:7 =", tokens[2].String())
	require.Equal(t, "1:1 IDENT let", tokens[0].String())
}

func TestTokenizeError(t *testing.T) {
	_, err := Tokenize("a\n  #", WithFilename("bad.ts"))
	require.NotNil(t, err)

	var lexErr *parser.LexicalError
	require.True(t, errors.As(err, &lexErr))

	d := Diagnose(err)
	require.Equal(t, &Diagnostic{
		Kind:    "lexical error",
		Code:    "E1011",
		Message: "unexpected character '#'",
		File:    "bad.ts",
		Offset:  4,
		Line:    2,
		Column:  3,
	}, d)
	require.Equal(t, "bad.ts:2:3: lexical error[E1011]: unexpected character '#'", d.String())
}

func TestTokenizeErrorPositions(t *testing.T) {
	tests := []struct {
		input  string
		code   string
		offset int
		column int
	}{
		{"x = 'abc", "E1002", 4, 5},
		{"x = `abc", "E1002", 4, 5},
		{"let n = 12ab;", "E1008", 8, 9},
		{"a /* b", "E1012", 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			require.NotNil(t, err)
			d := Diagnose(err)
			require.Equal(t, tt.code, d.Code)
			require.Equal(t, tt.offset, d.Offset)
			require.Equal(t, 1, d.Line)
			require.Equal(t, tt.column, d.Column)

			// Parsing reports the same place.
			_, err = Parse(tt.input)
			require.Equal(t, d, Diagnose(err))
		})
	}
}

func TestDiagnose(t *testing.T) {
	require.Nil(t, Diagnose(nil))

	_, err := Parse("let = 1;", WithFilename("m.ts"))
	d := Diagnose(err)
	require.Equal(t, "syntax error", d.Kind)
	require.Equal(t, "E1006", d.Code)
	require.Equal(t, []string{"identifier"}, d.Expected)
	require.Equal(t, 4, d.Offset)
	require.Equal(t, 1, d.Line)
	require.Equal(t, 5, d.Column)

	data, err := json.Marshal(d)
	require.Nil(t, err)
	require.JSONEq(t, `{
		"kind": "syntax error",
		"code": "E1006",
		"message": "unexpected \"=\" while parsing let declaration (expected identifier)",
		"expected": ["identifier"],
		"file": "m.ts",
		"offset": 4,
		"line": 1,
		"column": 5
	}`, string(data))

	require.False(t, d.Structural)

	_, err = Parse("x = 1;\nf() = 2;", WithFilename("m.ts"))
	d = Diagnose(err)
	require.Equal(t, "syntax error", d.Kind)
	require.True(t, d.Structural)
	require.Equal(t, "E1005", d.Code)
	require.Equal(t, 2, d.Line)
	require.Equal(t, 1, d.Column)
	data, err = json.Marshal(d)
	require.Nil(t, err)
	require.Contains(t, string(data), `"structural":true`)

	other := Diagnose(errors.New("boom"))
	require.Equal(t, &Diagnostic{Kind: "error", Message: "boom"}, other)
}

func TestParseAll(t *testing.T) {
	sources := []Source{
		{Name: "ok.ts", Code: "f(1);"},
		{Name: "bad1.ts", Code: "1 = 2;"},
		{Name: "bad2.ts", Code: "let x = #;"},
	}
	programs, err := ParseAll(sources)
	require.Len(t, programs, 3)
	require.NotNil(t, programs[0])
	require.Nil(t, programs[1])
	require.Nil(t, programs[2])

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)

	diags := Diagnostics(err)
	require.Len(t, diags, 2)
	require.Equal(t, "bad1.ts", diags[0].File)
	require.Equal(t, "E1005", diags[0].Code)
	require.Equal(t, "bad2.ts", diags[1].File)
	require.Equal(t, "lexical error", diags[1].Kind)

	programs, err = ParseAll(sources[:1])
	require.Nil(t, err)
	require.Len(t, programs, 1)
	require.Nil(t, Diagnostics(err))
}
