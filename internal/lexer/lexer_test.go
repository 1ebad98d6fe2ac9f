package lexer

import (
	"testing"

	"github.com/cloudcmds/tsfront/errors"
	"github.com/cloudcmds/tsfront/internal/token"
	"github.com/stretchr/testify/require"
)

type expectedToken struct {
	expectedType    token.Type
	expectedLiteral string
}

func checkTokens(t *testing.T, input string, tests []expectedToken) {
	t.Helper()
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := "%=+(){},;?? ||= &&`/foo`**=...=> >>>= >>> !==~@"
	checkTokens(t, input, []expectedToken{
		{token.MOD_EQUALS, "%="},
		{token.PLUS, "+"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.COMMA, ","},
		{token.SEMICOLON, ";"},
		{token.NULLISH, "??"},
		{token.OR_EQUALS, "||="},
		{token.AND, "&&"},
		{token.TEMPLATE, "`/foo`"},
		{token.POW_EQUALS, "**="},
		{token.SPREAD, "..."},
		{token.ARROW, "=>"},
		{token.GT_GT_GT_EQ, ">>>="},
		{token.GT_GT_GT, ">>>"},
		{token.STRICT_NE, "!=="},
		{token.TILDE, "~"},
		{token.AT, "@"},
		{token.EOF, ""},
	})
}

func TestKeywordsAreIdentifiers(t *testing.T) {
	input := `let x: number = 5;
function add(a: number, b: number): number {
	return a + b;
}`
	checkTokens(t, input, []expectedToken{
		{token.IDENT, "let"},
		{token.IDENT, "x"},
		{token.COLON, ":"},
		{token.IDENT, "number"},
		{token.ASSIGN, "="},
		{token.INT, "5"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "function"},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.IDENT, "a"},
		{token.COLON, ":"},
		{token.IDENT, "number"},
		{token.COMMA, ","},
		{token.IDENT, "b"},
		{token.COLON, ":"},
		{token.IDENT, "number"},
		{token.RPAREN, ")"},
		{token.COLON, ":"},
		{token.IDENT, "number"},
		{token.LBRACE, "{"},
		{token.IDENT, "return"},
		{token.IDENT, "a"},
		{token.PLUS, "+"},
		{token.IDENT, "b"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	})
}

func TestStrings(t *testing.T) {
	// No escape processing: the backslash is kept and ends nothing.
	input := `"a\n" 'it''s' "multi
line" ` + "`tmpl ${x}`"
	checkTokens(t, input, []expectedToken{
		{token.STRING, `"a\n"`},
		{token.STRING, `'it'`},
		{token.STRING, `'s'`},
		{token.STRING, "\"multi\nline\""},
		{token.TEMPLATE, "`tmpl ${x}`"},
		{token.EOF, ""},
	})
}

func TestComments(t *testing.T) {
	input := `=+// This is a comment
// This is still a comment
let a = 1; /* block
comment */ a /**/ /* ** */ b
// This is a final
// comment on two-lines`
	checkTokens(t, input, []expectedToken{
		{token.ASSIGN, "="},
		{token.PLUS, "+"},
		{token.IDENT, "let"},
		{token.IDENT, "a"},
		{token.ASSIGN, "="},
		{token.INT, "1"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "a"},
		{token.IDENT, "b"},
		{token.EOF, ""},
	})
}

func TestBlockCommentStopsAtFirstClose(t *testing.T) {
	checkTokens(t, "/* a */ b */", []expectedToken{
		{token.IDENT, "b"},
		{token.ASTERISK, "*"},
		{token.SLASH, "/"},
		{token.EOF, ""},
	})
}

func TestUnicodeWhitespace(t *testing.T) {
	input := "\uFEFFa\u2028b\u2029c\u00A0d\u2060e\u200Bf\u3000g\tz"
	checkTokens(t, input, []expectedToken{
		{token.IDENT, "a"},
		{token.IDENT, "b"},
		{token.IDENT, "c"},
		{token.IDENT, "d"},
		{token.IDENT, "e"},
		{token.IDENT, "f"},
		{token.IDENT, "g"},
		{token.IDENT, "z"},
		{token.EOF, ""},
	})
}

func TestIntegers(t *testing.T) {
	checkTokens(t, "0 7 42 1_000 12__000_0 1_0__0 9876543210", []expectedToken{
		{token.INT, "0"},
		{token.INT, "7"},
		{token.INT, "42"},
		{token.INT, "1_000"},
		{token.INT, "12__000_0"},
		{token.INT, "1_0__0"},
		{token.INT, "9876543210"},
		{token.EOF, ""},
	})
}

func TestInvalidIntegers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"12ab", "invalid integer literal: 12a"},
		{"078", "invalid integer literal: 07"},
		{"1_", "invalid integer literal: 1_"},
		{"1__", "invalid integer literal: 1_"},
		{"00", "invalid integer literal: 00"},
		// Only one underscore may follow the leading digit.
		{"1__000", "invalid integer literal: 1_"},
		{"1___0", "invalid integer literal: 1_"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			_, err := l.Next()
			require.NotNil(t, err)
			require.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		char     rune
		code     errors.ErrorCode
		line     int
		column   int
	}{
		{"let a = #;", `unexpected character '#'`, '#', errors.E1011, 0, 8},
		{"a\n  $b", `unexpected character '$'`, '$', errors.E1011, 1, 2},
		{"x = \"abc", "unterminated string literal", '"', errors.E1002, 0, 4},
		{"a\nb = 'abc\ndef", "unterminated string literal", '\'', errors.E1002, 1, 4},
		{"let n = 12ab;", "invalid integer literal: 12a", 'a', errors.E1008, 0, 8},
		{"`abc", "unterminated template string", '`', errors.E1002, 0, 0},
		{"a /* b", "unterminated block comment", 0, errors.E1012, 0, 2},
		{"\u00e4", "unexpected character '\u00e4'", '\u00e4', errors.E1011, 0, 0},
		{"12ab", "invalid integer literal: 12a", 'a', errors.E1008, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			var tok token.Token
			var err error
			for i := 0; i < 10 && err == nil; i++ {
				tok, err = l.Next()
			}
			require.NotNil(t, err)
			// The returned token points at the start of the bad input.
			require.Equal(t, token.EOF, tok.Type)
			require.Equal(t, tt.line, tok.StartPosition.Line)
			require.Equal(t, tt.column, tok.StartPosition.Column)
			lexErr, ok := err.(*Error)
			require.True(t, ok)
			require.Equal(t, tt.expected, lexErr.Message)
			require.Equal(t, tt.char, lexErr.Char)
			require.Equal(t, tt.code, lexErr.Code)
			require.Equal(t, tt.line, lexErr.Pos.Line)
			require.Equal(t, tt.column, lexErr.Pos.Column)

			// Errors are sticky.
			_, again := l.Next()
			require.Equal(t, err, again)
		})
	}
}

func TestPositions(t *testing.T) {
	l := New("a\n  bb = 'x'")
	l.SetFilename("main.ts")

	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, 0, tok.StartPosition.Line)
	require.Equal(t, "main.ts", tok.StartPosition.File)

	tok, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, "bb", tok.Literal)
	require.Equal(t, 1, tok.StartPosition.Line)
	require.Equal(t, 2, tok.StartPosition.Column)
	require.Equal(t, 4, tok.StartPosition.Char)
	require.Equal(t, 4, tok.EndPosition.Column)
	require.Equal(t, "  bb = 'x'", l.GetLineText(tok))
}

func TestSaveRestore(t *testing.T) {
	l := New("(a, b) => c")
	first, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.LPAREN, first.Type)

	state := l.SaveState()
	for i := 0; i < 5; i++ {
		_, err = l.Next()
		require.Nil(t, err)
	}
	l.RestoreState(state)

	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, "a", tok.Literal)
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("a.b(1);")
	require.Nil(t, err)
	require.Len(t, tokens, 8)
	require.Equal(t, token.EOF, tokens[7].Type)

	_, err = Tokenize("a # b")
	require.NotNil(t, err)
}
