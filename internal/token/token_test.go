package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Keywords are contextual, so lookups are case sensitive and never change
// the token type.
func TestKeywords(t *testing.T) {
	for _, word := range Keywords() {
		require.True(t, IsKeyword(word), word)
		require.False(t, IsKeyword(strings.ToUpper(word)), word)
	}
	require.False(t, IsKeyword("foo"))
}

func TestTokenIs(t *testing.T) {
	tok := Token{Type: IDENT, Literal: "let"}
	require.True(t, tok.Is("let"))
	require.False(t, tok.Is("const"))

	str := Token{Type: STRING, Literal: "let"}
	require.False(t, str.Is("let"))
}

func TestPosition(t *testing.T) {
	tok := Token{
		Type:    IDENT,
		Literal: "foo",
		StartPosition: Position{
			Line:   2,
			Column: 0,
		},
	}
	// Switches to 1-indexed
	require.Equal(t, 3, tok.StartPosition.LineNumber())
	require.Equal(t, 1, tok.StartPosition.ColumnNumber())
	require.Equal(t, "3:1", tok.StartPosition.String())

	end := tok.StartPosition.Advance(3)
	require.Equal(t, 3, end.Column)
	require.True(t, end.IsValid())
	require.False(t, NoPos.IsValid())
}

// Longer operators must precede any of their prefixes so the lexer's
// first match is the longest one.
func TestOperatorOrder(t *testing.T) {
	for i, op := range Operators {
		for _, later := range Operators[i+1:] {
			if len(later) > len(op) && strings.HasPrefix(string(later), string(op)) {
				t.Fatalf("operator %q listed before longer %q", op, later)
			}
		}
	}
}
