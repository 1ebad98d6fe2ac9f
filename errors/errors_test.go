package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	require.Equal(t, "invalid assignment target", E1005.Description())
	require.Equal(t, "parse", E1013.Category())
	require.Equal(t, "E1009", E1009.String())
	require.Equal(t, "unknown error", ErrorCode("E9999").Description())
	require.Equal(t, "unknown", ErrorCode("X").Category())
}

func TestSourceLocation(t *testing.T) {
	loc := SourceLocation{Filename: "main.ts", Line: 10, Column: 5}
	require.Equal(t, "main.ts:10:5", loc.String())
	require.False(t, loc.IsZero())

	loc.Filename = ""
	require.Equal(t, "10:5", loc.String())
	require.True(t, SourceLocation{}.IsZero())
}

func TestFormatPlain(t *testing.T) {
	err := &FormattedError{
		Code:      E1001,
		Kind:      "syntax error",
		Message:   "unexpected token ;",
		Filename:  "main.ts",
		Line:      3,
		Column:    9,
		EndColumn: 10,
		SourceLines: []SourceLineEntry{
			{Number: 3, Text: "let x = ;", IsMain: true},
		},
		Hint: "did you mean 'let'?",
		Note: "expected an expression",
	}
	expected := strings.Join([]string{
		"syntax error[E1001]: unexpected token ;",
		"  --> main.ts:3:9",
		"   |",
		" 3 | let x = ;",
		"   |         ^",
		"   |",
		"   = hint: did you mean 'let'?",
		"   = note: expected an expression",
		"",
	}, "\n")
	require.Equal(t, expected, NewFormatter(false).Format(err))
}

func TestFormatUnderlineWidth(t *testing.T) {
	tests := []struct {
		name      string
		column    int
		endColumn int
		carets    int
	}{
		{"unset end", 5, 0, 1},
		{"empty span", 5, 5, 1},
		{"three chars", 5, 8, 3},
		{"ten chars", 5, 15, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &FormattedError{
				Message:     "bad",
				Line:        1,
				Column:      tt.column,
				EndColumn:   tt.endColumn,
				SourceLines: []SourceLineEntry{{Number: 1, Text: "let verylongname = 42", IsMain: true}},
			}
			out := NewFormatter(false).Format(err)
			var caretLine string
			for _, line := range strings.Split(out, "\n") {
				if strings.Contains(line, "^") {
					caretLine = line
				}
			}
			assert.Equal(t, tt.carets, strings.Count(caretLine, "^"))
		})
	}
}

func TestFormatKeepsTabsBeforeCaret(t *testing.T) {
	err := &FormattedError{
		Message:     "bad",
		Line:        1,
		Column:      3,
		SourceLines: []SourceLineEntry{{Number: 1, Text: "\t\tx", IsMain: true}},
	}
	out := NewFormatter(false).Format(err)
	require.Contains(t, out, "   | \t\t^\n")
}

func TestFormatColor(t *testing.T) {
	err := &FormattedError{Kind: "lexical error", Message: "unexpected character '#'", Line: 1, Column: 1}
	plain := NewFormatter(false).Format(err)
	colored := NewFormatter(true).Format(err)
	require.NotContains(t, plain, "\x1b[")
	require.Contains(t, colored, "\x1b[")
	require.Contains(t, colored, "unexpected character '#'")
}

func TestFormatWithoutLocation(t *testing.T) {
	out := NewFormatter(false).Format(&FormattedError{Message: "boom"})
	require.Equal(t, "error: boom\n", out)
}

func TestFormatMultiple(t *testing.T) {
	f := NewFormatter(false)
	require.Equal(t, "", f.FormatMultiple(nil))

	one := &FormattedError{Message: "first"}
	require.Equal(t, f.Format(one), f.FormatMultiple([]*FormattedError{one}))

	out := f.FormatMultiple([]*FormattedError{
		{Message: "first", Filename: "a.ts"},
		{Message: "second", Filename: "b.ts"},
	})
	require.Contains(t, out, "error[1/2]: first")
	require.Contains(t, out, "error[2/2]: second")
	require.Contains(t, out, "--> a.ts\n")
	require.True(t, strings.HasSuffix(out, "found 2 errors\n"))
}

func TestLocation(t *testing.T) {
	err := &FormattedError{
		Filename: "x.ts",
		Line:     2,
		Column:   4,
		SourceLines: []SourceLineEntry{
			{Number: 1, Text: "a;"},
			{Number: 2, Text: "b = ;", IsMain: true},
		},
	}
	loc := err.Location()
	require.Equal(t, "b = ;", loc.Source)
	require.Equal(t, "x.ts:2:4", loc.String())
}
