package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"from", "form", 2},
		{"whlie", "while", 2},
		{"extend", "extends", 1},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, levenshteinDistance(tt.a, tt.b), "%s/%s", tt.a, tt.b)
		require.Equal(t, tt.expected, levenshteinDistance(tt.b, tt.a), "%s/%s", tt.b, tt.a)
	}
}

func TestSuggestSimilar(t *testing.T) {
	keywords := []string{"extends", "implements", "from", "while", "of", "in"}

	got := SuggestSimilar("extend", keywords)
	require.Len(t, got, 1)
	require.Equal(t, "extends", got[0].Value)

	got = SuggestSimilar("While", keywords)
	require.Equal(t, []Suggestion{{Value: "while", Distance: 0}}, got)

	require.Empty(t, SuggestSimilar("while", keywords))
	require.Empty(t, SuggestSimilar("banana", keywords))
	require.Nil(t, SuggestSimilar("", keywords))
}

func TestSuggestSimilarOrderingAndLimit(t *testing.T) {
	got := SuggestSimilar("ab", []string{"ac", "aa", "ab", "xb", "abc"})
	require.Len(t, got, MaxSuggestions)
	require.Equal(t, "aa", got[0].Value)
	require.Equal(t, "abc", got[1].Value)
	require.Equal(t, "ac", got[2].Value)
}

func TestHint(t *testing.T) {
	require.Equal(t, "did you mean 'from'?", Hint("frm", "from", "for"))
	require.Equal(t, "", Hint("zzz", "from"))
	require.Equal(t, "did you mean one of: 'in', 'of'?", FormatSuggestions([]Suggestion{{Value: "in"}, {Value: "of"}}))
}
