// Package token defines the tokens produced when lexing source code, along
// with the contextual keywords recognized by the parser.
package token

import "fmt"

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // byte offset within the file
	LineStart int    // byte offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column number
	File      string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns a new Position advanced by n bytes.
// Used for computing End positions from a start position.
// Note: This assumes the advance does not cross line boundaries.
func (p Position) Advance(n int) Position {
	return Position{
		Char:      p.Char + n,
		LineStart: p.LineStart,
		Line:      p.Line,
		Column:    p.Column + n,
		File:      p.File,
	}
}

// IsValid returns true if this position has been set.
func (p Position) IsValid() bool {
	return p.File != "" || p.Line > 0 || p.Column > 0 || p.Char > 0
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.LineNumber(), p.ColumnNumber())
	}
	return fmt.Sprintf("%d:%d", p.LineNumber(), p.ColumnNumber())
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
	EndPosition   Position
}

// Is reports whether the token is an identifier spelled exactly as word.
// Keywords are not reserved by the lexer, so this is how the parser
// recognizes them in the positions where they are meaningful.
func (t Token) Is(word string) bool {
	return t.Type == IDENT && t.Literal == word
}

// Token types
const (
	EOF      Type = "EOF"
	IDENT    Type = "IDENT"
	INT      Type = "INT"
	STRING   Type = "STRING"
	TEMPLATE Type = "TEMPLATE"

	LBRACE    Type = "{"
	RBRACE    Type = "}"
	LPAREN    Type = "("
	RPAREN    Type = ")"
	LBRACKET  Type = "["
	RBRACKET  Type = "]"
	SEMICOLON Type = ";"
	COMMA     Type = ","
	COLON     Type = ":"
	PERIOD    Type = "."
	SPREAD    Type = "..."
	ARROW     Type = "=>"
	AT        Type = "@"

	ASSIGN    Type = "="
	EQ        Type = "=="
	STRICT_EQ Type = "==="
	BANG      Type = "!"
	NOT_EQ    Type = "!="
	STRICT_NE Type = "!=="
	TILDE     Type = "~"

	PLUS            Type = "+"
	PLUS_EQUALS     Type = "+="
	MINUS           Type = "-"
	MINUS_EQUALS    Type = "-="
	ASTERISK        Type = "*"
	ASTERISK_EQUALS Type = "*="
	POW             Type = "**"
	POW_EQUALS      Type = "**="
	SLASH           Type = "/"
	SLASH_EQUALS    Type = "/="
	MOD             Type = "%"
	MOD_EQUALS      Type = "%="

	LT            Type = "<"
	LT_EQUALS     Type = "<="
	LT_LT         Type = "<<"
	LT_LT_EQUALS  Type = "<<="
	GT            Type = ">"
	GT_EQUALS     Type = ">="
	GT_GT         Type = ">>"
	GT_GT_EQUALS  Type = ">>="
	GT_GT_GT      Type = ">>>"
	GT_GT_GT_EQ   Type = ">>>="
	AMPERSAND     Type = "&"
	AMP_EQUALS    Type = "&="
	AND           Type = "&&"
	AND_EQUALS    Type = "&&="
	BITOR         Type = "|"
	BITOR_EQUALS  Type = "|="
	OR            Type = "||"
	OR_EQUALS     Type = "||="
	CARET         Type = "^"
	CARET_EQUALS  Type = "^="
	NULLISH       Type = "??"
	NULLISH_EQUAL Type = "??="
)

// Operators lists every punctuation and operator token. The lexer matches
// these longest-first.
var Operators = []Type{
	GT_GT_GT_EQ,
	SPREAD, STRICT_EQ, STRICT_NE, POW_EQUALS, LT_LT_EQUALS, GT_GT_EQUALS,
	GT_GT_GT, AND_EQUALS, OR_EQUALS, NULLISH_EQUAL,
	ARROW, EQ, NOT_EQ, PLUS_EQUALS, MINUS_EQUALS, ASTERISK_EQUALS, POW,
	SLASH_EQUALS, MOD_EQUALS, LT_EQUALS, LT_LT, GT_EQUALS, GT_GT,
	AMP_EQUALS, AND, BITOR_EQUALS, OR, CARET_EQUALS, NULLISH,
	LBRACE, RBRACE, LPAREN, RPAREN, LBRACKET, RBRACKET, SEMICOLON, COMMA,
	COLON, PERIOD, AT, ASSIGN, BANG, TILDE, PLUS, MINUS, ASTERISK, SLASH,
	MOD, LT, GT, AMPERSAND, BITOR, CARET,
}

// Contextual keywords. None of these are reserved; each is only treated as a
// keyword in the syntactic positions where the grammar expects it.
var keywords = map[string]bool{
	"async":      true,
	"await":      true,
	"class":      true,
	"const":      true,
	"delete":     true,
	"do":         true,
	"else":       true,
	"export":     true,
	"extends":    true,
	"for":        true,
	"from":       true,
	"function":   true,
	"if":         true,
	"implements": true,
	"import":     true,
	"in":         true,
	"instanceof": true,
	"interface":  true,
	"let":        true,
	"of":         true,
	"private":    true,
	"public":     true,
	"return":     true,
	"typeof":     true,
	"var":        true,
	"void":       true,
	"while":      true,
}

// IsKeyword reports whether the word can act as a keyword somewhere in the
// grammar.
func IsKeyword(word string) bool {
	return keywords[word]
}

// Keywords returns the contextual keywords in no particular order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for k := range keywords {
		words = append(words, k)
	}
	return words
}
