// Package lexer converts source text into a stream of tokens. Comments and
// whitespace are treated as trivia and never reach the parser.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cloudcmds/tsfront/errors"
	"github.com/cloudcmds/tsfront/internal/token"
)

// Error is returned by Next when the input cannot be tokenized. Lexing does
// not recover: once an error is returned every later call returns it too.
type Error struct {
	Pos     token.Position   // where the offending text starts
	Char    rune             // offending character, if the error is about one
	Code    errors.ErrorCode // diagnostic code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Lexer holds our object-state.
type Lexer struct {
	input    string
	filename string

	// position of the current character
	pos int

	// 0-indexed line of pos and byte offset where that line begins
	line      int
	lineStart int

	err *Error
}

// State captures the lexer's position so it can be rewound after lookahead.
type State struct {
	pos       int
	line      int
	lineStart int
	err       *Error
}

// New returns a Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// SetFilename sets the filename recorded in token positions.
func (l *Lexer) SetFilename(filename string) {
	l.filename = filename
}

// Filename returns the filename recorded in token positions.
func (l *Lexer) Filename() string {
	return l.filename
}

// SaveState returns a snapshot of the lexer position.
func (l *Lexer) SaveState() State {
	return State{pos: l.pos, line: l.line, lineStart: l.lineStart, err: l.err}
}

// RestoreState rewinds the lexer to a snapshot taken with SaveState.
func (l *Lexer) RestoreState(s State) {
	l.pos = s.pos
	l.line = s.line
	l.lineStart = s.lineStart
	l.err = s.err
}

// Tokenize lexes the whole input, returning every token up to and including
// EOF, or the first lexical error.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

// Next returns the next token, skipping any whitespace and comments.
func (l *Lexer) Next() (token.Token, error) {
	if l.err != nil {
		return l.errorToken(), l.err
	}
	if err := l.skipTrivia(); err != nil {
		return l.errorToken(), err
	}
	start := l.position()
	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF, StartPosition: start, EndPosition: start}, nil
	}
	ch := l.input[l.pos]
	switch {
	case isIdentStart(ch):
		return l.readIdentifier(start), nil
	case isDigit(ch):
		return l.readInteger(start)
	case ch == '"' || ch == '\'':
		return l.readQuoted(start, ch, token.STRING, "string literal")
	case ch == '`':
		return l.readQuoted(start, ch, token.TEMPLATE, "template string")
	}
	for _, op := range token.Operators {
		if strings.HasPrefix(l.input[l.pos:], string(op)) {
			l.pos += len(op)
			return l.newToken(op, string(op), start), nil
		}
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	err := l.fail(start, r, errors.E1011, fmt.Sprintf("unexpected character %q", r))
	return l.errorToken(), err
}

// GetLineText returns the full source line that the token starts on.
func (l *Lexer) GetLineText(tok token.Token) string {
	return l.lineText(tok.StartPosition)
}

func (l *Lexer) lineText(p token.Position) string {
	if p.LineStart > len(l.input) {
		return ""
	}
	rest := l.input[p.LineStart:]
	if end := strings.IndexByte(rest, '\n'); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimRight(rest, "\r")
}

func (l *Lexer) position() token.Position {
	return token.Position{
		Char:      l.pos,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.pos - l.lineStart,
		File:      l.filename,
	}
}

func (l *Lexer) newToken(t token.Type, literal string, start token.Position) token.Token {
	return token.Token{
		Type:          t,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

func (l *Lexer) errorToken() token.Token {
	pos := l.position()
	if l.err != nil {
		pos = l.err.Pos
	}
	return token.Token{Type: token.EOF, StartPosition: pos, EndPosition: pos}
}

func (l *Lexer) fail(pos token.Position, ch rune, code errors.ErrorCode, msg string) *Error {
	l.err = &Error{Pos: pos, Char: ch, Code: code, Message: msg}
	return l.err
}

// advance moves past n bytes, keeping line bookkeeping current.
func (l *Lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.input); i++ {
		if l.input[l.pos] == '\n' {
			l.line++
			l.lineStart = l.pos + 1
		}
		l.pos++
	}
}

func (l *Lexer) skipTrivia() error {
	for l.pos < len(l.input) {
		rest := l.input[l.pos:]
		switch {
		case strings.HasPrefix(rest, "//"):
			end := strings.IndexByte(rest, '\n')
			if end < 0 {
				end = len(rest)
			}
			l.advance(end)
		case strings.HasPrefix(rest, "/*"):
			start := l.position()
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				l.advance(len(rest))
				return l.fail(start, 0, errors.E1012, "unterminated block comment")
			}
			l.advance(end + 4)
		default:
			r, size := utf8.DecodeRuneInString(rest)
			if !isWhitespace(r) {
				return nil
			}
			l.advance(size)
		}
	}
	return nil
}

func (l *Lexer) readIdentifier(start token.Position) token.Token {
	begin := l.pos
	for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
		l.pos++
	}
	return l.newToken(token.IDENT, l.input[begin:l.pos], start)
}

// readInteger reads a decimal integer: either "0", or a non-zero digit
// followed by digit groups which may be separated by runs of underscores.
// Only a single underscore may follow the leading digit.
func (l *Lexer) readInteger(start token.Position) (token.Token, error) {
	begin := l.pos
	if l.input[l.pos] == '0' {
		l.pos++
	} else {
		l.pos++
		if l.pos+1 < len(l.input) && l.input[l.pos] == '_' && isDigit(l.input[l.pos+1]) {
			l.pos++
		}
		// A second underscore after the leading digit ends the literal here
		// and is reported below.
		for l.pos < len(l.input) && !(l.pos == begin+1 && l.input[l.pos] == '_') {
			ch := l.input[l.pos]
			if isDigit(ch) {
				l.pos++
				continue
			}
			if ch != '_' {
				break
			}
			// A run of underscores must be followed by another digit group.
			end := l.pos
			for end < len(l.input) && l.input[end] == '_' {
				end++
			}
			if end >= len(l.input) || !isDigit(l.input[end]) {
				break
			}
			l.pos = end
		}
	}
	if l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
		bad := l.input[begin : l.pos+1]
		err := l.fail(start, rune(l.input[l.pos]), errors.E1008,
			fmt.Sprintf("invalid integer literal: %s", bad))
		return l.errorToken(), err
	}
	return l.newToken(token.INT, l.input[begin:l.pos], start), nil
}

// readQuoted reads a string or template literal. The literal of the returned
// token is the raw lexeme including its delimiters; escapes are not processed.
func (l *Lexer) readQuoted(start token.Position, quote byte, t token.Type, what string) (token.Token, error) {
	end := strings.IndexByte(l.input[l.pos+1:], quote)
	if end < 0 {
		l.advance(len(l.input) - l.pos)
		err := l.fail(start, rune(quote), errors.E1002, "unterminated "+what)
		return l.errorToken(), err
	}
	lexeme := l.input[l.pos : l.pos+end+2]
	l.advance(end + 2)
	return l.newToken(t, lexeme, start), nil
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isWhitespace covers unicode.IsSpace plus space separators, the byte order
// mark, line/paragraph separators and the zero-width characters.
func isWhitespace(r rune) bool {
	switch r {
	case '\uFEFF', '\u2028', '\u2029', '\u2060', '\u200B':
		return true
	}
	return unicode.IsSpace(r) || unicode.Is(unicode.Zs, r)
}
