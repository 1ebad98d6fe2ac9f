// Package parser is used to generate the abstract syntax tree (AST) for a program.
//
// A parser is created by calling New() with a lexer as input. The parser should
// then be used only once, by calling parser.Parse() to produce the AST.
//
// Parsing is fail-fast: the first lexical or syntax error stops the parse and
// is returned on its own, with no partial tree.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudcmds/tsfront/ast"
	"github.com/cloudcmds/tsfront/errors"
	"github.com/cloudcmds/tsfront/internal/lexer"
	"github.com/cloudcmds/tsfront/internal/token"
)

type (
	prefixParseFn func() (ast.Expr, bool)
	infixParseFn  func(ast.Expr) (ast.Expr, bool)
)

// Parse the provided input and return the AST. This is shorthand way to
// create a Lexer and Parser and then call Parse on that.
func Parse(input string, options ...Option) (*ast.Program, error) {
	return New(lexer.New(input), options...).Parse()
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in errors.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithMaxDepth sets the maximum nesting depth for the parser.
// This prevents stack overflow on deeply nested input.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// Parser object
type Parser struct {
	// l is our lexer
	l *lexer.Lexer

	// prevToken holds the previous token, which we already processed.
	prevToken token.Token

	// curToken holds the current token from the lexer.
	curToken token.Token

	// peekToken holds the next token from the lexer.
	peekToken token.Token

	// err is the first error encountered. Once set, parsing stops.
	err ParserError

	// peekErr is a lexical error produced while reading peekToken. It is
	// recorded once that token is reached, so earlier errors win.
	peekErr ParserError

	// prefixParseFns holds a map of parsing methods for
	// prefix-based syntax.
	prefixParseFns map[token.Type]prefixParseFn

	// infixParseFns holds a map of parsing methods for
	// infix-based syntax.
	infixParseFns map[token.Type]infixParseFn

	// The filename of the input
	filename string

	// Current recursion depth
	depth int

	// Maximum allowed recursion depth
	maxDepth int
}

// New returns a Parser for the program provided by the given Lexer.
func New(l *lexer.Lexer, options ...Option) *Parser {
	p := &Parser{
		l:              l,
		prefixParseFns: map[token.Type]prefixParseFn{},
		infixParseFns:  map[token.Type]infixParseFn{},
		maxDepth:       DefaultMaxDepth,
	}
	for _, opt := range options {
		opt(p)
	}
	if p.filename == "" {
		p.filename = l.Filename()
	} else if l.Filename() == "" {
		l.SetFilename(p.filename)
	}

	// Prime the token pump
	p.nextToken() // makes curToken=<empty>, peekToken=token[0]
	p.nextToken() // makes curToken=token[0], peekToken=token[1]

	// Register prefix-functions
	p.registerPrefix(token.IDENT, p.parseIdent)
	p.registerPrefix(token.INT, p.parseInt)
	p.registerPrefix(token.STRING, p.parseString)
	p.registerPrefix(token.TEMPLATE, p.parseTemplate)
	p.registerPrefix(token.LBRACKET, p.parseArray)
	p.registerPrefix(token.LBRACE, p.parseObject)
	p.registerPrefix(token.LPAREN, p.parseGroupedOrArrow)
	p.registerPrefix(token.BANG, p.parseUnary)
	p.registerPrefix(token.TILDE, p.parseUnary)
	p.registerPrefix(token.MINUS, p.parseUnary)
	p.registerPrefix(token.PLUS, p.parseUnary)

	// Register infix functions
	for _, t := range binaryOperators {
		p.registerInfix(t, p.parseBinary)
	}
	for _, t := range assignmentOperators {
		p.registerInfix(t, p.parseAssign)
	}
	p.registerInfix(token.PERIOD, p.parseMember)
	p.registerInfix(token.LPAREN, p.parseCall)
	p.registerInfix(token.LBRACKET, p.parseSubscript)
	return p
}

// Parse the program that is provided via the lexer. Either a complete
// program or the first error encountered is returned, never both.
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}
	for p.err == nil && !p.curTokenIs(token.EOF) {
		stmt, ok := p.parseStatement(true)
		if !ok {
			break
		}
		program.Stmts = append(program.Stmts, stmt)
		p.nextToken()
	}
	if p.err != nil {
		return nil, p.err
	}
	return program, nil
}

// registerPrefix registers a function for handling a prefix-based statement.
func (p *Parser) registerPrefix(tokenType token.Type, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

// registerInfix registers a function for handling an infix-based statement.
func (p *Parser) registerInfix(tokenType token.Type, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// nextToken moves to the next token from the lexer, updating all of
// prevToken, curToken, and peekToken. A lexer error is fatal: the peek
// token becomes EOF and the error is held in peekErr until the parser
// moves onto that token or reports something at or after it.
func (p *Parser) nextToken() {
	p.prevToken = p.curToken
	p.curToken = p.peekToken
	if p.peekErr != nil {
		p.setError(p.peekErr)
		return
	}
	tok, err := p.l.Next()
	p.peekToken = tok
	if err == nil {
		return
	}
	opts := ErrorOpts{
		Cause:         err,
		File:          p.filename,
		StartPosition: tok.StartPosition,
		EndPosition:   tok.StartPosition.Advance(1),
		SourceCode:    p.l.GetLineText(tok),
	}
	if lexErr, ok := err.(*lexer.Error); ok {
		opts.Code = lexErr.Code
	}
	p.peekErr = NewLexicalError(opts)
}

// setError records err unless an earlier error was already recorded. A
// pending lexical error takes its place when err starts at or after it.
func (p *Parser) setError(err ParserError) {
	if p.err != nil {
		return
	}
	if p.peekErr != nil && err.StartPosition().Char >= p.peekErr.StartPosition().Char {
		err = p.peekErr
	}
	p.err = err
}

// setTokenError records a syntax error at the given token.
func (p *Parser) setTokenError(t token.Token, code errors.ErrorCode, msg string, args ...any) {
	p.setError(NewSyntaxError(ErrorOpts{
		Code:          code,
		Message:       fmt.Sprintf(msg, args...),
		File:          p.filename,
		StartPosition: t.StartPosition,
		EndPosition:   t.EndPosition,
		SourceCode:    p.l.GetLineText(t),
	}))
}

// setStructuralError records a structural error spanning the given node.
func (p *Parser) setStructuralError(n ast.Node, code errors.ErrorCode, msg string, args ...any) {
	start := n.Pos()
	p.setError(NewStructuralError(ErrorOpts{
		Code:          code,
		Message:       fmt.Sprintf(msg, args...),
		File:          p.filename,
		StartPosition: start,
		EndPosition:   n.End(),
		SourceCode:    p.l.GetLineText(token.Token{StartPosition: start}),
	}))
}

// setStructuralSpan records a structural error between two positions.
func (p *Parser) setStructuralSpan(start, end token.Position, code errors.ErrorCode, msg string, args ...any) {
	p.setError(NewStructuralError(ErrorOpts{
		Code:          code,
		Message:       fmt.Sprintf(msg, args...),
		File:          p.filename,
		StartPosition: start,
		EndPosition:   end,
		SourceCode:    p.l.GetLineText(token.Token{StartPosition: start}),
	}))
}

// unexpected records a syntax error for token t, which appeared where one
// of the expected tokens or constructs should have been.
func (p *Parser) unexpected(context string, t token.Token, expected ...string) {
	code := errors.E1001
	switch {
	case t.Type == token.EOF:
		code = errors.E1007
	case len(expected) == 1 && expected[0] == "identifier":
		code = errors.E1006
	case len(expected) == 1 && expected[0] == "expression":
		code = errors.E1004
	case len(expected) == 1 && expected[0] == `";"`:
		code = errors.E1010
	}
	msg := fmt.Sprintf("unexpected %s while parsing %s", tokenDescription(t), context)
	if len(expected) > 0 {
		msg += fmt.Sprintf(" (expected %s)", joinExpected(expected))
	}
	var hint string
	if t.Type == token.IDENT {
		var words []string
		for _, e := range expected {
			if w, ok := keywordFromExpected(e); ok {
				words = append(words, w)
			}
		}
		hint = errors.Hint(t.Literal, words...)
	}
	p.setError(NewSyntaxError(ErrorOpts{
		Code:          code,
		Message:       msg,
		Expected:      expected,
		Hint:          hint,
		File:          p.filename,
		StartPosition: t.StartPosition,
		EndPosition:   t.EndPosition,
		SourceCode:    p.l.GetLineText(t),
	}))
}

// peekError raises an error if the next token is not the expected type.
func (p *Parser) peekError(context string, expected token.Type, got token.Token) {
	p.unexpected(context, got, tokenTypeDescription(expected))
}

// curTokenIs returns true if the current token has the given type.
func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

// peekTokenIs returns true if the next token has the given type.
func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

// expectPeek validates if the next token is of the given type, and advances if
// it is. If it's a different type, then an error is stored.
func (p *Parser) expectPeek(context string, t token.Type) bool {
	if p.err != nil {
		return false
	}
	if p.peekTokenIs(t) {
		p.nextToken()
		return p.err == nil
	}
	p.peekError(context, t, p.peekToken)
	return false
}

// expectKeyword is expectPeek for a contextual keyword.
func (p *Parser) expectKeyword(context, word string) bool {
	if p.err != nil {
		return false
	}
	if p.peekToken.Is(word) {
		p.nextToken()
		return p.err == nil
	}
	p.unexpected(context, p.peekToken, quoteKeyword(word))
	return false
}

// advance moves to the next token and reports whether parsing may go on.
func (p *Parser) advance() bool {
	p.nextToken()
	return p.err == nil
}

// optionalSemicolon consumes a ";" if one follows and returns its position.
func (p *Parser) optionalSemicolon() token.Position {
	if p.err == nil && p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		return p.curToken.StartPosition
	}
	return token.NoPos
}

// expectSemicolon requires a ";" to follow and returns its position.
func (p *Parser) expectSemicolon(context string) (token.Position, bool) {
	if !p.expectPeek(context, token.SEMICOLON) {
		return token.NoPos, false
	}
	return p.curToken.StartPosition, true
}

// enter increments the nesting depth, failing once it passes the limit.
// Every successful enter must be paired with a call to leave.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.maxDepth {
		p.depth--
		p.setTokenError(p.curToken, errors.E1009, "maximum nesting depth exceeded")
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

// lookahead returns up to n tokens following peekToken without consuming
// them. Fewer tokens are returned if the input ends or cannot be lexed.
func (p *Parser) lookahead(n int) []token.Token {
	state := p.l.SaveState()
	defer p.l.RestoreState(state)
	var toks []token.Token
	for len(toks) < n {
		tok, err := p.l.Next()
		if err != nil {
			break
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

// arrowAhead reports whether the "(" at curToken opens the parameter list
// of an arrow function: the matching ")" must be followed by "=>".
func (p *Parser) arrowAhead() bool {
	state := p.l.SaveState()
	defer p.l.RestoreState(state)
	depth := 1
	tok := p.peekToken
	for {
		switch tok.Type {
		case token.LPAREN, token.LBRACKET, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACKET, token.RBRACE:
			depth--
		case token.EOF:
			return false
		}
		next, err := p.l.Next()
		if err != nil {
			return false
		}
		if depth == 0 {
			return next.Type == token.ARROW
		}
		tok = next
	}
}

func joinExpected(expected []string) string {
	return strings.Join(expected, " or ")
}

func quoteKeyword(word string) string {
	return strconv.Quote(word)
}

// keywordFromExpected returns the keyword named by an expected-set entry
// such as `"from"`.
func keywordFromExpected(e string) (string, bool) {
	word, err := strconv.Unquote(e)
	if err != nil || !token.IsKeyword(word) {
		return "", false
	}
	return word, true
}

// newIdent creates a new Identifier node from a token.
func (p *Parser) newIdent(tok token.Token) *ast.Identifier {
	return &ast.Identifier{NamePos: tok.StartPosition, Name: tok.Literal}
}

// expectIdent advances to an identifier and returns it as a node.
func (p *Parser) expectIdent(context string) (*ast.Identifier, bool) {
	if !p.expectPeek(context, token.IDENT) {
		return nil, false
	}
	return p.newIdent(p.curToken), true
}
