// Package tsfront parses a small TypeScript-like language into a syntax
// tree. It ties together the lexer, the parser and the diagnostic types:
//
//	program, err := tsfront.Parse(src, tsfront.WithFilename("main.ts"))
//	if err != nil {
//		d := tsfront.Diagnose(err)
//		fmt.Println(d)
//	}
//
// Parsing is fail-fast. A single source yields either a complete tree or
// exactly one diagnostic.
package tsfront

import (
	stderrors "errors"
	"fmt"
	"slices"

	"github.com/cloudcmds/tsfront/ast"
	"github.com/cloudcmds/tsfront/internal/lexer"
	"github.com/cloudcmds/tsfront/internal/token"
	"github.com/cloudcmds/tsfront/parser"
	"github.com/hashicorp/go-multierror"
)

// Option configures parsing.
type Option func(*options)

type options struct {
	filename string
	maxDepth int
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) parserOpts() []parser.Option {
	var opts []parser.Option
	if o.filename != "" {
		opts = append(opts, parser.WithFilename(o.filename))
	}
	if o.maxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(o.maxDepth))
	}
	return opts
}

// WithFilename sets the filename reported in positions and diagnostics.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithMaxDepth limits how deeply statements and expressions may nest.
// Values less than one keep the parser default.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// Parse parses source into a program.
func Parse(source string, opts ...Option) (*ast.Program, error) {
	return parser.Parse(source, collectOptions(opts...).parserOpts()...)
}

// Token is a lexed token as exposed outside the module.
type Token struct {
	Type    string `json:"type"`
	Literal string `json:"literal,omitempty"`
	Offset  int    `json:"offset"`
	Line    int    `json:"line"`   // 1-indexed
	Column  int    `json:"column"` // 1-indexed
}

func (t Token) String() string {
	if t.Literal == "" || t.Literal == t.Type {
		return fmt.Sprintf("%d:%d %s", t.Line, t.Column, t.Type)
	}
	return fmt.Sprintf("%d:%d %s %s", t.Line, t.Column, t.Type, t.Literal)
}

// Tokenize lexes source without parsing it. The final token is always
// EOF. A lexical failure is returned as a *parser.LexicalError.
func Tokenize(source string, opts ...Option) ([]Token, error) {
	o := collectOptions(opts...)
	l := lexer.New(source)
	l.SetFilename(o.filename)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			errOpts := parser.ErrorOpts{
				Cause:         err,
				File:          o.filename,
				StartPosition: tok.StartPosition,
				EndPosition:   tok.StartPosition.Advance(1),
				SourceCode:    l.GetLineText(tok),
			}
			var lexErr *lexer.Error
			if stderrors.As(err, &lexErr) {
				errOpts.Code = lexErr.Code
			}
			return nil, parser.NewLexicalError(errOpts)
		}
		tokens = append(tokens, Token{
			Type:    string(tok.Type),
			Literal: tok.Literal,
			Offset:  tok.StartPosition.Char,
			Line:    tok.StartPosition.LineNumber(),
			Column:  tok.StartPosition.ColumnNumber(),
		})
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

// Source is one named input to ParseAll.
type Source struct {
	Name string
	Code string
}

// ParseAll parses each source independently. The returned slice is
// parallel to sources, with nil entries for sources that failed. All
// failures are collected into a single *multierror.Error.
func ParseAll(sources []Source, opts ...Option) ([]*ast.Program, error) {
	programs := make([]*ast.Program, len(sources))
	var result *multierror.Error
	for i, src := range sources {
		program, err := Parse(src.Code, append(slices.Clone(opts), WithFilename(src.Name))...)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		programs[i] = program
	}
	return programs, result.ErrorOrNil()
}

// Diagnostic is a flat, serializable description of a parse failure.
type Diagnostic struct {
	Kind       string   `json:"kind"`
	Structural bool     `json:"structural,omitempty"` // a construct's rule failed, e.g. an invalid assignment target
	Code       string   `json:"code,omitempty"`
	Message    string   `json:"message"`
	Expected   []string `json:"expected,omitempty"`
	Hint       string   `json:"hint,omitempty"`
	File       string   `json:"file,omitempty"`
	Offset     int      `json:"offset"`
	Line       int      `json:"line"`   // 1-indexed
	Column     int      `json:"column"` // 1-indexed
}

func (d *Diagnostic) String() string {
	kind := d.Kind
	if d.Code != "" {
		kind += "[" + d.Code + "]"
	}
	loc := fmt.Sprintf("%d:%d", d.Line, d.Column)
	if d.File != "" {
		loc = d.File + ":" + loc
	}
	return fmt.Sprintf("%s: %s: %s", loc, kind, d.Message)
}

// Diagnose converts an error returned by Parse or Tokenize into a
// Diagnostic. Errors that did not come from the parser are reported with
// kind "error" and no position. A nil error gives a nil Diagnostic.
func Diagnose(err error) *Diagnostic {
	if err == nil {
		return nil
	}
	var perr parser.ParserError
	if !stderrors.As(err, &perr) {
		return &Diagnostic{Kind: "error", Message: err.Error()}
	}
	var structErr *parser.StructuralError
	start := perr.StartPosition()
	return &Diagnostic{
		Kind:       perr.Type(),
		Structural: stderrors.As(err, &structErr),
		Code:       string(perr.Code()),
		Message:    perr.Message(),
		Expected:   perr.Expected(),
		Hint:       perr.Hint(),
		File:       perr.File(),
		Offset:     start.Char,
		Line:       start.LineNumber(),
		Column:     start.ColumnNumber(),
	}
}

// Diagnostics flattens err into one Diagnostic per failure. It accepts the
// aggregated error returned by ParseAll as well as single errors.
func Diagnostics(err error) []*Diagnostic {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if !stderrors.As(err, &merr) {
		return []*Diagnostic{Diagnose(err)}
	}
	diags := make([]*Diagnostic, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		diags = append(diags, Diagnose(e))
	}
	return diags
}
