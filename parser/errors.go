package parser

import (
	"fmt"
	"strings"

	"github.com/cloudcmds/tsfront/errors"
	"github.com/cloudcmds/tsfront/internal/token"
)

// Error kinds, as reported by ParserError.Type.
const (
	LexicalErrorType = "lexical error"
	SyntaxErrorType  = "syntax error"
)

// ErrorOpts is a struct that holds a variety of error data.
// All fields are optional, although one of `Cause` or `Message`
// are recommended. If `Cause` is set, `Message` will be ignored.
type ErrorOpts struct {
	ErrType       string
	Code          errors.ErrorCode
	Message       string
	Cause         error
	Expected      []string
	Hint          string
	File          string
	StartPosition token.Position
	EndPosition   token.Position
	SourceCode    string
}

// NewParserError returns a new BaseParserError populated with
// the given error data.
func NewParserError(opts ErrorOpts) *BaseParserError {
	return &BaseParserError{
		errType:       opts.ErrType,
		code:          opts.Code,
		message:       opts.Message,
		cause:         opts.Cause,
		expected:      opts.Expected,
		hint:          opts.Hint,
		file:          opts.File,
		startPosition: opts.StartPosition,
		endPosition:   opts.EndPosition,
		sourceCode:    opts.SourceCode,
	}
}

// ParserError is an interface that all parser errors implement.
type ParserError interface {
	Type() string
	Code() errors.ErrorCode
	Message() string
	Cause() error
	Expected() []string
	Hint() string
	File() string
	StartPosition() token.Position
	EndPosition() token.Position
	SourceCode() string
	Error() string
	ToFormatted() *errors.FormattedError
	errors.FriendlyError
}

// BaseParserError is the simplest implementation of ParserError.
type BaseParserError struct {
	// Type of the error, e.g. "syntax error"
	errType string
	// Diagnostic code
	code errors.ErrorCode
	// The error message
	message string
	// The wrapped error
	cause error
	// Tokens or constructs that would have been accepted
	expected []string
	// Optional "did you mean" suggestion
	hint string
	// File where the error occurred
	file string
	// Start position of the error in the input string
	startPosition token.Position
	// End position of the error in the input string
	endPosition token.Position
	// Relevant line of source code text
	sourceCode string
}

func (e *BaseParserError) Error() string {
	var msg string
	if e.cause != nil {
		msg = e.cause.Error()
	} else if e.message != "" {
		msg = e.message
	}
	if e.errType != "" {
		msg = fmt.Sprintf("%s: %s", e.errType, msg)
	}
	return msg
}

func (e *BaseParserError) FriendlyErrorMessage() string {
	formatter := errors.NewFormatter(false)
	return formatter.Format(e.ToFormatted())
}

// ToFormatted converts the parser error to a FormattedError for display.
func (e *BaseParserError) ToFormatted() *errors.FormattedError {
	start := e.StartPosition()
	end := e.EndPosition()

	endColumn := 0
	if end.Line == start.Line && end.Char > start.Char {
		endColumn = end.ColumnNumber()
	}
	var note string
	if len(e.expected) > 0 {
		note = "expected " + strings.Join(e.expected, " or ")
	}
	return &errors.FormattedError{
		Code:      e.code,
		Kind:      e.errType,
		Message:   e.Message(),
		Filename:  e.file,
		Line:      start.LineNumber(),
		Column:    start.ColumnNumber(),
		EndColumn: endColumn,
		SourceLines: []errors.SourceLineEntry{
			{Number: start.LineNumber(), Text: e.sourceCode, IsMain: true},
		},
		Hint: e.hint,
		Note: note,
	}
}

func (e *BaseParserError) Cause() error {
	return e.cause
}

// Message returns the error message without the kind prefix.
func (e *BaseParserError) Message() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return e.message
}

func (e *BaseParserError) Code() errors.ErrorCode {
	return e.code
}

func (e *BaseParserError) Expected() []string {
	return e.expected
}

func (e *BaseParserError) Hint() string {
	return e.hint
}

func (e *BaseParserError) Line() int {
	return e.startPosition.Line
}

func (e *BaseParserError) StartPosition() token.Position {
	return e.startPosition
}

func (e *BaseParserError) EndPosition() token.Position {
	return e.endPosition
}

func (e *BaseParserError) File() string {
	return e.file
}

func (e *BaseParserError) SourceCode() string {
	return e.sourceCode
}

func (e *BaseParserError) Unwrap() error {
	return e.cause
}

func (e *BaseParserError) Type() string {
	return e.errType
}

// LexicalError reports input the lexer could not tokenize. The cause is
// the underlying *lexer.Error.
type LexicalError struct {
	*BaseParserError
}

// NewLexicalError returns a new LexicalError populated with the given error data.
func NewLexicalError(opts ErrorOpts) *LexicalError {
	opts.ErrType = LexicalErrorType
	return &LexicalError{BaseParserError: NewParserError(opts)}
}

// SyntaxError reports a token that does not fit the grammar at its
// position.
type SyntaxError struct {
	*BaseParserError
}

// NewSyntaxError returns a new SyntaxError populated with the given error data
func NewSyntaxError(opts ErrorOpts) *SyntaxError {
	opts.ErrType = SyntaxErrorType
	return &SyntaxError{BaseParserError: NewParserError(opts)}
}

// StructuralError reports a construct that is well-formed token by token
// but breaks a rule of the production it belongs to, such as assigning
// to a literal. It is reported as a syntax error and unwraps to one, so
// errors.As finds a *SyntaxError in either case.
type StructuralError struct {
	*SyntaxError
}

// NewStructuralError returns a new StructuralError populated with the given
// error data.
func NewStructuralError(opts ErrorOpts) *StructuralError {
	return &StructuralError{SyntaxError: NewSyntaxError(opts)}
}

func (e *StructuralError) Unwrap() error {
	return e.SyntaxError
}

func tokenTypeDescription(t token.Type) string {
	switch t {
	case token.EOF:
		return "end of file"
	case token.IDENT:
		return "identifier"
	case token.INT:
		return "integer"
	case token.STRING:
		return "string"
	case token.TEMPLATE:
		return "template string"
	default:
		return fmt.Sprintf("%q", string(t))
	}
}

func tokenDescription(t token.Token) string {
	switch t.Type {
	case token.EOF:
		return "end of file"
	case token.STRING, token.TEMPLATE:
		return "string " + t.Literal
	default:
		if t.Literal == "" {
			return string(t.Type)
		}
		return fmt.Sprintf("%q", t.Literal)
	}
}
