package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats errors with colors and a compiler-style layout.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

// Colors used for error formatting
var (
	colorError     = color.New(color.FgRed)
	colorErrorBold = color.New(color.FgHiRed, color.Bold)
	colorCode      = color.New(color.FgHiBlack)
	colorLocation  = color.New(color.FgCyan)
	colorPipe      = color.New(color.FgHiBlack)
	colorSource    = color.New(color.FgWhite)
	colorCaret     = color.New(color.FgHiRed)
	colorHint      = color.New(color.FgHiYellow)
	colorNote      = color.New(color.FgHiBlue)
)

func init() {
	// Whether to color is decided per Formatter, not by fatih/color's
	// terminal detection.
	for _, c := range []*color.Color{
		colorError, colorErrorBold, colorCode, colorLocation, colorPipe,
		colorSource, colorCaret, colorHint, colorNote,
	} {
		c.EnableColor()
	}
}

// FormattedError represents an error ready for display.
type FormattedError struct {
	Code        ErrorCode
	Kind        string // "error", "syntax error", "lexical error", etc.
	Message     string
	Filename    string
	Line        int
	Column      int
	EndColumn   int               // exclusive; for multi-character underlines
	SourceLines []SourceLineEntry // lines shown for context
	Hint        string            // "Did you mean?" suggestion
	Note        string            // additional context
}

// SourceLineEntry represents a line of source code with its number.
type SourceLineEntry struct {
	Number int
	Text   string
	IsMain bool // True if this is the line with the error
}

// Location returns the source location the error points at.
func (e *FormattedError) Location() SourceLocation {
	loc := SourceLocation{Filename: e.Filename, Line: e.Line, Column: e.Column, EndColumn: e.EndColumn}
	for _, line := range e.SourceLines {
		if line.IsMain {
			loc.Source = line.Text
		}
	}
	return loc
}

func (f *Formatter) paint(c *color.Color, s string) string {
	if !f.UseColor {
		return s
	}
	return c.Sprint(s)
}

// Format formats the error as a string using a consistent Rust-like style.
func (f *Formatter) Format(err *FormattedError) string {
	return f.FormatWithPrefix(err, "")
}

// FormatWithPrefix formats the error with an optional prefix like "[1/5]".
// The prefix is only shown when the error has no code.
func (f *Formatter) FormatWithPrefix(err *FormattedError, prefix string) string {
	var b strings.Builder

	lineNumWidth := 2
	for _, line := range err.SourceLines {
		if w := len(fmt.Sprintf("%d", line.Number)); w > lineNumWidth {
			lineNumWidth = w
		}
	}

	f.writeHeader(&b, err, prefix)
	f.writeLocation(&b, err, lineNumWidth)
	f.writeSource(&b, err, lineNumWidth)
	if err.Hint != "" {
		f.writeAnnotation(&b, colorHint, "hint", err.Hint, lineNumWidth, true)
	}
	if err.Note != "" {
		f.writeAnnotation(&b, colorNote, "note", err.Note, lineNumWidth, err.Hint == "")
	}
	return b.String()
}

func (f *Formatter) writeHeader(b *strings.Builder, err *FormattedError, prefix string) {
	label := "error"
	if err.Kind != "" {
		label = err.Kind
	}
	b.WriteString(f.paint(colorErrorBold, label))

	switch {
	case err.Code != "":
		b.WriteString(f.paint(colorCode, "["+string(err.Code)+"]"))
	case prefix != "":
		b.WriteString(f.paint(colorCode, "["+prefix+"]"))
	}

	b.WriteString(f.paint(colorError, ": "))
	b.WriteString(err.Message)
	b.WriteString("\n")
}

func (f *Formatter) writeLocation(b *strings.Builder, err *FormattedError, lineNumWidth int) {
	if err.Line == 0 && err.Filename == "" {
		return
	}
	loc := err.Location()
	text := loc.String()
	if loc.Line == 0 {
		text = loc.Filename
	}
	b.WriteString(strings.Repeat(" ", lineNumWidth))
	b.WriteString(f.paint(colorLocation, "-->"))
	b.WriteString(" ")
	b.WriteString(f.paint(colorLocation, text))
	b.WriteString("\n")
}

func (f *Formatter) writeSource(b *strings.Builder, err *FormattedError, lineNumWidth int) {
	if len(err.SourceLines) == 0 {
		return
	}
	padding := strings.Repeat(" ", lineNumWidth)

	b.WriteString(padding)
	b.WriteString(f.paint(colorPipe, " |"))
	b.WriteString("\n")

	for _, line := range err.SourceLines {
		b.WriteString(f.paint(colorPipe, fmt.Sprintf("%*d | ", lineNumWidth, line.Number)))
		b.WriteString(f.paint(colorSource, line.Text))
		b.WriteString("\n")

		if !line.IsMain || err.Column <= 0 {
			continue
		}
		b.WriteString(padding)
		b.WriteString(f.paint(colorPipe, " | "))
		b.WriteString(caretPadding(line.Text, err.Column-1))
		caretLen := 1
		if err.EndColumn > err.Column {
			caretLen = err.EndColumn - err.Column
		}
		b.WriteString(f.paint(colorCaret, strings.Repeat("^", caretLen)))
		b.WriteString("\n")
	}
}

// caretPadding returns whitespace that lines up with the first n bytes of
// text, keeping tabs so the caret sits under the right column.
func caretPadding(text string, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i < len(text) && text[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (f *Formatter) writeAnnotation(b *strings.Builder, c *color.Color, label, text string, lineNumWidth int, separate bool) {
	padding := strings.Repeat(" ", lineNumWidth)
	if separate {
		b.WriteString(padding)
		b.WriteString(f.paint(colorPipe, " |"))
		b.WriteString("\n")
	}
	b.WriteString(padding)
	b.WriteString(f.paint(colorPipe, " = "))
	b.WriteString(f.paint(c, label+": "))
	b.WriteString(text)
	b.WriteString("\n")
}

// FormatMultiple formats multiple errors with consistent styling.
func (f *Formatter) FormatMultiple(errs []*FormattedError) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return f.Format(errs[0])
	}

	var b strings.Builder
	total := len(errs)
	for i, err := range errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(f.FormatWithPrefix(err, fmt.Sprintf("%d/%d", i+1, total)))
	}
	b.WriteString("\n")
	b.WriteString(f.paint(colorErrorBold, fmt.Sprintf("found %d errors", total)))
	b.WriteString("\n")
	return b.String()
}
