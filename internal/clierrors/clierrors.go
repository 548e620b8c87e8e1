// Package clierrors formats lexer diagnostics for the CLI's --tokens
// dump: source context, line/column, and a caret pointing at the
// offending column. It is distinct from value.Error, which is an
// in-language result value that evaluation propagates, not a
// diagnostic the host prints.
package clierrors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-lispy/internal/lexer"
)

// SourceError pairs a lexer.Error with the file it came from, so it can
// be rendered with a line of context.
type SourceError struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// FromLexerErrors wraps every lexer.Error produced while scanning
// source from file.
func FromLexerErrors(errs []lexer.Error, source, file string) []*SourceError {
	out := make([]*SourceError, 0, len(errs))
	for _, e := range errs {
		out = append(out, &SourceError{Message: e.Message, Source: source, File: file, Pos: e.Pos})
	}
	return out
}

// Format renders the error as a file:line:column header, the offending
// source line, and a caret under the exact column.
func (e *SourceError) Format() string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: %s\n", e.File, e.Pos.Line, e.Pos.Column, e.Message)
	} else {
		fmt.Fprintf(&sb, "%d:%d: %s\n", e.Pos.Line, e.Pos.Column, e.Message)
	}

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", max(0, e.Pos.Column-1)))
		sb.WriteString("^\n")
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders every error in order, separated by a blank line.
func FormatAll(errs []*SourceError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Format()
	}
	return strings.Join(parts, "\n")
}
