// Package errors renders diagnostics.Diagnostic values with source context
// and a caret pointing at the offending column, for CLI and log output.
package errors

import (
	"fmt"
	"strings"

	"github.com/dmforge/constfold/internal/diagnostics"
)

// Formatted pairs a diagnostic with the source text and file name needed to
// render it. A driver run over a fixture typically builds one of these per
// diagnostic, sharing the same Source/File.
type Formatted struct {
	Diagnostic *diagnostics.Diagnostic
	Source     string
	File       string
}

// Format renders the diagnostic's header, source line and caret, and
// message. If color is true, ANSI codes highlight the caret and message.
func (f Formatted) Format(color bool) string {
	var sb strings.Builder

	pos := f.Diagnostic.Pos
	if f.File != "" {
		sb.WriteString(fmt.Sprintf("%s in %s:%d:%d\n", severityLabel(f.Diagnostic.Severity), f.File, pos.Line, pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s at %d:%d\n", severityLabel(f.Diagnostic.Severity), pos.Line, pos.Column))
	}

	if sourceLine := f.getSourceLine(pos.Line); sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+pos.Column-1))
		if color {
			sb.WriteString(caretColor(f.Diagnostic.Severity))
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(fmt.Sprintf("[%s] %s", f.Diagnostic.Kind, f.Diagnostic.Message))
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func severityLabel(s diagnostics.Severity) string {
	if s == diagnostics.SeverityWarning {
		return "Warning"
	}
	return "Error"
}

func caretColor(s diagnostics.Severity) string {
	if s == diagnostics.SeverityWarning {
		return "\033[1;33m" // Yellow bold
	}
	return "\033[1;31m" // Red bold
}

// getSourceLine extracts a 1-indexed line from f.Source.
func (f Formatted) getSourceLine(lineNum int) string {
	if f.Source == "" {
		return ""
	}
	lines := strings.Split(f.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders a batch of diagnostics sharing one source/file,
// separating errors visually and summarizing the count up front.
func FormatAll(diags []*diagnostics.Diagnostic, source, file string, color bool) string {
	if len(diags) == 0 {
		return ""
	}

	if len(diags) == 1 {
		return Formatted{Diagnostic: diags[0], Source: source, File: file}.Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("fold finished with %d diagnostic(s):\n\n", len(diags)))

	for i, d := range diags {
		sb.WriteString(fmt.Sprintf("[%d of %d]\n", i+1, len(diags)))
		sb.WriteString(Formatted{Diagnostic: d, Source: source, File: file}.Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}
