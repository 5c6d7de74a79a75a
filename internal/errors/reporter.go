// Package errors renders accumulated diagnostics against the original
// source text for terminal output.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tsuki/internal/lexer"
	"tsuki/internal/parser"
	"tsuki/token"
)

// Reporter formats diagnostics with their source line for one file.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatParseError renders one parser diagnostic:
//
//	<filename>:<line>:<col> error: <message>
//	<the source line>
func (r *Reporter) FormatParseError(err parser.ParseError) string {
	return r.format(err.Err.Error(), err.Position)
}

// FormatScanError renders one scanner diagnostic in the same shape.
func (r *Reporter) FormatScanError(err lexer.ScanError) string {
	return r.format(err.Message, err.Position)
}

func (r *Reporter) format(message string, pos token.Position) string {
	red := color.New(color.FgRed).SprintFunc()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s:%d:%d %s: %s\n",
		r.filename, pos.Line, pos.Column, red("error"), message))
	b.WriteString(r.sourceLine(pos.Line))
	b.WriteString("\n")
	return b.String()
}

func (r *Reporter) sourceLine(line int) string {
	if line < 1 || line > len(r.lines) {
		return ""
	}
	return r.lines[line-1]
}
