// Package repl implements the interactive read-parse-print loop.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"tsuki/internal/ast"
	"tsuki/internal/errors"
	"tsuki/internal/parser"
)

const PROMPT = ">> "

// Start reads one line at a time, parses it, and prints either the
// canonical form of each expression or the diagnostics.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		exprs, parseErrors, scanErrors := parser.ParseSource(line)
		if len(parseErrors) > 0 || len(scanErrors) > 0 {
			reporter := errors.NewReporter("repl", line)
			for _, err := range scanErrors {
				fmt.Fprint(out, reporter.FormatScanError(err))
			}
			for _, err := range parseErrors {
				fmt.Fprint(out, reporter.FormatParseError(err))
			}
			continue
		}

		fmt.Fprintln(out, ast.PrettyPrint(exprs))
	}
}
