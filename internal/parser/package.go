package parser

import (
	"tsuki/internal/ast"
	"tsuki/internal/lexer"
	"tsuki/token"
)

// ParseSource wires the full two-stage pipeline for one source unit:
// a scanner goroutine streaming tokens into the parser, and a collector
// draining expressions until the End sentinel. It returns the collected
// top-level expressions along with parse and scan diagnostics.
func ParseSource(source string) ([]ast.Expr, []ParseError, []lexer.ScanError) {
	tokens := make(chan token.Token)
	exprs := make(chan ast.Expr)

	scanner := lexer.NewScanner(source)
	go scanner.Stream(tokens)

	p := New(tokens, exprs)
	done := make(chan []ParseError, 1)
	go func() {
		done <- p.Run()
	}()

	var collected []ast.Expr
	for {
		expr := <-exprs
		if _, ok := expr.(*ast.End); ok {
			break
		}
		collected = append(collected, expr)
	}
	errs := <-done

	return collected, errs, scanner.Errors()
}
