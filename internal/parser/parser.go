// Package parser is the syntactic front end: a precedence-climbing
// recursive-descent engine that pulls tokens from an upstream channel,
// applies the syntax-level desugarings, and streams completed top-level
// expressions downstream while recovering from multiple syntax errors in
// a single pass.
package parser

import (
	"tsuki/internal/ast"
	"tsuki/token"
)

type Parser struct {
	// current and previous are the one-token cursor window; the grammar
	// never needs more lookahead than this.
	current  token.Token
	previous token.Token
	// recv delivers tokens from the lexer stage, recv blocking as needed.
	recv <-chan token.Token
	// send delivers each completed top-level expression to the next stage.
	send chan<- ast.Expr
	// errors accumulates diagnostics across recoveries.
	errors []ParseError
	// macros maps def'd names to their stored bodies for one session.
	macros map[string]ast.Expr
}

// New primes the cursor with the first token. A producer that is already
// closed reads as an immediate end of input, never a fault.
func New(recv <-chan token.Token, send chan<- ast.Expr) *Parser {
	p := &Parser{
		recv:   recv,
		send:   send,
		macros: make(map[string]ast.Expr),
	}
	tok, ok := <-recv
	if !ok {
		tok = token.Token{Type: token.EOF}
	}
	p.current = tok
	p.previous = tok
	return p
}

// Run drives the parse to completion, emitting each top-level expression
// as soon as it is built and exactly one End sentinel afterwards. The
// returned diagnostics are in source order.
func (p *Parser) Run() []ParseError {
	for !p.isAtEnd() {
		expr, err := p.expression()
		if err != nil {
			p.addError(err)
			p.synchronize()
			continue
		}
		p.send <- expr
	}
	p.send <- &ast.End{}
	return p.errors
}

// Errors reports the diagnostics recorded so far.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

func (p *Parser) advance() {
	if p.isAtEnd() {
		return
	}
	p.previous = p.current
	tok, ok := <-p.recv
	if !ok {
		// The producer went away mid-stream; treat it as an abrupt end
		// of input at the last known position.
		tok = token.Token{Type: token.EOF, Position: p.current.Position}
	}
	p.current = tok
}

func (p *Parser) check(t token.Type) bool {
	return p.current.Type == t
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the required token or fails with the given diagnostic.
func (p *Parser) expect(t token.Type, diag error) error {
	if p.check(t) {
		p.advance()
		return nil
	}
	return diag
}

func (p *Parser) isAtEnd() bool {
	return p.current.Type == token.EOF
}

func (p *Parser) addError(err error) {
	p.errors = append(p.errors, ParseError{
		Err:      err,
		Position: p.current.Position,
	})
}

// synchronize discards tokens until one that can begin a new top-level
// form, always advancing at least once so recovery makes progress.
func (p *Parser) synchronize() {
	if p.isAtEnd() {
		return
	}
	p.advance()

	for !p.isAtEnd() {
		p.advance()
		switch p.current.Type {
		case token.Func, token.Match, token.Def, token.Redef,
			token.Try, token.Unsafe, token.Id:
			return
		}
	}
}
