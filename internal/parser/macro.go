package parser

import (
	"tsuki/internal/ast"
	"tsuki/token"
)

// macroDef handles `def NAME expr`. The body expression is captured
// unevaluated and the definition itself produces null.
func (p *Parser) macroDef() (ast.Expr, error) {
	if err := p.expect(token.Id, ErrExpectedIdentifier); err != nil {
		return nil, err
	}
	name := p.previous

	body, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, exists := p.macros[name.Lexeme]; exists {
		return nil, ErrMacroRedefined
	}
	p.macros[name.Lexeme] = body

	return &ast.Null{Token: name}, nil
}

// macroRedef handles `redef NAME expr`, replacing an existing definition.
func (p *Parser) macroRedef() (ast.Expr, error) {
	if err := p.expect(token.Id, ErrExpectedIdentifier); err != nil {
		return nil, err
	}
	name := p.previous

	body, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, exists := p.macros[name.Lexeme]; !exists {
		return nil, ErrMacroNotDefined
	}
	p.macros[name.Lexeme] = body

	return &ast.Null{Token: name}, nil
}

// macroUse handles `#NAME`, splicing a deep copy of the stored body so
// later redefinitions cannot mutate earlier expansions.
func (p *Parser) macroUse() (ast.Expr, error) {
	if err := p.expect(token.Id, ErrExpectedIdentifier); err != nil {
		return nil, err
	}
	name := p.previous

	body, ok := p.macros[name.Lexeme]
	if !ok {
		return nil, ErrMacroUndefined
	}

	return ast.Clone(body), nil
}
