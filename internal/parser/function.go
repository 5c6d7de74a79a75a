package parser

import (
	"tsuki/internal/ast"
	"tsuki/token"
)

// decorator is one parsed @[...] entry: the decorator expression and its
// own declared arguments.
type decorator struct {
	name ast.Expr
	args []ast.CallArg
}

// function parses [public] func [name](params) body, then applies any
// decorators. Decorators fold left to right, so the first listed wraps
// the bare function and the last ends up outermost; a decorated function
// is always a named declaration, bound via an init assignment.
func (p *Parser) function(public bool, decorators []decorator) (ast.Expr, error) {
	if !public && p.match(token.Public) {
		public = true
	}
	if err := p.expect(token.Func, ErrExpectedFunc); err != nil {
		return nil, err
	}

	var name *token.Token
	if p.check(token.Id) {
		p.advance()
		tok := p.previous
		name = &tok
	}

	params, rest, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	body, err := p.expression()
	if err != nil {
		return nil, err
	}

	if len(decorators) == 0 {
		return &ast.Func{
			Public: public,
			Name:   name,
			Params: params,
			Rest:   rest,
			Body:   body,
		}, nil
	}

	// The decorated value starts as an anonymous function; each decorator
	// call receives the previous result first, then its own arguments.
	right := ast.Expr(&ast.Func{Params: params, Rest: rest, Body: body})
	for _, d := range decorators {
		args := make([]ast.CallArg, 0, len(d.args)+1)
		args = append(args, ast.CallArg{Value: right})
		args = append(args, d.args...)
		right = &ast.Call{Callee: d.name, Args: args, Token: p.previous}
	}

	if name == nil {
		return nil, ErrExpectedFuncName
	}
	return &ast.Assign{
		Init:   true,
		Public: public,
		Token:  *name,
		Left:   &ast.Variable{Name: *name},
		Right:  right,
	}, nil
}

// parseDecorators parses the bracketed list after a consumed '@'.
func (p *Parser) parseDecorators() ([]decorator, error) {
	if err := p.expect(token.LBracket, ErrExpectedLBracket); err != nil {
		return nil, err
	}

	var decorators []decorator
	for !p.check(token.RBracket) {
		name := &ast.Variable{Name: p.current}
		p.advance()

		var args []ast.CallArg
		if p.match(token.LParen) {
			if !p.check(token.RParen) {
				arg, err := p.parseArg()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				for p.match(token.Comma) {
					arg, err := p.parseArg()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
				}
			}
			if err := p.expect(token.RParen, ErrExpectedRParen); err != nil {
				return nil, err
			}
		}

		decorators = append(decorators, decorator{name: name, args: args})
		if !p.match(token.Comma) {
			break
		}
	}
	if err := p.expect(token.RBracket, ErrExpectedRBracket); err != nil {
		return nil, err
	}
	return decorators, nil
}

// parseParams parses a parenthesized parameter list. A parameter followed
// by '+' becomes the variadic rest parameter and must be last.
func (p *Parser) parseParams() ([]token.Token, *token.Token, error) {
	if err := p.expect(token.LParen, ErrExpectedLParen); err != nil {
		return nil, nil, err
	}

	var params []token.Token
	var rest *token.Token
	if !p.check(token.RParen) {
		for {
			if rest != nil {
				return nil, nil, ErrRestParamNotLast
			}
			if p.check(token.Id) {
				p.advance()
				param := p.previous
				if p.match(token.Plus) {
					rest = &param
				} else {
					params = append(params, param)
				}
			} else if p.check(token.Underscore) {
				p.advance()
				params = append(params, p.previous)
			}
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if err := p.expect(token.RParen, ErrExpectedRParen); err != nil {
		return nil, nil, err
	}
	return params, rest, nil
}
