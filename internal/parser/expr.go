package parser

import (
	"tsuki/internal/ast"
	"tsuki/token"
)

// The precedence ladder, loosest binding first. Every binary level is
// left-associative: parse one operand a level down, then fold operators
// of this level to the left.

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.orExpr()
	if err != nil {
		return nil, err
	}

	if p.check(token.Assign) || p.check(token.ColonEq) ||
		p.check(token.PipeEq) || p.check(token.DollarEq) {
		init := p.check(token.ColonEq) || p.check(token.PipeEq)
		public := p.check(token.PipeEq)
		mutable := p.check(token.DollarEq)
		p.advance()

		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		// Assignment does not chain: a bare assignment on the right is
		// rejected, though a parenthesized one is fine.
		if _, ok := value.(*ast.Assign); ok {
			return nil, ErrChainedAssignment
		}

		switch target := expr.(type) {
		case *ast.ObjectLiteral:
			for _, v := range target.Values {
				if !isPatternTarget(v) {
					return nil, ErrObjectPatternValues
				}
			}
			return &ast.Assign{
				Init: init, Public: public, Mutable: mutable,
				Token: target.Token, Left: expr, Right: value,
			}, nil
		case *ast.ListLiteral:
			for _, v := range target.Values {
				if !isPatternTarget(v) {
					return nil, ErrListPatternElements
				}
			}
			return &ast.Assign{
				Init: init, Public: public, Mutable: mutable,
				Token: target.Token, Left: expr, Right: value,
			}, nil
		case *ast.Variable:
			return &ast.Assign{
				Init: init, Public: public, Mutable: mutable,
				Token: target.Name, Left: expr, Right: value,
			}, nil
		case *ast.Get:
			// Member assignment bypasses Assign entirely.
			return &ast.Set{
				Instance: target.Instance,
				Token:    memberToken(target),
				Value:    value,
			}, nil
		default:
			return nil, ErrInvalidAssignTarget
		}
	}

	if p.match(token.PlusEq, token.MinusEq, token.MulEq, token.DivEq, token.ModEq) {
		op := p.previous
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		v, ok := expr.(*ast.Variable)
		if !ok {
			return nil, ErrExpectedVariable
		}
		// x += v desugars to x = (x OP v); the compound token survives as
		// the binary operator for the later stages to interpret.
		return &ast.Assign{
			Token: v.Name,
			Left:  expr,
			Right: &ast.Binary{Left: ast.Clone(expr), Right: value, Op: op},
		}, nil
	}

	if p.match(token.PlusPlus, token.MinusMinus) {
		op := p.previous
		v, ok := expr.(*ast.Variable)
		if !ok {
			return nil, ErrExpectedVariable
		}
		if op.Type == token.PlusPlus {
			op.Type = token.Plus
		} else {
			op.Type = token.Minus
		}
		return &ast.Assign{
			Token: v.Name,
			Left:  expr,
			Right: &ast.Binary{
				Left:  ast.Clone(expr),
				Right: &ast.IntegerLiteral{Token: op, Value: 1},
				Op:    op,
			},
		}, nil
	}

	return expr, nil
}

// isPatternTarget reports whether an element of a destructuring pattern is
// something a value can be bound to.
func isPatternTarget(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Variable, *ast.Get, *ast.Underscore:
		return true
	}
	return false
}

// memberToken picks the token naming the assigned member of a Get target;
// the '.' token is the fallback for exotic member expressions.
func memberToken(g *ast.Get) token.Token {
	switch v := g.Value.(type) {
	case *ast.Variable:
		return v.Name
	case *ast.IntegerLiteral:
		return v.Token
	case *ast.StringLiteral:
		return v.Token
	}
	return g.Token
}

func (p *Parser) orExpr() (ast.Expr, error) {
	expr, err := p.andExpr()
	if err != nil {
		return nil, err
	}
	for p.match(token.PipePipe, token.Or) {
		op := p.previous
		right, err := p.andExpr()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Right: right, Op: op}
	}
	return expr, nil
}

func (p *Parser) andExpr() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.AmpAmp, token.And) {
		op := p.previous
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Right: right, Op: op}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.NotEq, token.Eq) {
		op := p.previous
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Right: right, Op: op}
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(token.Greater, token.GreaterEq, token.Less, token.LessEq) {
		op := p.previous
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Right: right, Op: op}
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.Minus, token.Plus) {
		op := p.previous
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Right: right, Op: op}
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.Div, token.Mul, token.Mod) {
		op := p.previous
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Right: right, Op: op}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Not, token.Minus) {
		op := p.previous
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Right: right, Op: op}, nil
	}
	return p.callExpr(nil)
}

// callExpr is the postfix loop: calls, member access, the forward pipe and
// the ternary shorthand all bind at this level. piped, when non-nil, is an
// already-parsed expression a |> injected as the first argument of the
// next direct call.
func (p *Parser) callExpr(piped ast.Expr) (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		if p.match(token.LParen) {
			expr, err = p.finishCall(expr, piped)
			if err != nil {
				return nil, err
			}
			piped = nil
		} else if p.match(token.Dot) {
			// The member parses one level below assignment so that an '='
			// after the access stays outside the Get and can rewrite the
			// whole thing to a Set.
			tok := p.previous
			value, err := p.orExpr()
			if err != nil {
				return nil, err
			}
			expr = &ast.Get{Instance: expr, Value: value, Token: tok}
		} else if p.match(token.RightPipe) {
			// Hand the finished left operand to a fresh postfix parse;
			// that call owns any further chaining.
			return p.callExpr(expr)
		} else if p.match(token.Question) {
			expr, err = p.ternary(expr)
			if err != nil {
				return nil, err
			}
		} else {
			return expr, nil
		}
	}
}

// ternary desugars cond ? a : b into match cond { true -> a, _ -> b }.
func (p *Parser) ternary(cond ast.Expr) (ast.Expr, error) {
	tok := p.previous
	trueValue, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.Colon, ErrExpectedColon); err != nil {
		return nil, err
	}
	falseValue, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.Match{
		Token:     tok,
		Condition: cond,
		Branches: []ast.MatchBranch{
			{Target: &ast.BoolLiteral{Token: tok, Value: true}, Body: trueValue},
			{Target: &ast.Underscore{Token: tok}, Body: falseValue},
		},
	}, nil
}

// finishCall parses the argument list after a consumed '(' and the
// trailing-pipe forms that may follow the ')'.
func (p *Parser) finishCall(callee, piped ast.Expr) (ast.Expr, error) {
	var args []ast.CallArg
	if piped != nil {
		args = append(args, ast.CallArg{Value: piped})
	}

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
	tok := p.previous

	// call(...) <| expr appends one more positional argument.
	if p.match(token.LeftPipe) {
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, ast.CallArg{Value: value})
	}

	// call(...) <~ (params) body appends a trailing anonymous function.
	if p.match(token.CallbackPipe) {
		var params []token.Token
		var rest *token.Token
		if p.check(token.LParen) {
			var err error
			params, rest, err = p.parseParams()
			if err != nil {
				return nil, err
			}
		}
		body, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, ast.CallArg{
			Value: &ast.Func{Params: params, Rest: rest, Body: body},
		})
	}

	return &ast.Call{Callee: callee, Args: args, Token: tok}, nil
}

// parseArg parses one argument position, recognizing ...expr unpacking.
func (p *Parser) parseArg() (ast.CallArg, error) {
	if p.match(token.Ellipsis) {
		value, err := p.expression()
		return ast.CallArg{Value: value, Unpack: true}, err
	}
	value, err := p.expression()
	return ast.CallArg{Value: value}, err
}
