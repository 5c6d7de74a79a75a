package parser

import (
	"strconv"

	"tsuki/internal/ast"
	"tsuki/token"
)

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.True, token.False):
		tok := p.previous
		return &ast.BoolLiteral{Token: tok, Value: tok.Type == token.True}, nil

	case p.match(token.Underscore):
		return &ast.Underscore{Token: p.previous}, nil

	case p.match(token.Null):
		return &ast.Null{Token: p.previous}, nil

	case p.match(token.Int):
		tok := p.previous
		value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, ErrInvalidNumber
		}
		return &ast.IntegerLiteral{Token: tok, Value: value}, nil

	case p.match(token.Float):
		tok := p.previous
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, ErrInvalidNumber
		}
		return &ast.FloatLiteral{Token: tok, Value: value}, nil

	case p.match(token.Str):
		tok := p.previous
		return &ast.StringLiteral{Token: tok, Value: tok.Lexeme}, nil

	case p.match(token.Atom):
		tok := p.previous
		return &ast.AtomLiteral{Token: tok, Value: tok.Lexeme}, nil

	case p.match(token.Id):
		return &ast.Variable{Name: p.previous}, nil

	case p.match(token.LParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RParen, ErrExpectedRParen); err != nil {
			return nil, err
		}
		return &ast.Group{Expr: expr}, nil

	case p.match(token.LBracket):
		return p.listLiteral()

	case p.match(token.LBrace):
		return p.objectOrBlock()

	case p.match(token.Arrow):
		// Shorthand anonymous functions take no parameters.
		body, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.Func{Body: body}, nil

	case p.check(token.Func):
		return p.function(false, nil)

	case p.match(token.Public):
		return p.function(true, nil)

	case p.match(token.At):
		decorators, err := p.parseDecorators()
		if err != nil {
			return nil, err
		}
		return p.function(false, decorators)

	case p.match(token.Match):
		return p.matchExpr()

	case p.match(token.Try):
		return p.tryExpr()

	case p.match(token.Unsafe):
		tok := p.previous
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.Unsafe{Token: tok, Expr: expr}, nil

	case p.match(token.Dollar):
		tok := p.previous
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.Shell{Token: tok, Expr: expr}, nil

	case p.match(token.Def):
		return p.macroDef()

	case p.match(token.Redef):
		return p.macroRedef()

	case p.match(token.Hash):
		return p.macroUse()
	}

	return nil, ErrUnexpectedToken
}

func (p *Parser) listLiteral() (ast.Expr, error) {
	tok := p.previous
	var values []ast.Expr
	for !p.check(token.RBracket) && !p.isAtEnd() {
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
		// A trailing comma before ']' is tolerated.
		if p.check(token.RBracket) || !p.match(token.Comma) {
			break
		}
	}
	if err := p.expect(token.RBracket, ErrExpectedRBracket); err != nil {
		return nil, err
	}
	return &ast.ListLiteral{Token: tok, Values: values}, nil
}

// objectOrBlock disambiguates the two brace forms: empty braces are always
// an empty object (an empty block has no syntax), and otherwise a ':'
// after the first expression commits to an object literal.
func (p *Parser) objectOrBlock() (ast.Expr, error) {
	brace := p.previous

	if p.check(token.RBrace) {
		p.advance()
		return &ast.ObjectLiteral{Token: brace}, nil
	}

	first, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.isAtEnd() {
		return nil, ErrUnexpectedEndOfInput
	}

	if p.match(token.Colon) {
		v, ok := first.(*ast.Variable)
		if !ok {
			return nil, ErrExpectedIdentifier
		}
		keys := []token.Token{v.Name}
		var values []ast.Expr

		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		values = append(values, value)

		if p.match(token.Comma) {
			for !p.check(token.RBrace) && !p.isAtEnd() {
				// Later keys must be raw identifiers, not expressions.
				if err := p.expect(token.Id, ErrExpectedIdentifier); err != nil {
					return nil, err
				}
				keys = append(keys, p.previous)
				if err := p.expect(token.Colon, ErrExpectedColon); err != nil {
					return nil, err
				}
				value, err := p.expression()
				if err != nil {
					return nil, err
				}
				values = append(values, value)
				if p.check(token.RBrace) || !p.match(token.Comma) {
					break
				}
			}
		}

		if err := p.expect(token.RBrace, ErrExpectedRBrace); err != nil {
			return nil, err
		}
		return &ast.ObjectLiteral{Token: v.Name, Keys: keys, Values: values}, nil
	}

	// No ':' after the first expression, so this is a block; expressions
	// follow each other with no separator until '}'.
	exprs := []ast.Expr{first}
	for !p.check(token.RBrace) && !p.isAtEnd() {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	if err := p.expect(token.RBrace, ErrExpectedRBrace); err != nil {
		return nil, err
	}
	return &ast.Block{Token: p.previous, Exprs: exprs}, nil
}

func (p *Parser) matchExpr() (ast.Expr, error) {
	tok := p.previous
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.LBrace, ErrExpectedLBrace); err != nil {
		return nil, err
	}

	var branches []ast.MatchBranch
	for !p.check(token.RBrace) {
		target, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.Arrow, ErrExpectedArrow); err != nil {
			return nil, err
		}
		body, err := p.expression()
		if err != nil {
			return nil, err
		}
		branches = append(branches, ast.MatchBranch{Target: target, Body: body})
		if !p.match(token.Comma) {
			break
		}
	}
	if err := p.expect(token.RBrace, ErrExpectedRBrace); err != nil {
		return nil, err
	}

	return &ast.Match{Token: tok, Condition: condition, Branches: branches}, nil
}

// tryExpr desugars try RESULT HANDLER [else SUCCESS] into
// match error?(RESULT) { true -> HANDLER, false -> SUCCESS-or-null }.
// error? is an ordinary free variable left to later stages to resolve.
func (p *Parser) tryExpr() (ast.Expr, error) {
	tok := p.previous
	result, err := p.expression()
	if err != nil {
		return nil, err
	}
	handler, err := p.expression()
	if err != nil {
		return nil, err
	}
	var success ast.Expr
	if p.check(token.Else) {
		if err := p.expect(token.Else, ErrExpectedElse); err != nil {
			return nil, err
		}
		success, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if success == nil {
		success = &ast.Null{Token: tok}
	}

	condition := &ast.Call{
		Callee: &ast.Variable{Name: token.Token{
			Type:     token.Id,
			Lexeme:   "error?",
			Position: tok.Position,
		}},
		Args:  []ast.CallArg{{Value: result}},
		Token: tok,
	}
	return &ast.Match{
		Token:     tok,
		Condition: condition,
		Branches: []ast.MatchBranch{
			{Target: &ast.BoolLiteral{Token: tok, Value: true}, Body: handler},
			{Target: &ast.BoolLiteral{Token: tok, Value: false}, Body: success},
		},
	}, nil
}
