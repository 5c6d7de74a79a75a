package parser

import (
	"errors"
	"fmt"

	"tsuki/token"
)

// The diagnostic vocabulary is a fixed set of sentinel errors so tests can
// assert on kinds with errors.Is instead of matching message text.
var (
	ErrInvalidNumber        = errors.New("invalid number")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrChainedAssignment    = errors.New("assignment value should not be assignment")
	ErrObjectPatternValues  = errors.New("expected variable names or _ for object values")
	ErrListPatternElements  = errors.New("expected variable names or _ for elements")
	ErrInvalidAssignTarget  = errors.New("invalid assignment target")
	ErrExpectedVariable     = errors.New("expected a variable")
	ErrExpectedIdentifier   = errors.New("expected an identifier")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input inside block or object")
	ErrRestParamNotLast     = errors.New("required parameter cannot follow rest parameter")
	ErrExpectedFuncName     = errors.New("expected function name")
	ErrMacroRedefined       = errors.New("macro with the same name is already defined")
	ErrMacroNotDefined      = errors.New("macro with the same name is not defined")
	ErrMacroUndefined       = errors.New("macro undefined")

	ErrExpectedLParen   = errors.New("expected '('")
	ErrExpectedRParen   = errors.New("expected ')'")
	ErrExpectedLBracket = errors.New("expected '['")
	ErrExpectedRBracket = errors.New("expected ']'")
	ErrExpectedLBrace   = errors.New("expected '{'")
	ErrExpectedRBrace   = errors.New("expected '}'")
	ErrExpectedColon    = errors.New("expected ':'")
	ErrExpectedArrow    = errors.New("expected '->'")
	ErrExpectedElse     = errors.New("expected 'else'")
	ErrExpectedFunc     = errors.New("expected 'func'")
)

// ParseError is one recorded diagnostic: a sentinel error plus the position
// of the token the parser was looking at when the rule failed.
type ParseError struct {
	Err      error
	Position token.Position
}

func (e ParseError) Error() string {
	return e.Err.Error()
}

func (e ParseError) Unwrap() error {
	return e.Err
}

// Format renders the wire form used by the CLI:
// <filename>:<line>:<col> error: <message>
func (e ParseError) Format(filename string) string {
	return fmt.Sprintf("%s:%d:%d error: %s",
		filename, e.Position.Line, e.Position.Column, e.Err)
}
