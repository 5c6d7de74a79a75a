// Package ast defines the expression tree produced by the parser and its
// canonical S-expression form used for snapshot testing and the CLI dump.
package ast

import "tsuki/token"

// Expr is the closed set of syntactic forms. Every non-sentinel variant
// carries the token(s) needed to report positions later.
type Expr interface {
	Pos() token.Position
	String() string
	expr()
}

// Binary is an arithmetic or comparison operator application.
type Binary struct {
	Left  Expr
	Right Expr
	Op    token.Token
}

// Logical is a short-circuiting operator application (&&, ||, and, or).
type Logical struct {
	Left  Expr
	Right Expr
	Op    token.Token
}

// Unary is a prefix operator application.
type Unary struct {
	Right Expr
	Op    token.Token
}

// Group is a parenthesized sub-expression, preserved rather than collapsed
// so printing reflects the source structure.
type Group struct {
	Expr Expr
}

type StringLiteral struct {
	Token token.Token
	Value string
}

type FloatLiteral struct {
	Token token.Token
	Value float64
}

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

type BoolLiteral struct {
	Token token.Token
	Value bool
}

// AtomLiteral is an interned symbol literal, written :name.
type AtomLiteral struct {
	Token token.Token
	Value string
}

// Underscore is the wildcard pattern and placeholder parameter.
type Underscore struct {
	Token token.Token
}

type Null struct {
	Token token.Token
}

type ListLiteral struct {
	Token  token.Token
	Values []Expr
}

// ObjectLiteral keeps Keys and Values as parallel slices of equal length;
// insertion order is preserved for reproducible printing.
type ObjectLiteral struct {
	Token  token.Token
	Keys   []token.Token
	Values []Expr
}

// Variable is a bare identifier reference.
type Variable struct {
	Name token.Token
}

// Assign is a binding or reassignment. Left is restricted by the parser to
// a Variable or a list/object pattern of variables.
type Assign struct {
	Init    bool
	Public  bool
	Mutable bool
	Token   token.Token
	Left    Expr
	Right   Expr
}

// CallArg is one argument position; Unpack marks a ...expr spread.
type CallArg struct {
	Value  Expr
	Unpack bool
}

type Call struct {
	Callee Expr
	Args   []CallArg
	Token  token.Token
}

// Get is member access or list indexing, instance.value.
type Get struct {
	Instance Expr
	Value    Expr
	Token    token.Token
}

// Set is member assignment; Token names the member being assigned.
type Set struct {
	Instance Expr
	Token    token.Token
	Value    Expr
}

// Func is a function literal. A nil Name means an anonymous function; a
// non-nil Rest is the variadic trailing parameter.
type Func struct {
	Public bool
	Name   *token.Token
	Params []token.Token
	Rest   *token.Token
	Body   Expr
}

// MatchBranch order is semantically significant: the first structurally
// successful target wins.
type MatchBranch struct {
	Target Expr
	Body   Expr
}

type Match struct {
	Token     token.Token
	Condition Expr
	Branches  []MatchBranch
}

// Block is sequential composition of expressions.
type Block struct {
	Token token.Token
	Exprs []Expr
}

// Unsafe marks an expression whose runtime errors are recoverable.
type Unsafe struct {
	Token token.Token
	Expr  Expr
}

// Shell wraps an expression to be run as a shell command.
type Shell struct {
	Token token.Token
	Expr  Expr
}

// End is the stream-completion sentinel, not a real syntax node.
type End struct{}
