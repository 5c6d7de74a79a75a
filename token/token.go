// Package token defines the lexical vocabulary shared by the scanner,
// the parser and the canonical printer.
package token

// Type identifies the lexical class of a token.
type Type int

const (
	Illegal Type = iota
	EOF

	// Identifiers + literals
	Id
	Int
	Float
	Str
	Atom

	// Keywords
	Func
	Public
	Match
	Try
	Else
	Unsafe
	Def
	Redef
	True
	False
	Null
	Not
	And
	Or
	Underscore

	// Arithmetic operators
	Plus
	Minus
	Mul
	Div
	Mod
	PlusPlus
	MinusMinus

	// Compound assignment operators
	PlusEq
	MinusEq
	MulEq
	DivEq
	ModEq

	// Binding operators
	Assign
	ColonEq
	PipeEq
	DollarEq

	// Comparison operators
	Eq
	NotEq
	Less
	LessEq
	Greater
	GreaterEq

	// Logical operators
	Bang
	AmpAmp
	PipePipe

	// Pipes and arrows
	Arrow
	RightPipe
	LeftPipe
	CallbackPipe

	// Punctuation
	Ellipsis
	At
	Hash
	Dollar
	Question
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Comma
	Dot
	Colon
)

// names doubles as the canonical spelling the AST printer uses for
// operator tokens, so the operator entries are load-bearing.
var names = [...]string{
	Illegal:      "Illegal",
	EOF:          "EOF",
	Id:           "Id",
	Int:          "Int",
	Float:        "Float",
	Str:          "Str",
	Atom:         "Atom",
	Func:         "Func",
	Public:       "Public",
	Match:        "Match",
	Try:          "Try",
	Else:         "Else",
	Unsafe:       "Unsafe",
	Def:          "Def",
	Redef:        "Redef",
	True:         "True",
	False:        "False",
	Null:         "Null",
	Not:          "Not",
	And:          "And",
	Or:           "Or",
	Underscore:   "Underscore",
	Plus:         "Plus",
	Minus:        "Minus",
	Mul:          "Mul",
	Div:          "Div",
	Mod:          "Mod",
	PlusPlus:     "PlusPlus",
	MinusMinus:   "MinusMinus",
	PlusEq:       "PlusEq",
	MinusEq:      "MinusEq",
	MulEq:        "MulEq",
	DivEq:        "DivEq",
	ModEq:        "ModEq",
	Assign:       "Assign",
	ColonEq:      "ColonEq",
	PipeEq:       "PipeEq",
	DollarEq:     "DollarEq",
	Eq:           "Eq",
	NotEq:        "NotEq",
	Less:         "Less",
	LessEq:       "LessEq",
	Greater:      "Greater",
	GreaterEq:    "GreaterEq",
	Bang:         "Bang",
	AmpAmp:       "AmpAmp",
	PipePipe:     "PipePipe",
	Arrow:        "Arrow",
	RightPipe:    "RightPipe",
	LeftPipe:     "LeftPipe",
	CallbackPipe: "CallbackPipe",
	Ellipsis:     "Ellipsis",
	At:           "At",
	Hash:         "Hash",
	Dollar:       "Dollar",
	Question:     "Question",
	LParen:       "LParen",
	RParen:       "RParen",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
	Comma:        "Comma",
	Dot:          "Dot",
	Colon:        "Colon",
}

func (t Type) String() string {
	if int(t) >= 0 && int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "Illegal"
}

// Position is a 1-based line/column location in the source text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

// Token is a single lexical unit. Lexeme carries the decoded payload for
// identifiers and literals and is empty for operators and keywords.
type Token struct {
	Type     Type
	Lexeme   string
	Position Position
}

// Print returns the form the AST printer uses: the payload when there is
// one, the operator name otherwise.
func (t Token) Print() string {
	if t.Lexeme != "" {
		return t.Lexeme
	}
	return t.Type.String()
}

var keywords = map[string]Type{
	"func":   Func,
	"public": Public,
	"match":  Match,
	"try":    Try,
	"else":   Else,
	"unsafe": Unsafe,
	"def":    Def,
	"redef":  Redef,
	"true":   True,
	"false":  False,
	"null":   Null,
	"not":    Not,
	"and":    And,
	"or":     Or,
}

// LookupIdent maps an identifier spelling to its keyword type, or Id.
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return Id
}
