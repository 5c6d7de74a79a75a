package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Plus", Plus.String())
	assert.Equal(t, "Minus", Minus.String())
	assert.Equal(t, "Mul", Mul.String())
	assert.Equal(t, "Div", Div.String())
	assert.Equal(t, "Mod", Mod.String())
	assert.Equal(t, "Not", Not.String())
	assert.Equal(t, "Underscore", Underscore.String())
	assert.Equal(t, "EOF", EOF.String())
}

func TestTypeStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Illegal", Type(-1).String())
	assert.Equal(t, "Illegal", Type(1000).String())
}

func TestTokenPrint(t *testing.T) {
	// Literals and identifiers print their payload
	id := Token{Type: Id, Lexeme: "counter"}
	assert.Equal(t, "counter", id.Print())

	str := Token{Type: Str, Lexeme: "hello"}
	assert.Equal(t, "hello", str.Print())

	// Operators and keywords print their type name
	plus := Token{Type: Plus}
	assert.Equal(t, "Plus", plus.Print())

	underscore := Token{Type: Underscore}
	assert.Equal(t, "Underscore", underscore.Print())
}

func TestLookupIdent(t *testing.T) {
	assert.Equal(t, Func, LookupIdent("func"))
	assert.Equal(t, Public, LookupIdent("public"))
	assert.Equal(t, Match, LookupIdent("match"))
	assert.Equal(t, Not, LookupIdent("not"))
	assert.Equal(t, And, LookupIdent("and"))
	assert.Equal(t, Or, LookupIdent("or"))
	assert.Equal(t, Id, LookupIdent("funcy"), "Prefix of a keyword is a plain identifier")
	assert.Equal(t, Id, LookupIdent("x"))
}
