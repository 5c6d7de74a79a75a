package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsuki/token"
)

func scanTypes(t *testing.T, source string) []token.Type {
	t.Helper()
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()
	require.Empty(t, scanner.Errors(), "Should scan without errors")

	types := make([]token.Type, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	return types
}

func TestScanPunctuation(t *testing.T) {
	types := scanTypes(t, "( ) [ ] { } , @ # ? .")
	assert.Equal(t, []token.Type{
		token.LParen, token.RParen, token.LBracket, token.RBracket,
		token.LBrace, token.RBrace, token.Comma, token.At, token.Hash,
		token.Question, token.Dot, token.EOF,
	}, types)
}

func TestScanOperators(t *testing.T) {
	tests := []struct {
		source   string
		expected token.Type
	}{
		{"+", token.Plus},
		{"-", token.Minus},
		{"*", token.Mul},
		{"/", token.Div},
		{"%", token.Mod},
		{"++", token.PlusPlus},
		{"--", token.MinusMinus},
		{"+=", token.PlusEq},
		{"-=", token.MinusEq},
		{"*=", token.MulEq},
		{"/=", token.DivEq},
		{"%=", token.ModEq},
		{"=", token.Assign},
		{":=", token.ColonEq},
		{"|=", token.PipeEq},
		{"$=", token.DollarEq},
		{"==", token.Eq},
		{"!=", token.NotEq},
		{"<", token.Less},
		{"<=", token.LessEq},
		{">", token.Greater},
		{">=", token.GreaterEq},
		{"!", token.Bang},
		{"&&", token.AmpAmp},
		{"||", token.PipePipe},
		{"->", token.Arrow},
		{"|>", token.RightPipe},
		{"<|", token.LeftPipe},
		{"<~", token.CallbackPipe},
		{"...", token.Ellipsis},
		{"$", token.Dollar},
		{":", token.Colon},
	}

	for _, tt := range tests {
		types := scanTypes(t, tt.source)
		assert.Equal(t, []token.Type{tt.expected, token.EOF}, types,
			"Source %q", tt.source)
	}
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	scanner := NewScanner("func name public cool? push! match_all not")
	tokens := scanner.ScanTokens()
	require.Empty(t, scanner.Errors())

	assert.Equal(t, token.Func, tokens[0].Type)
	assert.Equal(t, token.Id, tokens[1].Type)
	assert.Equal(t, "name", tokens[1].Lexeme)
	assert.Equal(t, token.Public, tokens[2].Type)
	assert.Equal(t, token.Id, tokens[3].Type)
	assert.Equal(t, "cool?", tokens[3].Lexeme)
	assert.Equal(t, token.Id, tokens[4].Type)
	assert.Equal(t, "push!", tokens[4].Lexeme)
	assert.Equal(t, token.Id, tokens[5].Type)
	assert.Equal(t, "match_all", tokens[5].Lexeme)
	assert.Equal(t, token.Not, tokens[6].Type)
	assert.Equal(t, token.EOF, tokens[7].Type)
}

func TestScanUnderscore(t *testing.T) {
	scanner := NewScanner("_")
	tokens := scanner.ScanTokens()
	require.Empty(t, scanner.Errors())
	require.Len(t, tokens, 2)
	assert.Equal(t, token.Underscore, tokens[0].Type)
	assert.Empty(t, tokens[0].Lexeme, "The wildcard carries no payload")
}

func TestScanAtoms(t *testing.T) {
	scanner := NewScanner(":nobu :ok2")
	tokens := scanner.ScanTokens()
	require.Empty(t, scanner.Errors())

	assert.Equal(t, token.Atom, tokens[0].Type)
	assert.Equal(t, "nobu", tokens[0].Lexeme, "Atom payload excludes the colon")
	assert.Equal(t, token.Atom, tokens[1].Type)
	assert.Equal(t, "ok2", tokens[1].Lexeme)
}

func TestScanColonBeforeNonLetter(t *testing.T) {
	types := scanTypes(t, "{name: 1}")
	assert.Equal(t, []token.Type{
		token.LBrace, token.Id, token.Colon, token.Int, token.RBrace, token.EOF,
	}, types)
}

func TestScanNumbers(t *testing.T) {
	scanner := NewScanner("42 3.14 0 100.5")
	tokens := scanner.ScanTokens()
	require.Empty(t, scanner.Errors())

	assert.Equal(t, token.Int, tokens[0].Type)
	assert.Equal(t, "42", tokens[0].Lexeme)
	assert.Equal(t, token.Float, tokens[1].Type)
	assert.Equal(t, "3.14", tokens[1].Lexeme)
	assert.Equal(t, token.Int, tokens[2].Type)
	assert.Equal(t, token.Float, tokens[3].Type)
	assert.Equal(t, "100.5", tokens[3].Lexeme)
}

func TestScanNumberThenDot(t *testing.T) {
	// A '.' not followed by a digit ends the number
	types := scanTypes(t, "list.0")
	assert.Equal(t, []token.Type{token.Id, token.Dot, token.Int, token.EOF}, types)

	types = scanTypes(t, "1.foo")
	assert.Equal(t, []token.Type{token.Int, token.Dot, token.Id, token.EOF}, types)
}

func TestScanStrings(t *testing.T) {
	scanner := NewScanner(`"hello" "with \"quote\"" "esc\n"`)
	tokens := scanner.ScanTokens()
	require.Empty(t, scanner.Errors())

	assert.Equal(t, token.Str, tokens[0].Type)
	assert.Equal(t, "hello", tokens[0].Lexeme)
	assert.Equal(t, `with \"quote\"`, tokens[1].Lexeme,
		"Escapes are kept verbatim")
	assert.Equal(t, `esc\n`, tokens[2].Lexeme)
}

func TestScanStringEndingInEscapedBackslash(t *testing.T) {
	// The double backslash is one escape unit; the quote after it closes
	// the literal instead of being skipped
	scanner := NewScanner(`"a\\" x`)
	tokens := scanner.ScanTokens()
	require.Empty(t, scanner.Errors())

	assert.Equal(t, token.Str, tokens[0].Type)
	assert.Equal(t, `a\\`, tokens[0].Lexeme)
	assert.Equal(t, token.Id, tokens[1].Type)
	assert.Equal(t, token.EOF, tokens[2].Type)
}

func TestScanRawStrings(t *testing.T) {
	scanner := NewScanner("`echo \"Hello\\nWorld\"`")
	tokens := scanner.ScanTokens()
	require.Empty(t, scanner.Errors())

	assert.Equal(t, token.Str, tokens[0].Type)
	assert.Equal(t, `echo "Hello\nWorld"`, tokens[0].Lexeme)
}

func TestScanComments(t *testing.T) {
	types := scanTypes(t, "1 // line comment\n2 /* block\ncomment */ 3")
	assert.Equal(t, []token.Type{token.Int, token.Int, token.Int, token.EOF}, types)
}

func TestScanPositions(t *testing.T) {
	scanner := NewScanner("one\n  two")
	tokens := scanner.ScanTokens()
	require.Empty(t, scanner.Errors())

	assert.Equal(t, 1, tokens[0].Position.Line)
	assert.Equal(t, 1, tokens[0].Position.Column)
	assert.Equal(t, 0, tokens[0].Position.Offset)

	assert.Equal(t, 2, tokens[1].Position.Line)
	assert.Equal(t, 3, tokens[1].Position.Column)
	assert.Equal(t, 6, tokens[1].Position.Offset)
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		source  string
		message string
	}{
		{`"unterminated`, "unterminated string"},
		{"`unterminated", "unterminated string"},
		{"/* unterminated", "unterminated block comment"},
		{"&", "unexpected character: '&'"},
		{"|", "unexpected character: '|'"},
		{"~", `unexpected character: '~'`},
	}

	for _, tt := range tests {
		scanner := NewScanner(tt.source)
		scanner.ScanTokens()
		errs := scanner.Errors()
		require.Len(t, errs, 1, "Source %q", tt.source)
		assert.Equal(t, tt.message, errs[0].Message, "Source %q", tt.source)
		assert.Equal(t, 1, errs[0].Position.Line)
	}
}

func TestScanNeverAborts(t *testing.T) {
	// Bad input is reported and skipped; scanning continues
	scanner := NewScanner("a ~ b")
	tokens := scanner.ScanTokens()

	require.Len(t, scanner.Errors(), 1)
	assert.Equal(t, token.Id, tokens[0].Type)
	assert.Equal(t, token.Id, tokens[1].Type)
	assert.Equal(t, token.EOF, tokens[2].Type)
}

func TestStreamClosesChannel(t *testing.T) {
	out := make(chan token.Token)
	scanner := NewScanner("1 + 2")
	go scanner.Stream(out)

	var tokens []token.Token
	for tok := range out {
		tokens = append(tokens, tok)
	}

	require.Len(t, tokens, 4)
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Type,
		"EOF should be the final streamed token")
}
