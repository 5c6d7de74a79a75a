package errors

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsuki/internal/lexer"
	"tsuki/internal/parser"
	"tsuki/token"
)

func TestFormatParseError(t *testing.T) {
	color.NoColor = true

	source := "first line\n1 = 2\nlast line"
	reporter := NewReporter("main.tsu", source)

	out := reporter.FormatParseError(parser.ParseError{
		Err:      parser.ErrInvalidAssignTarget,
		Position: token.Position{Line: 2, Column: 3},
	})

	assert.Equal(t, "main.tsu:2:3 error: invalid assignment target\n1 = 2\n", out)
}

func TestFormatScanError(t *testing.T) {
	color.NoColor = true

	reporter := NewReporter("repl", "a ~ b")
	out := reporter.FormatScanError(lexer.ScanError{
		Message:  "unexpected character: '~'",
		Position: token.Position{Line: 1, Column: 3},
		Length:   1,
	})

	assert.Equal(t, "repl:1:3 error: unexpected character: '~'\na ~ b\n", out)
}

func TestFormatOutOfRangeLine(t *testing.T) {
	color.NoColor = true

	reporter := NewReporter("main.tsu", "only")
	out := reporter.FormatParseError(parser.ParseError{
		Err:      parser.ErrUnexpectedToken,
		Position: token.Position{Line: 99, Column: 1},
	})

	require.Contains(t, out, "main.tsu:99:1 error: unexpected token")
	assert.NotContains(t, out, "only", "No source line for positions past the input")
}
