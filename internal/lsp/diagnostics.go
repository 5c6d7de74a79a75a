package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"tsuki/internal/lexer"
	"tsuki/internal/parser"
	"tsuki/token"
)

// CollectDiagnostics runs the full lex/parse pipeline over a document and
// converts every accumulated error into an LSP diagnostic.
func CollectDiagnostics(text string) []protocol.Diagnostic {
	_, parseErrors, scanErrors := parser.ParseSource(text)

	diagnostics := make([]protocol.Diagnostic, 0, len(scanErrors)+len(parseErrors))
	for _, err := range scanErrors {
		diagnostics = append(diagnostics, scanErrorDiagnostic(err))
	}
	for _, err := range parseErrors {
		diagnostics = append(diagnostics, parseErrorDiagnostic(err))
	}
	return diagnostics
}

func scanErrorDiagnostic(err lexer.ScanError) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range:    rangeAt(err.Position, err.Length),
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("tsuki"),
		Message:  err.Message,
	}
}

func parseErrorDiagnostic(err parser.ParseError) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range:    rangeAt(err.Position, 1),
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("tsuki"),
		Message:  err.Err.Error(),
	}
}

// rangeAt converts a 1-based source position into a 0-based LSP range.
func rangeAt(pos token.Position, length int) protocol.Range {
	if length < 1 {
		length = 1
	}
	line := uint32(pos.Line - 1)
	column := uint32(pos.Column - 1)
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: column},
		End:   protocol.Position{Line: line, Character: column + uint32(length)},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
