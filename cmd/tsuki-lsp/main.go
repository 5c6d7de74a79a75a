package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"tsuki/internal/lsp"
)

const lsName = "tsuki" // Name identifier for the language server

var handler protocol.Handler

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	tsukiHandler := lsp.NewHandler()

	// Wire up the handler with the supported LSP method implementations
	handler = protocol.Handler{
		Initialize:             tsukiHandler.Initialize,
		Initialized:            tsukiHandler.Initialized,
		Shutdown:               tsukiHandler.Shutdown,
		SetTrace:               tsukiHandler.SetTrace,
		TextDocumentDidOpen:    tsukiHandler.TextDocumentDidOpen,
		TextDocumentDidClose:   tsukiHandler.TextDocumentDidClose,
		TextDocumentDidChange:  tsukiHandler.TextDocumentDidChange,
		TextDocumentCompletion: tsukiHandler.TextDocumentCompletion,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting tsuki LSP server...")

	// Serve over standard input/output, the transport editors expect
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting tsuki LSP server:", err)
		os.Exit(1)
	}
}
