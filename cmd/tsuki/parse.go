package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tsuki/internal/ast"
	"tsuki/internal/errors"
	"tsuki/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.tsu>",
	Short: "Parse a source file and print its canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return parseFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

// parseFile runs the lex/parse pipeline over one file, printing either the
// canonical expression stream or every accumulated diagnostic with its
// source line.
func parseFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		return err
	}

	startTime := time.Now()
	exprs, parseErrors, scanErrors := parser.ParseSource(string(source))
	duration := time.Since(startTime)

	if len(scanErrors) > 0 || len(parseErrors) > 0 {
		reporter := errors.NewReporter(path, string(source))
		for _, err := range scanErrors {
			fmt.Fprint(os.Stderr, reporter.FormatScanError(err))
		}
		for _, err := range parseErrors {
			fmt.Fprint(os.Stderr, reporter.FormatParseError(err))
		}
		color.Red("Parsing failed after %s", formatDuration(duration))
		return fmt.Errorf("%d syntax errors", len(scanErrors)+len(parseErrors))
	}

	fmt.Println(ast.PrettyPrint(exprs))
	color.Green("Successfully parsed %s in %s", path, formatDuration(duration))
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
