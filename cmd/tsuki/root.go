package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tsuki",
	Short: "tsuki - front end for the tsuki scripting language",
	Long: `tsuki parses .tsu source files, reports syntax diagnostics, and
prints the canonical S-expression form of the program.

Commands:
  parse    parse a file and print its canonical form
  watch    re-parse a file whenever it changes on disk
  repl     interactive read-parse-print loop
  version  print the tool version`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}
