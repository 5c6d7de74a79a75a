package main

import (
	"os"

	"github.com/spf13/cobra"

	"tsuki/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive read-parse-print loop",
	Run: func(cmd *cobra.Command, args []string) {
		repl.Start(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
