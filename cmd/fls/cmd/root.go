// Package cmd holds the cobra command tree for the fls driver: a
// persistent root command with run, repl, and version subcommands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is overridden at build time via -ldflags.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "fls",
	Short: "fls interpreter",
	Long: `fls runs programs written in a small, dynamically-typed scripting
language: C-like statements, first-class functions, string interning,
and a tree-walking evaluator over the parsed syntax tree.`,
	Version: Version,
}

// Execute runs the root command; main calls this and maps any returned
// error to a nonzero exit code.
func Execute() error {
	return rootCmd.Execute()
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
