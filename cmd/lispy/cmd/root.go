// Package cmd implements the lispy command-line interface: running
// files, dropping into the REPL, and debug flags for inspecting the
// lexer and parser output.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lispy [file...]",
	Short: "Lispy interpreter",
	Long: `lispy is an interpreter for a small Lisp dialect: integers, text,
symbols, S-Expressions that evaluate and Q-Expressions that don't, and
user-defined lambdas built with \.

Run with no arguments to start the REPL. Run with one or more files to
load and evaluate them in order, in a shared global environment.`,
	Version:      Version,
	Args:         cobra.ArbitraryArgs,
	RunE:         runRoot,
	SilenceUsage: true,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().BoolVar(&showTokens, "tokens", false, "dump tokens for each file instead of evaluating")
	rootCmd.Flags().BoolVar(&showAST, "ast", false, "dump the parsed forms for each file instead of evaluating")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
