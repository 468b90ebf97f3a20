package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "untyped",
	Short: "Untyped lambda calculus interpreter",
	Long: `untyped parses and evaluates expressions of the untyped lambda
calculus, extended with top-level let bindings.

Syntax:
  x.body        abstraction (lambda)
  f a b         application, left-associative
  (expr)        grouping
  let f = expr  top-level binding, before the main expression

Evaluation is applicative order and reduces open terms as far as they
go; an application whose head is a free variable is left stuck.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
