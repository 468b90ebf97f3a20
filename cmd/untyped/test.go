package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/untyped/packages/suite"
)

var testCmd = &cobra.Command{
	Use:   "test <suite.yaml>",
	Short: "Run a YAML expectation suite",
	Long: `Run a corpus of input/expected-normal-form cases from a YAML file
and report per-case results. Exits non-zero when any case fails.

Suite format:
  name: booleans
  cases:
    - name: true-selects-first
      input: |
        let true = x.y.x
        true a b
      want: a`,
	Args: cobra.ExactArgs(1),
	RunE: runSuiteFile,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runSuiteFile(cmd *cobra.Command, args []string) error {
	s, err := suite.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, result := range s.Run() {
		switch {
		case result.Passed():
			fmt.Fprintf(out, "ok   %s\n", result.Case.Name)
		case result.Err != nil:
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", result.Case.Name, result.Err)
		default:
			failed++
			fmt.Fprintf(out, "FAIL %s: got %q, want %q\n", result.Case.Name, result.Got, result.Case.Want)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(s.Cases))
	}
	fmt.Fprintf(out, "%d cases passed\n", len(s.Cases))
	return nil
}
