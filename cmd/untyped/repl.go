package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/untyped"
	"github.com/user/untyped/packages/expr"
)

// replMaxSteps guards the interactive loop against divergent input.
const replMaxSteps = 100000

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive read-eval-print loop",
	Long: `Read expressions from standard input and print their normal forms.
Lines of the form "let name = expr" accumulate bindings visible to
every later expression. :q quits.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	var bindings []*untyped.Binding

	fmt.Fprintln(out, "untyped repl (:q to quit)")
	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if line == ":q" || line == ":quit" {
			return nil
		}

		if strings.HasPrefix(line, "let") {
			binding, err := expr.ParseBinding(line, "<repl>")
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			bindings = append(bindings, binding)
			continue
		}

		parsed, err := expr.Parse(line, "<repl>")
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		program := &untyped.Program{Position: parsed.Pos(), Bindings: bindings, Expr: parsed}
		result, err := expr.EvalSteps(program.Expand(), replMaxSteps)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprintln(out, result)
	}
}
