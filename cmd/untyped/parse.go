package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/untyped"
	"github.com/user/untyped/packages/expr"
)

var parseFlags struct {
	expr string
	dump bool
	emit bool
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a program and print its canonical form",
	Long: `Parse a program without evaluating it and print the canonical
rendering. With --dump the indented syntax tree is printed instead;
with --emit the equivalent Go function literal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFlags.expr, "expr", "e", "", "parse this source text instead of a file")
	parseCmd.Flags().BoolVar(&parseFlags.dump, "dump", false, "print the syntax tree")
	parseCmd.Flags().BoolVar(&parseFlags.emit, "emit", false, "print the expression as a Go function literal")
}

func runParse(cmd *cobra.Command, args []string) error {
	src, file := parseFlags.expr, "<arg>"
	if src == "" {
		if len(args) == 0 {
			return fmt.Errorf("nothing to parse: pass a file or --expr")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		src, file = string(data), args[0]
	}

	program, err := expr.ParseProgram(src, file)
	if err != nil {
		return err
	}
	return printProgram(cmd.OutOrStdout(), program)
}

func printProgram(w io.Writer, program *untyped.Program) error {
	if parseFlags.dump {
		untyped.Dump(w, program)
		return nil
	}
	if parseFlags.emit {
		fmt.Fprintln(w, expr.GoExpr(program.Expand()))
		return nil
	}
	if len(program.Bindings) == 0 {
		fmt.Fprintln(w, program.Expr)
		return nil
	}
	fmt.Fprintln(w, program)
	return nil
}
