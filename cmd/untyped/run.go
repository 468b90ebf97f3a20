package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/user/untyped"
	"github.com/user/untyped/packages/expr"
)

var runFlags struct {
	expr     string
	maxSteps int
	watch    bool
	dump     bool
}

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Evaluate a program file or expression to normal form",
	Long: `Evaluate a lambda calculus program to its normal form and print it.

A program is any number of let bindings followed by one expression; the
bindings are folded into the expression before evaluation.

Examples:
  # Evaluate a file
  untyped run program.lam

  # Evaluate an expression directly
  untyped run -e '(x.y.x) a b'

  # Guard against divergent terms
  untyped run -e '(x.x x) (x.x x)' --max-steps 1000

  # Re-evaluate whenever the file changes
  untyped run program.lam --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.expr, "expr", "e", "", "evaluate this source text instead of a file")
	runCmd.Flags().IntVar(&runFlags.maxSteps, "max-steps", 0, "abort after this many beta reductions (0 = unlimited)")
	runCmd.Flags().BoolVar(&runFlags.watch, "watch", false, "re-evaluate the file whenever it changes")
	runCmd.Flags().BoolVar(&runFlags.dump, "dump", false, "also dump the reduced tree")
}

func runEval(cmd *cobra.Command, args []string) error {
	if runFlags.expr != "" {
		return evalSource(cmd.OutOrStdout(), runFlags.expr, "<arg>")
	}
	if len(args) == 0 {
		return fmt.Errorf("nothing to evaluate: pass a file or --expr")
	}
	if runFlags.watch {
		return watchAndEval(cmd, args[0])
	}
	return evalFile(cmd.OutOrStdout(), args[0])
}

func evalFile(w io.Writer, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return evalSource(w, string(src), path)
}

func evalSource(w io.Writer, src, file string) error {
	program, err := expr.ParseProgram(src, file)
	if err != nil {
		return err
	}
	target := program.Expand()

	var out untyped.Expression
	if runFlags.maxSteps > 0 {
		out, err = expr.EvalSteps(target, runFlags.maxSteps)
		if err != nil {
			return err
		}
	} else {
		out = expr.Eval(target)
	}

	fmt.Fprintln(w, out)
	if runFlags.dump {
		untyped.Dump(w, out)
	}
	return nil
}

// watchAndEval evaluates once, then re-evaluates on every change to the
// file. The watch sits on the directory because editors typically
// replace the file rather than write it in place.
func watchAndEval(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	evalOnce := func() {
		if err := evalFile(cmd.OutOrStdout(), path); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	}
	evalOnce()

	var debounce *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("source changed", "file", event.Name, "op", event.Op.String())
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, evalOnce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)
		}
	}
}
