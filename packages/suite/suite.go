// Package suite runs YAML expectation corpora against the interpreter:
// each case pairs a source program with the rendering of its normal
// form. Both the CLI `test` command and the package tests drive it.
package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/untyped/packages/expr"
)

// DefaultMaxSteps bounds cases that carry no explicit budget, so one
// divergent entry cannot hang a whole corpus.
const DefaultMaxSteps = 10000

// Case is one expectation.
type Case struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input"`
	Want     string `yaml:"want"`
	MaxSteps int    `yaml:"max_steps,omitempty"`
}

// Suite is a named corpus of cases.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Result is the outcome of a single case.
type Result struct {
	Case Case
	Got  string
	Err  error
}

// Passed reports whether the case produced the expected normal form.
func (r Result) Passed() bool {
	return r.Err == nil && r.Got == r.Case.Want
}

// Load reads a suite from a YAML file. Unknown fields are rejected, so
// a typo in a corpus fails loudly instead of silently skipping checks.
func Load(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("suite: %w", err)
	}
	defer f.Close()

	var s Suite
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("suite %s: %w", path, err)
	}
	return &s, nil
}

// Run evaluates every case in order.
func (s *Suite) Run() []Result {
	results := make([]Result, 0, len(s.Cases))
	for _, c := range s.Cases {
		results = append(results, runCase(c))
	}
	return results
}

func runCase(c Case) Result {
	file := c.Name
	if file == "" {
		file = "<case>"
	}

	program, err := expr.ParseProgram(c.Input, file)
	if err != nil {
		return Result{Case: c, Err: err}
	}

	max := c.MaxSteps
	if max <= 0 {
		max = DefaultMaxSteps
	}
	out, err := expr.EvalSteps(program.Expand(), max)
	if err != nil {
		return Result{Case: c, Err: err}
	}
	return Result{Case: c, Got: out.String()}
}
