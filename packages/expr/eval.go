package expr

import (
	"errors"
	"fmt"

	core "github.com/user/untyped"
)

// ErrBudget is returned by EvalSteps when the reduction budget runs out.
var ErrBudget = errors.New("reduction budget exceeded")

// Eval reduces e to its normal form under applicative order: both sides
// of an application are fully reduced before a beta step is attempted.
// Identifiers and lambdas are already normal; parentheses are
// transparent; an application whose head does not reduce to a lambda is
// returned as a stuck term, so open terms with free variables evaluate
// fine. Terms with no normal form make Eval recurse forever; use
// EvalSteps when that matters.
func Eval(e core.Expression) core.Expression {
	out, _ := evalNode(e, nil)
	return out
}

// EvalSteps behaves like Eval but gives up after max beta reductions
// with an error wrapping ErrBudget.
func EvalSteps(e core.Expression, max int) (core.Expression, error) {
	budget := max
	return evalNode(e, &budget)
}

func evalNode(e core.Expression, budget *int) (core.Expression, error) {
	switch t := e.(type) {
	case *core.Identifier:
		return t, nil
	case *core.Lambda:
		return t, nil
	case *core.Parentheses:
		return evalNode(t.Expr, budget)
	case *core.Apply:
		fn, err := evalNode(t.Func, budget)
		if err != nil {
			return nil, err
		}
		applicant, err := evalNode(t.Applicant, budget)
		if err != nil {
			return nil, err
		}
		lambda, ok := fn.(*core.Lambda)
		if !ok {
			// Stuck neutral term.
			return &core.Apply{Position: t.Position, Func: fn, Applicant: applicant}, nil
		}
		if budget != nil {
			if *budget <= 0 {
				return nil, fmt.Errorf("%w: term did not normalize", ErrBudget)
			}
			*budget--
		}
		return evalNode(Reduce(lambda, applicant), budget)
	}
	return e, nil
}
