package expr

import (
	"errors"
	"testing"

	core "github.com/user/untyped"
)

func TestEvalBetaReduction(t *testing.T) {
	got := Eval(mustParse(t, "(x.x) a"))
	if !core.Equal(got, ident("a")) {
		t.Fatalf("got %q, want %q", got, "a")
	}
}

func TestEvalNestedBeta(t *testing.T) {
	got := Eval(mustParse(t, "(x.y.x) a b"))
	if !core.Equal(got, ident("a")) {
		t.Fatalf("got %q, want %q", got, "a")
	}
}

func TestEvalStuckTerm(t *testing.T) {
	// f is free, so the head never becomes a lambda; the application
	// must come back unchanged.
	e := mustParse(t, "f a")
	got := Eval(e)
	if !core.Equal(got, e) {
		t.Fatalf("got %q, want %q", got, e)
	}
}

func TestEvalStuckHeadStillReducesApplicant(t *testing.T) {
	got := Eval(mustParse(t, "f ((x.x) a)"))
	if got.String() != "f a" {
		t.Fatalf("got %q, want %q", got, "f a")
	}
}

func TestEvalParenthesesTransparent(t *testing.T) {
	got := Eval(mustParse(t, "((a))"))
	if !core.Equal(got, ident("a")) {
		t.Fatalf("got %q, want %q", got, "a")
	}
}

func TestEvalLambdaIsNormalForm(t *testing.T) {
	e := mustParse(t, "x.(y.y) x")
	got := Eval(e)
	if !core.Equal(got, e) {
		t.Fatalf("got %q, want %q", got, e)
	}
}

func TestEvalCaptureAvoidance(t *testing.T) {
	got := Eval(mustParse(t, "(x.(y.x)) y"))
	if got.String() != "y$1.y" {
		t.Fatalf("got %q, want %q", got, "y$1.y")
	}
}

func TestEvalStepsWithinBudget(t *testing.T) {
	got, err := EvalSteps(mustParse(t, "(x.y.x) a b"), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !core.Equal(got, ident("a")) {
		t.Fatalf("got %q, want %q", got, "a")
	}
}

func TestEvalStepsBudgetExceeded(t *testing.T) {
	// The self-application combinator applied to itself has no normal
	// form; the budget has to fire.
	_, err := EvalSteps(mustParse(t, "(x.x x) (x.x x)"), 50)
	if !errors.Is(err, ErrBudget) {
		t.Fatalf("expected ErrBudget, got %v", err)
	}
}
