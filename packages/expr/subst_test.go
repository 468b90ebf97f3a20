package expr

import (
	"testing"

	core "github.com/user/untyped"
)

func ident(name string) *core.Identifier {
	return &core.Identifier{Name: name}
}

func TestAlphaConvertStopsAtShadowingBinder(t *testing.T) {
	// Free x converts; the x bound by the inner lambda does not.
	e := mustParse(t, "x (x.x)")
	got := alphaConvert(e, ident("x"), ident("z"))
	if got.String() != "z (x.x)" {
		t.Fatalf("got %q, want %q", got, "z (x.x)")
	}
}

func TestAlphaConvertRebuildsApply(t *testing.T) {
	e := mustParse(t, "x x y")
	got := alphaConvert(e, ident("x"), ident("z"))
	if got.String() != "z z y" {
		t.Fatalf("got %q, want %q", got, "z z y")
	}
}

func TestUniqueIdentsRenamesShadowedBinder(t *testing.T) {
	e := mustParse(t, "x.(x.x)")
	got := uniqueIdents(e, make(map[string]int))
	if got.String() != "x.(x$1.x$1)" {
		t.Fatalf("got %q, want %q", got, "x.(x$1.x$1)")
	}
}

func TestUniqueIdentsSiblingBranchesIndependent(t *testing.T) {
	// Each branch of the application gets its own copy of the seen
	// names, so neither binder collides with the other.
	e := mustParse(t, "(x.x) (x.x)")
	got := uniqueIdents(e, make(map[string]int))
	if got.String() != "(x.x) (x.x)" {
		t.Fatalf("got %q, want %q", got, "(x.x) (x.x)")
	}
}

func TestFreeVars(t *testing.T) {
	free := freeVars(mustParse(t, "x.x y (z.z w)"))
	for _, name := range []string{"y", "w"} {
		if !free[name] {
			t.Fatalf("expected %s free, got %v", name, free)
		}
	}
	for _, name := range []string{"x", "z"} {
		if free[name] {
			t.Fatalf("expected %s bound, got %v", name, free)
		}
	}
}

func TestReduceSimple(t *testing.T) {
	fn := mustParse(t, "x.x").(*core.Lambda)
	got := Reduce(fn, ident("a"))
	if got.String() != "a" {
		t.Fatalf("got %q, want %q", got, "a")
	}
}

func TestReduceShadowedParamUntouched(t *testing.T) {
	// The inner lambda rebinds x; its body must not see the applicant.
	fn := mustParse(t, "x.x (x.x)").(*core.Lambda)
	got := Reduce(fn, ident("a"))
	if got.String() != "a (x.x)" {
		t.Fatalf("got %q, want %q", got, "a (x.x)")
	}
}

func TestReduceCaptureAvoidance(t *testing.T) {
	// Substituting free y under the y-binder must rename the binder,
	// and the rename must survive restoration: y.y would wrongly
	// return its own argument.
	fn := mustParse(t, "x.(y.x)").(*core.Lambda)
	got := Reduce(fn, ident("y"))
	if got.String() != "(y$1.y)" {
		t.Fatalf("got %q, want %q", got, "(y$1.y)")
	}
}

func TestReduceRestoresNamesWhenSafe(t *testing.T) {
	// The shadowed binder is renamed for the substitution but nothing
	// conflicts afterwards, so the surface name comes back.
	fn := mustParse(t, "x.(x.x)").(*core.Lambda)
	got := Reduce(fn, ident("a"))
	if got.String() != "(x.x)" {
		t.Fatalf("got %q, want %q", got, "(x.x)")
	}
}

func TestStripMark(t *testing.T) {
	if got := stripMark("y$1"); got != "y" {
		t.Fatalf("got %q, want %q", got, "y")
	}
	if got := stripMark("plain"); got != "plain" {
		t.Fatalf("got %q, want %q", got, "plain")
	}
}
