package untyped

import "testing"

func pos(line, col int) Position {
	return Position{File: "test.lam", Line: line, Col: col}
}

func TestPositionString(t *testing.T) {
	got := Position{File: "main.lam", Line: 3, Col: 7}.String()
	if got != "main.lam:3:7" {
		t.Fatalf("got %q", got)
	}
}

func TestExpressionStrings(t *testing.T) {
	x := &Identifier{Name: "x"}
	y := &Identifier{Name: "y"}
	tests := []struct {
		expr Expression
		want string
	}{
		{x, "x"},
		{&Lambda{Param: x, Body: x}, "x.x"},
		{&Parentheses{Expr: x}, "(x)"},
		{&Apply{Func: x, Applicant: y}, "x y"},
		{&Apply{Func: &Apply{Func: x, Applicant: y}, Applicant: x}, "x y x"},
		{&Lambda{Param: x, Body: &Apply{Func: x, Applicant: y}}, "x.x y"},
		{&Parentheses{Expr: &Lambda{Param: x, Body: x}}, "(x.x)"},
	}
	for _, tt := range tests {
		if got := tt.expr.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

// A lambda in function position prints parenthesized, so the rendered
// form re-reads as the same tree.
func TestApplyParenthesizesLambdaFunc(t *testing.T) {
	x := &Identifier{Name: "x"}
	y := &Identifier{Name: "y"}
	app := &Apply{Func: &Lambda{Param: x, Body: x}, Applicant: y}
	if got := app.String(); got != "(x.x) y" {
		t.Fatalf("got %q", got)
	}
}

func TestBindingString(t *testing.T) {
	b := &Binding{
		Name: &Identifier{Name: "id"},
		Expr: &Lambda{Param: &Identifier{Name: "x"}, Body: &Identifier{Name: "x"}},
	}
	if got := b.String(); got != "let id = x.x" {
		t.Fatalf("got %q", got)
	}
}

func TestProgramString(t *testing.T) {
	p := &Program{
		Bindings: []*Binding{
			{Name: &Identifier{Name: "id"}, Expr: &Lambda{Param: &Identifier{Name: "x"}, Body: &Identifier{Name: "x"}}},
		},
		Expr: &Apply{Func: &Identifier{Name: "id"}, Applicant: &Identifier{Name: "y"}},
	}
	want := "id y\nwhere\nlet id = x.x"
	if got := p.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestProgramStringWithoutBindings(t *testing.T) {
	p := &Program{Expr: &Identifier{Name: "x"}}
	if got := p.String(); got != "x" {
		t.Fatalf("got %q", got)
	}
}

func TestEqualIgnoresPositions(t *testing.T) {
	a := &Lambda{Position: pos(1, 1), Param: &Identifier{Position: pos(1, 1), Name: "x"}, Body: &Identifier{Position: pos(1, 3), Name: "x"}}
	b := &Lambda{Position: pos(9, 9), Param: &Identifier{Position: pos(9, 9), Name: "x"}, Body: &Identifier{Position: pos(9, 11), Name: "x"}}
	if !Equal(a, b) {
		t.Fatal("equal trees with different positions reported unequal")
	}
}

func TestEqualDistinguishesStructure(t *testing.T) {
	x := &Identifier{Name: "x"}
	y := &Identifier{Name: "y"}
	if Equal(x, y) {
		t.Fatal("x and y reported equal")
	}
	if Equal(x, &Parentheses{Expr: x}) {
		t.Fatal("x and (x) reported equal")
	}
	if Equal(&Lambda{Param: x, Body: x}, &Lambda{Param: y, Body: y}) {
		t.Fatal("x.x and y.y reported equal")
	}
	if Equal(&Apply{Func: x, Applicant: y}, &Apply{Func: y, Applicant: x}) {
		t.Fatal("x y and y x reported equal")
	}
}
