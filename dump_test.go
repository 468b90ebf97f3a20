package untyped

import (
	"bytes"
	"testing"
)

func TestDumpApply(t *testing.T) {
	tree := &Apply{
		Position: pos(1, 1),
		Func: &Parentheses{
			Position: pos(1, 1),
			Expr: &Lambda{
				Position: pos(1, 2),
				Param:    &Identifier{Position: pos(1, 2), Name: "x"},
				Body:     &Identifier{Position: pos(1, 4), Name: "x"},
			},
		},
		Applicant: &Identifier{Position: pos(1, 7), Name: "y"},
	}

	var buf bytes.Buffer
	Dump(&buf, tree)

	want := "Apply (test.lam:1:1)\n" +
		"  Parentheses (test.lam:1:1)\n" +
		"    Lambda (test.lam:1:2)\n" +
		"      Identifier x (test.lam:1:2)\n" +
		"      Identifier x (test.lam:1:4)\n" +
		"  Identifier y (test.lam:1:7)\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpProgram(t *testing.T) {
	prog := &Program{
		Position: pos(1, 1),
		Bindings: []*Binding{{
			Position: pos(1, 1),
			Name:     &Identifier{Position: pos(1, 5), Name: "id"},
			Expr: &Lambda{
				Position: pos(1, 10),
				Param:    &Identifier{Position: pos(1, 10), Name: "x"},
				Body:     &Identifier{Position: pos(1, 12), Name: "x"},
			},
		}},
		Expr: &Identifier{Position: pos(2, 1), Name: "id"},
	}

	var buf bytes.Buffer
	Dump(&buf, prog)

	want := "Program (test.lam:1:1)\n" +
		"  Binding (test.lam:1:1)\n" +
		"    Identifier id (test.lam:1:5)\n" +
		"    Lambda (test.lam:1:10)\n" +
		"      Identifier x (test.lam:1:10)\n" +
		"      Identifier x (test.lam:1:12)\n" +
		"  Identifier id (test.lam:2:1)\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}
