package untyped

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented structural dump of the tree to w.
// Presentation only; nothing reads this format back.
func Dump(w io.Writer, n Node) {
	dump(w, n, 0)
}

func dump(w io.Writer, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch t := n.(type) {
	case *Identifier:
		fmt.Fprintf(w, "%sIdentifier %s (%s)\n", indent, t.Name, t.Position)
	case *Lambda:
		fmt.Fprintf(w, "%sLambda (%s)\n", indent, t.Position)
		dump(w, t.Param, depth+1)
		dump(w, t.Body, depth+1)
	case *Parentheses:
		fmt.Fprintf(w, "%sParentheses (%s)\n", indent, t.Position)
		dump(w, t.Expr, depth+1)
	case *Apply:
		fmt.Fprintf(w, "%sApply (%s)\n", indent, t.Position)
		dump(w, t.Func, depth+1)
		dump(w, t.Applicant, depth+1)
	case *Binding:
		fmt.Fprintf(w, "%sBinding (%s)\n", indent, t.Position)
		dump(w, t.Name, depth+1)
		dump(w, t.Expr, depth+1)
	case *Program:
		fmt.Fprintf(w, "%sProgram (%s)\n", indent, t.Position)
		for _, binding := range t.Bindings {
			dump(w, binding, depth+1)
		}
		dump(w, t.Expr, depth+1)
	}
}
