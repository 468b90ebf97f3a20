package untyped

import (
	"fmt"
	"strings"
)

// Position locates a node in its source file. Line and Col are 1-based.
type Position struct {
	File string
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Node is any element of the syntax tree.
// ノードは構築後に変更してはいけない（immutable）。
type Node interface {
	Pos() Position
	String() string
}

// Expression is the closed set of reducible node kinds:
// Identifier, Lambda, Parentheses or Apply.
// Binding and Program are syntax, not expressions.
type Expression interface {
	Node
	expression()
}

// Identifier is a variable occurrence. Identity is the name alone;
// two identifiers with equal names are the same variable regardless
// of where they appear in the source.
type Identifier struct {
	Position Position
	Name     string
}

func (n *Identifier) Pos() Position  { return n.Position }
func (n *Identifier) String() string { return n.Name }
func (n *Identifier) expression()    {}

// Lambda is an abstraction `param.body`. Param is a binding occurrence
// scoping over Body.
type Lambda struct {
	Position Position
	Param    *Identifier
	Body     Expression
}

func (n *Lambda) Pos() Position  { return n.Position }
func (n *Lambda) String() string { return n.Param.String() + "." + n.Body.String() }
func (n *Lambda) expression()    {}

// Parentheses is syntactic grouping. Evaluation and substitution pass
// through it; printing preserves it.
type Parentheses struct {
	Position Position
	Expr     Expression
}

func (n *Parentheses) Pos() Position  { return n.Position }
func (n *Parentheses) String() string { return "(" + n.Expr.String() + ")" }
func (n *Parentheses) expression()    {}

// Apply is left-associative function application.
type Apply struct {
	Position  Position
	Func      Expression
	Applicant Expression
}

func (n *Apply) Pos() Position { return n.Position }

// String parenthesizes a lambda head so that `(x.x) y` and `x.x y`
// stay distinguishable when re-read.
func (n *Apply) String() string {
	if _, ok := n.Func.(*Lambda); ok {
		return "(" + n.Func.String() + ") " + n.Applicant.String()
	}
	return n.Func.String() + " " + n.Applicant.String()
}

func (n *Apply) expression() {}

// Binding is a top-level named definition `let name = expr`.
type Binding struct {
	Position Position
	Name     *Identifier
	Expr     Expression
}

func (n *Binding) Pos() Position  { return n.Position }
func (n *Binding) String() string { return "let " + n.Name.String() + " = " + n.Expr.String() }

// Program is a whole source file: the bindings in order, then the main
// expression. The evaluator itself only ever sees a single Expression;
// see Expand.
type Program struct {
	Position Position
	Bindings []*Binding
	Expr     Expression
}

func (n *Program) Pos() Position { return n.Position }

func (n *Program) String() string {
	if len(n.Bindings) == 0 {
		return n.Expr.String()
	}
	var b strings.Builder
	b.WriteString(n.Expr.String())
	b.WriteString("\nwhere")
	for _, binding := range n.Bindings {
		b.WriteString("\n")
		b.WriteString(binding.String())
	}
	return b.String()
}

// Equal reports structural equality of two expressions. Positions are
// ignored; parentheses are not.
func Equal(a, b Expression) bool {
	switch x := a.(type) {
	case *Identifier:
		y, ok := b.(*Identifier)
		return ok && x.Name == y.Name
	case *Lambda:
		y, ok := b.(*Lambda)
		return ok && x.Param.Name == y.Param.Name && Equal(x.Body, y.Body)
	case *Parentheses:
		y, ok := b.(*Parentheses)
		return ok && Equal(x.Expr, y.Expr)
	case *Apply:
		y, ok := b.(*Apply)
		return ok && Equal(x.Func, y.Func) && Equal(x.Applicant, y.Applicant)
	default:
		return false
	}
}
