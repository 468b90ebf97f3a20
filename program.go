package untyped

// Expand desugars the program's bindings into the main expression as
// nested applications: `let f = E` followed by body becomes `(f.body) E`.
// Later bindings may reference earlier ones. The result is an ordinary
// Expression that needs no binding environment to evaluate.
// 束縛環境を持たない評価器のために、letを適用へ焼き込む。
func (n *Program) Expand() Expression {
	expr := n.Expr
	for i := len(n.Bindings) - 1; i >= 0; i-- {
		binding := n.Bindings[i]
		fn := &Lambda{Position: binding.Position, Param: binding.Name, Body: expr}
		expr = &Apply{
			Position:  binding.Position,
			Func:      &Parentheses{Position: binding.Position, Expr: fn},
			Applicant: binding.Expr,
		}
	}
	return expr
}
