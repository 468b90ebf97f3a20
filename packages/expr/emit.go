package expr

import (
	"errors"
	"fmt"
	"sort"

	core "github.com/user/untyped"
)

// Closure is the host representation of a lambda value: a Go function
// from closure to closure.
type Closure func(Closure) Closure

// ErrUnbound reports a free identifier during closure construction.
var ErrUnbound = errors.New("unbound identifier")

// GoExpr renders e as Go source text for the equivalent nested function
// literal. It is the counterpart of AsClosure for humans; nothing parses
// the output back.
func GoExpr(e core.Expression) string {
	switch t := e.(type) {
	case *core.Identifier:
		return t.Name
	case *core.Lambda:
		return fmt.Sprintf("func(%s Closure) Closure { return %s }", t.Param.Name, GoExpr(t.Body))
	case *core.Parentheses:
		return "(" + GoExpr(t.Expr) + ")"
	case *core.Apply:
		return GoExpr(t.Func) + "(" + GoExpr(t.Applicant) + ")"
	}
	return ""
}

// AsClosure translates a closed expression into a runnable Closure,
// executing applications directly in the host language instead of going
// through Eval. Free identifiers fail at construction time.
func AsClosure(e core.Expression) (Closure, error) {
	if free := freeVars(e); len(free) > 0 {
		names := make([]string, 0, len(free))
		for name := range free {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("%w: %s", ErrUnbound, names[0])
	}
	return buildClosure(e, nil), nil
}

// scope is a linked binding environment for buildClosure.
type scope struct {
	name   string
	value  Closure
	parent *scope
}

func (s *scope) lookup(name string) (Closure, bool) {
	for ; s != nil; s = s.parent {
		if s.name == name {
			return s.value, true
		}
	}
	return nil, false
}

func buildClosure(e core.Expression, s *scope) Closure {
	switch t := e.(type) {
	case *core.Identifier:
		value, _ := s.lookup(t.Name)
		return value
	case *core.Lambda:
		captured := s
		return func(arg Closure) Closure {
			return buildClosure(t.Body, &scope{name: t.Param.Name, value: arg, parent: captured})
		}
	case *core.Parentheses:
		return buildClosure(t.Expr, s)
	case *core.Apply:
		return buildClosure(t.Func, s)(buildClosure(t.Applicant, s))
	}
	return nil
}
