package expr

import (
	"fmt"
	"strings"

	core "github.com/user/untyped"
)

// This file is the capture-avoidance machinery behind beta reduction.
// The scheme is rename → substitute → restore: binders that could
// capture a free variable of the applicant are renamed to a decorated
// `name$N`, plain substitution then cannot capture, and the decoration
// is stripped again wherever that does not reintroduce a capture.
// Surface identifiers cannot contain '$', so decorated names never
// collide with anything the parser produced.

// Reduce computes one beta reduction of fn applied to applicant,
// equivalent to fn.Body[fn.Param := applicant] under capture-avoiding
// substitution. It is total over well-formed trees and builds new
// nodes throughout; the inputs are never modified.
func Reduce(fn *core.Lambda, applicant core.Expression) core.Expression {
	known := make(map[string]int)
	for name := range freeVars(applicant) {
		known[name] = 0
	}
	unique := uniqueIdents(fn, known).(*core.Lambda)
	body := substitute(unique.Body, unique.Param, applicant)
	return restoreNames(body)
}

// freeVars collects the names occurring free in e.
func freeVars(e core.Expression) map[string]bool {
	free := make(map[string]bool)
	var walk func(e core.Expression, bound map[string]bool)
	walk = func(e core.Expression, bound map[string]bool) {
		switch t := e.(type) {
		case *core.Identifier:
			if !bound[t.Name] {
				free[t.Name] = true
			}
		case *core.Lambda:
			inner := make(map[string]bool, len(bound)+1)
			for name := range bound {
				inner[name] = true
			}
			inner[t.Param.Name] = true
			walk(t.Body, inner)
		case *core.Parentheses:
			walk(t.Expr, bound)
		case *core.Apply:
			walk(t.Func, bound)
			walk(t.Applicant, bound)
		}
	}
	walk(e, make(map[string]bool))
	return free
}

// alphaConvert renames free occurrences of old to new inside e. It
// stops descending at any lambda that rebinds the old name: those
// occurrences are shadowed and must stay untouched.
func alphaConvert(e core.Expression, old, new *core.Identifier) core.Expression {
	switch t := e.(type) {
	case *core.Identifier:
		if t.Name == old.Name {
			return new
		}
		return t
	case *core.Lambda:
		if t.Param.Name == old.Name {
			return t
		}
		return &core.Lambda{Position: t.Position, Param: t.Param, Body: alphaConvert(t.Body, old, new)}
	case *core.Parentheses:
		return &core.Parentheses{Position: t.Position, Expr: alphaConvert(t.Expr, old, new)}
	case *core.Apply:
		return &core.Apply{
			Position:  t.Position,
			Func:      alphaConvert(t.Func, old, new),
			Applicant: alphaConvert(t.Applicant, old, new),
		}
	}
	return e
}

// uniqueIdents walks the whole tree and renames every binder whose name
// is already in the known map, alpha-converting the binder's body to the
// decorated replacement. Each branch gets its own copy of the map, so
// sibling branches never observe each other's renames.
// 兄弟ブランチは互いのリネームを見ない。
func uniqueIdents(e core.Expression, known map[string]int) core.Expression {
	switch t := e.(type) {
	case *core.Lambda:
		param, body := t.Param, t.Body
		if count, seen := known[param.Name]; seen {
			// Skip decorations already taken by the body or by a free
			// variable of the applicant, which happens when a term that
			// kept decorated binders from an earlier reduction comes
			// around again.
			var name string
			for {
				count++
				name = fmt.Sprintf("%s$%d", param.Name, count)
				if _, taken := known[name]; !taken && !occursName(body, name) {
					break
				}
			}
			known[param.Name] = count
			renamed := &core.Identifier{Position: param.Position, Name: name}
			body = alphaConvert(body, param, renamed)
			param = renamed
		} else {
			known[param.Name] = 0
		}
		return &core.Lambda{Position: t.Position, Param: param, Body: uniqueIdents(body, copyCounts(known))}
	case *core.Parentheses:
		return &core.Parentheses{Position: t.Position, Expr: uniqueIdents(t.Expr, copyCounts(known))}
	case *core.Apply:
		return &core.Apply{
			Position:  t.Position,
			Func:      uniqueIdents(t.Func, copyCounts(known)),
			Applicant: uniqueIdents(t.Applicant, copyCounts(known)),
		}
	}
	return e
}

func copyCounts(known map[string]int) map[string]int {
	out := make(map[string]int, len(known))
	for name, count := range known {
		out[name] = count
	}
	return out
}

// substitute replaces free occurrences of param with applicant. A
// nested lambda that rebinds the same name shadows it; that branch is
// returned unchanged.
func substitute(e core.Expression, param *core.Identifier, applicant core.Expression) core.Expression {
	switch t := e.(type) {
	case *core.Identifier:
		if t.Name == param.Name {
			return applicant
		}
		return t
	case *core.Lambda:
		if t.Param.Name == param.Name {
			return t
		}
		return &core.Lambda{Position: t.Position, Param: t.Param, Body: substitute(t.Body, param, applicant)}
	case *core.Parentheses:
		return &core.Parentheses{Position: t.Position, Expr: substitute(t.Expr, param, applicant)}
	case *core.Apply:
		return &core.Apply{
			Position:  t.Position,
			Func:      substitute(t.Func, param, applicant),
			Applicant: substitute(t.Applicant, param, applicant),
		}
	}
	return e
}

// restoreNames strips the $N decoration from binders, bottom up. A
// binder is only restored when its surface name does not occur in the
// restored body at all; restoring it next to a free occurrence of the
// same name would capture the variable the rename protected.
func restoreNames(e core.Expression) core.Expression {
	switch t := e.(type) {
	case *core.Identifier:
		return t
	case *core.Lambda:
		body := restoreNames(t.Body)
		surface := stripMark(t.Param.Name)
		if surface == t.Param.Name || occursName(body, surface) {
			return &core.Lambda{Position: t.Position, Param: t.Param, Body: body}
		}
		restored := &core.Identifier{Position: t.Param.Position, Name: surface}
		return &core.Lambda{
			Position: t.Position,
			Param:    restored,
			Body:     alphaConvert(body, t.Param, restored),
		}
	case *core.Parentheses:
		return &core.Parentheses{Position: t.Position, Expr: restoreNames(t.Expr)}
	case *core.Apply:
		return &core.Apply{
			Position:  t.Position,
			Func:      restoreNames(t.Func),
			Applicant: restoreNames(t.Applicant),
		}
	}
	return e
}

// occursName reports whether name appears anywhere in e, as an
// occurrence or as a binder.
func occursName(e core.Expression, name string) bool {
	switch t := e.(type) {
	case *core.Identifier:
		return t.Name == name
	case *core.Lambda:
		return t.Param.Name == name || occursName(t.Body, name)
	case *core.Parentheses:
		return occursName(t.Expr, name)
	case *core.Apply:
		return occursName(t.Func, name) || occursName(t.Applicant, name)
	}
	return false
}

func stripMark(name string) string {
	if i := strings.IndexByte(name, '$'); i >= 0 {
		return name[:i]
	}
	return name
}
