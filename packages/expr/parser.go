package expr

import (
	"fmt"

	core "github.com/user/untyped"
)

// parser holds the token sequence and source file name. Every parse
// method takes a position and returns the node, the next position and
// nil, or a diagnostic. A failed alternative consumes nothing; the
// caller retries from the same position. The methods never mutate the
// token sequence.
type parser struct {
	file   string
	tokens []token
}

// Parse parses a single expression from source text. It fails with a
// diagnostic on a lex error, a parse error, or trailing input.
func Parse(src, file string) (core.Expression, error) {
	tokens, lexErr := tokenize(file, src)
	if lexErr != nil {
		return nil, lexErr
	}
	p := &parser{file: file, tokens: tokens}

	expr, next, diag := p.parseExpr(0)
	if diag != nil {
		return nil, diag
	}
	if diag := p.expectEOF(next); diag != nil {
		return nil, diag
	}
	return expr, nil
}

// ParseProgram parses `Binding* Expr`: any number of top-level let
// bindings followed by the main expression.
func ParseProgram(src, file string) (*core.Program, error) {
	tokens, lexErr := tokenize(file, src)
	if lexErr != nil {
		return nil, lexErr
	}
	p := &parser{file: file, tokens: tokens}

	var bindings []*core.Binding
	pos := 0
	for p.isLet(pos) {
		binding, next, diag := p.parseBinding(pos)
		if diag == nil && p.isLet(next) {
			// Cleanly delimited by the next binding.
			bindings = append(bindings, binding)
			pos = next
			continue
		}
		// Last binding: greedy application would swallow the program's
		// main expression into the binding body, so bound the
		// right-hand side to leave a parseable trailing expression.
		binding, next, diag = p.parseBindingBounded(pos)
		if diag != nil {
			return nil, diag
		}
		bindings = append(bindings, binding)
		pos = next
		break
	}

	expr, next, diag := p.parseExpr(pos)
	if diag != nil {
		return nil, diag
	}
	if diag := p.expectEOF(next); diag != nil {
		return nil, diag
	}

	at := core.Position{File: file, Line: 1, Col: 1}
	if len(tokens) > 0 {
		at = tokens[0].pos
	}
	return &core.Program{Position: at, Bindings: bindings, Expr: expr}, nil
}

// ParseBinding parses a single `let name = expr` line.
func ParseBinding(src, file string) (*core.Binding, error) {
	tokens, lexErr := tokenize(file, src)
	if lexErr != nil {
		return nil, lexErr
	}
	p := &parser{file: file, tokens: tokens}

	binding, next, diag := p.parseBinding(0)
	if diag != nil {
		return nil, diag
	}
	if diag := p.expectEOF(next); diag != nil {
		return nil, diag
	}
	return binding, nil
}

// expect checks the token at pos against the wanted kind. At end of
// input the diagnostic carries the position of the last token, the
// closest thing to where the missing token should have been.
func (p *parser) expect(pos int, tt tokenType) (token, *Diagnostic) {
	if pos >= len(p.tokens) {
		at := core.Position{File: p.file, Line: 1, Col: 1}
		if len(p.tokens) > 0 {
			at = p.tokens[len(p.tokens)-1].pos
		}
		return token{}, &Diagnostic{
			Message: fmt.Sprintf("Expected %s but got EOF", tt),
			File:    at.File,
			Line:    at.Line,
			Col:     at.Col,
			Code:    CodeParse,
		}
	}
	t := p.tokens[pos]
	if t.typ != tt {
		return token{}, &Diagnostic{
			Message: fmt.Sprintf("Expected %s but got %s", tt, t.typ),
			File:    t.pos.File,
			Line:    t.pos.Line,
			Col:     t.pos.Col,
			Code:    CodeParse,
		}
	}
	return t, nil
}

func (p *parser) expectEOF(pos int) *Diagnostic {
	if pos == len(p.tokens) {
		return nil
	}
	t := p.tokens[pos]
	return &Diagnostic{
		Message: fmt.Sprintf("Expected EOF but got %s", t.typ),
		File:    t.pos.File,
		Line:    t.pos.Line,
		Col:     t.pos.Col,
		Code:    CodeParse,
	}
}

// parseExpr tries the general alternatives in order: an application
// chain first, then a lone primal expression.
func (p *parser) parseExpr(pos int) (core.Expression, int, *Diagnostic) {
	if expr, next, diag := p.parseApply(pos); diag == nil {
		return expr, next, nil
	}
	return p.parsePrimalExpr(pos)
}

// parseApply greedily left-folds primal expressions into nested Apply
// nodes. With no applicant after the first primal expression, that
// expression is returned unchanged rather than wrapped.
func (p *parser) parseApply(pos int) (core.Expression, int, *Diagnostic) {
	fn, next, diag := p.parsePrimalExpr(pos)
	if diag != nil {
		return nil, 0, diag
	}
	for {
		applicant, after, diag := p.parsePrimalExpr(next)
		if diag != nil {
			return fn, next, nil
		}
		fn = &core.Apply{Position: p.tokens[pos].pos, Func: fn, Applicant: applicant}
		next = after
	}
}

// parsePrimalExpr tries Lambda, then Parentheses, then a bare
// Identifier. Only the last alternative's diagnostic survives.
func (p *parser) parsePrimalExpr(pos int) (core.Expression, int, *Diagnostic) {
	if expr, next, diag := p.parseLambda(pos); diag == nil {
		return expr, next, nil
	}
	if expr, next, diag := p.parseParentheses(pos); diag == nil {
		return expr, next, nil
	}
	tok, diag := p.expect(pos, tokIdentifier)
	if diag != nil {
		return nil, 0, diag
	}
	return &core.Identifier{Position: tok.pos, Name: tok.lit}, pos + 1, nil
}

func (p *parser) parseLambda(pos int) (core.Expression, int, *Diagnostic) {
	tok, diag := p.expect(pos, tokIdentifier)
	if diag != nil {
		return nil, 0, diag
	}
	param := &core.Identifier{Position: tok.pos, Name: tok.lit}

	if _, diag := p.expect(pos+1, tokDot); diag != nil {
		return nil, 0, diag
	}

	body, next, diag := p.parseExpr(pos + 2)
	if diag != nil {
		return nil, 0, diag
	}
	return &core.Lambda{Position: tok.pos, Param: param, Body: body}, next, nil
}

func (p *parser) parseParentheses(pos int) (core.Expression, int, *Diagnostic) {
	open, diag := p.expect(pos, tokLParen)
	if diag != nil {
		return nil, 0, diag
	}

	expr, next, diag := p.parseExpr(pos + 1)
	if diag != nil {
		return nil, 0, diag
	}

	if _, diag := p.expect(next, tokRParen); diag != nil {
		return nil, 0, diag
	}
	return &core.Parentheses{Position: open.pos, Expr: expr}, next + 1, nil
}

func (p *parser) parseBinding(pos int) (*core.Binding, int, *Diagnostic) {
	letTok, diag := p.expect(pos, tokLet)
	if diag != nil {
		return nil, 0, diag
	}

	tok, diag := p.expect(pos+1, tokIdentifier)
	if diag != nil {
		return nil, 0, diag
	}
	name := &core.Identifier{Position: tok.pos, Name: tok.lit}

	if _, diag := p.expect(pos+2, tokEqual); diag != nil {
		return nil, 0, diag
	}

	expr, next, diag := p.parseExpr(pos + 3)
	if diag != nil {
		return nil, 0, diag
	}
	return &core.Binding{Position: letTok.pos, Name: name, Expr: expr}, next, nil
}

// parseBindingBounded parses a binding whose right-hand side stops at a
// point that leaves the rest of the input parseable as a complete
// expression. Splits that coincide with a line break win, so the usual
// one-binding-per-line layout parses as written; otherwise the shortest
// valid right-hand side is taken. Falls back to the greedy parse when
// no split exists, so the usual diagnostics surface.
func (p *parser) parseBindingBounded(pos int) (*core.Binding, int, *Diagnostic) {
	letTok, diag := p.expect(pos, tokLet)
	if diag != nil {
		return nil, 0, diag
	}
	tok, diag := p.expect(pos+1, tokIdentifier)
	if diag != nil {
		return nil, 0, diag
	}
	name := &core.Identifier{Position: tok.pos, Name: tok.lit}
	if _, diag := p.expect(pos+2, tokEqual); diag != nil {
		return nil, 0, diag
	}

	start := pos + 3
	fallback := -1
	for split := start + 1; split < len(p.tokens); split++ {
		head := &parser{file: p.file, tokens: p.tokens[:split]}
		expr, next, diag := head.parseExpr(start)
		if diag != nil || next != split {
			continue
		}
		if _, next, diag := p.parseExpr(split); diag != nil || next != len(p.tokens) {
			continue
		}
		if p.tokens[split].pos.Line > p.tokens[split-1].pos.Line {
			return &core.Binding{Position: letTok.pos, Name: name, Expr: expr}, split, nil
		}
		if fallback < 0 {
			fallback = split
		}
	}
	if fallback >= 0 {
		head := &parser{file: p.file, tokens: p.tokens[:fallback]}
		expr, _, _ := head.parseExpr(start)
		return &core.Binding{Position: letTok.pos, Name: name, Expr: expr}, fallback, nil
	}
	return p.parseBinding(pos)
}

func (p *parser) isLet(pos int) bool {
	return pos < len(p.tokens) && p.tokens[pos].typ == tokLet
}
