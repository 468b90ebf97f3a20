package expr

import (
	"fmt"
	"strings"

	core "github.com/user/untyped"
)

// tokenize converts source text into its token sequence. Space and
// newline are skipped but still advance the line/col bookkeeping.
// `let` and `where` are matched by fixed lookahead from the current
// character, before the identifier rule gets a chance: an identifier
// that begins with the exact keyword spelling splits at the keyword.
// Any other character fails lexing immediately.
func tokenize(file, src string) ([]token, *Diagnostic) {
	var tokens []token
	line, col := 1, 0

	for i := 0; i < len(src); {
		c := src[i]
		i++
		col++

		if c == '\n' {
			line++
			col = 0
			continue
		}
		if c == ' ' {
			continue
		}

		at := core.Position{File: file, Line: line, Col: col}

		switch c {
		case '.':
			tokens = append(tokens, token{tokDot, ".", at})
			continue
		case '=':
			tokens = append(tokens, token{tokEqual, "=", at})
			continue
		case '(':
			tokens = append(tokens, token{tokLParen, "(", at})
			continue
		case ')':
			tokens = append(tokens, token{tokRParen, ")", at})
			continue
		}

		if c == 'l' && strings.HasPrefix(src[i:], "et") {
			tokens = append(tokens, token{tokLet, "let", at})
			i += 2
			col += 2
			continue
		}
		if c == 'w' && strings.HasPrefix(src[i:], "here") {
			tokens = append(tokens, token{tokWhere, "where", at})
			i += 4
			col += 4
			continue
		}

		if isIdentStart(c) {
			start := i - 1
			for i < len(src) && isIdentPart(src[i]) {
				i++
				col++
			}
			tokens = append(tokens, token{tokIdentifier, src[start:i], at})
			continue
		}

		return nil, &Diagnostic{
			Message: fmt.Sprintf("Unexpected character %q", c),
			File:    file,
			Line:    line,
			Col:     col,
			Code:    CodeLex,
		}
	}

	return tokens, nil
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}
