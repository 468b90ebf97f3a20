package expr

import core "github.com/user/untyped"

type tokenType int

const (
	tokIdentifier tokenType = iota
	tokDot
	tokEqual
	tokLParen
	tokRParen
	tokLet
	tokWhere
)

// String returns the token kind name used in diagnostics.
func (t tokenType) String() string {
	switch t {
	case tokIdentifier:
		return "IDENTIFIER"
	case tokDot:
		return "DOT"
	case tokEqual:
		return "EQUAL"
	case tokLParen:
		return "L_PAREN"
	case tokRParen:
		return "R_PAREN"
	case tokLet:
		return "LET"
	case tokWhere:
		return "WHERE"
	default:
		return "UNKNOWN"
	}
}

// token is a positioned lexeme.
type token struct {
	typ tokenType
	lit string
	pos core.Position
}
