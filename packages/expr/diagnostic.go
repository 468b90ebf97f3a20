package expr

import "fmt"

// Diagnostic codes.
const (
	CodeLex   = "LEX_ERROR"
	CodeParse = "PARSE_ERROR"
)

// Diagnostic is a lex or parse failure with its source location.
// Parser alternatives pass these around as values; only the one that
// survives to the entry point is reported.
type Diagnostic struct {
	Message string
	File    string
	Line    int
	Col     int
	Code    string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Col, d.Message)
}
