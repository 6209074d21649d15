// Package diag defines the closed error taxonomy shared by the lexer,
// parser and interpreter. Every failure the pipeline can produce is a
// *diag.Error carrying one of the kinds below; there is no recovery and no
// multi-error reporting, the first defect aborts the run.
package diag

import "fmt"

// Kind classifies a pipeline failure.
type Kind uint8

const (
	KindLex Kind = iota
	KindSyntax
	KindUndefinedVariable
	KindDivisionByZero
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "lex error"
	case KindSyntax:
		return "syntax error"
	case KindUndefinedVariable:
		return "undefined variable"
	case KindDivisionByZero:
		return "division by zero"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Error is a pipeline failure with an optional source position.
// Line and Col are 1-based; a zero Line means no position is available.
type Error struct {
	Kind Kind
	Msg  string
	Line int
	Col  int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Errorf builds an Error of the given kind at the given position.
func Errorf(kind Kind, line, col int, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Line: line, Col: col}
}
