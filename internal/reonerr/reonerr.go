// Package reonerr defines the REON error taxonomy described in spec.md §7:
// LexicalError, SyntaxError, SemanticError, GrammarError, and the exit-code
// mapping the CLI boundary collapses them to.
//
// Modeled on github.com/dekarrin/tunaq's internal/tqerrors: small
// unexported struct types implementing error, each with a constructor and
// an Unwrap, plus a package function that recovers the category by type
// switch.
package reonerr

import "fmt"

// ExitCode is one of the process exit codes spec.md §6 maps error
// categories to.
type ExitCode int

const (
	ExitSuccess        ExitCode = 0
	ExitRuntime        ExitCode = 1
	ExitBadArgs        ExitCode = 2
	ExitEngineInternal ExitCode = 3
	ExitLexical        ExitCode = 5
	ExitSyntax         ExitCode = 6
	ExitSemantic       ExitCode = 7
	ExitUnknown        ExitCode = 666
)

type lexicalError struct {
	row, col int
	msg      string
	wrap     error
}

// Lexical returns a LexicalError for a malformed token, unterminated
// string, control byte in a string, bad number, or bad \u escape, at the
// given 1-indexed row and column.
func Lexical(row, col int, msg string) error {
	return &lexicalError{row: row, col: col, msg: msg}
}

// Lexicalf is Lexical with a format string.
func Lexicalf(row, col int, format string, a ...interface{}) error {
	return Lexical(row, col, fmt.Sprintf(format, a...))
}

func (e *lexicalError) Error() string {
	return fmt.Sprintf("lexical error on row %d, col %d: %s", e.row, e.col, e.msg)
}

func (e *lexicalError) Unwrap() error { return e.wrap }

// Row returns the 1-indexed row the error occurred on.
func (e *lexicalError) Row() int { return e.row }

// Col returns the 1-indexed column the error occurred on.
func (e *lexicalError) Col() int { return e.col }

type syntaxError struct {
	row, col int
	msg      string
}

// Syntax returns a SyntaxError for a parse-table miss, terminal mismatch,
// or premature end of input, at the given 1-indexed row and column.
func Syntax(row, col int, msg string) error {
	return &syntaxError{row: row, col: col, msg: msg}
}

// Syntaxf is Syntax with a format string.
func Syntaxf(row, col int, format string, a ...interface{}) error {
	return Syntax(row, col, fmt.Sprintf(format, a...))
}

func (e *syntaxError) Error() string {
	return fmt.Sprintf("syntax error on row %d, col %d: %s", e.row, e.col, e.msg)
}

func (e *syntaxError) Row() int { return e.row }
func (e *syntaxError) Col() int { return e.col }

type semanticError struct {
	msg string
}

// Semantic returns a SemanticError: unknown reference, bad identifier,
// duplicate named group, invalid character range, bad repeat bounds,
// non-fixed-length lookbehind, forbidden escape, or an unsupported
// construct inside a lookbehind.
func Semantic(msg string) error {
	return &semanticError{msg: msg}
}

// Semanticf is Semantic with a format string.
func Semanticf(format string, a ...interface{}) error {
	return Semantic(fmt.Sprintf(format, a...))
}

func (e *semanticError) Error() string {
	return fmt.Sprintf("semantic error: %s", e.msg)
}

type grammarError struct {
	msg string
}

// Grammar returns a GrammarError: the translation grammar is not LL(1).
// This is always a construction-time error, never raised from user input.
func Grammar(msg string) error {
	return &grammarError{msg: msg}
}

// Grammarf is Grammar with a format string.
func Grammarf(format string, a ...interface{}) error {
	return Grammar(fmt.Sprintf(format, a...))
}

func (e *grammarError) Error() string {
	return fmt.Sprintf("grammar error: %s", e.msg)
}

// ExitCodeFor maps an error produced anywhere in the pipeline to the exit
// code spec.md §6 assigns its category. Errors that are not one of the
// taxonomy's types (including a plain I/O failure from the CLI boundary)
// map to ExitRuntime; nil maps to ExitSuccess.
func ExitCodeFor(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch err.(type) {
	case *lexicalError:
		return ExitLexical
	case *syntaxError:
		return ExitSyntax
	case *semanticError:
		return ExitSemantic
	case *grammarError:
		return ExitEngineInternal
	default:
		return ExitRuntime
	}
}
