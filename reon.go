// Package reon translates REON documents, the JSON-structured authoring
// syntax described in the package's component subpackages, into Python 3
// re syntax.
//
// Grounded on github.com/dekarrin/tunaq's engine.go and
// internal/ictiobus.go: a small top-level driver type that composes the
// library's pipeline stages (here: scanner, translate, generate) behind a
// couple of entry-point methods, instead of forcing every caller to wire
// the stages together by hand.
package reon

import (
	"io"

	"github.com/dekarrin/reon/internal/reon/generate"
	"github.com/dekarrin/reon/internal/reon/grammar"
	"github.com/dekarrin/reon/internal/reon/scanner"
	"github.com/dekarrin/reon/internal/reon/translate"
	"github.com/dekarrin/reon/internal/reonerr"
)

// DefaultVariable is the Python variable name a translation assigns the
// compiled pattern to when the caller does not configure one.
const DefaultVariable = "re"

// Translator compiles REON source into a Python re assignment statement.
// It owns the immutable grammar table derived once at construction; the
// scanner, parse stacks, and generator session state it creates per call
// to Translate are scoped to that single run.
type Translator struct {
	g *grammar.Grammar
}

// New builds a Translator, computing the translation grammar's LL(1)
// parse table. The only error it can return is a GrammarError, and only
// if the table built into this package were ever edited into a
// non-LL(1) shape; a caller should treat that as a programming error.
func New() (*Translator, error) {
	g, err := grammar.NewDefault()
	if err != nil {
		return nil, err
	}
	return &Translator{g: g}, nil
}

// Translate reads a REON document from r and writes
// "<variable> = r\"(?m)<pattern>\"\n" to w. variable defaults to
// DefaultVariable when empty.
//
// Translate returns a LexicalError, SyntaxError, or SemanticError from
// package reonerr on malformed or semantically invalid input, or an
// unwrapped error from r or w on an I/O failure. Partial output may
// already have been written to w when an error is returned.
func (tr *Translator) Translate(r io.Reader, w io.Writer, variable string) error {
	if variable == "" {
		variable = DefaultVariable
	}

	sc, err := scanner.New(r)
	if err != nil {
		return err
	}

	gen := generate.New(w, variable)
	t := translate.New(tr.g)

	return t.Run(sc, gen.Emit)
}

// DumpTable renders the translator's LL(1) grammar table for debugging.
func (tr *Translator) DumpTable() string {
	return tr.g.String()
}

// ExitCodeFor maps an error Translate returned to the process exit code
// spec.md's CLI collaborator assigns its category, per reonerr.ExitCodeFor.
func ExitCodeFor(err error) reonerr.ExitCode {
	return reonerr.ExitCodeFor(err)
}
