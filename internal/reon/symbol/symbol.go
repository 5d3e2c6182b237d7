// Package symbol defines the tagged-union value that flows through every
// stage of the REON-to-regex pipeline: scanner tokens, grammar rule sides,
// and the output-symbol stream the translator hands to the generator.
package symbol

// Kind identifies which variant of Symbol a value holds.
type Kind int

const (
	// Terminal is a leaf symbol carrying an attribute string. Emitted by the
	// scanner (as a Token) and appearing on either side of a GrammarRule.
	Terminal Kind = iota

	// NonTerminal appears on both sides of a GrammarRule (the output side
	// marks where its own translation goes) and on the parser's input stack;
	// it never carries an attribute.
	NonTerminal

	// Special marks an output-only symbol injected by a grammar rule's
	// output side (group, fixed_length_check, end_check, variable). It
	// carries no attribute and is never matched against scanner input.
	Special

	// Eof is the end-of-input sentinel, comparable by identity via Name
	// equal to EofName.
	Eof
)

// EofName is the reserved name of the end-of-input sentinel. It is used as
// the lookahead key in LL(1) tables and never collides with a real token
// name because the scanner never emits it as a token class.
const EofName = "$"

// Symbol is the universal currency of the pipeline. Two Symbols are equal
// iff Kind, Name, and Attribute all match.
type Symbol struct {
	Kind      Kind
	Name      string
	Attribute string
}

// NewTerminal builds a Terminal symbol with the given attribute.
func NewTerminal(name, attribute string) Symbol {
	return Symbol{Kind: Terminal, Name: name, Attribute: attribute}
}

// NewNonTerminal builds a NonTerminal symbol.
func NewNonTerminal(name string) Symbol {
	return Symbol{Kind: NonTerminal, Name: name}
}

// NewSpecial builds a Special output marker.
func NewSpecial(name string) Symbol {
	return Symbol{Kind: Special, Name: name}
}

// EofSymbol is the distinguished end-of-input sentinel.
var EofSymbol = Symbol{Kind: Eof, Name: EofName}

// IsTerminal reports whether s is a Terminal.
func (s Symbol) IsTerminal() bool { return s.Kind == Terminal }

// IsNonTerminal reports whether s is a NonTerminal.
func (s Symbol) IsNonTerminal() bool { return s.Kind == NonTerminal }

// IsSpecial reports whether s is a Special marker.
func (s Symbol) IsSpecial() bool { return s.Kind == Special }

// IsEof reports whether s is the end-of-input sentinel.
func (s Symbol) IsEof() bool { return s.Kind == Eof }

// String gives a debug-friendly representation; it is not used for output
// generation, only for error messages and test failures.
func (s Symbol) String() string {
	switch s.Kind {
	case Terminal:
		if s.Attribute == "" {
			return s.Name
		}
		return s.Name + "(" + s.Attribute + ")"
	case NonTerminal:
		return s.Name
	case Special:
		return "<" + s.Name + ">"
	case Eof:
		return EofName
	default:
		return "?"
	}
}

// WithAttribute returns a copy of s carrying a different attribute string.
// Used by the translator when propagating a matched token's attribute into
// a linked output-terminal slot.
func (s Symbol) WithAttribute(attribute string) Symbol {
	s.Attribute = attribute
	return s
}
