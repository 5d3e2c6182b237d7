// Package generate implements the output generator and semantic analyzer
// spec.md §4.4 describes: a per-symbol-name dispatch that validates each
// construct and writes target regex text, plus the fixed-length check
// active inside a lookbehind body.
//
// Grounded on reon_output_generator.h's ReonOutput class: a dispatch
// table keyed by output-symbol name, a stack of semantic-check closures
// run ahead of dispatch on every incoming symbol, and the specific
// escaping/validation rules for each handler. The `repeat` handler
// reformats range bounds with a comma (`{m,n}`) rather than the
// original's hyphen passthrough, matching spec.md's own worked example.
package generate

import (
	"io"
	"strconv"
	"strings"

	"github.com/dekarrin/reon/internal/reon/symbol"
	"github.com/dekarrin/reon/internal/reonerr"
	"github.com/dekarrin/reon/internal/util"
)

// Generator consumes the output-symbol stream a translate.Translator
// produces and writes target regex text to w. Its session state
// (known group names, group count, active semantic checks) lives for
// exactly one translation and is cleared when it sees symbol.EofSymbol.
type Generator struct {
	w        io.Writer
	variable string

	knownGroups util.KeySet[string]
	groupCount  int
	checks      []func(symbol.Symbol) error
}

// New returns a Generator writing to w, substituting variable for the
// "variable" special symbol.
func New(w io.Writer, variable string) *Generator {
	return &Generator{
		w:           w,
		variable:    variable,
		knownGroups: util.NewKeySet[string](),
	}
}

// Emit handles one output symbol. On symbol.EofSymbol it resets session
// state and returns nil without writing anything. Otherwise every active
// semantic check runs against s before it is dispatched by name; a
// literal symbol (one whose name matches no handler) is written
// verbatim.
func (g *Generator) Emit(s symbol.Symbol) error {
	if s.IsEof() {
		g.reset()
		return nil
	}

	for _, check := range g.checks {
		if err := check(s); err != nil {
			return err
		}
	}

	switch s.Name {
	case "re":
		return g.re(s)
	case "set":
		return g.set(s)
	case "ref":
		return g.ref(s)
	case "nref":
		return g.nref(s)
	case "comment":
		return g.comment(s)
	case "repeat":
		return g.repeat(s)
	case "named group":
		return g.namedGroup(s)
	case "group":
		g.groupCount++
		return nil
	case "fixed_length_check":
		g.checks = append(g.checks, g.fixedLengthCheck)
		return nil
	case "end_check":
		if len(g.checks) > 0 {
			g.checks = g.checks[:len(g.checks)-1]
		}
		return nil
	case "variable":
		return g.write(g.variable)
	default:
		return g.write(s.Name)
	}
}

func (g *Generator) reset() {
	g.knownGroups = util.NewKeySet[string]()
	g.groupCount = 0
	g.checks = nil
}

func (g *Generator) write(s string) error {
	_, err := io.WriteString(g.w, s)
	return err
}

// re escapes a decoded string's regex metacharacters and re-interprets
// the backslash escapes the scanner preserved verbatim, per spec.md's
// "re character escaping" rules.
func (g *Generator) re(s symbol.Symbol) error {
	attr := s.Attribute
	var b strings.Builder
	escaped := false
	for i := 0; i < len(attr); i++ {
		c := attr[i]
		if !escaped {
			switch c {
			case '*', '+', '?', '{', '}', '[', ']', '|', '(', ')', '$', '^', '.':
				b.WriteByte('\\')
				b.WriteByte(c)
			case '\\':
				escaped = true
			default:
				b.WriteByte(c)
			}
			continue
		}
		escaped = false
		switch c {
		case 'A', 'b', 'B', 'd', 'D', 'f', 'n', 'r', 's', 'S', 't', 'v', 'w', 'W', 'Z', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '.':
			b.WriteByte(c)
		case '^':
			b.WriteString(`\A`)
		case '$':
			b.WriteString(`\Z`)
		default:
			return reonerr.Semanticf("unknown escape sequence \\%c", c)
		}
	}
	return g.write(b.String())
}

// set escapes a character-class body and validates that every a-b range
// has a < b.
func (g *Generator) set(s symbol.Symbol) error {
	attr := s.Attribute
	var b strings.Builder
	escape := false
	rangePending := false
	var last byte
	for i := 0; i < len(attr); i++ {
		c := attr[i]
		if escape {
			escape = false
			b.WriteByte('\\')
			b.WriteByte(c)
			continue
		}
		if rangePending {
			rangePending = false
			if last >= c {
				return reonerr.Semanticf("invalid character range %c-%c", last, c)
			}
			b.WriteByte('-')
		}
		if c != '-' {
			last = c
		}
		switch c {
		case '\\':
			escape = true
		case '-':
			rangePending = true
		case ']', '^', '"':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	if rangePending {
		b.WriteByte('-')
	}
	return g.write(b.String())
}

func (g *Generator) ref(s symbol.Symbol) error {
	if !g.knownGroups.Has(s.Attribute) {
		return reonerr.Semanticf("no group named %q is known at this point", s.Attribute)
	}
	return g.write(s.Attribute)
}

func (g *Generator) nref(s symbol.Symbol) error {
	n, err := strconv.Atoi(s.Attribute)
	if err != nil || n < 1 {
		return reonerr.Semantic("only positive integers are permitted as group references")
	}
	if n > g.groupCount {
		return reonerr.Semanticf("no group with number %d", n)
	}
	return g.write(s.Attribute)
}

func (g *Generator) comment(s symbol.Symbol) error {
	var b strings.Builder
	for i := 0; i < len(s.Attribute); i++ {
		c := s.Attribute[i]
		if c == ')' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return g.write(b.String())
}

// repeat reformats a repeat spec's attribute into target-regex quantifier
// syntax: an atomic *, +, or ? passes through; a bare count becomes
// {m}; a range becomes {m,n}, {m,}, or {,n} depending on which bound the
// scanner's repeat-spec grammar supplied.
func (g *Generator) repeat(s symbol.Symbol) error {
	attr := s.Attribute
	if len(attr) == 1 {
		switch attr[0] {
		case '*', '+', '?':
			return g.write(attr)
		}
	}

	hyphen := strings.IndexByte(attr, '-')
	var out string
	switch {
	case hyphen < 0:
		out = "{" + attr + "}"
	case hyphen == 0:
		out = "{," + attr[1:] + "}"
	case hyphen == len(attr)-1:
		out = "{" + attr[:hyphen] + ",}"
	default:
		m, n := attr[:hyphen], attr[hyphen+1:]
		mi, _ := strconv.Atoi(m)
		ni, _ := strconv.Atoi(n)
		if mi >= ni {
			return reonerr.Semantic("repeat upper bound must be greater than lower bound")
		}
		out = "{" + m + "," + n + "}"
	}
	return g.write(out)
}

func (g *Generator) namedGroup(s symbol.Symbol) error {
	name := s.Attribute
	if name == "" {
		return reonerr.Semantic("identifier of a named group cannot be empty")
	}
	if !isAlpha(name[0]) && name[0] != '_' {
		return reonerr.Semanticf("identifier of a named group cannot start with %q", name[0])
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isAlnum(c) && c != '_' {
			return reonerr.Semanticf("identifier of a named group cannot contain %q", c)
		}
	}
	if g.knownGroups.Has(name) {
		return reonerr.Semanticf("multiple definitions of a group named %q", name)
	}
	g.groupCount++
	g.knownGroups.Add(name)
	return g.write(name)
}

// fixedLengthCheck is pushed onto the check stack for the body of a
// lookbehind and rejects any construct whose match length can vary:
// a non-constant repeat, a group reference, or an alternative.
func (g *Generator) fixedLengthCheck(s symbol.Symbol) error {
	switch s.Name {
	case "repeat":
		for i := 0; i < len(s.Attribute); i++ {
			c := s.Attribute[i]
			if c < '0' || c > '9' {
				return reonerr.Semantic("RE of non-constant length within a lookbehind assertion")
			}
		}
	case "ref", "nref":
		return reonerr.Semantic("group references are not permitted within a lookbehind assertion")
	case "|":
		return reonerr.Semantic("alternatives are not permitted within a lookbehind assertion")
	}
	return nil
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}
