// Package grammar holds the REON-to-regex translation grammar described in
// spec.md §4.2 as a constant data artifact, plus the LL(1) analysis
// (first/follow/predict sets and the parse table) spec.md §4.3 says the
// translator derives from it once at construction time.
//
// The rule/production decomposition is grounded on
// github.com/dekarrin/tunaq's internal/ictiobus/grammar/item.go (the LR
// item data shapes that package builds its tables from); the first/follow
// fixed-point computation follows standard compiler-construction
// technique, none of which is covered by a library in the example corpus,
// so it is hand-written here.
package grammar

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/reon/internal/reon/symbol"
	"github.com/dekarrin/reon/internal/reonerr"
	"github.com/dekarrin/reon/internal/util"
)

// EpsilonName is the pseudo-terminal added to first/follow/predict sets to
// represent a production that derives the empty string.
const EpsilonName = ""

// Rule is spec.md §3's GrammarRule: an LHS non-terminal name, an input
// production, an output production, and an attribute-propagation map.
//
// AttributeMap has one entry per Terminal appearing in InputRHS, in the
// order they occur. Each entry lists the absolute indices into OutputRHS
// of the output terminals that inherit that input terminal's attribute
// when it is matched. A nil AttributeMap is equivalent to every entry
// being empty (no propagation) unless DefaultAttributeMap is used to
// derive one from matching names.
type Rule struct {
	LHS         string
	InputRHS    []symbol.Symbol
	OutputRHS   []symbol.Symbol
	AttributeMap [][]int
}

// inputTerminalCount returns how many Terminal symbols appear in InputRHS,
// i.e. how many entries AttributeMap is expected to have.
func (r Rule) inputTerminalCount() int {
	n := 0
	for _, s := range r.InputRHS {
		if s.IsTerminal() {
			n++
		}
	}
	return n
}

// DefaultAttributeMap builds the identity attribute map spec.md §3
// describes: each input terminal hands its attribute to the output
// terminal of the same name, matched in positional order among same-named
// occurrences. Rules that need anything else must set AttributeMap
// explicitly.
func DefaultAttributeMap(inputRHS, outputRHS []symbol.Symbol) [][]int {
	outPositionsByName := map[string][]int{}
	for i, s := range outputRHS {
		if s.IsTerminal() {
			outPositionsByName[s.Name] = append(outPositionsByName[s.Name], i)
		}
	}
	used := map[string]int{}

	var m [][]int
	for _, s := range inputRHS {
		if !s.IsTerminal() {
			continue
		}
		positions := outPositionsByName[s.Name]
		idx := used[s.Name]
		used[s.Name] = idx + 1
		if idx < len(positions) {
			m = append(m, []int{positions[idx]})
		} else {
			m = append(m, nil)
		}
	}
	return m
}

// Grammar is an ordered set of Rules plus a start non-terminal, together
// with the first/follow/predict sets and LL(1) parse table derived from
// them once at construction time.
type Grammar struct {
	Rules []Rule
	Start string

	nonTerminals util.KeySet[string]
	terminals    util.KeySet[string]
	first        map[string]util.KeySet[string]
	follow       map[string]util.KeySet[string]
	table        map[tableKey]int
}

type tableKey struct {
	nonTerminal string
	lookahead   string
}

// New builds a Grammar from an ordered rule list and start symbol,
// computing first/follow sets and the LL(1) parse table. It returns a
// GrammarError if the rules are not LL(1) (two rules for the same
// non-terminal would fire on the same lookahead).
func New(rules []Rule, start string) (*Grammar, error) {
	g := &Grammar{
		Rules: rules,
		Start: start,
	}
	g.collectSymbols()
	g.computeFirst()
	g.computeFollow()
	if err := g.buildTable(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grammar) collectSymbols() {
	g.nonTerminals = util.NewKeySet[string]()
	for _, r := range g.Rules {
		g.nonTerminals.Add(r.LHS)
	}

	g.terminals = util.NewKeySet[string]()
	for _, r := range g.Rules {
		for _, s := range r.InputRHS {
			if s.IsTerminal() {
				g.terminals.Add(s.Name)
			}
		}
	}
}

// firstOfSeq computes First of a symbol sequence (the input side only;
// output symbols never participate in the LL(1) analysis).
func (g *Grammar) firstOfSeq(seq []symbol.Symbol) util.KeySet[string] {
	result := util.NewKeySet[string]()
	nullable := true
	for _, s := range seq {
		var fs util.KeySet[string]
		if s.IsTerminal() {
			fs = util.NewKeySet[string]()
			fs.Add(s.Name)
		} else {
			fs = g.first[s.Name]
		}
		for _, v := range fs.Elements() {
			if v != EpsilonName {
				result.Add(v)
			}
		}
		if !fs.Has(EpsilonName) {
			nullable = false
			break
		}
	}
	if nullable {
		result.Add(EpsilonName)
	}
	return result
}

func (g *Grammar) computeFirst() {
	g.first = map[string]util.KeySet[string]{}
	for _, nt := range g.nonTerminals.Elements() {
		g.first[nt] = util.NewKeySet[string]()
	}

	changed := true
	for changed {
		changed = false
		for _, r := range g.Rules {
			fs := g.firstOfSeq(r.InputRHS)
			cur := g.first[r.LHS]
			for _, v := range fs.Elements() {
				if !cur.Has(v) {
					cur.Add(v)
					changed = true
				}
			}
		}
	}
}

func (g *Grammar) computeFollow() {
	g.follow = map[string]util.KeySet[string]{}
	for _, nt := range g.nonTerminals.Elements() {
		g.follow[nt] = util.NewKeySet[string]()
	}
	g.follow[g.Start].Add(symbol.EofName)

	changed := true
	for changed {
		changed = false
		for _, r := range g.Rules {
			for i, s := range r.InputRHS {
				if !s.IsNonTerminal() {
					continue
				}
				beta := r.InputRHS[i+1:]
				betaFirst := g.firstOfSeq(beta)
				cur := g.follow[s.Name]
				for _, v := range betaFirst.Elements() {
					if v != EpsilonName && !cur.Has(v) {
						cur.Add(v)
						changed = true
					}
				}
				if betaFirst.Has(EpsilonName) {
					for _, v := range g.follow[r.LHS].Elements() {
						if !cur.Has(v) {
							cur.Add(v)
							changed = true
						}
					}
				}
			}
		}
	}
}

// Predict computes the predict set of a rule per the standard LL(1)
// definition: first(InputRHS), plus follow(LHS) when InputRHS is
// nullable.
func (g *Grammar) Predict(r Rule) util.KeySet[string] {
	fs := g.firstOfSeq(r.InputRHS)
	result := util.NewKeySet[string]()
	for _, v := range fs.Elements() {
		if v != EpsilonName {
			result.Add(v)
		}
	}
	if fs.Has(EpsilonName) {
		for _, v := range g.follow[r.LHS].Elements() {
			result.Add(v)
		}
	}
	return result
}

func (g *Grammar) buildTable() error {
	g.table = map[tableKey]int{}
	for i, r := range g.Rules {
		predict := g.Predict(r)
		for _, a := range predict.Elements() {
			key := tableKey{nonTerminal: r.LHS, lookahead: a}
			if existing, ok := g.table[key]; ok {
				return reonerr.Grammarf(
					"grammar is not LL(1): rules %d and %d both predict %q -> %q",
					existing, i, r.LHS, a)
			}
			g.table[key] = i
		}
	}
	return nil
}

// Lookup returns the index into Rules the parse table selects for
// non-terminal nt with lookahead terminal name la, or (-1, false) if the
// table has no entry (a SyntaxError at the driver level).
func (g *Grammar) Lookup(nt, la string) (int, bool) {
	i, ok := g.table[tableKey{nonTerminal: nt, lookahead: la}]
	return i, ok
}

// FirstNames returns the names in first(nt), sorted, for use in syntax
// error messages ("expected one of {...}").
func (g *Grammar) FirstNames(nt string) []string {
	fs := g.first[nt]
	names := fs.Elements()
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == EpsilonName {
			continue
		}
		out = append(out, n)
	}
	return out
}

// ExpectedAt returns the sorted set of terminal names valid as lookahead
// for non-terminal nt right now: the union of predict sets of every rule
// with that LHS.
func (g *Grammar) ExpectedAt(nt string) []string {
	set := util.NewKeySet[string]()
	for _, r := range g.Rules {
		if r.LHS != nt {
			continue
		}
		for _, v := range g.Predict(r).Elements() {
			set.Add(v)
		}
	}
	names := set.Elements()
	sort.Strings(names)
	return names
}

// String renders the rule table for the --dump-table CLI flag: one row
// per rule, the input production, the output production, and the
// lookahead set that predicts it.
func (g *Grammar) String() string {
	data := [][]string{{"#", "LHS", "Input", "Output", "Predict"}}
	for i, r := range g.Rules {
		predict := g.Predict(r).Elements()
		sort.Strings(predict)
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			r.LHS,
			formatSeq(r.InputRHS),
			formatSeq(r.OutputRHS),
			formatNames(predict),
		})
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 20, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func formatNames(names []string) string {
	s := ""
	for i, n := range names {
		if i > 0 {
			s += " "
		}
		if n == EpsilonName {
			s += "ε"
		} else {
			s += n
		}
	}
	return s
}

func formatSeq(seq []symbol.Symbol) string {
	if len(seq) == 0 {
		return "ε"
	}
	s := ""
	for i, sym := range seq {
		if i > 0 {
			s += " "
		}
		s += sym.Name
	}
	return s
}
