// Package translate implements the LL(1) dual-stack pushdown transducer
// spec.md §4.3 describes: it drives a scanner.Scanner against a
// grammar.Grammar and calls back with output symbols in left-to-right
// derivation order, without ever materializing a full parse tree.
//
// This is a purpose-built alternative to github.com/dekarrin/tunaq's
// internal/ictiobus/translation package, which evaluates a generic
// attribute grammar over a fully-built parse tree (see binding.go's
// SDDBinding.Invoke) — heavier machinery than a single-pass streaming
// translator needs. The driver loop shape (top-of-input-stack dispatch
// by non-terminal/terminal/Eof) follows internal/ictiobus/parse/ll1.go.
package translate

import (
	"github.com/dekarrin/reon/internal/reon/grammar"
	"github.com/dekarrin/reon/internal/reon/scanner"
	"github.com/dekarrin/reon/internal/reon/symbol"
	"github.com/dekarrin/reon/internal/reonerr"
	"github.com/dekarrin/reon/internal/util"
)

type slotKind int

const (
	slotPending slotKind = iota
	slotLeaf
	slotTree
)

// outSlot is one position in the pending output tree: a terminal awaiting
// an attribute, a non-terminal awaiting expansion, a resolved leaf ready
// to emit, or an expanded tree whose children replace it in the flush
// queue.
type outSlot struct {
	kind     slotKind
	sym      symbol.Symbol
	children []*outSlot
}

type frameKind int

const (
	frameEof frameKind = iota
	frameTerminal
	frameNonTerminal
)

// frame is one entry of the input parse stack spec.md §3 calls
// ParseState.input_stack, paired with the attribute-link table entries
// spec.md describes as living "between" the two stacks.
type frame struct {
	kind frameKind
	sym  symbol.Symbol

	// linkedSlots is populated for frameTerminal: the output slots that
	// receive this terminal's attribute when it is matched.
	linkedSlots []*outSlot

	// outSlot is populated for frameNonTerminal: the slot this
	// non-terminal's own expansion will turn into a tree.
	outSlot *outSlot
}

// Translator drives a scanner against a fixed Grammar, producing the
// output-symbol stream the generator consumes.
type Translator struct {
	g *grammar.Grammar
}

// New returns a Translator bound to g.
func New(g *grammar.Grammar) *Translator {
	return &Translator{g: g}
}

// Run drives sc to Eof, calling emit once per output symbol in
// left-to-right derivation order and finishing with a symbol.EofSymbol.
// emit is called synchronously; a returned error aborts the run
// immediately and is propagated to the caller without a further emit.
func (tr *Translator) Run(sc *scanner.Scanner, emit func(symbol.Symbol) error) error {
	root := &outSlot{kind: slotPending}
	queue := []*outSlot{root}

	stack := []frame{
		{kind: frameEof, sym: symbol.EofSymbol},
		{kind: frameNonTerminal, sym: symbol.NewNonTerminal(grammar.StartSymbol), outSlot: root},
	}

	flush := func() error {
		for len(queue) > 0 {
			head := queue[0]
			switch head.kind {
			case slotLeaf:
				if err := emit(head.sym); err != nil {
					return err
				}
				queue = queue[1:]
			case slotTree:
				spliced := make([]*outSlot, 0, len(head.children)+len(queue)-1)
				spliced = append(spliced, head.children...)
				spliced = append(spliced, queue[1:]...)
				queue = spliced
			default:
				return nil
			}
		}
		return nil
	}

	tok, err := sc.Next()
	if err != nil {
		return err
	}

	for {
		top := stack[len(stack)-1]

		switch top.kind {
		case frameEof:
			if !tok.IsEof() {
				return reonerr.Syntaxf(tok.Row, tok.Col, "expected end of input, found %s", tok.Name)
			}
			if err := flush(); err != nil {
				return err
			}
			return emit(symbol.EofSymbol)

		case frameNonTerminal:
			ruleIdx, ok := tr.g.Lookup(top.sym.Name, tok.Name)
			if !ok {
				expected := tr.g.ExpectedAt(top.sym.Name)
				return reonerr.Syntaxf(tok.Row, tok.Col,
					"expected one of {%s}, found %s", util.MakeTextList(expected), tok.Name)
			}
			stack = stack[:len(stack)-1]
			frames := expandRule(tr.g.Rules[ruleIdx], top.outSlot)
			for i := len(frames) - 1; i >= 0; i-- {
				stack = append(stack, frames[i])
			}
			if err := flush(); err != nil {
				return err
			}

		case frameTerminal:
			if top.sym.Name != tok.Name {
				return reonerr.Syntaxf(tok.Row, tok.Col, "expected %s, found %s", top.sym.Name, tok.Name)
			}
			for _, slot := range top.linkedSlots {
				slot.sym = slot.sym.WithAttribute(tok.Attribute)
				slot.kind = slotLeaf
			}
			stack = stack[:len(stack)-1]
			if err := flush(); err != nil {
				return err
			}
			tok, err = sc.Next()
			if err != nil {
				return err
			}
		}
	}
}

// expandRule builds the output slots for rule's OutputRHS, wires mySlot
// into a tree over them, and returns the input-stack frames for rule's
// InputRHS in left-to-right order (the caller pushes them in reverse so
// the leftmost ends up on top).
func expandRule(rule grammar.Rule, mySlot *outSlot) []frame {
	linkTargets := map[int]bool{}
	for _, targets := range rule.AttributeMap {
		for _, idx := range targets {
			linkTargets[idx] = true
		}
	}

	slots := make([]*outSlot, len(rule.OutputRHS))
	for i, s := range rule.OutputRHS {
		switch {
		case s.IsNonTerminal():
			slots[i] = &outSlot{kind: slotPending}
		case linkTargets[i]:
			slots[i] = &outSlot{kind: slotPending, sym: s}
		default:
			slots[i] = &outSlot{kind: slotLeaf, sym: s}
		}
	}
	mySlot.kind = slotTree
	mySlot.children = slots

	ntLinks := nonTerminalLinks(rule)

	var frames []frame
	terminalOccurrence := 0
	ntOccurrence := 0
	for _, s := range rule.InputRHS {
		switch {
		case s.IsTerminal():
			var linked []*outSlot
			if terminalOccurrence < len(rule.AttributeMap) {
				for _, idx := range rule.AttributeMap[terminalOccurrence] {
					linked = append(linked, slots[idx])
				}
			}
			frames = append(frames, frame{kind: frameTerminal, sym: s, linkedSlots: linked})
			terminalOccurrence++
		case s.IsNonTerminal():
			outIdx := ntLinks[ntOccurrence]
			frames = append(frames, frame{kind: frameNonTerminal, sym: s, outSlot: slots[outIdx]})
			ntOccurrence++
		}
	}
	return frames
}

// nonTerminalLinks returns, for each non-terminal occurrence in
// rule.InputRHS in order, the absolute index into rule.OutputRHS of the
// matching non-terminal occurrence (same name, same occurrence index
// among same-named occurrences). Every rule in the grammar table
// maintains this correspondence by construction: wherever a non-terminal
// appears on the input side, its translation appears by the same name,
// in the same relative order, on the output side.
func nonTerminalLinks(rule grammar.Rule) []int {
	outPositions := map[string][]int{}
	for i, s := range rule.OutputRHS {
		if s.IsNonTerminal() {
			outPositions[s.Name] = append(outPositions[s.Name], i)
		}
	}
	used := map[string]int{}

	var links []int
	for _, s := range rule.InputRHS {
		if !s.IsNonTerminal() {
			continue
		}
		idx := used[s.Name]
		used[s.Name] = idx + 1
		links = append(links, outPositions[s.Name][idx])
	}
	return links
}
