package grammar

import "github.com/dekarrin/reon/internal/reon/symbol"

// Shorthand constructors used only while building the rule table below;
// they exist to keep Rules readable as a data table rather than to be a
// general-purpose API (contrast symbol.NewTerminal, which the scanner
// calls directly).
func nt(name string) symbol.Symbol { return symbol.NewNonTerminal(name) }
func t(name string) symbol.Symbol  { return symbol.NewTerminal(name, "") }
func sp(name string) symbol.Symbol { return symbol.NewSpecial(name) }

// Rules is the translation grammar spec.md §4.2 describes: the fixed
// table that drives the LL(1) analysis in grammar.go and, at runtime,
// the translator in package translate. Start is "E".
//
// Grounded directly on the rule-by-rule table in reon_translation_grammar.cpp
// (the constant reonGrammar), re-keyed to this repository's token
// vocabulary. Every literal output terminal whose Name is not one of the
// output generator's handler names (re, set, ref, nref, comment, repeat,
// named group) is emitted verbatim by the generator's literal case.
var Rules = []Rule{
	// 0: E -> RE
	{
		LHS:       "E",
		InputRHS:  []symbol.Symbol{nt("RE")},
		OutputRHS: []symbol.Symbol{sp("variable"), t(" = r\"(?m)"), nt("RE"), t("\"\n")},
	},
	// 1: RE -> ε
	{
		LHS: "RE",
	},
	// 2: RE -> REFULL
	{
		LHS:       "RE",
		InputRHS:  []symbol.Symbol{nt("REFULL")},
		OutputRHS: []symbol.Symbol{nt("REFULL")},
	},
	// 3: REFULL -> true
	{
		LHS:          "REFULL",
		InputRHS:     []symbol.Symbol{t("true")},
		OutputRHS:    []symbol.Symbol{t("re")},
		AttributeMap: [][]int{nil},
	},
	// 4: REFULL -> false
	{
		LHS:          "REFULL",
		InputRHS:     []symbol.Symbol{t("false")},
		OutputRHS:    []symbol.Symbol{t("(?!)")},
		AttributeMap: [][]int{nil},
	},
	// 5: REFULL -> null
	{
		LHS:          "REFULL",
		InputRHS:     []symbol.Symbol{t("null")},
		OutputRHS:    []symbol.Symbol{t("(?!)")},
		AttributeMap: [][]int{nil},
	},
	// 6: REFULL -> string
	{
		LHS:          "REFULL",
		InputRHS:     []symbol.Symbol{t("string")},
		OutputRHS:    []symbol.Symbol{t("re")},
		AttributeMap: [][]int{{0}},
	},
	// 7: REFULL -> "[" RE-listE "]"
	{
		LHS:          "REFULL",
		InputRHS:     []symbol.Symbol{t("["), nt("RE-listE"), t("]")},
		OutputRHS:    []symbol.Symbol{nt("RE-listE")},
		AttributeMap: [][]int{nil, nil},
	},
	// 8: REFULL -> "{" OBJ "}"
	{
		LHS:          "REFULL",
		InputRHS:     []symbol.Symbol{t("{"), nt("OBJ"), t("}")},
		OutputRHS:    []symbol.Symbol{nt("OBJ")},
		AttributeMap: [][]int{nil, nil},
	},
	// 9: OBJ -> repeat : RE
	{
		LHS:          "OBJ",
		InputRHS:     []symbol.Symbol{t("repeat"), t(":"), nt("RE")},
		OutputRHS:    []symbol.Symbol{t("(?:"), nt("RE"), t(")"), t("repeat")},
		AttributeMap: [][]int{{3}, nil},
	},
	// 10: OBJ -> "non-greedy repeat" : RE
	{
		LHS:          "OBJ",
		InputRHS:     []symbol.Symbol{t("non-greedy repeat"), t(":"), nt("RE")},
		OutputRHS:    []symbol.Symbol{t("(?:"), nt("RE"), t(")"), t("repeat"), t("?")},
		AttributeMap: [][]int{{3}, nil},
	},
	// 11: OBJ -> set : string
	{
		LHS:          "OBJ",
		InputRHS:     []symbol.Symbol{t("set"), t(":"), t("string")},
		OutputRHS:    []symbol.Symbol{t("["), t("set"), t("]")},
		AttributeMap: [][]int{nil, nil, {1}},
	},
	// 12: OBJ -> !set : string
	{
		LHS:          "OBJ",
		InputRHS:     []symbol.Symbol{t("!set"), t(":"), t("string")},
		OutputRHS:    []symbol.Symbol{t("[^"), t("set"), t("]")},
		AttributeMap: [][]int{nil, nil, {1}},
	},
	// 13: OBJ -> alternatives : "[" RE-AlistE "]"
	{
		LHS:          "OBJ",
		InputRHS:     []symbol.Symbol{t("alternatives"), t(":"), t("["), nt("RE-AlistE"), t("]")},
		OutputRHS:    []symbol.Symbol{nt("RE-AlistE")},
		AttributeMap: [][]int{nil, nil, nil, nil},
	},
	// 14: OBJ -> group : RE
	{
		LHS:          "OBJ",
		InputRHS:     []symbol.Symbol{t("group"), t(":"), nt("RE")},
		OutputRHS:    []symbol.Symbol{t("("), sp("group"), nt("RE"), t(")")},
		AttributeMap: [][]int{nil, nil},
	},
	// 15: OBJ -> "named group" : RE
	{
		LHS:          "OBJ",
		InputRHS:     []symbol.Symbol{t("named group"), t(":"), nt("RE")},
		OutputRHS:    []symbol.Symbol{t("(?P<"), t("named group"), t(">"), nt("RE"), t(")")},
		AttributeMap: [][]int{{1}, nil},
	},
	// 16: OBJ -> "match group" : Ref
	{
		LHS:          "OBJ",
		InputRHS:     []symbol.Symbol{t("match group"), t(":"), nt("Ref")},
		OutputRHS:    []symbol.Symbol{nt("Ref")},
		AttributeMap: [][]int{nil, nil},
	},
	// 17: OBJ -> comment : string
	{
		LHS:          "OBJ",
		InputRHS:     []symbol.Symbol{t("comment"), t(":"), t("string")},
		OutputRHS:    []symbol.Symbol{t("(?#"), t("comment"), t(")")},
		AttributeMap: [][]int{nil, nil, {1}},
	},
	// 18: OBJ -> lookahead : RE
	{
		LHS:          "OBJ",
		InputRHS:     []symbol.Symbol{t("lookahead"), t(":"), nt("RE")},
		OutputRHS:    []symbol.Symbol{t("(?="), nt("RE"), t(")")},
		AttributeMap: [][]int{nil, nil},
	},
	// 19: OBJ -> !lookahead : RE
	{
		LHS:          "OBJ",
		InputRHS:     []symbol.Symbol{t("!lookahead"), t(":"), nt("RE")},
		OutputRHS:    []symbol.Symbol{t("(?!"), nt("RE"), t(")")},
		AttributeMap: [][]int{nil, nil},
	},
	// 20: OBJ -> lookbehind : RE
	{
		LHS:          "OBJ",
		InputRHS:     []symbol.Symbol{t("lookbehind"), t(":"), nt("RE")},
		OutputRHS:    []symbol.Symbol{t("(?<="), sp("fixed_length_check"), nt("RE"), sp("end_check"), t(")")},
		AttributeMap: [][]int{nil, nil},
	},
	// 21: OBJ -> !lookbehind : RE
	{
		LHS:          "OBJ",
		InputRHS:     []symbol.Symbol{t("!lookbehind"), t(":"), nt("RE")},
		OutputRHS:    []symbol.Symbol{t("(?<!"), sp("fixed_length_check"), nt("RE"), sp("end_check"), t(")")},
		AttributeMap: [][]int{nil, nil},
	},
	// 22: OBJ -> if : IfRef , then : RE Else
	{
		LHS:          "OBJ",
		InputRHS:     []symbol.Symbol{t("if"), t(":"), nt("IfRef"), t(","), t("then"), t(":"), nt("RE"), nt("Else")},
		OutputRHS:    []symbol.Symbol{t("(?("), nt("IfRef"), t(")"), nt("RE"), nt("Else"), t(")")},
		AttributeMap: [][]int{nil, nil, nil, nil, nil},
	},
	// 23: Ref -> number
	{
		LHS:          "Ref",
		InputRHS:     []symbol.Symbol{t("number")},
		OutputRHS:    []symbol.Symbol{t("\\"), t("nref")},
		AttributeMap: [][]int{{1}},
	},
	// 24: Ref -> string
	{
		LHS:          "Ref",
		InputRHS:     []symbol.Symbol{t("string")},
		OutputRHS:    []symbol.Symbol{t("(?P="), t("ref"), t(")")},
		AttributeMap: [][]int{{1}},
	},
	// 25: IfRef -> number
	{
		LHS:          "IfRef",
		InputRHS:     []symbol.Symbol{t("number")},
		OutputRHS:    []symbol.Symbol{t("nref")},
		AttributeMap: [][]int{{0}},
	},
	// 26: IfRef -> string
	{
		LHS:          "IfRef",
		InputRHS:     []symbol.Symbol{t("string")},
		OutputRHS:    []symbol.Symbol{t("ref")},
		AttributeMap: [][]int{{0}},
	},
	// 27: Else -> ε
	{
		LHS: "Else",
	},
	// 28: Else -> "," else : RE
	{
		LHS:          "Else",
		InputRHS:     []symbol.Symbol{t(","), t("else"), t(":"), nt("RE")},
		OutputRHS:    []symbol.Symbol{t("|"), nt("RE")},
		AttributeMap: [][]int{nil, nil, nil},
	},
	// 29: RE-listE -> ε
	{
		LHS: "RE-listE",
	},
	// 30: RE-listE -> REFULL RE-list
	{
		LHS:       "RE-listE",
		InputRHS:  []symbol.Symbol{nt("REFULL"), nt("RE-list")},
		OutputRHS: []symbol.Symbol{nt("REFULL"), nt("RE-list")},
	},
	// 31: RE-list -> ε
	{
		LHS: "RE-list",
	},
	// 32: RE-list -> "," RE-list-comma
	{
		LHS:          "RE-list",
		InputRHS:     []symbol.Symbol{t(","), nt("RE-list-comma")},
		OutputRHS:    []symbol.Symbol{nt("RE-list-comma")},
		AttributeMap: [][]int{nil},
	},
	// 33: RE-list-comma -> ε
	{
		LHS: "RE-list-comma",
	},
	// 34: RE-list-comma -> REFULL RE-list
	{
		LHS:       "RE-list-comma",
		InputRHS:  []symbol.Symbol{nt("REFULL"), nt("RE-list")},
		OutputRHS: []symbol.Symbol{nt("REFULL"), nt("RE-list")},
	},
	// 35: RE-AlistE -> ε
	{
		LHS: "RE-AlistE",
	},
	// 36: RE-AlistE -> REFULL RE-Alist
	{
		LHS:       "RE-AlistE",
		InputRHS:  []symbol.Symbol{nt("REFULL"), nt("RE-Alist")},
		OutputRHS: []symbol.Symbol{t("(?:"), nt("REFULL"), nt("RE-Alist"), t(")")},
	},
	// 37: RE-Alist -> ε
	{
		LHS: "RE-Alist",
	},
	// 38: RE-Alist -> "," RE-Alist-comma
	{
		LHS:          "RE-Alist",
		InputRHS:     []symbol.Symbol{t(","), nt("RE-Alist-comma")},
		OutputRHS:    []symbol.Symbol{nt("RE-Alist-comma")},
		AttributeMap: [][]int{nil},
	},
	// 39: RE-Alist-comma -> ε
	{
		LHS: "RE-Alist-comma",
	},
	// 40: RE-Alist-comma -> REFULL RE-Alist
	{
		LHS:       "RE-Alist-comma",
		InputRHS:  []symbol.Symbol{nt("REFULL"), nt("RE-Alist")},
		OutputRHS: []symbol.Symbol{t("|"), nt("REFULL"), nt("RE-Alist")},
	},
}

// StartSymbol is the grammar's start non-terminal.
const StartSymbol = "E"

// NewDefault builds the production Grammar from Rules, returning a
// GrammarError if it is not LL(1) (a build-time invariant, not a runtime
// condition).
func NewDefault() (*Grammar, error) {
	return New(Rules, StartSymbol)
}
