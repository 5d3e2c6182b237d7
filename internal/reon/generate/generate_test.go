package generate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/reon/internal/reon/symbol"
)

func term(name, attr string) symbol.Symbol { return symbol.NewTerminal(name, attr) }

func runEmit(t *testing.T, symbols ...symbol.Symbol) (string, error) {
	t.Helper()
	var buf strings.Builder
	g := New(&buf, "re")
	for _, s := range symbols {
		if err := g.Emit(s); err != nil {
			return buf.String(), err
		}
	}
	return buf.String(), nil
}

func TestEmit_reEscapesMetacharacters(t *testing.T) {
	out, err := runEmit(t, term("re", `a.b*c+d?e[f]g{h}i|j(k)l$m^n`))
	require.NoError(t, err)
	assert.Equal(t, `a\.b\*c\+d\?e\[f\]g\{h\}i\|j\(k\)l\$m\^n`, out)
}

func TestEmit_reReinterpretsEscapes(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"known shorthand passthrough", `\d\w\s`, `\d\w\s`},
		{"dot escape becomes unescaped wildcard dot", `\.`, `.`},
		{"caret anchor", `\^`, `\A`},
		{"dollar anchor", `\$`, `\Z`},
		{"literal backslash", `\\`, `\\`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := runEmit(t, term("re", tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestEmit_reUnknownEscapeIsSemanticError(t *testing.T) {
	_, err := runEmit(t, term("re", `\q`))
	assert.Error(t, err)
}

func TestEmit_setEscapesAndValidatesRanges(t *testing.T) {
	out, err := runEmit(t, term("set", `a-z^]"`))
	require.NoError(t, err)
	assert.Equal(t, `a-z\^\]\"`, out)
}

func TestEmit_setInvalidRangeIsSemanticError(t *testing.T) {
	_, err := runEmit(t, term("set", `z-a`))
	assert.Error(t, err)
}

func TestEmit_refRequiresKnownGroup(t *testing.T) {
	_, err := runEmit(t, term("ref", "foo"))
	assert.Error(t, err)

	out, err := runEmit(t, term("named group", "foo"), term("ref", "foo"))
	require.NoError(t, err)
	assert.Equal(t, "foofoo", out)
}

func TestEmit_nrefRequiresExistingGroupNumber(t *testing.T) {
	_, err := runEmit(t, term("nref", "1"))
	assert.Error(t, err)

	out, err := runEmit(t, term("group", ""), term("nref", "1"))
	require.NoError(t, err)
	assert.Equal(t, "1", out)
}

func TestEmit_nrefRejectsNonPositive(t *testing.T) {
	_, err := runEmit(t, term("group", ""), term("nref", "0"))
	assert.Error(t, err)
}

func TestEmit_commentEscapesClosingParen(t *testing.T) {
	out, err := runEmit(t, term("comment", "close) this"))
	require.NoError(t, err)
	assert.Equal(t, `close\) this`, out)
}

func TestEmit_repeatForms(t *testing.T) {
	testCases := []struct {
		name string
		attr string
		want string
	}{
		{"bare count", "3", "{3}"},
		{"full range", "2-4", "{2,4}"},
		{"open upper bound", "2-", "{2,}"},
		{"open lower bound", "-4", "{,4}"},
		{"atomic star", "*", "*"},
		{"atomic plus", "+", "+"},
		{"atomic question", "?", "?"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := runEmit(t, term("repeat", tc.attr))
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestEmit_repeatRejectsInvertedRange(t *testing.T) {
	_, err := runEmit(t, term("repeat", "4-2"))
	assert.Error(t, err)
}

func TestEmit_namedGroupValidatesIdentifierAndTracksState(t *testing.T) {
	out, err := runEmit(t, term("named group", "foo_1"))
	require.NoError(t, err)
	assert.Equal(t, "foo_1", out)
}

func TestEmit_namedGroupRejectsBadIdentifiers(t *testing.T) {
	_, err := runEmit(t, term("named group", "1abc"))
	assert.Error(t, err)

	_, err = runEmit(t, term("named group", "a-b"))
	assert.Error(t, err)
}

func TestEmit_namedGroupRejectsDuplicates(t *testing.T) {
	_, err := runEmit(t, term("named group", "foo"), term("named group", "foo"))
	assert.Error(t, err)
}

func TestEmit_fixedLengthCheckRejectsVariableLengthConstructs(t *testing.T) {
	testCases := []struct {
		name string
		sym  symbol.Symbol
	}{
		{"non-constant repeat", term("repeat", "2-4")},
		{"named reference", term("ref", "foo")},
		{"numbered reference", term("nref", "1")},
		{"alternation", term("|", "")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runEmit(t, symbol.NewSpecial("fixed_length_check"), tc.sym)
			assert.Error(t, err)
		})
	}
}

func TestEmit_fixedLengthCheckAllowsConstantRepeat(t *testing.T) {
	out, err := runEmit(t, symbol.NewSpecial("fixed_length_check"), term("repeat", "3"), symbol.NewSpecial("end_check"))
	require.NoError(t, err)
	assert.Equal(t, "{3}", out)
}

func TestEmit_endCheckPopsTheCheck(t *testing.T) {
	out, err := runEmit(t,
		symbol.NewSpecial("fixed_length_check"),
		symbol.NewSpecial("end_check"),
		term("repeat", "2-4"),
	)
	require.NoError(t, err)
	assert.Equal(t, "{2,4}", out)
}

func TestEmit_variableSubstitution(t *testing.T) {
	var buf strings.Builder
	g := New(&buf, "pattern")
	require.NoError(t, g.Emit(symbol.NewSpecial("variable")))
	assert.Equal(t, "pattern", buf.String())
}

func TestEmit_literalOutputSymbolPassesThrough(t *testing.T) {
	out, err := runEmit(t, term(" = r\"(?m)", ""))
	require.NoError(t, err)
	assert.Equal(t, " = r\"(?m)", out)
}

func TestEmit_eofResetsSessionState(t *testing.T) {
	var buf strings.Builder
	g := New(&buf, "re")

	require.NoError(t, g.Emit(term("named group", "foo")))
	require.NoError(t, g.Emit(symbol.EofSymbol))

	buf.Reset()
	require.NoError(t, g.Emit(term("named group", "foo")))
	assert.Equal(t, "foo", buf.String())
}
