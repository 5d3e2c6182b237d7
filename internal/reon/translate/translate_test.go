package translate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/reon/internal/reon/grammar"
	"github.com/dekarrin/reon/internal/reon/scanner"
	"github.com/dekarrin/reon/internal/reon/symbol"
)

func runCollecting(t *testing.T, input string) []symbol.Symbol {
	t.Helper()
	g, err := grammar.NewDefault()
	require.NoError(t, err)

	sc, err := scanner.New(strings.NewReader(input))
	require.NoError(t, err)

	var out []symbol.Symbol
	tr := New(g)
	err = tr.Run(sc, func(s symbol.Symbol) error {
		out = append(out, s)
		return nil
	})
	require.NoError(t, err)
	return out
}

func names(symbols []symbol.Symbol) []string {
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = s.Name
	}
	return out
}

func TestRun_emptyDocument(t *testing.T) {
	out := runCollecting(t, "")
	require.Len(t, out, 4)
	assert.Equal(t, []string{"variable", " = r\"(?m)", "\"\n", symbol.EofName}, []string{
		out[0].Name, out[1].Name, out[2].Name, out[3].Name,
	})
	assert.True(t, out[3].IsEof())
}

func TestRun_stringAttributePropagation(t *testing.T) {
	out := runCollecting(t, `"abc"`)

	var re *symbol.Symbol
	for i := range out {
		if out[i].Name == "re" {
			re = &out[i]
			break
		}
	}
	require.NotNil(t, re, "expected a re output symbol")
	assert.Equal(t, "abc", re.Attribute)
}

func TestRun_repeatRangeAttributePropagation(t *testing.T) {
	out := runCollecting(t, `{"repeat 2-4":"x"}`)

	gotNames := names(out)
	assert.Contains(t, gotNames, "repeat")
	assert.Contains(t, gotNames, "re")

	for _, s := range out {
		switch s.Name {
		case "repeat":
			assert.Equal(t, "2-4", s.Attribute)
		case "re":
			assert.Equal(t, "x", s.Attribute)
		}
	}
}

func TestRun_namedGroupAndMatchGroup(t *testing.T) {
	out := runCollecting(t, `[{"group foo": "bar"}, {"match group": "foo"}]`)
	gotNames := names(out)

	assert.Contains(t, gotNames, "named group")
	assert.Contains(t, gotNames, "(?P=")

	var namedGroupAttr, refAttr string
	for _, s := range out {
		switch s.Name {
		case "named group":
			namedGroupAttr = s.Attribute
		case "ref":
			refAttr = s.Attribute
		}
	}
	assert.Equal(t, "foo", namedGroupAttr)
	assert.Equal(t, "foo", refAttr)
}

func TestRun_unexpectedTokenIsSyntaxError(t *testing.T) {
	g, err := grammar.NewDefault()
	require.NoError(t, err)
	sc, err := scanner.New(strings.NewReader(`{"repeat": }`))
	require.NoError(t, err)

	tr := New(g)
	err = tr.Run(sc, func(symbol.Symbol) error { return nil })
	assert.Error(t, err)
}

func TestRun_endsWithEof(t *testing.T) {
	out := runCollecting(t, `true`)
	require.NotEmpty(t, out)
	assert.True(t, out[len(out)-1].IsEof())
}
