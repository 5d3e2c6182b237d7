package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/reon/internal/reon/symbol"
)

func TestNewDefault_buildsWithoutConflict(t *testing.T) {
	g, err := NewDefault()
	require.NoError(t, err)
	require.NotNil(t, g)
}

func TestLookup_dispatchesOnFirstKeyword(t *testing.T) {
	g, err := NewDefault()
	require.NoError(t, err)

	testCases := []struct {
		name      string
		nt        string
		lookahead string
		wantLHS   string
	}{
		{"REFULL on string", "REFULL", "string", "REFULL"},
		{"REFULL on true", "REFULL", "true", "REFULL"},
		{"REFULL on array open", "REFULL", "[", "REFULL"},
		{"REFULL on object open", "REFULL", "{", "REFULL"},
		{"OBJ on repeat", "OBJ", "repeat", "OBJ"},
		{"OBJ on named group", "OBJ", "named group", "OBJ"},
		{"RE on string predicts REFULL", "RE", "string", "RE"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			idx, ok := g.Lookup(tc.nt, tc.lookahead)
			require.True(t, ok, "expected a table entry for (%s, %s)", tc.nt, tc.lookahead)
			assert.Equal(t, tc.wantLHS, g.Rules[idx].LHS)
		})
	}
}

func TestLookup_missOnUnexpectedLookahead(t *testing.T) {
	g, err := NewDefault()
	require.NoError(t, err)

	_, ok := g.Lookup("OBJ", "true")
	assert.False(t, ok)
}

func TestRE_isNullableOnItsFollowSet(t *testing.T) {
	g, err := NewDefault()
	require.NoError(t, err)

	// RE -> ε is rule 1 everywhere Follow(RE) predicts it: before an object's
	// closing brace, before an optional else clause, or at end of input.
	for _, la := range []string{"}", ",", symbol.EofName} {
		idx, ok := g.Lookup("RE", la)
		if assert.True(t, ok, "expected RE to predict epsilon on lookahead %q", la) {
			assert.Empty(t, g.Rules[idx].InputRHS, "expected the epsilon rule on lookahead %q", la)
		}
	}
}

func TestDefaultAttributeMap_linksSameNamedOccurrencesPositionally(t *testing.T) {
	in := []symbol.Symbol{symbol.NewTerminal("string", "")}
	out := []symbol.Symbol{symbol.NewTerminal("string", "")}

	m := DefaultAttributeMap(in, out)
	assert.Equal(t, [][]int{{0}}, m)
}

func TestDefaultAttributeMap_noMatchingOutputName(t *testing.T) {
	in := []symbol.Symbol{symbol.NewTerminal("repeat", "")}
	out := []symbol.Symbol{symbol.NewTerminal("(?:", "")}

	m := DefaultAttributeMap(in, out)
	assert.Equal(t, [][]int{nil}, m)
}
