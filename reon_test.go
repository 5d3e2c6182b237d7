package reon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/reon/internal/reonerr"
)

func runTranslate(t *testing.T, input, variable string) (string, error) {
	t.Helper()
	tr, err := New()
	require.NoError(t, err)

	var out strings.Builder
	err = tr.Translate(strings.NewReader(input), &out, variable)
	return out.String(), err
}

func TestTranslate_emptyDocument(t *testing.T) {
	out, err := runTranslate(t, "", "")
	require.NoError(t, err)
	assert.Equal(t, "re = r\"(?m)\"\n", out)
}

func TestTranslate_stringPassthrough(t *testing.T) {
	out, err := runTranslate(t, `"hello world"`, "")
	require.NoError(t, err)
	assert.Equal(t, "re = r\"(?m)hello world\"\n", out)
}

func TestTranslate_setAndNegatedSet(t *testing.T) {
	out, err := runTranslate(t, `{"set":"a-z"}`, "")
	require.NoError(t, err)
	assert.Equal(t, "re = r\"(?m)[a-z]\"\n", out)

	out, err = runTranslate(t, `{"negated set":"a-z"}`, "")
	require.NoError(t, err)
	assert.Equal(t, "re = r\"(?m)[^a-z]\"\n", out)
}

func TestTranslate_namedGroupAndMatchGroupReference(t *testing.T) {
	out, err := runTranslate(t, `[{"group foo":"bar"}, {"match group":"foo"}]`, "")
	require.NoError(t, err)
	assert.Equal(t, "re = r\"(?m)(?P<foo>bar)(?P=foo)\"\n", out)
}

func TestTranslate_numberedMatchGroupReference(t *testing.T) {
	out, err := runTranslate(t, `[{"group":"bar"}, {"match group":1}]`, "")
	require.NoError(t, err)
	assert.Equal(t, "re = r\"(?m)(bar)\\1\"\n", out)
}

func TestTranslate_repeatRange(t *testing.T) {
	out, err := runTranslate(t, `{"repeat 2-4":"x"}`, "")
	require.NoError(t, err)
	assert.Equal(t, "re = r\"(?m)(?:x){2,4}\"\n", out)
}

func TestTranslate_alternatives(t *testing.T) {
	out, err := runTranslate(t, `{"alternatives":["a", "b", "c"]}`, "")
	require.NoError(t, err)
	assert.Equal(t, "re = r\"(?m)(?:a|b|c)\"\n", out)
}

func TestTranslate_lookbehindWithVariableLengthBodyIsSemanticError(t *testing.T) {
	_, err := runTranslate(t, `{"lookbehind":{"repeat 2-4":"x"}}`, "")
	require.Error(t, err)
	assert.Equal(t, reonerr.ExitSemantic, ExitCodeFor(err))
}

func TestTranslate_unknownReferenceIsSemanticError(t *testing.T) {
	_, err := runTranslate(t, `{"match group":"nope"}`, "")
	require.Error(t, err)
	assert.Equal(t, reonerr.ExitSemantic, ExitCodeFor(err))
}

func TestTranslate_variableOverride(t *testing.T) {
	out, err := runTranslate(t, `"x"`, "pattern")
	require.NoError(t, err)
	assert.Equal(t, "pattern = r\"(?m)x\"\n", out)
}

func TestTranslate_ifThenElse(t *testing.T) {
	out, err := runTranslate(t, `[{"group":"a"}, {"if":1,"then":"b","else":"c"}]`, "")
	require.NoError(t, err)
	assert.Equal(t, "re = r\"(?m)(a)(?(1)b|c)\"\n", out)
}

func TestTranslate_malformedJSONIsLexicalOrSyntaxError(t *testing.T) {
	_, err := runTranslate(t, `{"set": "a-z"`, "")
	require.Error(t, err)
	code := ExitCodeFor(err)
	assert.True(t, code == reonerr.ExitLexical || code == reonerr.ExitSyntax)
}

func TestDumpTable_returnsNonEmptyTable(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	assert.NotEmpty(t, tr.DumpTable())
}
