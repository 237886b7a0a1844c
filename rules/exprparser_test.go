package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpressionsAtomic(t *testing.T) {
	exprs, err := ParseExpressions([]byte("a.esp"), testExts)
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	assert.Equal(t, Atomic{Name: "a.esp"}, exprs[0])
}

func TestParseExpressionsAny(t *testing.T) {
	exprs, err := ParseExpressions([]byte("[any a.esp b.esp]"), testExts)
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	any, ok := exprs[0].(Any)
	require.True(t, ok)
	assert.Len(t, any.Children, 2)
}

func TestParseExpressionsAllNested(t *testing.T) {
	exprs, err := ParseExpressions([]byte("[all a.esp [any b.esp c.esp]]"), testExts)
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	all, ok := exprs[0].(All)
	require.True(t, ok)
	require.Len(t, all.Children, 2)
	_, ok = all.Children[1].(Any)
	assert.True(t, ok)
}

func TestParseExpressionsNotTakesLastChild(t *testing.T) {
	exprs, err := ParseExpressions([]byte("[not a.esp b.esp]"), testExts)
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	not, ok := exprs[0].(Not)
	require.True(t, ok)
	assert.Equal(t, Atomic{Name: "b.esp"}, not.Child)
}

func TestParseExpressionsEmptyAnyFails(t *testing.T) {
	_, err := ParseExpressions([]byte("[any]"), testExts)
	assert.Error(t, err)
}

func TestParseDescInputPlain(t *testing.T) {
	pattern, negated, body, ok := parseDescInput("/v1\\.[0-9]+/ a.esp")
	require.True(t, ok)
	assert.False(t, negated)
	assert.Equal(t, `v1\.[0-9]+`, pattern)
	assert.Equal(t, "a.esp", body)
}

func TestParseDescInputNegated(t *testing.T) {
	pattern, negated, body, ok := parseDescInput("!/broken/ a.esp")
	require.True(t, ok)
	assert.True(t, negated)
	assert.Equal(t, "broken", pattern)
	assert.Equal(t, "a.esp", body)
}

func TestParseDescInputMalformed(t *testing.T) {
	_, _, _, ok := parseDescInput("not a pattern")
	assert.False(t, ok)
}

func TestParseExpressionsDesc(t *testing.T) {
	exprs, err := ParseExpressions([]byte("[desc /old version/ a.esp]"), testExts)
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	d, ok := exprs[0].(Desc)
	require.True(t, ok)
	assert.Equal(t, "old version", d.Pattern)
	assert.False(t, d.Negated)
	assert.Equal(t, Atomic{Name: "a.esp"}, d.Child)
}
