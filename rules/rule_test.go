package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func TestOrderPairs(t *testing.T) {
	o := Order{Names: []string{"a.esp", "b.esp", "c.esp"}}
	assert.Equal(t, [][2]string{{"a.esp", "b.esp"}, {"b.esp", "c.esp"}}, o.Pairs())
}

func TestParseOrderRequiresTwoNames(t *testing.T) {
	_, err := parseOrder("a.esp", testExts)
	assert.Error(t, err)

	o, err := parseOrder("a.esp\nb.esp", testExts)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.esp", "b.esp"}, o.Names)
}

func TestNoteEvalAnyTrue(t *testing.T) {
	n := Note{comment: "heads up", Expressions: []Expression{
		NewAtomic("a.esp"), NewAtomic("b.esp"),
	}}
	assert.True(t, n.Eval(modSet("b.esp"), nil))
	assert.False(t, n.Eval(modSet("c.esp"), nil))
}

func TestConflictEvalRequiresTwoTrue(t *testing.T) {
	c := Conflict{comment: "conflict", Expressions: []Expression{
		NewAtomic("a.esp"), NewAtomic("b.esp"), NewAtomic("c.esp"),
	}}
	assert.False(t, c.Eval(modSet("a.esp"), nil))
	assert.True(t, c.Eval(modSet("a.esp", "b.esp"), nil))
}

func TestRequiresEval(t *testing.T) {
	r := Requires{comment: "needs b", A: NewAtomic("a.esp"), B: NewAtomic("b.esp")}
	assert.True(t, r.Eval(modSet("a.esp"), nil))
	assert.False(t, r.Eval(modSet("a.esp", "b.esp"), nil))
	assert.False(t, r.Eval(modSet("b.esp"), nil))
}

func TestPatchEvalXOR(t *testing.T) {
	p := Patch{comment: "patch", A: NewAtomic("a.esp"), B: NewAtomic("patch-a.esp")}
	assert.False(t, p.Eval(modSet(), nil))
	assert.True(t, p.Eval(modSet("a.esp"), nil))
	assert.True(t, p.Eval(modSet("patch-a.esp"), nil))
	assert.False(t, p.Eval(modSet("a.esp", "patch-a.esp"), nil))
}

func TestParseRequiresWrongArityFails(t *testing.T) {
	_, err := parseRequires("c", "a.esp", testExts)
	assert.Error(t, err)
}
