package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortPreservesOrderWithoutEdges(t *testing.T) {
	mods := []string{"a.esp", "b.esp", "c.esp"}
	got, err := Sort(mods, nil)
	require.NoError(t, err)
	assert.Equal(t, mods, got)
}

func TestSortAppliesSingleInversion(t *testing.T) {
	mods := []string{"b.esp", "a.esp", "c.esp"}
	got, err := Sort(mods, [][2]string{{"a.esp", "b.esp"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.esp", "b.esp", "c.esp"}, got)
}

func TestSortIsMinimalPerturbation(t *testing.T) {
	mods := []string{"z.esp", "a.esp", "m.esp", "b.esp"}
	got, err := Sort(mods, [][2]string{{"a.esp", "b.esp"}})
	require.NoError(t, err)
	// a.esp and b.esp are already in relative order; nothing should move.
	assert.Equal(t, mods, got)
}

func TestSortIgnoresEdgesWithMissingEndpoints(t *testing.T) {
	mods := []string{"a.esp", "b.esp"}
	got, err := Sort(mods, [][2]string{{"b.esp", "nonexistent.esp"}})
	require.NoError(t, err)
	assert.Equal(t, mods, got)
}

func TestSortDetectsCycle(t *testing.T) {
	mods := []string{"a.esp", "b.esp", "c.esp"}
	_, err := Sort(mods, [][2]string{
		{"a.esp", "b.esp"},
		{"b.esp", "c.esp"},
		{"c.esp", "a.esp"},
	})
	require.Error(t, err)
	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.NotEmpty(t, cycleErr.Mods)
}

func TestApplyNearHintsMovesToStart(t *testing.T) {
	mods := []string{"a.esp", "b.esp", "c.esp"}
	got := ApplyNearHints(mods, nil, []string{"c.esp"}, nil)
	assert.Equal(t, []string{"c.esp", "a.esp", "b.esp"}, got)
}

func TestApplyNearHintsMovesToEnd(t *testing.T) {
	mods := []string{"a.esp", "b.esp", "c.esp"}
	got := ApplyNearHints(mods, nil, nil, []string{"a.esp"})
	assert.Equal(t, []string{"b.esp", "c.esp", "a.esp"}, got)
}

func TestApplyNearHintsRespectsOrderEdge(t *testing.T) {
	mods := []string{"a.esp", "b.esp", "c.esp"}
	// a.esp must stay before c.esp, so NearStart on c.esp can only bubble
	// up to just after a.esp.
	got := ApplyNearHints(mods, [][2]string{{"a.esp", "c.esp"}}, []string{"c.esp"}, nil)
	assert.Equal(t, []string{"a.esp", "c.esp", "b.esp"}, got)
}
