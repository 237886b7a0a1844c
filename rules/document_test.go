package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRules = `
[Order]
a.esp
b.esp

[NearStart]
z.esp

[Note]
 This is broken with c.esp
c.esp

[Conflict]
 Known incompatibility
d.esp
e.esp
`

func TestParseDocumentBasic(t *testing.T) {
	doc, diags := ParseDocument(strings.NewReader(sampleRules), FileRef("test.txt"), testExts)
	assert.Empty(t, diags)
	require.Len(t, doc.OrderRules, 2)
	require.Len(t, doc.WarningRules, 2)
	assert.Equal(t, 4, doc.RuleCount())

	edges := doc.Edges()
	assert.Equal(t, [][2]string{{"a.esp", "b.esp"}}, edges)
	assert.Equal(t, []string{"z.esp"}, doc.NearStartNames())
	assert.Empty(t, doc.NearEndNames())
}

func TestParseDocumentSkipsMalformedChunk(t *testing.T) {
	const withBadChunk = `
[Order]
a.esp
b.esp

[Bogus]
nonsense

[NearEnd]
y.esp
`
	doc, diags := ParseDocument(strings.NewReader(withBadChunk), FileRef("test.txt"), testExts)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "unknown rule kind")
	assert.Equal(t, 6, diags[0].Pos.Line)

	require.Len(t, doc.OrderRules, 2)
	assert.Equal(t, []string{"y.esp"}, doc.NearEndNames())
}

func TestParseDocumentDropsCommentLinesAndLowercases(t *testing.T) {
	const withComment = `
; this whole line is a comment
[Order]
A.ESP
B.ESP
`
	doc, diags := ParseDocument(strings.NewReader(withComment), FileRef("t"), testExts)
	assert.Empty(t, diags)
	require.Len(t, doc.OrderRules, 1)
	o := doc.OrderRules[0].(Order)
	assert.Equal(t, []string{"a.esp", "b.esp"}, o.Names)
}

func TestDocumentEvaluate(t *testing.T) {
	doc, diags := ParseDocument(strings.NewReader(sampleRules), FileRef("t"), testExts)
	require.Empty(t, diags)

	warnings := doc.Evaluate([]string{"c.esp"}, nil)
	assert.Equal(t, []string{"this is broken with c.esp"}, warnings)

	warnings = doc.Evaluate([]string{"d.esp", "e.esp"}, nil)
	assert.Equal(t, []string{"known incompatibility"}, warnings)

	assert.Empty(t, doc.Evaluate([]string{"f.esp"}, nil))
}

func TestDocumentInclude(t *testing.T) {
	a, diagsA := ParseDocument(strings.NewReader("[Order]\na.esp\nb.esp\n"), FileRef("a"), testExts)
	require.Empty(t, diagsA)
	b, diagsB := ParseDocument(strings.NewReader("[Order]\nc.esp\nd.esp\n"), FileRef("b"), testExts)
	require.Empty(t, diagsB)

	a.Include(b)
	assert.Len(t, a.OrderRules, 2)
	assert.Equal(t, [][2]string{{"a.esp", "b.esp"}, {"c.esp", "d.esp"}}, a.Edges())
}

func TestReadRuleHeadNestedBrackets(t *testing.T) {
	head, rest, err := readRuleHead("note with [nested] text]\nbody\n")
	require.NoError(t, err)
	assert.Equal(t, "note with [nested] text", head)
	assert.Equal(t, "\nbody\n", rest)
}

func TestSplitLeadingCommentMultiLine(t *testing.T) {
	comment, body := splitLeadingComment("  continued comment\na.esp\nb.esp\n", "head comment")
	assert.Equal(t, "head comment continued comment", comment)
	assert.Equal(t, "a.esp\nb.esp", body)
}
