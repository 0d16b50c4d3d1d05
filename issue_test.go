package cssjit

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTokens(t *testing.T) {
	input := "vibe-p-4  hover:vibe-m-2\n\tflex\n\n  last"

	tokens, err := ReadTokens(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []Token{
		{Class: "vibe-p-4", Line: 1, Column: 1, Source: "vibe-p-4  hover:vibe-m-2"},
		{Class: "hover:vibe-m-2", Line: 1, Column: 11, Source: "vibe-p-4  hover:vibe-m-2"},
		{Class: "flex", Line: 2, Column: 2, Source: "\tflex"},
		{Class: "last", Line: 4, Column: 3, Source: "  last"},
	}, tokens)
}

func TestReadTokens_Empty(t *testing.T) {
	tokens, err := ReadTokens(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokensFromArgs(t *testing.T) {
	tokens := TokensFromArgs([]string{"vibe-p-4", "vibe-flex vibe-grid"})

	assert.Equal(t, []Token{
		{Class: "vibe-p-4", Line: 1, Column: 1, Source: "vibe-p-4"},
		{Class: "vibe-flex", Line: 2, Column: 1, Source: "vibe-flex vibe-grid"},
		{Class: "vibe-grid", Line: 2, Column: 11, Source: "vibe-flex vibe-grid"},
	}, tokens)
}

func TestGenerator_Check_ArgsColumn(t *testing.T) {
	gen := newTestGenerator(t)

	issues := gen.Check(TokensFromArgs([]string{"vibe-p-4", "a vibe-wobble"}), "<args>")
	require.Len(t, issues, 2)
	assert.Equal(t, IssuePos{Filename: "<args>", Line: 2, Column: 1}, issues[0].Pos)
	assert.Equal(t, IssuePos{Filename: "<args>", Line: 2, Column: 3}, issues[1].Pos)
	assert.Equal(t, []string{"a vibe-wobble"}, issues[1].SourceLines)
}

func TestGenerator_Check_VariantsOnly(t *testing.T) {
	gen := newTestGenerator(t)

	issues := gen.Check(TokensFromArgs([]string{"hover:", "sm:hover:"}), "<args>")
	require.Len(t, issues, 2)
	for _, issue := range issues {
		assert.Equal(t, SeverityWarning, issue.Severity)
		assert.Equal(t, fmt.Sprintf(IssueUnknownUtility, issue.Class), issue.Text)
	}
}

func TestGenerator_Check(t *testing.T) {
	gen := newTestGenerator(t)
	tokens, err := ReadTokens(strings.NewReader("vibe-p-4 flex\nhover:vibe-wobble"))
	require.NoError(t, err)

	issues := gen.Check(tokens, "<stdin>")
	require.Len(t, issues, 2)

	assert.Equal(t, Issue{
		FromLinter:  "cssjit",
		Text:        `class "flex" lacks the "vibe" prefix`,
		Severity:    SeverityInfo,
		Class:       "flex",
		SourceLines: []string{"vibe-p-4 flex"},
		Pos:         IssuePos{Filename: "<stdin>", Line: 1, Column: 10},
	}, issues[0])

	assert.Equal(t, SeverityWarning, issues[1].Severity)
	assert.Equal(t, `class "hover:vibe-wobble" matches no utility`, issues[1].Text)
	assert.Equal(t, IssuePos{Filename: "<stdin>", Line: 2, Column: 1}, issues[1].Pos)
}

func TestGenerator_Check_NoPrefix(t *testing.T) {
	gen := newTestGenerator(t, func(tk *DesignTokens) { tk.Prefix = "" })

	issues := gen.Check(TokensFromArgs([]string{"p-4", "wobble"}), "<args>")
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, "wobble", issues[0].Class)
}
