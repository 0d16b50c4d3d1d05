package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssjit"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "vibe-p-4  vibe-m-2",
			column:     11,
			want:       "          ^", // 10 spaces + caret
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\tvibe-p-4 flex",
			column:     12,
			want:       "\t\t         ^", // 2 tabs + 9 spaces + caret
		},
		{
			name:       "start of line",
			sourceLine: "flex",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func testIssues() []cssjit.Issue {
	return []cssjit.Issue{
		{
			FromLinter:  "cssjit",
			Text:        `class "vibe-wobble" matches no utility`,
			Severity:    cssjit.SeverityWarning,
			Class:       "vibe-wobble",
			SourceLines: []string{"flex vibe-wobble"},
			Pos:         cssjit.IssuePos{Filename: "<stdin>", Line: 2, Column: 6},
		},
		{
			FromLinter:  "cssjit",
			Text:        `class "flex" lacks the "vibe" prefix`,
			Severity:    cssjit.SeverityInfo,
			Class:       "flex",
			SourceLines: []string{"flex vibe-wobble"},
			Pos:         cssjit.IssuePos{Filename: "<stdin>", Line: 2, Column: 1},
		},
	}
}

func TestReporter_PrintIssues(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf, printLines: true, printLinterName: true}

	issues := testIssues()
	r.PrintIssues(issues)

	want := "<stdin>:2:1: class \"flex\" lacks the \"vibe\" prefix (cssjit)\n" +
		"\tflex vibe-wobble\n" +
		"\t^\n" +
		"<stdin>:2:6: class \"vibe-wobble\" matches no utility (cssjit)\n" +
		"\tflex vibe-wobble\n" +
		"\t     ^\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, "vibe-wobble", issues[0].Class, "input slice is not reordered")
}

func TestReporter_PrintIssues_Compact(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}

	r.PrintIssues(testIssues()[:1])
	assert.Equal(t, "<stdin>:2:6: class \"vibe-wobble\" matches no utility\n", buf.String())
}

func TestReporter_PrintSummary(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		var buf bytes.Buffer
		(&Reporter{w: &buf}).PrintSummary(nil, 3, 0)
		assert.Equal(t, "\n3 classes checked, all generate CSS\n", buf.String())
	})

	t.Run("issues", func(t *testing.T) {
		var buf bytes.Buffer
		(&Reporter{w: &buf}).PrintSummary(testIssues(), 5, 2)
		assert.Contains(t, buf.String(), "2 issues in 5 classes (1 unknown utility, 1 unprefixed class)")
		assert.Contains(t, buf.String(), "2 issues not shown")
		assert.Contains(t, buf.String(), "Hint:")
	})
}

func TestLimitIssues(t *testing.T) {
	issue := func(class string) cssjit.Issue { return cssjit.Issue{Class: class} }
	issues := []cssjit.Issue{issue("a"), issue("a"), issue("a"), issue("b"), issue("c")}

	tests := []struct {
		name          string
		maxIssues     int
		maxSame       int
		wantClasses   []string
		wantTruncated int
	}{
		{"unlimited", 0, 0, []string{"a", "a", "a", "b", "c"}, 0},
		{"max issues", 2, 0, []string{"a", "a"}, 3},
		{"max same", 0, 1, []string{"a", "b", "c"}, 2},
		{"both", 2, 1, []string{"a", "b"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := LimitIssues(issues, tt.maxIssues, tt.maxSame)
			classes := make([]string, len(got))
			for i, is := range got {
				classes[i] = is.Class
			}
			assert.Equal(t, tt.wantClasses, classes)
			assert.Equal(t, tt.wantTruncated, truncated)
		})
	}
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
	assert.Equal(t, "2 classes", pluralizeCount(2, "class", "classes"))
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	assert.True(t, ShouldUseColors(true))

	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(false))

	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "true")
	assert.True(t, ShouldUseColors(false))
}

func TestRenderStyle(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}
