// Package report renders check results and class explanations for the terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/yacobolo/cssjit"
)

// Options controls reporter output.
type Options struct {
	UseColors       bool
	PrintLines      bool
	PrintLinterName bool
}

// Reporter handles formatting and outputting check results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given options
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(opts.UseColors),
		printLines:      opts.PrintLines,
		printLinterName: opts.PrintLinterName,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(explicit bool) bool {
	// Explicit flag wins
	if explicit {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues sorted by position
func (r *Reporter) PrintIssues(issues []cssjit.Issue) {
	sorted := slices.Clone(issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pos.Filename != sorted[j].Pos.Filename {
			return sorted[i].Pos.Filename < sorted[j].Pos.Filename
		}
		if sorted[i].Pos.Line != sorted[j].Pos.Line {
			return sorted[i].Pos.Line < sorted[j].Pos.Line
		}
		return sorted[i].Pos.Column < sorted[j].Pos.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue as file:line:col: message (linter)
func (r *Reporter) printIssue(issue cssjit.Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	style := StyleCyan
	if issue.Severity == cssjit.SeverityError {
		style = StyleRed
	}
	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(style, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up under tabbed input.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := min(column-1, len(sourceLine))

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary. truncated is the number
// of issues dropped by LimitIssues.
func (r *Reporter) PrintSummary(issues []cssjit.Issue, classes, truncated int) {
	var warnings, infos int
	for _, issue := range issues {
		switch issue.Severity {
		case cssjit.SeverityWarning, cssjit.SeverityError:
			warnings++
		default:
			infos++
		}
	}

	fmt.Fprintln(r.w, "")
	if len(issues) == 0 && truncated == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen,
			fmt.Sprintf("%s checked, all generate CSS", pluralizeCount(classes, "class", "classes")), r.useColors))
		return
	}

	fmt.Fprintf(r.w, "%s in %s (%s, %s)\n",
		pluralizeCount(len(issues), "issue", "issues"),
		pluralizeCount(classes, "class", "classes"),
		pluralizeCount(warnings, "unknown utility", "unknown utilities"),
		pluralizeCount(infos, "unprefixed class", "unprefixed classes"))
	if truncated > 0 {
		fmt.Fprintf(r.w, "%s not shown\n", pluralizeCount(truncated, "issue", "issues"))
	}

	if infos > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: unprefixed classes are skipped unless allow-unprefixed is set", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// LimitIssues applies the per-run and per-message caps. Zero means
// unlimited. It returns the kept issues and how many were dropped.
func LimitIssues(issues []cssjit.Issue, maxIssues, maxSame int) ([]cssjit.Issue, int) {
	originalCount := len(issues)

	if maxSame > 0 {
		issues = deduplicateSameIssues(issues, maxSame)
	}
	if maxIssues > 0 && len(issues) > maxIssues {
		issues = issues[:maxIssues]
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same class is reported
func deduplicateSameIssues(issues []cssjit.Issue, maxSame int) []cssjit.Issue {
	classCounts := make(map[string]int)
	var filtered []cssjit.Issue

	for _, issue := range issues {
		if classCounts[issue.Class] < maxSame {
			filtered = append(filtered, issue)
			classCounts[issue.Class]++
		}
	}

	return filtered
}
