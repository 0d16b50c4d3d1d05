package cssjit

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
)

// Issue is a class name the generator could not turn into CSS
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "cssjit"
	Text        string   `json:"Text"`        // "class \"p-4\" lacks the \"vibe\" prefix"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	Class       string   `json:"Class"`       // the offending token
	SourceLines []string `json:"SourceLines"` // Line the token was read from
	Pos         IssuePos `json:"Pos"`         // Input location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "<stdin>"
	Line     int    `json:"Line"`     // 1-based
	Column   int    `json:"Column"`   // 1-based, start of the class token
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue messages
const (
	IssueUnknownUtility = "class %q matches no utility"
	IssueMissingPrefix  = "class %q lacks the %q prefix"
)

// Token is a class name with the position it was read from.
type Token struct {
	Class  string
	Line   int
	Column int
	Source string
}

// ReadTokens splits r into whitespace-separated class tokens, recording
// where each one starts.
func ReadTokens(r io.Reader) ([]Token, error) {
	var tokens []Token
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		tokens = appendLineTokens(tokens, scanner.Text(), line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tokens: %w", err)
	}
	return tokens, nil
}

// TokensFromArgs wraps command-line class names as tokens. Each argument
// counts as one line, so "a vibe-p-4" as the second argument puts
// vibe-p-4 at line 2, column 3.
func TokensFromArgs(args []string) []Token {
	tokens := make([]Token, 0, len(args))
	for i, arg := range args {
		tokens = appendLineTokens(tokens, arg, i+1)
	}
	return tokens
}

// appendLineTokens splits one line on whitespace; columns are 1-based bytes.
func appendLineTokens(tokens []Token, text string, line int) []Token {
	start := -1
	for i, ch := range text + " " {
		if unicode.IsSpace(ch) {
			if start >= 0 {
				tokens = append(tokens, Token{
					Class:  text[start:i],
					Line:   line,
					Column: start + 1,
					Source: text,
				})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	return tokens
}

// Check reports every token that generates no CSS. Tokens rejected by
// the namespace check are info-level since foreign classes are expected
// in markup; unprefixed-but-unknown names are warnings.
func (g *Generator) Check(tokens []Token, filename string) []Issue {
	var issues []Issue
	for _, tok := range tokens {
		ex := g.Explain(tok.Class)
		if len(ex.Rules) > 0 {
			continue
		}

		issue := Issue{
			FromLinter:  "cssjit",
			Class:       tok.Class,
			SourceLines: []string{tok.Source},
			Pos:         IssuePos{Filename: filename, Line: tok.Line, Column: tok.Column},
		}
		// "hover:" is all variants and no utility, which is not a prefix problem
		if ex.Utility == "" && ex.BaseName != "" && g.tokens.Prefix != "" {
			issue.Severity = SeverityInfo
			issue.Text = fmt.Sprintf(IssueMissingPrefix, tok.Class, g.tokens.Prefix)
		} else {
			issue.Severity = SeverityWarning
			issue.Text = fmt.Sprintf(IssueUnknownUtility, tok.Class)
		}
		issues = append(issues, issue)
	}
	return issues
}
