// Package cssvalue checks raw CSS text with the tdewolff CSS lexer and parser.
package cssvalue

import (
	"errors"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrUnsafeValue is returned when a value could escape its declaration.
var ErrUnsafeValue = errors.New("unsafe css value")

// CheckValue reports whether value can sit on the right side of a single
// declaration: no braces, no semicolons, no at-rules, no malformed strings
// or urls, and balanced parentheses and brackets.
func CheckValue(value string) error {
	if value == "" {
		return fmt.Errorf("%w: empty", ErrUnsafeValue)
	}

	lexer := css.NewLexer(parse.NewInputString(value))
	depth := 0

	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return fmt.Errorf("%w: %v", ErrUnsafeValue, err)
			}
			if depth != 0 {
				return fmt.Errorf("%w: unbalanced parentheses", ErrUnsafeValue)
			}
			return nil
		case css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken,
			css.AtKeywordToken, css.BadStringToken, css.BadURLToken,
			css.CDOToken, css.CDCToken, css.CommentToken:
			return fmt.Errorf("%w: unexpected %q", ErrUnsafeValue, text)
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: unbalanced parentheses", ErrUnsafeValue)
			}
		}
	}
}

// CountRulesets parses a stylesheet and returns how many rulesets it holds,
// including those nested in at-rules.
func CountRulesets(stylesheet string) (int, error) {
	p := css.NewParser(parse.NewInputString(stylesheet), false)
	count := 0

	for {
		gt, _, _ := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return count, fmt.Errorf("parse stylesheet: %w", err)
			}
			return count, nil
		case css.BeginRulesetGrammar:
			count++
		}
	}
}
