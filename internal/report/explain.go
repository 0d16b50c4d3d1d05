package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/cssjit"
)

// PrintExplanation shows how a class name was resolved, stage by stage.
func PrintExplanation(w io.Writer, ex cssjit.Explanation, useColors bool) {
	fmt.Fprintln(w, RenderStyle(StyleCyan, ex.ClassName, useColors))

	variants := make([]string, 0, len(ex.Variants))
	for _, v := range ex.Variants {
		variants = append(variants, fmt.Sprintf("%s(%s)", v.Name, v.Kind))
	}
	if len(variants) == 0 {
		variants = append(variants, "none")
	}
	fmt.Fprintf(w, "  variants: %s\n", strings.Join(variants, " "))
	fmt.Fprintf(w, "  base:     %s\n", ex.BaseName)

	if ex.Utility == "" {
		fmt.Fprintf(w, "  utility:  %s\n", RenderStyle(StyleYellow, "rejected by prefix check", useColors))
		return
	}
	fmt.Fprintf(w, "  utility:  %s\n", ex.Utility)

	if ex.Matcher == "" {
		fmt.Fprintf(w, "  matcher:  %s\n", RenderStyle(StyleYellow, "no match", useColors))
		return
	}
	fmt.Fprintf(w, "  matcher:  %s\n", RenderStyle(StyleGreen, ex.Matcher, useColors))

	fmt.Fprintf(w, "  rules:    %d\n", len(ex.Rules))
	for _, r := range ex.Rules {
		fmt.Fprintf(w, "    %s %s\n",
			RenderStyle(StyleGray, fmt.Sprintf("[%5d]", r.Order), useColors),
			r.String())
	}
}
