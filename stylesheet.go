package cssjit

import (
	"context"
	"io"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Stylesheet is the assembled, cascade-ordered output for a set of classes.
type Stylesheet struct {
	Rules     []CSSRule
	Classes   int      // distinct class names considered
	Matched   int      // classes that produced at least one rule
	Unmatched []string // classes that produced nothing, in first-seen order
}

// Assembler turns many class names into one stylesheet.
type Assembler struct {
	gen     *Generator
	workers int
}

// NewAssembler creates an assembler. workers <= 0 uses GOMAXPROCS.
func NewAssembler(gen *Generator, workers int) *Assembler {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Assembler{gen: gen, workers: workers}
}

// Build deduplicates classes, generates their rules in parallel and
// stable-sorts the result by Order, breaking ties by first-seen position.
func (a *Assembler) Build(ctx context.Context, classes []string) (*Stylesheet, error) {
	unique := dedupe(classes)
	results := make([][]CSSRule, len(unique))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(a.workers)
	for i, class := range unique {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.gen.Generate(class)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sheet := &Stylesheet{Classes: len(unique)}
	seen := make(map[string]bool)
	for i, rules := range results {
		if len(rules) == 0 {
			sheet.Unmatched = append(sheet.Unmatched, unique[i])
			continue
		}
		sheet.Matched++
		for _, r := range rules {
			// keyframes and registered properties are shared by every class using them
			if r.IsAtRule() {
				key := r.String()
				if seen[key] {
					continue
				}
				seen[key] = true
			}
			sheet.Rules = append(sheet.Rules, r)
		}
	}

	sort.SliceStable(sheet.Rules, func(i, j int) bool {
		return sheet.Rules[i].Order < sheet.Rules[j].Order
	})
	return sheet, nil
}

// WriteTo writes the rules, one per line.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, r := range s.Rules {
		n, err := io.WriteString(w, r.String()+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders the whole stylesheet.
func (s *Stylesheet) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}

// dedupe keeps the first occurrence of every non-empty class name.
func dedupe(classes []string) []string {
	seen := make(map[string]bool, len(classes))
	unique := make([]string, 0, len(classes))
	for _, c := range classes {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, c)
	}
	return unique
}
