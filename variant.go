package cssjit

import (
	"fmt"
	"strings"
)

// VariantKind tags what a variant prefix conditions on.
type VariantKind int

const (
	VariantState VariantKind = iota
	VariantStructural
	VariantResponsive
	VariantDark
	VariantGroup
	VariantPlaceholder
)

func (k VariantKind) String() string {
	switch k {
	case VariantState:
		return "state"
	case VariantStructural:
		return "structural"
	case VariantResponsive:
		return "responsive"
	case VariantDark:
		return "dark"
	case VariantGroup:
		return "group"
	case VariantPlaceholder:
		return "placeholder"
	}
	return fmt.Sprintf("VariantKind(%d)", int(k))
}

// Variant is one recognized "name:" prefix of a class.
type Variant struct {
	Kind VariantKind
	Name string // "hover", "sm", "dark", "group-hover", "placeholder"
}

// statePseudo maps state keywords to the pseudo-class they append.
var statePseudo = map[string]string{
	"hover":         ":hover",
	"focus":         ":focus",
	"focus-within":  ":focus-within",
	"focus-visible": ":focus-visible",
	"active":        ":active",
	"visited":       ":visited",
	"disabled":      ":disabled",
	"enabled":       ":enabled",
	"checked":       ":checked",
	"required":      ":required",
	"invalid":       ":invalid",
	"read-only":     ":read-only",
}

var structuralPseudo = map[string]string{
	"first":         ":first-child",
	"last":          ":last-child",
	"only":          ":only-child",
	"odd":           ":nth-child(odd)",
	"even":          ":nth-child(even)",
	"first-of-type": ":first-of-type",
	"last-of-type":  ":last-of-type",
	"empty":         ":empty",
}

// extractVariants peels leading variant segments off className.
// Scanning stops at the first colon-delimited segment that is not a variant.
func (g *Generator) extractVariants(className string) ([]Variant, string) {
	var variants []Variant
	rest := className

	for {
		head, tail, found := strings.Cut(rest, ":")
		if !found {
			return variants, rest
		}
		v, ok := g.lookupVariant(head)
		if !ok {
			return variants, rest
		}
		variants = append(variants, v)
		rest = tail
	}
}

func (g *Generator) lookupVariant(name string) (Variant, bool) {
	if g.tokens.EnableResponsive {
		if _, ok := g.tokens.Breakpoints[name]; ok {
			return Variant{Kind: VariantResponsive, Name: name}, true
		}
	}
	if g.tokens.EnableDarkMode && name == "dark" {
		return Variant{Kind: VariantDark, Name: name}, true
	}
	if !g.tokens.EnableStateVariants {
		return Variant{}, false
	}
	if _, ok := statePseudo[name]; ok {
		return Variant{Kind: VariantState, Name: name}, true
	}
	if _, ok := structuralPseudo[name]; ok {
		return Variant{Kind: VariantStructural, Name: name}, true
	}
	if state, ok := strings.CutPrefix(name, "group-"); ok {
		if _, known := statePseudo[state]; known {
			return Variant{Kind: VariantGroup, Name: name}, true
		}
	}
	if name == "placeholder" {
		return Variant{Kind: VariantPlaceholder, Name: name}, true
	}
	return Variant{}, false
}

// applyVariants folds variants onto rules right to left, so the last written
// variant is the innermost transform. anchor is the escaped class selector the
// rules were generated for.
func (g *Generator) applyVariants(rules []CSSRule, variants []Variant, anchor string) []CSSRule {
	if len(variants) == 0 {
		return rules
	}
	out := make([]CSSRule, len(rules))
	for i, r := range rules {
		if r.IsAtRule() {
			out[i] = r
			continue
		}
		for j := len(variants) - 1; j >= 0; j-- {
			r = g.applyVariant(r, variants[j], anchor)
		}
		out[i] = r
	}
	return out
}

func (g *Generator) applyVariant(r CSSRule, v Variant, anchor string) CSSRule {
	switch v.Kind {
	case VariantState:
		r.Selector = withPseudo(r.Selector, anchor, statePseudo[v.Name])
		r.Order += OffsetStateVariants
	case VariantStructural:
		r.Selector = withPseudo(r.Selector, anchor, structuralPseudo[v.Name])
		r.Order += OffsetStateVariants
	case VariantPlaceholder:
		r.Selector = withPseudo(r.Selector, anchor, "::placeholder")
		r.Order += OffsetStateVariants
	case VariantGroup:
		pseudo := statePseudo[strings.TrimPrefix(v.Name, "group-")]
		ancestors := []string{".group" + pseudo}
		if g.tokens.Prefix != "" {
			ancestors = append(ancestors, "."+g.tokens.Prefix+"-group"+pseudo)
		}
		r.Selector = withAncestors(r.Selector, ancestors)
		r.Order += OffsetStateVariants
	case VariantDark:
		r.Selector = withAncestors(r.Selector, []string{".dark"})
		r.Order += OffsetStateVariants
	case VariantResponsive:
		query := fmt.Sprintf("(min-width: %dpx)", g.tokens.Breakpoints[v.Name])
		if r.MediaQuery == "" {
			r.MediaQuery = "@media " + query
		} else {
			r.MediaQuery += " and " + query
		}
		r.Order += OffsetResponsiveVariants
	}
	return r
}

// withPseudo inserts pseudo right after the class anchor in every selector
// alternative, falling back to appending when the anchor is absent.
func withPseudo(selector, anchor, pseudo string) string {
	parts := splitSelectorList(selector)
	for i, part := range parts {
		idx := anchorIndex(part, anchor)
		if idx < 0 {
			parts[i] = part + pseudo
			continue
		}
		end := idx + len(anchor)
		parts[i] = part[:end] + pseudo + part[end:]
	}
	return strings.Join(parts, ", ")
}

// withAncestors prefixes each alternative with every ancestor, producing the
// cross product as a selector list.
func withAncestors(selector string, ancestors []string) string {
	parts := splitSelectorList(selector)
	out := make([]string, 0, len(parts)*len(ancestors))
	for _, ancestor := range ancestors {
		for _, part := range parts {
			out = append(out, ancestor+" "+part)
		}
	}
	return strings.Join(out, ", ")
}

// anchorIndex finds anchor in part where it is not followed by more
// identifier characters, so ".vibe-p-4" does not match inside ".vibe-p-40".
func anchorIndex(part, anchor string) int {
	offset := 0
	for {
		idx := strings.Index(part[offset:], anchor)
		if idx < 0 {
			return -1
		}
		idx += offset
		end := idx + len(anchor)
		if end == len(part) || !isIdentChar(part[end]) {
			return idx
		}
		offset = idx + 1
	}
}

func isIdentChar(c byte) bool {
	return c == '-' || c == '_' || c == '\\' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c >= 0x80
}

// splitSelectorList splits on the ", " separator the generator emits.
// Escaped commas in class names are never followed by a space.
func splitSelectorList(selector string) []string {
	return strings.Split(selector, ", ")
}
