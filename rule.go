package cssjit

import "strings"

// Cascade order buckets. Rules are stable-sorted by Order, so a higher bucket
// wins over a lower one when selectors have equal specificity.
const (
	OrderBase          = 0
	OrderLayout        = 100
	OrderFlexbox       = 200
	OrderGrid          = 300
	OrderSpacing       = 400
	OrderSizing        = 500
	OrderTypography    = 600
	OrderBackground    = 700
	OrderBorder        = 800
	OrderEffects       = 900
	OrderInteractivity = 1000
)

// Variant offsets added on top of the category bucket.
const (
	OffsetStateVariants      = 2000
	OffsetResponsiveVariants = 3000
)

// CSSRule is a single generated rule.
type CSSRule struct {
	Selector     string // ".vibe-p-4", "@keyframes spin" or "@property --vibe-rotate"
	Declarations string // "padding: 1rem;"
	MediaQuery   string // "@media (min-width: 640px)" or ""
	Order        int    // Category bucket + variant offsets
}

// IsKeyframes reports whether the rule is a standalone @keyframes block.
func (r CSSRule) IsKeyframes() bool {
	return strings.HasPrefix(r.Selector, "@keyframes ")
}

// IsAtRule reports whether the rule is a standalone at-rule such as
// @keyframes or @property. At-rules are shared by every class that emits
// them and are never wrapped by variants.
func (r CSSRule) IsAtRule() bool {
	return strings.HasPrefix(r.Selector, "@")
}

// String renders the rule as CSS text.
func (r CSSRule) String() string {
	block := r.Selector + " { " + r.Declarations + " }"
	if r.MediaQuery == "" {
		return block
	}
	return r.MediaQuery + " { " + block + " }"
}

// rule builds a single-rule result.
func rule(selector string, order int, decls ...string) []CSSRule {
	return []CSSRule{{
		Selector:     selector,
		Declarations: strings.Join(decls, " "),
		Order:        order,
	}}
}

// decl formats one "property: value;" declaration.
func decl(property, value string) string {
	return property + ": " + value + ";"
}
