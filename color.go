package cssjit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// colorKeywords resolve before semantic aliases and the palette.
var colorKeywords = map[string]string{
	"transparent":  "transparent",
	"current":      "currentColor",
	"currentColor": "currentColor",
	"inherit":      "inherit",
	"black":        "#000000",
	"white":        "#ffffff",
}

// ColorResolver turns a color token like "red-500/50" into a CSS color.
type ColorResolver struct {
	palette   map[string]string
	semantic  map[string]bool
	namespace string
}

// NewColorResolver builds a resolver over the palette and semantic aliases of tokens.
func NewColorResolver(tokens DesignTokens) *ColorResolver {
	semantic := make(map[string]bool, len(tokens.SemanticColors))
	for _, alias := range tokens.SemanticColors {
		semantic[alias] = true
	}
	return &ColorResolver{
		palette:   tokens.Colors,
		semantic:  semantic,
		namespace: tokens.Prefix,
	}
}

// Resolve returns the CSS color expression for token, or false when the
// token names no known color.
//
// Resolution order: keyword, semantic alias, "{alias}-foreground", palette.
// An opacity suffix "/0-100" is honored; a malformed one is ignored.
func (c *ColorResolver) Resolve(token string) (string, bool) {
	name, opacity, hasOpacity := splitOpacity(token)
	if name == "" {
		return "", false
	}

	if value, ok := colorKeywords[name]; ok {
		if hasOpacity && strings.HasPrefix(value, "#") {
			return hexWithAlpha(value, opacity)
		}
		return value, true
	}

	if c.semantic[name] {
		return c.variable(name, opacity, hasOpacity), true
	}
	if alias, ok := strings.CutSuffix(name, "-foreground"); ok && c.semantic[alias] {
		return c.variable(name, opacity, hasOpacity), true
	}

	hex, ok := c.palette[name]
	if !ok {
		return "", false
	}
	if !hasOpacity {
		return hex, true
	}
	return hexWithAlpha(hex, opacity)
}

// variable renders a semantic color reference. A CSS variable cannot carry
// an alpha channel directly, so opacity goes through color-mix.
func (c *ColorResolver) variable(name string, opacity int, hasOpacity bool) string {
	ref := "var(" + cssVar(c.namespace, name) + ")"
	if !hasOpacity {
		return ref
	}
	return fmt.Sprintf("color-mix(in srgb, %s %d%%, transparent)", ref, opacity)
}

// splitOpacity splits "red-500/50" into ("red-500", 50, true).
// An unparsable or out of range opacity is dropped.
func splitOpacity(token string) (string, int, bool) {
	name, raw, found := strings.Cut(token, "/")
	if !found {
		return token, 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > 100 {
		return name, 0, false
	}
	return name, n, true
}

// hexWithAlpha converts "#ef4444" at 50 to "rgb(239 68 68 / 0.5)".
func hexWithAlpha(hex string, opacity int) (string, bool) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return "", false
	}
	r, g, b := col.RGB255()
	return fmt.Sprintf("rgb(%d %d %d / %s)", r, g, b, formatAlpha(opacity)), true
}

// formatAlpha renders an integer percentage as a 0-1 fraction with at most two decimals.
func formatAlpha(percent int) string {
	return strconv.FormatFloat(float64(percent)/100, 'f', -1, 64)
}

// cssVar returns "--{ns}-{name}", or "--{name}" without a namespace.
func cssVar(namespace, name string) string {
	if namespace == "" {
		return "--" + name
	}
	return "--" + namespace + "-" + name
}
