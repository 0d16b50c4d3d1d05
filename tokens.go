package cssjit

import (
	"maps"
	"slices"
	"strings"
)

// FontSize pairs a font size with its default line height.
type FontSize struct {
	Size       string
	LineHeight string
}

// DesignTokens holds the scales and feature flags the generator reads.
// A Generator clones the tokens it is built with, so callers may keep
// mutating their copy without affecting generation.
type DesignTokens struct {
	Prefix                   string // "vibe" -> classes are written "vibe-p-4"
	AllowUnprefixedUtilities bool
	EnableResponsive         bool
	EnableStateVariants      bool
	EnableDarkMode           bool
	MaxGridColumns           int

	Spacing     map[string]string
	Sizing      map[string]string
	MaxWidth    map[string]string
	FontSizes   map[string]FontSize
	FontWeights map[string]string
	Radius      map[string]string // "" is the bare "rounded" value
	Opacity     map[string]string
	ZIndex      map[string]string
	Shadows     map[string]string // "" is the bare "shadow" value
	Breakpoints map[string]int    // pixels
	Colors      map[string]string // "red-500" -> "#ef4444"

	// SemanticColors resolve to CSS variables, e.g. primary -> var(--vibe-primary).
	SemanticColors []string
}

// DefaultTokens returns a fresh copy of the built-in design system.
func DefaultTokens() DesignTokens {
	spacing := map[string]string{
		"0":  "0px",
		"px": "1px",
	}
	for _, k := range []string{
		"0.5", "1", "1.5", "2", "2.5", "3", "3.5", "4", "5", "6", "7", "8", "9", "10",
		"11", "12", "14", "16", "20", "24", "28", "32", "36", "40", "44", "48", "52",
		"56", "60", "64", "72", "80", "96",
	} {
		spacing[k] = quarterRem(k)
	}

	sizing := maps.Clone(spacing)
	for k, v := range map[string]string{
		"auto": "auto",
		"full": "100%",
		"min":  "min-content",
		"max":  "max-content",
		"fit":  "fit-content",
		"1/2":  "50%",
		"1/3":  "33.333333%",
		"2/3":  "66.666667%",
		"1/4":  "25%",
		"2/4":  "50%",
		"3/4":  "75%",
		"1/5":  "20%",
		"2/5":  "40%",
		"3/5":  "60%",
		"4/5":  "80%",
		"1/6":  "16.666667%",
		"5/6":  "83.333333%",
	} {
		sizing[k] = v
	}

	return DesignTokens{
		Prefix:              "vibe",
		EnableResponsive:    true,
		EnableStateVariants: true,
		EnableDarkMode:      true,
		MaxGridColumns:      12,
		Spacing:             spacing,
		Sizing:              sizing,
		MaxWidth: map[string]string{
			"none":  "none",
			"xs":    "20rem",
			"sm":    "24rem",
			"md":    "28rem",
			"lg":    "32rem",
			"xl":    "36rem",
			"2xl":   "42rem",
			"3xl":   "48rem",
			"4xl":   "56rem",
			"5xl":   "64rem",
			"6xl":   "72rem",
			"7xl":   "80rem",
			"full":  "100%",
			"prose": "65ch",
		},
		FontSizes: map[string]FontSize{
			"xs":   {"0.75rem", "1rem"},
			"sm":   {"0.875rem", "1.25rem"},
			"base": {"1rem", "1.5rem"},
			"lg":   {"1.125rem", "1.75rem"},
			"xl":   {"1.25rem", "1.75rem"},
			"2xl":  {"1.5rem", "2rem"},
			"3xl":  {"1.875rem", "2.25rem"},
			"4xl":  {"2.25rem", "2.5rem"},
			"5xl":  {"3rem", "1"},
			"6xl":  {"3.75rem", "1"},
			"7xl":  {"4.5rem", "1"},
			"8xl":  {"6rem", "1"},
			"9xl":  {"8rem", "1"},
		},
		FontWeights: map[string]string{
			"thin":       "100",
			"extralight": "200",
			"light":      "300",
			"normal":     "400",
			"medium":     "500",
			"semibold":   "600",
			"bold":       "700",
			"extrabold":  "800",
			"black":      "900",
		},
		Radius: map[string]string{
			"none": "0px",
			"sm":   "0.125rem",
			"":     "0.25rem",
			"md":   "0.375rem",
			"lg":   "0.5rem",
			"xl":   "0.75rem",
			"2xl":  "1rem",
			"3xl":  "1.5rem",
			"full": "9999px",
		},
		Opacity: map[string]string{
			"0": "0", "5": "0.05", "10": "0.1", "15": "0.15", "20": "0.2", "25": "0.25",
			"30": "0.3", "35": "0.35", "40": "0.4", "45": "0.45", "50": "0.5", "55": "0.55",
			"60": "0.6", "65": "0.65", "70": "0.7", "75": "0.75", "80": "0.8", "85": "0.85",
			"90": "0.9", "95": "0.95", "100": "1",
		},
		ZIndex: map[string]string{
			"0": "0", "10": "10", "20": "20", "30": "30", "40": "40", "50": "50", "auto": "auto",
		},
		Shadows: map[string]string{
			"sm":    "0 1px 2px 0 rgb(0 0 0 / 0.05)",
			"":      "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
			"md":    "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
			"lg":    "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
			"xl":    "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
			"2xl":   "0 25px 50px -12px rgb(0 0 0 / 0.25)",
			"inner": "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
			"none":  "0 0 #0000",
		},
		Breakpoints: map[string]int{
			"sm":  640,
			"md":  768,
			"lg":  1024,
			"xl":  1280,
			"2xl": 1536,
		},
		Colors: defaultPalette(),
		SemanticColors: []string{
			"primary", "secondary", "accent", "muted", "destructive", "success",
			"warning", "info", "background", "foreground", "border", "input",
			"ring", "card", "popover",
		},
	}
}

// Clone returns a deep copy of the tokens.
func (t DesignTokens) Clone() DesignTokens {
	c := t
	c.Spacing = maps.Clone(t.Spacing)
	c.Sizing = maps.Clone(t.Sizing)
	c.MaxWidth = maps.Clone(t.MaxWidth)
	c.FontSizes = maps.Clone(t.FontSizes)
	c.FontWeights = maps.Clone(t.FontWeights)
	c.Radius = maps.Clone(t.Radius)
	c.Opacity = maps.Clone(t.Opacity)
	c.ZIndex = maps.Clone(t.ZIndex)
	c.Shadows = maps.Clone(t.Shadows)
	c.Breakpoints = maps.Clone(t.Breakpoints)
	c.Colors = maps.Clone(t.Colors)
	c.SemanticColors = slices.Clone(t.SemanticColors)
	return c
}

// BreakpointNames returns breakpoint keys ordered by ascending width.
func (t DesignTokens) BreakpointNames() []string {
	names := make([]string, 0, len(t.Breakpoints))
	for name := range t.Breakpoints {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if d := t.Breakpoints[a] - t.Breakpoints[b]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	return names
}

// quarterRem converts a spacing key to rem, one unit being 0.25rem.
func quarterRem(key string) string {
	n, ok := parseDecimal(key)
	if !ok {
		return key
	}
	return formatNumber(n/4) + "rem"
}
