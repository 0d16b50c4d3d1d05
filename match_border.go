package cssjit

import "strings"

var borderWidths = map[string]string{
	"":  "1px",
	"0": "0px",
	"2": "2px",
	"4": "4px",
	"8": "8px",
}

var borderSides = map[string][]string{
	"":  {"border-width"},
	"x": {"border-left-width", "border-right-width"},
	"y": {"border-top-width", "border-bottom-width"},
	"t": {"border-top-width"},
	"r": {"border-right-width"},
	"b": {"border-bottom-width"},
	"l": {"border-left-width"},
	"s": {"border-inline-start-width"},
	"e": {"border-inline-end-width"},
}

var radiusCorners = map[string][]string{
	"":   {"border-radius"},
	"t":  {"border-top-left-radius", "border-top-right-radius"},
	"r":  {"border-top-right-radius", "border-bottom-right-radius"},
	"b":  {"border-bottom-right-radius", "border-bottom-left-radius"},
	"l":  {"border-top-left-radius", "border-bottom-left-radius"},
	"tl": {"border-top-left-radius"},
	"tr": {"border-top-right-radius"},
	"br": {"border-bottom-right-radius"},
	"bl": {"border-bottom-left-radius"},
	"s":  {"border-start-start-radius", "border-end-start-radius"},
	"e":  {"border-start-end-radius", "border-end-end-radius"},
}

var borderKeywords = keywordTable{
	order: OrderBorder,
	decls: map[string][]string{
		"border-solid":  {decl("border-style", "solid")},
		"border-dashed": {decl("border-style", "dashed")},
		"border-dotted": {decl("border-style", "dotted")},
		"border-double": {decl("border-style", "double")},
		"border-hidden": {decl("border-style", "hidden")},
		"border-none":   {decl("border-style", "none")},
	},
}

func (g *Generator) matchBorder(name, selector string) []CSSRule {
	if rules := borderKeywords.match(name, selector); rules != nil {
		return rules
	}
	if name == "border" || strings.HasPrefix(name, "border-") {
		return matchBorderWidth(strings.TrimPrefix(strings.TrimPrefix(name, "border"), "-"), selector)
	}
	if name == "rounded" || strings.HasPrefix(name, "rounded-") {
		return g.matchRounded(strings.TrimPrefix(strings.TrimPrefix(name, "rounded"), "-"), selector)
	}
	if rest, ok := strings.CutPrefix(name, "divide-"); ok {
		return matchDivide(rest, selector)
	}
	return nil
}

// matchBorderWidth handles "", "2", "t", "t-2" after "border".
func matchBorderWidth(rest, selector string) []CSSRule {
	side, width := rest, ""
	if _, ok := borderSides[side]; !ok {
		side, width, _ = strings.Cut(rest, "-")
		if _, ok := borderSides[side]; !ok {
			side, width = "", rest
		}
	}
	value, ok := borderWidths[width]
	if !ok {
		return nil
	}
	return rule(selector, OrderBorder, declsFor(value, borderSides[side]...)...)
}

// matchRounded handles "", "lg", "t", "t-lg" after "rounded".
func (g *Generator) matchRounded(rest, selector string) []CSSRule {
	corner, size := rest, ""
	if _, ok := radiusCorners[corner]; !ok {
		corner, size, _ = strings.Cut(rest, "-")
		if _, ok := radiusCorners[corner]; !ok {
			corner, size = "", rest
		}
	}
	value, ok := g.tokens.Radius[size]
	if !ok {
		return nil
	}
	return rule(selector, OrderBorder, declsFor(value, radiusCorners[corner]...)...)
}

// matchDivide handles divide widths; divide colors fall through to the
// color matcher.
func matchDivide(rest, selector string) []CSSRule {
	axis, width, _ := strings.Cut(rest, "-")
	var properties []string
	switch axis {
	case "x":
		properties = []string{"border-left-width"}
	case "y":
		properties = []string{"border-top-width"}
	default:
		return nil
	}
	value, ok := borderWidths[width]
	if !ok {
		return nil
	}
	return rule(childSelector(selector), OrderBorder, declsFor(value, properties...)...)
}
