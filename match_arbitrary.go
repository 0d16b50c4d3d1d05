package cssjit

import (
	"regexp"
	"strings"

	"github.com/yacobolo/cssjit/internal/cssvalue"
)

var arbitraryPattern = regexp.MustCompile(`^([a-z][a-z-]*)-\[(.+)\]$`)

// arbitraryProperties whitelists the keys usable with "key-[value]".
// Multiple properties are separated by "|".
var arbitraryProperties = map[string]string{
	"w":         "width",
	"h":         "height",
	"size":      "width|height",
	"min-w":     "min-width",
	"max-w":     "max-width",
	"min-h":     "min-height",
	"max-h":     "max-height",
	"p":         "padding",
	"px":        "padding-left|padding-right",
	"py":        "padding-top|padding-bottom",
	"pt":        "padding-top",
	"pr":        "padding-right",
	"pb":        "padding-bottom",
	"pl":        "padding-left",
	"m":         "margin",
	"mx":        "margin-left|margin-right",
	"my":        "margin-top|margin-bottom",
	"mt":        "margin-top",
	"mr":        "margin-right",
	"mb":        "margin-bottom",
	"ml":        "margin-left",
	"gap":       "gap",
	"gap-x":     "column-gap",
	"gap-y":     "row-gap",
	"inset":     "inset",
	"top":       "top",
	"right":     "right",
	"bottom":    "bottom",
	"left":      "left",
	"z":         "z-index",
	"basis":     "flex-basis",
	"order":     "order",
	"grid-cols": "grid-template-columns",
	"grid-rows": "grid-template-rows",
	"bg":        "background",
	"border":    "border-width",
	"rounded":   "border-radius",
	"leading":   "line-height",
	"tracking":  "letter-spacing",
	"font":      "font-weight",
	"opacity":   "opacity",
	"shadow":    "box-shadow",
	"duration":  "transition-duration",
	"delay":     "transition-delay",
	"aspect":    "aspect-ratio",
	"content":   "content",
	"fill":      "fill",
	"stroke":    "stroke",
	"accent":    "accent-color",
	"caret":     "caret-color",
}

// colorFunctions mark a "text-[...]", "border-[...]" or "ring-[...]" value
// as a color rather than a length.
var colorFunctions = []string{"#", "rgb(", "rgba(", "hsl(", "hsla(", "oklch(", "color-mix(", "var(--"}

// matchArbitrary handles "key-[value]". The value is passed through
// verbatim except that underscores become spaces.
func (g *Generator) matchArbitrary(name, selector string) []CSSRule {
	m := arbitraryPattern.FindStringSubmatch(name)
	if m == nil {
		return nil
	}
	key := m[1]
	value := strings.ReplaceAll(m[2], "_", " ")
	if cssvalue.CheckValue(value) != nil {
		return nil
	}

	color := isColorValue(value)
	switch key {
	case "text":
		if color {
			return rule(selector, OrderTypography, decl("color", value))
		}
		return rule(selector, OrderTypography, decl("font-size", value))
	case "border":
		if color {
			return rule(selector, OrderBorder, decl("border-color", value))
		}
	case "ring":
		ringColor := cssVar(g.tokens.Prefix, "ring-color")
		if color {
			return rule(selector, OrderEffects, decl(ringColor, value))
		}
		return rule(selector, OrderEffects, decl("box-shadow", "0 0 0 "+value+" var("+ringColor+", currentColor)"))
	}

	properties, ok := arbitraryProperties[key]
	if !ok {
		return nil
	}

	props := strings.Split(properties, "|")
	return rule(selector, categorizeProperty(props[0]), declsFor(value, props...)...)
}

func isColorValue(value string) bool {
	for _, prefix := range colorFunctions {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
