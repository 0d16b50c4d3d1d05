package cssjit

import (
	"strconv"
	"strings"
)

const (
	defaultEasing   = "cubic-bezier(0.4, 0, 0.2, 1)"
	defaultDuration = "150ms"
)

func transition(properties string) []string {
	return []string{
		decl("transition-property", properties),
		decl("transition-timing-function", defaultEasing),
		decl("transition-duration", defaultDuration),
	}
}

var effectsKeywords = keywordTable{
	order: OrderEffects,
	decls: map[string][]string{
		"transition":           transition("color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform, filter"),
		"transition-all":       transition("all"),
		"transition-colors":    transition("color, background-color, border-color, text-decoration-color, fill, stroke"),
		"transition-opacity":   transition("opacity"),
		"transition-shadow":    transition("box-shadow"),
		"transition-transform": transition("transform"),
		"transition-none":      {decl("transition-property", "none")},

		"ease-linear": {decl("transition-timing-function", "linear")},
		"ease-in":     {decl("transition-timing-function", "cubic-bezier(0.4, 0, 1, 1)")},
		"ease-out":    {decl("transition-timing-function", "cubic-bezier(0, 0, 0.2, 1)")},
		"ease-in-out": {decl("transition-timing-function", defaultEasing)},

		"blur-none": {decl("filter", "blur(0)")},
		"blur-sm":   {decl("filter", "blur(4px)")},
		"blur":      {decl("filter", "blur(8px)")},
		"blur-md":   {decl("filter", "blur(12px)")},
		"blur-lg":   {decl("filter", "blur(16px)")},
		"blur-xl":   {decl("filter", "blur(24px)")},

		"outline-none": {decl("outline", "2px solid transparent"), decl("outline-offset", "2px")},
		"outline":      {decl("outline-style", "solid")},
	},
}

var ringWidths = map[string]string{
	"":  "3px",
	"0": "0px",
	"1": "1px",
	"2": "2px",
	"4": "4px",
	"8": "8px",
}

var gradientDirections = map[string]string{
	"t":  "to top",
	"tr": "to top right",
	"r":  "to right",
	"br": "to bottom right",
	"b":  "to bottom",
	"bl": "to bottom left",
	"l":  "to left",
	"tl": "to top left",
}

func (g *Generator) matchEffects(name, selector string) []CSSRule {
	if rules := effectsKeywords.match(name, selector); rules != nil {
		return rules
	}

	if name == "shadow" || strings.HasPrefix(name, "shadow-") {
		key := strings.TrimPrefix(strings.TrimPrefix(name, "shadow"), "-")
		if value, ok := g.tokens.Shadows[key]; ok {
			return rule(selector, OrderEffects, decl("box-shadow", value))
		}
		return nil
	}

	if value, ok := scaleLookup(name, "opacity-", g.tokens.Opacity, false); ok {
		return rule(selector, OrderEffects, decl("opacity", value))
	}

	if ms, ok := cutPrefix(name, "duration-"); ok {
		if n, ok := parseMillis(ms); ok {
			return rule(selector, OrderEffects, decl("transition-duration", n+"ms"))
		}
		return nil
	}
	if ms, ok := cutPrefix(name, "delay-"); ok {
		if n, ok := parseMillis(ms); ok {
			return rule(selector, OrderEffects, decl("transition-delay", n+"ms"))
		}
		return nil
	}

	if rules := g.matchTransform(name, selector); rules != nil {
		return rules
	}

	if name == "ring" || strings.HasPrefix(name, "ring-") {
		key := strings.TrimPrefix(strings.TrimPrefix(name, "ring"), "-")
		if width, ok := ringWidths[key]; ok {
			color := "var(" + cssVar(g.tokens.Prefix, "ring-color") + ", currentColor)"
			return rule(selector, OrderEffects, decl("box-shadow", "0 0 0 "+width+" "+color))
		}
		return nil
	}

	if dir, ok := cutPrefix(name, "bg-gradient-to-"); ok {
		if to, ok := gradientDirections[dir]; ok {
			stops := "var(" + cssVar(g.tokens.Prefix, "gradient-stops") + ")"
			return rule(selector, OrderBackground, decl("background-image", "linear-gradient("+to+", "+stops+")"))
		}
	}
	return nil
}

// transformComponent is one registered input of the composed transform.
type transformComponent struct {
	syntax  string
	initial string
}

// transformComponents are registered with "inherits: false" so a parent's
// rotation never leaks into a child that only sets a scale.
var transformComponents = map[string]transformComponent{
	"translate-x": {syntax: "<length-percentage>", initial: "0px"},
	"translate-y": {syntax: "<length-percentage>", initial: "0px"},
	"rotate":      {syntax: "<angle>", initial: "0deg"},
	"scale":       {syntax: "<number>", initial: "1"},
}

// matchTransform handles scale, rotate and translate with integer or
// spacing-scale arguments.
func (g *Generator) matchTransform(name, selector string) []CSSRule {
	negative := strings.HasPrefix(name, "-")
	bare := strings.TrimPrefix(name, "-")
	sign := ""
	if negative {
		sign = "-"
	}

	if pct, ok := cutPrefix(bare, "scale-"); ok && !negative {
		n, err := strconv.Atoi(pct)
		if err != nil || n < 0 || n > 200 {
			return nil
		}
		return g.transformRules(selector, "scale", formatNumber(float64(n)/100))
	}
	if deg, ok := cutPrefix(bare, "rotate-"); ok {
		n, err := strconv.Atoi(deg)
		if err != nil || n < 0 || n > 360 {
			return nil
		}
		return g.transformRules(selector, "rotate", sign+strconv.Itoa(n)+"deg")
	}
	for _, axis := range []string{"x", "y"} {
		value, ok := scaleLookup(name, "translate-"+axis+"-", g.tokens.Sizing, true)
		if !ok {
			continue
		}
		if !isLength(value) {
			return nil
		}
		return g.transformRules(selector, "translate-"+axis, value)
	}
	return nil
}

// transformRules sets one component and the composed transform. Every
// transform utility writes the same transform expression, so rotate and
// scale on one element combine instead of overriding each other.
func (g *Generator) transformRules(selector, component, value string) []CSSRule {
	ns := g.tokens.Prefix
	ref := func(name string) string {
		return "var(" + cssVar(ns, name) + ", " + transformComponents[name].initial + ")"
	}
	composed := "translate(" + ref("translate-x") + ", " + ref("translate-y") + ") " +
		"rotate(" + ref("rotate") + ") scale(" + ref("scale") + ")"

	c := transformComponents[component]
	return []CSSRule{
		{
			Selector: "@property " + cssVar(ns, component),
			Declarations: decl("syntax", `"`+c.syntax+`"`) + " " +
				decl("inherits", "false") + " " +
				decl("initial-value", c.initial),
			Order: OrderBase,
		},
		{
			Selector:     selector,
			Declarations: decl(cssVar(ns, component), value) + " " + decl("transform", composed),
			Order:        OrderEffects,
		},
	}
}

// isLength accepts values that start like a number: "0.5rem", "-100%".
func isLength(value string) bool {
	v := strings.TrimPrefix(value, "-")
	return v != "" && v[0] >= '0' && v[0] <= '9'
}

// parseMillis accepts a non-negative integer millisecond count.
func parseMillis(s string) (string, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return "", false
	}
	return strconv.Itoa(n), true
}

var interactivityKeywords = keywordTable{
	order: OrderInteractivity,
	decls: map[string][]string{
		"cursor-auto":        {decl("cursor", "auto")},
		"cursor-default":     {decl("cursor", "default")},
		"cursor-pointer":     {decl("cursor", "pointer")},
		"cursor-wait":        {decl("cursor", "wait")},
		"cursor-text":        {decl("cursor", "text")},
		"cursor-move":        {decl("cursor", "move")},
		"cursor-help":        {decl("cursor", "help")},
		"cursor-not-allowed": {decl("cursor", "not-allowed")},
		"cursor-none":        {decl("cursor", "none")},
		"cursor-grab":        {decl("cursor", "grab")},
		"cursor-grabbing":    {decl("cursor", "grabbing")},

		"select-none": {decl("user-select", "none")},
		"select-text": {decl("user-select", "text")},
		"select-all":  {decl("user-select", "all")},
		"select-auto": {decl("user-select", "auto")},

		"touch-auto":         {decl("touch-action", "auto")},
		"touch-none":         {decl("touch-action", "none")},
		"touch-pan-x":        {decl("touch-action", "pan-x")},
		"touch-pan-y":        {decl("touch-action", "pan-y")},
		"touch-manipulation": {decl("touch-action", "manipulation")},

		"resize":      {decl("resize", "both")},
		"resize-none": {decl("resize", "none")},
		"resize-x":    {decl("resize", "horizontal")},
		"resize-y":    {decl("resize", "vertical")},

		"pointer-events-none": {decl("pointer-events", "none")},
		"pointer-events-auto": {decl("pointer-events", "auto")},

		"appearance-none": {decl("appearance", "none")},
		"scroll-smooth":   {decl("scroll-behavior", "smooth")},
		"scroll-auto":     {decl("scroll-behavior", "auto")},
	},
}

func (g *Generator) matchInteractivity(name, selector string) []CSSRule {
	return interactivityKeywords.match(name, selector)
}
