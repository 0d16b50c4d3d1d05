package cssjit

import (
	"strconv"
	"strings"
)

// animation is a named keyframes block plus its default timing.
type animation struct {
	frames   string
	duration int // ms
	timing   string
}

var animations = map[string]animation{
	"spin": {
		frames:   "to { transform: rotate(360deg); }",
		duration: 1000,
		timing:   "linear infinite",
	},
	"ping": {
		frames:   "75%, 100% { transform: scale(2); opacity: 0; }",
		duration: 1000,
		timing:   "cubic-bezier(0, 0, 0.2, 1) infinite",
	},
	"pulse": {
		frames:   "50% { opacity: .5; }",
		duration: 2000,
		timing:   "cubic-bezier(0.4, 0, 0.6, 1) infinite",
	},
	"bounce": {
		frames: "0%, 100% { transform: translateY(-25%); animation-timing-function: cubic-bezier(0.8, 0, 1, 1); } " +
			"50% { transform: none; animation-timing-function: cubic-bezier(0, 0, 0.2, 1); }",
		duration: 1000,
		timing:   "infinite",
	},
}

// proseElements are the descendant rules of the prose bundle.
var proseElements = []struct {
	element string
	decls   []string
}{
	{"p", []string{decl("margin-top", "1.25em"), decl("margin-bottom", "1.25em")}},
	{"a", []string{decl("color", "inherit"), decl("text-decoration", "underline"), decl("font-weight", "500")}},
	{"strong", []string{decl("font-weight", "600")}},
	{"h1", []string{decl("font-size", "2.25em"), decl("margin-top", "0"), decl("margin-bottom", "0.8888889em"), decl("line-height", "1.1111111"), decl("font-weight", "800")}},
	{"h2", []string{decl("font-size", "1.5em"), decl("margin-top", "2em"), decl("margin-bottom", "1em"), decl("line-height", "1.3333333"), decl("font-weight", "700")}},
	{"h3", []string{decl("font-size", "1.25em"), decl("margin-top", "1.6em"), decl("margin-bottom", "0.6em"), decl("line-height", "1.6"), decl("font-weight", "600")}},
	{"h4", []string{decl("margin-top", "1.5em"), decl("margin-bottom", "0.5em"), decl("line-height", "1.5"), decl("font-weight", "600")}},
	{"blockquote", []string{decl("font-style", "italic"), decl("border-left-width", "0.25rem"), decl("padding-left", "1em"), decl("margin", "1.6em 0")}},
	{"ul", []string{decl("list-style-type", "disc"), decl("padding-left", "1.625em")}},
	{"ol", []string{decl("list-style-type", "decimal"), decl("padding-left", "1.625em")}},
	{"li", []string{decl("margin-top", "0.5em"), decl("margin-bottom", "0.5em")}},
	{"code", []string{decl("font-size", "0.875em"), decl("font-weight", "600")}},
	{"pre", []string{decl("overflow-x", "auto"), decl("padding", "0.8571429em 1.1428571em"), decl("border-radius", "0.375rem")}},
	{"hr", []string{decl("margin-top", "3em"), decl("margin-bottom", "3em")}},
	{"img", []string{decl("margin-top", "2em"), decl("margin-bottom", "2em")}},
}

var proseSizes = map[string][2]string{
	"":   {"1rem", "1.75"},
	"sm": {"0.875rem", "1.7142857"},
	"lg": {"1.125rem", "1.7777778"},
	"xl": {"1.25rem", "1.8"},
}

// matchDecorative handles utilities that emit more than one rule.
func (g *Generator) matchDecorative(name, selector string) []CSSRule {
	switch {
	case name == "container":
		return g.container(selector)
	case name == "prose" || strings.HasPrefix(name, "prose-"):
		size, ok := proseSizes[strings.TrimPrefix(strings.TrimPrefix(name, "prose"), "-")]
		if !ok {
			return nil
		}
		return prose(selector, size)
	case strings.HasPrefix(name, "animate-"):
		return g.animate(strings.TrimPrefix(name, "animate-"), selector)
	}
	return nil
}

func (g *Generator) container(selector string) []CSSRule {
	rules := rule(selector, OrderLayout, decl("width", "100%"))
	for _, bp := range g.tokens.BreakpointNames() {
		px := strconv.Itoa(g.tokens.Breakpoints[bp]) + "px"
		rules = append(rules, CSSRule{
			Selector:     selector,
			Declarations: decl("max-width", px),
			MediaQuery:   "@media (min-width: " + px + ")",
			Order:        OrderLayout,
		})
	}
	return rules
}

func prose(selector string, size [2]string) []CSSRule {
	rules := rule(selector, OrderTypography,
		decl("color", "inherit"),
		decl("max-width", "65ch"),
		decl("font-size", size[0]),
		decl("line-height", size[1]))
	for _, el := range proseElements {
		rules = append(rules, rule(selector+" "+el.element, OrderTypography, el.decls...)...)
	}
	return rules
}

// animate handles "spin", "none" and "spin-500" (duration override in ms).
func (g *Generator) animate(rest, selector string) []CSSRule {
	if rest == "none" {
		return rule(selector, OrderEffects, decl("animation", "none"))
	}

	name, ms, hasDuration := strings.Cut(rest, "-")
	anim, ok := animations[name]
	if !ok {
		return nil
	}
	duration := anim.duration
	if hasDuration {
		n, err := strconv.Atoi(ms)
		if err != nil || n <= 0 {
			return nil
		}
		duration = n
	}

	keyframes := g.keyframesName(name)
	return []CSSRule{
		{
			Selector:     "@keyframes " + keyframes,
			Declarations: anim.frames,
			Order:        OrderBase,
		},
		{
			Selector:     selector,
			Declarations: decl("animation", keyframes+" "+formatDuration(duration)+" "+anim.timing),
			Order:        OrderEffects,
		},
	}
}

// keyframesName namespaces a keyframes block with the prefix.
func (g *Generator) keyframesName(name string) string {
	if g.tokens.Prefix == "" {
		return name
	}
	return g.tokens.Prefix + "-" + name
}

// formatDuration prefers whole seconds: 1000 -> "1s", 750 -> "750ms".
func formatDuration(ms int) string {
	if ms%1000 == 0 {
		return strconv.Itoa(ms/1000) + "s"
	}
	return strconv.Itoa(ms) + "ms"
}
