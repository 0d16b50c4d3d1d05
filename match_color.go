package cssjit

import "strings"

// colorProperty describes what a color-family prefix sets.
type colorProperty struct {
	prefix string
	order  int
	decls  func(g *Generator, color string) []string
	child  bool // applies to children, like divide-*
}

func single(property string) func(*Generator, string) []string {
	return func(_ *Generator, color string) []string {
		return []string{decl(property, color)}
	}
}

var colorProperties = []colorProperty{
	{prefix: "text-", order: OrderTypography, decls: single("color")},
	{prefix: "bg-", order: OrderBackground, decls: single("background-color")},
	{prefix: "border-", order: OrderBorder, decls: single("border-color")},
	{prefix: "ring-", order: OrderEffects, decls: func(g *Generator, color string) []string {
		return []string{decl(cssVar(g.tokens.Prefix, "ring-color"), color)}
	}},
	{prefix: "accent-", order: OrderInteractivity, decls: single("accent-color")},
	{prefix: "caret-", order: OrderInteractivity, decls: single("caret-color")},
	{prefix: "divide-", order: OrderBorder, decls: single("border-color"), child: true},
	{prefix: "fill-", order: OrderBackground, decls: single("fill")},
	{prefix: "stroke-", order: OrderBackground, decls: single("stroke")},
	{prefix: "from-", order: OrderBackground, decls: func(g *Generator, color string) []string {
		ns := g.tokens.Prefix
		return []string{
			decl(cssVar(ns, "gradient-from"), color),
			decl(cssVar(ns, "gradient-stops"), "var("+cssVar(ns, "gradient-from")+"), var("+cssVar(ns, "gradient-to")+", transparent)"),
		}
	}},
	{prefix: "via-", order: OrderBackground, decls: func(g *Generator, color string) []string {
		ns := g.tokens.Prefix
		return []string{
			decl(cssVar(ns, "gradient-stops"), "var("+cssVar(ns, "gradient-from")+"), "+color+", var("+cssVar(ns, "gradient-to")+", transparent)"),
		}
	}},
	{prefix: "to-", order: OrderBackground, decls: func(g *Generator, color string) []string {
		return []string{decl(cssVar(g.tokens.Prefix, "gradient-to"), color)}
	}},
}

// matchColor strips a color-family prefix and resolves the remainder
// through the color resolver.
func (g *Generator) matchColor(name, selector string) []CSSRule {
	for _, p := range colorProperties {
		token, ok := strings.CutPrefix(name, p.prefix)
		if !ok || token == "" {
			continue
		}
		color, ok := g.colors.Resolve(token)
		if !ok {
			return nil
		}
		sel := selector
		if p.child {
			sel = childSelector(selector)
		}
		return rule(sel, p.order, p.decls(g, color)...)
	}
	return nil
}
