package cssjit

import "strconv"

type directional struct {
	prefix     string
	properties []string
}

func directionalSet(short, property string) []directional {
	return []directional{
		{short + "x-", []string{property + "-left", property + "-right"}},
		{short + "y-", []string{property + "-top", property + "-bottom"}},
		{short + "t-", []string{property + "-top"}},
		{short + "r-", []string{property + "-right"}},
		{short + "b-", []string{property + "-bottom"}},
		{short + "l-", []string{property + "-left"}},
		{short + "s-", []string{property + "-inline-start"}},
		{short + "e-", []string{property + "-inline-end"}},
		{short + "-", []string{property}},
	}
}

var (
	paddingPrefixes = directionalSet("p", "padding")
	marginPrefixes  = directionalSet("m", "margin")
	gapPrefixes     = []directional{
		{"gap-x-", []string{"column-gap"}},
		{"gap-y-", []string{"row-gap"}},
		{"gap-", []string{"gap"}},
	}
)

// childSelector targets every child after the first, skipping hidden ones.
func childSelector(selector string) string {
	return selector + " > :not([hidden]) ~ :not([hidden])"
}

func (g *Generator) matchSpacing(name, selector string) []CSSRule {
	spacing := g.tokens.Spacing

	for _, d := range paddingPrefixes {
		if value, ok := scaleLookup(name, d.prefix, spacing, false); ok {
			return rule(selector, OrderSpacing, declsFor(value, d.properties...)...)
		}
	}

	for _, d := range marginPrefixes {
		if key, ok := cutPrefix(name, d.prefix); ok && key == "auto" {
			return rule(selector, OrderSpacing, declsFor("auto", d.properties...)...)
		}
		if value, ok := scaleLookup(name, d.prefix, spacing, true); ok {
			return rule(selector, OrderSpacing, declsFor(value, d.properties...)...)
		}
	}

	for _, d := range gapPrefixes {
		if value, ok := scaleLookup(name, d.prefix, spacing, false); ok {
			return rule(selector, OrderSpacing, declsFor(value, d.properties...)...)
		}
	}

	if value, ok := scaleLookup(name, "space-x-", spacing, true); ok {
		return rule(childSelector(selector), OrderSpacing, decl("margin-inline-start", value))
	}
	if value, ok := scaleLookup(name, "space-y-", spacing, true); ok {
		return rule(childSelector(selector), OrderSpacing, decl("margin-top", value))
	}
	return nil
}

var sizingPrefixes = []struct {
	prefix     string
	properties []string
	screen     string
}{
	{"min-w-", []string{"min-width"}, "100vw"},
	{"min-h-", []string{"min-height"}, "100vh"},
	{"max-h-", []string{"max-height"}, "100vh"},
	{"w-", []string{"width"}, "100vw"},
	{"h-", []string{"height"}, "100vh"},
	{"size-", []string{"width", "height"}, ""},
}

func (g *Generator) matchSizing(name, selector string) []CSSRule {
	if key, ok := cutPrefix(name, "max-w-"); ok {
		if value, ok := g.tokens.MaxWidth[key]; ok {
			return rule(selector, OrderSizing, decl("max-width", value))
		}
		if bp, ok := cutPrefix(key, "screen-"); ok {
			if px, ok := g.tokens.Breakpoints[bp]; ok {
				return rule(selector, OrderSizing, decl("max-width", strconv.Itoa(px)+"px"))
			}
		}
		return nil
	}

	for _, s := range sizingPrefixes {
		key, ok := cutPrefix(name, s.prefix)
		if !ok {
			continue
		}
		if key == "screen" && s.screen != "" {
			return rule(selector, OrderSizing, declsFor(s.screen, s.properties...)...)
		}
		if value, ok := g.tokens.Sizing[key]; ok {
			return rule(selector, OrderSizing, declsFor(value, s.properties...)...)
		}
		return nil
	}
	return nil
}
