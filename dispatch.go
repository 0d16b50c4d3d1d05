package cssjit

// MatchFunc turns a bare utility name into rules for selector, or returns
// nil when it does not recognize the name.
type MatchFunc func(name, selector string) []CSSRule

// Matcher is one named link of the dispatch chain.
type Matcher struct {
	Name  string
	Match MatchFunc
}

// defaultMatchers returns the dispatch chain. The first non-nil result wins,
// so more specific patterns must precede the ones they share a prefix with:
// typography "text-lg" before color "text-red-500", border widths before
// border colors, ring widths before ring colors.
func (g *Generator) defaultMatchers() []Matcher {
	return []Matcher{
		{Name: "decorative", Match: g.matchDecorative},
		{Name: "layout", Match: g.matchLayout},
		{Name: "flexbox", Match: g.matchFlexbox},
		{Name: "grid", Match: g.matchGrid},
		{Name: "spacing", Match: g.matchSpacing},
		{Name: "sizing", Match: g.matchSizing},
		{Name: "typography", Match: g.matchTypography},
		{Name: "border", Match: g.matchBorder},
		{Name: "effects", Match: g.matchEffects},
		{Name: "interactivity", Match: g.matchInteractivity},
		{Name: "color", Match: g.matchColor},
		{Name: "arbitrary", Match: g.matchArbitrary},
	}
}

// Matchers returns the names of the dispatch chain in evaluation order.
func (g *Generator) Matchers() []string {
	names := make([]string, len(g.matchers))
	for i, m := range g.matchers {
		names[i] = m.Name
	}
	return names
}

// keywordTable is an exact-name lookup of fixed declarations.
type keywordTable struct {
	order int
	decls map[string][]string
}

func (t keywordTable) match(name, selector string) []CSSRule {
	decls, ok := t.decls[name]
	if !ok {
		return nil
	}
	return rule(selector, t.order, decls...)
}

// scaleLookup resolves "{prefix}{key}" against scale, emitting one
// declaration per property. A leading "-" negates the value when negatable.
func scaleLookup(name, prefix string, scale map[string]string, negatable bool) (string, bool) {
	negative := false
	if negatable && len(name) > 1 && name[0] == '-' {
		negative = true
		name = name[1:]
	}
	key, ok := cutPrefix(name, prefix)
	if !ok {
		return "", false
	}
	value, ok := scale[key]
	if !ok {
		return "", false
	}
	if negative {
		return negate(value)
	}
	return value, true
}

// cutPrefix is strings.CutPrefix that refuses an empty remainder.
func cutPrefix(name, prefix string) (string, bool) {
	if len(name) <= len(prefix) || name[:len(prefix)] != prefix {
		return "", false
	}
	return name[len(prefix):], true
}

// negate flips a numeric value. Zero stays as is; keywords such as "auto"
// or "fit-content" have no negative and are rejected.
func negate(value string) (string, bool) {
	switch value {
	case "0", "0px":
		return value, true
	}
	if value == "" || value[0] < '0' || value[0] > '9' {
		return "", false
	}
	return "-" + value, true
}

// declsFor emits the same value for each property.
func declsFor(value string, properties ...string) []string {
	out := make([]string, len(properties))
	for i, p := range properties {
		out[i] = decl(p, value)
	}
	return out
}
