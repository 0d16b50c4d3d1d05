package cssjit

import "strings"

// Generator maps utility class names to CSS rules. It is safe for
// concurrent use: all state is read-only after New.
type Generator struct {
	tokens   DesignTokens
	colors   *ColorResolver
	matchers []Matcher
}

// New creates a generator over a private copy of tokens.
func New(tokens DesignTokens) *Generator {
	g := &Generator{tokens: tokens.Clone()}
	if g.tokens.MaxGridColumns <= 0 {
		g.tokens.MaxGridColumns = 12
	}
	g.colors = NewColorResolver(g.tokens)
	g.matchers = g.defaultMatchers()
	return g
}

// Tokens returns a copy of the generator's design tokens.
func (g *Generator) Tokens() DesignTokens {
	return g.tokens.Clone()
}

// Generate returns the rules for one class name. An unrecognized class
// yields an empty result, which is the common case for arbitrary markup.
func (g *Generator) Generate(className string) []CSSRule {
	return g.Explain(className).Rules
}

// Explanation records how a class name was resolved.
type Explanation struct {
	ClassName string
	Variants  []Variant
	BaseName  string // variant prefixes removed
	Utility   string // namespace prefix removed; "" when rejected
	Matcher   string // name of the matcher that produced Rules
	Rules     []CSSRule
}

// Explain runs the generation pipeline and reports each stage.
func (g *Generator) Explain(className string) Explanation {
	ex := Explanation{ClassName: className, Rules: []CSSRule{}}
	if className == "" || strings.ContainsAny(className, " \t\r\n") {
		return ex
	}

	ex.Variants, ex.BaseName = g.extractVariants(className)

	utility, ok := g.stripPrefix(ex.BaseName)
	if !ok {
		return ex
	}
	ex.Utility = utility

	anchor := classSelector(className)
	for _, m := range g.matchers {
		rules := m.Match(utility, anchor)
		if rules == nil {
			continue
		}
		ex.Matcher = m.Name
		ex.Rules = g.applyVariants(rules, ex.Variants, anchor)
		return ex
	}
	return ex
}

// stripPrefix removes the "{prefix}-" namespace. A negative utility may be
// written "-{prefix}-m-4" and comes back as "-m-4".
func (g *Generator) stripPrefix(baseName string) (string, bool) {
	prefix := g.tokens.Prefix
	if prefix == "" {
		return baseName, baseName != ""
	}
	if rest, ok := strings.CutPrefix(baseName, prefix+"-"); ok && rest != "" {
		return rest, true
	}
	if rest, ok := strings.CutPrefix(baseName, "-"+prefix+"-"); ok && rest != "" {
		return "-" + rest, true
	}
	if g.tokens.AllowUnprefixedUtilities {
		return baseName, baseName != ""
	}
	return "", false
}
