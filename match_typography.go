package cssjit

var typographyKeywords = keywordTable{
	order: OrderTypography,
	decls: map[string][]string{
		"text-left":    {decl("text-align", "left")},
		"text-center":  {decl("text-align", "center")},
		"text-right":   {decl("text-align", "right")},
		"text-justify": {decl("text-align", "justify")},
		"text-start":   {decl("text-align", "start")},
		"text-end":     {decl("text-align", "end")},

		"font-sans":  {decl("font-family", `ui-sans-serif, system-ui, sans-serif`)},
		"font-serif": {decl("font-family", `ui-serif, Georgia, Cambria, "Times New Roman", Times, serif`)},
		"font-mono":  {decl("font-family", `ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace`)},

		"italic":      {decl("font-style", "italic")},
		"not-italic":  {decl("font-style", "normal")},
		"uppercase":   {decl("text-transform", "uppercase")},
		"lowercase":   {decl("text-transform", "lowercase")},
		"capitalize":  {decl("text-transform", "capitalize")},
		"normal-case": {decl("text-transform", "none")},

		"underline":    {decl("text-decoration-line", "underline")},
		"overline":     {decl("text-decoration-line", "overline")},
		"line-through": {decl("text-decoration-line", "line-through")},
		"no-underline": {decl("text-decoration-line", "none")},

		"truncate": {
			decl("overflow", "hidden"),
			decl("text-overflow", "ellipsis"),
			decl("white-space", "nowrap"),
		},
		"text-ellipsis": {decl("text-overflow", "ellipsis")},
		"text-clip":     {decl("text-overflow", "clip")},
		"text-wrap":     {decl("text-wrap", "wrap")},
		"text-nowrap":   {decl("text-wrap", "nowrap")},
		"text-balance":  {decl("text-wrap", "balance")},

		"whitespace-normal":   {decl("white-space", "normal")},
		"whitespace-nowrap":   {decl("white-space", "nowrap")},
		"whitespace-pre":      {decl("white-space", "pre")},
		"whitespace-pre-line": {decl("white-space", "pre-line")},
		"whitespace-pre-wrap": {decl("white-space", "pre-wrap")},

		"break-normal": {decl("overflow-wrap", "normal"), decl("word-break", "normal")},
		"break-words":  {decl("overflow-wrap", "break-word")},
		"break-all":    {decl("word-break", "break-all")},

		"leading-none":    {decl("line-height", "1")},
		"leading-tight":   {decl("line-height", "1.25")},
		"leading-snug":    {decl("line-height", "1.375")},
		"leading-normal":  {decl("line-height", "1.5")},
		"leading-relaxed": {decl("line-height", "1.625")},
		"leading-loose":   {decl("line-height", "2")},

		"tracking-tighter": {decl("letter-spacing", "-0.05em")},
		"tracking-tight":   {decl("letter-spacing", "-0.025em")},
		"tracking-normal":  {decl("letter-spacing", "0em")},
		"tracking-wide":    {decl("letter-spacing", "0.025em")},
		"tracking-wider":   {decl("letter-spacing", "0.05em")},
		"tracking-widest":  {decl("letter-spacing", "0.1em")},

		"antialiased": {
			decl("-webkit-font-smoothing", "antialiased"),
			decl("-moz-osx-font-smoothing", "grayscale"),
		},
		"list-none":    {decl("list-style-type", "none")},
		"list-disc":    {decl("list-style-type", "disc")},
		"list-decimal": {decl("list-style-type", "decimal")},

		"align-top":      {decl("vertical-align", "top")},
		"align-middle":   {decl("vertical-align", "middle")},
		"align-bottom":   {decl("vertical-align", "bottom")},
		"align-baseline": {decl("vertical-align", "baseline")},
	},
}

func (g *Generator) matchTypography(name, selector string) []CSSRule {
	if rules := typographyKeywords.match(name, selector); rules != nil {
		return rules
	}
	if key, ok := cutPrefix(name, "text-"); ok {
		if fs, ok := g.tokens.FontSizes[key]; ok {
			return rule(selector, OrderTypography,
				decl("font-size", fs.Size),
				decl("line-height", fs.LineHeight))
		}
		return nil
	}
	if key, ok := cutPrefix(name, "font-"); ok {
		if weight, ok := g.tokens.FontWeights[key]; ok {
			return rule(selector, OrderTypography, decl("font-weight", weight))
		}
		return nil
	}
	if value, ok := scaleLookup(name, "leading-", g.tokens.Spacing, false); ok {
		return rule(selector, OrderTypography, decl("line-height", value))
	}
	return nil
}
