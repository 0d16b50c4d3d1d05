package cssjit

var layoutKeywords = keywordTable{
	order: OrderLayout,
	decls: map[string][]string{
		// display
		"block":        {decl("display", "block")},
		"inline-block": {decl("display", "inline-block")},
		"inline":       {decl("display", "inline")},
		"flex":         {decl("display", "flex")},
		"inline-flex":  {decl("display", "inline-flex")},
		"grid":         {decl("display", "grid")},
		"inline-grid":  {decl("display", "inline-grid")},
		"table":        {decl("display", "table")},
		"table-row":    {decl("display", "table-row")},
		"table-cell":   {decl("display", "table-cell")},
		"contents":     {decl("display", "contents")},
		"flow-root":    {decl("display", "flow-root")},
		"list-item":    {decl("display", "list-item")},
		"hidden":       {decl("display", "none")},

		// position
		"static":   {decl("position", "static")},
		"fixed":    {decl("position", "fixed")},
		"absolute": {decl("position", "absolute")},
		"relative": {decl("position", "relative")},
		"sticky":   {decl("position", "sticky")},

		// visibility
		"visible":   {decl("visibility", "visible")},
		"invisible": {decl("visibility", "hidden")},
		"collapse":  {decl("visibility", "collapse")},

		// overflow
		"overflow-auto":      {decl("overflow", "auto")},
		"overflow-hidden":    {decl("overflow", "hidden")},
		"overflow-clip":      {decl("overflow", "clip")},
		"overflow-visible":   {decl("overflow", "visible")},
		"overflow-scroll":    {decl("overflow", "scroll")},
		"overflow-x-auto":    {decl("overflow-x", "auto")},
		"overflow-x-hidden":  {decl("overflow-x", "hidden")},
		"overflow-x-scroll":  {decl("overflow-x", "scroll")},
		"overflow-x-visible": {decl("overflow-x", "visible")},
		"overflow-y-auto":    {decl("overflow-y", "auto")},
		"overflow-y-hidden":  {decl("overflow-y", "hidden")},
		"overflow-y-scroll":  {decl("overflow-y", "scroll")},
		"overflow-y-visible": {decl("overflow-y", "visible")},

		"float-left":  {decl("float", "left")},
		"float-right": {decl("float", "right")},
		"float-none":  {decl("float", "none")},
		"clear-left":  {decl("clear", "left")},
		"clear-right": {decl("clear", "right")},
		"clear-both":  {decl("clear", "both")},
		"clear-none":  {decl("clear", "none")},

		"isolate":        {decl("isolation", "isolate")},
		"isolation-auto": {decl("isolation", "auto")},

		"object-contain":    {decl("object-fit", "contain")},
		"object-cover":      {decl("object-fit", "cover")},
		"object-fill":       {decl("object-fit", "fill")},
		"object-none":       {decl("object-fit", "none")},
		"object-scale-down": {decl("object-fit", "scale-down")},
		"object-center":     {decl("object-position", "center")},
		"object-top":        {decl("object-position", "top")},
		"object-bottom":     {decl("object-position", "bottom")},

		"box-border":  {decl("box-sizing", "border-box")},
		"box-content": {decl("box-sizing", "content-box")},

		"aspect-auto":   {decl("aspect-ratio", "auto")},
		"aspect-square": {decl("aspect-ratio", "1 / 1")},
		"aspect-video":  {decl("aspect-ratio", "16 / 9")},

		"sr-only": {
			decl("position", "absolute"),
			decl("width", "1px"),
			decl("height", "1px"),
			decl("padding", "0"),
			decl("margin", "-1px"),
			decl("overflow", "hidden"),
			decl("clip", "rect(0, 0, 0, 0)"),
			decl("white-space", "nowrap"),
			decl("border-width", "0"),
		},
		"not-sr-only": {
			decl("position", "static"),
			decl("width", "auto"),
			decl("height", "auto"),
			decl("padding", "0"),
			decl("margin", "0"),
			decl("overflow", "visible"),
			decl("clip", "auto"),
			decl("white-space", "normal"),
		},
	},
}

// insetPrefixes are checked longest first so "inset-x-" wins over "inset-".
var insetPrefixes = []struct {
	prefix     string
	properties []string
}{
	{"inset-x-", []string{"left", "right"}},
	{"inset-y-", []string{"top", "bottom"}},
	{"inset-", []string{"inset"}},
	{"top-", []string{"top"}},
	{"right-", []string{"right"}},
	{"bottom-", []string{"bottom"}},
	{"left-", []string{"left"}},
	{"start-", []string{"inset-inline-start"}},
	{"end-", []string{"inset-inline-end"}},
}

func (g *Generator) matchLayout(name, selector string) []CSSRule {
	if rules := layoutKeywords.match(name, selector); rules != nil {
		return rules
	}

	for _, p := range insetPrefixes {
		if value, ok := scaleLookup(name, p.prefix, g.tokens.Sizing, true); ok {
			return rule(selector, OrderLayout, declsFor(value, p.properties...)...)
		}
	}

	if value, ok := scaleLookup(name, "z-", g.tokens.ZIndex, true); ok {
		return rule(selector, OrderLayout, decl("z-index", value))
	}
	return nil
}
