package cssjit

import (
	"regexp"
	"strconv"
)

var flexboxKeywords = keywordTable{
	order: OrderFlexbox,
	decls: map[string][]string{
		"flex-row":          {decl("flex-direction", "row")},
		"flex-row-reverse":  {decl("flex-direction", "row-reverse")},
		"flex-col":          {decl("flex-direction", "column")},
		"flex-col-reverse":  {decl("flex-direction", "column-reverse")},
		"flex-wrap":         {decl("flex-wrap", "wrap")},
		"flex-wrap-reverse": {decl("flex-wrap", "wrap-reverse")},
		"flex-nowrap":       {decl("flex-wrap", "nowrap")},
		"flex-1":            {decl("flex", "1 1 0%")},
		"flex-auto":         {decl("flex", "1 1 auto")},
		"flex-initial":      {decl("flex", "0 1 auto")},
		"flex-none":         {decl("flex", "none")},
		"grow":              {decl("flex-grow", "1")},
		"grow-0":            {decl("flex-grow", "0")},
		"flex-grow":         {decl("flex-grow", "1")},
		"flex-grow-0":       {decl("flex-grow", "0")},
		"shrink":            {decl("flex-shrink", "1")},
		"shrink-0":          {decl("flex-shrink", "0")},
		"flex-shrink":       {decl("flex-shrink", "1")},
		"flex-shrink-0":     {decl("flex-shrink", "0")},

		"justify-start":   {decl("justify-content", "flex-start")},
		"justify-end":     {decl("justify-content", "flex-end")},
		"justify-center":  {decl("justify-content", "center")},
		"justify-between": {decl("justify-content", "space-between")},
		"justify-around":  {decl("justify-content", "space-around")},
		"justify-evenly":  {decl("justify-content", "space-evenly")},
		"justify-stretch": {decl("justify-content", "stretch")},

		"justify-items-start":   {decl("justify-items", "start")},
		"justify-items-end":     {decl("justify-items", "end")},
		"justify-items-center":  {decl("justify-items", "center")},
		"justify-items-stretch": {decl("justify-items", "stretch")},

		"items-start":    {decl("align-items", "flex-start")},
		"items-end":      {decl("align-items", "flex-end")},
		"items-center":   {decl("align-items", "center")},
		"items-baseline": {decl("align-items", "baseline")},
		"items-stretch":  {decl("align-items", "stretch")},

		"self-auto":     {decl("align-self", "auto")},
		"self-start":    {decl("align-self", "flex-start")},
		"self-end":      {decl("align-self", "flex-end")},
		"self-center":   {decl("align-self", "center")},
		"self-stretch":  {decl("align-self", "stretch")},
		"self-baseline": {decl("align-self", "baseline")},

		"content-start":   {decl("align-content", "flex-start")},
		"content-end":     {decl("align-content", "flex-end")},
		"content-center":  {decl("align-content", "center")},
		"content-between": {decl("align-content", "space-between")},
		"content-around":  {decl("align-content", "space-around")},
		"content-evenly":  {decl("align-content", "space-evenly")},

		"place-items-center":   {decl("place-items", "center")},
		"place-content-center": {decl("place-content", "center")},

		"order-first": {decl("order", "-9999")},
		"order-last":  {decl("order", "9999")},
		"order-none":  {decl("order", "0")},
	},
}

func (g *Generator) matchFlexbox(name, selector string) []CSSRule {
	if rules := flexboxKeywords.match(name, selector); rules != nil {
		return rules
	}
	if n, ok := cutPrefix(name, "order-"); ok {
		if count, ok := parseCount(n, g.tokens.MaxGridColumns); ok {
			return rule(selector, OrderFlexbox, decl("order", strconv.Itoa(count)))
		}
		return nil
	}
	if value, ok := scaleLookup(name, "basis-", g.tokens.Sizing, false); ok {
		return rule(selector, OrderFlexbox, decl("flex-basis", value))
	}
	return nil
}

var (
	gridTemplatePattern = regexp.MustCompile(`^grid-(cols|rows)-(none|subgrid|[0-9]+)$`)
	gridSpanPattern     = regexp.MustCompile(`^(col|row)-span-(full|[0-9]+)$`)
	gridLinePattern     = regexp.MustCompile(`^(col|row)-(start|end)-(auto|[0-9]+)$`)
)

var gridKeywords = keywordTable{
	order: OrderGrid,
	decls: map[string][]string{
		"col-auto":            {decl("grid-column", "auto")},
		"row-auto":            {decl("grid-row", "auto")},
		"grid-flow-row":       {decl("grid-auto-flow", "row")},
		"grid-flow-col":       {decl("grid-auto-flow", "column")},
		"grid-flow-dense":     {decl("grid-auto-flow", "dense")},
		"grid-flow-row-dense": {decl("grid-auto-flow", "row dense")},
		"grid-flow-col-dense": {decl("grid-auto-flow", "column dense")},
		"auto-cols-auto":      {decl("grid-auto-columns", "auto")},
		"auto-cols-fr":        {decl("grid-auto-columns", "minmax(0, 1fr)")},
		"auto-rows-auto":      {decl("grid-auto-rows", "auto")},
		"auto-rows-fr":        {decl("grid-auto-rows", "minmax(0, 1fr)")},
	},
}

var gridAxis = map[string]string{"col": "grid-column", "row": "grid-row"}

func (g *Generator) matchGrid(name, selector string) []CSSRule {
	if rules := gridKeywords.match(name, selector); rules != nil {
		return rules
	}
	limit := g.tokens.MaxGridColumns

	if m := gridTemplatePattern.FindStringSubmatch(name); m != nil {
		property := "grid-template-columns"
		if m[1] == "rows" {
			property = "grid-template-rows"
		}
		switch m[2] {
		case "none", "subgrid":
			return rule(selector, OrderGrid, decl(property, m[2]))
		}
		n, ok := parseCount(m[2], limit)
		if !ok {
			return nil
		}
		return rule(selector, OrderGrid, decl(property, "repeat("+strconv.Itoa(n)+", minmax(0, 1fr))"))
	}

	if m := gridSpanPattern.FindStringSubmatch(name); m != nil {
		if m[2] == "full" {
			return rule(selector, OrderGrid, decl(gridAxis[m[1]], "1 / -1"))
		}
		n, ok := parseCount(m[2], limit)
		if !ok {
			return nil
		}
		span := "span " + strconv.Itoa(n)
		return rule(selector, OrderGrid, decl(gridAxis[m[1]], span+" / "+span))
	}

	if m := gridLinePattern.FindStringSubmatch(name); m != nil {
		property := gridAxis[m[1]] + "-" + m[2]
		if m[3] == "auto" {
			return rule(selector, OrderGrid, decl(property, "auto"))
		}
		// lines run one past the last track
		n, ok := parseCount(m[3], limit+1)
		if !ok {
			return nil
		}
		return rule(selector, OrderGrid, decl(property, strconv.Itoa(n)))
	}
	return nil
}
