package cssjit

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, mutate ...func(*DesignTokens)) *Generator {
	t.Helper()
	tokens := DefaultTokens()
	for _, m := range mutate {
		m(&tokens)
	}
	return New(tokens)
}

func TestGenerate_Pure(t *testing.T) {
	gen := newTestGenerator(t)

	for _, class := range []string{
		"vibe-p-4",
		"sm:hover:vibe-bg-primary",
		"vibe-animate-spin",
		"vibe-container",
		"unknown",
	} {
		t.Run(class, func(t *testing.T) {
			assert.Equal(t, gen.Generate(class), gen.Generate(class))
		})
	}
}

func TestGenerate_EverySpacingKeyPads(t *testing.T) {
	gen := newTestGenerator(t)
	tokens := gen.Tokens()

	for key, value := range tokens.Spacing {
		t.Run(key, func(t *testing.T) {
			rules := gen.Generate("vibe-p-" + key)
			require.Len(t, rules, 1)
			assert.Equal(t, "padding: "+value+";", rules[0].Declarations)
			assert.Equal(t, OrderSpacing, rules[0].Order)
		})
	}
}

func TestGenerate_EveryBreakpointWrapsInMedia(t *testing.T) {
	gen := newTestGenerator(t)
	tokens := gen.Tokens()

	for bp, px := range tokens.Breakpoints {
		t.Run(bp, func(t *testing.T) {
			rules := gen.Generate(bp + ":vibe-flex")
			require.Len(t, rules, 1)
			assert.Equal(t, fmt.Sprintf("@media (min-width: %dpx)", px), rules[0].MediaQuery)
			assert.Equal(t, OrderLayout+OffsetResponsiveVariants, rules[0].Order)
			assert.Equal(t, "display: flex;", rules[0].Declarations)
		})
	}
}

func TestGenerate_StackedVariants(t *testing.T) {
	gen := newTestGenerator(t)

	rules := gen.Generate("sm:hover:vibe-bg-primary")
	require.Len(t, rules, 1)

	r := rules[0]
	assert.True(t, strings.HasSuffix(r.Selector, ":hover"), r.Selector)
	assert.Equal(t, `.sm\:hover\:vibe-bg-primary:hover`, r.Selector)
	assert.Equal(t, "@media (min-width: 640px)", r.MediaQuery)
	assert.Equal(t, OrderBackground+OffsetStateVariants+OffsetResponsiveVariants, r.Order)
	assert.Equal(t, "background-color: var(--vibe-primary);", r.Declarations)
}

func TestGenerate_ColorWithOpacity(t *testing.T) {
	gen := newTestGenerator(t)

	rules := gen.Generate("vibe-bg-red-500/50")
	require.Len(t, rules, 1)
	assert.Equal(t, "background-color: rgb(239 68 68 / 0.5);", rules[0].Declarations)
	assert.Equal(t, `.vibe-bg-red-500\/50`, rules[0].Selector)
}

func TestGenerate_ArbitraryValue(t *testing.T) {
	gen := newTestGenerator(t)

	rules := gen.Generate("vibe-w-[500px]")
	require.Len(t, rules, 1)
	assert.Equal(t, "width: 500px;", rules[0].Declarations)
	assert.Equal(t, `.vibe-w-\[500px\]`, rules[0].Selector)
	assert.Equal(t, OrderSizing, rules[0].Order)
}

func TestGenerate_Unknown(t *testing.T) {
	gen := newTestGenerator(t)

	tests := []string{
		"totally-unknown-class",
		"vibe-totally-unknown",
		"vibe-p-999",
		"",
		"vibe-p-4 vibe-m-4",
		"hover:",
		"vibe-",
	}
	for _, class := range tests {
		t.Run(class, func(t *testing.T) {
			rules := gen.Generate(class)
			assert.NotNil(t, rules)
			assert.Empty(t, rules)
		})
	}
}

func TestGenerate_EscapedSelector(t *testing.T) {
	gen := newTestGenerator(t)

	rules := gen.Generate("hover:vibe-p-4")
	require.Len(t, rules, 1)
	assert.Equal(t, `.hover\:vibe-p-4:hover`, rules[0].Selector)
	assert.Equal(t, OrderSpacing+OffsetStateVariants, rules[0].Order)
}

func TestGenerate_PrefixEnforcement(t *testing.T) {
	t.Run("prefix required", func(t *testing.T) {
		gen := newTestGenerator(t)
		assert.Empty(t, gen.Generate("flex"))
		assert.Len(t, gen.Generate("vibe-flex"), 1)
	})

	t.Run("unprefixed allowed", func(t *testing.T) {
		gen := newTestGenerator(t, func(tk *DesignTokens) {
			tk.AllowUnprefixedUtilities = true
		})
		assert.Len(t, gen.Generate("flex"), 1)
		assert.Len(t, gen.Generate("vibe-flex"), 1)
	})

	t.Run("empty prefix", func(t *testing.T) {
		gen := newTestGenerator(t, func(tk *DesignTokens) {
			tk.Prefix = ""
		})
		rules := gen.Generate("bg-primary")
		require.Len(t, rules, 1)
		assert.Equal(t, "background-color: var(--primary);", rules[0].Declarations)
	})

	t.Run("custom prefix", func(t *testing.T) {
		gen := newTestGenerator(t, func(tk *DesignTokens) {
			tk.Prefix = "ui"
		})
		assert.Empty(t, gen.Generate("vibe-flex"))
		assert.Len(t, gen.Generate("ui-flex"), 1)
	})
}

func TestGenerate_NegativeUtilities(t *testing.T) {
	gen := newTestGenerator(t)

	tests := []struct {
		class string
		want  string
	}{
		{"-vibe-m-4", "margin: -1rem;"},
		{"vibe--mt-2", "margin-top: -0.5rem;"},
		{"-vibe-top-px", "top: -1px;"},
		{"-vibe-z-10", "z-index: -10;"},
		{"-vibe-m-0", "margin: 0px;"},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			rules := gen.Generate(tt.class)
			require.Len(t, rules, 1)
			assert.Equal(t, tt.want, rules[0].Declarations)
		})
	}

	assert.Empty(t, gen.Generate("-vibe-p-4"), "padding is not negatable")

	for _, class := range []string{"-vibe-top-fit", "-vibe-inset-auto", "-vibe-left-min", "-vibe-z-auto", "-vibe-translate-x-max"} {
		assert.Empty(t, gen.Generate(class), "%s has no negative", class)
	}
}

func TestGenerate_GeneratorOwnsTokens(t *testing.T) {
	tokens := DefaultTokens()
	gen := New(tokens)

	tokens.Spacing["4"] = "999px"
	tokens.Prefix = "changed"

	rules := gen.Generate("vibe-p-4")
	require.Len(t, rules, 1)
	assert.Equal(t, "padding: 1rem;", rules[0].Declarations)
}

func TestNew_DefaultsGridColumns(t *testing.T) {
	gen := newTestGenerator(t, func(tk *DesignTokens) {
		tk.MaxGridColumns = 0
	})
	assert.Equal(t, 12, gen.Tokens().MaxGridColumns)
	assert.Len(t, gen.Generate("vibe-grid-cols-12"), 1)
}

func TestExplain(t *testing.T) {
	gen := newTestGenerator(t)

	t.Run("matched", func(t *testing.T) {
		ex := gen.Explain("md:focus:vibe-text-lg")
		assert.Equal(t, "md:focus:vibe-text-lg", ex.ClassName)
		assert.Equal(t, []Variant{
			{Kind: VariantResponsive, Name: "md"},
			{Kind: VariantState, Name: "focus"},
		}, ex.Variants)
		assert.Equal(t, "vibe-text-lg", ex.BaseName)
		assert.Equal(t, "text-lg", ex.Utility)
		assert.Equal(t, "typography", ex.Matcher)
		require.Len(t, ex.Rules, 1)
		assert.Equal(t, "font-size: 1.125rem; line-height: 1.75rem;", ex.Rules[0].Declarations)
	})

	t.Run("rejected by prefix", func(t *testing.T) {
		ex := gen.Explain("hover:p-4")
		assert.Equal(t, "p-4", ex.BaseName)
		assert.Empty(t, ex.Utility)
		assert.Empty(t, ex.Matcher)
		assert.Empty(t, ex.Rules)
	})

	t.Run("no matcher", func(t *testing.T) {
		ex := gen.Explain("vibe-wobble")
		assert.Equal(t, "wobble", ex.Utility)
		assert.Empty(t, ex.Matcher)
		assert.Empty(t, ex.Rules)
	})
}

func TestMatchers_Order(t *testing.T) {
	gen := newTestGenerator(t)
	assert.Equal(t, []string{
		"decorative", "layout", "flexbox", "grid", "spacing", "sizing",
		"typography", "border", "effects", "interactivity", "color", "arbitrary",
	}, gen.Matchers())
}
