package cssjit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTheme = `
prefix = "ui"
max_grid_columns = 16
semantic = ["brand", "surface"]

[features]
dark_mode = false

[colors]
brand-500 = "#6366f1"

[spacing]
"13" = "3.25rem"

[font_sizes]
huge = ["5rem", "1"]

[breakpoints]
3xl = 1920

[radius]
pill = "999px"
`

func TestParseTheme(t *testing.T) {
	base := DefaultTokens()

	tokens, err := ParseTheme([]byte(testTheme), base)
	require.NoError(t, err)

	assert.Equal(t, "ui", tokens.Prefix)
	assert.Equal(t, 16, tokens.MaxGridColumns)
	assert.False(t, tokens.EnableDarkMode)
	assert.True(t, tokens.EnableResponsive, "unset features keep the base value")
	assert.Equal(t, []string{"brand", "surface"}, tokens.SemanticColors)
	assert.Equal(t, "#6366f1", tokens.Colors["brand-500"])
	assert.Equal(t, "#ef4444", tokens.Colors["red-500"], "maps merge key by key")
	assert.Equal(t, "3.25rem", tokens.Spacing["13"])
	assert.Equal(t, "3.25rem", tokens.Sizing["13"], "spacing keys also size")
	assert.Equal(t, FontSize{Size: "5rem", LineHeight: "1"}, tokens.FontSizes["huge"])
	assert.Equal(t, 1920, tokens.Breakpoints["3xl"])
	assert.Equal(t, "999px", tokens.Radius["pill"])

	// base is untouched
	assert.Equal(t, "vibe", base.Prefix)
	assert.NotContains(t, base.Colors, "brand-500")
	assert.NotContains(t, base.Spacing, "13")
}

func TestParseTheme_Generates(t *testing.T) {
	tokens, err := ParseTheme([]byte(testTheme), DefaultTokens())
	require.NoError(t, err)
	gen := New(tokens)

	rules := gen.Generate("3xl:ui-p-13")
	require.Len(t, rules, 1)
	assert.Equal(t, "padding: 3.25rem;", rules[0].Declarations)
	assert.Equal(t, "@media (min-width: 1920px)", rules[0].MediaQuery)

	rules = gen.Generate("ui-bg-brand")
	require.Len(t, rules, 1)
	assert.Equal(t, "background-color: var(--ui-brand);", rules[0].Declarations)

	rules = gen.Generate("ui-text-brand-500")
	require.Len(t, rules, 1)
	assert.Equal(t, "color: #6366f1;", rules[0].Declarations)

	assert.Empty(t, gen.Generate("ui-bg-primary"), "semantic list is replaced")
	assert.Empty(t, gen.Generate("dark:ui-p-4"), "dark mode disabled")
	assert.Len(t, gen.Generate("ui-grid-cols-16"), 1)
}

func TestParseTheme_Errors(t *testing.T) {
	tests := []struct {
		name  string
		theme string
	}{
		{"malformed toml", `prefix = `},
		{"bad hex", "[colors]\nbrand = \"blue\""},
		{"font size pair", "[font_sizes]\nhuge = [\"5rem\"]"},
		{"zero breakpoint", "[breakpoints]\ntiny = 0"},
		{"zero grid columns", "max_grid_columns = 0"},
		{"wrong type", `prefix = 12`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := DefaultTokens()
			tokens, err := ParseTheme([]byte(tt.theme), base)
			require.Error(t, err)
			assert.Equal(t, base.Prefix, tokens.Prefix)
		})
	}
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(testTheme), 0644))

	tokens, err := LoadTheme(path, DefaultTokens())
	require.NoError(t, err)
	assert.Equal(t, "ui", tokens.Prefix)

	_, err = LoadTheme(filepath.Join(dir, "missing.toml"), DefaultTokens())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
