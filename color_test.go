package cssjit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorResolver_Resolve(t *testing.T) {
	resolver := NewColorResolver(DefaultTokens())

	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{"red-500", "#ef4444", true},
		{"red-500/50", "rgb(239 68 68 / 0.5)", true},
		{"blue-600/75", "rgb(37 99 235 / 0.75)", true},
		{"red-500/0", "rgb(239 68 68 / 0)", true},
		{"red-500/100", "rgb(239 68 68 / 1)", true},
		{"red-500/150", "#ef4444", true},
		{"red-500/x", "#ef4444", true},
		{"primary", "var(--vibe-primary)", true},
		{"primary/25", "color-mix(in srgb, var(--vibe-primary) 25%, transparent)", true},
		{"primary-foreground", "var(--vibe-primary-foreground)", true},
		{"white/50", "rgb(255 255 255 / 0.5)", true},
		{"black", "#000000", true},
		{"transparent", "transparent", true},
		{"transparent/50", "transparent", true},
		{"current", "currentColor", true},
		{"inherit", "inherit", true},
		{"red-550", "", false},
		{"nope", "", false},
		{"nope-foreground", "", false},
		{"/50", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := resolver.Resolve(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorResolver_Namespace(t *testing.T) {
	tokens := DefaultTokens()
	tokens.Prefix = ""
	resolver := NewColorResolver(tokens)

	got, ok := resolver.Resolve("accent")
	assert.True(t, ok)
	assert.Equal(t, "var(--accent)", got)
}

func TestColorResolver_CustomPalette(t *testing.T) {
	tokens := DefaultTokens()
	tokens.Colors = map[string]string{"brand": "#6366f1"}
	tokens.SemanticColors = nil
	resolver := NewColorResolver(tokens)

	got, ok := resolver.Resolve("brand/10")
	assert.True(t, ok)
	assert.Equal(t, "rgb(99 102 241 / 0.1)", got)

	_, ok = resolver.Resolve("primary")
	assert.False(t, ok)
	_, ok = resolver.Resolve("red-500")
	assert.False(t, ok)
}
