package cssjit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeSelector(t *testing.T) {
	tests := []struct {
		name  string
		class string
		want  string
	}{
		{"plain", "vibe-p-4", "vibe-p-4"},
		{"variant colon", "hover:vibe-p-4", `hover\:vibe-p-4`},
		{"fraction", "vibe-w-1/2", `vibe-w-1\/2`},
		{"decimal", "vibe-p-0.5", `vibe-p-0\.5`},
		{"brackets and percent", "vibe-w-[50%]", `vibe-w-\[50\%\]`},
		{"hash", "vibe-bg-[#fff]", `vibe-bg-\[\#fff\]`},
		{"parens and comma", "vibe-bg-[rgb(1,2,3)]", `vibe-bg-\[rgb\(1\,2\,3\)\]`},
		{"quotes", "vibe-content-['x']", `vibe-content-\[\'x\'\]`},
		{"important", "!vibe-p-4", `\!vibe-p-4`},
		{"leading digit", "2xl:vibe-p-4", `\32 xl\:vibe-p-4`},
		{"digit after dash", "-2", `-\32 `},
		{"underscore kept", "vibe-grid-cols-[1fr_2fr]", `vibe-grid-cols-\[1fr_2fr\]`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeSelector(tt.class))
		})
	}
}

func TestClassSelector(t *testing.T) {
	assert.Equal(t, `.sm\:vibe-flex`, classSelector("sm:vibe-flex"))
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  int
		ok    bool
	}{
		{"1", 12, 1, true},
		{"12", 12, 12, true},
		{"13", 12, 0, false},
		{"0", 12, 0, false},
		{"-1", 12, 0, false},
		{"+3", 12, 0, false},
		{"", 12, 0, false},
		{"x", 12, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseCount(tt.in, tt.limit)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1", formatNumber(1))
	assert.Equal(t, "0.125", formatNumber(0.125))
	assert.Equal(t, "0.95", formatNumber(0.95))
	assert.Equal(t, "0.3333", formatNumber(1.0/3))
}
