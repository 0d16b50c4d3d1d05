package cssjit

import (
	"fmt"
	"os"
	"regexp"

	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig is the theme.toml schema. Every field is optional; set
// fields override the base tokens, maps are merged key by key.
type ThemeConfig struct {
	Prefix          *string `toml:"prefix"`
	AllowUnprefixed *bool   `toml:"allow_unprefixed"`
	MaxGridColumns  *int    `toml:"max_grid_columns"`

	Features struct {
		Responsive    *bool `toml:"responsive"`
		StateVariants *bool `toml:"state_variants"`
		DarkMode      *bool `toml:"dark_mode"`
	} `toml:"features"`

	Spacing     map[string]string   `toml:"spacing"`
	Sizing      map[string]string   `toml:"sizing"`
	MaxWidth    map[string]string   `toml:"max_width"`
	FontSizes   map[string][]string `toml:"font_sizes"` // key = [size, line-height]
	FontWeights map[string]string   `toml:"font_weights"`
	Radius      map[string]string   `toml:"radius"`
	Opacity     map[string]string   `toml:"opacity"`
	ZIndex      map[string]string   `toml:"z_index"`
	Shadows     map[string]string   `toml:"shadows"`
	Breakpoints map[string]int      `toml:"breakpoints"`
	Colors      map[string]string   `toml:"colors"`
	Semantic    []string            `toml:"semantic"`
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// LoadTheme reads a theme.toml file and overlays it onto base.
func LoadTheme(path string, base DesignTokens) (DesignTokens, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read theme: %w", err)
	}
	tokens, err := ParseTheme(data, base)
	if err != nil {
		return base, fmt.Errorf("theme %s: %w", path, err)
	}
	return tokens, nil
}

// ParseTheme overlays TOML theme data onto a copy of base.
func ParseTheme(data []byte, base DesignTokens) (DesignTokens, error) {
	var cfg ThemeConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse theme: %w", err)
	}

	t := base.Clone()
	if cfg.Prefix != nil {
		t.Prefix = *cfg.Prefix
	}
	if cfg.AllowUnprefixed != nil {
		t.AllowUnprefixedUtilities = *cfg.AllowUnprefixed
	}
	if cfg.MaxGridColumns != nil {
		if *cfg.MaxGridColumns < 1 {
			return base, fmt.Errorf("max_grid_columns must be positive, got %d", *cfg.MaxGridColumns)
		}
		t.MaxGridColumns = *cfg.MaxGridColumns
	}
	if cfg.Features.Responsive != nil {
		t.EnableResponsive = *cfg.Features.Responsive
	}
	if cfg.Features.StateVariants != nil {
		t.EnableStateVariants = *cfg.Features.StateVariants
	}
	if cfg.Features.DarkMode != nil {
		t.EnableDarkMode = *cfg.Features.DarkMode
	}

	t.Spacing = merge(t.Spacing, cfg.Spacing)
	t.Sizing = merge(t.Sizing, cfg.Spacing) // spacing keys also size
	t.Sizing = merge(t.Sizing, cfg.Sizing)
	t.MaxWidth = merge(t.MaxWidth, cfg.MaxWidth)
	t.FontWeights = merge(t.FontWeights, cfg.FontWeights)
	t.Radius = merge(t.Radius, cfg.Radius)
	t.Opacity = merge(t.Opacity, cfg.Opacity)
	t.ZIndex = merge(t.ZIndex, cfg.ZIndex)
	t.Shadows = merge(t.Shadows, cfg.Shadows)

	for key, pair := range cfg.FontSizes {
		if len(pair) != 2 {
			return base, fmt.Errorf("font_sizes.%s: want [size, line-height], got %d values", key, len(pair))
		}
		t.FontSizes = mergeOne(t.FontSizes, key, FontSize{Size: pair[0], LineHeight: pair[1]})
	}
	for name, px := range cfg.Breakpoints {
		if px <= 0 {
			return base, fmt.Errorf("breakpoints.%s must be positive, got %d", name, px)
		}
		t.Breakpoints = mergeOne(t.Breakpoints, name, px)
	}
	for name, hex := range cfg.Colors {
		if !hexColor.MatchString(hex) {
			return base, fmt.Errorf("colors.%s: %q is not a hex color", name, hex)
		}
		t.Colors = mergeOne(t.Colors, name, hex)
	}
	if cfg.Semantic != nil {
		t.SemanticColors = append([]string(nil), cfg.Semantic...)
	}
	return t, nil
}

func merge[V any](dst, src map[string]V) map[string]V {
	for k, v := range src {
		dst = mergeOne(dst, k, v)
	}
	return dst
}

func mergeOne[V any](dst map[string]V, key string, value V) map[string]V {
	if dst == nil {
		dst = make(map[string]V)
	}
	dst[key] = value
	return dst
}
