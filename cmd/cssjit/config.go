package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssjit"
)

var k = koanf.New(".")

// configSections are the nested blocks of .cssjit.yaml. Keys inside them
// are hyphenated, so env names map the first underscore to a dot and the
// rest to hyphens.
var configSections = []string{"tokens", "build", "check"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssjit.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Only flags that were explicitly set
	// are loaded; unset flag defaults would otherwise shadow the config file.
	fs := cmd.Flags()
	provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSJIT_* prefix)
	if err := k.Load(env.Provider("CSSJIT_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable name to a config key:
//
//	CSSJIT_TOKENS_MAX_GRID_COLUMNS -> tokens.max-grid-columns
//	CSSJIT_CHECK_STRICT -> check.strict
//	CSSJIT_LOG_LEVEL -> log-level
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "CSSJIT_"))
	for _, section := range configSections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(key, "_", "-")
}

// buildTokens starts from the default tokens, overlays the theme file and
// then applies the scalar overrides from flags, env and config.
func buildTokens() (cssjit.DesignTokens, error) {
	tokens := cssjit.DefaultTokens()

	if theme := getStringWithFallback("theme", "tokens.theme", ""); theme != "" {
		themed, err := cssjit.LoadTheme(theme, tokens)
		if err != nil {
			return tokens, err
		}
		tokens = themed
	}

	// An empty prefix is meaningful, so check existence instead of emptiness
	switch {
	case k.Exists("prefix"):
		tokens.Prefix = k.String("prefix")
	case k.Exists("tokens.prefix"):
		tokens.Prefix = k.String("tokens.prefix")
	}
	tokens.AllowUnprefixedUtilities = getBoolWithFallback("allow-unprefixed", "tokens.allow-unprefixed", tokens.AllowUnprefixedUtilities)
	tokens.MaxGridColumns = getIntWithFallback("max-grid-columns", "tokens.max-grid-columns", tokens.MaxGridColumns)
	tokens.EnableResponsive = getBoolWithFallback("responsive", "tokens.responsive", tokens.EnableResponsive)
	tokens.EnableStateVariants = getBoolWithFallback("state-variants", "tokens.state-variants", tokens.EnableStateVariants)
	tokens.EnableDarkMode = getBoolWithFallback("dark-mode", "tokens.dark-mode", tokens.EnableDarkMode)

	if tokens.MaxGridColumns < 1 {
		return tokens, fmt.Errorf("max-grid-columns must be positive, got %d", tokens.MaxGridColumns)
	}
	return tokens, nil
}

// buildOptions holds the build command settings resolved from koanf state.
type buildOptions struct {
	Format  cssjit.OutputFormat
	Workers int
	Verify  bool
}

func buildBuildOptions() buildOptions {
	return buildOptions{
		Format:  cssjit.DetermineOutputFormat(getStringWithFallback("format", "build.format", "css")),
		Workers: getIntWithFallback("workers", "build.workers", 0),
		Verify:  getBoolWithFallback("verify", "build.verify", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
