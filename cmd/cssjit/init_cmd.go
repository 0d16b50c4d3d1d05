package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssjit.yaml config file",
	Long: `Create a .cssjit.yaml configuration file in the current directory with
sensible defaults. With --with-theme a starter theme.toml is written too.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		withTheme, _ := cmd.Flags().GetBool("with-theme")

		files := []struct{ path, content string }{{".cssjit.yaml", defaultConfig}}
		if withTheme {
			files = append(files, struct{ path, content string }{"theme.toml", defaultTheme})
		}

		for _, f := range files {
			if err := writeInitFile(f.path, f.content, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", f.path)
		}
		return nil
	},
}

func writeInitFile(path, content string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

const defaultConfig = `# cssjit configuration
# Docs: https://github.com/yacobolo/cssjit

# Shared settings
verbose: false
color: false

# Design tokens
tokens:
  prefix: vibe
  allow-unprefixed: false
  max-grid-columns: 12
  responsive: true
  state-variants: true
  dark-mode: true
  # theme: theme.toml

# Build settings
build:
  format: css      # css | json
  workers: 0       # 0 = GOMAXPROCS
  verify: false

# Check settings
check:
  strict: false
  print-lines: true
  print-linter-name: true
  max-issues: 0        # 0 = unlimited
  max-same-issues: 0   # 0 = unlimited
`

const defaultTheme = `# cssjit theme: every key is optional and overlays the defaults

# prefix = "vibe"
# max_grid_columns = 12

[features]
dark_mode = true

[colors]
brand-500 = "#6366f1"

[spacing]
"13" = "3.25rem"

[font_sizes]
huge = ["5rem", "1"]

[breakpoints]
3xl = 1920
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
	initCmd.Flags().Bool("with-theme", false, "Also write a starter theme.toml")
}
