package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssjit",
	Short: "Just-in-time CSS generator for utility classes",
	Long: `Turn utility class names into CSS rules on demand.
Classes are read from arguments or stdin, one or more per line:

  echo "vibe-p-4 md:vibe-flex hover:vibe-bg-primary" | cssjit`,
	// Default behavior: run build when no subcommand is given.
	// loadConfig is called here because PreRunE of buildCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runBuild(cmd, args)
	},
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress logs and reports (CSS is still written)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", ".cssjit.yaml", "Config file path")
	pf.String("theme", "", "theme.toml with design token overrides")
	pf.String("prefix", "vibe", "Namespace prefix for utilities")
	pf.Bool("allow-unprefixed", false, "Also accept utilities without the prefix")
	pf.Int("max-grid-columns", 12, "Largest accepted grid column count")
	pf.Bool("responsive", true, "Enable breakpoint variants")
	pf.Bool("state-variants", true, "Enable hover/focus/group variants")
	pf.Bool("dark-mode", true, "Enable the dark: variant")

	// Share build's flags with the root command so `cssjit --format json` works
	rootCmd.Flags().AddFlagSet(buildCmd.Flags())

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
