package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssjit"
	"github.com/yacobolo/cssjit/internal/report"
)

var explainCmd = &cobra.Command{
	Use:   "explain <class>...",
	Short: "Show how class names are resolved",
	Long: `Print the variants, prefix handling, matcher and final rules for
each class name. Useful when a class produces no CSS.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().Bool("matchers", false, "List the matcher chain in dispatch order")
}

func runExplain(cmd *cobra.Command, args []string) error {
	tokens, err := buildTokens()
	if err != nil {
		return err
	}
	gen := cssjit.New(tokens)
	w := cmd.OutOrStdout()

	if list, _ := cmd.Flags().GetBool("matchers"); list {
		for i, name := range gen.Matchers() {
			fmt.Fprintf(w, "%2d. %s\n", i+1, name)
		}
		return nil
	}
	if len(args) == 0 {
		return errors.New("explain needs at least one class name")
	}

	useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false))
	for i, class := range args {
		if i > 0 {
			fmt.Fprintln(w)
		}
		report.PrintExplanation(w, gen.Explain(class), useColors)
	}
	return nil
}
