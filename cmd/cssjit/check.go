package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssjit"
	"github.com/yacobolo/cssjit/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check [classes...]",
	Short: "Report classes that generate no CSS",
	Long: `Read classes from arguments or stdin and report every one that no
utility matches, with its line and column. Classes without the namespace
prefix are reported at info level.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Fail on unknown utilities (CI mode)")
	f.String("filename", "<stdin>", "Name shown for stdin input in issue locations")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (cssjit) suffix")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max times the same class is reported (0=unlimited)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	tokens, err := buildTokens()
	if err != nil {
		return err
	}
	gen := cssjit.New(tokens)

	var input []cssjit.Token
	filename := getStringWithFallback("filename", "check.filename", "<stdin>")
	if len(args) > 0 {
		input = cssjit.TokensFromArgs(args)
		filename = "<args>"
	} else if input, err = cssjit.ReadTokens(cmd.InOrStdin()); err != nil {
		return err
	}

	issues := gen.Check(input, filename)
	logger.Debug("check finished", "tokens", len(input), "issues", len(issues))

	if !getBoolWithFallback("quiet", "quiet", false) {
		r := report.NewReporter(cmd.OutOrStdout(), report.Options{
			UseColors:       getBoolWithFallback("color", "color", false),
			PrintLines:      getBoolWithFallback("print-lines", "check.print-lines", true),
			PrintLinterName: getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		})
		shown, truncated := report.LimitIssues(issues,
			getIntWithFallback("max-issues", "check.max-issues", 0),
			getIntWithFallback("max-same-issues", "check.max-same-issues", 0))
		r.PrintIssues(shown)
		r.PrintSummary(shown, len(input), truncated)
	}

	// Soft gate: unknown utilities only fail in strict mode
	if !getBoolWithFallback("strict", "check.strict", false) {
		return nil
	}
	unknown := 0
	for _, issue := range issues {
		if issue.Severity != cssjit.SeverityInfo {
			unknown++
		}
	}
	if unknown > 0 {
		return fmt.Errorf("strict mode: %d unknown utilities", unknown)
	}
	return nil
}
