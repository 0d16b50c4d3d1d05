package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssjit"
	"github.com/yacobolo/cssjit/internal/cssvalue"
)

var buildCmd = &cobra.Command{
	Use:     "build [classes...]",
	Aliases: []string{"generate", "gen"},
	Short:   "Generate CSS for utility classes",
	Long: `Generate a cascade-ordered stylesheet for the given classes.
Without arguments, whitespace-separated classes are read from stdin.
Unknown classes are skipped and reported at debug level.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringP("format", "f", "css", "Output format: css|json")
	f.Int("workers", 0, "Parallel generation workers (0 = GOMAXPROCS)")
	f.Bool("verify", false, "Re-parse the generated CSS before writing it")
}

func runBuild(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	tokens, err := buildTokens()
	if err != nil {
		return err
	}
	gen := cssjit.New(tokens)
	opts := buildBuildOptions()

	classes, err := readClasses(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	logger.Debug("building stylesheet", "classes", len(classes), "prefix", tokens.Prefix, "workers", opts.Workers)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	sheet, err := cssjit.NewAssembler(gen, opts.Workers).Build(ctx, classes)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	for _, class := range sheet.Unmatched {
		logger.Debug("no utility matched", "class", class)
	}
	logger.Info("stylesheet built",
		"classes", sheet.Classes,
		"matched", sheet.Matched,
		"unmatched", len(sheet.Unmatched),
		"rules", len(sheet.Rules))

	if opts.Verify {
		count, err := cssvalue.CountRulesets(sheet.String())
		if err != nil {
			return fmt.Errorf("generated css does not parse: %w", err)
		}
		logger.Debug("verified stylesheet", "rulesets", count)
	}

	return cssjit.WriteOutput(cmd.OutOrStdout(), sheet, opts.Format)
}

// readClasses takes classes from args, or from stdin when no args are given.
func readClasses(stdin io.Reader, args []string) ([]string, error) {
	var tokens []cssjit.Token
	if len(args) > 0 {
		tokens = cssjit.TokensFromArgs(args)
	} else {
		var err error
		if tokens, err = cssjit.ReadTokens(stdin); err != nil {
			return nil, err
		}
	}

	classes := make([]string, len(tokens))
	for i, tok := range tokens {
		classes[i] = tok.Class
	}
	return classes, nil
}
