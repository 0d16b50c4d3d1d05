// Package cssjit generates CSS rules on demand from utility class names.
//
// A class name such as "sm:hover:vibe-bg-primary" is resolved in stages:
//
//  1. Variant prefixes ("sm:", "hover:", "dark:", "group-hover:") are peeled off
//  2. The namespace prefix ("vibe-") is checked and stripped
//  3. An ordered chain of matchers turns the bare utility into base rules
//  4. Variants are folded back onto the rules, right to left
//
// # Generation
//
//	gen := cssjit.New(cssjit.DefaultTokens())
//	rules := gen.Generate("md:vibe-p-4")
//	// [@media (min-width: 768px) { .md\:vibe-p-4 { padding: 1rem; } }]
//
// Unknown classes produce an empty slice; that is the normal outcome for
// most class names found in markup.
//
// # Assembling a stylesheet
//
// Rules carry an Order (category bucket plus variant offsets). A stable
// sort by Order is what gives later utilities precedence:
//
//	sheet, err := cssjit.NewAssembler(gen, 0).Build(ctx, classes)
//	sheet.WriteTo(os.Stdout)
//
// # Themes
//
// Design tokens can be overlaid from a theme.toml file with LoadTheme.
//
// # CLI Tool
//
//	go install github.com/yacobolo/cssjit/cmd/cssjit@latest
package cssjit
