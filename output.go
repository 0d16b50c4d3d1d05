package cssjit

import (
	"fmt"
	"io"
)

// OutputFormat selects how a stylesheet is written.
type OutputFormat string

const (
	// OutputCSS writes plain CSS, one rule per line (default)
	OutputCSS OutputFormat = "css"
	// OutputJSON exports rules and unmatched classes for tooling
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat maps a flag value to a format, falling back to CSS
// for empty or unknown values.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "css", "":
		return OutputCSS
	default:
		// Invalid format, fall back to the default
		return OutputCSS
	}
}

// WriteOutput writes the stylesheet in the requested format.
func WriteOutput(w io.Writer, sheet *Stylesheet, format OutputFormat) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, sheet)
	default:
		if _, err := sheet.WriteTo(w); err != nil {
			return fmt.Errorf("write css: %w", err)
		}
		return nil
	}
}
