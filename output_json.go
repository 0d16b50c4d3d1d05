package cssjit

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the structured export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Rules     []JSONRule  `json:"rules"`
	Unmatched []string    `json:"unmatched"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	Classes   int `json:"classes"`
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
	Rules     int `json:"rules"`
}

// JSONRule is one generated rule
type JSONRule struct {
	Selector     string `json:"selector"`
	Declarations string `json:"declarations"`
	MediaQuery   string `json:"media_query,omitempty"`
	Order        int    `json:"order"`
	CSS          string `json:"css"`
}

// WriteJSON writes the stylesheet as JSON
func WriteJSON(w io.Writer, sheet *Stylesheet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(sheet))
}

// buildJSONOutput converts a Stylesheet to JSONOutput
func buildJSONOutput(sheet *Stylesheet) JSONOutput {
	rules := make([]JSONRule, len(sheet.Rules))
	for i, r := range sheet.Rules {
		rules[i] = JSONRule{
			Selector:     r.Selector,
			Declarations: r.Declarations,
			MediaQuery:   r.MediaQuery,
			Order:        r.Order,
			CSS:          r.String(),
		}
	}

	unmatched := sheet.Unmatched
	if unmatched == nil {
		unmatched = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			Classes:   sheet.Classes,
			Matched:   sheet.Matched,
			Unmatched: len(sheet.Unmatched),
			Rules:     len(sheet.Rules),
		},
		Rules:     rules,
		Unmatched: unmatched,
	}
}
