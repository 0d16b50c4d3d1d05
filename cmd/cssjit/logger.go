package main

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// newLogger builds the CLI logger. Logs go to stderr so stdout stays
// clean for the generated CSS.
func newLogger(w io.Writer) hclog.Logger {
	level := getStringWithFallback("log-level", "log-level", "warn")
	if getBoolWithFallback("verbose", "verbose", false) {
		level = "debug"
	}
	if getBoolWithFallback("quiet", "quiet", false) {
		level = "off"
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "cssjit",
		Level:      hclog.LevelFromString(level),
		JSONFormat: os.Getenv("CSSJIT_LOG_JSON") != "",
		Output:     w,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}
