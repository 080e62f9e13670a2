// Package logging configures the process-wide logger.
package logging

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// envLevel overrides the flag-provided level when set.
const envLevel = "LABPOD_LOG_LEVEL"

// Setup applies the requested log level to the default logger. Precedence:
// LABPOD_LOG_LEVEL, then the given level, then info. An unknown level name
// falls back to info with a warning rather than failing the invocation.
func Setup(level string) {
	if v := os.Getenv(envLevel); v != "" {
		level = v
	}
	if level == "" {
		level = "info"
	}

	parsed, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.Warn("Invalid log level, using info", "level", level)
		return
	}

	log.SetLevel(parsed)
	log.SetReportTimestamp(false)
}
