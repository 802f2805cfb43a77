package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// openLogger returns a logfmt logger appending to path. The terminal belongs
// to the UI, so nothing is ever logged to stderr. An empty path discards.
func openLogger(path, level string) (*log.Logger, func(), error) {
	lvl := log.InfoLevel
	if l := strings.TrimSpace(level); l != "" {
		parsed, err := log.ParseLevel(strings.ToLower(l))
		if err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", level, err)
		}
		lvl = parsed
	}

	if strings.TrimSpace(path) == "" {
		return log.NewWithOptions(io.Discard, log.Options{Level: lvl}), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
		Prefix:          "coverflow",
	})
	return logger, func() { _ = f.Close() }, nil
}
