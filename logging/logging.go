package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	// Level is one of debug, info, warn, error. Invalid or empty means info.
	Level string
	// Format is "json" or "text". Invalid or empty means json.
	Format string
}

// NewLogger creates a new slog.Logger writing to the specified output.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	}

	var handler slog.Handler
	if strings.EqualFold(config.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// Banner writes an operator-facing run banner to w: a separator line,
// the given lines, and a closing separator. Training runs use it to
// dump the resolved configuration ahead of the first iteration.
func Banner(w io.Writer, separator string, lines []string) {
	fmt.Fprintln(w, separator)

	for _, line := range lines {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w, separator)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
