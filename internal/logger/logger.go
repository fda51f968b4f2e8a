package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New creates a slog logger for the given environment.
// production writes JSON, development and testing write text.
// level (if non-empty) overrides the default level: debug, info, warn, error.
func New(env string, level string, w io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if env == "development" {
		opts.Level = slog.LevelDebug
	}

	if level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		opts.Level = lvl
	}

	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "development", "testing":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown environment %q for logger", env)
	}
}
