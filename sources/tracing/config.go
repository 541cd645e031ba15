package tracing

import (
	"io"
	"log/slog"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

type LoggerConfig struct {
	Level  slog.Level
	Format string
	Output io.Writer
}

// ParseLevel accepts slog level names ("debug", "warn", "error+2") and falls
// back to info.
func ParseLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo
	}
	return level
}
