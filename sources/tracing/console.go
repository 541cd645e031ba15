package tracing

import (
	"context"
	"log/slog"
)

const (
	ExecutionTime = "exe_time"
	OutsiderKind  = "outsider_kind"
	InnerError    = "inner_error"
	Scope         = "scope"
	RequestId     = "request_id"
	TitleContent  = "title_content"
	TitlePattern  = "title_pattern"
	TitleReason   = "title_reason"
	IndicesCount  = "indices_count"
	TitlesCount   = "titles_count"
	FailedCount   = "failed_count"
)

type Logger struct {
	log *slog.Logger
	ctx context.Context
}

func NewConsoleLogger(config *LoggerConfig) *Logger {
	options := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	switch config.Format {
	case FormatText:
		handler = slog.NewTextHandler(config.Output, options)
	default:
		handler = slog.NewJSONHandler(config.Output, options)
	}

	logger := slog.New(handler)
	ctx := context.Background()

	logger.DebugContext(ctx, "Initializing logger", "level", config.Level.String(), "format", config.Format)
	return &Logger{log: logger, ctx: ctx}
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{log: l.log.With(args...), ctx: l.ctx}
}

func (l *Logger) D(msg string, args ...any) {
	l.log.DebugContext(l.ctx, msg, args...)
}

func (l *Logger) I(msg string, args ...any) {
	l.log.InfoContext(l.ctx, msg, args...)
}

func (l *Logger) W(msg string, args ...any) {
	l.log.WarnContext(l.ctx, msg, args...)
}

func (l *Logger) E(msg string, args ...any) {
	l.log.ErrorContext(l.ctx, msg, args...)
}

func (l *Logger) F(msg string, args ...any) {
	l.log.ErrorContext(l.ctx, msg, args...)
	panic(msg)
}
