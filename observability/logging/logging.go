package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Setup returns a structured JSON logger tagged with the tool name. The
// writer is supplied by the caller; mint-cli hands in stderr so stdout stays
// reserved for the rendered command or plan.
func Setup(w io.Writer, service string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: false,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey {
				return slog.Attr{Key: "timestamp", Value: attr.Value}
			}
			if attr.Key == slog.LevelKey {
				return slog.String("severity", strings.ToUpper(attr.Value.String()))
			}
			if attr.Key == slog.MessageKey {
				return slog.Attr{Key: "message", Value: attr.Value}
			}
			return attr
		},
	})

	return slog.New(handler).With(slog.String("service", strings.TrimSpace(service)))
}
