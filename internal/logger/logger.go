// Package logger builds the slog logger used by the lexicon CLI.
package logger

import (
	"io"
	"log/slog"
	"time"
)

// Config selects where debug records go and whether they are written.
type Config struct {
	Out   io.Writer
	Debug bool
}

// New returns a discarding logger unless Debug is set, in which case it
// writes JSON records with source locations to cfg.Out.
func New(cfg Config) *slog.Logger {
	if !cfg.Debug || cfg.Out == nil {
		return Discard()
	}

	h := slog.NewJSONHandler(cfg.Out, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
