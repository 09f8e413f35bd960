package batch

import "log/slog"

// Logger receives progress and collision messages from a conversion. The
// rekey package logs through the same interface.
//
// attrs are alternating key-value pairs as in log/slog, so a *slog.Logger
// can be plugged in through [NewSlogAdapter]:
//
//	batch.WithLogger(batch.NewSlogAdapter(slog.Default()))
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)

	// With returns a Logger that adds attrs to every message.
	With(attrs ...any) Logger
}

// NopLogger discards everything. It is the default.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any) {}
func (NopLogger) Warn(string, ...any) {}
func (NopLogger) Error(string, ...any) {}
func (n NopLogger) With(...any) Logger { return n }

// SlogAdapter is a Logger backed by a *slog.Logger.
type SlogAdapter struct {
	*slog.Logger
}

// NewSlogAdapter wraps logger, falling back to slog.Default() when it is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{Logger: logger}
}

// With shadows slog.Logger.With so the result stays a Logger.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{Logger: s.Logger.With(attrs...)}
}

var (
	_ Logger = NopLogger{}
	_ Logger = (*SlogAdapter)(nil)
)
