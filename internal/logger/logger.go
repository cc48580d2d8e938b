// Package logger provides structured logging for vaultsearch
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with vaultsearch-specific helpers
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Pretty bool   // console output for interactive use
	Output io.Writer
}

// New creates a new structured logger
func New(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	zlog := zerolog.New(output).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "vaultsearch").
		Logger()

	return &Logger{zlog: zlog}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Zerolog returns the underlying zerolog logger
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

// Info starts an info event
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Debug starts a debug event
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Warn starts a warning event
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// Error starts an error event
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Component returns a child logger tagged with a component name
func (l *Logger) Component(name string) *Logger {
	return &Logger{
		zlog: l.zlog.With().Str("component", name).Logger(),
	}
}

// LogRequest logs one completed HTTP request
func (l *Logger) LogRequest(method, path string, status int, duration time.Duration, requestID string) {
	event := l.zlog.Info()
	if status >= 500 {
		event = l.zlog.Error()
	} else if status >= 400 {
		event = l.zlog.Warn()
	}

	event.
		Str("component", "http").
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("duration_ms", duration).
		Str("request_id", requestID).
		Msg("request completed")
}

// LogVaultIndexed logs the result of a vault crawl
func (l *Logger) LogVaultIndexed(path string, count, failures int, duration time.Duration) {
	event := l.zlog.Info()
	if failures > 0 {
		event = l.zlog.Warn().Int("read_failures", failures)
	}

	event.
		Str("event", "vault_indexed").
		Str("vault", path).
		Int("documents", count).
		Dur("duration_ms", duration).
		Msg("vault indexed")
}

// LogServerStart logs server startup
func (l *Logger) LogServerStart(addr, browseRoot string, allowAny bool) {
	l.zlog.Info().
		Str("event", "server_start").
		Str("addr", addr).
		Str("browse_root", browseRoot).
		Bool("allow_any_path", allowAny).
		Msg("vaultsearch server starting")
}

// LogServerShutdown logs server shutdown
func (l *Logger) LogServerShutdown() {
	l.zlog.Info().
		Str("event", "server_shutdown").
		Msg("vaultsearch server shutting down")
}
