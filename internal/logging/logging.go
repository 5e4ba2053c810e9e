// Package logging provides the analysis observability sink using Go's slog package.
//
// The sink is an append-only, timestamped event log opened once per run and
// closed on process exit. It accepts two message classes: "result"
// (informational analysis output) and "notable-pattern" (emphasized findings).
// Components hold an explicit *Sink handle; there is no ambient global logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// Class labels attached to every record.
const (
	// ClassResult marks informational analysis results.
	ClassResult = "result"
	// ClassNotable marks emphasized findings.
	ClassNotable = "notable-pattern"
)

// Level represents a log level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// Format represents a log output format.
type Format int

const (
	// FormatText outputs logs in human-readable text format.
	FormatText Format = iota
	// FormatJSON outputs logs in JSON format.
	FormatJSON
)

// Options configures a Sink.
type Options struct {
	Level  Level
	Format Format
	// Echo mirrors every record to this writer in addition to the log file.
	// Typically os.Stderr; nil disables echoing.
	Echo io.Writer
}

// Sink is the append-only observability log for a single analysis run.
// The core writes to it as a side channel and never reads it back.
type Sink struct {
	logger *slog.Logger
	file   *os.File
	runID  string
}

func slogLevel(level Level) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Open creates a Sink appending to the log file at path.
// Each run is tagged with a fresh run ID carried on every record.
func Open(path string, opts Options) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	var w io.Writer = f
	if opts.Echo != nil {
		w = io.MultiWriter(f, opts.Echo)
	}

	handlerOpts := &slog.HandlerOptions{
		Level: slogLevel(opts.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if opts.Format == FormatJSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	runID := uuid.NewString()
	return &Sink{
		logger: slog.New(handler).With("run_id", runID),
		file:   f,
		runID:  runID,
	}, nil
}

// NewDiscard returns a Sink that drops every record. Useful in tests and as
// the default when no log path is configured.
func NewDiscard() *Sink {
	return &Sink{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		runID:  uuid.NewString(),
	}
}

// NewWriter returns a Sink writing to w without an underlying file.
func NewWriter(w io.Writer, opts Options) *Sink {
	handlerOpts := &slog.HandlerOptions{Level: slogLevel(opts.Level)}
	var handler slog.Handler
	if opts.Format == FormatJSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	runID := uuid.NewString()
	return &Sink{
		logger: slog.New(handler).With("run_id", runID),
		runID:  runID,
	}
}

// RunID returns the run identifier attached to every record.
func (s *Sink) RunID() string {
	return s.runID
}

// Result logs an informational analysis result.
func (s *Sink) Result(msg string, args ...any) {
	allArgs := append([]any{"class", ClassResult}, args...)
	s.logger.Info(msg, allArgs...)
}

// Notable logs an emphasized finding.
func (s *Sink) Notable(msg string, args ...any) {
	allArgs := append([]any{"class", ClassNotable, "notable", true}, args...)
	s.logger.Warn(msg, allArgs...)
}

// Debug logs a debug message.
func (s *Sink) Debug(msg string, args ...any) {
	s.logger.Debug(msg, args...)
}

// Warn logs a warning (e.g. a salvage-parsed line or an unmapped abjad rune).
func (s *Sink) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

// Error logs an error message.
func (s *Sink) Error(msg string, args ...any) {
	s.logger.Error(msg, args...)
}

// Close flushes and closes the underlying log file.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	if err := s.file.Sync(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
