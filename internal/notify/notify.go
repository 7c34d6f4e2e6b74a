// Package notify delivers transient user-facing messages. The core
// reports outcomes here and never renders anything itself, so a kiosk
// display, a log, or nothing at all can sit behind the same interface.
package notify

import "github.com/rs/zerolog"

// Sink receives transient user-facing messages.
type Sink interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

// LogSink writes notifications to the structured log. The default sink
// when no display is attached.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Success(msg string) { s.log.Info().Str("kind", "success").Msg(msg) }
func (s *LogSink) Info(msg string)    { s.log.Info().Str("kind", "info").Msg(msg) }
func (s *LogSink) Error(msg string)   { s.log.Warn().Str("kind", "error").Msg(msg) }

// Discard drops every notification. Handy in tests that assert on
// state rather than messages.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Info(string)    {}
func (Discard) Error(string)   {}
