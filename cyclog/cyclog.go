// SPDX-License-Identifier: MIT

// Package cyclog is the logging collaborator the cmd/cyclus driver uses
// instead of writing to stdout directly: a thin Logger interface over a
// *zap.SugaredLogger, so callers log structured key/value pairs without
// importing zap themselves or depending on a global logger. The library
// packages (exchange, portfolio, agent, scenario) do not log.
package cyclog

import "go.uber.org/zap"

// Logger is the logging surface the rest of this module depends on.
// Nothing outside this package constructs one by hand — use New or
// NewNop.
type Logger interface {
	Debugw(msg string, kv ...interface{})
	Infow(msg string, kv ...interface{})
	Warnw(msg string, kv ...interface{})
	Errorw(msg string, kv ...interface{})

	// With returns a Logger that prepends kv to every subsequent call.
	With(kv ...interface{}) Logger

	// Sync flushes any buffered log entries. Callers should defer it
	// once at process exit.
	Sync() error
}

type zapLogger struct {
	s *zap.SugaredLogger
}

// New builds a Logger at the given level ("debug", "info", "warn",
// "error"; anything else defaults to "info"), writing human-readable
// console output. An unrecognized level is not an error — it falls back
// to info rather than refusing to start the simulation over a typo in a
// flag.
func New(level string) (Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &zapLogger{s: zl.Sugar()}, nil
}

// NewNop returns a Logger that discards everything, for tests and
// callers that have not wired up a real sink.
func NewNop() Logger {
	return &zapLogger{s: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debugw(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l *zapLogger) Infow(msg string, kv ...interface{})  { l.s.Infow(msg, kv...) }
func (l *zapLogger) Warnw(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
func (l *zapLogger) Errorw(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }

func (l *zapLogger) With(kv ...interface{}) Logger {
	return &zapLogger{s: l.s.With(kv...)}
}

func (l *zapLogger) Sync() error { return l.s.Sync() }
