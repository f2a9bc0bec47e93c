package logging

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Logger is a named emitter backed by the facility's installed sinks.
// Loggers are created once per name and shared: GetLogger returns the same
// instance for the same name, and reconfiguration through Setup applies to
// loggers obtained earlier.
//
// A record passes two checks before it is written: the logger's effective
// level (its own override, or the nearest dotted ancestor's, or the global
// Setup level) and then each sink's level. Raising one logger to DEBUG
// therefore does not bypass sinks installed at INFO.
type Logger struct {
	f    *facility
	name string
}

// GetLogger returns the logger registered under name, creating it on first
// use. The empty name is the root logger. Dotted names form a hierarchy:
// "agentkit.llm" inherits its effective level from "agentkit" unless it
// carries its own override.
func GetLogger(name string) *Logger {
	return std.getLogger(name)
}

// Name returns the name the logger is registered under.
func (l *Logger) Name() string { return l.name }

// SetLevel overrides the effective level for this logger and any
// descendants without their own override. The override survives Setup.
func (l *Logger) SetLevel(lvl Level) {
	l.f.mu.Lock()
	defer l.f.mu.Unlock()
	l.f.overrides[l.name] = lvl
}

// ResetLevel removes this logger's override so it inherits again.
func (l *Logger) ResetLevel() {
	l.f.mu.Lock()
	defer l.f.mu.Unlock()
	delete(l.f.overrides, l.name)
}

// Enabled reports whether a record at lvl would pass this logger's
// effective level.
func (l *Logger) Enabled(lvl Level) bool {
	_, eff := l.f.effective(l.name)
	return lvl >= eff
}

// Debug logs at debug level. When args are present, msg is treated as a
// fmt.Sprintf format string.
func (l *Logger) Debug(msg string, args ...any) { l.log(LevelDebug, msg, args...) }

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) { l.log(LevelInfo, msg, args...) }

// Warn logs at warning level.
func (l *Logger) Warn(msg string, args ...any) { l.log(LevelWarning, msg, args...) }

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) { l.log(LevelError, msg, args...) }

// Critical logs at critical level.
func (l *Logger) Critical(msg string, args ...any) { l.log(LevelCritical, msg, args...) }

func (l *Logger) log(lvl Level, msg string, args ...any) {
	st, eff := l.f.effective(l.name)
	if lvl < eff {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	r := slog.NewRecord(time.Now(), lvl.slogLevel(), msg, 0)
	r.AddAttrs(slog.String(nameKey, l.name))
	_ = st.handler.Handle(context.Background(), r)
}
