package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// ErrInvalidLevel is returned when a level string is not one of the
// canonical names listed by LevelNames.
var ErrInvalidLevel = errors.New("invalid log level")

// Level identifies the severity of a log record. Levels are totally
// ordered: LevelDebug < LevelInfo < LevelWarning < LevelError <
// LevelCritical.
type Level int

const (
	// LevelDebug is the debug logging level.
	LevelDebug Level = iota
	// LevelInfo is the informational logging level.
	LevelInfo
	// LevelWarning is the warning logging level.
	LevelWarning
	// LevelError is the error logging level.
	LevelError
	// LevelCritical is the critical logging level.
	LevelCritical

	// levelOff sits above every level and silences a logger entirely.
	levelOff
)

// String returns the canonical uppercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

var levelNames = map[string]Level{
	"DEBUG":    LevelDebug,
	"INFO":     LevelInfo,
	"WARNING":  LevelWarning,
	"ERROR":    LevelError,
	"CRITICAL": LevelCritical,
}

// LevelNames returns the accepted level names in sorted order.
func LevelNames() []string {
	names := make([]string, 0, len(levelNames))
	for name := range levelNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseLevel converts a case-insensitive level name into a Level. Names
// outside the canonical set, including abbreviations such as "WARN", yield
// an error wrapping ErrInvalidLevel that names the offending value and
// lists the accepted names.
func ParseLevel(s string) (Level, error) {
	if lvl, ok := levelNames[strings.ToUpper(s)]; ok {
		return lvl, nil
	}
	return 0, fmt.Errorf("%w %q: valid levels are %s", ErrInvalidLevel, s, strings.Join(LevelNames(), ", "))
}

// slogLevelCritical extends the slog scale one step beyond slog.LevelError.
const slogLevelCritical = slog.Level(12)

// slogLevel maps a Level onto the slog scale used by the installed sinks.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slogLevelCritical
	}
}

// levelLabel maps a slog level back to a canonical display name. Records
// can arrive from plain slog callers at arbitrary levels, so the mapping
// buckets rather than matches exactly.
func levelLabel(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return "DEBUG"
	case l < slog.LevelWarn:
		return "INFO"
	case l < slog.LevelError:
		return "WARNING"
	case l < slogLevelCritical:
		return "ERROR"
	default:
		return "CRITICAL"
	}
}
