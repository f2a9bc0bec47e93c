package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FrameworkNamespace is the dotted-name prefix under which the framework's
// own components obtain their loggers. SetFrameworkLogLevel and
// DisableFrameworkLogging act on this namespace only.
const FrameworkNamespace = "agentkit"

// SetupOptions configures Setup.
type SetupOptions struct {
	// Level is the minimum severity captured by the installed sinks.
	// Case-insensitive; must be one of the names returned by LevelNames.
	Level string

	// LogFile optionally mirrors output into the given file. Parent
	// directories are created as needed and records append across runs.
	LogFile string

	// Format overrides the rendered line layout. The tokens {time},
	// {name}, {level} and {message} expand per record; any other text
	// passes through literally. When set it wins over IncludeTimestamp.
	Format string

	// IncludeTimestamp selects the default layout when Format is empty:
	// DefaultFormat when true, DefaultFormatNoTimestamp when false.
	IncludeTimestamp bool

	// ConsoleOutput is the console sink destination. Defaults to
	// os.Stdout.
	ConsoleOutput io.Writer
}

// DefaultSetupOptions returns the baseline configuration: INFO level,
// timestamped lines, console on stdout, no file sink.
func DefaultSetupOptions() *SetupOptions {
	return &SetupOptions{Level: "INFO", IncludeTimestamp: true, ConsoleOutput: os.Stdout}
}

// state is one installed sink configuration. Setup swaps the whole value,
// so readers always observe a consistent level/handler/file triple.
type state struct {
	level   Level
	handler slog.Handler
	file    *os.File
	format  *lineFormat
}

// facility owns the registry of named loggers, the per-name level
// overrides and the installed sink state. The package-level functions
// delegate to the std instance.
type facility struct {
	mu        sync.RWMutex
	current   *state
	loggers   map[string]*Logger
	overrides map[string]Level

	// onInstall, when set, publishes a freshly installed state beyond
	// the facility. The std instance points it at slog.SetDefault.
	onInstall func(*state)
}

func newFacility(onInstall func(*state)) *facility {
	return &facility{
		current:   defaultState(),
		loggers:   map[string]*Logger{},
		overrides: map[string]Level{},
		onInstall: onInstall,
	}
}

// defaultState is what a never-configured facility logs with: INFO to
// stdout in the timestamped default layout.
func defaultState() *state {
	format := parseFormat(DefaultFormat)
	return &state{
		level:   LevelInfo,
		handler: newMultiHandler(newLineHandler(os.Stdout, LevelInfo.slogLevel(), format)),
		format:  format,
	}
}

var std = newFacility(func(s *state) {
	slog.SetDefault(slog.New(s.handler))
})

// Setup configures the process-wide logging facility. It validates the
// requested level before touching any state, then replaces all installed
// sinks with a fresh console sink and, when LogFile is set, a file sink
// sharing the same level and format. Repeated calls replace the previous
// sinks, so reconfiguring never duplicates output.
//
// Setup also points slog's default logger at the installed sinks, so code
// using plain log/slog shares the same destinations and format.
//
// Setup is meant to run during application startup. Concurrent calls are
// last-writer-wins and are not atomic across the console and file
// attachment steps; loggers already handed out keep working and pick up
// the new configuration on their next call.
func Setup(optFns ...func(o *SetupOptions)) error {
	return std.setup(optFns...)
}

func (f *facility) setup(optFns ...func(o *SetupOptions)) error {
	opts := DefaultSetupOptions()
	for _, fn := range optFns {
		fn(opts)
	}

	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	layout := opts.Format
	if layout == "" {
		if opts.IncludeTimestamp {
			layout = DefaultFormat
		} else {
			layout = DefaultFormatNoTimestamp
		}
	}
	format := parseFormat(layout)

	out := opts.ConsoleOutput
	if out == nil {
		out = os.Stdout
	}
	console := newLineHandler(out, lvl.slogLevel(), format)
	f.install(&state{level: lvl, handler: newMultiHandler(console), format: format})

	if opts.LogFile == "" {
		return nil
	}

	dir := filepath.Dir(opts.LogFile)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		f.getLogger(rootName).Error("Failed to create log directory %s: %v", dir, err)
		return err
	}
	file, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	f.install(&state{
		level:   lvl,
		handler: newMultiHandler(console, newLineHandler(file, lvl.slogLevel(), format)),
		file:    file,
		format:  format,
	})
	return nil
}

// install swaps in a new sink state, closing the file owned by the
// replaced one.
func (f *facility) install(s *state) {
	f.mu.Lock()
	old := f.current
	f.current = s
	f.mu.Unlock()

	if old.file != nil {
		old.file.Close()
	}
	if f.onInstall != nil {
		f.onInstall(s)
	}
}

// effective returns the current sink state together with the effective
// level for a named logger: the nearest dotted-ancestor override wins,
// otherwise the global Setup level applies.
func (f *facility) effective(name string) (*state, Level) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for n := name; n != ""; n = parentName(n) {
		if lvl, ok := f.overrides[n]; ok {
			return f.current, lvl
		}
	}
	return f.current, f.current.level
}

// parentName walks one step up the dotted hierarchy; every top-level name
// ultimately inherits from the root logger.
func parentName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	if name == rootName {
		return ""
	}
	return rootName
}

func (f *facility) getLogger(name string) *Logger {
	if name == "" {
		name = rootName
	}

	f.mu.RLock()
	l, ok := f.loggers[name]
	f.mu.RUnlock()
	if ok {
		return l
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok := f.loggers[name]; ok {
		return l
	}
	l = &Logger{f: f, name: name}
	f.loggers[name] = l
	return l
}

// SetFrameworkLogLevel adjusts the effective level of every logger under
// FrameworkNamespace, present and future, without touching the global
// configuration or application loggers. The level string is validated
// exactly like Setup's. It also reverses DisableFrameworkLogging.
func SetFrameworkLogLevel(level string) error {
	return std.setFrameworkLevel(level)
}

// DisableFrameworkLogging silences every logger under FrameworkNamespace,
// including CRITICAL records, until a later SetFrameworkLogLevel call.
func DisableFrameworkLogging() {
	std.disableFramework()
}

func (f *facility) setFrameworkLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	f.setNamespaceLevel(FrameworkNamespace, lvl)
	return nil
}

func (f *facility) disableFramework() {
	f.setNamespaceLevel(FrameworkNamespace, levelOff)
}

// setNamespaceLevel points a whole dotted namespace at one level, dropping
// deeper per-logger overrides so the namespace moves as a unit.
func (f *facility) setNamespaceLevel(ns string, lvl Level) {
	f.mu.Lock()
	defer f.mu.Unlock()
	prefix := ns + "."
	for name := range f.overrides {
		if strings.HasPrefix(name, prefix) {
			delete(f.overrides, name)
		}
	}
	f.overrides[ns] = lvl
}
