package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// nameKey is the record attribute carrying the emitting logger's name.
const nameKey = "logger"

// rootName is the logger name used when a record carries no name attribute.
const rootName = "root"

// lineHandler renders each record as a single formatted line. It applies
// the sink-side level check: records below the sink's level are dropped no
// matter how verbose the emitting logger is.
type lineHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Level
	format *lineFormat
	attrs  []slog.Attr
	groups []string
}

func newLineHandler(w io.Writer, level slog.Level, format *lineFormat) *lineHandler {
	return &lineHandler{mu: &sync.Mutex{}, w: w, level: level, format: format}
}

// Enabled reports whether the sink accepts records at the given level.
func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle renders the record through the compiled format and writes it as
// one line. Attributes other than the logger name are appended after the
// message as key=value pairs.
func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	name := rootName
	var extra []slog.Attr
	add := func(a slog.Attr) {
		switch {
		case a.Key == nameKey:
			name = a.Value.String()
		case a.Key == "":
		default:
			extra = append(extra, a)
		}
	}
	for _, a := range h.attrs {
		add(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		add(h.qualify(a))
		return true
	})

	buf := make([]byte, 0, 128)
	buf = h.format.render(buf, r.Time, name, levelLabel(r.Level), r.Message)
	for _, a := range extra {
		buf = append(buf, ' ')
		buf = append(buf, a.Key...)
		buf = append(buf, '=')
		buf = append(buf, a.Value.String()...)
	}
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

// qualify prefixes an attribute key with the open group path.
func (h *lineHandler) qualify(a slog.Attr) slog.Attr {
	if len(h.groups) > 0 {
		a.Key = strings.Join(h.groups, ".") + "." + a.Key
	}
	return a
}

// WithAttrs returns a sink that attaches attrs to every record. The clone
// shares the parent's mutex so line writes stay serialized.
func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, h.qualify(a))
	}
	return &nh
}

// WithGroup returns a sink that qualifies subsequent attribute keys with
// name.
func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = make([]string, len(h.groups)+1)
	copy(nh.groups, h.groups)
	nh.groups[len(h.groups)] = name
	return &nh
}

// multiHandler fans records out to a set of sinks. Each sink applies its
// own level check, so a record can reach the file sink and still be
// dropped by the console sink, or vice versa.
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

// Enabled reports whether at least one sink accepts the level.
func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, hh := range h.handlers {
		if hh.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle forwards the record to every sink that accepts its level.
func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, hh := range h.handlers {
		if !hh.Enabled(ctx, r.Level) {
			continue
		}
		if err := hh.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs applies attrs to every sink.
func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, hh := range h.handlers {
		next[i] = hh.WithAttrs(attrs)
	}
	return &multiHandler{handlers: next}
}

// WithGroup opens a group on every sink.
func (h *multiHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, hh := range h.handlers {
		next[i] = hh.WithGroup(name)
	}
	return &multiHandler{handlers: next}
}
