package logging

import (
	"strings"
	"time"
)

// Format tokens understood by the SetupOptions.Format template.
const (
	tokenTime    = "{time}"
	tokenName    = "{name}"
	tokenLevel   = "{level}"
	tokenMessage = "{message}"
)

// TimeLayout is the layout the {time} token expands with.
const TimeLayout = "2006-01-02 15:04:05"

// DefaultFormat is the line layout installed by Setup when timestamps are
// enabled.
const DefaultFormat = "{time} - {name} - {level} - {message}"

// DefaultFormatNoTimestamp is the line layout installed by Setup when
// timestamps are disabled.
const DefaultFormatNoTimestamp = "{name} - {level} - {message}"

type segmentKind int

const (
	segText segmentKind = iota
	segTime
	segName
	segLevel
	segMessage
)

type segment struct {
	kind segmentKind
	text string
}

// lineFormat is a format string compiled once at Setup time into segments,
// so rendering a record is a straight append pass.
type lineFormat struct {
	segments []segment
}

var formatTokens = map[string]segmentKind{
	tokenTime:    segTime,
	tokenName:    segName,
	tokenLevel:   segLevel,
	tokenMessage: segMessage,
}

// parseFormat compiles a format string. Text outside the known tokens,
// including unrecognized brace sequences, passes through literally; every
// format string is therefore valid.
func parseFormat(format string) *lineFormat {
	var segs []segment
	rest := format
	for rest != "" {
		next := -1
		var kind segmentKind
		width := 0
		for tok, k := range formatTokens {
			if i := strings.Index(rest, tok); i >= 0 && (next < 0 || i < next) {
				next, kind, width = i, k, len(tok)
			}
		}
		if next < 0 {
			segs = append(segs, segment{kind: segText, text: rest})
			break
		}
		if next > 0 {
			segs = append(segs, segment{kind: segText, text: rest[:next]})
		}
		segs = append(segs, segment{kind: kind})
		rest = rest[next+width:]
	}
	return &lineFormat{segments: segs}
}

// render appends the formatted line body to buf.
func (f *lineFormat) render(buf []byte, t time.Time, name, level, msg string) []byte {
	for _, seg := range f.segments {
		switch seg.kind {
		case segText:
			buf = append(buf, seg.text...)
		case segTime:
			buf = t.AppendFormat(buf, TimeLayout)
		case segName:
			buf = append(buf, name...)
		case segLevel:
			buf = append(buf, level...)
		case segMessage:
			buf = append(buf, msg...)
		}
	}
	return buf
}
