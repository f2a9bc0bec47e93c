package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLineFormatRender(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{
			name:   "default with timestamp",
			format: DefaultFormat,
			want:   "2025-03-14 09:26:53 - app - WARNING - low memory",
		},
		{
			name:   "default without timestamp",
			format: DefaultFormatNoTimestamp,
			want:   "app - WARNING - low memory",
		},
		{
			name:   "level and message only",
			format: "{level} - {message}",
			want:   "WARNING - low memory",
		},
		{
			name:   "literal text around tokens",
			format: "[{level}] {name}: {message}!",
			want:   "[WARNING] app: low memory!",
		},
		{
			name:   "unknown tokens pass through",
			format: "{foo} {message} {bar}",
			want:   "{foo} low memory {bar}",
		},
		{
			name:   "repeated token",
			format: "{level} {level}",
			want:   "WARNING WARNING",
		},
		{
			name:   "no tokens at all",
			format: "static line",
			want:   "static line",
		},
		{
			name:   "empty format",
			format: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := parseFormat(tt.format)
			got := f.render(nil, ts, "app", "WARNING", "low memory")
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestLineFormatRenderReusesBuffer(t *testing.T) {
	f := parseFormat("{message}")
	buf := make([]byte, 0, 32)
	buf = f.render(buf, time.Now(), "app", "INFO", "one")
	buf = append(buf, ' ')
	buf = f.render(buf, time.Now(), "app", "INFO", "two")
	assert.Equal(t, "one two", string(buf))
}
