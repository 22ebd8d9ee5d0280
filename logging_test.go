package hotkeys

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     LogLevel
		wantWarn  bool
		wantDebug bool
	}{
		{name: "none silences everything", level: LogLevelNone},
		{name: "warn passes warnings only", level: LogLevelWarn, wantWarn: true},
		{name: "debug passes everything", level: LogLevelDebug, wantWarn: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewLogger(tt.level, &buf)

			log.Warn("warn message")
			log.Debug("debug message")

			out := buf.String()
			if got := strings.Contains(out, "warn message"); got != tt.wantWarn {
				t.Errorf("warn logged = %v, want %v", got, tt.wantWarn)
			}
			if got := strings.Contains(out, "debug message"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestLoggerFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogLevelWarn, &buf)

	log.Warn("tree %d gone", 7)

	out := buf.String()
	if !strings.Contains(out, "tree 7 gone") {
		t.Errorf("output missing formatted message: %q", out)
	}
	if !strings.Contains(out, "[WARN]") {
		t.Errorf("output missing level tag: %q", out)
	}
	if !strings.Contains(out, "hotkeys") {
		t.Errorf("output missing prefix: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogLevelWarn, &buf).WithField("tree", 3).WithField("component", 1)

	log.Warn("stale")

	out := buf.String()
	if !strings.Contains(out, "component=1") || !strings.Contains(out, "tree=3") {
		t.Errorf("output missing fields: %q", out)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"WARN", LogLevelWarn},
		{"none", LogLevelNone},
		{"off", LogLevelNone},
		{"garbage", LogLevelWarn},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
