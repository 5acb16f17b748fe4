package app

import (
	"strings"
	"testing"
)

type captureWriter struct {
	lines []string
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.lines = append(w.lines, string(p))
	return len(p), nil
}

func TestLoggerLevelFiltering(t *testing.T) {
	out := &captureWriter{}
	l := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: out})

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")

	if len(out.lines) != 2 {
		t.Fatalf("wrote %d lines, want 2: %v", len(out.lines), out.lines)
	}
	if !strings.Contains(out.lines[0], "[WARN]") {
		t.Errorf("first line = %q, want WARN", out.lines[0])
	}
}

func TestLoggerFields(t *testing.T) {
	out := &captureWriter{}
	l := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: out, Prefix: "marktide"})

	l.WithComponent("storage").Error("read failed: %v", "boom")

	if len(out.lines) != 1 {
		t.Fatalf("wrote %d lines, want 1", len(out.lines))
	}
	line := out.lines[0]
	if !strings.Contains(line, "marktide: read failed: boom") {
		t.Errorf("line = %q", line)
	}
	if !strings.Contains(line, "component=storage") {
		t.Errorf("line = %q, want component field", line)
	}
}

func TestNullLoggerIsSilent(t *testing.T) {
	// Must not panic and must not write anywhere.
	NullLogger.Error("nothing")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"WARN", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
