package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf})

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("expected debug and info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("expected warn and error to be logged, got %q", out)
	}
}

func TestLoggerFormatting(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelInfo, Output: &buf, Prefix: "test"})

	l.Error("count is %d", 42)

	out := buf.String()
	if !strings.Contains(out, "[ERROR]") {
		t.Errorf("expected level tag, got %q", out)
	}
	if !strings.Contains(out, "test:") {
		t.Errorf("expected prefix, got %q", out)
	}
	if !strings.Contains(out, "count is 42") {
		t.Errorf("expected formatted message, got %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelInfo, Output: &buf}).WithComponent("register")

	l.Error("boom")

	if !strings.Contains(buf.String(), "component=register") {
		t.Errorf("expected component field, got %q", buf.String())
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelInfo, Output: &buf}).
		WithField("a", 1).
		WithFields(map[string]any{"a": 2, "b": "x"})

	l.Error("boom")

	out := buf.String()
	if !strings.Contains(out, "a=2") {
		t.Errorf("expected later field to win, got %q", out)
	}
	if !strings.Contains(out, "b=x") {
		t.Errorf("expected added field, got %q", out)
	}
}

func TestLoggerWithFieldIsolation(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Level: LevelInfo, Output: &buf})
	scoped := base.WithField("k", "v")

	base.Error("plain")
	if strings.Contains(buf.String(), "k=v") {
		t.Errorf("field leaked into base logger: %q", buf.String())
	}

	buf.Reset()
	scoped.Error("scoped")
	if !strings.Contains(buf.String(), "k=v") {
		t.Errorf("expected field on scoped logger, got %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	// Must not panic and must write nowhere.
	NullLogger.Error("into the void")
}
