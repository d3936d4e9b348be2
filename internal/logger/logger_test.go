package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{" warn ", WARN},
		{"warning", WARN},
		{"Error", ERROR},
		{"", INFO},
		{"loud", INFO},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, WARN)

	l.Debug("hidden")
	l.Info("hidden too")
	l.Warn("shown", "coins", 12)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown coins=12") {
		t.Errorf("output = %q, want warn line with fields", out)
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, DEBUG).With("pet", "Bytey")

	l.Info("level up", "level", 2)
	l.Error("odd", "dangling")

	out := buf.String()
	if !strings.Contains(out, "[INFO] level up pet=Bytey level=2") {
		t.Errorf("missing inherited field: %q", out)
	}
	if !strings.Contains(out, "[ERROR] odd pet=Bytey dangling=") {
		t.Errorf("dangling key not rendered: %q", out)
	}
}

func TestSetLevelAndOutput(t *testing.T) {
	var buf bytes.Buffer
	orig := defaultLogger.level
	SetOutput(&buf)
	SetLevel(ERROR)
	defer func() {
		SetLevel(orig)
		SetOutput(&bytes.Buffer{})
	}()

	Info("quiet")
	Error("loud")

	if strings.Contains(buf.String(), "quiet") {
		t.Error("info logged at ERROR level")
	}
	if !strings.Contains(buf.String(), "loud") {
		t.Error("error not logged")
	}
}
