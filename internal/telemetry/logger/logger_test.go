package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

// decodeLines parses one JSON log entry per line.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("parse log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"json", "json", `"msg":"search started"`},
		{"empty means json", "", `"msg":"search started"`},
		{"text", "text", `msg="search started"`},
		{"console is text", "console", `msg="search started"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(Config{Level: "info", Format: tt.format, Output: &buf})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			l.Info("search started", "variant", "shift")

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{"debug", []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{"info", []string{"INFO", "WARN", "ERROR"}},
		{"warn", []string{"WARN", "ERROR"}},
		{"error", []string{"ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(Config{Level: tt.level, Format: "json", Output: &buf})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			l.Debug("search progress", "done", 10)
			l.Info("search finished", "outcome", "found")
			l.Warn("search aborted", "code", "CC-SRCH-4290")
			l.Error("metrics export failed")

			entries := decodeLines(t, &buf)
			if len(entries) != len(tt.want) {
				t.Fatalf("got %d entries, want %d: %s", len(entries), len(tt.want), buf.String())
			}
			for i, want := range tt.want {
				if got := entries[i]["level"]; got != want {
					t.Errorf("entry %d level = %v, want %s", i, got, want)
				}
			}
		})
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.With("variant", "vigenere", "workers", 4).Info("search started", "key_length", 4)

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["variant"] != "vigenere" {
		t.Errorf("variant = %v, want vigenere", e["variant"])
	}
	if e["workers"] != float64(4) {
		t.Errorf("workers = %v, want 4", e["workers"])
	}
	if e["key_length"] != float64(4) {
		t.Errorf("key_length = %v, want 4", e["key_length"])
	}
}

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")

	tests := []struct {
		input string
		want  string
	}{
		{"debug", "debug"},
		{"INFO", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"verbose", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			SetLevel(tt.input)
			if got := GetLevel(); got != tt.want {
				t.Errorf("SetLevel(%q); GetLevel() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetLevel_AffectsExistingLoggers(t *testing.T) {
	defer SetLevel("info")

	var buf bytes.Buffer
	l, err := New(Config{Level: "error", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("hidden")
	SetLevel("info")
	l.Info("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("message below the level was logged")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("message was not logged after lowering the level")
	}
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	SetDefault(l)
	SetDefault(nil)
	if Default() != l {
		t.Fatal("SetDefault(nil) replaced the default logger")
	}

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	entries := decodeLines(t, &buf)
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4: %s", len(entries), buf.String())
	}
	for i, msg := range []string{"d", "i", "w", "e"} {
		if entries[i]["msg"] != msg {
			t.Errorf("entry %d msg = %v, want %s", i, entries[i]["msg"], msg)
		}
	}
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l.WithContext(ctx).Info("logged after cancel")

	if !strings.Contains(buf.String(), "logged after cancel") {
		t.Error("a canceled context suppressed the log entry")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" || cfg.Format != "json" || cfg.Backend != BackendSlog {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if cfg.Output == nil {
		t.Error("DefaultConfig().Output is nil")
	}
	if cfg.Reveal {
		t.Error("DefaultConfig() reveals secrets")
	}
}
