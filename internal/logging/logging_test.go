package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got: %s", cfg.Level)
	}
	if cfg.Output == nil {
		t.Error("expected non-nil default output")
	}
}

func TestNew_WritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Output: &buf})

	logger.Info("backend request", slog.String("name", "clickhouse-http"))

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if parsed["msg"] != "backend request" {
		t.Errorf("expected msg field, got: %v", parsed["msg"])
	}
	if parsed["name"] != "clickhouse-http" {
		t.Errorf("expected name attribute, got: %v", parsed["name"])
	}
}

func TestParseLevel_FiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Output: &buf})

	logger.Info("should be dropped")
	if buf.Len() != 0 {
		t.Errorf("expected info log to be filtered at warn level, got: %q", buf.String())
	}

	logger.Warn("should appear")
	if buf.Len() == 0 {
		t.Error("expected warn log to be written")
	}
}
