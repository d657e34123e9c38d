package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/user/quotegen/pkg/ports"
)

func TestConsoleLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleWriter(ports.LevelInfo, &buf)

	log.Debug("hidden %d", 1)
	log.Info("Exported %s (%dx%d, %d bytes)", "square", 1080, 1080, 42)
	log.Warn("careful")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("expected debug message to be filtered")
	}
	if !strings.Contains(out, "square") || !strings.Contains(out, "1080x1080") {
		t.Errorf("expected formatted info message, got %q", out)
	}
	if !strings.Contains(out, "careful") {
		t.Errorf("expected warning, got %q", out)
	}
}

func TestConsoleLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleWriter(ports.LevelDebug, &buf).WithComponent("composite")

	log.Debug("Composing %s at %dx%d", "tall", 1080, 1920)

	if got := buf.String(); !strings.HasPrefix(got, "[composite] ") {
		t.Errorf("expected component prefix, got %q", got)
	}
}

func TestConsoleLogger_PreformattedPercent(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleWriter(ports.LevelInfo, &buf)

	log.Info("100% done")

	if got := strings.TrimSpace(buf.String()); got != "100% done" {
		t.Errorf("expected message untouched, got %q", got)
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleWriter(ports.LevelQuiet, &buf)

	log.Error("nothing")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewStructured(ports.LevelInfo, &buf).WithComponent("orchestrator")

	log.Debug("hidden")
	log.Info("Export finished: %d succeeded, %d failed", 2, 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON line: %v", err)
	}
	if entry["component"] != "orchestrator" {
		t.Errorf("expected component field, got %v", entry["component"])
	}
	if entry["level"] != "info" {
		t.Errorf("expected info level, got %v", entry["level"])
	}
	if msg, _ := entry["msg"].(string); !strings.Contains(msg, "2") {
		t.Errorf("unexpected msg %v", entry["msg"])
	}
}
