package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New("info").Output(&buf)

	log.Info().Msg("relay started")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected valid JSON output, got error: %v, output: %s", err, buf.String())
	}
	if entry["message"] != "relay started" {
		t.Errorf("expected message 'relay started', got %v", entry["message"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected 'time' field in JSON output")
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn").Output(&buf)

	log.Info().Msg("filtered")
	if buf.Len() > 0 {
		t.Error("expected info message to be filtered at warn level")
	}

	log.Warn().Msg("kept")
	if buf.Len() == 0 {
		t.Error("expected warn message to appear at warn level")
	}
}

func TestNew_InvalidLevel_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("nonsense").Output(&buf)

	log.Debug().Msg("debug message")
	if buf.Len() > 0 {
		t.Error("expected debug message to be filtered at default info level")
	}

	log.Info().Msg("info message")
	if buf.Len() == 0 {
		t.Error("expected info message to appear at default info level")
	}
}

func TestFromContext_AttachesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	log := New("info").Output(&buf)

	ctx := WithCorrelationID(WithLogger(context.Background(), log), "req-abc-123")

	ctxLog := FromContext(ctx)
	ctxLog.Info().Msg("request handled")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected valid JSON, got error: %v, output: %s", err, buf.String())
	}
	if entry["correlation_id"] != "req-abc-123" {
		t.Errorf("expected correlation_id 'req-abc-123', got %v", entry["correlation_id"])
	}
}

func TestFromContext_WithoutLogger_ReturnsDefault(t *testing.T) {
	log := FromContext(context.Background())
	// Must not panic and must be usable.
	log.Debug().Msg("noop")
}

func TestNewFromConfig_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relay.log")

	log := NewFromConfig(LoggingConfig{
		Level:     "info",
		Output:    "file",
		FilePath:  path,
		MaxSizeMB: 10,
		MaxFiles:  3,
	})

	log.Info().Msg("to file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !bytes.Contains(data, []byte("to file")) {
		t.Errorf("expected log file to contain message, got %q", data)
	}
}
