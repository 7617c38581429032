package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
)

func TestValidateAndExtractRequestID(t *testing.T) {
	valid := uuid.NewString()

	tests := []struct {
		name      string
		input     string
		wantSame  bool
		wantValid bool
	}{
		{name: "valid uuid is kept", input: valid, wantSame: true, wantValid: true},
		{name: "empty generates new id", input: "", wantSame: false, wantValid: true},
		{name: "garbage generates new id", input: "not-a-uuid", wantSame: false, wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateAndExtractRequestID(tt.input)
			if tt.wantSame && got != tt.input {
				t.Errorf("expected %q to be kept, got %q", tt.input, got)
			}
			if !tt.wantSame && got == tt.input {
				t.Errorf("expected a new id, got %q", got)
			}
			if _, err := uuid.Parse(got); (err == nil) != tt.wantValid {
				t.Errorf("uuid.Parse(%q) error = %v", got, err)
			}
		})
	}
}

func TestLoggerAddsContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{
		ServiceInfo:   ServiceInfo{Name: "snapshot-builder", Version: "test"},
		Environment:   EnvDev,
		Level:         slog.LevelDebug,
		DefaultModule: Module("snapshot"),
		Writer:        &buf,
	})

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithModule(ctx, Module("transmit"))
	logger.InfoContext(ctx, "plan sent", slog.Int("entry_count", 3))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("failed to decode log line: %v", err)
	}

	want := map[string]any{
		"service":     "snapshot-builder",
		"version":     "test",
		"env":         "dev",
		"request_id":  "req-1",
		"module":      "transmit",
		"entry_count": float64(3),
	}
	for k, v := range want {
		if line[k] != v {
			t.Errorf("%s = %v, want %v", k, line[k], v)
		}
	}
}

func TestLoggerUsesDefaultModule(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{
		ServiceInfo:   ServiceInfo{Name: "snapshot-builder"},
		DefaultModule: Module("snapshot"),
		Writer:        &buf,
	})

	logger.InfoContext(context.Background(), "hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("failed to decode log line: %v", err)
	}
	if line["module"] != "snapshot" {
		t.Errorf("module = %v, want snapshot", line["module"])
	}
	if _, ok := line["request_id"]; ok {
		t.Errorf("unexpected request_id in %v", line)
	}
}
