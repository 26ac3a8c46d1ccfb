package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestLoggerFromContext_Nil(t *testing.T) {
	l := LoggerFromContext(context.TODO())
	if l == nil {
		t.Fatal("expected fallback to global logger")
	}
}

func TestLoggerFromContext_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	customLogger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := WithLogger(context.Background(), customLogger)

	l := LoggerFromContext(ctx)
	if l != customLogger {
		t.Fatal("expected custom logger from context")
	}
}

func TestTraceIDFromContext_Nil(t *testing.T) {
	id := TraceIDFromContext(context.TODO())
	if id != nil {
		t.Fatal("expected nil for nil context")
	}
}

func TestTraceIDFromContext_WithTraceID(t *testing.T) {
	ctx := contextWithTraceID(context.Background(), "trace-abc")
	id := TraceIDFromContext(ctx)
	if id == nil {
		t.Fatal("expected non-nil trace ID")
	}
	if *id != "trace-abc" {
		t.Fatalf("expected 'trace-abc', got %q", *id)
	}
}

func TestTraceIDFromContext_EmptyTraceID(t *testing.T) {
	ctx := contextWithTraceID(context.Background(), "")
	id := TraceIDFromContext(ctx)
	if id != nil {
		t.Fatal("expected nil for empty trace ID")
	}
}

func TestLogInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)

	LogInfo(ctx, "test info", slog.String("key", "val"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if entry["msg"] != "test info" {
		t.Fatalf("expected message 'test info', got %q", entry["msg"])
	}
	if entry["key"] != "val" {
		t.Fatalf("expected key='val', got %q", entry["key"])
	}
}

func TestLogWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := WithLogger(context.Background(), logger)

	LogWarn(ctx, "test warn")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if entry["msg"] != "test warn" {
		t.Fatalf("expected message 'test warn', got %q", entry["msg"])
	}
}

func TestLogError_WithError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)

	LogError(ctx, "test error", errForTest("boom"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if entry["msg"] != "test error" {
		t.Fatalf("expected message 'test error', got %q", entry["msg"])
	}
	if entry["error"] != "boom" {
		t.Fatalf("expected error 'boom', got %v", entry["error"])
	}
}

func TestLogError_NilError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)

	LogError(ctx, "no error", nil)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if _, ok := entry["error"]; ok {
		t.Fatal("expected no error attribute when err is nil")
	}
}

func TestContextWithTraceID_NilContext(t *testing.T) {
	ctx := contextWithTraceID(context.TODO(), "test-id")
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	id := TraceIDFromContext(ctx)
	if id == nil || *id != "test-id" {
		t.Fatalf("expected 'test-id', got %v", id)
	}
}

func TestLoggerFromContext_NilContext(t *testing.T) {
	l := LoggerFromContext(nil) //nolint:staticcheck // intentional nil to test nil-safety
	if l == nil {
		t.Fatal("expected fallback to global logger for nil context")
	}
}

func TestTraceIDFromContext_NilContext(t *testing.T) {
	id := TraceIDFromContext(nil) //nolint:staticcheck // intentional nil to test nil-safety
	if id != nil {
		t.Fatal("expected nil for nil context")
	}
}

func TestWithRequest_TraceHeader(t *testing.T) {
	header := "Root=1-5759e988-bd862e3fe1be46a994272793;Parent=53995c3f42cd8ad8;Sampled=1"
	ctx := WithRequest(context.Background(), header, "req-1")

	id := TraceIDFromContext(ctx)
	if id == nil || *id != "1-5759e988-bd862e3fe1be46a994272793" {
		t.Fatalf("expected X-Ray root as trace ID, got %v", id)
	}
	if LoggerFromContext(ctx) == Logger() {
		t.Fatal("expected request-scoped logger")
	}
}

func TestWithRequest_FallsBackToRequestID(t *testing.T) {
	ctx := WithRequest(context.Background(), "", "req-2")

	id := TraceIDFromContext(ctx)
	if id == nil || *id != "req-2" {
		t.Fatalf("expected request ID as trace ID, got %v", id)
	}
}

func TestWithRequest_NoCorrelation(t *testing.T) {
	ctx := WithRequest(context.Background(), "garbage", "")

	if id := TraceIDFromContext(ctx); id != nil {
		t.Fatalf("expected no trace ID, got %q", *id)
	}
	if LoggerFromContext(ctx) != Logger() {
		t.Fatal("expected base logger when there is nothing to annotate")
	}
}

type errForTest string

func (e errForTest) Error() string { return string(e) }
