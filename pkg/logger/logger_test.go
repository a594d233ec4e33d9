package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	return out
}

func TestNewWithWriter_SetsService(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("storefront", "info", &buf)
	l.Info("hello")

	out := decodeLine(t, &buf)
	if got := out["service"]; got != "storefront" {
		t.Errorf("service = %v, want %q", got, "storefront")
	}
}

func TestNewWithWriter_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("storefront", "warn", &buf)
	l.Info("dropped")

	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWithContext_CorrelationID(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("test", "info", &buf)

	ctx := WithCorrelationID(context.Background(), "req-123")
	WithContext(ctx, l).Info("hello")

	out := decodeLine(t, &buf)
	if got := out["correlation_id"]; got != "req-123" {
		t.Errorf("correlation_id = %v, want %q", got, "req-123")
	}
}

func TestWithContext_DeviceID(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("test", "info", &buf)

	ctx := WithDeviceID(context.Background(), "device-789")
	WithContext(ctx, l).Info("with device")

	out := decodeLine(t, &buf)
	if got := out["device_id"]; got != "device-789" {
		t.Errorf("device_id = %v, want %q", got, "device-789")
	}
}

func TestWithContext_NoSpan(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("test", "info", &buf)

	WithContext(context.Background(), l).Info("no span")

	out := decodeLine(t, &buf)
	if _, ok := out["trace_id"]; ok {
		t.Error("trace_id should not be present when no span in context")
	}
	if _, ok := out["device_id"]; ok {
		t.Error("device_id should not be present when not in context")
	}
}

func TestWithContext_WithValidSpan(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("test", "info", &buf)

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	WithContext(ctx, l).Info("with span")

	out := decodeLine(t, &buf)
	if got := out["trace_id"]; got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace_id = %v", got)
	}
	if got := out["span_id"]; got != "00f067aa0ba902b7" {
		t.Errorf("span_id = %v", got)
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("test", "info", &buf)

	if got := FromContext(NewContext(context.Background(), l)); got != l {
		t.Error("FromContext should return the logger stored via NewContext")
	}
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext should fall back to slog.Default()")
	}
}
