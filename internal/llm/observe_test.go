package llm

import (
	"context"
	"encoding/json"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestObservedProvider_LogsSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithObservability(mock, zap.New(core))

	ctx := WithPurpose(context.Background(), "problem-gen")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.FilterMessage("llm request ok").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 success log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["purpose"] != "problem-gen" {
		t.Errorf("expected purpose problem-gen, got %v", fields["purpose"])
	}
}

func TestObservedProvider_LogsFailureWithErrorKind(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	mock := NewMockProvider() // empty queue -> ErrProviderUnavailable
	p := WithObservability(mock, zap.New(core))

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	entries := logs.FilterMessage("llm request failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 failure log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["error_kind"] != "unavailable" {
		t.Errorf("expected error_kind unavailable, got %v", fields["error_kind"])
	}
}

func TestObservedProvider_NilLoggerIsSafe(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithObservability(mock, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("expected ModelID to pass through, got %q", p.ModelID())
	}
}
