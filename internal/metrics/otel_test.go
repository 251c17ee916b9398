package metrics

import (
	"context"
	"testing"
	"time"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	ctx := context.Background()
	rec, handler, shutdown, err := Setup(ctx, TelemetryConfig{
		Enabled:     true,
		ServiceName: "fbcw-data-service",
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler == nil {
		t.Fatalf("expected handler when enabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			t.Fatalf("shutdown: %v", err)
		}
	}()

	// Exercise otel-backed recorders to ensure no panic.
	rec.RecordHTTPRequest(ctx, "GET", "/health", 200, time.Millisecond)
	rec.RecordProviderAttempt(ctx, "yahoo", time.Millisecond, nil)
	rec.PipelineRun(ctx, "update", time.Second, nil)
	rec.SeasonCollected(ctx, 2025)
}
