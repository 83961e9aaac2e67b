package observability

import (
	"context"
	"errors"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("whisper-stt")
	if cfg.ServiceName != "whisper-stt" {
		t.Errorf("ServiceName = %q", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("SampleRate = %v", cfg.SampleRate)
	}
}

func TestStartSpan_RecordsAttributesAndErrors(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer(defaultTracerName).Start(context.Background(), "stt.transcribe")
	SetSpanAttribute(ctx, AttrProviderName, "whisperapi")
	SetSpanAttribute(ctx, AttrAudioBytes, 1024)
	SetSpanError(ctx, errors.New("upstream failed"))
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	got := spans[0]
	if got.Name != "stt.transcribe" {
		t.Errorf("span name = %q", got.Name)
	}

	foundProvider := false
	for _, attr := range got.Attributes {
		if string(attr.Key) == AttrProviderName && attr.Value.AsString() == "whisperapi" {
			foundProvider = true
		}
	}
	if !foundProvider {
		t.Error("provider attribute not recorded")
	}
	if len(got.Events) == 0 {
		t.Error("error event not recorded")
	}
}

func TestSetSpanAttribute_NoSpanIsNoop(t *testing.T) {
	// Must not panic without an active span.
	SetSpanAttribute(context.Background(), AttrStatus, "ok")
	SetSpanError(context.Background(), errors.New("ignored"))
}

func TestNewMetrics_RecordsWithoutPanic(t *testing.T) {
	mp := sdkmetric.NewMeterProvider()
	defer func() { _ = mp.Shutdown(context.Background()) }()

	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics error: %v", err)
	}

	ctx := context.Background()
	m.RecordOperation(ctx, "whisperapi", "transcribe", "ok", 0)
	m.RecordError(ctx, "network", "whisperapi")
}
