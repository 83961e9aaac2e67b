// Package observability provides OpenTelemetry tracing and metrics helpers
// for the whisper-stt bridge.
//
// Hosts that already run an OpenTelemetry SDK only need the span and metric
// helpers; InitTracer and InitMeter bootstrap OTLP/HTTP export for hosts
// that do not.
package observability
