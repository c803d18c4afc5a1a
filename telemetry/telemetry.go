// Package telemetry carries the logging, metrics and tracing hooks of the
// generation pipeline. The Clue implementations delegate to goa.design/clue
// and OpenTelemetry; the Noop implementations discard everything.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type (
	// Logger captures the structured logging of the generator.
	Logger interface {
		Debug(ctx context.Context, msg string, keyvals ...any)
		Info(ctx context.Context, msg string, keyvals ...any)
		Warn(ctx context.Context, msg string, keyvals ...any)
		Error(ctx context.Context, msg string, keyvals ...any)
	}

	// Metrics exposes the counters and timers recorded per generation run.
	Metrics interface {
		IncCounter(name string, value float64, tags ...string)
		RecordTimer(name string, duration time.Duration, tags ...string)
	}

	// Tracer abstracts span creation so the pipeline remains agnostic of the
	// OpenTelemetry provider.
	Tracer interface {
		Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, Span)
	}

	// Span is an in-flight tracing span.
	Span interface {
		End(opts ...trace.SpanEndOption)
		AddEvent(name string, attrs ...any)
		SetStatus(code codes.Code, description string)
		RecordError(err error, opts ...trace.EventOption)
	}

	// Telemetry bundles the hooks handed to the pipeline.
	Telemetry struct {
		Logger  Logger
		Metrics Metrics
		Tracer  Tracer
	}
)

// Metric names recorded by the pipeline.
const (
	// MetricGoals counts the goals generated, tagged with the module.
	MetricGoals = "goa_builder.goals"
	// MetricDiagnostics counts the goals left out, tagged with the module.
	MetricDiagnostics = "goa_builder.diagnostics"
	// MetricDuration times a generation run.
	MetricDuration = "goa_builder.duration"
)

// NewClue returns the telemetry delegating to Clue and OpenTelemetry.
func NewClue() *Telemetry {
	return &Telemetry{Logger: NewClueLogger(), Metrics: NewClueMetrics(), Tracer: NewClueTracer()}
}

// NewNoop returns telemetry discarding everything.
func NewNoop() *Telemetry {
	return &Telemetry{Logger: NewNoopLogger(), Metrics: NewNoopMetrics(), Tracer: NewNoopTracer()}
}

// OrNoop returns t with nil hooks replaced by no-op ones. A nil t yields
// NewNoop().
func (t *Telemetry) OrNoop() *Telemetry {
	if t == nil {
		return NewNoop()
	}
	out := *t
	if out.Logger == nil {
		out.Logger = NewNoopLogger()
	}
	if out.Metrics == nil {
		out.Metrics = NewNoopMetrics()
	}
	if out.Tracer == nil {
		out.Tracer = NewNoopTracer()
	}
	return &out
}
