// Package trace sets up OpenTelemetry tracing for layout edits. Spans go to
// an OTLP/HTTP endpoint when one is configured; otherwise a no-op tracer is
// used and tracing costs nothing.
package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "dockyard/layout"

// Config selects the exporter.
type Config struct {
	Endpoint    string // host:port; empty disables export
	ServiceName string
	Insecure    bool
}

// Provider owns the tracer provider, if any.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	enabled  bool
}

// New creates an OTLP exporter when cfg.Endpoint is set and a no-op provider
// otherwise.
func New(ctx context.Context, cfg Config) (*Provider, error) {
	if cfg.Endpoint == "" {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "dockyard"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return NewWithProvider(provider), nil
}

// NewWithProvider wraps an existing SDK provider. Tests use it with a span
// recorder.
func NewWithProvider(p *sdktrace.TracerProvider) *Provider {
	return &Provider{
		provider: p,
		tracer:   p.Tracer(instrumentationName),
		enabled:  true,
	}
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.enabled
}

// Tracer returns the tracer for layout spans.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return p.tracer
}

// Start opens a span with attributes mapped into the dockyard.* namespace.
func (p *Provider) Start(ctx context.Context, name string, attrs map[string]string) (context.Context, oteltrace.Span) {
	return p.Tracer().Start(ctx, name, oteltrace.WithAttributes(mapAttributes(attrs)...))
}

// End records err on the span, if any, and ends it.
func End(span oteltrace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// mapAttributes maps known attributes to dockyard.* keys.
func mapAttributes(attrs map[string]string) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		var key string
		switch k {
		case "panel":
			key = "dockyard.panel.id"
		case "source":
			key = "dockyard.container.source"
		case "target":
			key = "dockyard.container.target"
		case "split":
			key = "dockyard.split.id"
		case "zone":
			key = "dockyard.drop.zone"
		case "outcome":
			key = "dockyard.outcome"
		default:
			key = "dockyard." + k
		}
		out = append(out, attribute.String(key, v))
	}
	return out
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
