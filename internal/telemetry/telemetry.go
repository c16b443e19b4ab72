// Package telemetry traces game events over OTLP/HTTP when a collector
// endpoint is configured.
package telemetry

import (
	"context"
	"errors"
	"os"
	"runtime/debug"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const serviceName = "wordexplorer"

// ErrNoEndpoint is returned by Setup when no OTLP endpoint is configured.
var ErrNoEndpoint = errors.New("no OTLP endpoint configured")

// endpointVars are checked in order; the exporter reads the same variables.
var endpointVars = []string{
	"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT",
	"OTEL_EXPORTER_OTLP_ENDPOINT",
}

// Provider owns the trace pipeline for a run.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// Setup starts an OTLP/HTTP trace exporter configured from the standard
// OTEL_EXPORTER_OTLP_* environment variables. It returns ErrNoEndpoint
// without creating anything when neither endpoint variable is set.
func Setup(ctx context.Context) (*Provider, error) {
	if Endpoint() == "" {
		return nil, ErrNoEndpoint
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", Version()),
		),
		resource.WithHost(),
		resource.WithOS(),
		resource.WithProcessRuntimeVersion(),
	)
	if err != nil {
		return nil, err
	}

	return &Provider{tp: sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)}, nil
}

// Tracer returns a named tracer for a game component.
func (p *Provider) Tracer(name string) trace.Tracer {
	return p.tp.Tracer(serviceName + "/" + name)
}

// Shutdown flushes buffered spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

// Endpoint returns the configured OTLP endpoint, or "" if there is none.
func Endpoint() string {
	for _, v := range endpointVars {
		if e := os.Getenv(v); e != "" {
			return e
		}
	}
	return ""
}

// Version returns the main module version from the build info, or "dev"
// for local builds.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "dev"
	}
	return info.Main.Version
}
