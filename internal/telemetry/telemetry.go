// Package telemetry sets up OpenTelemetry tracing for the wfc binaries.
//
// Exporter "stdout" prints every finished span as JSON; "none" (or empty)
// installs a no-op provider so instrumented code never checks for nil.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope of every wfc span.
const TracerName = "github.com/katalvlaran/wfc"

var (
	// ErrUnknownExporter indicates an unsupported exporter name.
	ErrUnknownExporter = errors.New("telemetry: unknown trace exporter")
)

// Config selects the exporter.
type Config struct {
	// Exporter is "none", "" or "stdout".
	Exporter string
	// ServiceVersion is attached to the resource.
	ServiceVersion string
	// Output of the stdout exporter; defaults to os.Stdout.
	Output io.Writer
}

// Shutdown flushes and stops the provider.
type Shutdown func(context.Context) error

// Setup returns a tracer provider for cfg and its shutdown function. The
// provider is returned rather than installed globally.
func Setup(cfg Config) (trace.TracerProvider, Shutdown, error) {
	switch cfg.Exporter {
	case "", "none":
		return noop.NewTracerProvider(), func(context.Context) error { return nil }, nil
	case "stdout":
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownExporter, cfg.Exporter)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	exp, err := stdouttrace.New(stdouttrace.WithWriter(out))
	if err != nil {
		return nil, nil, fmt.Errorf("telemetry: stdout exporter: %w", err)
	}

	res := resource.NewWithAttributes("",
		attribute.String("service.name", "wfc"),
		attribute.String("service.version", cfg.ServiceVersion),
	)
	// Spans are exported as they end.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithResource(res),
	)

	return tp, tp.Shutdown, nil
}

// Tracer returns the wfc tracer of tp.
func Tracer(tp trace.TracerProvider) trace.Tracer {
	return tp.Tracer(TracerName)
}
