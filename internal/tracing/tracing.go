// Package tracing wires OpenTelemetry spans for engine commands to a
// stdout-style exporter.
package tracing

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "warehouse"

// Provider owns the tracer provider and the file it writes to, if any.
type Provider struct {
	tp     *sdktrace.TracerProvider
	closer io.Closer
}

// NewProvider exports spans as JSON to w.
func NewProvider(ctx context.Context, w io.Writer, version string) (*Provider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", version),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	)
	return &Provider{tp: tp}, nil
}

// NewFileProvider exports spans to path, truncating it.
func NewFileProvider(ctx context.Context, path, version string) (*Provider, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	p, err := NewProvider(ctx, f, version)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	p.closer = f
	return p, nil
}

// Install makes p the global tracer provider.
func (p *Provider) Install() {
	otel.SetTracerProvider(p.tp)
}

func (p *Provider) Tracer(name string) trace.Tracer {
	return p.tp.Tracer(name)
}

// Shutdown flushes pending spans and closes the output file.
func (p *Provider) Shutdown(ctx context.Context) error {
	err := p.tp.Shutdown(ctx)
	if p.closer != nil {
		if cerr := p.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
