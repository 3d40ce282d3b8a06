package app

import (
	"context"
	"errors"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/sumbench/internal/errors"
)

// startTracing returns a tracer provider that writes every ended span to
// path as indented JSON, and the function that flushes it and closes the
// file. An empty path yields a nil provider, which leaves the sweep on the
// global one.
func startTracing(path string) (trace.TracerProvider, func(context.Context) error, error) {
	if path == "" {
		return nil, func(context.Context) error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, apperrors.WrapError(err, "creating trace file")
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(f), stdouttrace.WithPrettyPrint())
	if err != nil {
		f.Close()
		return nil, nil, apperrors.WrapError(err, "creating trace exporter")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "sumbench"),
			attribute.String("service.version", Version),
		)),
	)
	shutdown := func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), f.Close())
	}
	return tp, shutdown, nil
}
