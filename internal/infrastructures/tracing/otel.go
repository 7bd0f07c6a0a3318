package tracing

import (
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
)

type Options struct {
	Enabled     bool
	PrettyPrint bool
	Writer      io.Writer
}

// InitTracer installs the global tracer provider. With tracing disabled the
// provider has no exporter and spans are dropped.
func InitTracer(serviceName string, opts Options) (*tracesdk.TracerProvider, error) {
	providerOpts := []tracesdk.TracerProviderOption{
		tracesdk.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
	}

	if opts.Enabled {
		writer := opts.Writer
		if writer == nil {
			writer = os.Stdout
		}
		exporterOpts := []stdouttrace.Option{stdouttrace.WithWriter(writer)}
		if opts.PrettyPrint {
			exporterOpts = append(exporterOpts, stdouttrace.WithPrettyPrint())
		}

		exp, err := stdouttrace.New(exporterOpts...)
		if err != nil {
			return nil, fmt.Errorf("create trace exporter: %w", err)
		}
		providerOpts = append(providerOpts, tracesdk.WithBatcher(exp))
	}

	tp := tracesdk.NewTracerProvider(providerOpts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}
