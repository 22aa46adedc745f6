/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tracing

import (
	"context"
	"fmt"
	"os"

	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"
)

var logger = log.New("tracing")

// SpanExporterType specifies the type of span exporter used by tracer provider.
type SpanExporterType = string

const (
	None   SpanExporterType = ""
	Jaeger SpanExporterType = "JAEGER"
	Stdout SpanExporterType = "STDOUT"
)

const (
	JaegerAgentEndpointEnvKey     = "OTEL_EXPORTER_JAEGER_AGENT_HOST"
	JaegerCollectorEndpointEnvKey = "OTEL_EXPORTER_JAEGER_ENDPOINT"
	tracerName                    = "https://github.com/trustbloc/vctrust"
)

// IsExporterSupported reports whether Initialize accepts exporter. None disables tracing.
func IsExporterSupported(exporter SpanExporterType) bool {
	switch exporter {
	case None, Jaeger, Stdout:
		return true
	default:
		return false
	}
}

type options struct {
	serviceVersion string
	sampleRatio    float64
}

// Opt configures the tracer provider.
type Opt func(o *options)

// WithServiceVersion records the build version on every span resource.
func WithServiceVersion(version string) Opt {
	return func(o *options) {
		o.serviceVersion = version
	}
}

// WithSampleRatio samples the given fraction of root spans. Child spans follow their parent.
// Ratios outside (0, 1) sample everything.
func WithSampleRatio(ratio float64) Opt {
	return func(o *options) {
		o.sampleRatio = ratio
	}
}

// Initialize creates and registers globally a new tracer provider with specified span exporter.
// Return values are:
// - func() - Should be called to gracefully shut down the tracer provider before the process terminates.
// - trace.Tracer - Used to start new spans.
// - error - An error if the tracer provider could not be initialized or nil if successful.
func Initialize(exporter SpanExporterType, serviceName string, opts ...Opt) (func(), trace.Tracer, error) {
	if exporter == None {
		return func() {}, trace.NewNoopTracerProvider().Tracer(""), nil
	}

	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	spanExporter, err := newSpanExporter(exporter)
	if err != nil {
		return nil, nil, err
	}

	attrs := []attribute.KeyValue{
		semconv.ServiceNameKey.String(serviceName),
		semconv.ProcessPIDKey.Int(os.Getpid()),
	}

	if o.serviceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersionKey.String(o.serviceVersion))
	}

	sampler := tracesdk.AlwaysSample()
	if o.sampleRatio > 0 && o.sampleRatio < 1 {
		sampler = tracesdk.ParentBased(tracesdk.TraceIDRatioBased(o.sampleRatio))
	}

	tracerProvider := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(spanExporter),
		tracesdk.WithSampler(sampler),
		tracesdk.WithResource(resource.NewWithAttributes(semconv.SchemaURL, attrs...)),
	)

	// Register the TracerProvider as the global so the mongodb and redis instrumentation use it.
	otel.SetTracerProvider(tracerProvider)

	// Propagate trace context via traceparent and tracestate headers (https://www.w3.org/TR/trace-context/).
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func() {
		if shutdownErr := tracerProvider.Shutdown(context.Background()); shutdownErr != nil {
			logger.Warn("Error shutting down tracer provider", log.WithError(shutdownErr))
		}
	}, tracerProvider.Tracer(tracerName), nil
}

func newSpanExporter(exporter SpanExporterType) (tracesdk.SpanExporter, error) {
	switch exporter {
	case Jaeger:
		var endpoint jaeger.EndpointOption

		switch {
		case os.Getenv(JaegerAgentEndpointEnvKey) != "":
			endpoint = jaeger.WithAgentEndpoint()
		case os.Getenv(JaegerCollectorEndpointEnvKey) != "":
			endpoint = jaeger.WithCollectorEndpoint()
		default:
			return nil, fmt.Errorf("neither agent nor collector endpoint is provided")
		}

		e, err := jaeger.New(endpoint)
		if err != nil {
			return nil, fmt.Errorf("create jaeger exporter: %w", err)
		}

		return e, nil
	case Stdout:
		e, err := stdouttrace.New(stdouttrace.WithoutTimestamps())
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}

		return e, nil
	default:
		return nil, fmt.Errorf("unsupported exporter type: %s", exporter)
	}
}
