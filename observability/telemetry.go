package observability

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/kbukum/seqkit/errors"
)

const instrumentationName = "github.com/kbukum/seqkit"

// Metric and attribute names.
const (
	MetricCommands        = "seqkit.commands"
	MetricCommandDuration = "seqkit.command.duration"
	MetricElements        = "seqkit.elements.pulled"

	AttrCommand   = "seqkit.command"
	AttrRunID     = "seqkit.run_id"
	AttrStatus    = "status"
	AttrErrorCode = "error.code"
)

// Telemetry traces commands and counts the sequence elements they pull.
type Telemetry struct {
	tracer   trace.Tracer
	commands metric.Int64Counter
	duration metric.Float64Histogram
	elements metric.Int64Counter
	shutdown []func(context.Context) error
}

// New builds Telemetry from cfg. A disabled config yields no-op providers;
// an enabled one exports over OTLP HTTP and installs the providers as the
// otel globals. Call Shutdown before exit to flush.
func New(ctx context.Context, cfg *Config, res Resource) (*Telemetry, error) {
	if !cfg.Enabled {
		return NewWithProviders(tracenoop.NewTracerProvider(), metricnoop.NewMeterProvider())
	}

	traceOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	metricOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		traceOpts = append(traceOpts, otlptracehttp.WithInsecure())
		metricOpts = append(metricOpts, otlpmetrichttp.WithInsecure())
	}

	traceExp, err := otlptracehttp.New(ctx, traceOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating trace exporter: %w", err)
	}
	metricExp, err := otlpmetrichttp.New(ctx, metricOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	r, err := newResource(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExp),
		sdktrace.WithResource(r),
		sdktrace.WithSampler(sampler(cfg.SampleRate)),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
		sdkmetric.WithResource(r),
	)
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	t, err := NewWithProviders(tp, mp)
	if err != nil {
		return nil, err
	}
	t.shutdown = []func(context.Context) error{tp.Shutdown, mp.Shutdown}
	return t, nil
}

// NewWithProviders builds Telemetry on caller-owned providers. Shutdown
// leaves them running.
func NewWithProviders(tp trace.TracerProvider, mp metric.MeterProvider) (*Telemetry, error) {
	meter := mp.Meter(instrumentationName)

	commands, err := meter.Int64Counter(MetricCommands,
		metric.WithDescription("Commands run, by command and status"))
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricCommands, err)
	}
	duration, err := meter.Float64Histogram(MetricCommandDuration,
		metric.WithDescription("Command wall time"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricCommandDuration, err)
	}
	elements, err := meter.Int64Counter(MetricElements,
		metric.WithDescription("Sequence elements pulled by a command"))
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricElements, err)
	}

	return &Telemetry{
		tracer:   tp.Tracer(instrumentationName),
		commands: commands,
		duration: duration,
		elements: elements,
	}, nil
}

// StartCommand opens the span of one command run.
func (t *Telemetry) StartCommand(ctx context.Context, command, runID string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "seqkit "+command, trace.WithAttributes(
		attribute.String(AttrCommand, command),
		attribute.String(AttrRunID, runID),
	))
}

// EndCommand closes span and records the run. A non-nil err marks the span
// failed and tags it with the AppError code when there is one.
func (t *Telemetry) EndCommand(ctx context.Context, span trace.Span, command string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if code := errors.CodeOf(err); code != "" {
			span.SetAttributes(attribute.String(AttrErrorCode, string(code)))
		}
	}
	span.SetAttributes(attribute.String(AttrStatus, status))
	span.End()

	t.commands.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrCommand, command),
		attribute.String(AttrStatus, status),
	))
	t.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String(AttrCommand, command),
	))
}

// CountElement records one pulled element for command.
func (t *Telemetry) CountElement(ctx context.Context, command string) {
	t.elements.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrCommand, command)))
}

// Shutdown flushes and stops providers created by New.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range t.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1.0:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

func newResource(ctx context.Context, res Resource) (*resource.Resource, error) {
	return resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(res.ServiceName),
		semconv.ServiceVersion(res.ServiceVersion),
		attribute.String("environment", res.Environment),
	))
}
