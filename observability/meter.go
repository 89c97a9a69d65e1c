package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	apperrors "github.com/kbukum/rangekit/errors"
	"github.com/kbukum/rangekit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the reporting tool.
	ServiceName string
	// ServiceVersion is the version of the reporting tool.
	ServiceVersion string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it globally.
// Returns a MeterProvider that should be shut down on exit; Shutdown flushes
// pending metrics.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric names.
const (
	MetricElements          = "rangekit.elements"
	MetricTraversals        = "rangekit.traversals"
	MetricTraversalDuration = "rangekit.traversal.duration"
	MetricErrors            = "rangekit.errors"
)

// Metrics holds the OpenTelemetry instruments for sequence traversals.
type Metrics struct {
	elements   metric.Int64Counter
	traversals metric.Int64Counter
	duration   metric.Float64Histogram
	errors     metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	elements, err := meter.Int64Counter(MetricElements,
		metric.WithDescription("Elements yielded by instrumented sequences"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricElements, err)
	}

	traversals, err := meter.Int64Counter(MetricTraversals,
		metric.WithDescription("Completed traversals of instrumented sequences"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricTraversals, err)
	}

	duration, err := meter.Float64Histogram(MetricTraversalDuration,
		metric.WithDescription("Duration of traversals in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricTraversalDuration, err)
	}

	errorTotal, err := meter.Int64Counter(MetricErrors,
		metric.WithDescription("Traversals that ended with an error, by code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrors, err)
	}

	return &Metrics{
		elements:   elements,
		traversals: traversals,
		duration:   duration,
		errors:     errorTotal,
	}, nil
}

// RecordTraversal records one finished traversal of the sequence called name.
func (m *Metrics) RecordTraversal(ctx context.Context, name string, count int, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	seqAttr := attribute.String(AttrSequence, name)
	m.elements.Add(ctx, int64(count), metric.WithAttributes(seqAttr))
	m.traversals.Add(ctx, 1, metric.WithAttributes(seqAttr, attribute.String(AttrStatus, status)))
	m.duration.Record(ctx, duration.Seconds(), metric.WithAttributes(seqAttr))
	if err != nil {
		m.RecordError(ctx, name, err)
	}
}

// RecordError records a traversal error under its error code.
func (m *Metrics) RecordError(ctx context.Context, name string, err error) {
	code := string(apperrors.CodeOf(err))
	if code == "" {
		code = string(apperrors.ErrCodeInternal)
	}
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrSequence, name),
		attribute.String(AttrErrorCode, code),
	))
}
