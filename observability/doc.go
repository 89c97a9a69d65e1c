// Package observability exports sequence traversals to OpenTelemetry.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("seqctl"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("seqctl"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("seqctl"))
//
// Instrumenting a sequence turns every traversal into a span and records
// element, traversal, duration and error metrics:
//
//	s = observability.Instrument(s, "input", metrics)
package observability
