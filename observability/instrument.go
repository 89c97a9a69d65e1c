package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/kbukum/rangekit/errors"
	"github.com/kbukum/rangekit/ranges"
)

type traversalKey struct{}

type traversal struct {
	start time.Time
	span  trace.Span
}

// Instrument wraps s so that every traversal runs inside a span called name
// and is recorded on m. A nil m records spans only. Values, category and size
// of s are unchanged, except that random access is not offered.
func Instrument[T any](s *ranges.Sequence[T], name string, m *Metrics) *ranges.Sequence[T] {
	return ranges.Observe(s, ranges.Hooks[T]{
		OnStart: func(ctx context.Context) context.Context {
			ctx, span := StartSpan(ctx, name,
				trace.WithAttributes(attribute.String(AttrSequence, name)),
			)
			return context.WithValue(ctx, traversalKey{}, &traversal{start: time.Now(), span: span})
		},
		OnEnd: func(ctx context.Context, count int, err error) {
			tr, ok := ctx.Value(traversalKey{}).(*traversal)
			if !ok {
				return
			}
			tr.span.SetAttributes(attribute.Int(AttrCount, count))
			if err != nil {
				tr.span.RecordError(err)
				tr.span.SetStatus(codes.Error, string(apperrors.CodeOf(err)))
			}
			tr.span.End()
			if m != nil {
				m.RecordTraversal(ctx, name, count, err, time.Since(tr.start))
			}
		},
	})
}
