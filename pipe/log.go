package pipe

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kbukum/rangekit/logger"
	"github.com/kbukum/rangekit/ranges"
)

// Log writes every value passing through to l at debug level, tagged with
// label, and a summary line when the traversal ends. Nothing is formatted
// when debug logging is disabled.
func Log[T any](l *logger.Logger, label string) Adaptor[T, T] {
	return Observe(ranges.Hooks[T]{
		OnElement: func(_ context.Context, v T) {
			if !l.Enabled(zerolog.DebugLevel) {
				return
			}
			l.Debug("element", logger.Fields(logger.FieldLabel, label, logger.FieldValue, v))
		},
		OnEnd: func(_ context.Context, count int, err error) {
			fields := logger.Fields(logger.FieldLabel, label, logger.FieldCount, count)
			if err != nil {
				l.WithError(err).Warn("traversal failed", fields)
				return
			}
			l.Debug("traversal done", fields)
		},
	})
}
