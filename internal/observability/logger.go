package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger is the process logger; a no-op until InitLogger runs.
var Logger = zap.NewNop()

// InitLogger builds the process logger: JSON production output, or the
// human-readable development encoder when development is set.
func InitLogger(development bool) error {
	var err error

	if development {
		Logger, err = zap.NewDevelopment()
	} else {
		Logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns Logger enriched with the active span's trace_id and
// span_id, or Logger itself when ctx carries no valid span.
//
// ctx is also attached as a zap.Any field: the otelzap core recognises a
// context.Context field and emits the OTLP record with it, so exported logs
// carry native TraceID/SpanID and Loki can link them to Tempo. The string
// fields keep stdout JSON greppable.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
