package httpapi

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("cricket-scorecard/internal/interfaces/httpapi")

// startSpan opens a handler span under the otelhttp server span. When
// the tracing filter skipped the request there is no valid parent, and
// no root span is created for it either.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return tracer.Start(ctx, name)
}
