package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("cricket-scorecard/internal/usecase")

// startUsecaseSpan nests a service span under the caller's span, and
// stays a no-op when the request was not traced to begin with.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return tracer.Start(ctx, name)
}
