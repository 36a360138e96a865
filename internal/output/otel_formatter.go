package output

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mrzor/gesture-tracer/internal/attributes"
	"github.com/mrzor/gesture-tracer/internal/gesture"
)

// OTELFormatter records one span per gesture. The span covers the contact
// time: it starts when the finger went down and ends at the lift.
type OTELFormatter struct {
	ctx       context.Context
	tracer    trace.Tracer
	evaluator *attributes.Evaluator
	now       func() time.Time
}

// NewOTELFormatter creates a formatter. Spans parent under whatever span is
// carried by ctx, typically the run-level root span. A nil evaluator means
// no custom attributes.
func NewOTELFormatter(ctx context.Context, tracer trace.Tracer, evaluator *attributes.Evaluator) *OTELFormatter {
	return &OTELFormatter{
		ctx:       ctx,
		tracer:    tracer,
		evaluator: evaluator,
		now:       time.Now,
	}
}

// HandleGesture emits the gesture span.
func (f *OTELFormatter) HandleGesture(g *gesture.Gesture) error {
	endTime := f.now()
	startTime := endTime.Add(-g.Duration)

	name := "gesture." + strings.ToLower(g.Type.String())
	_, span := f.tracer.Start(f.ctx, name,
		trace.WithTimestamp(startTime),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	attrs := []attribute.KeyValue{
		attribute.String("gesture.type", g.Type.String()),
		attribute.Int("gesture.x", g.X),
		attribute.Int("gesture.y", g.Y),
		attribute.Float64("gesture.duration_seconds", g.Duration.Seconds()),
	}
	if g.IsSwipe() {
		attrs = append(attrs,
			attribute.Int("gesture.start_x", g.StartX),
			attribute.Int("gesture.start_y", g.StartY),
		)
	}
	span.SetAttributes(attrs...)

	if f.evaluator != nil {
		span.SetAttributes(f.evaluator.Evaluate(g)...)
	}

	span.SetStatus(codes.Ok, "")
	span.End(trace.WithTimestamp(endTime))
	return nil
}
