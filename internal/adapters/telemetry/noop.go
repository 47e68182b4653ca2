package telemetry

import (
	"context"

	"go.trai.ch/vdex/internal/core/ports"
)

// NoOpTracer is a ports.Tracer that records nothing.
type NoOpTracer struct{}

// NewNoOpTracer creates a tracer whose spans do nothing.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start implements ports.Tracer.
func (t *NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noOpSpan{}
}

type noOpSpan struct{}

func (noOpSpan) End()                     {}
func (noOpSpan) RecordError(error)        {}
func (noOpSpan) SetAttribute(string, any) {}
