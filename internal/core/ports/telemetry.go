package ports

import "context"

// SpanConfig carries optional span configuration.
type SpanConfig struct {
	Attributes map[string]any
}

// SpanOption configures a span at start time.
type SpanOption func(*SpanConfig)

// WithAttribute attaches a key/value attribute to the span at start time.
func WithAttribute(key string, value any) SpanOption {
	return func(cfg *SpanConfig) {
		if cfg.Attributes == nil {
			cfg.Attributes = make(map[string]any)
		}
		cfg.Attributes[key] = value
	}
}

// Span is a unit of traced work.
type Span interface {
	End()
	RecordError(err error)
	SetAttribute(key string, value any)
}

// Tracer creates spans around core operations.
//
//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Tracer interface {
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}
