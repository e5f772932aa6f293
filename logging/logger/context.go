package logger

import "context"

type contextKey string

const traceIDKey contextKey = "trace_id"

// traceKey is the log field name for the trace ID.
const traceKey = "trace_id"

// SetTraceID stores a trace ID in the context.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// GetTraceID gets the trace ID from the context.
func GetTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}
