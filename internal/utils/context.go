// Package utils provides general-purpose helper utilities
// used across different parts of the proxy: type-safe context keys,
// request id generation, JSON response writing and the resty HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key used to store the trace id assigned to an
// inbound request by the HTTP layer. It only correlates log lines; the Kafka
// correlation id is minted separately for every produced record.
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, id)
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext retrieves the trace id from the context.
//
// Returns ok == false when no id is stored or the value has an unexpected
// type.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}
