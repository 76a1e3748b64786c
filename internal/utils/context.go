// Package utils holds small helpers shared by the client and the stand-in
// catalog server: typed context keys, JSON response writing, the resty based
// HTTP client, trace id generation and JWT handling.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they cannot collide with
// plain string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated catalog user id in a request context.
var UserIDCtxKey = contextKey("userID")

// TraceIDCtxKey stores the request trace id.
var TraceIDCtxKey = contextKey("traceID")

// GetUserIDFromContext returns the user id stored under [UserIDCtxKey].
// ok is false when the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetTraceIDFromContext returns the trace id stored under [TraceIDCtxKey].
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
