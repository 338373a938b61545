package types

import (
	"context"
	"time"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxUserID    ContextKey = "ctx_user_id"
	CtxNow       ContextKey = "ctx_now"

	// DefaultUserID is used when the caller did not identify itself
	DefaultUserID = "system"

	HeaderRequestID = "X-Request-ID"
	HeaderUserID    = "X-User-ID"
)

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(CtxUserID).(string); ok && userID != "" {
		return userID
	}
	return DefaultUserID
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// SetUserID sets the user ID in the context
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxUserID, userID)
}

// SetRequestID sets the request ID in the context
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}

// WithNow pins the clock seen by services, mainly for year rollover and
// schedule calculations in tests.
func WithNow(ctx context.Context, now time.Time) context.Context {
	return context.WithValue(ctx, CtxNow, now)
}

// Now returns the pinned time from the context or the current UTC time
func Now(ctx context.Context) time.Time {
	if now, ok := ctx.Value(CtxNow).(time.Time); ok {
		return now
	}
	return time.Now().UTC()
}
