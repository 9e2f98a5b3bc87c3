package types

import "context"

// ContextKey is the type for request-scoped values carried on a context.
type ContextKey string

const (
	CtxRequestID    ContextKey = "ctx_request_id"
	CtxSubscriberID ContextKey = "ctx_subscriber_id"
)

// SetRequestID returns a context carrying the request ID.
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}

// GetRequestID returns the request ID from the context, or "" when unset.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(CtxRequestID).(string); ok {
		return v
	}
	return ""
}

// SetSubscriberID returns a context carrying the subscriber ID.
func SetSubscriberID(ctx context.Context, subscriberID string) context.Context {
	return context.WithValue(ctx, CtxSubscriberID, subscriberID)
}

// GetSubscriberID returns the subscriber ID from the context, or "" when unset.
func GetSubscriberID(ctx context.Context) string {
	if v, ok := ctx.Value(CtxSubscriberID).(string); ok {
		return v
	}
	return ""
}
