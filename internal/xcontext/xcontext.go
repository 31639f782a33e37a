// Package xcontext carries per-request values through a context.
package xcontext

import "context"

type key uint8

const (
	requestIDKey key = iota
	sessionIDKey
	shutdownKey
)

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) (string, bool) {
	return get[string](ctx, requestIDKey)
}

// SetSessionID records the client session that issued the request.
func SetSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := get[string](ctx, sessionIDKey)
	return id, ok && id != ""
}

// SetShutdownInProgress marks requests that arrive while the server drains.
func SetShutdownInProgress(ctx context.Context, inProgress bool) context.Context {
	return context.WithValue(ctx, shutdownKey, inProgress)
}

func IsShutdownInProgress(ctx context.Context) bool {
	inProgress, _ := get[bool](ctx, shutdownKey)
	return inProgress
}

func get[T any](ctx context.Context, k key) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}
