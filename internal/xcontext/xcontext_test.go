package xcontext

import (
	"context"
	"testing"
)

func TestValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if _, ok := GetRequestID(ctx); ok {
		t.Error("empty context has a request id")
	}
	if IsShutdownInProgress(ctx) {
		t.Error("empty context is shutting down")
	}

	ctx = SetRequestID(ctx, "req-1")
	ctx = SetSessionID(ctx, "")
	ctx = SetShutdownInProgress(ctx, true)

	if id, ok := GetRequestID(ctx); !ok || id != "req-1" {
		t.Errorf("GetRequestID() = %q, %v", id, ok)
	}
	if _, ok := GetSessionID(ctx); ok {
		t.Error("blank session id reported as present")
	}
	if !IsShutdownInProgress(ctx) {
		t.Error("shutdown flag lost")
	}
}
