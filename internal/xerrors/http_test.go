package xerrors

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestWriteError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   errorResponse
		wantHeader map[string]string
	}{
		{
			name:       "device style bad request",
			err:        BadRequest(WithMessage("Invalid face ID")),
			wantStatus: http.StatusBadRequest,
			wantBody:   errorResponse{Status: "error", Message: "Invalid face ID"},
		},
		{
			name:       "rate limited",
			err:        TooManyRequests(WithRetryAfter(1500*time.Millisecond), WithReason("ip_rate_limit")),
			wantStatus: http.StatusTooManyRequests,
			wantBody:   errorResponse{Status: "error", Message: "too many requests", Error: "rate_limited"},
			wantHeader: map[string]string{"Retry-After": "2", "X-RateLimit-Reason": "ip_rate_limit"},
		},
		{
			name:       "version mismatch",
			err:        UpgradeRequired(WithMessage("incompatible client version"), WithCode("incompatible_version")),
			wantStatus: http.StatusUpgradeRequired,
			wantBody:   errorResponse{Status: "error", Message: "incompatible client version", Error: "incompatible_version"},
		},
		{
			name:       "wrapped app error",
			err:        errors.Join(errors.New("context"), NotFound(WithMessage("Not found"))),
			wantStatus: http.StatusNotFound,
			wantBody:   errorResponse{Status: "error", Message: "Not found"},
		},
		{
			name:       "plain error is internal",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   errorResponse{Status: "error", Message: "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			WriteError(context.Background(), w, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			for k, v := range tt.wantHeader {
				if got := w.Header().Get(k); got != v {
					t.Errorf("%s = %q, want %q", k, got, v)
				}
			}

			var got errorResponse
			if err := go_json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if diff := cmp.Diff(tt.wantBody, got); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
