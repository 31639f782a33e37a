package lumi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/lumi/internal/xhttp"
)

type APIError struct {
	StatusCode int
	Message    string
	// RetryAfter and Reason are only set on 429 responses.
	RetryAfter time.Duration
	Reason     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lumi api: %d %s", e.StatusCode, e.Message)
}

func (e *APIError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// AsAPIError unwraps err to an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    resp.Status,
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		apiErr.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
		apiErr.Reason = resp.Header.Get(xhttp.XRateLimitReason)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	// the device answers {status:"error", message}; the simulator's
	// middleware answers {error, message}.
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := go_json.Unmarshal(body, &errResp); err != nil {
		if text := strings.TrimSpace(string(body)); text != "" {
			apiErr.Message = text
		}
		return apiErr
	}

	switch {
	case errResp.Message != "":
		apiErr.Message = errResp.Message
	case errResp.Error != "":
		apiErr.Message = errResp.Error
	}
	return apiErr
}

// parseRetryAfter accepts the delta-seconds form of Retry-After.
func parseRetryAfter(s string) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	secs, err := strconv.Atoi(s)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
