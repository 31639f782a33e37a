package xhttp

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/garrettladley/lumi/internal/version"
)

// lumiTransport stamps the headers the simulator uses for version checks and
// log correlation. A real device ignores them.
type lumiTransport struct {
	base      http.RoundTripper
	sessionID string
}

var _ http.RoundTripper = (*lumiTransport)(nil)

func (t *lumiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", "lumi/"+version.Get())
	req.Header.Set(version.Header, version.Get())
	if req.Header.Get(XRequestID) == "" {
		req.Header.Set(XRequestID, uuid.NewString())
	}
	if t.sessionID != "" {
		SetRequestHeaderSessionID(req, t.sessionID)
	}
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

type TransportOption func(*lumiTransport)

// WithSessionID stamps every request with the client session header.
func WithSessionID(id string) TransportOption {
	return func(t *lumiTransport) { t.sessionID = id }
}

func WithBase(base http.RoundTripper) TransportOption {
	return func(t *lumiTransport) { t.base = base }
}

func NewTransport(opts ...TransportOption) http.RoundTripper {
	t := &lumiTransport{base: http.DefaultTransport}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
