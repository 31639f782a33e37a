package xhttp

import (
	"net/http"
	"time"
)

// NewHTTPClient returns a client that stamps lumi headers and gives up after
// timeout.
func NewHTTPClient(timeout time.Duration, opts ...TransportOption) *http.Client {
	return &http.Client{
		Transport: NewTransport(opts...),
		Timeout:   timeout,
	}
}
