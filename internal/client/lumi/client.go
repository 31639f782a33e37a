// Package lumi is a client for the HTTP API served by a Lumi LED device.
package lumi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/lumi/internal/xhttp"
	"github.com/garrettladley/lumi/internal/xslog"
)

// ErrDecode marks a 2xx response whose body did not match the expected shape.
var ErrDecode = errors.New("decoding response")

func isDecodeError(err error) bool { return errors.Is(err, ErrDecode) }

type Client struct {
	Faces    FaceService
	Patterns PatternService
	Status   StatusService

	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL: baseURL,
		logger:  slog.Default(),
		timeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transportOpts := []xhttp.TransportOption{xhttp.WithSessionID(cfg.sessionID)}
	if cfg.transport != nil {
		transportOpts = append(transportOpts, xhttp.WithBase(cfg.transport))
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.baseURL, "/"),
		httpClient: xhttp.NewHTTPClient(cfg.timeout, transportOpts...),
		logger:     cfg.logger,
	}

	c.Faces = &faceService{client: c}
	c.Patterns = &patternService{client: c}
	c.Status = &statusService{client: c}

	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

type clientConfig struct {
	baseURL   string
	logger    *slog.Logger
	sessionID string
	timeout   time.Duration
	transport http.RoundTripper
}

type Option func(*clientConfig)

func WithSessionID(sessionID string) Option {
	return func(cfg *clientConfig) { cfg.sessionID = sessionID }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

// WithTransport sets the round tripper underneath the header-stamping
// transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(cfg *clientConfig) { cfg.transport = rt }
}

type request struct {
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, result any) error {
	return c.send(ctx, request{method: method, path: path, query: query}, result)
}

func (c *Client) send(ctx context.Context, r request, result any) error {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set(xhttp.ContentType, r.contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.DebugContext(ctx, "device request",
		xslog.RequestMethod(req),
		xslog.RequestPath(req),
		xslog.HTTPStatus(resp.StatusCode),
		xslog.Duration(time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		if err := go_json.NewDecoder(bytes.NewReader(data)).Decode(result); err != nil {
			return fmt.Errorf("%w: %w\nbody: %s", ErrDecode, err, string(data))
		}
	}

	return nil
}
