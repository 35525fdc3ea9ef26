// Package remote is the JSON-over-HTTP caller shared by the platform API
// clients. It owns request encoding, auth headers, response limits, transport
// error classification and the conversion of non-2xx responses into
// *domain.RemoteError through a per-platform ErrorDecoder.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ad-fanout/internal/core/domain"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodySize    = 10 << 20
)

// ErrorDecoder extracts the platform's error envelope from a failed
// response. It returns nil when the body is not a recognisable envelope.
type ErrorDecoder func(status int, body []byte) *domain.RemoteError

// Caller issues JSON requests against one platform API.
type Caller struct {
	platform domain.Platform
	baseURL  string
	http     *http.Client
	header   http.Header
	decode   ErrorDecoder
	logger   *slog.Logger
}

// Option configures a Caller.
type Option func(*Caller)

// WithHTTPClient replaces the default client, e.g. with an oauth2 client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Caller) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(cl *Caller) {
		if value != "" {
			cl.header.Set(key, value)
		}
	}
}

// WithBearer authenticates every request with an Authorization header.
func WithBearer(token string) Option {
	return WithHeader("Authorization", "Bearer "+token)
}

// WithErrorDecoder sets the platform error envelope parser.
func WithErrorDecoder(d ErrorDecoder) Option {
	return func(cl *Caller) { cl.decode = d }
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Caller) {
		if l != nil {
			cl.logger = l
		}
	}
}

// NewHTTPClient returns the pooled client used when none is supplied.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}

// New builds a caller for platform p rooted at baseURL.
func New(p domain.Platform, baseURL string, opts ...Option) *Caller {
	c := &Caller{
		platform: p,
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     http.DefaultClient,
		header:   make(http.Header),
		logger:   OrDiscard(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request describes one call. Path is joined to the base URL unless it is
// already absolute. Body is JSON-encoded when non-nil; Form takes precedence
// and is sent url-encoded.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Form   url.Values
	Header http.Header
	// Step names the creation step for error messages, e.g. "campaign".
	Step string
}

// Response is a successful reply. Body is already read and closed.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Do sends req and decodes a 2xx JSON body into out when out is non-nil.
// Transport failures become *domain.ConnectionError and non-2xx replies
// become *domain.RemoteError.
func (c *Caller) Do(ctx context.Context, req Request, out any) (*Response, error) {
	httpReq, err := c.build(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s %s request error: %w", c.platform, req.Step, err)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.WarnContext(ctx, "remote call failed",
			"event", "remote_call_failed",
			"module", string(c.platform),
			"layer", "adapter",
			"step", req.Step,
			"method", httpReq.Method,
			"path", httpReq.URL.Path,
			"error", err,
		)
		return nil, &domain.ConnectionError{Platform: c.platform, Err: classifyRequestError(ctx, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &domain.ConnectionError{Platform: c.platform, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.DebugContext(ctx, "remote call",
		"event", "remote_call",
		"module", string(c.platform),
		"layer", "adapter",
		"step", req.Step,
		"method", httpReq.Method,
		"path", httpReq.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.remoteError(req.Step, resp.StatusCode, body)
	}

	if out != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return nil, fmt.Errorf("%s %s decode response: %w", c.platform, req.Step, err)
		}
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

// Fetch downloads an absolute URL without the platform auth headers, e.g. a
// creative image that must be re-uploaded as bytes.
func (c *Caller) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", &domain.ConnectionError{Platform: c.platform, Err: classifyRequestError(ctx, err)}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("fetch %s: status=%d", rawURL, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// RemoteError converts a rejection that arrived inside a 2xx body (TikTok's
// code != 0 envelope) into the same error type as a non-2xx reply.
func (c *Caller) RemoteError(step, code, message string) *domain.RemoteError {
	return &domain.RemoteError{Platform: c.platform, Step: step, Code: code, Message: message}
}

func (c *Caller) build(ctx context.Context, req Request) (*http.Request, error) {
	target := req.Path
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = c.baseURL + "/" + strings.TrimLeft(target, "/")
	}
	if len(req.Query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.Form != nil:
		body = strings.NewReader(req.Form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.Body != nil:
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	for k, v := range c.header {
		httpReq.Header[k] = v
	}
	for k, v := range req.Header {
		httpReq.Header[k] = v
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	return httpReq, nil
}

func (c *Caller) remoteError(step string, status int, body []byte) error {
	if c.decode != nil {
		if rerr := c.decode(status, body); rerr != nil {
			rerr.Platform = c.platform
			rerr.Step = step
			rerr.StatusCode = status
			return rerr
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 512 {
		msg = msg[:512]
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &domain.RemoteError{Platform: c.platform, Step: step, StatusCode: status, Message: msg}
}

// OrDiscard returns l, or a logger that drops everything when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
