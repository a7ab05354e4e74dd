package crmapi

// Package crmapi is the HTTP client for the upstream CRM REST backend. One
// Client implements every gateway port; the bearer credential travels in the
// request context and is attached uniformly by the transport rather than
// per call site.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/nexacrm/crm-console/internal/errors"
	"github.com/nexacrm/crm-console/internal/observability/statsd"
)

// User-facing messages for upstream failures. The console keeps the original
// product's Turkish copy; these are part of its observable behavior.
const (
	MsgInvalidCredentials = "Kullanıcı adı veya şifre yanlış"
	MsgSessionInvalid     = "Oturum geçersiz. Lütfen tekrar giriş yapın."
	MsgForbidden          = "Yetkiniz yok."
	MsgServerError        = "Sunucu hatası."
	MsgInvalidData        = "Geçersiz veya yinelenen veri."
	MsgNotFound           = "Kayıt bulunamadı."
)

const maxResponseBytes = 1 << 20

// Config describes the upstream connection.
type Config struct {
	// BaseURL is the backend origin, e.g. "https://crm.example.com".
	BaseURL string
	// Timeout bounds each request. Zero means 30s.
	Timeout time.Duration
	// Metrics receives upstream request timings. Nil is a no-op.
	Metrics statsd.Sink
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Client talks to the CRM backend. Safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	metrics statsd.Sink
	logger  *slog.Logger
}

// New validates the configuration and builds a Client.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid upstream base URL %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: base,
		httpc: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{base: http.DefaultTransport},
		},
		metrics: cfg.Metrics,
		logger:  logger,
	}, nil
}

// bearerKey is the context key carrying the current session's credential.
type bearerKey struct{}

// WithBearer returns a child context carrying the bearer credential.
func WithBearer(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, bearerKey{}, token)
}

// BearerFromContext returns the credential from the context, if any.
func BearerFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerKey{}).(string)
	return token, ok && token != ""
}

// bearerTransport injects the Authorization header from the request context,
// the Go analogue of a request interceptor: callers never set the header
// themselves.
type bearerTransport struct {
	base http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token, ok := BearerFromContext(req.Context()); ok && req.Header.Get("Authorization") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.base.RoundTrip(req)
}

// send issues one request and returns the raw response body. Upstream
// statuses >= 400 are mapped to AppErrors with UI-safe messages; transport
// failures are classified as timeout/canceled/upstream. Nothing is retried.
func (c *Client) send(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.observe(method, path, 0, time.Since(start))
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.observe(method, path, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUpstream, MsgServerError)
	}

	if resp.StatusCode >= 400 {
		c.logger.Debug("upstream error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))
		return nil, mapStatusError(resp.StatusCode, data)
	}
	return data, nil
}

// do sends a request and unmarshals the JSON response into out (when out is
// non-nil and the body is non-empty).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	data, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, MsgServerError)
	}
	return nil
}

// doMessage sends a request and extracts a human-readable message from the
// response, tolerating the backend's three reply shapes: {"message": ...},
// a JSON string, or a raw string body.
func (c *Client) doMessage(ctx context.Context, method, path string, body any) (string, error) {
	data, err := c.send(ctx, method, path, body)
	if err != nil {
		return "", err
	}
	return messageFromBody(data), nil
}

func (c *Client) observe(method, path string, status int, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.Timing("upstream.request", elapsed, map[string]string{
		"method": method,
		"status": strconv.Itoa(status),
	})
}

func classifyTransportError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, MsgServerError)
	case errors.Is(err, context.Canceled):
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, "request canceled")
	default:
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, MsgServerError)
	}
}

// mapStatusError converts an upstream error status into the application
// taxonomy: 401 session-invalid, 403 forbidden, 400 validation with the
// backend's own message when present, >=500 server fault. None of these
// trigger logout or retry here; callers surface the message and move on.
func mapStatusError(status int, data []byte) error {
	msg := messageFromBody(data)
	switch {
	case status == http.StatusUnauthorized:
		return apperrors.New(apperrors.ErrCodeUnauthorized, orDefault(msg, MsgSessionInvalid))
	case status == http.StatusForbidden:
		return apperrors.New(apperrors.ErrCodeForbidden, orDefault(msg, MsgForbidden))
	case status == http.StatusNotFound:
		return apperrors.New(apperrors.ErrCodeNotFound, orDefault(msg, MsgNotFound))
	case status == http.StatusBadRequest:
		return apperrors.New(apperrors.ErrCodeValidation, orDefault(msg, MsgInvalidData))
	case status >= 500:
		return apperrors.New(apperrors.ErrCodeUpstream, orDefault(msg, MsgServerError))
	default:
		return apperrors.New(apperrors.ErrCodeUpstream, fmt.Sprintf("unexpected upstream status %d", status))
	}
}

func messageFromBody(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ""
	}

	// Unmarshal is case-insensitive, covering both "message" and "Message".
	var obj struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(trimmed, &obj) == nil && obj.Message != "" {
		return obj.Message
	}

	var s string
	if json.Unmarshal(trimmed, &s) == nil {
		return s
	}
	return string(trimmed)
}

func orDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
