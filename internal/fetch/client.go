// Package fetch wraps HTTP retrieval of feeds and article pages with
// size ceilings, conditional requests and bounded retries.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ErrBodyTooBig is returned when a response body exceeds the configured
// byte ceiling. Callers translate it into their own typed error.
var ErrBodyTooBig = errors.New("response body exceeds size limit")

// Config holds client settings.
type Config struct {
	UserAgent      string
	Timeout        time.Duration
	MaxBodySize    int64
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Result is a completed fetch.
type Result struct {
	Body            []byte
	FinalURL        string
	StatusCode      int
	ContentType     string
	ContentLanguage string
	ETag            string
	LastModified    string
	NotModified     bool
}

// Client fetches URLs. Redirects are followed by the underlying
// http.Client.
type Client struct {
	httpClient     *http.Client
	userAgent      string
	maxBodySize    int64
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// ConditionalHeaders carries validators from the previous successful
// fetch of the same resource.
type ConditionalHeaders struct {
	ETag         string
	LastModified string
}

// NewClient creates a fetch client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 5 * time.Second,
			},
		},
		userAgent:      cfg.UserAgent,
		maxBodySize:    cfg.MaxBodySize,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger,
	}
}

// Get fetches url, retrying transient failures. A 304 response yields a
// Result with NotModified set and an empty body.
func (c *Client) Get(ctx context.Context, url string, cond ConditionalHeaders) (*Result, error) {
	var result *Result
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		result, err = c.doGet(ctx, url, cond)
		if err == nil || errors.Is(err, ErrBodyTooBig) || errors.Is(err, context.Canceled) {
			return result, err
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.backoff(attempt)
		c.logger.Warn("fetch failed, retrying",
			"url", url,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doGet(ctx context.Context, url string, cond ConditionalHeaders) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if cond.ETag != "" {
		req.Header.Set("If-None-Match", cond.ETag)
	}
	if cond.LastModified != "" {
		req.Header.Set("If-Modified-Since", cond.LastModified)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	result := &Result{
		FinalURL:        resp.Request.URL.String(),
		StatusCode:      resp.StatusCode,
		ContentType:     resp.Header.Get("Content-Type"),
		ContentLanguage: resp.Header.Get("Content-Language"),
		ETag:            resp.Header.Get("ETag"),
		LastModified:    resp.Header.Get("Last-Modified"),
	}

	if resp.StatusCode == http.StatusNotModified {
		result.NotModified = true
		return result, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := c.readCapped(resp.Body)
	if err != nil {
		return result, err
	}
	result.Body = body

	return result, nil
}

// readCapped reads at most maxBodySize bytes and fails if the body is
// longer. A zero cap disables the check.
func (c *Client) readCapped(r io.Reader) ([]byte, error) {
	if c.maxBodySize <= 0 {
		return io.ReadAll(r)
	}
	body, err := io.ReadAll(io.LimitReader(r, c.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > c.maxBodySize {
		return nil, ErrBodyTooBig
	}
	return body, nil
}

func (c *Client) backoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
