package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"bills_fetcher/internal/metrics"
)

const htmlContentType = "text/html"

type Config struct {
	Timeout   time.Duration
	Retries   int
	Backoff   time.Duration
	UserAgent string
}

func DefaultConfig() Config {
	return Config{
		Timeout:   10 * time.Second,
		Retries:   3,
		Backoff:   time.Second,
		UserAgent: "BillsFetcher/1.0",
	}
}

type Response struct {
	Body        string
	ContentType string
	StatusCode  int
}

// Client performs GET requests that only succeed on non-empty HTML bodies,
// retrying with a fixed backoff.
type Client struct {
	client  *resty.Client
	retries int
	backoff time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func New(cfg Config, m *metrics.Metrics, logger *slog.Logger) *Client {
	d := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = d.Timeout
	}
	if cfg.Retries <= 0 {
		cfg.Retries = d.Retries
	}
	if cfg.Backoff < 0 {
		cfg.Backoff = d.Backoff
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = d.UserAgent
	}
	if m == nil {
		m = metrics.New(nil)
	}

	return &Client{
		client: resty.New().
			SetTimeout(cfg.Timeout).
			SetHeader("User-Agent", cfg.UserAgent).
			SetHeader("Accept", htmlContentType),
		retries: cfg.Retries,
		backoff: cfg.Backoff,
		metrics: m,
		logger:  logger.With("component", "fetch"),
	}
}

// Fetch returns the body of url. After the last failed attempt the error is
// a *FetchError.
func (c *Client) Fetch(ctx context.Context, url string) (*Response, error) {
	var lastErr *attemptError

	for attempt := 1; attempt <= c.retries; attempt++ {
		resp, err := c.do(ctx, url)
		if err == nil {
			c.metrics.FetchAttempts.WithLabelValues("success").Inc()
			return resp, nil
		}
		lastErr = err
		c.metrics.FetchAttempts.WithLabelValues(string(err.kind)).Inc()

		if attempt == c.retries {
			break
		}

		c.logger.Warn("request failed, retrying",
			"url", url,
			"attempt", attempt,
			"backoff", c.backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, &FetchError{Kind: KindTransport, URL: url, Attempts: attempt, Err: ctx.Err()}
		case <-time.After(c.backoff):
		}
	}

	return nil, &FetchError{Kind: lastErr.kind, URL: url, Attempts: c.retries, Err: lastErr.err}
}

func (c *Client) do(ctx context.Context, url string) (*Response, *attemptError) {
	c.metrics.FetchInFlight.Inc()
	defer c.metrics.FetchInFlight.Dec()

	resp, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		if isTimeout(err) {
			return nil, &attemptError{kind: KindTimeout, err: fmt.Errorf("execute request: %w", err)}
		}
		return nil, &attemptError{kind: KindTransport, err: fmt.Errorf("execute request: %w", err)}
	}

	if !resp.IsSuccess() {
		return nil, &attemptError{kind: KindTransport, err: fmt.Errorf("unexpected status: %d", resp.StatusCode())}
	}

	body := resp.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &attemptError{kind: KindEmptyBody, err: errors.New("empty body")}
	}

	contentType := resp.Header().Get("Content-Type")
	if !strings.Contains(strings.ToLower(contentType), htmlContentType) {
		return nil, &attemptError{kind: KindWrongContentType, err: fmt.Errorf("content type %q is not html", contentType)}
	}

	if sniffed := http.DetectContentType(body); !strings.HasPrefix(sniffed, "text/") {
		return nil, &attemptError{kind: KindNonTextBody, err: fmt.Errorf("body looks like %s", sniffed)}
	}

	return &Response{
		Body:        string(body),
		ContentType: contentType,
		StatusCode:  resp.StatusCode(),
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
