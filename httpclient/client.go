package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/netkit-dev/netkit/ratelimit"
	"github.com/netkit-dev/netkit/retry"
)

// Client is an HTTP client composing rate limiting and retries around a
// resty transport session. Create one with [New], open the session with
// [Client.Connect], and release it with [Client.Close]. A connected
// Client is safe for concurrent use.
type Client struct {
	baseURL string
	options *Options

	mu        sync.Mutex
	rest      *resty.Client
	limiter   *ratelimit.Limiter
	connected bool
}

// New creates a Client for the given base URL. Request paths are joined
// onto it; an absolute URL passed as a path overrides it. Invalid option
// values are silently ignored here and validated by [Client.Connect].
func New(baseURL string, opts ...Option) *Client {
	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Client{
		baseURL: baseURL,
		options: options,
	}
}

// Connect validates the configuration and opens the underlying transport
// session. When a health-check path is configured the session is proven
// with a GET against it. Connect is idempotent; only the first call does
// any work.
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return errors.New("http client is nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}

	if c.baseURL == "" {
		return errors.New("base URL must be set")
	}

	if err := c.options.validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	rest := resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(c.options.timeout).
		SetHeaders(c.options.requestHeaders).
		SetLogger(c.options.requestLogger)

	if c.options.basicAuthUsername != "" {
		rest.SetBasicAuth(c.options.basicAuthUsername, c.options.basicAuthPassword)
	}

	if c.options.authToken != "" {
		if c.options.authScheme != "" {
			rest.SetAuthScheme(c.options.authScheme)
		}
		rest.SetAuthToken(c.options.authToken)
	}

	if c.options.healthCheckPath != "" {
		resp, err := rest.R().SetContext(ctx).Get(c.options.healthCheckPath)
		if err != nil {
			return fmt.Errorf("health check failed: %w", err)
		}
		if resp.IsError() {
			return fmt.Errorf("health check failed: %s returned %d", c.options.healthCheckPath, resp.StatusCode())
		}
	}

	c.rest = rest
	if c.options.rateLimitEnabled {
		c.limiter = ratelimit.New(c.options.rateLimitConfig)
	}
	c.connected = true

	return nil
}

// Close releases the transport session's idle connections. It is safe on
// nil and unconnected clients and may be deferred right after Connect.
func (c *Client) Close() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rest != nil {
		c.rest.GetClient().CloseIdleConnections()
		c.rest = nil
	}
	c.connected = false
}

// Get sends a GET request to path.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*resty.Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, opts...)
}

// Post sends a POST request to path. A non-nil body is serialized as
// JSON (or passed through for string and []byte bodies).
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*resty.Response, error) {
	return c.Do(ctx, http.MethodPost, path, body, opts...)
}

// Put sends a PUT request to path.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*resty.Response, error) {
	return c.Do(ctx, http.MethodPut, path, body, opts...)
}

// Patch sends a PATCH request to path.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*resty.Response, error) {
	return c.Do(ctx, http.MethodPatch, path, body, opts...)
}

// Delete sends a DELETE request to path.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*resty.Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, opts...)
}

// Do sends a request with the given method, waiting for rate-limit
// admission once and then retrying attempts under the client's retry
// policy. The transport's response is returned unchanged on success.
// On final failure the last error is returned; for retryable status
// codes that survived every attempt the last response accompanies a
// [*StatusError].
func (c *Client) Do(ctx context.Context, method, path string, body any, opts ...RequestOption) (*resty.Response, error) {
	if c == nil {
		return nil, errors.New("http client is nil")
	}

	c.mu.Lock()
	rest, limiter, connected := c.rest, c.limiter, c.connected
	c.mu.Unlock()

	if !connected {
		return nil, errors.New("client not connected - call Connect() first")
	}

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return retry.DoValue(ctx, c.options.retryConfig, func(ctx context.Context) (*resty.Response, error) {
		req := rest.R().SetContext(ctx)
		if body != nil {
			req.SetBody(body)
		}
		for _, opt := range opts {
			opt(req)
		}

		resp, err := req.Execute(method, path)
		if err != nil {
			return nil, err
		}

		if c.options.retryPolicy(resp, nil) {
			return resp, newStatusError(resp)
		}

		return resp, nil
	}, c.retryable)
}

// retryable adapts the configured response/error policy to the retry
// engine's error-only view. Status errors were already approved by the
// policy when they were raised.
func (c *Client) retryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return true
	}
	return c.options.retryPolicy(nil, err)
}
