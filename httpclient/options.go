package httpclient

import (
	"errors"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/netkit-dev/netkit/ratelimit"
	"github.com/netkit-dev/netkit/retry"
)

type Option func(*Options)

type Options struct {
	timeout           time.Duration
	retryConfig       retry.Config
	retryPolicy       func(*resty.Response, error) bool
	rateLimitEnabled  bool
	rateLimitConfig   ratelimit.Config
	requestLogger     RequestLogger
	requestHeaders    map[string]string
	basicAuthUsername string
	basicAuthPassword string
	authScheme        string
	authToken         string
	healthCheckPath   string
}

func newClientOptions() *Options {
	return &Options{
		timeout:          30 * time.Second,
		retryPolicy:      DefaultRetryPolicy,
		rateLimitEnabled: true,
		requestLogger:    &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// validate is called by [Client.Connect]; options that were silently
// ignored at construction time surface here.
func (o *Options) validate() error {
	if o.timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	if o.requestLogger == nil {
		return errors.New("request logger must be set")
	}

	if o.retryPolicy == nil {
		return errors.New("retry policy must be set")
	}

	if o.basicAuthUsername != "" && o.authToken != "" {
		return errors.New("basic auth and token auth are mutually exclusive")
	}

	return nil
}

// WithTimeout sets the per-attempt request timeout. The default is 30s.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRetryConfig sets the retry policy applied around every request.
// The zero [retry.Config] (the default) retries up to 5 times within a
// 30s budget using full jitter.
func WithRetryConfig(cfg retry.Config) Option {
	return func(o *Options) {
		o.retryConfig = cfg
	}
}

// WithRetryPolicy overrides [DefaultRetryPolicy] as the condition that
// decides whether a response or error is worth retrying.
func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

// WithRateLimit sets the client's rate limit. The default is 10 calls
// per second.
func WithRateLimit(cfg ratelimit.Config) Option {
	return func(o *Options) {
		if cfg.Calls > 0 && cfg.Period > 0 {
			o.rateLimitEnabled = true
			o.rateLimitConfig = cfg
		}
	}
}

// WithoutRateLimit disables admission control entirely.
func WithoutRateLimit() Option {
	return func(o *Options) {
		o.rateLimitEnabled = false
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}

func WithBasicAuth(username, password string) Option {
	return func(o *Options) {
		o.basicAuthUsername = username
		o.basicAuthPassword = password
	}
}

func WithAuthScheme(scheme string) Option {
	return func(o *Options) {
		o.authScheme = scheme
	}
}

func WithAuthToken(token string) Option {
	return func(o *Options) {
		o.authToken = token
	}
}

// WithHealthCheck makes [Client.Connect] issue a GET against the given
// path and fail when it does not return a 2xx status. No health check is
// performed by default.
func WithHealthCheck(path string) Option {
	return func(o *Options) {
		if path != "" {
			o.healthCheckPath = path
		}
	}
}
