package httpclient

import (
	"testing"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/netkit-dev/netkit/ratelimit"
	"github.com/netkit-dev/netkit/retry"
)

func TestNewClientOptions(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()

	if opts.timeout != 30*time.Second {
		t.Errorf("expected timeout=30s, got %v", opts.timeout)
	}

	if opts.retryPolicy == nil {
		t.Error("expected retryPolicy to be set")
	}

	if !opts.rateLimitEnabled {
		t.Error("expected rate limiting to be enabled by default")
	}

	if opts.requestLogger == nil {
		t.Error("expected requestLogger to be set")
	}

	if opts.requestHeaders["Content-Type"] != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %s", opts.requestHeaders["Content-Type"])
	}

	if opts.requestHeaders["Accept"] != "application/json" {
		t.Errorf("expected Accept=application/json, got %s", opts.requestHeaders["Accept"])
	}

	if opts.healthCheckPath != "" {
		t.Errorf("expected no health check by default, got %s", opts.healthCheckPath)
	}
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Duration
		expected time.Duration
	}{
		{"valid", 15 * time.Second, 15 * time.Second},
		{"zero ignored", 0, 30 * time.Second},
		{"negative ignored", -time.Second, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithTimeout(tt.input)(opts)

			if opts.timeout != tt.expected {
				t.Errorf("expected timeout=%v, got %v", tt.expected, opts.timeout)
			}
		})
	}
}

func TestWithRetryConfig(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithRetryConfig(retry.Config{MaxTries: 7, Jitter: retry.JitterNone})(opts)

	if opts.retryConfig.MaxTries != 7 {
		t.Errorf("expected MaxTries=7, got %d", opts.retryConfig.MaxTries)
	}

	if opts.retryConfig.Jitter != retry.JitterNone {
		t.Errorf("expected JitterNone, got %q", opts.retryConfig.Jitter)
	}
}

func TestWithRetryPolicy_NilIgnored(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithRetryPolicy(nil)(opts)

	if opts.retryPolicy == nil {
		t.Error("expected nil policy to be ignored")
	}
}

func TestWithRetryPolicy(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	called := false
	WithRetryPolicy(func(*resty.Response, error) bool {
		called = true
		return false
	})(opts)

	opts.retryPolicy(nil, nil)

	if !called {
		t.Error("expected the custom policy to be installed")
	}
}

func TestWithRateLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         ratelimit.Config
		expectedCalls int
	}{
		{"valid", ratelimit.Config{Calls: 5, Period: time.Second}, 5},
		{"zero calls ignored", ratelimit.Config{Calls: 0, Period: time.Second}, 0},
		{"zero period ignored", ratelimit.Config{Calls: 5, Period: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithRateLimit(tt.input)(opts)

			if opts.rateLimitConfig.Calls != tt.expectedCalls {
				t.Errorf("expected calls=%d, got %d", tt.expectedCalls, opts.rateLimitConfig.Calls)
			}
		})
	}
}

func TestWithoutRateLimit(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithoutRateLimit()(opts)

	if opts.rateLimitEnabled {
		t.Error("expected rate limiting to be disabled")
	}
}

func TestWithRequestLogger_NilIgnored(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithRequestLogger(nil)(opts)

	if opts.requestLogger == nil {
		t.Error("expected nil logger to be ignored")
	}
}

func TestWithRequestHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		value  string
		stored bool
	}{
		{"custom header", "X-Custom", "value", true},
		{"empty header ignored", "", "value", false},
		{"whitespace header ignored", "   ", "value", false},
		{"content type protected", "Content-Type", "text/plain", false},
		{"accept protected", "accept", "text/plain", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithRequestHeader(tt.header, tt.value)(opts)

			if tt.stored {
				if opts.requestHeaders["X-Custom"] != tt.value {
					t.Errorf("expected header to be stored, got %v", opts.requestHeaders)
				}
				return
			}

			if opts.requestHeaders["Content-Type"] != "application/json" {
				t.Errorf("expected Content-Type to stay application/json, got %s", opts.requestHeaders["Content-Type"])
			}

			if opts.requestHeaders["Accept"] != "application/json" {
				t.Errorf("expected Accept to stay application/json, got %s", opts.requestHeaders["Accept"])
			}
		})
	}
}

func TestWithHealthCheck(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithHealthCheck("/ping")(opts)

	if opts.healthCheckPath != "/ping" {
		t.Errorf("expected healthCheckPath=/ping, got %s", opts.healthCheckPath)
	}

	WithHealthCheck("")(opts)

	if opts.healthCheckPath != "/ping" {
		t.Error("expected empty path to be ignored")
	}
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults valid", func(*Options) {}, false},
		{"nil logger", func(o *Options) { o.requestLogger = nil }, true},
		{"nil retry policy", func(o *Options) { o.retryPolicy = nil }, true},
		{"non-positive timeout", func(o *Options) { o.timeout = 0 }, true},
		{"both auth methods", func(o *Options) {
			o.basicAuthUsername = "user"
			o.authToken = "token"
		}, true},
		{"basic auth alone", func(o *Options) { o.basicAuthUsername = "user" }, false},
		{"token auth alone", func(o *Options) { o.authToken = "token" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			tt.mutate(opts)

			err := opts.validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
