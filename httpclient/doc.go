// Package httpclient provides an HTTP client with retry and rate
// limiting built in.
//
// The client wraps [github.com/go-resty/resty/v2] with exponential
// backoff retries, sliding-window rate limiting, and pluggable logging.
// Both policies come from this module's retry and ratelimit packages and
// can also be applied to arbitrary callables directly.
//
// # Basic Usage
//
//	c := httpclient.New("https://api.example.com",
//	    httpclient.WithTimeout(15*time.Second),
//	    httpclient.WithRetryConfig(retry.Config{MaxTries: 3}),
//	)
//
//	if err := c.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	resp, err := c.Get(ctx, "/data", httpclient.WithQueryParam("q", "test"))
//
// Connect opens the underlying transport session and Close releases it;
// pairing Connect with a deferred Close guarantees the session is torn
// down even when a request in between fails.
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained;
// all configuration is validated when [Client.Connect] is called.
//
// # Retry Behaviour
//
// Each request is retried under the configured [retry.Config].
// [DefaultRetryPolicy] decides what is worth retrying: HTTP 429 (rate
// limit) and 5xx server errors, and transient connection errors. Context
// cancellation, deadline exceeded, and DNS resolution errors are never
// retried. Supply a custom function via [WithRetryPolicy] to override
// this behaviour; responses the policy rejects are returned as plain
// responses, never errors.
//
// When a retryable status code survives every attempt, the last response
// is returned together with a [*StatusError] so the body remains
// inspectable.
//
// # Rate Limiting
//
// Admission control runs once per logical call, before the first
// attempt; retries do not consume additional admissions. The default
// limit is 10 calls per second, configurable via [WithRateLimit] and
// removable via [WithoutRateLimit]. Each client owns its limiter, so
// independent clients never throttle each other.
//
// # Authentication
//
// Token-based authentication is configured with [WithAuthToken] (and
// optionally [WithAuthScheme]). HTTP Basic authentication is configured
// with [WithBasicAuth]. The two methods are mutually exclusive.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewZerologLogger] for a
// ready-made zerolog adapter. The default [NoopLogger] discards all log
// output. Ensure your implementation redacts credentials and tokens
// from request and response bodies before persisting logs.
package httpclient
