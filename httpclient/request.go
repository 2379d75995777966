package httpclient

import "github.com/go-resty/resty/v2"

// RequestOption customizes a single request before it is sent. Options
// are re-applied on every retry attempt.
type RequestOption func(*resty.Request)

// WithQueryParam adds one query parameter to the request URL.
func WithQueryParam(key, value string) RequestOption {
	return func(r *resty.Request) {
		r.SetQueryParam(key, value)
	}
}

// WithQueryParams adds a set of query parameters to the request URL.
func WithQueryParams(params map[string]string) RequestOption {
	return func(r *resty.Request) {
		r.SetQueryParams(params)
	}
}

// WithHeader sets one header on the request, overriding any client-level
// default of the same name.
func WithHeader(header, value string) RequestOption {
	return func(r *resty.Request) {
		r.SetHeader(header, value)
	}
}

// WithHeaders sets a group of headers on the request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *resty.Request) {
		r.SetHeaders(headers)
	}
}
