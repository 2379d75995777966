package httpclient

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// StatusError reports a response whose status code the retry policy
// classified as retryable after all attempts were exhausted. The
// offending response is attached so callers can still inspect it.
type StatusError struct {
	StatusCode int
	Response   *resty.Response
}

func newStatusError(resp *resty.Response) *StatusError {
	return &StatusError{StatusCode: resp.StatusCode(), Response: resp}
}

func (e *StatusError) Error() string {
	if msg := errorMessage(e.Response); msg != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// errorMessage pulls a human-readable message out of an error response:
// the "error" field when the body is a JSON object, otherwise a
// truncated raw snippet.
func errorMessage(resp *resty.Response) string {
	body := resp.Body()
	if len(body) == 0 {
		return ""
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	const maxSnippet = 200
	snippet := strings.TrimSpace(string(body))
	if len(snippet) > maxSnippet {
		snippet = snippet[:maxSnippet] + "..."
	}
	return snippet
}
