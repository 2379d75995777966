// Package urlutil provides small helpers for working with URL strings.
package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned when a URL cannot be reduced to a base URL,
// typically because the scheme or host is missing. Use [errors.Is] to
// test for it.
var ErrInvalidURL = errors.New("invalid URL")

// GetBaseURL extracts the base URL from rawURL, always discarding the
// query string and fragment. By default only scheme and network location
// (userinfo, host, port) are kept; with includePath the path is appended
// as well, with any trailing slash trimmed (a bare "/" is kept).
//
//	GetBaseURL("https://example.com/path?q=1#frag", false) // "https://example.com"
//	GetBaseURL("https://example.com/path?q=1#frag", true)  // "https://example.com/path"
func GetBaseURL(rawURL string, includePath bool) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if u.Scheme == "" {
		return "", fmt.Errorf("%w: missing scheme (e.g. 'http://' or 'https://')", ErrInvalidURL)
	}

	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	base := u.Scheme + "://"
	if u.User != nil {
		base += u.User.String() + "@"
	}
	base += u.Host

	if includePath && u.Path != "" {
		if u.Path == "/" {
			base += "/"
		} else {
			base += strings.TrimRight(u.Path, "/")
		}
	}

	return base, nil
}
