package discovery

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeSeed turns user input into an absolute http(s) URL.
// Scheme-less input defaults to https.
func NormalizeSeed(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("URL is required")
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid URL: missing host")
	}

	return u, nil
}

// Origin returns the scheme://host root of u.
func Origin(u *url.URL) string {
	return u.Scheme + "://" + u.Host
}
