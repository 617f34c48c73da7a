package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Per-request timeouts used across the extraction pipelines.
const (
	PageTimeout    = 15 * time.Second
	SitemapTimeout = 15 * time.Second
	FeedTimeout    = 10 * time.Second
	RobotsTimeout  = 8 * time.Second
)

// Accept headers tuned per resource kind.
const (
	AcceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	AcceptFeed = "application/rss+xml, application/atom+xml, application/xml, text/xml"
	AcceptXML  = "application/xml, text/xml"
	AcceptText = "text/plain"
)

// Error is returned for any failed fetch: transport errors, timeouts
// and non-2xx responses all collapse into it. Status is zero when the
// request never produced a response.
type Error struct {
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Client struct {
	httpClient *http.Client
	userAgent  string
}

func NewClient(userAgent string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		userAgent: userAgent,
	}
}

// Fetch performs a GET with a hard per-request deadline. A timeout is
// indistinguishable from any other transport failure on purpose:
// callers iterating candidate URLs only need to know the candidate
// yielded nothing.
func (c *Client) Fetch(ctx context.Context, url string, accept string, timeout time.Duration) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &Error{URL: url, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}

	return data, nil
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
