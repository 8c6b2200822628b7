// Package httpx provides the outbound HTTP client shared by provider clients.
package httpx

import (
	"net"
	"net/http"
	"time"
)

const DefaultUserAgent = "stockquotes/1.0"

// Client sends requests through a tuned transport and fills in default
// headers the caller left unset. The caller's request is never mutated.
type Client struct {
	http      *http.Client
	userAgent string
	header    http.Header
}

type Option func(*Client)

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithHeader adds a default header value.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.header.Add(key, value) }
}

// WithTransport replaces the pooled transport, e.g. with a test server's.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.http.Transport = rt
		}
	}
}

// New returns a client whose calls fail after timeout; zero disables it.
func New(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: timeout, Transport: newTransport()},
		userAgent: DefaultUserAgent,
		header:    http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newTransport is sized for a single upstream host with a low request quota.
func newTransport() *http.Transport {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          16,
		MaxIdleConnsPerHost:   8,
		MaxConnsPerHost:       8,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	var missing http.Header
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		missing = http.Header{"User-Agent": {c.userAgent}}
	}
	for key, values := range c.header {
		if req.Header.Get(key) != "" {
			continue
		}
		if missing == nil {
			missing = http.Header{}
		}
		missing[http.CanonicalHeaderKey(key)] = values
	}
	if missing != nil {
		req = req.Clone(req.Context())
		for key, values := range missing {
			req.Header[key] = values
		}
	}
	return c.http.Do(req)
}
