package alphavantage

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

//go:generate mockgen -package=alphavantage_test -destination=mock_http_client_test.go -source=client.go HTTPClient

// HTTPClient sends the GET requests issued by APIClient.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var (
	ErrInvalidBaseURL = errors.New("invalid base url")
	ErrNilHTTPClient  = errors.New("nil http client")
)

// APIClient calls the Alpha Vantage /query endpoint. Every function of the
// API shares that endpoint and is selected by the "function" parameter.
type APIClient struct {
	endpoint   *url.URL
	httpClient HTTPClient
	header     http.Header
	// params are sent with every request, apikey included.
	params url.Values
	logger *zap.Logger
}

// APIClientOption configures an APIClient. Options are applied in order and
// the first failing one aborts NewAPIClient.
type APIClientOption func(*APIClient) error

// WithBaseURL points the client at another deployment, e.g. a local stub.
// The URL must be absolute http(s); a path prefix is kept.
func WithBaseURL(raw string) APIClientOption {
	return func(c *APIClient) error {
		u, err := parseBaseURL(raw)
		if err != nil {
			return err
		}
		c.endpoint = u
		return nil
	}
}

func WithHTTPClient(httpClient HTTPClient) APIClientOption {
	return func(c *APIClient) error {
		if httpClient == nil {
			return ErrNilHTTPClient
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithHeader adds headers sent with each request.
func WithHeader(header http.Header) APIClientOption {
	return func(c *APIClient) error {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
		return nil
	}
}

// WithLogger sets the logger used for request tracing. nil keeps the no-op logger.
func WithLogger(logger *zap.Logger) APIClientOption {
	return func(c *APIClient) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// NewAPIClient builds a client for key. An empty key is sent as no key at
// all, which the API answers with an Information notice.
func NewAPIClient(key string, options ...APIClientOption) (*APIClient, error) {
	endpoint, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	client := &APIClient{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		params:     url.Values{},
		logger:     zap.NewNop(),
	}
	if key = strings.TrimSpace(key); key != "" {
		client.params.Set("apikey", key)
	}
	for _, option := range options {
		if err := option(client); err != nil {
			return nil, fmt.Errorf("alphavantage client: %w", err)
		}
	}
	return client, nil
}

// parseBaseURL returns the /query endpoint below raw.
func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q needs an http or https scheme", ErrInvalidBaseURL, raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidBaseURL, raw)
	}
	u.RawQuery, u.Fragment = "", ""
	return u.JoinPath("query"), nil
}
