package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"stockquotes/internal/provider"
)

const baseURL = "https://www.alphavantage.co"

// Top-level keys the API uses instead of a payload when it refuses to serve.
const (
	noteKey         = "Note"
	informationKey  = "Information"
	errorMessageKey = "Error Message"
)

// query performs one GET against /query and returns the top-level fields of
// the JSON object. The throttle notice is checked here, before any caller
// reads a field.
func (c *APIClient) query(ctx context.Context, params url.Values) (map[string]json.RawMessage, error) {
	query := maps.Clone(c.params)
	for key, values := range params {
		query[key] = values
	}

	endpoint := *c.endpoint
	endpoint.RawQuery = query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w: %w", provider.ErrProviderUnreachable, err)
	}
	req.Header = c.header.Clone()

	logger := c.logger.With(zap.String("function", params.Get("function")))
	logger.Debug("alphavantage request", zap.String("symbol", params.Get("symbol")), zap.String("keywords", params.Get("keywords")))

	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("alphavantage request failed", zap.Error(err))
		return nil, fmt.Errorf("performing request: %w: %w", provider.ErrProviderUnreachable, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status code %d", provider.ErrProviderThrottled, res.StatusCode)
	case res.StatusCode < 200 || res.StatusCode >= 300:
		b, _ := io.ReadAll(io.LimitReader(res.Body, 2<<10))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", provider.ErrProviderUnreachable, res.StatusCode, strings.TrimSpace(string(b)))
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		// a body cut short by a deadline is a transport failure, not bad data
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("reading response: %w: %w", provider.ErrProviderUnreachable, err)
		}
		return nil, fmt.Errorf("decoding response: %w: %w", provider.ErrProviderDataMissing, err)
	}
	if body == nil {
		return nil, fmt.Errorf("%w: empty response", provider.ErrProviderDataMissing)
	}

	if notice := stringField(body, noteKey, informationKey); notice != "" {
		logger.Warn("alphavantage throttled", zap.String("notice", notice))
		return nil, fmt.Errorf("%w: %s", provider.ErrProviderThrottled, notice)
	}
	if msg := stringField(body, errorMessageKey); msg != "" {
		return nil, fmt.Errorf("%w: %s", provider.ErrProviderDataMissing, msg)
	}
	return body, nil
}

// stringField returns the first non-empty string value among keys.
func stringField(body map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		raw, ok := body[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			// not a string but present: surface it verbatim
			s = string(raw)
		}
		if s = strings.TrimSpace(s); s != "" && s != "null" {
			return s
		}
	}
	return ""
}

// decodeField unmarshals body[key] into dst. A missing or null key leaves dst
// untouched and reports false.
func decodeField(body map[string]json.RawMessage, key string, dst any) (bool, error) {
	raw, ok := body[key]
	if !ok || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decoding %q: %w: %w", key, provider.ErrProviderDataMissing, err)
	}
	return true, nil
}
