// Package app assembles the provider stack and usecases from configuration.
package app

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"stockquotes/internal/config"
	"stockquotes/internal/httpx"
	"stockquotes/internal/provider/alphavantage"
	"stockquotes/internal/provider/alphavantageadapter"
	"stockquotes/internal/provider/cache"
	"stockquotes/internal/provider/ratelimit"
	"stockquotes/internal/usecase"
)

// Services exposes the usecases served by the binaries.
type Services struct {
	LastQuote   *usecase.LastQuote
	Compare     *usecase.Compare
	History     *usecase.History
	QuoteOnDate *usecase.QuoteOnDate
	Gains       *usecase.Gains
	Search      *usecase.Search

	closers []func() error
}

// Close releases connections held by the provider stack.
func (s *Services) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Build wires transport, rate limiting, the Alpha Vantage adapter and the
// optional cache, in that order from the wire up.
func Build(cfg config.Config, logger *zap.Logger) (*Services, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	av := cfg.AlphaVantage

	transport := httpx.New(time.Duration(av.TimeoutSec) * time.Second)
	var doer alphavantage.HTTPClient = transport
	if ls := limiters(av); len(ls) > 0 {
		doer = &ratelimit.Client{Next: transport, Limiters: ls}
	}

	opts := []alphavantage.APIClientOption{
		alphavantage.WithHTTPClient(doer),
		alphavantage.WithHeader(http.Header{"Accept": []string{"application/json"}}),
		alphavantage.WithLogger(logger.Named("alphavantage")),
	}
	if av.BaseURL != "" {
		opts = append(opts, alphavantage.WithBaseURL(av.BaseURL))
	}
	client, err := alphavantage.NewAPIClient(av.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("alphavantage client: %w", err)
	}

	var upstream cache.Upstream = alphavantageadapter.New(alphavantageadapter.Config{}, client)
	s := &Services{}

	store, closer, err := buildStore(cfg.Cache)
	if err != nil {
		return nil, err
	}
	if store != nil && cfg.Cache.TTLSeconds > 0 {
		upstream = &cache.Provider{
			P:      upstream,
			Store:  store,
			TTL:    time.Duration(cfg.Cache.TTLSeconds) * time.Second,
			Logger: logger.Named("cache"),
		}
		logger.Info("response cache enabled",
			zap.String("backend", cfg.Cache.Backend),
			zap.Int("ttl_sec", cfg.Cache.TTLSeconds))
	}
	if closer != nil {
		s.closers = append(s.closers, closer)
	}

	s.LastQuote = usecase.NewLastQuote(upstream)
	s.Compare = usecase.NewCompare(upstream)
	s.History = usecase.NewHistory(upstream)
	s.QuoteOnDate = usecase.NewQuoteOnDate(upstream)
	s.Gains = usecase.NewGains(upstream, upstream)
	s.Search = usecase.NewSearch(upstream)
	return s, nil
}

// limiters prefers a token bucket sized by requests per minute and falls back
// to a fixed minimum interval.
func limiters(av config.AlphaVantage) []ratelimit.Limiter {
	if tb := ratelimit.NewPerMinute(av.MaxRequestsPerMinute, av.Burst); tb != nil {
		return []ratelimit.Limiter{tb}
	}
	if av.MinRequestIntervalSec > 0 {
		return []ratelimit.Limiter{&ratelimit.MinInterval{Interval: time.Duration(av.MinRequestIntervalSec) * time.Second}}
	}
	return nil
}

func buildStore(cfg config.Cache) (cache.Store, func() error, error) {
	switch cfg.Backend {
	case "":
		return nil, nil, nil
	case "memory":
		return cache.NewMemoryStore(cfg.MaxItems), nil, nil
	case "redis":
		rs := cache.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, "stockquotes:")
		if err := rs.Ping(); err != nil {
			_ = rs.Close()
			return nil, nil, err
		}
		return rs, rs.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
