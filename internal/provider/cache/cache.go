// Package cache serves repeated provider lookups from a Store for a TTL.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"stockquotes/internal/dates"
	"stockquotes/internal/provider"
)

// Upstream is the set of capabilities the cache can sit in front of.
type Upstream interface {
	provider.LastQuoteGetter
	provider.HistoryGetter
	provider.QuoteOnDateGetter
	provider.SymbolSearcher
}

// Provider caches successful results of P for TTL. Failures are passed
// through and never stored; a failing Store degrades to a direct call.
type Provider struct {
	P      Upstream
	Store  Store
	TTL    time.Duration
	Logger *zap.Logger
}

var (
	_ provider.LastQuoteGetter   = (*Provider)(nil)
	_ provider.HistoryGetter     = (*Provider)(nil)
	_ provider.QuoteOnDateGetter = (*Provider)(nil)
	_ provider.SymbolSearcher    = (*Provider)(nil)
)

func (c *Provider) GetLastQuote(ctx context.Context, symbol string) (provider.Quote, error) {
	return lookup(ctx, c, "quote:"+symbol, func() (provider.Quote, error) {
		return c.P.GetLastQuote(ctx, symbol)
	})
}

func (c *Provider) GetHistory(ctx context.Context, symbol string, from, to time.Time) (provider.HistoricalSeries, error) {
	key := "history:" + symbol + ":" + dates.Day(from).Format(dates.DateLayout) + ":" + dates.Day(to).Format(dates.DateLayout)
	return lookup(ctx, c, key, func() (provider.HistoricalSeries, error) {
		return c.P.GetHistory(ctx, symbol, from, to)
	})
}

func (c *Provider) GetQuoteOnDate(ctx context.Context, symbol string, date time.Time) (provider.PointInTimeQuote, error) {
	key := "ondate:" + symbol + ":" + dates.Day(date).Format(dates.DateLayout)
	return lookup(ctx, c, key, func() (provider.PointInTimeQuote, error) {
		return c.P.GetQuoteOnDate(ctx, symbol, date)
	})
}

func (c *Provider) SearchSymbols(ctx context.Context, query string) ([]provider.SymbolMatch, error) {
	return lookup(ctx, c, "search:"+strings.ToLower(query), func() ([]provider.SymbolMatch, error) {
		return c.P.SearchSymbols(ctx, query)
	})
}

func lookup[T any](ctx context.Context, c *Provider, key string, fetch func() (T, error)) (T, error) {
	if c.Store == nil || c.TTL <= 0 {
		return fetch()
	}
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if b, ok, err := c.Store.Get(ctx, key); err != nil {
		logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			logger.Debug("cache hit", zap.String("key", key))
			return v, nil
		}
		logger.Warn("cache entry undecodable", zap.String("key", key))
	}

	v, err := fetch()
	if err != nil {
		return v, err
	}

	b, err := json.Marshal(v)
	if err != nil {
		logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return v, nil
	}
	if err := c.Store.Set(ctx, key, b, c.TTL); err != nil {
		logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return v, nil
}
