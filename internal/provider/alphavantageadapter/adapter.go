package alphavantageadapter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stockquotes/internal/dates"
	"stockquotes/internal/provider"
	"stockquotes/internal/provider/alphavantage"
)

type Config struct {
	// Interval of the intraday series read by GetLastQuote, default: 1min.
	Interval alphavantage.Interval
	// DailyOutputSize of the daily series, default: full.
	DailyOutputSize alphavantage.OutputSize
}

// Adapter maps Alpha Vantage envelopes onto the provider models. It holds no
// state besides its configuration and is safe for concurrent use.
type Adapter struct {
	cfg    Config
	client *alphavantage.APIClient
}

var (
	_ provider.LastQuoteGetter   = (*Adapter)(nil)
	_ provider.HistoryGetter     = (*Adapter)(nil)
	_ provider.QuoteOnDateGetter = (*Adapter)(nil)
	_ provider.SymbolSearcher    = (*Adapter)(nil)
)

func New(cfg Config, client *alphavantage.APIClient) *Adapter {
	if cfg.Interval == "" {
		cfg.Interval = alphavantage.Interval1Min
	}
	if cfg.DailyOutputSize == "" {
		cfg.DailyOutputSize = alphavantage.OutputFull
	}
	return &Adapter{cfg: cfg, client: client}
}

// GetLastQuote reports the close of the bar the series marks as last refreshed.
func (a *Adapter) GetLastQuote(ctx context.Context, symbol string) (provider.Quote, error) {
	data, err := a.client.TimeSeriesIntraday(ctx, symbol, a.cfg.Interval, alphavantage.OutputCompact)
	if err != nil {
		return provider.Quote{}, err
	}
	if data.Meta == nil {
		return provider.Quote{}, fmt.Errorf("%w: no meta data for %s", provider.ErrProviderDataMissing, symbol)
	}
	if data.Series == nil {
		return provider.Quote{}, fmt.Errorf("%w: no %s series for %s", provider.ErrProviderDataMissing, a.cfg.Interval, symbol)
	}

	lastRefreshed := data.Meta.LastRefreshed
	bar, ok := data.Series[lastRefreshed]
	if !ok {
		return provider.Quote{}, fmt.Errorf("%w: no bar at last refreshed %q for %s", provider.ErrProviderDataMissing, lastRefreshed, symbol)
	}

	pricedAt, err := dates.NormalizeIn(lastRefreshed, dates.LoadLocation(data.Meta.TimeZone))
	if err != nil {
		return provider.Quote{}, fmt.Errorf("%w: %w", provider.ErrProviderDataMissing, err)
	}
	price, err := parsePrice("close", bar.Close)
	if err != nil {
		return provider.Quote{}, err
	}
	return provider.Quote{Name: symbol, LastPrice: price, PricedAt: pricedAt}, nil
}

// GetHistory returns the daily bars whose calendar day is within [from, to],
// oldest first.
func (a *Adapter) GetHistory(ctx context.Context, symbol string, from, to time.Time) (provider.HistoricalSeries, error) {
	days, err := a.dailySeries(ctx, symbol)
	if err != nil {
		return provider.HistoricalSeries{}, err
	}

	from, to = dates.Day(from), dates.Day(to)
	prices := make([]provider.DailyPricePoint, 0, len(days))
	for _, d := range days {
		if d.day.Before(from) || d.day.After(to) {
			continue
		}
		point, err := pricePoint(d)
		if err != nil {
			return provider.HistoricalSeries{}, err
		}
		prices = append(prices, point)
	}
	return provider.HistoricalSeries{Name: symbol, Prices: prices}, nil
}

// GetQuoteOnDate returns the close of the calendar day matching date. When
// several keys fall on that day the earliest key wins.
func (a *Adapter) GetQuoteOnDate(ctx context.Context, symbol string, date time.Time) (provider.PointInTimeQuote, error) {
	days, err := a.dailySeries(ctx, symbol)
	if err != nil {
		return provider.PointInTimeQuote{}, err
	}

	for _, d := range days {
		if !dates.SameDay(d.day, date) {
			continue
		}
		price, err := parsePrice("close", d.bar.Close)
		if err != nil {
			return provider.PointInTimeQuote{}, err
		}
		return provider.PointInTimeQuote{Name: symbol, LastPrice: price, PricedAt: d.day}, nil
	}
	return provider.PointInTimeQuote{}, fmt.Errorf("%w: %s on %s", provider.ErrNoQuoteForDate, symbol, dates.Day(date).Format(dates.DateLayout))
}

// SearchSymbols returns the matching symbols in provider order.
func (a *Adapter) SearchSymbols(ctx context.Context, query string) ([]provider.SymbolMatch, error) {
	matches, err := a.client.SymbolSearch(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]provider.SymbolMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, provider.SymbolMatch{
			Symbol:     m.Symbol,
			Name:       m.Name,
			Type:       m.Type,
			Region:     m.Region,
			Currency:   m.Currency,
			MatchScore: m.MatchScore,
		})
	}
	return out, nil
}

// dailyEntry is a bar with its key already normalized to a calendar day.
type dailyEntry struct {
	day time.Time
	bar alphavantage.DailyBar
}

// dailySeries fetches the daily series and returns one entry per calendar day
// in ascending key order. Keys are scanned without assuming the provider
// sorted them; if two keys land on the same day the first one is kept.
func (a *Adapter) dailySeries(ctx context.Context, symbol string) ([]dailyEntry, error) {
	data, err := a.client.TimeSeriesDailyAdjusted(ctx, symbol, a.cfg.DailyOutputSize)
	if err != nil {
		return nil, err
	}
	if data.Series == nil {
		return nil, fmt.Errorf("%w: no daily series for %s", provider.ErrProviderDataMissing, symbol)
	}

	out := make([]dailyEntry, 0, len(data.Series))
	seen := make(map[time.Time]struct{}, len(data.Series))
	for _, key := range slices.Sorted(maps.Keys(data.Series)) {
		day, err := dates.Normalize(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", provider.ErrProviderDataMissing, err)
		}
		day = dates.Day(day)
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, dailyEntry{day: day, bar: data.Series[key]})
	}
	return out, nil
}

func pricePoint(d dailyEntry) (provider.DailyPricePoint, error) {
	var (
		p   = provider.DailyPricePoint{PricedAt: d.day}
		err error
	)
	if p.Opening, err = parsePrice("open", d.bar.Open); err != nil {
		return p, err
	}
	if p.Closing, err = parsePrice("close", d.bar.Close); err != nil {
		return p, err
	}
	if p.High, err = parsePrice("high", d.bar.High); err != nil {
		return p, err
	}
	if p.Low, err = parsePrice("low", d.bar.Low); err != nil {
		return p, err
	}
	return p, nil
}

// parsePrice reads a provider price string; negative values are rejected.
func parsePrice(field, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %q: %w", provider.ErrProviderDataMissing, field, raw, err)
	}
	if v.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative %s %q", provider.ErrProviderDataMissing, field, raw)
	}
	return v, nil
}
