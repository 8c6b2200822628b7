package provider

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is the latest known price for a symbol.
// Prices are decimals to avoid float rounding; PricedAt is always UTC.
type Quote struct {
	Name      string          `json:"name"`
	LastPrice decimal.Decimal `json:"lastPrice"`
	PricedAt  time.Time       `json:"pricedAt"`
}

// PointInTimeQuote is a Quote selected by calendar day rather than recency.
type PointInTimeQuote Quote

// DailyPricePoint is one trading day of a historical series.
type DailyPricePoint struct {
	PricedAt time.Time       `json:"pricedAt"`
	Opening  decimal.Decimal `json:"opening"`
	Closing  decimal.Decimal `json:"closing"`
	High     decimal.Decimal `json:"high"`
	Low      decimal.Decimal `json:"low"`
}

// HistoricalSeries holds at most one DailyPricePoint per calendar day.
type HistoricalSeries struct {
	Name   string            `json:"name"`
	Prices []DailyPricePoint `json:"prices"`
}

// SymbolMatch is a search candidate. Only Symbol is guaranteed.
type SymbolMatch struct {
	Symbol     string `json:"symbol"`
	Name       string `json:"name,omitempty"`
	Type       string `json:"type,omitempty"`
	Region     string `json:"region,omitempty"`
	Currency   string `json:"currency,omitempty"`
	MatchScore string `json:"matchScore,omitempty"`
}

// LastQuoteGetter returns the latest quote of a symbol.
type LastQuoteGetter interface {
	GetLastQuote(ctx context.Context, symbol string) (Quote, error)
}

// HistoryGetter returns the daily prices of a symbol within [from, to].
type HistoryGetter interface {
	GetHistory(ctx context.Context, symbol string, from, to time.Time) (HistoricalSeries, error)
}

// QuoteOnDateGetter returns the closing price of a symbol on a calendar day.
type QuoteOnDateGetter interface {
	GetQuoteOnDate(ctx context.Context, symbol string, date time.Time) (PointInTimeQuote, error)
}

// SymbolSearcher returns symbols matching a free-text query, best match first.
type SymbolSearcher interface {
	SearchSymbols(ctx context.Context, query string) ([]SymbolMatch, error)
}
