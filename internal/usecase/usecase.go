// Package usecase derives comparisons, point-in-time lookups and capital
// gains from provider data. Each usecase depends on the single provider
// capability it needs and propagates provider errors unchanged.
package usecase

//go:generate mockgen -package=usecase_test -destination=mock_provider_test.go -source=../provider/provider.go

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stockquotes/internal/dates"
	"stockquotes/internal/provider"
)

// LastQuote returns the latest quote of a symbol.
type LastQuote struct {
	quotes provider.LastQuoteGetter
}

func NewLastQuote(quotes provider.LastQuoteGetter) *LastQuote {
	return &LastQuote{quotes: quotes}
}

func (u *LastQuote) LastQuote(ctx context.Context, symbol string) (provider.Quote, error) {
	symbol, err := requireSymbol(symbol)
	if err != nil {
		return provider.Quote{}, err
	}
	return u.quotes.GetLastQuote(ctx, symbol)
}

// History returns the daily prices of a symbol over a range of calendar days.
type History struct {
	history provider.HistoryGetter
}

func NewHistory(history provider.HistoryGetter) *History {
	return &History{history: history}
}

func (u *History) History(ctx context.Context, symbol string, from, to time.Time) (provider.HistoricalSeries, error) {
	symbol, err := requireSymbol(symbol)
	if err != nil {
		return provider.HistoricalSeries{}, err
	}
	if from.IsZero() || to.IsZero() {
		return provider.HistoricalSeries{}, fmt.Errorf("%w: from and to are required", provider.ErrInvalidArgument)
	}
	if dates.Day(from).After(dates.Day(to)) {
		return provider.HistoricalSeries{}, fmt.Errorf("%w: from %s is after to %s", provider.ErrInvalidArgument, from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	return u.history.GetHistory(ctx, symbol, from, to)
}

// QuoteOnDate returns the price of a symbol on a calendar day.
type QuoteOnDate struct {
	quotes provider.QuoteOnDateGetter
}

func NewQuoteOnDate(quotes provider.QuoteOnDateGetter) *QuoteOnDate {
	return &QuoteOnDate{quotes: quotes}
}

func (u *QuoteOnDate) QuoteOnDate(ctx context.Context, symbol string, date time.Time) (provider.PointInTimeQuote, error) {
	symbol, err := requireSymbol(symbol)
	if err != nil {
		return provider.PointInTimeQuote{}, err
	}
	if date.IsZero() {
		return provider.PointInTimeQuote{}, fmt.Errorf("%w: date is required", provider.ErrInvalidArgument)
	}
	return u.quotes.GetQuoteOnDate(ctx, symbol, date)
}

// Search lists the symbols matching a free-text query.
type Search struct {
	searcher provider.SymbolSearcher
}

func NewSearch(searcher provider.SymbolSearcher) *Search {
	return &Search{searcher: searcher}
}

func (u *Search) Search(ctx context.Context, query string) ([]provider.SymbolMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", provider.ErrInvalidArgument)
	}
	return u.searcher.SearchSymbols(ctx, query)
}

func requireSymbol(symbol string) (string, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return "", fmt.Errorf("%w: symbol is required", provider.ErrInvalidArgument)
	}
	return symbol, nil
}
