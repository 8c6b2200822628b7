package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"stockquotes/internal/provider"
)

// maxConcurrentQuotes bounds the in-flight fetches of a single comparison.
const maxConcurrentQuotes = 8

// ComparisonResult holds the base quote and one quote per compared symbol,
// in request order.
type ComparisonResult struct {
	BaseQuote  provider.Quote   `json:"baseQuote"`
	LastPrices []provider.Quote `json:"lastPrices"`
}

// Compare fetches the latest quote of a base symbol and of the symbols it is
// compared against.
type Compare struct {
	quotes provider.LastQuoteGetter
}

func NewCompare(quotes provider.LastQuoteGetter) *Compare {
	return &Compare{quotes: quotes}
}

// Compare fails as a whole on the first failing symbol; the remaining fetches
// are canceled.
func (u *Compare) Compare(ctx context.Context, base string, symbols []string) (ComparisonResult, error) {
	all := make([]string, 0, len(symbols)+1)
	for _, raw := range append([]string{base}, symbols...) {
		symbol, err := requireSymbol(raw)
		if err != nil {
			return ComparisonResult{}, err
		}
		all = append(all, symbol)
	}

	quotes := make([]provider.Quote, len(all))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQuotes)
	for i, symbol := range all {
		g.Go(func() error {
			q, err := u.quotes.GetLastQuote(ctx, symbol)
			if err != nil {
				return err
			}
			quotes[i] = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ComparisonResult{}, err
	}

	return ComparisonResult{BaseQuote: quotes[0], LastPrices: quotes[1:]}, nil
}
