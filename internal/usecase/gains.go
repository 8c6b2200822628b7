package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"stockquotes/internal/provider"
)

// GainsResult reports the capital gains of a purchase at today's price.
type GainsResult struct {
	Name            string          `json:"name"`
	PurchasedAmount decimal.Decimal `json:"purchasedAmount"`
	PurchasedAt     time.Time       `json:"purchasedAt"`
	PriceAtDate     decimal.Decimal `json:"priceAtDate"`
	LastPrice       decimal.Decimal `json:"lastPrice"`
	CurrentValue    decimal.Decimal `json:"currentValue"`
	CapitalGains    decimal.Decimal `json:"capitalGains"`
}

// Gains values a purchase made on a past day.
type Gains struct {
	last   provider.LastQuoteGetter
	onDate provider.QuoteOnDateGetter
}

func NewGains(last provider.LastQuoteGetter, onDate provider.QuoteOnDateGetter) *Gains {
	return &Gains{last: last, onDate: onDate}
}

// Gains computes
//
//	currentValue = lastPrice * amount
//	capitalGains = (lastPrice - priceAtDate) * amount
//
// where priceAtDate is the close on purchasedAt.
func (u *Gains) Gains(ctx context.Context, symbol string, amount decimal.Decimal, purchasedAt time.Time) (GainsResult, error) {
	if !amount.IsPositive() {
		return GainsResult{}, fmt.Errorf("%w: purchased amount must be positive, got %s", provider.ErrInvalidPurchase, amount)
	}
	if purchasedAt.IsZero() {
		return GainsResult{}, fmt.Errorf("%w: purchase date is required", provider.ErrInvalidPurchase)
	}
	symbol, err := requireSymbol(symbol)
	if err != nil {
		return GainsResult{}, err
	}

	var (
		atDate provider.PointInTimeQuote
		last   provider.Quote
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		atDate, err = u.onDate.GetQuoteOnDate(gctx, symbol, purchasedAt)
		return err
	})
	g.Go(func() (err error) {
		last, err = u.last.GetLastQuote(gctx, symbol)
		return err
	})
	if err := g.Wait(); err != nil {
		return GainsResult{}, err
	}

	return GainsResult{
		Name:            symbol,
		PurchasedAmount: amount,
		PurchasedAt:     purchasedAt,
		PriceAtDate:     atDate.LastPrice,
		LastPrice:       last.LastPrice,
		CurrentValue:    last.LastPrice.Mul(amount),
		CapitalGains:    last.LastPrice.Sub(atDate.LastPrice).Mul(amount),
	}, nil
}
