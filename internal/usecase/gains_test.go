package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"stockquotes/internal/provider"
	"stockquotes/internal/usecase"
)

func TestGains(t *testing.T) {
	t.Parallel()

	// Arrange: bought at 100, now at 125.50
	ctrl := gomock.NewController(t)
	last := NewMockLastQuoteGetter(ctrl)
	onDate := NewMockQuoteOnDateGetter(ctrl)

	purchasedAt := time.Date(2021, 6, 9, 0, 0, 0, 0, time.UTC)
	onDate.EXPECT().
		GetQuoteOnDate(gomock.Any(), "IBM", purchasedAt).
		Return(provider.PointInTimeQuote{Name: "IBM", LastPrice: decimal.NewFromInt(100), PricedAt: purchasedAt}, nil).
		Times(1)
	last.EXPECT().
		GetLastQuote(gomock.Any(), "IBM").
		Return(provider.Quote{Name: "IBM", LastPrice: decimal.RequireFromString("125.50")}, nil).
		Times(1)

	// Act
	result, err := usecase.NewGains(last, onDate).Gains(t.Context(), "IBM", decimal.NewFromInt(4), purchasedAt)
	require.NoError(t, err)

	// Assert
	require.Equal(t, "IBM", result.Name)
	require.Equal(t, purchasedAt, result.PurchasedAt)
	require.True(t, decimal.NewFromInt(4).Equal(result.PurchasedAmount))
	require.True(t, decimal.NewFromInt(100).Equal(result.PriceAtDate))
	require.True(t, decimal.RequireFromString("125.5").Equal(result.LastPrice))
	require.True(t, decimal.NewFromInt(502).Equal(result.CurrentValue), result.CurrentValue.String())
	require.True(t, decimal.NewFromInt(102).Equal(result.CapitalGains), result.CapitalGains.String())
}

func TestGains_Loss(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	last := NewMockLastQuoteGetter(ctrl)
	onDate := NewMockQuoteOnDateGetter(ctrl)

	onDate.EXPECT().GetQuoteOnDate(gomock.Any(), "IBM", gomock.Any()).
		Return(provider.PointInTimeQuote{LastPrice: decimal.RequireFromString("10.25")}, nil)
	last.EXPECT().GetLastQuote(gomock.Any(), "IBM").
		Return(provider.Quote{LastPrice: decimal.RequireFromString("8.00")}, nil)

	result, err := usecase.NewGains(last, onDate).Gains(t.Context(), "IBM", decimal.RequireFromString("1.5"), time.Date(2021, 6, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("-3.375").Equal(result.CapitalGains), result.CapitalGains.String())
	require.True(t, decimal.NewFromInt(12).Equal(result.CurrentValue), result.CurrentValue.String())
}

func TestGains_InvalidPurchase(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	last := NewMockLastQuoteGetter(ctrl)
	onDate := NewMockQuoteOnDateGetter(ctrl)
	last.EXPECT().GetLastQuote(gomock.Any(), gomock.Any()).Times(0)
	onDate.EXPECT().GetQuoteOnDate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	u := usecase.NewGains(last, onDate)
	day := time.Date(2021, 6, 9, 0, 0, 0, 0, time.UTC)

	_, err := u.Gains(t.Context(), "IBM", decimal.Zero, day)
	require.ErrorIs(t, err, provider.ErrInvalidPurchase)

	_, err = u.Gains(t.Context(), "IBM", decimal.NewFromInt(-1), day)
	require.ErrorIs(t, err, provider.ErrInvalidPurchase)

	_, err = u.Gains(t.Context(), "IBM", decimal.NewFromInt(1), time.Time{})
	require.ErrorIs(t, err, provider.ErrInvalidPurchase)
}

func TestGains_PropagatesNoQuoteForDate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	last := NewMockLastQuoteGetter(ctrl)
	onDate := NewMockQuoteOnDateGetter(ctrl)
	onDate.EXPECT().GetQuoteOnDate(gomock.Any(), "IBM", gomock.Any()).
		Return(provider.PointInTimeQuote{}, provider.ErrNoQuoteForDate)
	last.EXPECT().GetLastQuote(gomock.Any(), "IBM").
		Return(provider.Quote{LastPrice: decimal.NewFromInt(1)}, nil).
		AnyTimes()

	_, err := usecase.NewGains(last, onDate).Gains(t.Context(), "IBM", decimal.NewFromInt(1), time.Date(2021, 6, 5, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, provider.ErrNoQuoteForDate)
}
