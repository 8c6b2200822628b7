package app_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockquotes/internal/app"
	"stockquotes/internal/config"
)

func TestBuild_ServesFromCache(t *testing.T) {
	t.Parallel()

	// Arrange: a fake upstream answering with the intraday fixture
	body, err := os.ReadFile("../provider/alphavantage/fixtures/intraday_1min.json")
	require.NoError(t, err)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "demo", r.URL.Query().Get("apikey"))
		assert.Equal(t, "TIME_SERIES_INTRADAY", r.URL.Query().Get("function"))
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.AlphaVantage.APIKey = "demo"
	cfg.AlphaVantage.BaseURL = srv.URL
	cfg.AlphaVantage.MaxRequestsPerMinute = 600
	cfg.Cache.Backend = "memory"

	services, err := app.Build(cfg, nil)
	require.NoError(t, err)
	defer services.Close()

	// Act
	first, err := services.LastQuote.LastQuote(t.Context(), "IBM")
	require.NoError(t, err)
	second, err := services.LastQuote.LastQuote(t.Context(), "IBM")
	require.NoError(t, err)

	// Assert
	require.Equal(t, "IBM", first.Name)
	require.Equal(t, "150.15", first.LastPrice.String())
	require.True(t, first.LastPrice.Equal(second.LastPrice))
	require.Equal(t, int32(1), calls.Load())
}

func TestBuild_UnknownCacheBackend(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Cache.Backend = "memcached"

	_, err := app.Build(cfg, nil)
	require.ErrorContains(t, err, "memcached")
}
