package alphavantage

import (
	"context"
	"fmt"
	"net/url"
)

// Interval is the bar width of an intraday series.
type Interval string

const (
	Interval1Min  Interval = "1min"
	Interval5Min  Interval = "5min"
	Interval15Min Interval = "15min"
	Interval30Min Interval = "30min"
	Interval60Min Interval = "60min"
)

// OutputSize selects the latest 100 points (compact) or the whole history (full).
type OutputSize string

const (
	OutputCompact OutputSize = "compact"
	OutputFull    OutputSize = "full"
)

const dailySeriesKey = "Time Series (Daily)"

// IntradayMeta is the "Meta Data" block of an intraday series.
type IntradayMeta struct {
	Information   string `json:"1. Information"`
	Symbol        string `json:"2. Symbol"`
	LastRefreshed string `json:"3. Last Refreshed"`
	Interval      string `json:"4. Interval"`
	OutputSize    string `json:"5. Output Size"`
	TimeZone      string `json:"6. Time Zone"`
}

// IntradayBar is one entry of an intraday series. Values are kept as the
// provider sends them, as strings.
type IntradayBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// IntradaySeries is a TIME_SERIES_INTRADAY response. Meta and Series are nil
// when the provider omitted them.
type IntradaySeries struct {
	Meta   *IntradayMeta
	Series map[string]IntradayBar
}

// DailyMeta is the "Meta Data" block of a daily series.
type DailyMeta struct {
	Information   string `json:"1. Information"`
	Symbol        string `json:"2. Symbol"`
	LastRefreshed string `json:"3. Last Refreshed"`
	OutputSize    string `json:"4. Output Size"`
	TimeZone      string `json:"5. Time Zone"`
}

// DailyBar is one trading day of a TIME_SERIES_DAILY_ADJUSTED series.
type DailyBar struct {
	Open             string `json:"1. open"`
	High             string `json:"2. high"`
	Low              string `json:"3. low"`
	Close            string `json:"4. close"`
	AdjustedClose    string `json:"5. adjusted close"`
	Volume           string `json:"6. volume"`
	DividendAmount   string `json:"7. dividend amount"`
	SplitCoefficient string `json:"8. split coefficient"`
}

// DailySeries is a TIME_SERIES_DAILY_ADJUSTED response keyed by "YYYY-MM-DD".
type DailySeries struct {
	Meta   *DailyMeta
	Series map[string]DailyBar
}

// TimeSeriesIntraday retrieves an intraday series for symbol.
func (c *APIClient) TimeSeriesIntraday(ctx context.Context, symbol string, interval Interval, size OutputSize) (*IntradaySeries, error) {
	body, err := c.query(ctx, url.Values{
		"function":   {"TIME_SERIES_INTRADAY"},
		"symbol":     {symbol},
		"interval":   {string(interval)},
		"outputsize": {string(size)},
	})
	if err != nil {
		return nil, err
	}

	var out IntradaySeries
	if _, err := decodeField(body, "Meta Data", &out.Meta); err != nil {
		return nil, err
	}
	// the series key carries the interval, e.g. "Time Series (1min)"
	if _, err := decodeField(body, fmt.Sprintf("Time Series (%s)", interval), &out.Series); err != nil {
		return nil, err
	}
	return &out, nil
}

// TimeSeriesDailyAdjusted retrieves the daily adjusted series for symbol.
func (c *APIClient) TimeSeriesDailyAdjusted(ctx context.Context, symbol string, size OutputSize) (*DailySeries, error) {
	body, err := c.query(ctx, url.Values{
		"function":   {"TIME_SERIES_DAILY_ADJUSTED"},
		"symbol":     {symbol},
		"outputsize": {string(size)},
	})
	if err != nil {
		return nil, err
	}

	var out DailySeries
	if _, err := decodeField(body, "Meta Data", &out.Meta); err != nil {
		return nil, err
	}
	if _, err := decodeField(body, dailySeriesKey, &out.Series); err != nil {
		return nil, err
	}
	return &out, nil
}
