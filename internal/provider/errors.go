package provider

import "errors"

var (
	// ErrProviderThrottled means the provider answered with its rate-limit or demo notice.
	ErrProviderThrottled = errors.New("provider throttled")
	// ErrProviderUnreachable covers transport failures, timeouts and non-2xx answers.
	ErrProviderUnreachable = errors.New("provider unreachable")
	// ErrProviderDataMissing means an expected field or series was absent or malformed.
	ErrProviderDataMissing = errors.New("provider data missing")
	// ErrNoQuoteForDate means the series has no entry for the requested day.
	ErrNoQuoteForDate = errors.New("no quote for date")
	// ErrInvalidPurchase rejects a gains request without a positive amount and a date.
	ErrInvalidPurchase = errors.New("invalid purchase")
	// ErrInvalidArgument rejects empty symbols and malformed date ranges.
	ErrInvalidArgument = errors.New("invalid argument")
)
