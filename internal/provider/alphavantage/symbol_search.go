package alphavantage

import (
	"context"
	"fmt"
	"net/url"

	"stockquotes/internal/provider"
)

// SearchMatch is one entry of the "bestMatches" array.
type SearchMatch struct {
	Symbol      string `json:"1. symbol"`
	Name        string `json:"2. name"`
	Type        string `json:"3. type"`
	Region      string `json:"4. region"`
	MarketOpen  string `json:"5. marketOpen"`
	MarketClose string `json:"6. marketClose"`
	TimeZone    string `json:"7. timezone"`
	Currency    string `json:"8. currency"`
	MatchScore  string `json:"9. matchScore"`
}

// SymbolSearch runs the SYMBOL_SEARCH endpoint. Matches are returned in
// provider order, which is descending match score.
func (c *APIClient) SymbolSearch(ctx context.Context, keywords string) ([]SearchMatch, error) {
	body, err := c.query(ctx, url.Values{
		"function": {"SYMBOL_SEARCH"},
		"keywords": {keywords},
	})
	if err != nil {
		return nil, err
	}

	var matches []SearchMatch
	found, err := decodeField(body, "bestMatches", &matches)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: bestMatches", provider.ErrProviderDataMissing)
	}
	if matches == nil {
		matches = []SearchMatch{}
	}
	return matches, nil
}
