package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public quote endpoint queried for spot prices.
const DefaultBaseURL = "https://api.coingecko.com"

// Client fetches the current spot price for an asset/currency pair. It lives
// entirely on the caller side of the engine boundary: the projection engine
// never performs network I/O, and a failed fetch falls back to whatever
// manual price the configuration carries.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client against the default endpoint.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Spot returns the current price of the asset in the given currency.
func (c *Client) Spot(ctx context.Context, asset, currency string) (decimal.Decimal, error) {
	asset = strings.ToLower(asset)
	currency = strings.ToLower(currency)

	endpoint := fmt.Sprintf("%s/api/v3/simple/price?ids=%s&vs_currencies=%s",
		c.BaseURL, url.QueryEscape(asset), url.QueryEscape(currency))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("price fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("price fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("price fetch read failed: %w", err)
	}

	var quotes map[string]map[string]decimal.Decimal
	if err := json.Unmarshal(body, &quotes); err != nil {
		return decimal.Zero, fmt.Errorf("price fetch decode failed: %w", err)
	}

	price, ok := quotes[asset][currency]
	if !ok {
		return decimal.Zero, fmt.Errorf("no %s/%s quote in response", asset, currency)
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("quote for %s/%s is not positive: %s", asset, currency, price.String())
	}
	return price, nil
}

// SpotOrFallback returns the live quote when available, otherwise the
// fallback value. The second return reports whether the live quote was used.
func (c *Client) SpotOrFallback(ctx context.Context, asset, currency string, fallback decimal.Decimal) (decimal.Decimal, bool) {
	price, err := c.Spot(ctx, asset, currency)
	if err != nil {
		return fallback, false
	}
	return price, true
}
