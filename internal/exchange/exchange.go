// Package exchange wraps the public ticker API the portal uses to price
// its coins for the stats pages. Rates are best-effort: any failure here
// is reported to the caller and never stops the portal.
package exchange

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrBadStatus indicates a non-200 reply from the ticker API.
var ErrBadStatus = errors.New("unexpected exchange api status")

// ClientConfig holds the outbound ticker API settings.
type ClientConfig struct {
	BaseURL  string
	Currency string
	Timeout  time.Duration
}

// Client is a thin resty-based wrapper over the ticker API.
type Client struct {
	client   *resty.Client
	currency string
}

// NewClient builds a ticker client. Currency defaults to USD and the
// timeout to 10 seconds when unset.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli, currency: cfg.Currency}
}

type ticker struct {
	Symbol string  `json:"symbol"`
	Last   float64 `json:"last"`
}

type tickerResponse struct {
	Tickers []ticker `json:"tickers"`
}

// Rates fetches last-trade prices for the given ticker symbols, quoted in
// the configured currency. Symbols the API does not know are simply
// absent from the result.
func (c *Client) Rates(ctx context.Context, symbols []string) (map[string]float64, error) {
	var out tickerResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("symbols", strings.Join(symbols, ",")).
		SetQueryParam("currency", c.currency).
		SetResult(&out).
		Get("/api/v1/ticker")
	if err != nil {
		return nil, fmt.Errorf("error requesting exchange rates: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status())
	}

	rates := make(map[string]float64, len(out.Tickers))
	for _, tk := range out.Tickers {
		rates[tk.Symbol] = tk.Last
	}

	return rates, nil
}
