package market

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
	"github.com/ledgerhub/stock-ledger/internal/domain/port/market"
)

// quoteResponse mirrors the provider's quote payload
type quoteResponse struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	LatestPrice float64 `json:"latestPrice"`
}

// HTTPClient fetches live quotes from an IEX-style quote API
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     coreport.Logger
}

// HTTPClientConfig holds quote provider settings
type HTTPClientConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout coreport.Duration
}

// NewHTTPClient creates a quote client for the given provider
func NewHTTPClient(config HTTPClientConfig, logger coreport.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		token:   config.Token,
		httpClient: &http.Client{
			Timeout: config.Timeout.Std(),
		},
		logger: logger,
	}
}

// Lookup fetches the current quote for a symbol. A provider 404 means the
// symbol does not exist; any other failure means the provider is unavailable.
func (c *HTTPClient) Lookup(ctx context.Context, symbol string) (*entity.Quote, error) {
	endpoint := fmt.Sprintf("%s/stock/%s/quote?token=%s",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape(c.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrQuoteUnavailable, err.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Quote provider request failed", map[string]any{
			"symbol": symbol,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrQuoteUnavailable, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.ErrUnknownSymbol
	case resp.StatusCode != http.StatusOK:
		c.logger.Warn("Quote provider returned unexpected status", map[string]any{
			"symbol": symbol,
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("%w: provider returned status %d", errs.ErrQuoteUnavailable, resp.StatusCode)
	}

	var payload quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: malformed quote payload: %s", errs.ErrQuoteUnavailable, err.Error())
	}

	if payload.LatestPrice <= 0 {
		return nil, fmt.Errorf("%w: provider returned non-positive price for %s", errs.ErrQuoteUnavailable, symbol)
	}

	quote := &entity.Quote{
		Symbol: strings.ToUpper(payload.Symbol),
		Name:   payload.CompanyName,
		Price:  int64(math.Round(payload.LatestPrice * 100)),
	}
	if quote.Symbol == "" {
		quote.Symbol = symbol
	}

	return quote, nil
}

// compile-time interface check
var _ market.QuoteGateway = (*HTTPClient)(nil)
