package market

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"coinwatch/internal/config"
	"coinwatch/internal/util"

	json "github.com/goccy/go-json"
)

const tickerPath = "/api/v3/ticker/price"

// Client fetches spot prices over the exchange REST API. It rate-limits
// itself and retries transient failures with exponential backoff.
type Client struct {
	baseURL    string
	suffix     string
	http       *http.Client
	limiter    *util.RateLimiter
	attempts   int
	retryDelay time.Duration
	log        *slog.Logger
}

// NewClient creates a Client from the exchange section of the config.
func NewClient(cfg config.Exchange, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		suffix:  cfg.SettlementSuffix,
		http: &http.Client{
			Timeout: cfg.RequestTimeout.Std(),
		},
		limiter:    util.NewRateLimiter(cfg.RateLimitPerMin),
		attempts:   cfg.RetryAttempts,
		retryDelay: cfg.RetryBaseDelay.Std(),
		log:        logger,
	}
}

// Prices returns the latest price for every pair matching the filter, in the
// order the exchange lists them.
func (c *Client) Prices(ctx context.Context, filter string) ([]PriceRow, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var all []PriceRow
	err := util.Retry(ctx, c.attempts, c.retryDelay, func() error {
		var ferr error
		all, ferr = c.fetchAll(ctx)
		if ferr != nil {
			c.log.Warn("ticker fetch failed", "error", ferr)
		}
		return ferr
	})
	if err != nil {
		return nil, fmt.Errorf("fetch prices: %w", err)
	}

	rows := Keep(all, filter, c.suffix)
	c.log.Debug("ticker fetch", "total", len(all), "kept", len(rows), "filter", filter)
	return rows, nil
}

// fetchAll pulls the full ticker listing. The endpoint has no server-side
// filter, so filtering happens client-side in Keep.
func (c *Client) fetchAll(ctx context.Context) ([]PriceRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+tickerPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ticker request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	var rows []PriceRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode ticker response: %w", err)
	}
	return rows, nil
}

// APIError represents an exchange-side failure (non-200 response).
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("exchange API error: status %d: %s", e.Status, e.Body)
}
