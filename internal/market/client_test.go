package market

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"coinwatch/internal/config"
	"coinwatch/internal/util"
)

const tickerBody = `[
	{"symbol":"BTCUSDT","price":"64123.45000000"},
	{"symbol":"ETHUSDT","price":"3412.10000000"},
	{"symbol":"BTCUSDC","price":"64120.01000000"},
	{"symbol":"ETHBTC","price":"0.05320000"}
]`

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default().Exchange
	cfg.BaseURL = srv.URL
	cfg.RetryBaseDelay = 0

	return NewClient(cfg, util.NewLogger("", "error")), srv
}

func TestClientPrices(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != tickerPath {
			t.Errorf("Expected request path %s, got %s", tickerPath, r.URL.Path)
		}
		w.Write([]byte(tickerBody))
	}))

	rows, err := c.Prices(context.Background(), "")
	if err != nil {
		t.Fatalf("Prices returned error: %v", err)
	}

	want := []string{"BTCUSDT", "ETHUSDT"}
	if len(rows) != len(want) {
		t.Fatalf("Prices returned %d rows, want %d", len(rows), len(want))
	}
	for i, s := range want {
		if rows[i].Symbol != s {
			t.Errorf("Row %d symbol = %q, want %q", i, rows[i].Symbol, s)
		}
	}
	if rows[0].Price != "64123.45000000" {
		t.Errorf("Row 0 price = %q, want the exchange string verbatim", rows[0].Price)
	}
}

func TestClientPricesFiltered(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tickerBody))
	}))

	rows, err := c.Prices(context.Background(), "ETH")
	if err != nil {
		t.Fatalf("Prices returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].Symbol != "ETHUSDT" {
		t.Errorf("Prices with filter ETH returned %v, want exactly ETHUSDT", rows)
	}
}

func TestClientAPIError(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":-1003,"msg":"Too many requests."}`, http.StatusTeapot)
	}))

	_, err := c.Prices(context.Background(), "")
	if err == nil {
		t.Fatal("Prices should fail on a non-200 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected an APIError in the chain, got %v", err)
	}
	if apiErr.Status != http.StatusTeapot {
		t.Errorf("APIError status = %d, want %d", apiErr.Status, http.StatusTeapot)
	}
}

func TestClientBadJSON(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))

	_, err := c.Prices(context.Background(), "")
	if err == nil {
		t.Fatal("Prices should fail on a malformed response body")
	}
}

func TestClientRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}
		w.Write([]byte(tickerBody))
	}))

	rows, err := c.Prices(context.Background(), "")
	if err != nil {
		t.Fatalf("Prices should succeed after retries, got %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("Expected 3 attempts, got %d", calls.Load())
	}
	if len(rows) != 2 {
		t.Errorf("Expected 2 rows after retry, got %d", len(rows))
	}
}

func TestClientContextCancelled(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.Write([]byte(tickerBody))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Prices(ctx, ""); err == nil {
		t.Fatal("Prices should fail when the context is already cancelled")
	}
}
