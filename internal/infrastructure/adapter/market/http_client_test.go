package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewHTTPClient(HTTPClientConfig{
		BaseURL: server.URL,
		Token:   "test-token",
		Timeout: 2 * coreport.Second,
	}, logger.NewNoopLogger())

	return client, server
}

func TestHTTPClient_Lookup(t *testing.T) {
	t.Run("Successful quote", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/stock/AAPL/quote", r.URL.Path)
			assert.Equal(t, "test-token", r.URL.Query().Get("token"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"symbol":"AAPL","companyName":"Apple Inc.","latestPrice":150.25}`))
		})

		quote, err := client.Lookup(context.Background(), "AAPL")
		require.NoError(t, err)
		assert.Equal(t, "AAPL", quote.Symbol)
		assert.Equal(t, "Apple Inc.", quote.Name)
		assert.Equal(t, int64(15025), quote.Price)
	})

	t.Run("Fractional cents round to nearest", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"symbol":"AAPL","companyName":"Apple Inc.","latestPrice":150.255}`))
		})

		quote, err := client.Lookup(context.Background(), "AAPL")
		require.NoError(t, err)
		assert.Equal(t, int64(15026), quote.Price)
	})

	t.Run("Provider 404 means unknown symbol", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.Lookup(context.Background(), "NOPE")
		assert.ErrorIs(t, err, errs.ErrUnknownSymbol)
	})

	t.Run("Provider 500 means unavailable", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.Lookup(context.Background(), "AAPL")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})

	t.Run("Malformed payload means unavailable", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		})

		_, err := client.Lookup(context.Background(), "AAPL")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})

	t.Run("Non-positive price rejected", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"symbol":"AAPL","companyName":"Apple Inc.","latestPrice":0}`))
		})

		_, err := client.Lookup(context.Background(), "AAPL")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})

	t.Run("Unreachable provider means unavailable", func(t *testing.T) {
		client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
		server.Close()

		_, err := client.Lookup(context.Background(), "AAPL")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})
}
