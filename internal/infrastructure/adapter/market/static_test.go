package market

import (
	"context"
	"testing"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticGateway_Lookup(t *testing.T) {
	gateway := NewStaticGateway(
		entity.Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: 15000},
		entity.Quote{Symbol: "nflx", Name: "Netflix Inc.", Price: 25000},
	)

	t.Run("Known symbol", func(t *testing.T) {
		quote, err := gateway.Lookup(context.Background(), "AAPL")
		require.NoError(t, err)
		assert.Equal(t, int64(15000), quote.Price)
	})

	t.Run("Lookup is case insensitive", func(t *testing.T) {
		quote, err := gateway.Lookup(context.Background(), "aapl")
		require.NoError(t, err)
		assert.Equal(t, "AAPL", quote.Symbol)

		quote, err = gateway.Lookup(context.Background(), "NFLX")
		require.NoError(t, err)
		assert.Equal(t, int64(25000), quote.Price)
	})

	t.Run("Unknown symbol", func(t *testing.T) {
		_, err := gateway.Lookup(context.Background(), "NOPE")
		assert.ErrorIs(t, err, errs.ErrUnknownSymbol)
	})
}

func TestStaticGateway_SetQuote(t *testing.T) {
	gateway := NewStaticGateway()

	_, err := gateway.Lookup(context.Background(), "AAPL")
	assert.ErrorIs(t, err, errs.ErrUnknownSymbol)

	gateway.SetQuote(entity.Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: 15000})

	quote, err := gateway.Lookup(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, int64(15000), quote.Price)

	// Replacing an existing quote takes effect immediately
	gateway.SetQuote(entity.Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: 16000})
	quote, err = gateway.Lookup(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, int64(16000), quote.Price)
}
