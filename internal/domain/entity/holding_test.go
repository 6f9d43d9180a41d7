package entity

import (
	"testing"
	"time"

	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coremocks "github.com/ledgerhub/stock-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHolding(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid holding", func(t *testing.T) {
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime).Once()

		holding, err := NewHolding(1, "AAPL", "Apple Inc.", 5, 10000, timeProvider)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), holding.AccountID)
		assert.Equal(t, "AAPL", holding.Symbol)
		assert.Equal(t, "Apple Inc.", holding.Name)
		assert.Equal(t, int64(5), holding.Quantity)
		assert.Equal(t, int64(10000), holding.LastPrice)
		assert.Equal(t, int64(50000), holding.LastTotal)
		assert.Equal(t, "100.00", holding.GetLastPrice())
		assert.Equal(t, "500.00", holding.GetLastTotal())
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		timeProvider := coremocks.NewMockTimeProvider(t)

		_, err := NewHolding(0, "AAPL", "Apple Inc.", 5, 10000, timeProvider)
		assert.ErrorIs(t, err, errs.ErrInvalidAccountID)

		_, err = NewHolding(1, "", "Apple Inc.", 5, 10000, timeProvider)
		assert.ErrorIs(t, err, errs.ErrInvalidSymbol)

		_, err = NewHolding(1, "AAPL", "Apple Inc.", 0, 10000, timeProvider)
		assert.ErrorIs(t, err, errs.ErrInvalidOrder)
	})
}

func TestHolding_AddShares(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	holding, err := NewHolding(1, "AAPL", "Apple Inc.", 5, 10000, timeProvider)
	require.NoError(t, err)

	require.NoError(t, holding.AddShares(3, timeProvider))
	assert.Equal(t, int64(8), holding.Quantity)

	err = holding.AddShares(0, timeProvider)
	assert.ErrorIs(t, err, errs.ErrInvalidOrder)

	err = holding.AddShares(-1, timeProvider)
	assert.ErrorIs(t, err, errs.ErrInvalidOrder)
}

func TestHolding_RemoveShares(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	newHolding := func(t *testing.T) *Holding {
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
		holding, err := NewHolding(1, "AAPL", "Apple Inc.", 5, 10000, timeProvider)
		require.NoError(t, err)
		return holding
	}

	t.Run("Partial sell", func(t *testing.T) {
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

		holding := newHolding(t)
		require.NoError(t, holding.RemoveShares(3, timeProvider))
		assert.Equal(t, int64(2), holding.Quantity)
	})

	t.Run("Full liquidation rejected", func(t *testing.T) {
		timeProvider := coremocks.NewMockTimeProvider(t)

		holding := newHolding(t)
		err := holding.RemoveShares(5, timeProvider)
		assert.ErrorIs(t, err, errs.ErrInsufficientShares)
		assert.Equal(t, int64(5), holding.Quantity)
	})

	t.Run("Oversell rejected", func(t *testing.T) {
		timeProvider := coremocks.NewMockTimeProvider(t)

		holding := newHolding(t)
		err := holding.RemoveShares(6, timeProvider)
		assert.ErrorIs(t, err, errs.ErrInsufficientShares)
		assert.Equal(t, int64(5), holding.Quantity)
	})

	t.Run("Non-positive quantity rejected", func(t *testing.T) {
		timeProvider := coremocks.NewMockTimeProvider(t)

		holding := newHolding(t)
		err := holding.RemoveShares(0, timeProvider)
		assert.ErrorIs(t, err, errs.ErrInvalidOrder)
	})
}

func TestHolding_RefreshQuote(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	holding, err := NewHolding(1, "AAPL", "Apple Inc.", 5, 10000, timeProvider)
	require.NoError(t, err)

	require.NoError(t, holding.RefreshQuote(12050, timeProvider))
	assert.Equal(t, int64(12050), holding.LastPrice)
	assert.Equal(t, int64(60250), holding.LastTotal)
	assert.Equal(t, "120.50", holding.GetLastPrice())
	assert.Equal(t, "602.50", holding.GetLastTotal())
}
