package entity

import (
	"testing"
	"time"

	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coremocks "github.com/ledgerhub/stock-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid transaction", func(t *testing.T) {
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime).Once()

		tx, err := NewTransaction(1, "AAPL", 5, 10000, SideBuy, timeProvider)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.AccountID)
		assert.Equal(t, "AAPL", tx.Symbol)
		assert.Equal(t, int64(5), tx.Quantity)
		assert.Equal(t, int64(10000), tx.UnitPrice)
		assert.Equal(t, SideBuy, tx.Side)
		assert.Equal(t, fixedTime, tx.ExecutedAt)
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		testCases := []struct {
			description string
			accountID   uint64
			symbol      string
			quantity    int64
			unitPrice   int64
			side        Side
			errorType   error
		}{
			{"Zero account ID", 0, "AAPL", 5, 10000, SideBuy, errs.ErrInvalidAccountID},
			{"Empty symbol", 1, "", 5, 10000, SideBuy, errs.ErrInvalidSymbol},
			{"Zero quantity", 1, "AAPL", 0, 10000, SideBuy, errs.ErrInvalidOrder},
			{"Negative quantity", 1, "AAPL", -5, 10000, SideBuy, errs.ErrInvalidOrder},
			{"Unknown side", 1, "AAPL", 5, 10000, Side("short"), errs.ErrInvalidOrder},
			{"Negative price", 1, "AAPL", 5, -1, SideSell, errs.ErrNegativeAmount},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				timeProvider := coremocks.NewMockTimeProvider(t)

				_, err := NewTransaction(tc.accountID, tc.symbol, tc.quantity, tc.unitPrice, tc.side, timeProvider)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestTransaction_Total(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	tx, err := NewTransaction(1, "AAPL", 5, 10015, SideBuy, timeProvider)
	require.NoError(t, err)

	assert.Equal(t, int64(50075), tx.Total())
	assert.Equal(t, "100.15", tx.GetUnitPrice())
}

func TestTransaction_Sides(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	buy, err := NewTransaction(1, "AAPL", 5, 10000, SideBuy, timeProvider)
	require.NoError(t, err)
	assert.True(t, buy.IsDebit())
	assert.False(t, buy.IsCredit())

	sell, err := NewTransaction(1, "AAPL", 5, 10000, SideSell, timeProvider)
	require.NoError(t, err)
	assert.True(t, sell.IsCredit())
	assert.False(t, sell.IsDebit())
}

func TestIsValidSide(t *testing.T) {
	assert.True(t, IsValidSide("buy"))
	assert.True(t, IsValidSide("sell"))
	assert.False(t, IsValidSide(""))
	assert.False(t, IsValidSide("BUY"))
	assert.False(t, IsValidSide("short"))
}
