package entity

import (
	"testing"
	"time"

	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coremocks "github.com/ledgerhub/stock-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid account", func(t *testing.T) {
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime).Once()

		account, err := NewAccount(1, "10000.00", timeProvider)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), account.ID)
		assert.Equal(t, int64(1000000), account.Cash())
		assert.Equal(t, "10000.00", account.GetCash())
		assert.Equal(t, fixedTime, account.CreatedAt)
		assert.Equal(t, fixedTime, account.UpdatedAt)
		assert.Equal(t, uint64(0), account.OrderCount)
	})

	t.Run("Zero ID rejected", func(t *testing.T) {
		timeProvider := coremocks.NewMockTimeProvider(t)

		_, err := NewAccount(0, "10000.00", timeProvider)
		assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
	})

	t.Run("Invalid starting cash rejected", func(t *testing.T) {
		timeProvider := coremocks.NewMockTimeProvider(t)

		_, err := NewAccount(1, "not-money", timeProvider)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Negative starting cash rejected", func(t *testing.T) {
		timeProvider := coremocks.NewMockTimeProvider(t)

		_, err := NewAccount(1, "-100.00", timeProvider)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestAccount_CanAfford(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	account, err := NewAccount(1, "100.00", timeProvider)
	require.NoError(t, err)

	assert.True(t, account.CanAfford(9999))
	assert.True(t, account.CanAfford(10000))
	assert.False(t, account.CanAfford(10001))
}

func TestAccount_ApplyDebit(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful debit", func(t *testing.T) {
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

		account, err := NewAccount(1, "1000.00", timeProvider)
		require.NoError(t, err)

		err = account.ApplyDebit(50000, timeProvider)
		require.NoError(t, err)
		assert.Equal(t, "500.00", account.GetCash())
		assert.Equal(t, uint64(1), account.OrderCount)
	})

	t.Run("Debit to exactly zero allowed", func(t *testing.T) {
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

		account, err := NewAccount(1, "1000.00", timeProvider)
		require.NoError(t, err)

		err = account.ApplyDebit(100000, timeProvider)
		require.NoError(t, err)
		assert.Equal(t, "0.00", account.GetCash())
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

		account, err := NewAccount(1, "100.00", timeProvider)
		require.NoError(t, err)

		err = account.ApplyDebit(10001, timeProvider)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		// Balance and order count untouched on failure
		assert.Equal(t, "100.00", account.GetCash())
		assert.Equal(t, uint64(0), account.OrderCount)
	})
}

func TestAccount_ApplyCredit(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	account, err := NewAccount(1, "100.00", timeProvider)
	require.NoError(t, err)

	account.ApplyCredit(2550, timeProvider)
	assert.Equal(t, "125.50", account.GetCash())
	assert.Equal(t, uint64(1), account.OrderCount)

	account.ApplyCredit(50, timeProvider)
	assert.Equal(t, "126.00", account.GetCash())
	assert.Equal(t, uint64(2), account.OrderCount)
}
