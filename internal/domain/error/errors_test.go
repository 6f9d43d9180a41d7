package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{ErrInvalidOrder, CodeInvalidOrder},
		{ErrUnknownSymbol, CodeUnknownSymbol},
		{ErrInvalidSymbol, CodeUnknownSymbol},
		{ErrInsufficientFunds, CodeInsufficientFunds},
		{ErrInsufficientShares, CodeInsufficientShares},
		{ErrInvalidAmount, CodeInvalidAmount},
		{ErrNegativeAmount, CodeInvalidAmount},
		{ErrAmountOverflow, CodeAmountOverflow},
		{ErrInvalidAccountID, CodeInvalidAccountID},
		{ErrAccountNotFound, CodeAccountNotFound},
		{ErrQuoteUnavailable, CodeQuoteUnavailable},
		{errors.New("something else"), CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}

	t.Run("Wrapped errors resolve through the chain", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup failed: %w", ErrQuoteUnavailable)
		assert.Equal(t, CodeQuoteUnavailable, ErrorCode(wrapped))
	})
}

func TestOrderError(t *testing.T) {
	err := NewOrderError(42, "AAPL", "buy", 5, "quote lookup failed", ErrQuoteUnavailable)

	assert.ErrorIs(t, err, ErrQuoteUnavailable)
	assert.Contains(t, err.Error(), "account 42")
	assert.Contains(t, err.Error(), "AAPL")

	var orderErr *OrderError
	assert.ErrorAs(t, err, &orderErr)

	fields := orderErr.LogFields()
	assert.Equal(t, "order_error", fields["error_type"])
	assert.Equal(t, uint64(42), fields["account_id"])
	assert.Equal(t, CodeQuoteUnavailable, fields["error_code"])
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(7, "500.00", "100.00")

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, IsInsufficientFundsError(err))
	assert.Contains(t, err.Error(), "required 500.00")
	assert.Contains(t, err.Error(), "available 100.00")

	var fundsErr *InsufficientFundsError
	assert.ErrorAs(t, err, &fundsErr)
	assert.Equal(t, CodeInsufficientFunds, fundsErr.LogFields()["error_code"])
}

func TestInsufficientSharesError(t *testing.T) {
	err := NewInsufficientSharesError(7, "AAPL", 10, 5)

	assert.ErrorIs(t, err, ErrInsufficientShares)
	assert.True(t, IsInsufficientSharesError(err))
	assert.Contains(t, err.Error(), "requested 10")
	assert.Contains(t, err.Error(), "held 5")
}

func TestQuoteError(t *testing.T) {
	err := NewQuoteError("AAPL", ErrQuoteUnavailable)

	assert.ErrorIs(t, err, ErrQuoteUnavailable)
	assert.True(t, IsQuoteUnavailableError(err))
	assert.Contains(t, err.Error(), "AAPL")

	unknown := NewQuoteError("NOPE", ErrUnknownSymbol)
	assert.ErrorIs(t, unknown, ErrUnknownSymbol)
	assert.True(t, IsUnknownSymbolError(unknown))
	assert.False(t, IsQuoteUnavailableError(unknown))
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrAccountNotFound))
	assert.True(t, IsNotFoundError(ErrHoldingNotFound))
	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.False(t, IsNotFoundError(ErrInvalidOrder))
}
