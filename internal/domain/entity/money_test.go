package entity

import (
	"testing"

	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestParseCashAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"10000.00", 1000000},
			{"1234567.89", 123456789},
			{"0.00", 0},
			{"0", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ParseCashAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.00", errs.ErrNegativeAmount, "Negative amount"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"$100", errs.ErrInvalidAmount, "Currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseCashAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestCentsToString(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{10000, "100.00"},
		{1, "0.01"},
		{10, "0.10"},
		{100, "1.00"},
		{150, "1.50"},
		{1000000, "10000.00"},
		{0, "0.00"},
		{-150, "-1.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, CentsToString(tc.cents))
		})
	}
}

func TestMultiplyPrice(t *testing.T) {
	t.Run("Valid multiplications", func(t *testing.T) {
		// 5 shares at $100.00
		total, err := MultiplyPrice(10000, 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(50000), total)

		// Zero price or quantity yields zero
		total, err = MultiplyPrice(0, 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)

		total, err = MultiplyPrice(10000, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("Negative inputs rejected", func(t *testing.T) {
		_, err := MultiplyPrice(-1, 5)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)

		_, err = MultiplyPrice(100, -5)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Overflow detected", func(t *testing.T) {
		_, err := MultiplyPrice(int64(1)<<62, 4)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}
