package ledger

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
)

// OrderValidator provides validation for incoming orders
type OrderValidator struct{}

// NewOrderValidator creates a new OrderValidator
func NewOrderValidator() *OrderValidator {
	return &OrderValidator{}
}

// ValidateOrder validates all order fields, returning the normalized symbol
// and parsed quantity
func (v *OrderValidator) ValidateOrder(accountID uint64, symbol, quantity string) (string, int64, error) {
	if accountID == 0 {
		return "", 0, errs.ErrInvalidAccountID
	}

	normalized, err := v.NormalizeSymbol(symbol)
	if err != nil {
		return "", 0, err
	}

	qty, err := v.ParseQuantity(quantity)
	if err != nil {
		return "", 0, err
	}

	return normalized, qty, nil
}

// NormalizeSymbol trims and upper-cases a ticker symbol
func (v *OrderValidator) NormalizeSymbol(symbol string) (string, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(symbol))
	if trimmed == "" {
		return "", errs.ErrInvalidSymbol
	}
	return trimmed, nil
}

// ParseQuantity parses a share quantity from its request representation.
// Anything that is not a plain positive base-10 integer is rejected:
// empty strings, signs, decimals, and zero all fail with ErrInvalidOrder.
func (v *OrderValidator) ParseQuantity(quantity string) (int64, error) {
	trimmed := strings.TrimSpace(quantity)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: missing quantity", errs.ErrInvalidOrder)
	}

	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a positive integer", errs.ErrInvalidOrder, quantity)
		}
	}

	qty, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidOrder, err.Error())
	}
	if qty <= 0 {
		return 0, fmt.Errorf("%w: got %d", errs.ErrInvalidOrder, qty)
	}

	return qty, nil
}
