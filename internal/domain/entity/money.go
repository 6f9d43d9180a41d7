package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
)

// Monetary values are carried as int64 cents everywhere in the domain to
// avoid floating point precision issues. Strings with at most two decimal
// places are the only accepted external representation.

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseCashAmount validates and converts a string amount to cents.
// Uses a string-based approach to handle decimal places:
// - If no decimal point: appends "00"
// - If one digit after decimal: appends a "0"
// - If two digits after decimal: just removes the point
// Returns the amount in cents and an error if validation fails.
func ParseCashAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string
	if len(parts) == 1 {
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// CentsToString converts an integer cent amount to a decimal string.
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
func CentsToString(cents int64) string {
	isNegative := cents < 0
	if isNegative {
		cents = -cents
	}

	amountStr := strconv.FormatInt(cents, 10)

	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}

// MultiplyPrice computes price * quantity in cents with overflow protection.
// Both inputs must be non-negative; the result of a market order can never
// legitimately exceed the int64 range.
func MultiplyPrice(priceCents int64, quantity int64) (int64, error) {
	if priceCents < 0 || quantity < 0 {
		return 0, errs.ErrNegativeAmount
	}
	if priceCents == 0 || quantity == 0 {
		return 0, nil
	}

	total := priceCents * quantity
	if total/quantity != priceCents {
		return 0, errs.ErrAmountOverflow
	}
	return total, nil
}
