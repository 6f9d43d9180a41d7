package entity

import (
	"time"

	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
)

// Side represents the direction of an executed order
type Side string

// Order sides
const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Transaction represents one executed order in the append-only ledger.
// Rows are immutable once written; ordering by ExecutedAt (ties broken by
// insertion order) gives the account's audit trail.
type Transaction struct {
	ID         uint64    // Surrogate key assigned by the store
	AccountID  uint64    // ID of the account the order was executed for
	Symbol     string    // Ticker symbol the order was executed against
	Quantity   int64     // Number of shares, always positive
	UnitPrice  int64     // Execution price per share in cents
	Side       Side      // buy or sell
	ExecutedAt time.Time // When the order was committed
}

// NewTransaction creates a ledger entry for an executed order
func NewTransaction(
	accountID uint64,
	symbol string,
	quantity int64,
	unitPriceInCents int64,
	side Side,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}
	if symbol == "" {
		return nil, errs.ErrInvalidSymbol
	}
	if quantity <= 0 {
		return nil, errs.ErrInvalidOrder
	}
	if !IsValidSide(string(side)) {
		return nil, errs.ErrInvalidOrder
	}
	if unitPriceInCents < 0 {
		return nil, errs.ErrNegativeAmount
	}

	return &Transaction{
		AccountID:  accountID,
		Symbol:     symbol,
		Quantity:   quantity,
		UnitPrice:  unitPriceInCents,
		Side:       side,
		ExecutedAt: timeProvider.Now(),
	}, nil
}

// Total returns the order value (quantity * unit price) in cents
func (t *Transaction) Total() int64 {
	return t.Quantity * t.UnitPrice
}

// GetUnitPrice returns the execution price as a string with 2 decimal places
func (t *Transaction) GetUnitPrice() string {
	return CentsToString(t.UnitPrice)
}

// IsCredit returns true if this transaction increased the account's cash
func (t *Transaction) IsCredit() bool {
	return t.Side == SideSell
}

// IsDebit returns true if this transaction decreased the account's cash
func (t *Transaction) IsDebit() bool {
	return t.Side == SideBuy
}

// IsValidSide validates if the side is one of the allowed values
func IsValidSide(side string) bool {
	return side == string(SideBuy) || side == string(SideSell)
}
