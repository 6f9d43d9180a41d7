package entity

import (
	"time"

	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
)

// Account represents a brokerage account holding a cash balance
type Account struct {
	ID         uint64    // Unique identifier for the account owner
	cash       int64     // Cash balance in cents (private, never negative after a commit)
	CreatedAt  time.Time // When the account was created
	UpdatedAt  time.Time // When the account was last updated
	OrderCount uint64    // Count of executed orders for this account
}

// NewAccount creates a new account with the given ID and starting cash
func NewAccount(id uint64, startingCash string, timeProvider coreport.TimeProvider) (*Account, error) {
	if id == 0 {
		return nil, errs.ErrInvalidAccountID
	}

	cashInCents, err := ParseCashAmount(startingCash)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Account{
		ID:         id,
		cash:       cashInCents,
		CreatedAt:  now,
		UpdatedAt:  now,
		OrderCount: 0,
	}, nil
}

// Cash returns the current cash balance in cents (for internal use)
func (a *Account) Cash() int64 {
	return a.cash
}

// GetCash returns the cash balance as a string with 2 decimal places
func (a *Account) GetCash() string {
	return CentsToString(a.cash)
}

// SetCash updates the cash balance directly (for internal use, like repositories)
func (a *Account) SetCash(cashInCents int64, timeProvider coreport.TimeProvider) {
	a.cash = cashInCents
	a.UpdatedAt = timeProvider.Now()
}

// CanAfford checks if the account has enough cash to cover a cost
func (a *Account) CanAfford(costInCents int64) bool {
	return a.cash >= costInCents
}

// ApplyDebit subtracts the cost of a buy from the cash balance.
// Returns ErrInsufficientFunds if the cost exceeds the available cash.
func (a *Account) ApplyDebit(costInCents int64, timeProvider coreport.TimeProvider) error {
	if a.cash < costInCents {
		return errs.ErrInsufficientFunds
	}

	a.cash -= costInCents
	a.UpdatedAt = timeProvider.Now()
	a.OrderCount++
	return nil
}

// ApplyCredit adds the proceeds of a sell to the cash balance
func (a *Account) ApplyCredit(proceedsInCents int64, timeProvider coreport.TimeProvider) {
	a.cash += proceedsInCents
	a.UpdatedAt = timeProvider.Now()
	a.OrderCount++
}
