package entity

import (
	"time"

	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
)

// Holding represents an account's position in a single symbol.
// A holding exists only while its quantity is strictly positive; a position
// that reaches zero is deleted rather than kept as a zero-quantity row.
type Holding struct {
	AccountID uint64    // ID of the owning account
	Symbol    string    // Ticker symbol, upper case
	Name      string    // Display name cached from the quote at first buy
	Quantity  int64     // Number of shares, always > 0 while the holding exists
	LastPrice int64     // Cached unit price in cents from the last quote refresh
	LastTotal int64     // Cached Quantity * LastPrice in cents
	CreatedAt time.Time // When the position was opened
	UpdatedAt time.Time // When the position was last modified
}

// NewHolding opens a new position from an executed buy
func NewHolding(accountID uint64, symbol, name string, quantity, priceInCents int64, timeProvider coreport.TimeProvider) (*Holding, error) {
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}
	if symbol == "" {
		return nil, errs.ErrInvalidSymbol
	}
	if quantity <= 0 {
		return nil, errs.ErrInvalidOrder
	}

	total, err := MultiplyPrice(priceInCents, quantity)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Holding{
		AccountID: accountID,
		Symbol:    symbol,
		Name:      name,
		Quantity:  quantity,
		LastPrice: priceInCents,
		LastTotal: total,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// AddShares increases the position after a buy
func (h *Holding) AddShares(quantity int64, timeProvider coreport.TimeProvider) error {
	if quantity <= 0 {
		return errs.ErrInvalidOrder
	}

	h.Quantity += quantity
	h.UpdatedAt = timeProvider.Now()
	return nil
}

// RemoveShares decreases the position after a sell.
// A sell that would bring the position to exactly zero is rejected as well
// as one that would go negative; fully liquidating a position is disallowed.
func (h *Holding) RemoveShares(quantity int64, timeProvider coreport.TimeProvider) error {
	if quantity <= 0 {
		return errs.ErrInvalidOrder
	}
	if h.Quantity-quantity <= 0 {
		return errs.ErrInsufficientShares
	}

	h.Quantity -= quantity
	h.UpdatedAt = timeProvider.Now()
	return nil
}

// RefreshQuote updates the cached valuation fields from a fresh quote
func (h *Holding) RefreshQuote(priceInCents int64, timeProvider coreport.TimeProvider) error {
	total, err := MultiplyPrice(priceInCents, h.Quantity)
	if err != nil {
		return err
	}

	h.LastPrice = priceInCents
	h.LastTotal = total
	h.UpdatedAt = timeProvider.Now()
	return nil
}

// GetLastPrice returns the cached unit price as a string with 2 decimal places
func (h *Holding) GetLastPrice() string {
	return CentsToString(h.LastPrice)
}

// GetLastTotal returns the cached line total as a string with 2 decimal places
func (h *Holding) GetLastTotal() string {
	return CentsToString(h.LastTotal)
}
