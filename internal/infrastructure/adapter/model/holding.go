package model

import (
	"time"
)

// Holding represents the database model for positions. The unique index on
// (account_id, symbol) plus the positive-quantity check means a row exists
// iff the account holds shares of the symbol.
type Holding struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	AccountID uint64    `gorm:"not null;uniqueIndex:idx_holdings_account_symbol"`
	Symbol    string    `gorm:"not null;size:20;uniqueIndex:idx_holdings_account_symbol"`
	Name      string    `gorm:"size:255"`
	Quantity  int64     `gorm:"not null;check:quantity > 0"`
	LastPrice int64     `gorm:"not null;default:0"` // Cached unit price in cents
	LastTotal int64     `gorm:"not null;default:0"` // Cached line total in cents
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Holding
func (Holding) TableName() string {
	return "holdings"
}
