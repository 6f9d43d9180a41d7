package model

import (
	"time"
)

// Transaction represents the database model for the append-only order ledger
type Transaction struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	AccountID  uint64    `gorm:"not null;index"`
	Symbol     string    `gorm:"not null;size:20"`
	Quantity   int64     `gorm:"not null"`
	UnitPrice  int64     `gorm:"not null"` // Execution price in cents
	Side       string    `gorm:"not null;size:10"`
	ExecutedAt time.Time `gorm:"not null;index"`

	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
