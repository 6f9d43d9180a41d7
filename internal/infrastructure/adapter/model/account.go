package model

import (
	"time"
)

// Account represents the database model for brokerage accounts
type Account struct {
	ID         uint64    `gorm:"primaryKey"`
	Cash       int64     `gorm:"not null"` // Cash balance in cents
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
	OrderCount uint64    `gorm:"default:0"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
