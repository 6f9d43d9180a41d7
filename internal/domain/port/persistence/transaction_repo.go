package persistence

import (
	"context"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
)

// TransactionRepository defines methods to interact with the append-only
// ledger of executed orders. There is deliberately no update or delete:
// transactions are immutable once written.
type TransactionRepository interface {
	// Create appends an executed order to the ledger
	//
	// Possible errors:
	// - ErrAccountNotFound: If the referenced account does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByAccount retrieves an account's audit trail ordered by execution
	// time, ties broken by insertion order
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByAccount(ctx context.Context, accountID uint64) ([]entity.Transaction, error)
}
