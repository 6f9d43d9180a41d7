package persistence

import (
	"context"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
)

// AccountRepository defines essential methods to interact with account data
type AccountRepository interface {
	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account with the given ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// GetByIDForUpdate retrieves an account by ID holding an exclusive row
	// lock for the rest of the surrounding transaction. Must only be called
	// inside a unit of work.
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account with the given ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Account, error)

	// Create creates a new account
	// Used for seeding default accounts; registration is out of scope
	//
	// Possible errors:
	// - ErrDuplicateAccount: If an account with the same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, account *entity.Account) error

	// Update persists the account's cash balance and order count
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, account *entity.Account) error
}
