package persistence

import (
	"context"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
)

// HoldingRepository defines essential methods to interact with holding data.
// Absence of a row is the only representation of a zero position: callers
// translate ErrHoldingNotFound into a held quantity of zero, and no row is
// ever written with a non-positive quantity.
type HoldingRepository interface {
	// GetByAccountAndSymbol retrieves the position for an (account, symbol) pair
	//
	// Possible errors:
	// - ErrHoldingNotFound: If the account holds no shares of the symbol
	// - ErrDatabaseConnection: If database connection fails
	GetByAccountAndSymbol(ctx context.Context, accountID uint64, symbol string) (*entity.Holding, error)

	// ListByAccount retrieves all positions of an account ordered by symbol
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByAccount(ctx context.Context, accountID uint64) ([]entity.Holding, error)

	// Create opens a new position
	//
	// Possible errors:
	// - ErrDuplicateHolding: If a position for the pair already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, holding *entity.Holding) error

	// Update persists quantity and cached valuation fields of a position
	//
	// Possible errors:
	// - ErrHoldingNotFound: If the position doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, holding *entity.Holding) error

	// Delete removes the position for an (account, symbol) pair.
	// Called when a position reaches zero quantity.
	//
	// Possible errors:
	// - ErrHoldingNotFound: If the position doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, accountID uint64, symbol string) error
}
