package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an account model to an entity
func (r *AccountRepository) modelToEntity(accountModel *model.Account) (*entity.Account, error) {
	account, err := entity.NewAccount(accountModel.ID, entity.CentsToString(accountModel.Cash), r.timeProvider)
	if err != nil {
		r.logger.Error("Failed to create account entity", map[string]any{
			"account_id": accountModel.ID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create account entity: %s", errs.ErrInternalServer, err.Error())
	}

	account.CreatedAt = accountModel.CreatedAt
	account.UpdatedAt = accountModel.UpdatedAt
	account.OrderCount = accountModel.OrderCount

	return account, nil
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, accountID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Account not found", map[string]any{
			"account_id": accountID,
		})
		return errs.ErrAccountNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"account_id": accountID,
		"error":      err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateAccount
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).First(&accountModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, id)
	}

	return r.modelToEntity(&accountModel)
}

// GetByIDForUpdate retrieves an account by ID with an exclusive row lock.
// Only meaningful inside a unit of work; the lock is held until commit.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&accountModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking account", result.Error, id)
	}

	return r.modelToEntity(&accountModel)
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.Account{
		ID:         account.ID,
		Cash:       account.Cash(),
		CreatedAt:  account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
		OrderCount: account.OrderCount,
	}

	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, account.ID)
	}

	r.logger.Info("Account created", map[string]any{
		"account_id": account.ID,
		"cash":       account.GetCash(),
	})
	return nil
}

// Update persists the account's cash balance and order count
func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"cash":        account.Cash(),
			"updated_at":  account.UpdatedAt,
			"order_count": account.OrderCount,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating account", result.Error, account.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Account not found during update", map[string]any{
			"account_id": account.ID,
		})
		return errs.ErrAccountNotFound
	}

	r.logger.Debug("Account updated", map[string]any{
		"account_id":  account.ID,
		"cash":        account.GetCash(),
		"order_count": account.OrderCount,
	})
	return nil
}
