package repository

import (
	"context"
	"fmt"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements persistence.TransactionRepository using
// GORM. The ledger is append-only: this repository exposes no update or
// delete, and the executed-at timestamp is written once by the engine.
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		AccountID:  transaction.AccountID,
		Symbol:     transaction.Symbol,
		Quantity:   transaction.Quantity,
		UnitPrice:  transaction.UnitPrice,
		Side:       string(transaction.Side),
		ExecutedAt: transaction.ExecutedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(transactionModel *model.Transaction) entity.Transaction {
	return entity.Transaction{
		ID:         transactionModel.ID,
		AccountID:  transactionModel.AccountID,
		Symbol:     transactionModel.Symbol,
		Quantity:   transactionModel.Quantity,
		UnitPrice:  transactionModel.UnitPrice,
		Side:       entity.Side(transactionModel.Side),
		ExecutedAt: transactionModel.ExecutedAt,
	}
}

// Create appends an executed order to the ledger
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		r.logger.Error("Failed to append transaction", map[string]any{
			"account_id": transaction.AccountID,
			"symbol":     transaction.Symbol,
			"side":       string(transaction.Side),
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = transactionModel.ID

	r.logger.Debug("Transaction appended", map[string]any{
		"transaction_id": transactionModel.ID,
		"account_id":     transaction.AccountID,
		"symbol":         transaction.Symbol,
		"side":           string(transaction.Side),
	})
	return nil
}

// ListByAccount retrieves an account's audit trail ordered by execution
// time, ties broken by insertion order
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID uint64) ([]entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("executed_at ASC, id ASC").
		Find(&transactionModels)

	if result.Error != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"account_id": accountID,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, r.modelToEntity(&transactionModels[i]))
	}
	return transactions, nil
}
