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
)

// HoldingRepository implements persistence.HoldingRepository using GORM
type HoldingRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewHoldingRepository creates a new HoldingRepository instance
func NewHoldingRepository(db *gorm.DB, logger coreport.Logger) *HoldingRepository {
	return &HoldingRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a holding entity to a database model
func (r *HoldingRepository) entityToModel(holding *entity.Holding) model.Holding {
	return model.Holding{
		AccountID: holding.AccountID,
		Symbol:    holding.Symbol,
		Name:      holding.Name,
		Quantity:  holding.Quantity,
		LastPrice: holding.LastPrice,
		LastTotal: holding.LastTotal,
		CreatedAt: holding.CreatedAt,
		UpdatedAt: holding.UpdatedAt,
	}
}

// modelToEntity converts a holding model to an entity
func (r *HoldingRepository) modelToEntity(holdingModel *model.Holding) *entity.Holding {
	return &entity.Holding{
		AccountID: holdingModel.AccountID,
		Symbol:    holdingModel.Symbol,
		Name:      holdingModel.Name,
		Quantity:  holdingModel.Quantity,
		LastPrice: holdingModel.LastPrice,
		LastTotal: holdingModel.LastTotal,
		CreatedAt: holdingModel.CreatedAt,
		UpdatedAt: holdingModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *HoldingRepository) handleDatabaseError(operation string, err error, accountID uint64, symbol string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrHoldingNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"account_id": accountID,
		"symbol":     symbol,
		"error":      err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateHolding
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByAccountAndSymbol retrieves the position for an (account, symbol) pair
func (r *HoldingRepository) GetByAccountAndSymbol(ctx context.Context, accountID uint64, symbol string) (*entity.Holding, error) {
	var holdingModel model.Holding
	result := r.db.WithContext(ctx).
		Where("account_id = ? AND symbol = ?", accountID, symbol).
		First(&holdingModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting holding", result.Error, accountID, symbol)
	}

	return r.modelToEntity(&holdingModel), nil
}

// ListByAccount retrieves all positions of an account ordered by symbol
func (r *HoldingRepository) ListByAccount(ctx context.Context, accountID uint64) ([]entity.Holding, error) {
	var holdingModels []model.Holding
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("symbol ASC").
		Find(&holdingModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing holdings", result.Error, accountID, "")
	}

	holdings := make([]entity.Holding, 0, len(holdingModels))
	for i := range holdingModels {
		holdings = append(holdings, *r.modelToEntity(&holdingModels[i]))
	}
	return holdings, nil
}

// Create opens a new position
func (r *HoldingRepository) Create(ctx context.Context, holding *entity.Holding) error {
	holdingModel := r.entityToModel(holding)

	result := r.db.WithContext(ctx).Create(&holdingModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating holding", result.Error, holding.AccountID, holding.Symbol)
	}

	r.logger.Debug("Holding created", map[string]any{
		"account_id": holding.AccountID,
		"symbol":     holding.Symbol,
		"quantity":   holding.Quantity,
	})
	return nil
}

// Update persists quantity and cached valuation fields of a position
func (r *HoldingRepository) Update(ctx context.Context, holding *entity.Holding) error {
	result := r.db.WithContext(ctx).Model(&model.Holding{}).
		Where("account_id = ? AND symbol = ?", holding.AccountID, holding.Symbol).
		Updates(map[string]interface{}{
			"quantity":   holding.Quantity,
			"last_price": holding.LastPrice,
			"last_total": holding.LastTotal,
			"updated_at": holding.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating holding", result.Error, holding.AccountID, holding.Symbol)
	}

	if result.RowsAffected == 0 {
		return errs.ErrHoldingNotFound
	}

	r.logger.Debug("Holding updated", map[string]any{
		"account_id": holding.AccountID,
		"symbol":     holding.Symbol,
		"quantity":   holding.Quantity,
	})
	return nil
}

// Delete removes the position for an (account, symbol) pair
func (r *HoldingRepository) Delete(ctx context.Context, accountID uint64, symbol string) error {
	result := r.db.WithContext(ctx).
		Where("account_id = ? AND symbol = ?", accountID, symbol).
		Delete(&model.Holding{})

	if result.Error != nil {
		return r.handleDatabaseError("deleting holding", result.Error, accountID, symbol)
	}

	if result.RowsAffected == 0 {
		return errs.ErrHoldingNotFound
	}

	r.logger.Debug("Holding deleted", map[string]any{
		"account_id": accountID,
		"symbol":     symbol,
	})
	return nil
}
