package migration

import (
	"context"
	"errors"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.0.0"

	// DefaultAccountID is the account seeded on a fresh database
	DefaultAccountID uint64 = 1

	// DefaultStartingCash is the opening balance for seeded accounts
	DefaultStartingCash = "10000.00"
)

// MigrationManager manages database migrations and initial seeding
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll performs all migrations
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(context.Background())
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := m.autoMigrateModels(); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.setVersion(context.Background(), CurrentSchemaVersion, "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// SeedDefaultAccount creates the default account with the given opening
// cash balance if it does not exist yet. Seeding is idempotent. An empty
// startingCash falls back to DefaultStartingCash.
func (m *MigrationManager) SeedDefaultAccount(ctx context.Context, startingCash string) error {
	if startingCash == "" {
		startingCash = DefaultStartingCash
	}
	var count int64
	if err := m.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", DefaultAccountID).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		m.logger.Debug("Default account already seeded", map[string]any{
			"account_id": DefaultAccountID,
		})
		return nil
	}

	account, err := entity.NewAccount(DefaultAccountID, startingCash, m.timeProvider)
	if err != nil {
		return err
	}

	accountModel := model.Account{
		ID:         account.ID,
		Cash:       account.Cash(),
		CreatedAt:  account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
		OrderCount: 0,
	}

	if err := m.db.WithContext(ctx).Create(&accountModel).Error; err != nil {
		m.logger.Error("Failed to seed default account", map[string]any{
			"account_id": DefaultAccountID,
			"error":      err.Error(),
		})
		return err
	}

	m.logger.Info("Default account seeded", map[string]any{
		"account_id": DefaultAccountID,
		"cash":       startingCash,
	})
	return nil
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:     version,
		AppliedAt:   m.timeProvider.Now(),
		Description: details,
	}

	result := m.db.WithContext(ctx).Create(&migrationVersion)
	return result.Error
}

// autoMigrateModels auto-migrates database models
func (m *MigrationManager) autoMigrateModels() error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.AutoMigrate(
		&model.Account{},
		&model.Holding{},
		&model.Transaction{},
	)
}

// createIndexes creates database indexes not expressed in model tags
func (m *MigrationManager) createIndexes() error {
	m.logger.Info("Creating database indexes", nil)

	// Audit trail is always read per account ordered by execution time
	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_transactions_account_executed ON transactions (account_id, executed_at)").Error; err != nil {
		return err
	}

	return nil
}
