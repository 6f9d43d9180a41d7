package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ledgerhub/stock-ledger/internal/domain/port/market"
	ledgerUseCase "github.com/ledgerhub/stock-ledger/internal/domain/usecase/ledger"
	portfolioUseCase "github.com/ledgerhub/stock-ledger/internal/domain/usecase/portfolio"

	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/database"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/logger"
	marketAdapter "github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/market"
	timeProvider "github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/time"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	// Run migrations
	migrationMgr := dbManager.MigrationManager()
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	if cfg.Ledger.SeedDefaultAccount {
		if err := migrationMgr.SeedDefaultAccount(context.Background(), cfg.Ledger.StartingCash); err != nil {
			appLogger.Error("Failed to seed default account", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Unit of work over the shared connection
	uow := dbManager.CreateUnitOfWork()

	// Quote gateway, optionally wrapped with a Redis cache
	gateway := buildQuoteGateway(cfg, appLogger)

	// Use cases
	ledgerService := ledgerUseCase.NewService(uow, gateway, tp, appLogger)
	portfolioService := portfolioUseCase.NewService(uow, gateway, tp, appLogger)

	// API handlers
	orderHandler := handler.NewOrderHandler(ledgerService, appLogger)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService, appLogger)
	quoteHandler := handler.NewQuoteHandler(gateway, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager.DB(), appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, orderHandler, portfolioHandler, quoteHandler, healthHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Drain per-account order workers before closing the listener
	ledgerService.Shutdown()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// buildQuoteGateway assembles the quote gateway from configuration
func buildQuoteGateway(cfg *config.Config, appLogger coreport.Logger) market.QuoteGateway {
	var gateway market.QuoteGateway

	switch cfg.Market.Provider {
	case "static":
		gateway = marketAdapter.NewStaticGateway()
		appLogger.Warn("Using static quote gateway; orders will only resolve preloaded symbols", nil)
	default:
		gateway = marketAdapter.NewHTTPClient(marketAdapter.HTTPClientConfig{
			BaseURL: cfg.Market.BaseURL,
			Token:   cfg.Market.Token,
			Timeout: coreport.Duration(cfg.Market.RequestTimeout),
		}, appLogger)
	}

	if cfg.Market.CacheEnabled {
		gateway = marketAdapter.NewCachedGateway(gateway, marketAdapter.CacheConfig{
			Addr:     cfg.Market.CacheAddr,
			Password: cfg.Market.CachePassword,
			DB:       cfg.Market.CacheDB,
			TTL:      coreport.Duration(cfg.Market.CacheTTL),
		}, appLogger)
	}

	return gateway
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or SL_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or SL_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or SL_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Market.Provider == "http" && cfg.Market.BaseURL == "" {
		missingConfigs = append(missingConfigs, "market.baseUrl (or SL_MARKET_BASE_URL environment variable)")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
