package routes

import (
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	orderHandler *handler.OrderHandler,
	portfolioHandler *handler.PortfolioHandler,
	quoteHandler *handler.QuoteHandler,
	healthHandler *handler.HealthHandler,
) {
	accountRoutes := router.Group("/account")
	{
		// POST /account/:accountId/orders
		accountRoutes.POST("/:accountId/orders", orderHandler.PlaceOrder)

		// GET /account/:accountId/portfolio
		accountRoutes.GET("/:accountId/portfolio", portfolioHandler.GetPortfolio)

		// GET /account/:accountId/transactions
		accountRoutes.GET("/:accountId/transactions", portfolioHandler.GetTransactions)
	}

	// GET /quote/:symbol
	router.GET("/quote/:symbol", quoteHandler.GetQuote)

	// GET /health
	router.GET("/health", healthHandler.GetHealth)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
