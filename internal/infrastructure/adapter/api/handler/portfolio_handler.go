package handler

import (
	"errors"
	"net/http"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
	domainerr "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
	"github.com/ledgerhub/stock-ledger/internal/domain/usecase/portfolio"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PortfolioHandler handles portfolio and transaction history HTTP requests
type PortfolioHandler struct {
	portfolioService *portfolio.Service
	logger           coreport.Logger
}

// NewPortfolioHandler creates a new portfolio handler instance
func NewPortfolioHandler(portfolioService *portfolio.Service, logger coreport.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		logger:           logger,
	}
}

// GetPortfolio handles the GET /account/{accountId}/portfolio endpoint.
// With ?refresh=true the cached quote fields on holdings are persisted
// before the valuation is computed.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	refreshed := false
	if c.Query("refresh") == "true" {
		if err := h.portfolioService.RefreshQuotes(c.Request.Context(), accountID); err != nil {
			h.respondError(c, accountID, "refreshing quotes", err)
			return
		}
		refreshed = true
	}

	view, err := h.portfolioService.GetPortfolio(c.Request.Context(), accountID)
	if err != nil {
		h.respondError(c, accountID, "computing portfolio", err)
		return
	}

	lines := make([]dto.PortfolioLineResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, dto.PortfolioLineResponse{
			Symbol:    line.Symbol,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
			LineTotal: line.LineTotal,
		})
	}

	c.JSON(http.StatusOK, dto.PortfolioResponse{
		AccountID:  view.AccountID,
		Cash:       view.Cash,
		Holdings:   lines,
		GrandTotal: view.GrandTotal,
		Refreshed:  refreshed,
	})
}

// GetTransactions handles the GET /account/{accountId}/transactions endpoint
func (h *PortfolioHandler) GetTransactions(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	transactions, err := h.portfolioService.GetTransactions(c.Request.Context(), accountID)
	if err != nil {
		h.respondError(c, accountID, "listing transactions", err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		t := &transactions[i]
		items = append(items, dto.TransactionResponse{
			ID:         t.ID,
			Symbol:     t.Symbol,
			Side:       string(t.Side),
			Quantity:   t.Quantity,
			UnitPrice:  t.GetUnitPrice(),
			Total:      entity.CentsToString(t.Total()),
			ExecutedAt: t.ExecutedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		AccountID:    accountID,
		Transactions: items,
	})
}

// respondError maps domain errors onto HTTP responses
func (h *PortfolioHandler) respondError(c *gin.Context, accountID uint64, operation string, err error) {
	statusCode := http.StatusInternalServerError
	errorMessage := "Internal server error"

	switch {
	case errors.Is(err, domainerr.ErrAccountNotFound):
		statusCode = http.StatusNotFound
		errorMessage = "Account not found"
	case errors.Is(err, domainerr.ErrInvalidAccountID):
		statusCode = http.StatusBadRequest
		errorMessage = "Invalid account ID"
	case domainerr.IsQuoteUnavailableError(err):
		statusCode = http.StatusBadGateway
		errorMessage = "Quote provider unavailable"
	}

	h.logger.Error("Error "+operation, map[string]any{
		"account_id": accountID,
		"error":      err.Error(),
	})

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: errorMessage,
	})
}
