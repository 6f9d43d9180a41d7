package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
	domainerr "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
	"github.com/ledgerhub/stock-ledger/internal/domain/port/market"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// QuoteHandler handles quote lookup HTTP requests
type QuoteHandler struct {
	gateway market.QuoteGateway
	logger  coreport.Logger
}

// NewQuoteHandler creates a new quote handler instance
func NewQuoteHandler(gateway market.QuoteGateway, logger coreport.Logger) *QuoteHandler {
	return &QuoteHandler{
		gateway: gateway,
		logger:  logger,
	}
}

// GetQuote handles the GET /quote/{symbol} endpoint
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidSymbol),
			Message: "Symbol is required",
		})
		return
	}

	quote, err := h.gateway.Lookup(c.Request.Context(), symbol)
	if err != nil {
		statusCode := http.StatusBadGateway
		errorMessage := "Quote provider unavailable"

		if errors.Is(err, domainerr.ErrUnknownSymbol) {
			statusCode = http.StatusNotFound
			errorMessage = "Unknown symbol"
		} else {
			h.logger.Warn("Quote lookup failed", map[string]any{
				"symbol": symbol,
				"error":  err.Error(),
			})
		}

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{
		Symbol: quote.Symbol,
		Name:   quote.Name,
		Price:  entity.CentsToString(quote.Price),
	})
}
