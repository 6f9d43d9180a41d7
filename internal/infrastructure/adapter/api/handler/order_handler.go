package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
	"github.com/ledgerhub/stock-ledger/internal/domain/usecase/ledger"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order placement HTTP requests
type OrderHandler struct {
	ledgerService *ledger.Service
	logger        coreport.Logger
}

// NewOrderHandler creates a new order handler instance
func NewOrderHandler(ledgerService *ledger.Service, logger coreport.Logger) *OrderHandler {
	return &OrderHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// PlaceOrder handles the POST /account/{accountId}/orders endpoint
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid order request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	orderReq := ledger.OrderRequest{
		Symbol:   req.Symbol,
		Quantity: req.Quantity,
	}

	var result *ledger.OrderResponse
	var err error
	switch req.Side {
	case "buy":
		result, err = h.ledgerService.ExecuteBuy(c.Request.Context(), accountID, orderReq)
	case "sell":
		result, err = h.ledgerService.ExecuteSell(c.Request.Context(), accountID, orderReq)
	default:
		// The binding tag already restricts the side; guard here as well so
		// the invariant doesn't live only in a struct tag.
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidOrder),
			Message: "Order side must be buy or sell",
		})
		return
	}

	if err != nil {
		c.JSON(result.StatusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: result.ErrorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, dto.OrderResponse{
		AccountID:   result.AccountID,
		Symbol:      result.Symbol,
		Side:        result.Side,
		Quantity:    result.Quantity,
		UnitPrice:   result.UnitPrice,
		CashBalance: result.CashBalance,
		Success:     result.Success,
	})
}

// parseAccountID extracts and validates the account ID path parameter,
// writing the error response itself when the value is malformed
func parseAccountID(c *gin.Context) (uint64, bool) {
	accountIDParam := c.Param("accountId")
	accountID, err := strconv.ParseUint(accountIDParam, 10, 64)
	if err != nil || accountID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccountID),
			Message: "Invalid account ID format",
		})
		return 0, false
	}
	return accountID, true
}
