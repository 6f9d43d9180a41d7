package ledger

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
	"github.com/ledgerhub/stock-ledger/internal/domain/port/market"
	"github.com/ledgerhub/stock-ledger/internal/domain/port/persistence"
)

// OrderRequest represents an incoming order. Quantity stays a string until
// validation so that malformed input is rejected as an invalid order rather
// than failing JSON binding.
type OrderRequest struct {
	Symbol   string
	Quantity string
}

// OrderResponse represents the outcome of an order for the presentation layer
type OrderResponse struct {
	Success      bool
	AccountID    uint64
	Symbol       string
	Side         string
	Quantity     int64
	UnitPrice    string
	CashBalance  string
	ErrorMessage string
	StatusCode   int
}

// Service is the ledger API surface exposed to the presentation layer. It
// ties validation, per-account serialization, and the engine together.
type Service struct {
	engine    *Engine
	validator *OrderValidator
	queue     *OrderQueue
	logger    coreport.Logger
}

// NewService creates a new ledger service
func NewService(
	uow persistence.UnitOfWork,
	gateway market.QuoteGateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	engine := NewEngine(uow, gateway, timeProvider, logger)
	queue := NewOrderQueue(logger, engine.executeOrder)

	return &Service{
		engine:    engine,
		validator: NewOrderValidator(),
		queue:     queue,
		logger:    logger,
	}
}

// ExecuteBuy validates and executes a buy order for the account
func (s *Service) ExecuteBuy(ctx context.Context, accountID uint64, req OrderRequest) (*OrderResponse, error) {
	return s.execute(ctx, accountID, req, entity.SideBuy)
}

// ExecuteSell validates and executes a sell order for the account
func (s *Service) ExecuteSell(ctx context.Context, accountID uint64, req OrderRequest) (*OrderResponse, error) {
	return s.execute(ctx, accountID, req, entity.SideSell)
}

// execute runs one order through validation and the per-account queue
func (s *Service) execute(ctx context.Context, accountID uint64, req OrderRequest, side entity.Side) (*OrderResponse, error) {
	symbol, quantity, err := s.validator.ValidateOrder(accountID, req.Symbol, req.Quantity)
	if err != nil {
		return s.failureResponse(accountID, req.Symbol, side, 0, err), err
	}

	execution, err := s.queue.Enqueue(ctx, accountID, symbol, quantity, side)
	if err != nil {
		s.logger.Error("Order processing failed", map[string]any{
			"account_id": accountID,
			"symbol":     symbol,
			"side":       string(side),
			"quantity":   quantity,
			"error":      err.Error(),
		})
		return s.failureResponse(accountID, symbol, side, quantity, err), err
	}

	return &OrderResponse{
		Success:     true,
		AccountID:   accountID,
		Symbol:      execution.Transaction.Symbol,
		Side:        string(side),
		Quantity:    execution.Transaction.Quantity,
		UnitPrice:   execution.Transaction.GetUnitPrice(),
		CashBalance: execution.Account.GetCash(),
		StatusCode:  http.StatusOK,
	}, nil
}

// failureResponse maps a domain error onto a presentation-layer response
func (s *Service) failureResponse(accountID uint64, symbol string, side entity.Side, quantity int64, err error) *OrderResponse {
	statusCode := http.StatusInternalServerError
	errorMessage := err.Error()

	switch {
	case errs.IsInvalidOrderError(err),
		errs.IsUnknownSymbolError(err),
		errs.IsInsufficientFundsError(err),
		errs.IsInsufficientSharesError(err),
		errors.Is(err, errs.ErrInvalidSymbol),
		errors.Is(err, errs.ErrInvalidAccountID):
		statusCode = http.StatusBadRequest

	case errs.IsAccountNotFoundError(err), errs.IsNotFoundError(err):
		statusCode = http.StatusNotFound

	case errs.IsQuoteUnavailableError(err):
		statusCode = http.StatusBadGateway

	// Identify database concurrency errors specifically
	case strings.Contains(strings.ToLower(err.Error()), "deadlock"),
		strings.Contains(strings.ToLower(err.Error()), "serialization"):
		statusCode = http.StatusConflict
		errorMessage = "Order could not be processed due to concurrent operations. Please try again."
	}

	return &OrderResponse{
		Success:      false,
		AccountID:    accountID,
		Symbol:       symbol,
		Side:         string(side),
		Quantity:     quantity,
		ErrorMessage: errorMessage,
		StatusCode:   statusCode,
	}
}

// Shutdown drains the per-account order workers
func (s *Service) Shutdown() {
	s.queue.Shutdown()
}
