package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
	"github.com/ledgerhub/stock-ledger/internal/domain/port/market"
	"github.com/ledgerhub/stock-ledger/internal/domain/port/persistence"
)

// Engine executes validated buy and sell orders. Each order is one unit of
// work spanning the account, holding, and transaction stores: either all
// three mutations commit or none do. Callers are expected to serialize
// orders per account (see OrderQueue); the engine additionally takes a row
// lock on the account inside the database transaction.
type Engine struct {
	uow          persistence.UnitOfWork
	gateway      market.QuoteGateway
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// Execution reports the outcome of a committed order
type Execution struct {
	Account     *entity.Account
	Transaction *entity.Transaction
	Quote       *entity.Quote
}

// NewEngine creates a new ledger engine
func NewEngine(
	uow persistence.UnitOfWork,
	gateway market.QuoteGateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		uow:          uow,
		gateway:      gateway,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ExecuteBuy buys quantity shares of symbol for the account at the current
// market price. Fails with ErrInsufficientFunds if the cost exceeds the
// available cash, with no state change.
func (e *Engine) ExecuteBuy(ctx context.Context, accountID uint64, symbol string, quantity int64) (*Execution, error) {
	return e.executeOrder(ctx, accountID, symbol, quantity, entity.SideBuy)
}

// ExecuteSell sells quantity shares of symbol for the account at the current
// market price. Fails with ErrInsufficientShares if the sell would zero out
// or exceed the held quantity, with no state change.
func (e *Engine) ExecuteSell(ctx context.Context, accountID uint64, symbol string, quantity int64) (*Execution, error) {
	return e.executeOrder(ctx, accountID, symbol, quantity, entity.SideSell)
}

// executeOrder runs the fetch-quote, validate, commit sequence for one order
func (e *Engine) executeOrder(ctx context.Context, accountID uint64, symbol string, quantity int64, side entity.Side) (*Execution, error) {
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidOrder, quantity)
	}

	// Price must be consistent with the committed quantities, so the quote
	// is fetched inside the per-account critical section even though the
	// gateway call may be slow.
	quote, err := e.lookupQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	orderValue, err := entity.MultiplyPrice(quote.Price, quantity)
	if err != nil {
		return nil, errs.NewOrderError(accountID, symbol, string(side), quantity, "order value out of range", err)
	}

	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}

	execution, err := e.applyOrder(txCtx, accountID, quote, quantity, orderValue, side)
	if err != nil {
		if rbErr := e.uow.Rollback(txCtx); rbErr != nil {
			e.logger.Error("Failed to roll back order", map[string]any{
				"account_id": accountID,
				"symbol":     quote.Symbol,
				"error":      rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := e.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	e.logger.Info("Order executed", map[string]any{
		"account_id": accountID,
		"symbol":     quote.Symbol,
		"side":       string(side),
		"quantity":   quantity,
		"unit_price": quote.GetPrice(),
		"cash":       execution.Account.GetCash(),
	})

	return execution, nil
}

// applyOrder performs the store mutations inside an open unit of work.
// The caller rolls back on any returned error.
func (e *Engine) applyOrder(txCtx context.Context, accountID uint64, quote *entity.Quote, quantity, orderValue int64, side entity.Side) (*Execution, error) {
	accounts := e.uow.GetAccountRepository(txCtx)
	holdings := e.uow.GetHoldingRepository(txCtx)
	transactions := e.uow.GetTransactionRepository(txCtx)

	account, err := accounts.GetByIDForUpdate(txCtx, accountID)
	if err != nil {
		return nil, err
	}

	switch side {
	case entity.SideBuy:
		if err := e.applyBuy(txCtx, holdings, account, quote, quantity, orderValue); err != nil {
			return nil, err
		}
	case entity.SideSell:
		if err := e.applySell(txCtx, holdings, account, quote, quantity, orderValue); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unsupported side %q", errs.ErrInvalidOrder, side)
	}

	if err := accounts.Update(txCtx, account); err != nil {
		return nil, err
	}

	transaction, err := entity.NewTransaction(accountID, quote.Symbol, quantity, quote.Price, side, e.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := transactions.Create(txCtx, transaction); err != nil {
		return nil, err
	}

	return &Execution{
		Account:     account,
		Transaction: transaction,
		Quote:       quote,
	}, nil
}

// applyBuy debits the cash balance and upserts the holding
func (e *Engine) applyBuy(txCtx context.Context, holdings persistence.HoldingRepository, account *entity.Account, quote *entity.Quote, quantity, cost int64) error {
	if !account.CanAfford(cost) {
		e.logger.Warn("Buy rejected: insufficient funds", map[string]any{
			"account_id": account.ID,
			"symbol":     quote.Symbol,
			"cost":       entity.CentsToString(cost),
			"cash":       account.GetCash(),
		})
		return errs.NewInsufficientFundsError(account.ID, entity.CentsToString(cost), account.GetCash())
	}
	if err := account.ApplyDebit(cost, e.timeProvider); err != nil {
		return err
	}

	holding, err := holdings.GetByAccountAndSymbol(txCtx, account.ID, quote.Symbol)
	switch {
	case err == nil:
		if err := holding.AddShares(quantity, e.timeProvider); err != nil {
			return err
		}
		return holdings.Update(txCtx, holding)
	case errors.Is(err, errs.ErrHoldingNotFound):
		opened, err := entity.NewHolding(account.ID, quote.Symbol, quote.Name, quantity, quote.Price, e.timeProvider)
		if err != nil {
			return err
		}
		return holdings.Create(txCtx, opened)
	default:
		return err
	}
}

// applySell credits the cash balance and decrements the holding
func (e *Engine) applySell(txCtx context.Context, holdings persistence.HoldingRepository, account *entity.Account, quote *entity.Quote, quantity, proceeds int64) error {
	holding, err := holdings.GetByAccountAndSymbol(txCtx, account.ID, quote.Symbol)
	var held int64
	switch {
	case err == nil:
		held = holding.Quantity
	case errors.Is(err, errs.ErrHoldingNotFound):
		held = 0
	default:
		return err
	}

	// Strict policy: a sell that would bring the position to exactly zero
	// is rejected, not just one that would go negative.
	if held-quantity <= 0 {
		e.logger.Warn("Sell rejected: insufficient shares", map[string]any{
			"account_id": account.ID,
			"symbol":     quote.Symbol,
			"requested":  quantity,
			"held":       held,
		})
		return errs.NewInsufficientSharesError(account.ID, quote.Symbol, quantity, held)
	}

	account.ApplyCredit(proceeds, e.timeProvider)

	if err := holding.RemoveShares(quantity, e.timeProvider); err != nil {
		return err
	}
	if holding.Quantity <= 0 {
		// Unreachable under the strict policy above; kept so a zero row can
		// never be written if the policy changes.
		return holdings.Delete(txCtx, account.ID, quote.Symbol)
	}
	return holdings.Update(txCtx, holding)
}

// lookupQuote resolves a symbol via the quote gateway, mapping gateway
// failures onto the domain error taxonomy
func (e *Engine) lookupQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	quote, err := e.gateway.Lookup(ctx, symbol)
	if err != nil {
		if errors.Is(err, errs.ErrUnknownSymbol) {
			e.logger.Warn("Order rejected: unknown symbol", map[string]any{
				"symbol": symbol,
			})
			return nil, errs.NewQuoteError(symbol, errs.ErrUnknownSymbol)
		}
		e.logger.Error("Quote gateway failure", map[string]any{
			"symbol": symbol,
			"error":  err.Error(),
		})
		return nil, errs.NewQuoteError(symbol, fmt.Errorf("%w: %s", errs.ErrQuoteUnavailable, err.Error()))
	}
	return quote, nil
}
