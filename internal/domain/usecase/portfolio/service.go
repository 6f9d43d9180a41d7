package portfolio

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

// Service computes portfolio valuations and maintains the cached quote
// fields on holdings. GetPortfolio is a pure read; RefreshQuotes is the
// explicit side-effecting counterpart that persists current prices.
type Service struct {
	uow          persistence.UnitOfWork
	gateway      market.QuoteGateway
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new portfolio service
func NewService(
	uow persistence.UnitOfWork,
	gateway market.QuoteGateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		gateway:      gateway,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetPortfolio values every holding of the account at current quotes and
// returns the lines plus the grand total (cash + sum of line totals).
// All quotes are fetched before anything is computed; a single failed
// lookup fails the whole valuation with ErrQuoteUnavailable and no line is
// returned. Nothing is persisted.
func (s *Service) GetPortfolio(ctx context.Context, accountID uint64) (*entity.PortfolioView, error) {
	account, holdings, err := s.loadAccountState(ctx, accountID)
	if err != nil {
		return nil, err
	}

	quotes, err := s.fetchQuotes(ctx, holdings)
	if err != nil {
		return nil, err
	}

	lines := make([]entity.PortfolioLine, 0, len(holdings))
	grandTotal := account.Cash()
	for i := range holdings {
		quote := quotes[holdings[i].Symbol]
		line, err := entity.NewPortfolioLine(&holdings[i], quote.Price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)

		total, err := entity.MultiplyPrice(quote.Price, holdings[i].Quantity)
		if err != nil {
			return nil, err
		}
		grandTotal += total
	}

	s.logger.Debug("Portfolio computed", map[string]any{
		"account_id":  accountID,
		"positions":   len(lines),
		"grand_total": entity.CentsToString(grandTotal),
	})

	return &entity.PortfolioView{
		AccountID:  accountID,
		Cash:       account.GetCash(),
		Lines:      lines,
		GrandTotal: entity.CentsToString(grandTotal),
	}, nil
}

// RefreshQuotes re-prices every holding of the account and persists the
// cached last_price/last_total fields. All quotes are fetched up front and
// the cache updates commit in a single unit of work, so a failed lookup
// leaves no partially refreshed state.
func (s *Service) RefreshQuotes(ctx context.Context, accountID uint64) error {
	_, holdings, err := s.loadAccountState(ctx, accountID)
	if err != nil {
		return err
	}
	if len(holdings) == 0 {
		return nil
	}

	quotes, err := s.fetchQuotes(ctx, holdings)
	if err != nil {
		return err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}

	holdingRepo := s.uow.GetHoldingRepository(txCtx)
	for i := range holdings {
		quote := quotes[holdings[i].Symbol]
		if err := holdings[i].RefreshQuote(quote.Price, s.timeProvider); err != nil {
			s.rollback(txCtx, accountID)
			return err
		}
		if err := holdingRepo.Update(txCtx, &holdings[i]); err != nil {
			s.rollback(txCtx, accountID)
			return err
		}
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return fmt.Errorf("failed to commit quote refresh: %w", err)
	}

	s.logger.Info("Holding quote cache refreshed", map[string]any{
		"account_id": accountID,
		"positions":  len(holdings),
	})
	return nil
}

// GetTransactions returns the account's audit trail of executed orders
func (s *Service) GetTransactions(ctx context.Context, accountID uint64) ([]entity.Transaction, error) {
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}

	// Verify the account exists so an unknown ID is a 404, not an empty list
	if _, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	return s.uow.GetTransactionRepository(ctx).ListByAccount(ctx, accountID)
}

// loadAccountState reads the account and its holdings outside any unit of work
func (s *Service) loadAccountState(ctx context.Context, accountID uint64) (*entity.Account, []entity.Holding, error) {
	if accountID == 0 {
		return nil, nil, errs.ErrInvalidAccountID
	}

	account, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	holdings, err := s.uow.GetHoldingRepository(ctx).ListByAccount(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	return account, holdings, nil
}

// fetchQuotes resolves every distinct symbol before any state is touched
func (s *Service) fetchQuotes(ctx context.Context, holdings []entity.Holding) (map[string]*entity.Quote, error) {
	quotes := make(map[string]*entity.Quote, len(holdings))
	for i := range holdings {
		symbol := holdings[i].Symbol
		if _, ok := quotes[symbol]; ok {
			continue
		}

		quote, err := s.gateway.Lookup(ctx, symbol)
		if err != nil {
			s.logger.Error("Valuation aborted: quote lookup failed", map[string]any{
				"symbol": symbol,
				"error":  err.Error(),
			})
			// A held symbol that fails to resolve for any reason is a
			// gateway failure from the valuation's point of view.
			if errors.Is(err, errs.ErrQuoteUnavailable) {
				return nil, errs.NewQuoteError(symbol, err)
			}
			return nil, errs.NewQuoteError(symbol, fmt.Errorf("%w: %s", errs.ErrQuoteUnavailable, err.Error()))
		}
		quotes[symbol] = quote
	}
	return quotes, nil
}

// rollback rolls back a unit of work, logging secondary failures
func (s *Service) rollback(txCtx context.Context, accountID uint64) {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Failed to roll back quote refresh", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
	}
}
