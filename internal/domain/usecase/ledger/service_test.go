package ledger

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coremocks "github.com/ledgerhub/stock-ledger/mocks/port/core"
	marketmocks "github.com/ledgerhub/stock-ledger/mocks/port/market"
	persistencemocks "github.com/ledgerhub/stock-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	service      *Service
	uow          *persistencemocks.MockUnitOfWork
	gateway      *marketmocks.MockQuoteGateway
	accounts     *persistencemocks.MockAccountRepository
	holdings     *persistencemocks.MockHoldingRepository
	transactions *persistencemocks.MockTransactionRepository
	timeProvider *coremocks.MockTimeProvider
}

func newServiceFixture(t *testing.T) *serviceFixture {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	uow := persistencemocks.NewMockUnitOfWork(t)
	gateway := marketmocks.NewMockQuoteGateway(t)

	return &serviceFixture{
		service:      NewService(uow, gateway, timeProvider, logger),
		uow:          uow,
		gateway:      gateway,
		accounts:     persistencemocks.NewMockAccountRepository(t),
		holdings:     persistencemocks.NewMockHoldingRepository(t),
		transactions: persistencemocks.NewMockTransactionRepository(t),
		timeProvider: timeProvider,
	}
}

func (f *serviceFixture) expectUnitOfWork(ctx context.Context) {
	f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
	f.uow.EXPECT().GetAccountRepository(mock.Anything).Return(f.accounts).Once()
	f.uow.EXPECT().GetHoldingRepository(mock.Anything).Return(f.holdings).Once()
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.transactions).Once()
}

func TestService_ExecuteBuy_Success(t *testing.T) {
	f := newServiceFixture(t)
	defer f.service.Shutdown()
	ctx := context.Background()

	account, err := entity.NewAccount(1, "1000.00", f.timeProvider)
	require.NoError(t, err)

	f.gateway.EXPECT().Lookup(mock.Anything, "AAPL").
		Return(&entity.Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: 10000}, nil).Once()
	f.expectUnitOfWork(ctx)
	f.accounts.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(account, nil).Once()
	f.holdings.EXPECT().GetByAccountAndSymbol(mock.Anything, uint64(1), "AAPL").
		Return(nil, errs.ErrHoldingNotFound).Once()
	f.holdings.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Holding")).Return(nil).Once()
	f.accounts.EXPECT().Update(mock.Anything, account).Return(nil).Once()
	f.transactions.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()
	f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

	// Symbol is normalized before it reaches the gateway
	resp, err := f.service.ExecuteBuy(ctx, 1, OrderRequest{Symbol: " aapl ", Quantity: "5"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "AAPL", resp.Symbol)
	assert.Equal(t, "buy", resp.Side)
	assert.Equal(t, int64(5), resp.Quantity)
	assert.Equal(t, "100.00", resp.UnitPrice)
	assert.Equal(t, "500.00", resp.CashBalance)
}

func TestService_ExecuteBuy_InvalidQuantity(t *testing.T) {
	f := newServiceFixture(t)
	defer f.service.Shutdown()

	resp, err := f.service.ExecuteBuy(context.Background(), 1, OrderRequest{Symbol: "AAPL", Quantity: "1.5"})
	assert.ErrorIs(t, err, errs.ErrInvalidOrder)
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestService_ExecuteBuy_BlankSymbol(t *testing.T) {
	f := newServiceFixture(t)
	defer f.service.Shutdown()

	// Whitespace survives JSON binding but normalizes to an empty symbol
	resp, err := f.service.ExecuteBuy(context.Background(), 1, OrderRequest{Symbol: "   ", Quantity: "5"})
	assert.ErrorIs(t, err, errs.ErrInvalidSymbol)
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestService_ExecuteSell_ZeroAccountID(t *testing.T) {
	f := newServiceFixture(t)
	defer f.service.Shutdown()

	resp, err := f.service.ExecuteSell(context.Background(), 0, OrderRequest{Symbol: "AAPL", Quantity: "5"})
	assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestService_ExecuteBuy_UnknownSymbol(t *testing.T) {
	f := newServiceFixture(t)
	defer f.service.Shutdown()

	f.gateway.EXPECT().Lookup(mock.Anything, "NOPE").Return(nil, errs.ErrUnknownSymbol).Once()

	resp, err := f.service.ExecuteBuy(context.Background(), 1, OrderRequest{Symbol: "NOPE", Quantity: "5"})
	assert.ErrorIs(t, err, errs.ErrUnknownSymbol)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestService_ExecuteBuy_QuoteUnavailable(t *testing.T) {
	f := newServiceFixture(t)
	defer f.service.Shutdown()

	f.gateway.EXPECT().Lookup(mock.Anything, "AAPL").
		Return(nil, errors.New("connection refused")).Once()

	resp, err := f.service.ExecuteBuy(context.Background(), 1, OrderRequest{Symbol: "AAPL", Quantity: "5"})
	assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestService_ExecuteSell_AccountNotFound(t *testing.T) {
	f := newServiceFixture(t)
	defer f.service.Shutdown()
	ctx := context.Background()

	f.gateway.EXPECT().Lookup(mock.Anything, "AAPL").
		Return(&entity.Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: 10000}, nil).Once()
	f.expectUnitOfWork(ctx)
	f.accounts.EXPECT().GetByIDForUpdate(mock.Anything, uint64(99)).
		Return(nil, errs.ErrAccountNotFound).Once()
	f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

	resp, err := f.service.ExecuteSell(ctx, 99, OrderRequest{Symbol: "AAPL", Quantity: "5"})
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestService_ExecuteBuy_ConcurrencyConflict(t *testing.T) {
	f := newServiceFixture(t)
	defer f.service.Shutdown()
	ctx := context.Background()

	account, err := entity.NewAccount(1, "1000.00", f.timeProvider)
	require.NoError(t, err)

	f.gateway.EXPECT().Lookup(mock.Anything, "AAPL").
		Return(&entity.Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: 10000}, nil).Once()
	f.expectUnitOfWork(ctx)
	f.accounts.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(account, nil).Once()
	f.holdings.EXPECT().GetByAccountAndSymbol(mock.Anything, uint64(1), "AAPL").
		Return(nil, errs.ErrHoldingNotFound).Once()
	f.holdings.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Holding")).Return(nil).Once()
	f.accounts.EXPECT().Update(mock.Anything, account).Return(nil).Once()
	f.transactions.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()
	f.uow.EXPECT().Commit(mock.Anything).Return(errors.New("deadlock detected")).Once()

	resp, err := f.service.ExecuteBuy(ctx, 1, OrderRequest{Symbol: "AAPL", Quantity: "5"})
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, resp.ErrorMessage, "try again")
}
