package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerr "github.com/ledgerhub/stock-ledger/internal/domain/error"
	"github.com/ledgerhub/stock-ledger/internal/domain/usecase/ledger"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/ledgerhub/stock-ledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/ledgerhub/stock-ledger/mocks/port/core"
	marketmocks "github.com/ledgerhub/stock-ledger/mocks/port/market"
	persistencemocks "github.com/ledgerhub/stock-ledger/mocks/port/persistence"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newOrderRouter builds a router whose ledger service has no usable backing
// stores, for exercising request paths that must be rejected before any
// store or gateway is touched.
func newOrderRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := ledger.NewService(
		persistencemocks.NewMockUnitOfWork(t),
		marketmocks.NewMockQuoteGateway(t),
		coremocks.NewMockTimeProvider(t),
		logger.NewNoopLogger(),
	)
	t.Cleanup(service.Shutdown)

	router := gin.New()
	router.POST("/account/:accountId/orders", NewOrderHandler(service, logger.NewNoopLogger()).PlaceOrder)
	return router
}

func placeOrder(t *testing.T, router *gin.Engine, accountID, body string) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	req := httptest.NewRequest(http.MethodPost, "/account/"+accountID+"/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	return recorder, errResp
}

func TestPlaceOrder_UnsupportedSide(t *testing.T) {
	router := newOrderRouter(t)

	recorder, _ := placeOrder(t, router, "1", `{"side":"short","symbol":"AAPL","quantity":"5"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPlaceOrder_BlankSymbol(t *testing.T) {
	router := newOrderRouter(t)

	recorder, errResp := placeOrder(t, router, "1", `{"side":"buy","symbol":"   ","quantity":"5"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, domainerr.CodeUnknownSymbol, errResp.Code)
}

func TestPlaceOrder_InvalidAccountID(t *testing.T) {
	router := newOrderRouter(t)

	for _, accountID := range []string{"abc", "0", "-1"} {
		t.Run(accountID, func(t *testing.T) {
			recorder, errResp := placeOrder(t, router, accountID, `{"side":"buy","symbol":"AAPL","quantity":"5"}`)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Equal(t, domainerr.CodeInvalidAccountID, errResp.Code)
		})
	}
}
