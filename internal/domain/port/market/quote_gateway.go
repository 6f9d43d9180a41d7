package market

import (
	"context"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
)

// QuoteGateway resolves a ticker symbol to a current price and display name.
// It is an external collaborator: calls may be slow, rate-limited, or fail
// transiently, and its results are consumed but never written back.
type QuoteGateway interface {
	// Lookup resolves a symbol to a current quote
	//
	// Possible errors:
	// - ErrUnknownSymbol: If the provider does not recognize the symbol
	// - ErrQuoteUnavailable: If the provider failed transiently
	Lookup(ctx context.Context, symbol string) (*entity.Quote, error)
}
