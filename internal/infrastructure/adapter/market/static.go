package market

import (
	"context"
	"strings"
	"sync"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	"github.com/ledgerhub/stock-ledger/internal/domain/port/market"
)

// StaticGateway serves quotes from an in-memory table. Used for local
// development and tests where no provider is reachable.
type StaticGateway struct {
	mu     sync.RWMutex
	quotes map[string]entity.Quote
}

// NewStaticGateway creates a gateway preloaded with the given quotes
func NewStaticGateway(quotes ...entity.Quote) *StaticGateway {
	table := make(map[string]entity.Quote, len(quotes))
	for _, q := range quotes {
		table[strings.ToUpper(q.Symbol)] = q
	}
	return &StaticGateway{quotes: table}
}

// Lookup returns the stored quote for a symbol
func (g *StaticGateway) Lookup(_ context.Context, symbol string) (*entity.Quote, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	quote, ok := g.quotes[strings.ToUpper(symbol)]
	if !ok {
		return nil, errs.ErrUnknownSymbol
	}
	return &quote, nil
}

// SetQuote adds or replaces a quote in the table
func (g *StaticGateway) SetQuote(quote entity.Quote) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.quotes[strings.ToUpper(quote.Symbol)] = quote
}

var _ market.QuoteGateway = (*StaticGateway)(nil)
