package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
	"github.com/ledgerhub/stock-ledger/internal/domain/port/market"
)

// unknownSentinel marks symbols the provider reported as nonexistent, so
// repeated lookups of bad symbols don't hammer the provider
const unknownSentinel = "__unknown__"

// CachedGateway decorates a QuoteGateway with a short-lived Redis cache.
// Cache failures degrade to direct provider lookups; they never fail an
// order on their own.
type CachedGateway struct {
	inner  market.QuoteGateway
	client *goredis.Client
	ttl    coreport.Duration
	logger coreport.Logger
}

// CacheConfig holds quote cache settings
type CacheConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTL      coreport.Duration
}

// NewCachedGateway wraps a gateway with a Redis quote cache
func NewCachedGateway(inner market.QuoteGateway, config CacheConfig, logger coreport.Logger) *CachedGateway {
	client := goredis.NewClient(&goredis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &CachedGateway{
		inner:  inner,
		client: client,
		ttl:    config.TTL,
		logger: logger,
	}
}

// Lookup returns a cached quote when fresh, otherwise delegates to the
// wrapped gateway and caches the result
func (g *CachedGateway) Lookup(ctx context.Context, symbol string) (*entity.Quote, error) {
	key := cacheKey(symbol)

	cached, err := g.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if cached == unknownSentinel {
			return nil, errs.ErrUnknownSymbol
		}
		var quote entity.Quote
		if unmarshalErr := json.Unmarshal([]byte(cached), &quote); unmarshalErr == nil {
			return &quote, nil
		}
		// Corrupt entry falls through to a fresh lookup
		g.logger.Warn("Discarding corrupt cached quote", map[string]any{"symbol": symbol})
	case !errors.Is(err, goredis.Nil):
		g.logger.Warn("Quote cache read failed", map[string]any{
			"symbol": symbol,
			"error":  err.Error(),
		})
	}

	quote, err := g.inner.Lookup(ctx, symbol)
	if err != nil {
		if errors.Is(err, errs.ErrUnknownSymbol) {
			g.store(ctx, key, unknownSentinel)
		}
		return nil, err
	}

	if payload, marshalErr := json.Marshal(quote); marshalErr == nil {
		g.store(ctx, key, string(payload))
	}

	return quote, nil
}

// Close releases the Redis connection
func (g *CachedGateway) Close() error {
	return g.client.Close()
}

func (g *CachedGateway) store(ctx context.Context, key, value string) {
	if err := g.client.Set(ctx, key, value, g.ttl.Std()).Err(); err != nil {
		g.logger.Warn("Quote cache write failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func cacheKey(symbol string) string {
	return fmt.Sprintf("quote:%s", symbol)
}

var _ market.QuoteGateway = (*CachedGateway)(nil)
