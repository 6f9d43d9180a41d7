package ledger

import (
	"context"
	"sync"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
	errs "github.com/ledgerhub/stock-ledger/internal/domain/error"
	coreport "github.com/ledgerhub/stock-ledger/internal/domain/port/core"
)

// OrderQueue serializes order processing per account. Orders for the same
// account are handed to a dedicated worker goroutine and processed strictly
// one at a time, covering the whole fetch-quote, validate, commit sequence;
// orders for different accounts proceed fully in parallel.
type OrderQueue struct {
	logger coreport.Logger

	// Account-based order queues for strict per-account ordering
	accountQueues  sync.Map // map[uint64]chan *orderRequest
	queueWaitGroup sync.WaitGroup

	// Function that executes a single order
	processor OrderProcessorFunc
}

// OrderProcessorFunc is the function signature for executing a single order
type OrderProcessorFunc func(ctx context.Context, accountID uint64, symbol string, quantity int64, side entity.Side) (*Execution, error)

// orderRequest represents a queued order
type orderRequest struct {
	ctx        context.Context
	accountID  uint64
	symbol     string
	quantity   int64
	side       entity.Side
	resultChan chan *orderResult
}

// orderResult represents the outcome of a processed order
type orderResult struct {
	execution *Execution
	err       error
}

// NewOrderQueue creates a new order queue
func NewOrderQueue(logger coreport.Logger, processor OrderProcessorFunc) *OrderQueue {
	if processor == nil {
		panic("Order processor function cannot be nil")
	}

	return &OrderQueue{
		logger:    logger,
		processor: processor,
	}
}

// Enqueue adds an order to the account's queue and blocks until it has been
// processed or the context is canceled
func (q *OrderQueue) Enqueue(ctx context.Context, accountID uint64, symbol string, quantity int64, side entity.Side) (*Execution, error) {
	q.logger.Debug("Enqueuing order for sequential processing", map[string]any{
		"account_id": accountID,
		"symbol":     symbol,
		"side":       string(side),
	})

	resultChan := make(chan *orderResult, 1)

	// Get or create the queue for this account
	var queue chan *orderRequest
	queueIface, loaded := q.accountQueues.LoadOrStore(accountID, make(chan *orderRequest, 100))
	if queueCh, ok := queueIface.(chan *orderRequest); ok {
		queue = queueCh
	} else {
		q.logger.Error("Failed to type assert queue channel", nil)
		return nil, errs.ErrInternalServer
	}

	// Start a worker if this is a new queue
	if !loaded {
		q.logger.Info("Starting order queue worker for account", map[string]any{
			"account_id": accountID,
		})
		q.queueWaitGroup.Add(1)
		go q.processAccountOrders(accountID, queue)
	}

	req := &orderRequest{
		ctx:        ctx,
		accountID:  accountID,
		symbol:     symbol,
		quantity:   quantity,
		side:       side,
		resultChan: resultChan,
	}

	select {
	case queue <- req:
	case <-ctx.Done():
		q.logger.Warn("Context canceled while enqueueing order", map[string]any{
			"account_id": accountID,
			"symbol":     symbol,
			"error":      ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	select {
	case result := <-resultChan:
		return result.execution, result.err
	case <-ctx.Done():
		q.logger.Warn("Context canceled while waiting for order result", map[string]any{
			"account_id": accountID,
			"symbol":     symbol,
			"error":      ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// processAccountOrders is the worker goroutine for one account's queue
func (q *OrderQueue) processAccountOrders(accountID uint64, queue chan *orderRequest) {
	defer q.queueWaitGroup.Done()

	q.logger.Info("Order queue worker started", map[string]any{
		"account_id": accountID,
	})

	for req := range queue {
		q.logger.Debug("Processing queued order", map[string]any{
			"account_id": accountID,
			"symbol":     req.symbol,
			"side":       string(req.side),
		})

		execution, err := q.processor(req.ctx, req.accountID, req.symbol, req.quantity, req.side)

		req.resultChan <- &orderResult{
			execution: execution,
			err:       err,
		}
		close(req.resultChan)
	}

	q.logger.Info("Order queue worker stopped", map[string]any{
		"account_id": accountID,
	})
}

// Shutdown stops all worker goroutines cleanly
func (q *OrderQueue) Shutdown() {
	q.logger.Info("Shutting down order queue", nil)

	q.accountQueues.Range(func(accountID, queueIface interface{}) bool {
		if queue, ok := queueIface.(chan *orderRequest); ok {
			q.logger.Debug("Closing order queue for account", map[string]any{
				"account_id": accountID,
			})
			close(queue)
		}
		return true
	})

	q.queueWaitGroup.Wait()
	q.logger.Info("Order queue shut down successfully", nil)
}
