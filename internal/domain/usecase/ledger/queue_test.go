package ledger

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ledgerhub/stock-ledger/internal/domain/entity"
	coremocks "github.com/ledgerhub/stock-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQueueLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestOrderQueue_SerializesPerAccount(t *testing.T) {
	var inFlight int32
	var overlaps int32
	var processed int32

	processor := func(ctx context.Context, accountID uint64, symbol string, quantity int64, side entity.Side) (*Execution, error) {
		if atomic.AddInt32(&inFlight, 1) > 1 {
			atomic.AddInt32(&overlaps, 1)
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		atomic.AddInt32(&processed, 1)
		return &Execution{}, nil
	}

	queue := NewOrderQueue(newQueueLogger(t), processor)
	defer queue.Shutdown()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := queue.Enqueue(context.Background(), 1, "AAPL", 1, entity.SideBuy)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), atomic.LoadInt32(&processed))
	assert.Equal(t, int32(0), atomic.LoadInt32(&overlaps), "orders for one account must never overlap")
}

func TestOrderQueue_ParallelAcrossAccounts(t *testing.T) {
	entered := make(chan uint64, 2)
	release := make(chan struct{})

	processor := func(ctx context.Context, accountID uint64, symbol string, quantity int64, side entity.Side) (*Execution, error) {
		entered <- accountID
		<-release
		return &Execution{}, nil
	}

	queue := NewOrderQueue(newQueueLogger(t), processor)
	defer queue.Shutdown()

	var wg sync.WaitGroup
	for _, accountID := range []uint64{1, 2} {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			_, err := queue.Enqueue(context.Background(), id, "AAPL", 1, entity.SideBuy)
			assert.NoError(t, err)
		}(accountID)
	}

	// Both workers must be inside the processor at the same time
	timeout := time.After(2 * time.Second)
	seen := map[uint64]bool{}
	for len(seen) < 2 {
		select {
		case id := <-entered:
			seen[id] = true
		case <-timeout:
			t.Fatal("orders for different accounts did not run in parallel")
		}
	}

	close(release)
	wg.Wait()
}

func TestOrderQueue_PropagatesResult(t *testing.T) {
	expectedErr := errors.New("boom")
	execution := &Execution{}

	processor := func(ctx context.Context, accountID uint64, symbol string, quantity int64, side entity.Side) (*Execution, error) {
		if side == entity.SideBuy {
			return execution, nil
		}
		return nil, expectedErr
	}

	queue := NewOrderQueue(newQueueLogger(t), processor)
	defer queue.Shutdown()

	got, err := queue.Enqueue(context.Background(), 1, "AAPL", 1, entity.SideBuy)
	require.NoError(t, err)
	assert.Same(t, execution, got)

	_, err = queue.Enqueue(context.Background(), 1, "AAPL", 1, entity.SideSell)
	assert.ErrorIs(t, err, expectedErr)
}

func TestOrderQueue_ContextCanceledWhileWaiting(t *testing.T) {
	started := make(chan struct{}, 2)
	release := make(chan struct{})

	processor := func(ctx context.Context, accountID uint64, symbol string, quantity int64, side entity.Side) (*Execution, error) {
		started <- struct{}{}
		<-release
		return &Execution{}, nil
	}

	queue := NewOrderQueue(newQueueLogger(t), processor)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := queue.Enqueue(context.Background(), 1, "AAPL", 1, entity.SideBuy)
		assert.NoError(t, err)
	}()

	<-started

	// The worker is busy, so this caller gives up waiting for its turn
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := queue.Enqueue(ctx, 1, "AAPL", 1, entity.SideBuy)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	wg.Wait()
	queue.Shutdown()
}
