package checkout

import (
	"context"
	"fmt"

	"github.com/sivanaveen080/biryani-for-lunch/internal/sheets"
	pkgerrors "github.com/sivanaveen080/biryani-for-lunch/pkg/errors"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/redis"
)

const localCounterName = "order_id"

// RemoteAllocator submits the order row to the sheet service and returns the
// identifier the sheet assigned. The sheet is authoritative; the id is only
// mirrored locally for display.
type RemoteAllocator struct {
	orders sheets.Service
}

// NewRemoteAllocator wraps the sheets client as an allocator.
func NewRemoteAllocator(orders sheets.Service) (*RemoteAllocator, error) {
	if orders == nil {
		return nil, fmt.Errorf("sheets service required")
	}
	return &RemoteAllocator{orders: orders}, nil
}

func (a *RemoteAllocator) AllocateOrderID(ctx context.Context, sub Submission) (int64, error) {
	return a.orders.CreateOrder(ctx, sheets.CreateOrderInput{
		Name:         sub.CustomerName,
		Mobile:       sub.CustomerMobile,
		Items:        sub.ItemsText(),
		ItemsTotal:   sub.ItemsTotal,
		PayableTotal: sub.PayableTotal,
	})
}

// LocalAllocator owns the order identifier directly: a persisted monotonic
// counter, incremented and durably written before the id is surfaced.
type LocalAllocator struct {
	counter redis.CounterStore
}

// NewLocalAllocator wraps the counter store as an allocator.
func NewLocalAllocator(counter redis.CounterStore) (*LocalAllocator, error) {
	if counter == nil {
		return nil, fmt.Errorf("counter store required")
	}
	return &LocalAllocator{counter: counter}, nil
}

func (a *LocalAllocator) AllocateOrderID(ctx context.Context, _ Submission) (int64, error) {
	id, err := a.counter.Incr(ctx, a.counter.CounterKey(localCounterName))
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "advancing local order counter")
	}
	return id, nil
}
