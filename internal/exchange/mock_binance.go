package exchange

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirphl/futures-trader/internal/order"
)

// MockFutures provides canned responses instead of hitting the exchange.
// It backs the --dry-run flag and the tests.
type MockFutures struct {
	orderCounter atomic.Int64
	balances     map[string]Balance
}

func NewMockFutures() *MockFutures {
	return &MockFutures{
		balances: map[string]Balance{
			"USDT": {
				Asset:     "USDT",
				Balance:   decimal.RequireFromString("10000"),
				Available: decimal.RequireFromString("10000"),
			},
		},
	}
}

func (m *MockFutures) Name() string {
	return "mock-binance-futures"
}

func (m *MockFutures) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func (m *MockFutures) QueryBalances(ctx context.Context) (map[string]Balance, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		balances := make(map[string]Balance, len(m.balances))
		for asset, b := range m.balances {
			balances[asset] = b
		}
		return balances, nil
	}
}

// SubmitOrder fills every order immediately at the requested price.
func (m *MockFutures) SubmitOrder(ctx context.Context, spec order.Spec) (order.Result, error) {
	select {
	case <-ctx.Done():
		return order.Result{}, ctx.Err()
	default:
		id := m.orderCounter.Add(1)
		now := time.Now().UTC()

		return order.Result{
			OrderID:       id,
			ClientOrderID: fmt.Sprintf("mock-%d-%d", now.Unix(), id),
			Symbol:        spec.Symbol,
			Status:        "FILLED",
			Side:          string(spec.Side),
			Type:          string(spec.Type),
			Price:         spec.Price.String(),
			OrigQuantity:  spec.Quantity.String(),
			ExecutedQty:   spec.Quantity.String(),
			AvgPrice:      spec.Price.String(),
			UpdateTime:    now,
		}, nil
	}
}
