// Package exchange
package exchange

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amirphl/futures-trader/internal/order"
)

// Exchange is the interface for the remote trading venue.
type Exchange interface {
	Name() string
	// Ping verifies connectivity and credentials.
	Ping(ctx context.Context) error
	// QueryBalances returns the futures account balances keyed by asset.
	QueryBalances(ctx context.Context) (map[string]Balance, error)
	// SubmitOrder places the order and returns the exchange's response
	// unmodified. Failures are returned as *ExchangeError (rejection) or a
	// wrapped transport error. No retries.
	SubmitOrder(ctx context.Context, spec order.Spec) (order.Result, error)
}

// Balance is a single asset's futures account balance.
type Balance struct {
	Asset     string
	Balance   decimal.Decimal
	Available decimal.Decimal
}

// ExchangeError is a rejection returned by the exchange (insufficient
// balance, unknown symbol, precision out of range, ...). It is surfaced to
// the caller as-is, never retried.
type ExchangeError struct {
	Code    int64
	Message string
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("exchange rejected request: code=%d %s", e.Code, e.Message)
}
