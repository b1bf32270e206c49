package exchange

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirphl/futures-trader/internal/order"
)

func TestMockFutures_SubmitOrder(t *testing.T) {
	m := NewMockFutures()

	spec, err := order.Build("BTCUSDT", "buy", "limit", "0.01", "30000", "")
	require.NoError(t, err)

	first, err := m.SubmitOrder(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, "FILLED", first.Status)
	assert.Equal(t, "BTCUSDT", first.Symbol)
	assert.Equal(t, "0.01", first.ExecutedQty)
	assert.Equal(t, "30000", first.AvgPrice)

	second, err := m.SubmitOrder(context.Background(), spec)
	require.NoError(t, err)
	assert.NotEqual(t, first.OrderID, second.OrderID)
}

func TestMockFutures_CanceledContext(t *testing.T) {
	m := NewMockFutures()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	spec, err := order.Build("BTCUSDT", "sell", "market", "1", "", "")
	require.NoError(t, err)

	_, err = m.SubmitOrder(ctx, spec)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = m.QueryBalances(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockFutures_QueryBalances(t *testing.T) {
	m := NewMockFutures()

	balances, err := m.QueryBalances(context.Background())
	require.NoError(t, err)

	b, ok := balances["USDT"]
	require.True(t, ok)
	assert.Equal(t, "USDT", b.Asset)
	assert.True(t, b.Available.IsPositive())
}
