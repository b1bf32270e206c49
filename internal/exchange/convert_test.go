package exchange

import (
	"testing"
	"time"

	"github.com/adshao/go-binance/v2/common"
	"github.com/adshao/go-binance/v2/futures"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirphl/futures-trader/internal/order"
)

func TestToFuturesSide(t *testing.T) {
	assert.Equal(t, futures.SideTypeBuy, toFuturesSide(order.SideBuy))
	assert.Equal(t, futures.SideTypeSell, toFuturesSide(order.SideSell))
}

func TestToFuturesOrderType(t *testing.T) {
	assert.Equal(t, futures.OrderTypeMarket, toFuturesOrderType(order.TypeMarket))
	assert.Equal(t, futures.OrderTypeLimit, toFuturesOrderType(order.TypeLimit))
	assert.Equal(t, futures.OrderTypeStop, toFuturesOrderType(order.TypeStopLimit))
}

func TestToOrderResult(t *testing.T) {
	resp := &futures.CreateOrderResponse{
		OrderID:          123456,
		ClientOrderID:    "abc-1",
		Symbol:           "BTCUSDT",
		Status:           futures.OrderStatusTypeNew,
		Side:             futures.SideTypeBuy,
		Type:             futures.OrderTypeLimit,
		Price:            "30000",
		OrigQuantity:     "0.01",
		ExecutedQuantity: "0",
		AvgPrice:         "0",
		UpdateTime:       1700000000000,
	}

	result := toOrderResult(resp)
	assert.Equal(t, int64(123456), result.OrderID)
	assert.Equal(t, "abc-1", result.ClientOrderID)
	assert.Equal(t, "BTCUSDT", result.Symbol)
	assert.Equal(t, "NEW", result.Status)
	assert.Equal(t, "BUY", result.Side)
	assert.Equal(t, "LIMIT", result.Type)
	assert.Equal(t, "30000", result.Price)
	assert.Equal(t, "0.01", result.OrigQuantity)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), result.UpdateTime)
}

func TestConvertError(t *testing.T) {
	t.Run("API rejection", func(t *testing.T) {
		apiErr := &common.APIError{Code: -2019, Message: "Margin is insufficient."}

		err := convertError(apiErr)
		var exErr *ExchangeError
		require.ErrorAs(t, err, &exErr)
		assert.Equal(t, int64(-2019), exErr.Code)
		assert.Equal(t, "Margin is insufficient.", exErr.Message)
	})

	t.Run("transport failure", func(t *testing.T) {
		err := convertError(errors.New("connection refused"))
		var exErr *ExchangeError
		assert.False(t, errors.As(err, &exErr))
		assert.Contains(t, err.Error(), "futures API request failed")
	})
}
