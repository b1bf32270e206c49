package exchange

import (
	"time"

	"github.com/adshao/go-binance/v2/common"
	"github.com/adshao/go-binance/v2/futures"
	"github.com/pkg/errors"

	"github.com/amirphl/futures-trader/internal/order"
)

func toFuturesSide(side order.Side) futures.SideType {
	if side == order.SideSell {
		return futures.SideTypeSell
	}
	return futures.SideTypeBuy
}

// toFuturesOrderType maps local order types to the futures API. STOP_LIMIT is
// "STOP" on the wire; a stop order with a limit price.
func toFuturesOrderType(typ order.Type) futures.OrderType {
	switch typ {
	case order.TypeLimit:
		return futures.OrderTypeLimit
	case order.TypeStopLimit:
		return futures.OrderTypeStop
	default:
		return futures.OrderTypeMarket
	}
}

func toOrderResult(resp *futures.CreateOrderResponse) order.Result {
	return order.Result{
		OrderID:       resp.OrderID,
		ClientOrderID: resp.ClientOrderID,
		Symbol:        resp.Symbol,
		Status:        string(resp.Status),
		Side:          string(resp.Side),
		Type:          string(resp.Type),
		Price:         resp.Price,
		OrigQuantity:  resp.OrigQuantity,
		ExecutedQty:   resp.ExecutedQuantity,
		AvgPrice:      resp.AvgPrice,
		UpdateTime:    time.UnixMilli(resp.UpdateTime).UTC(),
	}
}

// convertError turns an API rejection into *ExchangeError and wraps anything
// else (transport failures, parse errors) with context.
func convertError(err error) error {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		return &ExchangeError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
		}
	}
	return errors.Wrap(err, "futures API request failed")
}
