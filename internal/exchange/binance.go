package exchange

import (
	"context"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/amirphl/futures-trader/internal/order"
)

var log = logrus.WithField("exchange", "binance-futures")

// BinanceFutures wraps the official USDⓈ-M futures client. All exchange
// mechanics (signing, transport, timeouts) live in the client; this type only
// shapes requests and responses.
type BinanceFutures struct {
	client *futures.Client
}

// NewBinanceFutures builds a client for the given credentials. With testnet
// set, requests go to the futures testnet instead of production.
func NewBinanceFutures(apiKey, apiSecret string, testnet bool) *BinanceFutures {
	futures.UseTestnet = testnet
	if testnet {
		log.Info("client configured for the futures testnet")
	}
	return &BinanceFutures{
		client: futures.NewClient(apiKey, apiSecret),
	}
}

func (e *BinanceFutures) Name() string {
	return "binance-futures"
}

// Ping checks API connectivity and credentials by fetching the account.
func (e *BinanceFutures) Ping(ctx context.Context) error {
	if _, err := e.client.NewGetAccountService().Do(ctx); err != nil {
		return convertError(err)
	}
	log.Info("successfully connected to the futures API")
	return nil
}

func (e *BinanceFutures) QueryBalances(ctx context.Context) (map[string]Balance, error) {
	futuresBalances, err := e.client.NewGetBalanceService().Do(ctx)
	if err != nil {
		return nil, convertError(err)
	}

	balances := make(map[string]Balance)
	for _, fb := range futuresBalances {
		total, err := decimal.NewFromString(fb.Balance)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing balance for %s", fb.Asset)
		}
		available, err := decimal.NewFromString(fb.AvailableBalance)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing available balance for %s", fb.Asset)
		}

		balances[fb.Asset] = Balance{
			Asset:     fb.Asset,
			Balance:   total,
			Available: available,
		}
	}

	return balances, nil
}

func (e *BinanceFutures) SubmitOrder(ctx context.Context, spec order.Spec) (order.Result, error) {
	clientOrderID := uuid.NewString()

	log.WithFields(logrus.Fields{
		"symbol":          spec.Symbol,
		"side":            spec.Side,
		"type":            spec.Type,
		"quantity":        spec.Quantity,
		"client_order_id": clientOrderID,
	}).Info("placing order")

	svc := e.client.NewCreateOrderService().
		Symbol(spec.Symbol).
		Side(toFuturesSide(spec.Side)).
		Type(toFuturesOrderType(spec.Type)).
		Quantity(spec.Quantity.String()).
		NewClientOrderID(clientOrderID)

	switch spec.Type {
	case order.TypeLimit:
		svc = svc.Price(spec.Price.String()).
			TimeInForce(futures.TimeInForceTypeGTC)
	case order.TypeStopLimit:
		svc = svc.Price(spec.Price.String()).
			StopPrice(spec.StopPrice.String()).
			TimeInForce(futures.TimeInForceTypeGTC)
	}

	resp, err := svc.Do(ctx)
	if err != nil {
		return order.Result{}, convertError(err)
	}

	log.WithFields(logrus.Fields{
		"order_id": resp.OrderID,
		"status":   resp.Status,
	}).Info("order placed successfully")

	return toOrderResult(resp), nil
}
