// Package order
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Side is the direction of an order.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Type is the execution type of an order.
type Type string

const (
	TypeMarket    Type = "MARKET"
	TypeLimit     Type = "LIMIT"
	TypeStopLimit Type = "STOP_LIMIT"
)

// quantityScale is the number of decimal places quantities and prices are
// truncated to before being sent to the exchange. The exchange enforces the
// per-symbol tick and lot sizes itself.
const quantityScale = 8

// ValidationError reports a malformed order parameter. No network call is
// made when Build returns one.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Spec is a validated, normalized order ready for submission.
type Spec struct {
	Symbol    string
	Side      Side
	Type      Type
	Quantity  decimal.Decimal
	Price     decimal.Decimal // set for LIMIT and STOP_LIMIT
	StopPrice decimal.Decimal // set for STOP_LIMIT
}

// Result is the exchange's response to an order submission. The numeric
// fields are kept as the exchange returned them.
type Result struct {
	OrderID       int64
	ClientOrderID string
	Symbol        string
	Status        string
	Side          string
	Type          string
	Price         string
	OrigQuantity  string
	ExecutedQty   string
	AvgPrice      string
	UpdateTime    time.Time
}

// ParseSide parses a side in any case.
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return SideBuy, nil
	case "SELL":
		return SideSell, nil
	}
	return "", &ValidationError{Field: "side", Message: fmt.Sprintf("%q is not BUY or SELL", s)}
}

// ParseType parses an order type in any case. Both STOP_LIMIT and stop-limit
// spellings are accepted.
func ParseType(s string) (Type, error) {
	normalized := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
	switch normalized {
	case "MARKET":
		return TypeMarket, nil
	case "LIMIT":
		return TypeLimit, nil
	case "STOP_LIMIT":
		return TypeStopLimit, nil
	}
	return "", &ValidationError{Field: "type", Message: fmt.Sprintf("%q is not MARKET, LIMIT or STOP_LIMIT", s)}
}

// Build validates user-supplied order parameters and returns a normalized
// Spec. Price is required for LIMIT and STOP_LIMIT, stop price for
// STOP_LIMIT; for MARKET orders both are ignored even when supplied.
// Build performs no I/O.
func Build(symbol, side, typ, quantity, price, stopPrice string) (Spec, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Spec{}, &ValidationError{Field: "symbol", Message: "must not be empty"}
	}

	s, err := ParseSide(side)
	if err != nil {
		return Spec{}, err
	}

	t, err := ParseType(typ)
	if err != nil {
		return Spec{}, err
	}

	qty, err := parsePositive("quantity", quantity)
	if err != nil {
		return Spec{}, err
	}

	spec := Spec{
		Symbol:   symbol,
		Side:     s,
		Type:     t,
		Quantity: qty,
	}

	if t == TypeMarket {
		return spec, nil
	}

	if strings.TrimSpace(price) == "" {
		return Spec{}, &ValidationError{Field: "price", Message: fmt.Sprintf("required for %s orders", t)}
	}
	p, err := parsePositive("price", price)
	if err != nil {
		return Spec{}, err
	}
	spec.Price = p

	if t == TypeStopLimit {
		if strings.TrimSpace(stopPrice) == "" {
			return Spec{}, &ValidationError{Field: "stop_price", Message: "required for STOP_LIMIT orders"}
		}
		sp, err := parsePositive("stop_price", stopPrice)
		if err != nil {
			return Spec{}, err
		}
		spec.StopPrice = sp
	}

	return spec, nil
}

func parsePositive(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Message: fmt.Sprintf("%q is not a decimal number", value)}
	}
	if d.Sign() <= 0 {
		return decimal.Zero, &ValidationError{Field: field, Message: "must be positive"}
	}
	return d.Truncate(quantityScale), nil
}
