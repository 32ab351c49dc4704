package orderv1

import (
	"strings"
	"time"

	"github.com/DuckDuck5000/TradingSystem/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewLimitOrder validates and constructs a new limit order.
// It rejects a blank instrument id, a non-positive price and a non-positive
// quantity with an OrderValidationError.
func NewLimitOrder(instrumentID string, side Side, price, quantity decimal.Decimal) (*Order, error) {
	if err := validateCommon(instrumentID, side, quantity); err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return nil, errors.NewErrorDetails(
			"price must be > 0 for a limit order",
			string(errors.OrderValidationError),
			"price",
		)
	}

	return newOrder(instrumentID, side, OrderTypeLimit, price, quantity), nil
}

// NewMarketOrder validates and constructs a new market order.
// The price is set to zero; market orders execute against whatever the
// opposing side offers.
func NewMarketOrder(instrumentID string, side Side, quantity decimal.Decimal) (*Order, error) {
	if err := validateCommon(instrumentID, side, quantity); err != nil {
		return nil, err
	}

	return newOrder(instrumentID, side, OrderTypeMarket, decimal.Zero, quantity), nil
}

// NewLimitOrderWithID is NewLimitOrder with a caller-assigned id. The gateway
// assigns ids at acceptance time, so the id it acknowledges must be the id
// the engine processes.
func NewLimitOrderWithID(id uuid.UUID, instrumentID string, side Side, price, quantity decimal.Decimal) (*Order, error) {
	o, err := NewLimitOrder(instrumentID, side, price, quantity)
	if err != nil {
		return nil, err
	}
	if id != uuid.Nil {
		o.id = id
	}
	return o, nil
}

// NewMarketOrderWithID is NewMarketOrder with a caller-assigned id.
func NewMarketOrderWithID(id uuid.UUID, instrumentID string, side Side, quantity decimal.Decimal) (*Order, error) {
	o, err := NewMarketOrder(instrumentID, side, quantity)
	if err != nil {
		return nil, err
	}
	if id != uuid.Nil {
		o.id = id
	}
	return o, nil
}

func validateCommon(instrumentID string, side Side, quantity decimal.Decimal) error {
	if strings.TrimSpace(instrumentID) == "" {
		return errors.NewErrorDetails(
			"instrument id cannot be blank",
			string(errors.OrderValidationError),
			"instrumentID",
		)
	}
	if side != SideBuy && side != SideSell {
		return errors.NewErrorDetails(
			"side must be buy or sell",
			string(errors.OrderValidationError),
			"side",
		)
	}
	if !quantity.IsPositive() {
		return errors.NewErrorDetails(
			"quantity must be > 0",
			string(errors.OrderValidationError),
			"quantity",
		)
	}
	return nil
}

func newOrder(instrumentID string, side Side, orderType OrderType, price, quantity decimal.Decimal) *Order {
	return &Order{
		id:           uuid.New(),
		instrumentID: instrumentID,
		side:         side,
		orderType:    orderType,
		price:        price,
		quantity:     quantity,
		filled:       decimal.Zero,
		status:       StatusNew,
		createdAt:    time.Now().UTC(),
	}
}
