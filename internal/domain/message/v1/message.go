package messagev1

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
	"github.com/DuckDuck5000/TradingSystem/pkg/errors"
)

// OrderMessage is the JSON payload carried on the orders topic.
// Side is "Buy"/"Sell" and Type "Limit"/"Market", parsed case-insensitively.
type OrderMessage struct {
	OrderID      string          `json:"orderID"`
	InstrumentID string          `json:"instrumentID"`
	Side         string          `json:"side"`
	Type         string          `json:"type"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
	Offset       int64           `json:"offset,omitempty"`
}

// ToOrder maps the message through the validating order factory, preserving
// the order id assigned at intake. A message that fails validation never
// reaches the engine.
func (m *OrderMessage) ToOrder() (*orderv1.Order, error) {
	side, err := ParseSide(m.Side)
	if err != nil {
		return nil, err
	}

	id := uuid.Nil
	if m.OrderID != "" {
		id, err = uuid.Parse(m.OrderID)
		if err != nil {
			return nil, errors.NewErrorDetails(
				fmt.Sprintf("malformed order id %q", m.OrderID),
				string(errors.OrderValidationError),
				"orderID",
			)
		}
	}

	switch strings.ToLower(m.Type) {
	case string(orderv1.OrderTypeLimit):
		return orderv1.NewLimitOrderWithID(id, m.InstrumentID, side, m.Price, m.Quantity)
	case string(orderv1.OrderTypeMarket):
		return orderv1.NewMarketOrderWithID(id, m.InstrumentID, side, m.Quantity)
	default:
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("unknown order type %q", m.Type),
			string(errors.OrderValidationError),
			"type",
		)
	}
}

// ParseSide parses a "Buy"/"Sell" string case-insensitively.
func ParseSide(s string) (orderv1.Side, error) {
	switch strings.ToLower(s) {
	case string(orderv1.SideBuy):
		return orderv1.SideBuy, nil
	case string(orderv1.SideSell):
		return orderv1.SideSell, nil
	default:
		return "", errors.NewErrorDetails(
			fmt.Sprintf("unknown side %q", s),
			string(errors.OrderValidationError),
			"side",
		)
	}
}

// TradeMessage is the JSON payload published to the trades topic and the
// market-data broadcast channel.
type TradeMessage struct {
	TradeID      string          `json:"tradeID"`
	BuyOrderID   string          `json:"buyOrderID"`
	SellOrderID  string          `json:"sellOrderID"`
	InstrumentID string          `json:"instrumentID"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
	ExecutedAt   int64           `json:"executedAt"` // unix nanoseconds
}

// FromTrade converts an executed trade to its wire form.
func FromTrade(t orderv1.Trade) TradeMessage {
	return TradeMessage{
		TradeID:      t.TradeID.String(),
		BuyOrderID:   t.BuyOrderID.String(),
		SellOrderID:  t.SellOrderID.String(),
		InstrumentID: t.InstrumentID,
		Price:        t.Price,
		Quantity:     t.Quantity,
		ExecutedAt:   t.ExecutedAt.UnixNano(),
	}
}
