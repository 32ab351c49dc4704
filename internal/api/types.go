package api

import (
	"github.com/shopspring/decimal"

	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
)

// SubmitLimitOrderRequest is the body of POST /api/v1/orders/limit.
type SubmitLimitOrderRequest struct {
	InstrumentID string          `json:"instrumentId"`
	Side         string          `json:"side"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// SubmitMarketOrderRequest is the body of POST /api/v1/orders/market.
type SubmitMarketOrderRequest struct {
	InstrumentID string          `json:"instrumentId"`
	Side         string          `json:"side"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// SubmitOrderResponse acknowledges an accepted order.
type SubmitOrderResponse struct {
	Status  string `json:"status"`
	OrderID string `json:"orderId"`
}

// CancelOrderResponse acknowledges a cancel request.
type CancelOrderResponse struct {
	Status  string `json:"status"`
	OrderID string `json:"orderId"`
}

// OrderInfo is the read model of a single order.
type OrderInfo struct {
	OrderID        string          `json:"orderId"`
	InstrumentID   string          `json:"instrumentId"`
	Side           string          `json:"side"`
	Type           string          `json:"type"`
	Price          decimal.Decimal `json:"price"`
	Quantity       decimal.Decimal `json:"quantity"`
	FilledQuantity decimal.Decimal `json:"filledQuantity"`
	Remaining      decimal.Decimal `json:"remaining"`
	Status         string          `json:"status"`
	CreatedAt      int64           `json:"createdAt"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func orderInfoFrom(o orderv1.Order) OrderInfo {
	return OrderInfo{
		OrderID:        o.ID().String(),
		InstrumentID:   o.InstrumentID(),
		Side:           string(o.Side()),
		Type:           string(o.Type()),
		Price:          o.Price(),
		Quantity:       o.Quantity(),
		FilledQuantity: o.FilledQuantity(),
		Remaining:      o.Remaining(),
		Status:         string(o.Status()),
		CreatedAt:      o.CreatedAt().UnixNano(),
	}
}
