package orderv1

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side represents which side of the book an order belongs to.
type Side string

const (
	// SideBuy represents a buy order.
	SideBuy Side = "buy"
	// SideSell represents a sell order.
	SideSell Side = "sell"
)

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// OrderType represents the type of order.
type OrderType string

const (
	// OrderTypeLimit represents a limit order.
	OrderTypeLimit OrderType = "limit"
	// OrderTypeMarket represents a market order.
	OrderTypeMarket OrderType = "market"
)

// Status represents the lifecycle state of an order.
type Status string

const (
	// StatusNew is the initial state of every accepted order.
	StatusNew Status = "new"
	// StatusPartiallyFilled means some, but not all, quantity has executed.
	StatusPartiallyFilled Status = "partially_filled"
	// StatusFilled is terminal: the full quantity has executed.
	StatusFilled Status = "filled"
	// StatusCanceled is terminal: reached from new or partially_filled only.
	StatusCanceled Status = "canceled"
)

// Order is the domain entity for a single order. Identity fields are assigned
// once at construction; fill state changes only through Fill and Cancel so the
// `0 <= filled <= quantity` invariant cannot be broken from outside.
type Order struct {
	id           uuid.UUID
	instrumentID string
	side         Side
	orderType    OrderType
	price        decimal.Decimal
	quantity     decimal.Decimal
	filled       decimal.Decimal
	status       Status
	createdAt    time.Time
}

// ID returns the order id.
func (o *Order) ID() uuid.UUID { return o.id }

// InstrumentID returns the instrument id in its original casing.
func (o *Order) InstrumentID() string { return o.instrumentID }

// Side returns the order side.
func (o *Order) Side() Side { return o.side }

// Type returns the order type.
func (o *Order) Type() OrderType { return o.orderType }

// Price returns the limit price. It is zero for market orders.
func (o *Order) Price() decimal.Decimal { return o.price }

// Quantity returns the original order quantity.
func (o *Order) Quantity() decimal.Decimal { return o.quantity }

// FilledQuantity returns the executed quantity so far.
func (o *Order) FilledQuantity() decimal.Decimal { return o.filled }

// Remaining returns the unfilled quantity.
func (o *Order) Remaining() decimal.Decimal { return o.quantity.Sub(o.filled) }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the UTC creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// IsBuy reports whether this is a buy order.
func (o *Order) IsBuy() bool { return o.side == SideBuy }

// IsSell reports whether this is a sell order.
func (o *Order) IsSell() bool { return o.side == SideSell }

// IsActive reports whether the order can still rest in a book or be matched.
func (o *Order) IsActive() bool {
	return o.status == StatusNew || o.status == StatusPartiallyFilled
}

// Fill applies an executed quantity to the order and recomputes the status.
// A fill that would push filled above quantity is a bug in the matching
// algorithm, not a recoverable condition: it panics.
func (o *Order) Fill(qty decimal.Decimal) {
	if qty.GreaterThan(o.Remaining()) {
		panic(fmt.Sprintf(
			"orderv1: fill %s exceeds remaining %s on order %s",
			qty, o.Remaining(), o.id,
		))
	}

	o.filled = o.filled.Add(qty)
	if o.filled.GreaterThanOrEqual(o.quantity) {
		o.status = StatusFilled
	} else if o.filled.IsPositive() {
		o.status = StatusPartiallyFilled
	}
}

// Cancel marks the order canceled. Callers enforce the precondition that the
// order is still active; Cancel itself is unconditional.
func (o *Order) Cancel() {
	o.status = StatusCanceled
}
