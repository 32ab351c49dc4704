package bookv1

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
)

// Level is the FIFO queue of resting orders sharing one price on one side of
// the book. Orders are appended at the tail and matched from the head, which
// is what gives time priority inside a price.
type Level struct {
	price  decimal.Decimal
	orders []*orderv1.Order
}

func newLevel(price decimal.Decimal) *Level {
	return &Level{price: price}
}

// Price returns the price shared by every order in this level.
func (l *Level) Price() decimal.Decimal { return l.price }

// Head returns the oldest resting order, or nil when the level is empty.
func (l *Level) Head() *orderv1.Order {
	if len(l.orders) == 0 {
		return nil
	}
	return l.orders[0]
}

// OrderCount returns the number of resting orders at this price.
func (l *Level) OrderCount() int { return len(l.orders) }

// TotalRemaining returns the aggregate unfilled quantity at this price.
func (l *Level) TotalRemaining() decimal.Decimal {
	total := decimal.Zero
	for _, o := range l.orders {
		total = total.Add(o.Remaining())
	}
	return total
}

func (l *Level) empty() bool { return len(l.orders) == 0 }

func (l *Level) enqueue(o *orderv1.Order) {
	l.orders = append(l.orders, o)
}

func (l *Level) popHead() *orderv1.Order {
	if len(l.orders) == 0 {
		return nil
	}
	head := l.orders[0]
	l.orders = l.orders[1:]
	return head
}

// remove deletes the order with the given id, preserving FIFO order of the
// rest. It reports whether anything was removed.
func (l *Level) remove(id uuid.UUID) bool {
	for i, o := range l.orders {
		if o.ID() == id {
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			return true
		}
	}
	return false
}
