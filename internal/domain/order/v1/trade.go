package orderv1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trade is an executed match between a buy and a sell order. It is a plain
// immutable value: the ledger hands out copies, never shared references.
type Trade struct {
	TradeID      uuid.UUID       `json:"tradeID"`
	BuyOrderID   uuid.UUID       `json:"buyOrderID"`
	SellOrderID  uuid.UUID       `json:"sellOrderID"`
	InstrumentID string          `json:"instrumentID"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
	ExecutedAt   time.Time       `json:"executedAt"`
}

// NewTrade creates a trade record for an execution of `quantity` at `price`
// between the two orders. Only the matching algorithm creates trades.
func NewTrade(buyOrderID, sellOrderID uuid.UUID, instrumentID string, price, quantity decimal.Decimal) Trade {
	return Trade{
		TradeID:      uuid.New(),
		BuyOrderID:   buyOrderID,
		SellOrderID:  sellOrderID,
		InstrumentID: instrumentID,
		Price:        price,
		Quantity:     quantity,
		ExecutedAt:   time.Now().UTC(),
	}
}
